// Package classify implements the filename classification engine.
//
// # Overview
//
// The engine resolves a filename to a classification record in three
// fixed steps:
//  1. Extract the extension: the lowercased suffix after the LAST '.'
//     ("archive.tar.gz" → "gz"), or "" for dotless names and names
//     ending in a dot.
//  2. Resolve the extension to a category through the immutable
//     extension registry; unknown extensions fall back to
//     Miscellaneous.
//  3. Derive the processing priority from the category alone.
//
// Every step is pure and total: there is no I/O, no shared mutable
// state, and no failure mode. Malformed input degrades to
// extension "" → Miscellaneous → lowest priority rather than erroring.
//
// Classify is safe to call concurrently across filenames. Batch-level
// reductions (sorting, statistics) live in package report and run as
// single-threaded passes over a complete batch.
package classify
