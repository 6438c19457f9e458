// Package report reduces a classified batch to its sorted form and
// distribution statistics.
//
// The two reductions are batch-level, single-threaded passes:
//
//   - SortByPriority orders records stably by ascending priority, so
//     records of equal priority keep their input order.
//   - Summarize tallies counts per category and per priority level
//     actually present, plus the batch total. Empty batches yield an
//     empty summary; percentage math guards against a zero total.
//
// Build wraps both into a run report document with a UUID identity
// and UTC timestamps, suitable for deterministic JSON output.
package report
