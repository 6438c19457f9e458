package classify

import (
	"sort"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// categoryByExtension is the extension registry: an immutable,
// package-level mapping from lowercase extension to category.
// Keys must be lowercase; Lookup performs no case folding (the
// classifier owns normalization). Visually similar extensions such as
// "jpg" and "jpeg" stay distinct literal entries.
var categoryByExtension = map[string]filetriage.Category{
	// Documents
	"txt":  filetriage.CategoryDocuments,
	"doc":  filetriage.CategoryDocuments,
	"docx": filetriage.CategoryDocuments,
	"pdf":  filetriage.CategoryDocuments,
	"rtf":  filetriage.CategoryDocuments,

	// Multimedia
	"jpg":  filetriage.CategoryMultimedia,
	"jpeg": filetriage.CategoryMultimedia,
	"png":  filetriage.CategoryMultimedia,
	"gif":  filetriage.CategoryMultimedia,
	"bmp":  filetriage.CategoryMultimedia,

	// Audio
	"mp3":  filetriage.CategoryAudio,
	"wav":  filetriage.CategoryAudio,
	"flac": filetriage.CategoryAudio,
	"aac":  filetriage.CategoryAudio,

	// Video
	"mp4": filetriage.CategoryVideo,
	"avi": filetriage.CategoryVideo,
	"mkv": filetriage.CategoryVideo,
	"mov": filetriage.CategoryVideo,

	// Archive
	"zip": filetriage.CategoryArchive,
	"rar": filetriage.CategoryArchive,
	"7z":  filetriage.CategoryArchive,
	"tar": filetriage.CategoryArchive,

	// Source code
	"cpp":  filetriage.CategorySourceCode,
	"c":    filetriage.CategorySourceCode,
	"py":   filetriage.CategorySourceCode,
	"java": filetriage.CategorySourceCode,
	"js":   filetriage.CategorySourceCode,
	"html": filetriage.CategorySourceCode,
}

// Lookup resolves a lowercase extension to its category.
// Total over all string inputs: anything not in the registry
// (including "") resolves to Miscellaneous.
func Lookup(ext string) filetriage.Category {
	if c, ok := categoryByExtension[ext]; ok {
		return c
	}
	return filetriage.CategoryMiscellaneous
}

// Extensions returns the registered extensions for a category, sorted
// lexicographically. Miscellaneous has no registered extensions and
// returns nil.
func Extensions(c filetriage.Category) []string {
	var exts []string
	for ext, cat := range categoryByExtension {
		if cat == c {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
