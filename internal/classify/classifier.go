package classify

import (
	"strings"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// Engine is the concrete filetriage.Classifier. It carries no state;
// the zero value is ready to use and safe for concurrent use.
type Engine struct{}

// New creates a classification engine.
func New() *Engine {
	return &Engine{}
}

var _ filetriage.Classifier = (*Engine)(nil)

// ExtractExtension returns the lowercased suffix after the last '.'
// in filename. It returns "" when the filename contains no dot or the
// dot is the final character.
func ExtractExtension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Classify resolves a single filename to its record. Pure and total:
// malformed names degrade to Miscellaneous at the lowest priority.
func (e *Engine) Classify(filename string) filetriage.Record {
	ext := ExtractExtension(filename)
	cat := Lookup(ext)
	return filetriage.Record{
		Filename:  filename,
		Extension: ext,
		Category:  cat,
		Priority:  cat.Priority(),
	}
}

// ClassifyBatch classifies filenames in input order, one record per
// filename. The optional progress callback fires after each record,
// between classifications; it never runs inside Classify itself.
func (e *Engine) ClassifyBatch(filenames []string, opts ...filetriage.BatchOption) []filetriage.Record {
	o := filetriage.ApplyBatchOptions(opts)

	records := make([]filetriage.Record, 0, len(filenames))
	for i, name := range filenames {
		rec := e.Classify(name)
		records = append(records, rec)
		if o.Progress != nil {
			o.Progress(i+1, len(filenames), rec)
		}
	}
	return records
}
