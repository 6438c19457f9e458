package filetriage

// Classifier turns filenames into classification records.
// Implementations must be pure and total: every input string yields a
// valid Record, the same input always yields the same Record, and
// Classify must be safe for concurrent use by multiple goroutines.
type Classifier interface {
	// Classify resolves a single filename to a Record.
	Classify(filename string) Record

	// ClassifyBatch classifies filenames in order, returning exactly
	// one Record per input. Batch options control harness concerns
	// such as progress reporting; they never change the records.
	ClassifyBatch(filenames []string, opts ...BatchOption) []Record
}

// Reporter reduces a classified batch to its sorted form and summary.
// Reductions run as a single-threaded pass over the complete batch.
type Reporter interface {
	// Report returns the records sorted stably by ascending priority
	// together with the batch summary. The input slice is not mutated.
	Report(records []Record) ([]Record, Summary)
}

// ProgressFunc observes batch progress. It is invoked after each
// record is produced, with done in [1, total]. The callback runs
// between classifications on the caller's goroutine; it must not
// block for long and must not assume it is ever called (a nil
// callback is the default).
type ProgressFunc func(done, total int, rec Record)

// BatchOptions carries optional knobs for ClassifyBatch.
type BatchOptions struct {
	Progress ProgressFunc
}

// BatchOption mutates BatchOptions before a batch run.
type BatchOption func(*BatchOptions)

// WithProgress registers a progress callback for a batch run.
func WithProgress(fn ProgressFunc) BatchOption {
	return func(o *BatchOptions) {
		o.Progress = fn
	}
}

// ApplyBatchOptions folds opts into a BatchOptions value.
func ApplyBatchOptions(opts []BatchOption) BatchOptions {
	var o BatchOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
