package report

import (
	"sort"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// SortByPriority returns records ordered stably by ascending priority.
// Records with equal priority retain their relative input order
// (first seen, first out). The input slice is left untouched; sorting
// an already-sorted batch is a no-op on the order.
func SortByPriority(records []filetriage.Record) []filetriage.Record {
	sorted := make([]filetriage.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}
