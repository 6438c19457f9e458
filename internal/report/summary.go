package report

import "github.com/akarpel/filetriage/pkg/filetriage"

// Summarize tallies one batch of records: count per category present,
// count per priority level present, and the total. Buckets exist only
// for values actually seen, so an empty batch yields total 0 and
// empty maps.
func Summarize(records []filetriage.Record) filetriage.Summary {
	s := filetriage.Summary{
		Total:      len(records),
		ByCategory: make(map[filetriage.Category]int),
		ByPriority: make(map[int]int),
	}
	for _, rec := range records {
		s.ByCategory[rec.Category]++
		s.ByPriority[rec.Priority]++
	}
	return s
}

// Percent returns (count/total)*100, or 0 when total is 0.
// Display rounds to one decimal; the raw value is returned here so
// callers control formatting.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
