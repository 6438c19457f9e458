package filetriage

// Category is the destination classification of a file.
// The set is closed: every classified file lands in exactly one of the
// seven categories below, with CategoryMiscellaneous as the fallback
// for anything the extension registry does not recognize.
type Category string

const (
	CategoryDocuments     Category = "Documents"
	CategoryMultimedia    Category = "Multimedia"
	CategoryAudio         Category = "Audio"
	CategoryVideo         Category = "Video"
	CategoryArchive       Category = "Archive"
	CategorySourceCode    Category = "SourceCode"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Priority bounds. Priority 1 is the most urgent, 5 the least.
const (
	PriorityHighest = 1
	PriorityLowest  = 5
)

// priorityByCategory is the total category→priority mapping.
// A Record never carries a category/priority pair outside this table.
var priorityByCategory = map[Category]int{
	CategoryDocuments:     1,
	CategorySourceCode:    2,
	CategoryMultimedia:    3,
	CategoryAudio:         3,
	CategoryVideo:         3,
	CategoryArchive:       4,
	CategoryMiscellaneous: 5,
}

// Priority returns the processing priority derived from the category.
// Unknown categories fall back to PriorityLowest, keeping the function
// total over arbitrary string values.
func (c Category) Priority() int {
	if p, ok := priorityByCategory[c]; ok {
		return p
	}
	return PriorityLowest
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	_, ok := priorityByCategory[c]
	return ok
}

// Categories returns the closed category set ordered by ascending
// priority (ties broken alphabetically). The slice is a fresh copy.
func Categories() []Category {
	return []Category{
		CategoryDocuments,
		CategorySourceCode,
		CategoryAudio,
		CategoryMultimedia,
		CategoryVideo,
		CategoryArchive,
		CategoryMiscellaneous,
	}
}

// Record is the classification result for a single filename.
// It is a value type: built once by a Classifier and never mutated.
type Record struct {
	// Filename is the original input string, preserved verbatim.
	Filename string `json:"filename"`

	// Extension is the lowercase suffix after the last '.', or ""
	// when the filename has no dot or ends with one.
	Extension string `json:"extension"`

	// Category is the resolved destination category.
	Category Category `json:"category"`

	// Priority is derived from Category alone; see Category.Priority.
	Priority int `json:"priority"`
}

// Summary holds distribution statistics for one batch of records.
// It is recomputed per batch and never persisted.
type Summary struct {
	// Total is the number of records in the batch.
	Total int `json:"total"`

	// ByCategory counts records per category actually present.
	ByCategory map[Category]int `json:"by_category"`

	// ByPriority counts records per priority level actually present.
	ByPriority map[int]int `json:"by_priority"`
}
