package types

// Filter represents query parameters for list endpoints.
type Filter struct {
	Search string
	Page   int
	Limit  int
	Offset int
}

// TotalPages derives the page count for a fixed-size, 1-indexed pagination.
func (f Filter) TotalPages(total uint64) int {
	if f.Limit <= 0 {
		return 0
	}
	pages := int(total) / f.Limit
	if int(total)%f.Limit != 0 {
		pages++
	}
	return pages
}
