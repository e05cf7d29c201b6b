package dto

// Paginated is the fixed list envelope: fixed-size, 1-indexed pages.
type Paginated[T any] struct {
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	TotalItems  uint64 `json:"total_items"`
	Items       []T    `json:"items"`
}
