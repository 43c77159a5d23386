package models

// Page is the server's paginated list envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// Pagination is the cursor a store keeps next to a paged list.
type Pagination struct {
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// Pagination returns the cursor of p.
func (p Page[T]) Pagination() Pagination {
	return Pagination{Page: p.Number, TotalPages: p.TotalPages, TotalElements: p.TotalElements}
}

// Items returns Content, or an empty slice when the server sent none.
func (p Page[T]) Items() []T {
	if p.Content == nil {
		return []T{}
	}
	return p.Content
}
