// Package pagination slices an already-filtered, already-ordered result set
// into one page plus the descriptor metadata the API returns alongside it.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page describes one slice of a paginated collection.
type Page[T any] struct {
	First      int   `json:"first"`
	Before     int   `json:"before,omitempty"`
	Current    int   `json:"current"`
	Last       int   `json:"last"`
	Next       int   `json:"next,omitempty"`
	TotalPages int   `json:"total_pages"`
	TotalItems int   `json:"total_items"`
	Limit      int   `json:"limit"`
	Items      []T   `json:"items"`
}

// Paginate is a pure function of (items, page, limit). Page and limit floor at
// 1; a page past the end clamps to the last valid page, so the caller always
// gets a non-empty slice when the collection itself is non-empty.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if limit < 1 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalItems := len(items)
	totalPages := (totalItems + limit - 1) / limit
	last := totalPages
	if last < 1 {
		last = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	p := Page[T]{
		First:      1,
		Current:    page,
		Last:       last,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Limit:      limit,
		Items:      items[start:end],
	}
	if page > 1 {
		p.Before = page - 1
	}
	if page < last {
		p.Next = page + 1
	}
	return p
}
