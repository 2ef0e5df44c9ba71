package domain

import "math"

const (
	defaultPageSize = 50
	maxPageSize     = 100

	// maxPage keeps Offset within an int32 for any limit.
	maxPage = math.MaxInt32 / maxPageSize
)

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil or non-positive values fall back to page=1, limit=50. Pages past
// maxPage are clamped to it, which is always an empty page.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: defaultPageSize}
	if page != nil && *page >= 1 {
		p.Page = min(*page, maxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxPageSize)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
