package entity

// Page bounds for list endpoints
const (
	DefaultPage     = 1
	MaxPage         = 1_000_000
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// PaginationParams is a 1-based page request
type PaginationParams struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize falls back to the first page and the default size, and caps both.
func (p *PaginationParams) Normalize() {
	switch {
	case p.Limit < MinPageSize:
		p.Limit = DefaultPageSize
	case p.Limit > MaxPageSize:
		p.Limit = MaxPageSize
	}
	p.Page = min(max(p.Page, DefaultPage), MaxPage)
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	meta := PaginationMeta{CurrentPage: page, PerPage: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}

// PaginatedPayments is one page of a merchant's payments, newest first
type PaginatedPayments struct {
	Data       []*Payment     `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}
