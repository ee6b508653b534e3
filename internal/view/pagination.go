package view

import "fmt"

// Pagination describes the page links under a paginated list.
type Pagination struct {
	Page       int
	TotalPages int
	Path       string
}

// NewPagination computes the page count for total items at perPage per page.
func NewPagination(page, perPage int, total int64, path string) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if page < 1 {
		page = 1
	}
	return Pagination{Page: page, TotalPages: pages, Path: path}
}

// Show reports whether there is more than one page.
func (p Pagination) Show() bool { return p.TotalPages > 1 }

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Prev is the previous page number.
func (p Pagination) Prev() int { return p.Page - 1 }

// Next is the next page number.
func (p Pagination) Next() int { return p.Page + 1 }

// Pages lists every page number.
func (p Pagination) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// URL links to page n of the list.
func (p Pagination) URL(n int) string {
	return fmt.Sprintf("%s?page=%d", p.Path, n)
}
