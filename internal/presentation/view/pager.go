package view

import "fmt"

// Pager derives the listing footer state from a 0-based page index, the
// requested page size, and the server-reported totals. It decides what the
// controls may do; it does not render them.
type Pager struct {
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

// StartRecord is the 1-based index of the first record on this page, or 0
// when the result set is empty.
func (p Pager) StartRecord() int64 {
	if p.TotalElements == 0 {
		return 0
	}
	return int64(p.Page)*int64(p.Size) + 1
}

// EndRecord is the 1-based index of the last record on this page.
func (p Pager) EndRecord() int64 {
	end := int64(p.Page+1) * int64(p.Size)
	if end > p.TotalElements {
		end = p.TotalElements
	}
	return end
}

// Showing formats the "Showing X–Y of Z" footer text.
func (p Pager) Showing() string {
	return fmt.Sprintf("Showing %d–%d of %d", p.StartRecord(), p.EndRecord(), p.TotalElements)
}

// HasPrev reports whether the "previous" and "first" controls are enabled.
func (p Pager) HasPrev() bool {
	return p.Page > 0
}

// HasNext reports whether the "next" and "last" controls are enabled. Both
// are disabled on the last page and when there are no pages at all.
func (p Pager) HasNext() bool {
	return p.TotalPages > 0 && p.Page < p.TotalPages-1
}

// LastPage is the index of the last page, or 0 when there are no pages.
func (p Pager) LastPage() int {
	if p.TotalPages == 0 {
		return 0
	}
	return p.TotalPages - 1
}

// Pages returns every page index, for the numbered page controls.
func (p Pager) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i
	}
	return pages
}
