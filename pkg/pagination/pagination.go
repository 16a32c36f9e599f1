package pagination

// The bill listing endpoint is offset-paged with a 0-based page index and a
// fixed set of page-size choices. The server reports totalPages and
// totalElements; the client derives everything else from those two numbers.

// SizeChoices are the page sizes the listing UI offers.
var SizeChoices = []int{5, 10, 20}

// DefaultSize is the page size used when none is requested.
const DefaultSize = 10

// PageRequest represents input parameters for a paged listing.
type PageRequest struct {
	Page   int    `json:"page"`
	Size   int    `json:"size"`
	Search string `json:"search,omitempty"`
}

// DefaultPageRequest returns the first page with the default size.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 0, Size: DefaultSize}
}

// Validate clamps the request to a non-negative page and a supported size.
func (r *PageRequest) Validate() {
	if r.Page < 0 {
		r.Page = 0
	}
	if !validSize(r.Size) {
		r.Size = DefaultSize
	}
}

func validSize(size int) bool {
	for _, s := range SizeChoices {
		if size == s {
			return true
		}
	}
	return false
}

// Page represents one page of a remote result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// NewPage creates a page from server-reported values.
func NewPage[T any](content []T, totalPages int, totalElements int64) Page[T] {
	return Page[T]{
		Content:       content,
		TotalPages:    totalPages,
		TotalElements: totalElements,
	}
}
