package store

const (
	ProductPageSize = 6
	CartPageSize    = 3
)

// OffsetPage is the envelope returned by every paginated listing.
// Results is never nil so it always encodes as a JSON array.
type OffsetPage[T any] struct {
	Count      int64 `json:"count"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	Next       bool  `json:"next"`
	Previous   bool  `json:"previous"`
	Results    []T   `json:"results"`
}

// PageWindow is the slice of a result set selected by a page request.
type PageWindow struct {
	Page       int
	TotalPages int
	Offset     int
	Limit      int
}

// NewPageWindow clamps requested into [1, TotalPages]. An empty result set
// still has one page.
func NewPageWindow(count int64, requested, pageSize int) PageWindow {
	totalPages := int(count) / pageSize
	if int(count)%pageSize > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return PageWindow{
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}
}

func newOffsetPage[T any](count int64, w PageWindow, results []T) *OffsetPage[T] {
	if results == nil {
		results = []T{}
	}
	return &OffsetPage[T]{
		Count:      count,
		TotalPages: w.TotalPages,
		Page:       w.Page,
		Next:       w.Page < w.TotalPages,
		Previous:   w.Page > 1,
		Results:    results,
	}
}
