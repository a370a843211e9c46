package pagination

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps page to at least 1 and pageSize into [1, MaxPageSize],
// using DefaultPageSize when pageSize is not positive.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset is the number of rows skipped before this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the maximum number of rows on this page.
func (p Params) Limit() int {
	return p.PageSize
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
