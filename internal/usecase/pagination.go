package usecase

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage assembles the envelope. Items is never null on the wire and pages
// is the ceiling of total/size.
func NewPage[T any](items []T, total int64, page, size int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}

// ListInput is the validated query surface shared by list operations.
type ListInput struct {
	SortBy string
	Order  string
	Page   int
	Size   int
}
