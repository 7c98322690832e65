package render

// Page is the result of slicing an item set by offset/limit, with the
// metadata agents need to continue: the pre-slice total, whether more
// remain, and the next offset when they do.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	Count      int  `json:"count"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	NextOffset *int `json:"next_offset"`
}

// Paginate slices items by offset/limit. Pure function; nil items is
// an empty set.
func Paginate[T any](items []T, offset, limit int) Page[T] {
	return PaginateTotal(items, offset, limit, len(items))
}

// PaginateTotal is Paginate with an explicitly supplied total, for
// callers whose items were pre-filtered against a larger set.
func PaginateTotal[T any](items []T, offset, limit, total int) Page[T] {
	if items == nil {
		items = []T{}
	}

	start := offset
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	sliced := items[start:end]

	page := Page[T]{
		Items:   sliced,
		Offset:  offset,
		Limit:   limit,
		Count:   len(sliced),
		Total:   total,
		HasMore: offset+limit < total,
	}
	if page.HasMore {
		next := offset + limit
		page.NextOffset = &next
	}
	return page
}
