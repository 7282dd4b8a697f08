package handler

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, limit int) PaginatedResponse[T] {
	if limit <= 0 {
		limit = 1
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// PaginateSlice cuts one page out of an in-memory result set.
func PaginateSlice[T any](items []T, page, limit int) PaginatedResponse[T] {
	total := int64(len(items))
	offset := (page - 1) * limit
	if offset >= len(items) {
		return NewPaginatedResponse([]T{}, total, page, limit)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return NewPaginatedResponse(items[offset:end], total, page, limit)
}
