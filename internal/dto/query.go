package dto

// ListQuery carries the common list parameters: a case-insensitive search
// term and a sort field with direction.
type ListQuery struct {
	Search string `form:"q"`
	SortBy string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// Descending reports whether the sort direction is descending.
func (q ListQuery) Descending() bool {
	return q.Order == "desc"
}
