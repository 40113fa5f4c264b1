package pagination

// Metadata contains pagination metadata included in paginated API responses.
type Metadata struct {
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
	Total       uint64 `json:"total"`
	TotalPages  int    `json:"total_pages"`
	HasNext     bool   `json:"has_next"`
	HasPrev     bool   `json:"has_prev"`
}

// NewMetadata derives page metadata from normalized params and the total
// number of matching records. It performs no I/O.
func NewMetadata(params Params, total uint64) Metadata {
	totalPages := CalculateTotalPages(total, params.Limit)
	return Metadata{
		CurrentPage: params.Page,
		PerPage:     params.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}
