package domain

// Metadata is the pagination block the server attaches to list responses.
type Metadata struct {
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	CurrentPage   int   `json:"currentPage"` // 0-based, as sent by the server
	PageSize      int   `json:"pageSize"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// ListQuery holds the filter and pagination parameters of one list view.
// Page is 1-based; the transport layer converts it.
type ListQuery struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Search     string `json:"search,omitempty"`
	Status     *bool  `json:"status,omitempty"`
	Unit       Unit   `json:"unit,omitempty"`
	ActiveOnly bool   `json:"activeOnly,omitempty"`
}

// FiltersEngaged reports whether search or status narrow the list.
func (q ListQuery) FiltersEngaged() bool {
	return q.Search != "" || q.Status != nil
}
