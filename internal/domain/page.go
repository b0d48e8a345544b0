package domain

// PageResult is the paged shape used by the admin resource, rental and system families.
type PageResult[T any] struct {
	Total   FlexInt `json:"total,omitempty"`
	Current FlexInt `json:"current,omitempty"`
	Size    FlexInt `json:"size,omitempty"`
	Records []T     `json:"records,omitempty"`
}

// PortalPageResult is the paged shape of the portal and news families, which may report
// the page size as either pageSize or size.
type PortalPageResult[T any] struct {
	Total    FlexInt `json:"total,omitempty"`
	Current  FlexInt `json:"current,omitempty"`
	PageSize FlexInt `json:"pageSize,omitempty"`
	Size     FlexInt `json:"size,omitempty"`
	Records  []T     `json:"records,omitempty"`
}

// EffectivePageSize prefers pageSize and falls back to size.
func (p PortalPageResult[T]) EffectivePageSize() int {
	if p.PageSize != 0 {
		return p.PageSize.Int()
	}
	return p.Size.Int()
}

// PageQuery carries the pagination and sort fields every list query shares.
type PageQuery struct {
	Current   int    `json:"current,omitempty" query:"current" url:"current,omitempty"`
	PageSize  int    `json:"pageSize,omitempty" query:"pageSize" url:"pageSize,omitempty"`
	SortField string `json:"sortField,omitempty" query:"sortField" url:"sortField,omitempty"`
	SortOrder string `json:"sortOrder,omitempty" query:"sortOrder" url:"sortOrder,omitempty"`
}
