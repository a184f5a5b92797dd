package models

// PagedResult is one page of a larger result set plus the metadata a client
// needs to walk the remaining pages.
type PagedResult[T any] struct {
	Items        []T  `json:"items"`
	PageNumber   int  `json:"pageNumber"`
	PageSize     int  `json:"pageSize"`
	TotalRecords int  `json:"totalRecords"`
	TotalPages   int  `json:"totalPages"`
	HasNext      bool `json:"hasNext"`
	HasPrevious  bool `json:"hasPrevious"`
}

// NewPagedResult builds the envelope for a page window that has already been
// sliced. totalRecords is the count across all pages, not len(items).
func NewPagedResult[T any](items []T, pageNumber, pageSize, totalRecords int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalRecords + pageSize - 1) / pageSize
	}
	return PagedResult[T]{
		Items:        items,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		HasNext:      pageNumber*pageSize < totalRecords,
		HasPrevious:  pageNumber > 1,
	}
}
