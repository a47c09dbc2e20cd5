package service

import (
	"gorm.io/gorm" // GORM ORM library
)

// Page is one page of a listing
type Page[T any] struct {
	Items      []T   `json:"items"`       // Records on this page
	Page       int   `json:"page"`        // Current page, 1-based
	PageSize   int   `json:"page_size"`   // Fixed page size for the record type
	Total      int64 `json:"total"`       // Total matching records
	TotalPages int   `json:"total_pages"` // Total number of pages
}

// listPage runs a count plus a paginated select over the prepared query.
// Pages are 1-based and ordered most-recently-updated first; a page past
// the end comes back empty rather than failing.
func listPage[T any](query *gorm.DB, page, pageSize int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	offset := (page - 1) * pageSize // Calculate offset for pagination
	var items []T
	if err := query.Order("updated_at desc").Offset(offset).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, err
	}
	totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
	return &Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
