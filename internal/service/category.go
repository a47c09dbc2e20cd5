package service

import (
	"errors"

	"budgetbook/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Number of categories per listing page
const categoryPageSize = 5

// CategoryService manages expense categories
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService returns a category service over the given database
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns one page of categories; categories are shared reference
// data, so the listing is not scoped to a user
func (s *CategoryService) List(page int) (*Page[domain.Category], error) {
	return listPage[domain.Category](s.db.Model(&domain.Category{}), page, categoryPageSize)
}

// Get returns the category with the given ID
func (s *CategoryService) Get(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetByName returns the category with the given name (exact match)
func (s *CategoryService) GetByName(name string) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Save creates or updates the category
func (s *CategoryService) Save(category *domain.Category) error {
	return s.db.Save(category).Error
}

// CanBeDeleted reports whether no transaction references the category.
// A failed count is treated as "still referenced" so a broken query can
// never let a delete through.
func (s *CategoryService) CanBeDeleted(category *domain.Category) bool {
	var count int64
	if err := s.db.Model(&domain.Transaction{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

// Delete removes the category unless transactions still reference it
func (s *CategoryService) Delete(category *domain.Category) error {
	if !s.CanBeDeleted(category) {
		return ErrDeletionBlocked
	}
	return s.db.Delete(category).Error
}
