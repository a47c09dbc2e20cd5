package service

import (
	"errors"

	"budgetbook/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Number of operations per listing page
const operationPageSize = 5

// OperationService manages operation types (e.g. income, expense)
type OperationService struct {
	db *gorm.DB
}

// NewOperationService returns an operation service over the given database
func NewOperationService(db *gorm.DB) *OperationService {
	return &OperationService{db: db}
}

// List returns one page of operations
func (s *OperationService) List(page int) (*Page[domain.Operation], error) {
	return listPage[domain.Operation](s.db.Model(&domain.Operation{}), page, operationPageSize)
}

// Get returns the operation with the given ID
func (s *OperationService) Get(id uint) (*domain.Operation, error) {
	var operation domain.Operation
	if err := s.db.First(&operation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &operation, nil
}

// GetByName returns the operation with the given name (exact match)
func (s *OperationService) GetByName(name string) (*domain.Operation, error) {
	var operation domain.Operation
	if err := s.db.Where("name = ?", name).First(&operation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &operation, nil
}

// Save creates or updates the operation
func (s *OperationService) Save(operation *domain.Operation) error {
	return s.db.Save(operation).Error
}

// CanBeDeleted reports whether no transaction references the operation;
// a failed count denies the delete
func (s *OperationService) CanBeDeleted(operation *domain.Operation) bool {
	var count int64
	if err := s.db.Model(&domain.Transaction{}).
		Where("operation_id = ?", operation.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

// Delete removes the operation unless transactions still reference it
func (s *OperationService) Delete(operation *domain.Operation) error {
	if !s.CanBeDeleted(operation) {
		return ErrDeletionBlocked
	}
	return s.db.Delete(operation).Error
}
