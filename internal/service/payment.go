package service

import (
	"errors"

	"budgetbook/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Number of payment methods per listing page
const paymentPageSize = 5

// PaymentService manages payment methods
type PaymentService struct {
	db *gorm.DB
}

// NewPaymentService returns a payment service over the given database
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// List returns one page of payment methods
func (s *PaymentService) List(page int) (*Page[domain.Payment], error) {
	return listPage[domain.Payment](s.db.Model(&domain.Payment{}), page, paymentPageSize)
}

// Get returns the payment method with the given ID
func (s *PaymentService) Get(id uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// GetByName returns the payment method with the given name (exact match)
func (s *PaymentService) GetByName(name string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.db.Where("name = ?", name).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Save creates or updates the payment method
func (s *PaymentService) Save(payment *domain.Payment) error {
	return s.db.Save(payment).Error
}

// CanBeDeleted reports whether no transaction references the payment
// method; a failed count denies the delete
func (s *PaymentService) CanBeDeleted(payment *domain.Payment) bool {
	var count int64
	if err := s.db.Model(&domain.Transaction{}).
		Where("payment_id = ?", payment.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

// Delete removes the payment method unless transactions still reference it
func (s *PaymentService) Delete(payment *domain.Payment) error {
	if !s.CanBeDeleted(payment) {
		return ErrDeletionBlocked
	}
	return s.db.Delete(payment).Error
}
