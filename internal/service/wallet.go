package service

import (
	"errors"

	"budgetbook/internal/domain" // Importing domain models
	"budgetbook/internal/policy" // Ownership checks

	"gorm.io/gorm" // GORM ORM library
)

// Number of wallets per listing page
const walletPageSize = 5

// WalletService manages wallets and their ownership rules
type WalletService struct {
	db *gorm.DB
}

// NewWalletService returns a wallet service over the given database
func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// List returns one page of wallets; admins see every wallet, other
// users only their own
func (s *WalletService) List(page int, user *domain.User) (*Page[domain.Wallet], error) {
	query := s.db.Model(&domain.Wallet{})
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}
	return listPage[domain.Wallet](query, page, walletPageSize)
}

// Get returns the wallet with the given ID if the user may view it.
// A wallet that exists but belongs to someone else comes back as
// ErrAccessDenied, distinct from ErrNotFound.
func (s *WalletService) Get(id uint, user *domain.User) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := s.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(&wallet, user) {
		return nil, ErrAccessDenied
	}
	return &wallet, nil
}

// Create persists a new wallet owned by the acting user
func (s *WalletService) Create(wallet *domain.Wallet, user *domain.User) error {
	wallet.UserID = user.ID
	return s.db.Create(wallet).Error
}

// Update persists changes to the wallet if the user may edit it
func (s *WalletService) Update(wallet *domain.Wallet, user *domain.User) error {
	if !policy.CanEdit(wallet, user) {
		return ErrAccessDenied
	}
	return s.db.Save(wallet).Error
}

// CanBeDeleted reports whether no transaction references the wallet;
// a failed count denies the delete
func (s *WalletService) CanBeDeleted(wallet *domain.Wallet) bool {
	var count int64
	if err := s.db.Model(&domain.Transaction{}).
		Where("wallet_id = ?", wallet.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

// Delete removes the wallet if the user may delete it and no
// transaction references it
func (s *WalletService) Delete(wallet *domain.Wallet, user *domain.User) error {
	if !policy.CanDelete(wallet, user) {
		return ErrAccessDenied
	}
	if !s.CanBeDeleted(wallet) {
		return ErrDeletionBlocked
	}
	return s.db.Delete(wallet).Error
}
