package service

import (
	"errors"

	"budgetbook/internal/domain" // Importing domain models
	"budgetbook/internal/policy" // Ownership checks

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Association clauses for deletes
)

// Number of transactions per listing page
const transactionPageSize = 10

// TransactionService manages transactions and keeps wallet balances in
// step with them
type TransactionService struct {
	db *gorm.DB
}

// NewTransactionService returns a transaction service over the given database
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// List returns one page of transactions; admins see every transaction,
// other users only the ones they authored
func (s *TransactionService) List(page int, user *domain.User) (*Page[domain.Transaction], error) {
	query := s.db.Model(&domain.Transaction{}).Preload("Tags")
	if !user.IsAdmin() {
		query = query.Where("author_id = ?", user.ID)
	}
	return listPage[domain.Transaction](query, page, transactionPageSize)
}

// Get returns the transaction with the given ID if the user may view it
func (s *TransactionService) Get(id uint, user *domain.User) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := s.db.Preload("Tags").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(&transaction, user) {
		return nil, ErrAccessDenied
	}
	return &transaction, nil
}

// targetWallet loads the wallet a transaction points at and checks the
// acting user may move money through it
func (s *TransactionService) targetWallet(walletID uint, user *domain.User) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := s.db.First(&wallet, walletID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanEdit(&wallet, user) {
		return nil, ErrAccessDenied
	}
	return &wallet, nil
}

// Create persists a new transaction authored by the acting user and
// adds its amount to the wallet balance. Both writes run inside one
// database transaction, with the increment applied in SQL so two
// concurrent creations on the same wallet cannot lose an update.
func (s *TransactionService) Create(transaction *domain.Transaction, user *domain.User) error {
	transaction.AuthorID = user.ID
	if _, err := s.targetWallet(transaction.WalletID, user); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Wallet{}).
			Where("id = ?", transaction.WalletID).
			Update("balance", gorm.Expr("balance + ?", transaction.Amount)).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"author_id": user.ID,
			"wallet_id": transaction.WalletID,
			"amount":    transaction.Amount,
			"error":     err.Error(),
		}).Error("Transaction create failed")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"author_id":      user.ID,
		"wallet_id":      transaction.WalletID,
		"amount":         transaction.Amount,
	}).Info("Transaction created")
	return nil
}

// Update persists changes to the transaction and re-balances the
// affected wallets by delta. Within one wallet the balance moves by
// newAmount - prevAmount; when the transaction was moved to another
// wallet the previous amount is backed out of the old wallet and the
// new amount added to the new one. All writes share one database
// transaction.
func (s *TransactionService) Update(transaction *domain.Transaction, prevAmount int64, prevWalletID uint, user *domain.User) error {
	if !policy.CanEdit(transaction, user) {
		return ErrAccessDenied
	}
	if _, err := s.targetWallet(transaction.WalletID, user); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(transaction).Error; err != nil {
			return err
		}
		// Sync the tag set; Replace also removes dropped links
		tags := transaction.Tags
		if tags == nil {
			tags = []domain.Tag{}
		}
		if err := tx.Model(transaction).Association("Tags").Replace(tags); err != nil {
			return err
		}
		if transaction.WalletID == prevWalletID {
			delta := transaction.Amount - prevAmount
			if delta == 0 {
				return nil
			}
			return tx.Model(&domain.Wallet{}).
				Where("id = ?", transaction.WalletID).
				Update("balance", gorm.Expr("balance + ?", delta)).Error
		}
		if err := tx.Model(&domain.Wallet{}).
			Where("id = ?", prevWalletID).
			Update("balance", gorm.Expr("balance - ?", prevAmount)).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Wallet{}).
			Where("id = ?", transaction.WalletID).
			Update("balance", gorm.Expr("balance + ?", transaction.Amount)).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,
			"wallet_id":      transaction.WalletID,
			"amount":         transaction.Amount,
			"error":          err.Error(),
		}).Error("Transaction update failed")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"wallet_id":      transaction.WalletID,
		"amount":         transaction.Amount,
	}).Info("Transaction updated")
	return nil
}

// Delete removes the transaction and its tag links if the user may
// delete it. The wallet balance is left as it is; see DESIGN.md for
// the open product decision on reversing it.
func (s *TransactionService) Delete(transaction *domain.Transaction, user *domain.User) error {
	if !policy.CanDelete(transaction, user) {
		return ErrAccessDenied
	}
	return s.db.Select(clause.Associations).Delete(transaction).Error
}
