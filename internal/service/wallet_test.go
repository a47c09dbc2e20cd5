package service

import (
	"testing"

	"budgetbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletListScopedToOwnerForRegularUsers(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	user := &domain.User{ID: 7, Role: domain.RoleUser}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `wallets` WHERE user_id = \\?").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM `wallets` WHERE user_id = \\?").
		WillReturnRows(walletRows(3, 7, 1000))

	page, err := svc.List(1, user)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint(7), page.Items[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletListUnscopedForAdmins(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `wallets`$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM `wallets` ORDER BY updated_at desc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance", "user_id"}).
			AddRow(3, "Main wallet", 1000, 7).
			AddRow(4, "Savings", 5000, 8))

	page, err := svc.List(1, admin)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletGetDeniedForStranger(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	stranger := &domain.User{ID: 8, Role: domain.RoleUser}

	mock.ExpectQuery("SELECT (.+) FROM `wallets`").
		WillReturnRows(walletRows(3, 7, 1000))

	_, err := svc.Get(3, stranger)
	// Denial is distinct from not-found
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestWalletGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	user := &domain.User{ID: 8, Role: domain.RoleUser}

	mock.ExpectQuery("SELECT (.+) FROM `wallets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance", "user_id"}))

	_, err := svc.Get(99, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWalletCreateSetsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	user := &domain.User{ID: 7, Role: domain.RoleUser}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `wallets`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	wallet := &domain.Wallet{Name: "Main wallet", Balance: 1000}
	err := svc.Create(wallet, user)
	require.NoError(t, err)
	assert.Equal(t, uint(7), wallet.UserID)
}

func TestWalletDeleteRefusedWhileReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	owner := &domain.User{ID: 7, Role: domain.RoleUser}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE wallet_id = \\?").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	err := svc.Delete(&domain.Wallet{ID: 3, UserID: 7}, owner)
	assert.ErrorIs(t, err, ErrDeletionBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletDeleteDeniedBeforeGuardRuns(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWalletService(db)
	stranger := &domain.User{ID: 8, Role: domain.RoleUser}

	// Authorization is checked first, so not even the count query runs
	err := svc.Delete(&domain.Wallet{ID: 3, UserID: 7}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletUpdateDeniedForStranger(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewWalletService(db)
	stranger := &domain.User{ID: 8, Role: domain.RoleUser}

	err := svc.Update(&domain.Wallet{ID: 3, UserID: 7, Name: "Main wallet"}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
