package policy

import (
	"testing"

	"budgetbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOwnerHasAllPermissions(t *testing.T) {
	owner := &domain.User{ID: 7, Role: domain.RoleUser}
	transaction := &domain.Transaction{ID: 1, AuthorID: 7}

	assert.True(t, CanView(transaction, owner))
	assert.True(t, CanEdit(transaction, owner))
	assert.True(t, CanDelete(transaction, owner))
}

func TestOtherUserIsDeniedEverything(t *testing.T) {
	other := &domain.User{ID: 8, Role: domain.RoleUser}
	transaction := &domain.Transaction{ID: 1, AuthorID: 7}

	// View, edit and delete share the same rule
	assert.False(t, CanView(transaction, other))
	assert.False(t, CanEdit(transaction, other))
	assert.False(t, CanDelete(transaction, other))
}

func TestAdminMayAccessAnything(t *testing.T) {
	admin := &domain.User{ID: 99, Role: domain.RoleAdmin}
	transaction := &domain.Transaction{ID: 1, AuthorID: 7}
	wallet := &domain.Wallet{ID: 2, UserID: 7}

	assert.True(t, CanView(transaction, admin))
	assert.True(t, CanEdit(wallet, admin))
	assert.True(t, CanDelete(wallet, admin))
}

func TestUnauthenticatedIsAlwaysDenied(t *testing.T) {
	transaction := &domain.Transaction{ID: 1, AuthorID: 7}

	assert.False(t, CanView(transaction, nil))
	assert.False(t, CanEdit(transaction, nil))
	assert.False(t, CanDelete(transaction, nil))
}

func TestWalletOwnership(t *testing.T) {
	owner := &domain.User{ID: 3, Role: domain.RoleUser}
	stranger := &domain.User{ID: 4, Role: domain.RoleUser}
	wallet := &domain.Wallet{ID: 5, UserID: 3}

	assert.True(t, CanEdit(wallet, owner))
	assert.False(t, CanEdit(wallet, stranger))
}
