package service

import (
	"testing"

	"budgetbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentDeleteRefusedWhileReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE payment_id = \\?").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := svc.Delete(&domain.Payment{ID: 1, Name: "Card"})
	assert.ErrorIs(t, err, ErrDeletionBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentDeleteSucceedsWhenUnreferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE payment_id = \\?").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `payments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(&domain.Payment{ID: 1, Name: "Card"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
