package service

import (
	"testing"

	"budgetbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationDeleteRefusedWhileReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOperationService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE operation_id = \\?").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.Delete(&domain.Operation{ID: 2, Name: "Expense"})
	assert.ErrorIs(t, err, ErrDeletionBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationDeleteSucceedsWhenUnreferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOperationService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE operation_id = \\?").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `operations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(&domain.Operation{ID: 2, Name: "Expense"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
