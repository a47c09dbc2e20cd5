package service

import (
	"errors"
	"testing"

	"budgetbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCanBeDeletedWhenUnreferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE category_id = \\?").
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	assert.True(t, svc.CanBeDeleted(&domain.Category{ID: 4, Name: "Leisure"}))
}

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE category_id = \\?").
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// No DELETE reaches the database
	err := svc.Delete(&domain.Category{ID: 4, Name: "Leisure"})
	assert.ErrorIs(t, err, ErrDeletionBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteSucceedsWhenUnreferenced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE category_id = \\?").
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(&domain.Category{ID: 4, Name: "Leisure"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGuardFailsSafeOnCountError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	// A broken count query must never let a delete through
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions` WHERE category_id = \\?").
		WillReturnError(errors.New("connection lost"))

	assert.False(t, svc.CanBeDeleted(&domain.Category{ID: 4, Name: "Leisure"}))
}

func TestCategoryGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery("SELECT (.+) FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryListReturnsEmptyPagePastTheEnd(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT (.+) FROM `categories` ORDER BY updated_at desc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	page, err := svc.List(9)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 9, page.Page)
}
