package service

import (
	"testing"

	"budgetbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagRows(id uint, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name)
}

func TestResolveListCollapsesDuplicates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTagService(db)

	// "a" exists already
	mock.ExpectQuery("SELECT (.+) FROM `tags` WHERE LOWER").
		WillReturnRows(tagRows(1, "a"))
	// "b" does not and gets created
	mock.ExpectQuery("SELECT (.+) FROM `tags` WHERE LOWER").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `tags`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	// The second "a" resolves to the same tag again
	mock.ExpectQuery("SELECT (.+) FROM `tags` WHERE LOWER").
		WillReturnRows(tagRows(1, "a"))

	tags, err := svc.ResolveList("a, b, a")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0].Name)
	assert.Equal(t, "b", tags[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveListReusesByCaseInsensitiveMatch(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTagService(db)

	// "Food" was stored earlier; "food" must reuse it, not create a twin
	mock.ExpectQuery("SELECT (.+) FROM `tags` WHERE LOWER").
		WillReturnRows(tagRows(5, "Food"))

	tags, err := svc.ResolveList("food")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, uint(5), tags[0].ID)
	assert.Equal(t, "Food", tags[0].Name)
}

func TestResolveListSkipsEmptySegments(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTagService(db)

	// No queries at all for blank input
	tags, err := svc.ResolveList("")
	require.NoError(t, err)
	assert.Empty(t, tags)

	tags, err = svc.ResolveList(" ,  , ")
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveListPreservesInputCasingOnCreate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTagService(db)

	mock.ExpectQuery("SELECT (.+) FROM `tags` WHERE LOWER").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `tags`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	tags, err := svc.ResolveList("Weekend Trip")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Weekend Trip", tags[0].Name)
	assert.Equal(t, uint(9), tags[0].ID)
}

func TestSerializeList(t *testing.T) {
	assert.Equal(t, "", SerializeList(nil))
	assert.Equal(t, "", SerializeList([]domain.Tag{}))
	assert.Equal(t, "a", SerializeList([]domain.Tag{{Name: "a"}}))
	assert.Equal(t, "a, b", SerializeList([]domain.Tag{{Name: "a"}, {Name: "b"}}))
}

func TestTagDeleteHasNoGuard(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTagService(db)

	// Straight delete, no referencing-transaction count beforehand
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `tags`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(&domain.Tag{ID: 3, Name: "stale"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
