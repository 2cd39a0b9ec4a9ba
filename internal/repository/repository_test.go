package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password", "first_name", "last_name", "created_at", "updated_at"}).
		AddRow(1, "princess@example.com", "hashed", "princess", "dada", now, now)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("princess@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.GetByEmail("princess@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "princess", user.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SearchIDsByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(8)
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE first_name ILIKE \$1 OR last_name ILIKE \$2`).
		WithArgs("%ada%", "%ada%").
		WillReturnRows(rows)

	ids, err := repo.SearchIDsByName("ada")
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 8}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_IncrementReadCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectExec(`UPDATE "blogs" SET "read_count"=read_count \+ \$1 WHERE id = \$2 AND state = \$3`).
		WithArgs(1, 5, domain.StatePublished).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementReadCount(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_IncrementReadCount_NotPublished(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectExec(`UPDATE "blogs" SET "read_count"=read_count \+ \$1 WHERE id = \$2 AND state = \$3`).
		WithArgs(1, 9, domain.StatePublished).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementReadCount(9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_GetByTitle_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE title = \$1`).
		WithArgs("Missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByTitle("Missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
