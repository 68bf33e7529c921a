package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestContactRepository_ListOrdersNewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
		AddRow(2, "Newer", "newer@example.com", "m", now).
		AddRow(1, "Older", "older@example.com", "m", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "contacts" ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Newer", contacts[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListWrapsDBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "contacts" ORDER BY created_at DESC`)).
		WillReturnError(gorm.ErrInvalidDB)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")
}
