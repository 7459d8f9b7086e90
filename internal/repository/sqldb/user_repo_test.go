package sqldb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"user_id", "name", "email", "post_id", "post_title", "post_body", "address_id", "address_street",
}

func TestListRowsUsesLimitAndOffset(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users LEFT JOIN posts (.+) LEFT JOIN addresses (.+) LIMIT (.+) OFFSET`).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(1), "A", "a@x.com", int64(5), "Sample Title", "hello", int64(9), "1 Main St").
			AddRow(int64(2), "B", "b@x.com", nil, nil, nil, nil, nil))

	repo := NewUserRepository(db)
	rows, err := repo.ListRows(context.Background(), 10, 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].UserID)
	assert.Equal(t, "A", rows[0].Name.String)
	assert.True(t, rows[0].PostID.Valid)
	assert.Equal(t, int64(5), rows[0].PostID.Int64)
	assert.Equal(t, "1 Main St", rows[0].AddressStreet.String)

	assert.False(t, rows[1].PostID.Valid)
	assert.False(t, rows[1].AddressID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRowsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnError(errors.New("no such table: users"))

	repo := NewUserRepository(db)
	_, err = repo.ListRows(context.Background(), 10, 0)
	assert.ErrorContains(t, err, "no such table: users")
}

func TestFindRowsByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users (.+) WHERE users.id = `).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	repo := NewUserRepository(db)
	rows, err := repo.FindRowsByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRowsByIDScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	repo := NewUserRepository(db)
	_, err = repo.FindRowsByID(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to scan user row")
}

func TestCreateWithAddressAndPostCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WithArgs("A", "a@x.com").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WithArgs(int64(7), "1 Main St").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO posts`).WithArgs(int64(7), "Sample Title", "hello").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewUserRepository(db)
	id, err := repo.CreateWithAddressAndPost(context.Background(), "A", "a@x.com", "1 Main St", "Sample Title", "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenUserInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	_, err = repo.CreateWithAddressAndPost(context.Background(), "A", "a@x.com", "1 Main St", "Sample Title", "hello")
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenAddressInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// 地址插入失败后不应再插入帖子，也不应提交
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	_, err = repo.CreateWithAddressAndPost(context.Background(), "A", "a@x.com", "1 Main St", "Sample Title", "hello")
	assert.ErrorContains(t, err, "failed to insert address")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenPostInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec(`INSERT INTO posts`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	_, err = repo.CreateWithAddressAndPost(context.Background(), "A", "a@x.com", "1 Main St", "Sample Title", "hello")
	assert.ErrorContains(t, err, "failed to insert post")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	repo := NewUserRepository(db)
	_, err = repo.CreateWithAddressAndPost(context.Background(), "A", "a@x.com", "", "Sample Title", "")
	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}
