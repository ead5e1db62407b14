package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success sets generated ID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("INSERT INTO users").
			WithArgs("alice", "hashed", models.RoleMember).
			WillReturnResult(sqlmock.NewResult(5, 1))

		user := &models.User{Username: "alice", PasswordHash: "hashed", Role: models.RoleMember}
		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, 5, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("INSERT INTO users").
			WithArgs("alice", "hashed", models.RoleMember).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice'"})

		user := &models.User{Username: "alice", PasswordHash: "hashed", Role: models.RoleMember}
		err := repo.Create(context.Background(), user)

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
			AddRow(3, "alice", "hashed", "librarian")
		mock.ExpectQuery("SELECT id, username, password_hash, role FROM users WHERE username").
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, 3, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed", user.PasswordHash)
		assert.Equal(t, models.RoleLibrarian, user.Role)
	})

	t.Run("not found maps to ErrUserNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery("SELECT id, username, password_hash, role FROM users WHERE username").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("UPDATE users").
			WithArgs("alice2", models.RoleLibrarian, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), 3, "alice2", models.RoleLibrarian)

		assert.NoError(t, err)
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("UPDATE users").
			WithArgs("taken", models.RoleMember, 3).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'taken'"})

		err := repo.Update(context.Background(), 3, "taken", models.RoleMember)

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("DELETE FROM users").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("no rows affected maps to ErrUserNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("DELETE FROM users").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
		AddRow(1, "alice", "h1", "member").
		AddRow(2, "malice", "h2", "librarian")
	mock.ExpectQuery("SELECT id, username, password_hash, role FROM users WHERE username LIKE").
		WithArgs("lic").
		WillReturnRows(rows)

	users, err := repo.Search(context.Background(), "lic")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "malice", users[1].Username)
}
