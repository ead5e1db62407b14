package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanRepository_GetUsersWithBooks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanRepository(db)

	// alice has two loans, bob has none (NULL book columns from the
	// LEFT JOIN)
	rows := sqlmock.NewRows([]string{"id", "username", "role", "id", "title", "author"}).
		AddRow(1, "alice", "member", 10, "Clean Code", "Robert Martin").
		AddRow(1, "alice", "member", 11, "Refactoring", "Martin Fowler").
		AddRow(2, "bob", "librarian", nil, nil, nil)
	mock.ExpectQuery("SELECT u.id, u.username, u.role, b.id, b.title, b.author FROM users u").
		WillReturnRows(rows)

	users, err := repo.GetUsersWithBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "alice", users[0].Username)
	require.Len(t, users[0].Books, 2)
	assert.Equal(t, "Clean Code", users[0].Books[0].Title)
	assert.Equal(t, 11, users[0].Books[1].ID)

	assert.Equal(t, "bob", users[1].Username)
	assert.NotNil(t, users[1].Books)
	assert.Empty(t, users[1].Books)
}
