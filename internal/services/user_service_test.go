package services

import (
	"context"
	"testing"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserAdminRepo is an in-memory UserAdminRepository
type mockUserAdminRepo struct {
	users map[int]*models.User
}

func newMockUserAdminRepo(users ...*models.User) *mockUserAdminRepo {
	m := &mockUserAdminRepo{users: map[int]*models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserAdminRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserAdminRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user := *u
	return &user, nil
}

func (m *mockUserAdminRepo) Update(ctx context.Context, id int, username string, role models.Role) error {
	if u, ok := m.users[id]; ok {
		u.Username = username
		u.Role = role
	}
	return nil
}

func (m *mockUserAdminRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserAdminRepo) Search(ctx context.Context, term string) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

// mockLoanRepo returns a fixed users-with-books report
type mockLoanRepo struct {
	report []models.UserWithBooks
}

func (m *mockLoanRepo) GetUsersWithBooks(ctx context.Context) ([]models.UserWithBooks, error) {
	return m.report, nil
}

func TestUserService_GetByID(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: 1, Username: "alice", PasswordHash: "hash", Role: models.RoleMember})
	svc := NewUserService(repo, &mockLoanRepo{})

	t.Run("found returns public fields only", func(t *testing.T) {
		user, err := svc.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, models.RoleMember, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		req       *models.UpdateUserRequest
		expectErr error
	}{
		{
			name: "success",
			id:   1,
			req:  &models.UpdateUserRequest{Username: "alice2", Role: "librarian"},
		},
		{
			name:      "missing username",
			id:        1,
			req:       &models.UpdateUserRequest{Username: " ", Role: "member"},
			expectErr: apperrors.ErrMissingFields,
		},
		{
			name:      "invalid role",
			id:        1,
			req:       &models.UpdateUserRequest{Username: "alice2", Role: "admin"},
			expectErr: apperrors.ErrInvalidRole,
		},
		{
			name:      "unknown user",
			id:        99,
			req:       &models.UpdateUserRequest{Username: "alice2", Role: "member"},
			expectErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockUserAdminRepo(&models.User{ID: 1, Username: "alice", Role: models.RoleMember})
			svc := NewUserService(repo, &mockLoanRepo{})

			user, err := svc.Update(context.Background(), tt.id, tt.req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice2", user.Username)
			assert.Equal(t, models.RoleLibrarian, user.Role)
			assert.Equal(t, "alice2", repo.users[1].Username)
		})
	}
}

func TestUserService_Search(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: 1, Username: "alice", Role: models.RoleMember})
	svc := NewUserService(repo, &mockLoanRepo{})

	t.Run("empty term is rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "   ")
		assert.ErrorIs(t, err, apperrors.ErrMissingSearchTerm)
	})

	t.Run("results carry public fields only", func(t *testing.T) {
		users, err := svc.Search(context.Background(), "ali")

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)
	})
}

func TestUserService_UsersWithBooks(t *testing.T) {
	report := []models.UserWithBooks{
		{ID: 1, Username: "alice", Role: models.RoleMember, Books: []models.BorrowedBook{
			{ID: 10, Title: "Clean Code", Author: "Robert Martin"},
		}},
	}
	svc := NewUserService(newMockUserAdminRepo(), &mockLoanRepo{report: report})

	got, err := svc.UsersWithBooks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, report, got)
}
