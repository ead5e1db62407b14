package services

import (
	"context"
	"strings"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// UserAdminRepository is the interface that wraps methods for User table data access needed by user management.
type UserAdminRepository interface {
	// Method GetAll retrieves all users ordered by username.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If no such user exists, apperrors.ErrUserNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.User, error)
	// Method Update changes a user's username and role. A duplicate
	// username is reported as apperrors.ErrUsernameTaken.
	Update(ctx context.Context, id int, username string, role models.Role) error
	// Method Delete removes a user by ID.
	//
	// If no such user exists, apperrors.ErrUserNotFound is returned.
	Delete(ctx context.Context, id int) error
	// Method Search retrieves users whose username contains the term.
	Search(ctx context.Context, term string) ([]models.User, error)
}

// LoanRepository is the interface that wraps methods for the loans join used in reports.
type LoanRepository interface {
	// Method GetUsersWithBooks retrieves every user with their borrowed books.
	GetUsersWithBooks(ctx context.Context) ([]models.UserWithBooks, error)
}

// userService implements user management business logic
type userService struct {
	userRepo UserAdminRepository
	loanRepo LoanRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserAdminRepository, loanRepo LoanRepository) *userService {
	return &userService{
		userRepo: userRepo,
		loanRepo: loanRepo,
	}
}

// GetAll retrieves the public fields of all users
func (s *userService) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return publicUsers(users), nil
}

// GetByID retrieves the public fields of one user
func (s *userService) GetByID(ctx context.Context, id int) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// Update changes a user's username and role and returns the updated
// public fields
func (s *userService) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.ErrMissingFields
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	// Existence check first; the update itself cannot tell a missing
	// user from an unchanged one.
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, id, username, role); err != nil {
		return nil, err
	}

	return &models.UserResponse{ID: id, Username: username, Role: role}, nil
}

// Delete removes a user by ID
func (s *userService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}

// Search retrieves users whose username contains the search term
func (s *userService) Search(ctx context.Context, term string) ([]models.UserResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.ErrMissingSearchTerm
	}

	users, err := s.userRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return publicUsers(users), nil
}

// UsersWithBooks retrieves every user with their borrowed books
func (s *userService) UsersWithBooks(ctx context.Context) ([]models.UserWithBooks, error) {
	return s.loanRepo.GetUsersWithBooks(ctx)
}

// publicUsers maps users to their public fields
func publicUsers(users []models.User) []models.UserResponse {
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *users[i].Public())
	}
	return responses
}
