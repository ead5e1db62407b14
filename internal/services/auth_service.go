package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/auth"
	"github.com/Rokuginn/polytechnic-library/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserCredentialRepository is the interface that wraps methods for User table data access needed by the auth flows.
type UserCredentialRepository interface {
	// Method Create inserts a new user into the database.
	//
	// The generated ID is written back into "user". A duplicate username
	// is reported as apperrors.ErrUsernameTaken, enforced by the
	// database's unique constraint rather than application logic.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username (case-sensitive).
	//
	// If no such user exists, apperrors.ErrUserNotFound is returned.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// authService implements the registration and login flows
type authService struct {
	userRepo    UserCredentialRepository
	tokenIssuer *auth.TokenIssuer
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserCredentialRepository, tokenIssuer *auth.TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Register creates a new user account and returns its public fields
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.ErrMissingFields
	}

	// Role defaults to member; anything outside the closed set is
	// rejected at this boundary.
	role := models.RoleMember
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			return nil, apperrors.ErrInvalidRole
		}
	}

	// Pre-check gives a friendly error for the common case. The unique
	// constraint on users.username remains the guard against two
	// concurrent registrations racing past this check.
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// Login authenticates a user and returns a session token with the
// user's public fields
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", nil, apperrors.ErrMissingCredentials
	}

	// An unknown username and a wrong password both produce
	// ErrInvalidCredentials so callers cannot probe for registered names.
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user.Public(), nil
}
