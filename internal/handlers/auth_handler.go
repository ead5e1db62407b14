package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register performs credential validation and user creation and returns the created user's public fields.
	//
	// "req" parameter contains username, password and an optional role.
	//
	// If the credentials are invalid or the username is already taken, an application error is returned together with a "nil" value.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	// Method Login performs credential validation and returns a session token with the user's public fields.
	//
	// An unknown username and a wrong password are indistinguishable in the returned error.
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register handles POST /register
// @Summary Register a new user
// @Description Register a new user with username, password, and optional role (member or librarian, default member)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.UserResponse "Created user"
// @Failure 400 {object} map[string]string "Missing fields, invalid role, or username taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST /login
// @Summary Login user
// @Description Authenticate a user with username and password and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "Token and user"
// @Failure 400 {object} map[string]string "Missing credentials"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	token, user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}
