package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserManagementService is the interface that wraps methods for user management business logic.
type UserManagementService interface {
	// Method GetAll retrieves the public fields of all users.
	GetAll(ctx context.Context) ([]models.UserResponse, error)
	// Method GetByID retrieves the public fields of one user.
	GetByID(ctx context.Context, id int) (*models.UserResponse, error)
	// Method Update changes a user's username and role.
	Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.UserResponse, error)
	// Method Delete removes a user by ID.
	Delete(ctx context.Context, id int) error
	// Method Search retrieves users whose username contains the term.
	Search(ctx context.Context, term string) ([]models.UserResponse, error)
	// Method UsersWithBooks retrieves every user with their borrowed books.
	UsersWithBooks(ctx context.Context) ([]models.UserWithBooks, error)
}

// UserHandler handles user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserManagementService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserManagementService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes; the whole group is
// librarian-only
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware, librarianMiddleware func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(librarianMiddleware)
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/with-books", h.UsersWithBooks)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /users
// @Summary Get all users
// @Description Get the public fields of all users (librarian only)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.UserResponse "List of users"
// @Failure 401 {object} map[string]string "Missing token"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// Search handles GET /users/search
// @Summary Search users
// @Description Search users by username substring (librarian only)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param searchTerm query string true "Substring to match against usernames"
// @Success 200 {array} models.UserResponse "Matching users"
// @Failure 400 {object} map[string]string "Missing search term"
// @Router /users/search [get]
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Search(r.Context(), r.URL.Query().Get("searchTerm"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// UsersWithBooks handles GET /users/with-books
// @Summary Get users with their borrowed books
// @Description Get every user together with the books currently on loan to them (librarian only)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.UserWithBooks "Users with borrowed books"
// @Failure 401 {object} map[string]string "Missing token"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /users/with-books [get]
func (h *UserHandler) UsersWithBooks(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.UsersWithBooks(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// GetByID handles GET /users/{id}
// @Summary Get user by ID
// @Description Get the public fields of one user (librarian only)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse "User details"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/{id}
// @Summary Update user
// @Description Change a user's username and role (librarian only)
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "New username and role"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	user, err := h.userService.Update(r.Context(), id, &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}
// @Summary Delete user
// @Description Remove a user by ID (librarian only)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
