package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rokuginn/polytechnic-library/internal/auth"
	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookCatalogService is the interface that wraps methods for book catalog business logic.
type BookCatalogService interface {
	// Method GetAll retrieves all books in API form.
	GetAll(ctx context.Context) ([]models.BookResponse, error)
	// Method GetByID retrieves a single book in API form.
	GetByID(ctx context.Context, id int) (*models.BookResponse, error)
	// Method Create adds a book to the catalog.
	Create(ctx context.Context, req *models.CreateBookRequest) (*models.BookResponse, error)
	// Method UpdateAvailability toggles a book's availability flag and returns the updated record.
	UpdateAvailability(ctx context.Context, id int, req *models.UpdateAvailabilityRequest) (*models.BookResponse, error)
}

// BookHandler handles book catalog HTTP requests
type BookHandler struct {
	BaseHandler
	bookService BookCatalogService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService BookCatalogService, logger *zap.Logger) *BookHandler {
	return &BookHandler{
		BaseHandler: BaseHandler{Logger: logger},
		bookService: bookService,
	}
}

// RegisterRoutes registers all book handler routes. Reads require
// authentication; writes additionally require the librarian role.
func (h *BookHandler) RegisterRoutes(r chi.Router, authMiddleware, librarianMiddleware func(http.Handler) http.Handler) {
	r.Route("/books", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(librarianMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}/availability", h.UpdateAvailability)
		})
	})
}

// GetAll handles GET /books
// @Summary Get all books
// @Description Get all books in the catalog with their availability status
// @Tags books
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.BookResponse "List of books"
// @Failure 401 {object} map[string]string "Missing token"
// @Failure 403 {object} map[string]string "Invalid or expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books [get]
func (h *BookHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.GetAll(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, books)
}

// GetByID handles GET /books/{id}
// @Summary Get book by ID
// @Description Get a single book by its ID
// @Tags books
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Book ID"
// @Success 200 {object} models.BookResponse "Book details"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Book not found"
// @Router /books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	book, err := h.bookService.GetByID(r.Context(), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, book)
}

// Create handles POST /books
// @Summary Add a book
// @Description Add a new book to the catalog (librarian only); new books start available
// @Tags books
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateBookRequest true "Book to add"
// @Success 201 {object} models.BookResponse "Created book"
// @Failure 400 {object} map[string]string "Missing title or author"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	book, err := h.bookService.Create(r.Context(), &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, book)
}

// updateAvailabilityResponse echoes the updated book and the librarian
// who made the change
type updateAvailabilityResponse struct {
	Message   string               `json:"message"`
	Book      *models.BookResponse `json:"book"`
	UpdatedBy updatedBy            `json:"updatedBy"`
}

type updatedBy struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

// UpdateAvailability handles PUT /books/{id}/availability
// @Summary Update book availability
// @Description Set a book's availability to "Y" or "N" (librarian only)
// @Tags books
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Book ID"
// @Param request body models.UpdateAvailabilityRequest true "New availability"
// @Success 200 {object} updateAvailabilityResponse "Updated book"
// @Failure 400 {object} map[string]string "Invalid availability value"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Book not found"
// @Router /books/{id}/availability [put]
func (h *BookHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	book, err := h.bookService.UpdateAvailability(r.Context(), id, &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	resp := updateAvailabilityResponse{
		Message: "Book availability updated successfully",
		Book:    book,
	}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		resp.UpdatedBy = updatedBy{UserID: claims.UserID, Username: claims.Username}
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
