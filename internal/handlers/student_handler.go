package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StudentRecordService is the interface that wraps methods for student record business logic.
type StudentRecordService interface {
	// Method GetAll retrieves all students.
	GetAll(ctx context.Context) ([]models.Student, error)
	// Method GetByID retrieves one student.
	GetByID(ctx context.Context, id int) (*models.Student, error)
	// Method Create adds a student record.
	Create(ctx context.Context, req *models.StudentRequest) (*models.Student, error)
	// Method Update changes a student record.
	Update(ctx context.Context, id int, req *models.StudentRequest) (*models.Student, error)
	// Method Delete removes a student record.
	Delete(ctx context.Context, id int) error
}

// StudentHandler handles student record HTTP requests
type StudentHandler struct {
	BaseHandler
	studentService StudentRecordService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService StudentRecordService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		studentService: studentService,
	}
}

// RegisterRoutes registers all student handler routes. Reads require
// authentication; writes additionally require the librarian role.
func (h *StudentHandler) RegisterRoutes(r chi.Router, authMiddleware, librarianMiddleware func(http.Handler) http.Handler) {
	r.Route("/students", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(librarianMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// GetAll handles GET /students
// @Summary Get all students
// @Description Get all student records
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Student "List of students"
// @Failure 401 {object} map[string]string "Missing token"
// @Router /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.GetAll(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, students)
}

// GetByID handles GET /students/{id}
// @Summary Get student by ID
// @Description Get a single student record by its ID
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student "Student details"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	student, err := h.studentService.GetByID(r.Context(), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, student)
}

// Create handles POST /students
// @Summary Add a student
// @Description Add a new student record (librarian only)
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.StudentRequest true "Student to add"
// @Success 201 {object} models.Student "Created student"
// @Failure 400 {object} map[string]string "Missing name or address"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	student, err := h.studentService.Create(r.Context(), &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, student)
}

// Update handles PUT /students/{id}
// @Summary Update student
// @Description Change a student's name and address (librarian only)
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body models.StudentRequest true "New name and address"
// @Success 200 {object} models.Student "Updated student"
// @Failure 400 {object} map[string]string "Missing name or address"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id} [put]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	var req models.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	student, err := h.studentService.Update(r.Context(), id, &req)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, student)
}

// Delete handles DELETE /students/{id}
// @Summary Delete student
// @Description Remove a student record by ID (librarian only)
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}
