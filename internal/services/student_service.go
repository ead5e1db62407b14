package services

import (
	"context"
	"strings"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// StudentRepository is the interface that wraps methods for Student table data access.
type StudentRepository interface {
	// Method GetAll retrieves all students ordered by name.
	GetAll(ctx context.Context) ([]models.Student, error)
	// Method GetByID retrieves a student by ID.
	//
	// If no such student exists, apperrors.ErrStudentNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Student, error)
	// Method Create inserts a new student and writes the generated ID
	// back into "student".
	Create(ctx context.Context, student *models.Student) error
	// Method Update changes a student's name and address.
	Update(ctx context.Context, id int, name, address string) error
	// Method Delete removes a student by ID.
	//
	// If no such student exists, apperrors.ErrStudentNotFound is returned.
	Delete(ctx context.Context, id int) error
}

// studentService implements student record business logic
type studentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo StudentRepository) *studentService {
	return &studentService{studentRepo: studentRepo}
}

// GetAll retrieves all students
func (s *studentService) GetAll(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByID retrieves one student
func (s *studentService) GetByID(ctx context.Context, id int) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Create adds a student record
func (s *studentService) Create(ctx context.Context, req *models.StudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	if name == "" || address == "" {
		return nil, apperrors.ErrMissingStudentFields
	}

	student := &models.Student{
		Name:    name,
		Address: address,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	// Re-read so the response carries the database-assigned timestamp
	return s.studentRepo.GetByID(ctx, student.ID)
}

// Update changes a student record and returns the updated row
func (s *studentService) Update(ctx context.Context, id int, req *models.StudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	if name == "" || address == "" {
		return nil, apperrors.ErrMissingStudentFields
	}

	// Existence check first; the update itself cannot tell a missing
	// student from an unchanged one.
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, id, name, address); err != nil {
		return nil, err
	}

	student.Name = name
	student.Address = address
	return student, nil
}

// Delete removes a student record
func (s *studentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}
