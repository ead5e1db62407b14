package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// studentRepository implements the student repository interfaces
// declared by the services that consume it
type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) *studentRepository {
	return &studentRepository{db: db}
}

// GetAll retrieves all students ordered by name
func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, address, created_at
		FROM students
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Address, &student.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int) (*models.Student, error) {
	query := `
		SELECT id, name, address, created_at
		FROM students
		WHERE id = ?
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Address,
		&student.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by id: %w", err)
	}

	return student, nil
}

// Create inserts a new student and sets its generated ID
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, address)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, student.Name, student.Address)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	student.ID = int(id)
	return nil
}

// Update changes a student's name and address. Existence is checked by
// the caller.
func (r *studentRepository) Update(ctx context.Context, id int, name, address string) error {
	query := `
		UPDATE students
		SET name = ?, address = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, name, address, id); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

// Delete removes a student by ID
func (r *studentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM students WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
