package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// bookRepository implements the book repository interfaces declared by
// the services that consume it
type bookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *sql.DB) *bookRepository {
	return &bookRepository{db: db}
}

// GetAll retrieves all books ordered by title
func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query := `
		SELECT id, title, author, availability, created_at
		FROM books
		ORDER BY title
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Availability, &book.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return books, nil
}

// GetByID retrieves a book by ID
func (r *bookRepository) GetByID(ctx context.Context, id int) (*models.Book, error) {
	query := `
		SELECT id, title, author, availability, created_at
		FROM books
		WHERE id = ?
	`

	book := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Availability,
		&book.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

// Create inserts a new book and sets its generated ID
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (title, author, availability)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, book.Title, book.Author, book.Availability)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	book.ID = int(id)
	return nil
}

// UpdateAvailability sets a book's availability flag. Existence is
// checked by the caller; MySQL reports zero affected rows when the new
// value equals the old one, so that count cannot distinguish a missing
// book from an unchanged one.
func (r *bookRepository) UpdateAvailability(ctx context.Context, id int, availability string) error {
	query := `UPDATE books SET availability = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, availability, id); err != nil {
		return fmt.Errorf("failed to update book availability: %w", err)
	}

	return nil
}
