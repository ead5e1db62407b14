package services

import (
	"context"
	"strings"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// BookRepository is the interface that wraps methods for Book table data access.
type BookRepository interface {
	// Method GetAll retrieves all books ordered by title.
	GetAll(ctx context.Context) ([]models.Book, error)
	// Method GetByID retrieves a book by ID.
	//
	// If no such book exists, apperrors.ErrBookNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Book, error)
	// Method Create inserts a new book and writes the generated ID back
	// into "book".
	Create(ctx context.Context, book *models.Book) error
	// Method UpdateAvailability sets a book's availability flag.
	UpdateAvailability(ctx context.Context, id int, availability string) error
}

// bookService implements the book catalog business logic
type bookService struct {
	bookRepo BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo BookRepository) *bookService {
	return &bookService{bookRepo: bookRepo}
}

// GetAll retrieves all books in API form
func (s *bookService) GetAll(ctx context.Context) ([]models.BookResponse, error) {
	books, err := s.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, books[i].Response())
	}

	return responses, nil
}

// GetByID retrieves a single book in API form
func (s *bookService) GetByID(ctx context.Context, id int) (*models.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := book.Response()
	return &resp, nil
}

// Create adds a book to the catalog; new books start available
func (s *bookService) Create(ctx context.Context, req *models.CreateBookRequest) (*models.BookResponse, error) {
	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	if title == "" || author == "" {
		return nil, apperrors.ErrMissingBookFields
	}

	book := &models.Book{
		Title:        title,
		Author:       author,
		Availability: models.AvailabilityYes,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	// Re-read so the response carries the database-assigned timestamp
	return s.GetByID(ctx, book.ID)
}

// UpdateAvailability toggles a book's availability flag and returns the
// updated record
func (s *bookService) UpdateAvailability(ctx context.Context, id int, req *models.UpdateAvailabilityRequest) (*models.BookResponse, error) {
	availability := strings.ToUpper(strings.TrimSpace(req.Availability))
	if availability != models.AvailabilityYes && availability != models.AvailabilityNo {
		return nil, apperrors.ErrInvalidAvailability
	}

	// Existence check first; the update itself cannot tell a missing
	// book from an unchanged value.
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookRepo.UpdateAvailability(ctx, id, availability); err != nil {
		return nil, err
	}

	book.Availability = availability
	resp := book.Response()
	return &resp, nil
}
