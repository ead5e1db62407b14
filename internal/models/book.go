package models

import "time"

// Availability values stored in the books table
const (
	AvailabilityYes = "Y"
	AvailabilityNo  = "N"
)

// Book represents a book in the library catalog
type Book struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Availability string    `json:"availability"` // "Y" or "N"
	CreatedAt    time.Time `json:"createdAt"`
}

// BookResponse is the API representation of a book with the derived
// isAvailable flag
type BookResponse struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Availability string    `json:"availability"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Response converts a book to its API representation
func (b *Book) Response() BookResponse {
	return BookResponse{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Availability: b.Availability,
		IsAvailable:  b.Availability == AvailabilityYes,
		CreatedAt:    b.CreatedAt,
	}
}

// CreateBookRequest represents a book creation request
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UpdateAvailabilityRequest represents a book availability update request
type UpdateAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// BorrowedBook is a book entry in the users-with-books report
type BorrowedBook struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UserWithBooks pairs a user with the books currently on loan to them
type UserWithBooks struct {
	ID       int            `json:"id"`
	Username string         `json:"username"`
	Role     Role           `json:"role"`
	Books    []BorrowedBook `json:"books"`
}
