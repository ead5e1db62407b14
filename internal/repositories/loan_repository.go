package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rokuginn/polytechnic-library/internal/models"
)

// loanRepository implements the loan repository interfaces declared by
// the services that consume it
type loanRepository struct {
	db *sql.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *sql.DB) *loanRepository {
	return &loanRepository{db: db}
}

// GetUsersWithBooks retrieves every user together with the books
// currently on loan to them. Users without loans are included with an
// empty book list.
func (r *loanRepository) GetUsersWithBooks(ctx context.Context) ([]models.UserWithBooks, error) {
	query := `
		SELECT u.id, u.username, u.role, b.id, b.title, b.author
		FROM users u
		LEFT JOIN loans l ON l.user_id = u.id
		LEFT JOIN books b ON b.id = l.book_id
		ORDER BY u.username, b.title
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users with books: %w", err)
	}
	defer rows.Close()

	var result []models.UserWithBooks
	index := make(map[int]int) // user ID -> position in result

	for rows.Next() {
		var (
			userID   int
			username string
			role     models.Role
			bookID   sql.NullInt64
			title    sql.NullString
			author   sql.NullString
		)
		if err := rows.Scan(&userID, &username, &role, &bookID, &title, &author); err != nil {
			return nil, fmt.Errorf("failed to scan user with books: %w", err)
		}

		pos, ok := index[userID]
		if !ok {
			pos = len(result)
			index[userID] = pos
			result = append(result, models.UserWithBooks{
				ID:       userID,
				Username: username,
				Role:     role,
				Books:    []models.BorrowedBook{},
			})
		}

		if bookID.Valid {
			result[pos].Books = append(result[pos].Books, models.BorrowedBook{
				ID:     int(bookID.Int64),
				Title:  title.String,
				Author: author.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
