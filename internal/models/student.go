package models

import "time"

// Student represents a student record
type Student struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudentRequest represents a student create/update request
type StudentRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
