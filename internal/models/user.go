package models

// Role is the closed set of user roles in the library system.
type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
)

// Valid reports whether the role is one of the allowed values
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleLibrarian
}

// User represents a user in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// UserResponse contains the public fields of a user
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Public returns the public fields of the user
func (u *User) Public() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
