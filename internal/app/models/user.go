package models

// Role values stored on users.role.
const (
	RoleAdmin = "admin"
	RoleHOD   = "hod"
	RoleStaff = "staff"
)

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role     string `json:"role" db:"role"`
}
