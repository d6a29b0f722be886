package models

// UserDB represents a user record in the database
type UserDB struct {
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"password" db:"password"` // bcrypt hash
	Email    string `json:"email" db:"email"`       // Email as provided at signup
}
