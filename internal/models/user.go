package models

// User represents an account record kept in memory.
type User struct {
	ID       int64  `json:"id"`       // Assigned on creation
	Username string `json:"username"` // Login name
	Password string `json:"-"`        // Password hash, never serialized
}
