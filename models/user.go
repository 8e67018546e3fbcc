package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at creation.
	UserID int64 `json:"id"`

	// Name is the user's first name. Optional, may be shown in UI.
	Name string `json:"name,omitempty"`

	// LastName is the user's last name. Optional.
	LastName string `json:"last_name,omitempty"`

	// UserName is an optional public handle. When set it is globally
	// unique among users; when empty it is stored as NULL.
	UserName string `json:"user_name,omitempty"`

	// Email is the unique login identifier. Required.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Never plaintext, never serialized to JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
