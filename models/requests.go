package models

// Typed request bodies for every mutation exposed by the API. Each operation
// has its own struct so that handlers decode exactly the fields the operation
// accepts; nothing reaches the service layer as an untyped map.

// SignUpRequest carries the fields accepted by the signup operation.
// Email and Password are required; the profile fields are optional.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	LastName string `json:"last_name,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePurchaseRequest carries the fields accepted when creating a purchase.
//
// IsDone is a pointer so that an omitted value can be distinguished from an
// explicit false: omitted defaults to true. UserID optionally assigns the
// purchase to an explicit owner instead of the caller.
type CreatePurchaseRequest struct {
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	IsDone *bool    `json:"is_done,omitempty"`
	UserID *int64   `json:"user_id,omitempty"`
}

// UpdatePurchaseRequest carries the partial field set applied by the update
// operation. Omitted fields keep their stored values.
type UpdatePurchaseRequest struct {
	Name   *string  `json:"name,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	IsDone *bool    `json:"is_done,omitempty"`
	UserID *int64   `json:"user_id,omitempty"`
}
