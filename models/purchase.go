package models

import (
	"time"

	"github.com/lib/pq"
)

// Purchase represents a single purchase record optionally owned by a user.
//
// Ownership drives authorization: mutations on a purchase are allowed only
// for the user referenced by UserID. A purchase may exist without an owner
// (UserID nil), in which case nobody may mutate it through the API.
type Purchase struct {
	// PurchaseID is the internal unique identifier of the purchase,
	// assigned by the database at creation.
	PurchaseID int64 `json:"id"`

	// Name is the purchase title. Required.
	Name string `json:"name"`

	// Tags is an ordered list of labels attached to the purchase.
	// Stored as a PostgreSQL TEXT[] column; pq.StringArray handles the
	// array encoding through database/sql.
	Tags pq.StringArray `json:"tags"`

	// IsDone reports whether the purchase has been completed.
	// Defaults to true at creation when the client omits it.
	IsDone bool `json:"is_done"`

	// Created is set once by the database at creation and never changes.
	Created time.Time `json:"created"`

	// Updated is nil until the first successful mutation and advances
	// strictly on every subsequent one.
	Updated *time.Time `json:"updated,omitempty"`

	// UserID references the owning user, or nil for an unowned purchase.
	UserID *int64 `json:"user_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Purchase model.
func (p Purchase) TableName() string {
	return "purchases"
}

// OwnedBy reports whether the purchase belongs to the given user.
// An unowned purchase belongs to nobody.
func (p Purchase) OwnedBy(userID int64) bool {
	return p.UserID != nil && *p.UserID == userID
}

// PurchaseUpdate describes a partial mutation of a purchase. Nil fields are
// left untouched; the store builds the UPDATE statement from the non-nil ones.
type PurchaseUpdate struct {
	// PurchaseID identifies the target row.
	PurchaseID int64

	Name   *string
	Tags   []string
	IsDone *bool
	UserID *int64
}

// Empty reports whether the update carries no field changes at all.
// Such an update still bumps the Updated timestamp.
func (u PurchaseUpdate) Empty() bool {
	return u.Name == nil && u.Tags == nil && u.IsDone == nil && u.UserID == nil
}
