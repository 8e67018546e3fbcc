package store

import (
	"context"

	"github.com/mvidales/go-purchase-graph/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned id. Duplicate email or user name map to
	// ErrEmailAlreadyExists / ErrUserNameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id,
	// or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// GetAllUsers returns every account, ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// PurchaseRepository is the data-access contract for purchases.
//
// UpdatePurchase and DeletePurchase run the read-check-write sequence of one
// unit of work inside a single transaction: they lock the target row, verify
// the requester owns it, then mutate. Ownership failures are reported as
// ErrNotPurchaseOwner; an absent row as ErrPurchaseNotFound.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error)
	FindPurchaseByID(ctx context.Context, purchaseID int64) (models.Purchase, error)
	GetAllPurchases(ctx context.Context) ([]models.Purchase, error)
	UpdatePurchase(ctx context.Context, update models.PurchaseUpdate, requesterID int64) (models.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID int64, requesterID int64) error
}
