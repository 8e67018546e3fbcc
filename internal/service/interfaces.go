package service

import (
	"context"

	"github.com/mvidales/go-purchase-graph/models"
)

// AuthService covers the credential lifecycle: account creation, login,
// token issuance and decoding, and resolving a token back to its user.
type AuthService interface {
	// SignUp hashes the password, creates the account, and returns it.
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)

	// Login verifies the credentials and returns the account. Unknown email
	// and wrong password are indistinguishable (ErrInvalidCredentials).
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Expiry and malformed/tampered tokens are distinct errors.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveIdentity parses the token and resolves its subject to a live
	// user record (ErrIdentityNotFound when the account no longer exists).
	ResolveIdentity(ctx context.Context, tokenString string) (models.User, error)
}

// PurchaseService implements the ownership-guarded purchase operations.
// The requester id is the authenticated identity resolved by the transport
// layer; every mutation verifies ownership before touching the row.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, request models.CreatePurchaseRequest, requesterID int64) (models.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID int64, request models.UpdatePurchaseRequest, requesterID int64) (models.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID int64, requesterID int64) error
	ListPurchases(ctx context.Context) ([]models.Purchase, error)
}

// UserService exposes the viewer-facing user queries.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}
