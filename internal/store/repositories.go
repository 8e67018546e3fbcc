package store

import (
	"github.com/mvidales/go-purchase-graph/internal/logger"
)

// Repositories groups every data-access component built on top of one
// database connection.
type Repositories struct {
	UserRepository     UserRepository
	PurchaseRepository PurchaseRepository
}

// NewRepositories constructs all repositories over the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		PurchaseRepository: NewPurchaseRepository(db, logger),
	}
}
