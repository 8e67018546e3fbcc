package service

import (
	"github.com/mvidales/go-purchase-graph/internal/config"
	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/store"
)

type Services struct {
	AuthService     AuthService
	PurchaseService PurchaseService
	UserService     UserService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.App, logger),
		PurchaseService: NewPurchaseService(repositories.PurchaseRepository, repositories.UserRepository, logger),
		UserService:     NewUserService(repositories.UserRepository, logger),
	}
}
