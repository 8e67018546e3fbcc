package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/store"
	"github.com/mvidales/go-purchase-graph/models"
)

// purchaseService is the concrete implementation of PurchaseService.
//
// Mutations are ownership-guarded: the purchase repository re-checks the
// owner under a row lock inside the mutation's transaction, and this service
// translates its ownership failure into ErrPermissionDenied. The guard fails
// closed — an unowned purchase can never be mutated through the API.
type purchaseService struct {
	purchaseRepository store.PurchaseRepository
	userRepository     store.UserRepository
	logger             *logger.Logger
}

// NewPurchaseService constructs a PurchaseService over the given repositories.
func NewPurchaseService(purchaseRepository store.PurchaseRepository, userRepository store.UserRepository, logger *logger.Logger) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		userRepository:     userRepository,
		logger:             logger,
	}
}

// CreatePurchase creates a purchase on behalf of the requester.
//
// The owner is the explicit request.UserID when provided (the referenced user
// must exist: store.ErrNoUserWasFound otherwise), and the requester itself
// when omitted. IsDone defaults to true when the client did not send it.
//
// Returns ErrInvalidDataProvided when the name or the tags are missing.
func (s *purchaseService) CreatePurchase(ctx context.Context, request models.CreatePurchaseRequest, requesterID int64) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.Tags == nil {
		log.Error().Str("name", request.Name).Msg("invalid purchase data provided")
		return models.Purchase{}, ErrInvalidDataProvided
	}

	ownerID := requesterID
	if request.UserID != nil {
		owner, err := s.userRepository.FindUserByID(ctx, *request.UserID)
		if err != nil {
			log.Err(err).Int64("owner_id", *request.UserID).Msg("explicit purchase owner does not resolve")
			return models.Purchase{}, fmt.Errorf("explicit purchase owner does not resolve: %w", err)
		}
		ownerID = owner.UserID
	}

	isDone := true
	if request.IsDone != nil {
		isDone = *request.IsDone
	}

	purchase := models.Purchase{
		Name:   request.Name,
		Tags:   request.Tags,
		IsDone: isDone,
		UserID: &ownerID,
	}

	created, err := s.purchaseRepository.CreatePurchase(ctx, purchase)
	if err != nil {
		log.Err(err).Str("name", request.Name).Int64("owner_id", ownerID).Msg("purchase creation ended with error")
		return models.Purchase{}, fmt.Errorf("purchase creation ended with error: %w", err)
	}

	return created, nil
}

// UpdatePurchase applies a partial mutation to the purchase with the given id.
//
// The repository runs the read-check-write sequence atomically; this method
// maps its ownership failure to ErrPermissionDenied and passes
// store.ErrPurchaseNotFound through unchanged.
func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID int64, request models.UpdatePurchaseRequest, requesterID int64) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	update := models.PurchaseUpdate{
		PurchaseID: purchaseID,
		Name:       request.Name,
		Tags:       request.Tags,
		IsDone:     request.IsDone,
		UserID:     request.UserID,
	}

	updated, err := s.purchaseRepository.UpdatePurchase(ctx, update, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotPurchaseOwner) {
			log.Warn().Int64("purchase_id", purchaseID).Int64("requester_id", requesterID).Msg("update denied: requester is not the owner")
			return models.Purchase{}, ErrPermissionDenied
		}

		log.Err(err).Int64("purchase_id", purchaseID).Msg("purchase update ended with error")
		return models.Purchase{}, fmt.Errorf("purchase update ended with error: %w", err)
	}

	return updated, nil
}

// DeletePurchase removes the purchase with the given id, subject to the same
// ownership guard as UpdatePurchase.
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID int64, requesterID int64) error {
	log := logger.FromContext(ctx)

	if err := s.purchaseRepository.DeletePurchase(ctx, purchaseID, requesterID); err != nil {
		if errors.Is(err, store.ErrNotPurchaseOwner) {
			log.Warn().Int64("purchase_id", purchaseID).Int64("requester_id", requesterID).Msg("deletion denied: requester is not the owner")
			return ErrPermissionDenied
		}

		log.Err(err).Int64("purchase_id", purchaseID).Msg("purchase deletion ended with error")
		return fmt.Errorf("purchase deletion ended with error: %w", err)
	}

	return nil
}

// ListPurchases returns every purchase.
func (s *purchaseService) ListPurchases(ctx context.Context) ([]models.Purchase, error) {
	purchases, err := s.purchaseRepository.GetAllPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing purchases ended with error: %w", err)
	}

	return purchases, nil
}
