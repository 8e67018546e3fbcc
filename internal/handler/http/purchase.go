package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/service"
	"github.com/mvidales/go-purchase-graph/internal/store"
	"github.com/mvidales/go-purchase-graph/internal/utils"
	"github.com/mvidales/go-purchase-graph/models"
)

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PurchaseService.CreatePurchase(ctx, request, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("explicit owner does not exist")
			writeError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during purchase creation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	purchaseID, err := purchaseIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid purchase id")
		writeError(w, "invalid purchase id", http.StatusBadRequest)
		return
	}

	var request models.UpdatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PurchaseService.UpdatePurchase(ctx, purchaseID, request, requesterID)
	if err != nil {
		h.writePurchaseMutationError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	purchaseID, err := purchaseIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid purchase id")
		writeError(w, "invalid purchase id", http.StatusBadRequest)
		return
	}

	if err := h.services.PurchaseService.DeletePurchase(ctx, purchaseID, requesterID); err != nil {
		h.writePurchaseMutationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writePurchaseMutationError maps mutation failures shared by update and
// delete to their HTTP status codes.
func (h *Handler) writePurchaseMutationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrPurchaseNotFound):
		log.Err(err).Msg("purchase was not found")
		writeError(w, store.ErrPurchaseNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("reassignment target does not exist")
		writeError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		log.Err(err).Msg("requester does not own the purchase")
		writeError(w, service.ErrPermissionDenied.Error(), http.StatusForbidden)
	default:
		log.Err(err).Msg("unexpected error occurred during purchase mutation")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// purchaseIDFromURL parses the {id} URL parameter of the purchase routes.
func purchaseIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
