package http

import (
	"net/http"

	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/utils"
)

// listUsers returns every registered account. The password hash is excluded at
// the serialization level (json:"-" on the model), not here.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing users")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	purchases, err := h.services.PurchaseService.ListPurchases(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing purchases")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, purchases, http.StatusOK)
}
