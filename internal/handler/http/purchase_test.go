// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/service"
	"github.com/mvidales/go-purchase-graph/internal/store"
	"github.com/mvidales/go-purchase-graph/internal/utils"
	"github.com/mvidales/go-purchase-graph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock PurchaseService
// ─────────────────────────────────────────────

// mockPurchaseService implements service.PurchaseService for unit tests.
type mockPurchaseService struct {
	createPurchaseFn func(ctx context.Context, request models.CreatePurchaseRequest, requesterID int64) (models.Purchase, error)
	updatePurchaseFn func(ctx context.Context, purchaseID int64, request models.UpdatePurchaseRequest, requesterID int64) (models.Purchase, error)
	deletePurchaseFn func(ctx context.Context, purchaseID int64, requesterID int64) error
	listPurchasesFn  func(ctx context.Context) ([]models.Purchase, error)
}

func (m *mockPurchaseService) CreatePurchase(ctx context.Context, request models.CreatePurchaseRequest, requesterID int64) (models.Purchase, error) {
	return m.createPurchaseFn(ctx, request, requesterID)
}

func (m *mockPurchaseService) UpdatePurchase(ctx context.Context, purchaseID int64, request models.UpdatePurchaseRequest, requesterID int64) (models.Purchase, error) {
	return m.updatePurchaseFn(ctx, purchaseID, request, requesterID)
}

func (m *mockPurchaseService) DeletePurchase(ctx context.Context, purchaseID int64, requesterID int64) error {
	return m.deletePurchaseFn(ctx, purchaseID, requesterID)
}

func (m *mockPurchaseService) ListPurchases(ctx context.Context) ([]models.Purchase, error) {
	return m.listPurchasesFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithPurchases(t *testing.T, purchases service.PurchaseService) *Handler {
	t.Helper()
	svcs := &service.Services{
		PurchaseService: purchases,
	}
	return NewHandler(svcs, logger.Nop())
}

// authedRequest builds a request carrying an authenticated user id in its
// context, the way the auth middleware leaves it.
func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createPurchase
// ─────────────────────────────────────────────

func TestCreatePurchase_Created(t *testing.T) {
	owner := int64(42)
	purchases := &mockPurchaseService{
		createPurchaseFn: func(_ context.Context, req models.CreatePurchaseRequest, requesterID int64) (models.Purchase, error) {
			require.Equal(t, int64(42), requesterID)
			return models.Purchase{PurchaseID: 1, Name: req.Name, IsDone: true, UserID: &owner}, nil
		},
	}

	h := newHandlerWithPurchases(t, purchases)
	req := authedRequest(http.MethodPost, "/api/purchases", `{"name":"milk","tags":["food"]}`, 42)
	rec := httptest.NewRecorder()

	h.createPurchase(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Purchase
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(1), created.PurchaseID)
	assert.Equal(t, "milk", created.Name)
}

func TestCreatePurchase_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithPurchases(t, &mockPurchaseService{})
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader(`{"name":"milk"}`))
	rec := httptest.NewRecorder()

	h.createPurchase(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePurchase_InvalidData(t *testing.T) {
	purchases := &mockPurchaseService{
		createPurchaseFn: func(_ context.Context, _ models.CreatePurchaseRequest, _ int64) (models.Purchase, error) {
			return models.Purchase{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithPurchases(t, purchases)
	req := authedRequest(http.MethodPost, "/api/purchases", `{"tags":["food"]}`, 42)
	rec := httptest.NewRecorder()

	h.createPurchase(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePurchase_UnknownExplicitOwner(t *testing.T) {
	purchases := &mockPurchaseService{
		createPurchaseFn: func(_ context.Context, _ models.CreatePurchaseRequest, _ int64) (models.Purchase, error) {
			return models.Purchase{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithPurchases(t, purchases)
	req := authedRequest(http.MethodPost, "/api/purchases", `{"name":"milk","tags":["food"],"user_id":999}`, 42)
	rec := httptest.NewRecorder()

	h.createPurchase(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updatePurchase
// ─────────────────────────────────────────────

func TestUpdatePurchase_OK(t *testing.T) {
	purchases := &mockPurchaseService{
		updatePurchaseFn: func(_ context.Context, purchaseID int64, req models.UpdatePurchaseRequest, requesterID int64) (models.Purchase, error) {
			require.Equal(t, int64(5), purchaseID)
			require.Equal(t, int64(42), requesterID)
			require.NotNil(t, req.IsDone)
			return models.Purchase{PurchaseID: purchaseID, Name: "milk", IsDone: *req.IsDone}, nil
		},
	}

	h := newHandlerWithPurchases(t, purchases)
	req := withURLParam(authedRequest(http.MethodPatch, "/api/purchases/5", `{"is_done":false}`, 42), "id", "5")
	rec := httptest.NewRecorder()

	h.updatePurchase(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Purchase
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.False(t, updated.IsDone)
}

func TestUpdatePurchase_MalformedID(t *testing.T) {
	h := newHandlerWithPurchases(t, &mockPurchaseService{})
	req := withURLParam(authedRequest(http.MethodPatch, "/api/purchases/abc", `{}`, 42), "id", "abc")
	rec := httptest.NewRecorder()

	h.updatePurchase(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestUpdatePurchase_ErrorMapping covers the shared mutation error table.
func TestUpdatePurchase_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "purchase not found", serviceErr: store.ErrPurchaseNotFound, wantStatus: http.StatusNotFound},
		{name: "reassignment target missing", serviceErr: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound},
		{name: "not the owner", serviceErr: service.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "unexpected failure", serviceErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchases := &mockPurchaseService{
				updatePurchaseFn: func(_ context.Context, _ int64, _ models.UpdatePurchaseRequest, _ int64) (models.Purchase, error) {
					return models.Purchase{}, tt.serviceErr
				},
			}

			h := newHandlerWithPurchases(t, purchases)
			req := withURLParam(authedRequest(http.MethodPatch, "/api/purchases/5", `{"is_done":false}`, 42), "id", "5")
			rec := httptest.NewRecorder()

			h.updatePurchase(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// deletePurchase
// ─────────────────────────────────────────────

func TestDeletePurchase_NoContent(t *testing.T) {
	purchases := &mockPurchaseService{
		deletePurchaseFn: func(_ context.Context, purchaseID int64, requesterID int64) error {
			require.Equal(t, int64(5), purchaseID)
			require.Equal(t, int64(42), requesterID)
			return nil
		},
	}

	h := newHandlerWithPurchases(t, purchases)
	req := withURLParam(authedRequest(http.MethodDelete, "/api/purchases/5", "", 42), "id", "5")
	rec := httptest.NewRecorder()

	h.deletePurchase(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeletePurchase_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "purchase not found", serviceErr: store.ErrPurchaseNotFound, wantStatus: http.StatusNotFound},
		{name: "not the owner", serviceErr: service.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "unexpected failure", serviceErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchases := &mockPurchaseService{
				deletePurchaseFn: func(_ context.Context, _ int64, _ int64) error {
					return tt.serviceErr
				},
			}

			h := newHandlerWithPurchases(t, purchases)
			req := withURLParam(authedRequest(http.MethodDelete, "/api/purchases/5", "", 42), "id", "5")
			rec := httptest.NewRecorder()

			h.deletePurchase(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
