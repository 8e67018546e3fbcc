// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvidales/go-purchase-graph/internal/service"
	"github.com/mvidales/go-purchase-graph/internal/utils"
	"github.com/mvidales/go-purchase-graph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder is a terminal handler that records whether it was reached and
// which user id the middleware placed in the context.
type nextRecorder struct {
	called bool
	userID int64
	idOK   bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.idOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		resolveIdentityFn: func(_ context.Context, tokenString string) (models.User, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.User{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/viewer/purchases", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	require.True(t, next.idOK)
	assert.Equal(t, int64(42), next.userID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		resolveErr error
	}{
		{name: "missing header", authHeader: ""},
		{name: "no bearer token", authHeader: "Bearer"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "expired token", authHeader: "Bearer expired.jwt.token", resolveErr: service.ErrTokenIsExpired},
		{name: "invalid token", authHeader: "Bearer tampered.jwt.token", resolveErr: service.ErrTokenIsInvalid},
		{name: "deleted account", authHeader: "Bearer ghost.jwt.token", resolveErr: service.ErrIdentityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				resolveIdentityFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, tt.resolveErr
				},
			}
			h := newHandlerWithAuth(t, auth)

			next := &nextRecorder{}
			req := httptest.NewRequest(http.MethodGet, "/api/viewer/purchases", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.auth(next.handler()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called, "protected handler must not run")
		})
	}
}
