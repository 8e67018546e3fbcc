// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvidales/go-purchase-graph/internal/logger"
	"github.com/mvidales/go-purchase-graph/internal/service"
	"github.com/mvidales/go-purchase-graph/internal/store"
	"github.com/mvidales/go-purchase-graph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn          func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	loginFn           func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn     func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
	resolveIdentityFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveIdentity(ctx context.Context, tokenString string) (models.User, error) {
	return m.resolveIdentityFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validSignUp is a convenience fixture used across multiple tests.
var validSignUp = models.SignUpRequest{
	Email:    "alice@example.com",
	Password: "s3cret",
}

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

// TestSignUp_Success verifies that a valid signup results in 200 OK, an
// Authorization header with the issued Bearer token, and a JSON body carrying
// the created account plus the token.
func TestSignUp_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var payload models.AuthPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, int64(1), payload.User.UserID)
	assert.Equal(t, signedToken, payload.AuthToken)
}

// TestSignUp_PasswordHashNeverSerialized verifies that the stored hash does
// not leak into the response body even when the service returns it.
func TestSignUp_PasswordHashNeverSerialized(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email, PasswordHash: "$2a$10$secret"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("t"), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_MissingCredentials(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSignUp_Conflicts verifies the field-specific 409 mapping for the two
// unique constraints.
func TestSignUp_Conflicts(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantMessage string
	}{
		{name: "duplicate email", serviceErr: store.ErrEmailAlreadyExists, wantMessage: "email already exists"},
		{name: "duplicate user name", serviceErr: store.ErrUserNameAlreadyExists, wantMessage: "user name already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signUpFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader(jsonBody(t, validSignUp)))
			rec := httptest.NewRecorder()

			h.signUp(rec, req)

			require.Equal(t, http.StatusConflict, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

func TestSignUp_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("hs256 signing failed")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/login",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var payload models.AuthPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, int64(7), payload.User.UserID)
}

// TestLogin_RejectedUniformly verifies that the handler answers 401 with the
// same body regardless of which credential was wrong.
func TestLogin_RejectedUniformly(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)

	bodies := []string{
		`{"email":"ghost@example.com","password":"whatever"}`,
		`{"email":"alice@example.com","password":"wrong"}`,
	}

	var responses []string
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, responses[0], responses[1])
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
