package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAnn = models.User{
	ID:        "u-1",
	Name:      "Ann",
	Email:     "ann@example.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       models.RegisterRequest{Email: "ann@example.com"},
			err:        fmt.Errorf("%w: name is empty", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantError:  "Name, email, and password are required",
		},
		{
			name:       "email taken",
			body:       models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"},
			err:        store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantError:  "User with this email already exists",
		},
		{
			name:       "store failure",
			body:       models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"},
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "disk on fire",
		},
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				register: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
					if tt.err != nil {
						return models.User{}, tt.err
					}
					return registeredAnn, nil
				},
			}
			h, _ := newTestHandler(auth, nil, nil)

			rec := serve(t, h, http.MethodPost, "/register", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec).Error)
				return
			}
			got := decodeBody[map[string]any](t, rec)
			assert.Equal(t, "u-1", got["id"])
			assert.Equal(t, "ann@example.com", got["email"])
			assert.NotContains(t, got, "passwordHash")
			assert.NotContains(t, got, "password")
		})
	}
}

func TestLogin(t *testing.T) {
	issued := models.Token{SignedString: "signed.jwt.token"}

	tests := []struct {
		name       string
		body       any
		loginErr   error
		tokenErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       models.LoginRequest{Email: "ann@example.com", Password: "pw"},
			wantStatus: http.StatusOK,
			wantBody:   "signed.jwt.token",
		},
		{
			name:       "bad credentials",
			body:       models.LoginRequest{Email: "ann@example.com", Password: "nope"},
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid email or password.",
		},
		{
			name:       "malformed json",
			body:       "[",
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid email or password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				login: func(_ context.Context, request models.LoginRequest) (models.User, error) {
					return registeredAnn, tt.loginErr
				},
				createToken: func(_ context.Context, user models.User) (models.Token, error) {
					assert.Equal(t, registeredAnn.ID, user.ID)
					return issued, tt.tokenErr
				},
			}
			h, _ := newTestHandler(auth, nil, nil)

			rec := serve(t, h, http.MethodPost, "/login", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeBody[string](t, rec))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))
			} else {
				assert.Empty(t, rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &fakeAuthService{
		login: func(context.Context, models.LoginRequest) (models.User, error) {
			return registeredAnn, nil
		},
		createToken: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h, _ := newTestHandler(auth, nil, nil)

	rec := serve(t, h, http.MethodPost, "/login", models.LoginRequest{Email: "ann@example.com", Password: "pw"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestProtected_EchoesIdentity(t *testing.T) {
	claims := models.Claims{UserID: "u-1", Email: "ann@example.com", Name: "Ann"}
	auth := &fakeAuthService{
		parseToken: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "good", tokenString)
			return models.Token{SignedString: tokenString, Claims: claims}, nil
		},
	}
	h, _ := newTestHandler(auth, nil, nil)

	rec := serve(t, h, http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Bearer good"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.ProtectedResponse](t, rec)
	assert.Equal(t, "This is a protected route", got.Message)
	assert.Equal(t, "u-1", got.User.UserID)
	assert.Equal(t, "ann@example.com", got.User.Email)
	assert.Equal(t, "Ann", got.User.Name)
}
