// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpHubAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPHubAdapter(srv.URL + "/").(*httpHubAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRegister_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		writeJSON(w, http.StatusCreated, models.User{ID: "u-1", Name: req.Name, Email: req.Email})
	})

	got, err := a.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "User with this email already exists"})
	})

	_, err := a.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User with this email already exists")
}

func TestLogin_StoresToken(t *testing.T) {
	claims := models.Claims{UserID: "u-1", Email: "ann@example.com", Name: "Ann"}
	signed, err := utils.GenerateJWTToken(claims, "", time.Now(), time.Hour, "secret")
	require.NoError(t, err)

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+signed.SignedString)
		writeJSON(w, http.StatusOK, signed.SignedString)
	})

	token, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, signed.SignedString, token.SignedString)
	assert.Equal(t, "u-1", token.Claims.UserID)
	assert.Equal(t, signed.SignedString, a.Token())
}

func TestLogin_Rejected(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, "Invalid email or password.")
	})

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid email or password.")
	assert.Empty(t, a.Token())
}

func TestLogin_NoToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, "")
	})

	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestWhoami(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tkn" {
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Authorization token is required"})
			return
		}
		writeJSON(w, http.StatusOK, models.ProtectedResponse{
			Message: "This is a protected route",
			User:    models.Claims{UserID: "u-1", Email: "a@x.com"},
		})
	})

	_, err := a.Whoami(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("  tkn ")
	claims, err := a.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestGetUser_Null(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/missing", r.URL.Path)
		writeJSON(w, http.StatusOK, nil)
	})

	user, err := a.GetUser(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProjects(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/projects/u-1":
			writeJSON(w, http.StatusOK, []models.Project{{ID: "p-1", OwnerID: "u-1"}})
		case r.Method == http.MethodGet && r.URL.Path == "/projectsById/p-1":
			writeJSON(w, http.StatusOK, []models.Project{{ID: "p-1"}})
		case r.Method == http.MethodPut && r.URL.Path == "/projects/p-1/u-2":
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Only the project owner can modify it"})
		case r.Method == http.MethodDelete && r.URL.Path == "/projects/p-9/u-1":
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		case r.Method == http.MethodDelete && r.URL.Path == "/projects/p-1/u-1":
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Project deleted successfully"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	owned, err := a.GetProjectsByOwner(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	byID, err := a.GetProjectsByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, byID, 1)

	_, err = a.UpdateProject(ctx, "u-2", "p-1", models.ProjectRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, a.DeleteProject(ctx, "u-1", "p-9"), ErrNotFound)
	assert.NoError(t, a.DeleteProject(ctx, "u-1", "p-1"))
}

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	})

	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := a.GetUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: Service Unavailable")
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "boom", responseMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "nope", responseMessage([]byte(`{"message":"nope"}`)))
	assert.Equal(t, "plain", responseMessage([]byte(`"plain"`)))
	assert.Equal(t, "raw text", responseMessage([]byte("raw text\n")))
}
