// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmatveev/swarm-console/internal/config"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, serverURL string) *httpServerGateway {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL}

	g, err := NewHTTPServerGateway(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return g.(*httpServerGateway)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	want := models.AuthResponse{
		Token: "abc",
		User: models.PublicUser{
			ID:        "1",
			Nickname:  "pilot-01",
			Email:     "pilot@swarm.dev",
			IsAdmin:   false,
			CreatedAt: "2024-01-01T00:00:00Z",
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pilot-01", req.Nickname)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Register(context.Background(), models.RegisterRequest{
		Nickname: "pilot-01",
		Email:    "pilot@swarm.dev",
		Password: "password1",
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRegister_ErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"email already registered"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Register(context.Background(), models.RegisterRequest{Nickname: "pilot-01"})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email already registered", apiErr.Message)
}

// Non-JSON error bodies must fall back to the exact generic message.
func TestRegister_FallbackMessageOnUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Register(context.Background(), models.RegisterRequest{Nickname: "pilot-01"})

	require.Error(t, err)
	assert.Equal(t, "request failed (500)", err.Error())
}

func TestRegister_EmptyErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Register(context.Background(), models.RegisterRequest{})

	require.Error(t, err)
	assert.Equal(t, "request failed (400)", err.Error())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.AuthResponse{
		Token: "tok-123",
		User:  models.PublicUser{ID: "7", Nickname: "queen", Email: "queen@swarm.dev"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Login(context.Background(), models.LoginRequest{Email: "queen@swarm.dev", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid email or password"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Login(context.Background(), models.LoginRequest{Email: "queen@swarm.dev"})

	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_AttachesBearerToken(t *testing.T) {
	want := models.PublicUser{ID: "1", Nickname: "pilot-01", Email: "pilot@swarm.dev"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		// GET carries no body, so no Content-Type either.
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Me(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMe_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Me(context.Background(), "stale")

	require.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusOK, got.Status)
}

func TestHealth_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	g := newTestGateway(t, srv.URL)
	_, err := g.Health(context.Background())

	require.Error(t, err)
}

// ── request ──────────────────────────────────────────────────────────────────

// A 204 must resolve without the adapter ever touching the (absent) body.
func TestRequest_NoContentSkipsDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	var out models.PublicUser
	err := g.request(context.Background(), http.MethodGet, "/auth/me", nil, "tok", &out)

	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{}, out)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "scheme kept", in: "https://swarm.dev/", want: "https://swarm.dev"},
		{name: "scheme added", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
