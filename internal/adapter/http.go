// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmatveev/swarm-console/internal/config"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/utils"
	"github.com/dmatveev/swarm-console/models"
	"github.com/go-resty/resty/v2"
)

// apiPrefix is the fixed path prefix every API call is built against.
const apiPrefix = "/api"

type httpServerGateway struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerGateway constructs an HTTP/REST implementation of
// [ServerGateway]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. Every outbound request is
// tagged with a fresh X-Request-Id header for log correlation.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	requestIDs := utils.NewUUIDGenerator()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", requestIDs.Generate())
			return nil
		})

	return &httpServerGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerGateway]. It POSTs the registration payload
// to POST /api/auth/register and decodes the issued token and account
// snapshot. Returns an error if the request fails, the server returns a
// non-2xx status, or the body cannot be decoded.
func (h *httpServerGateway) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.request(ctx, http.MethodPost, "/auth/register", req, "", &auth); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Login implements [ServerGateway]. It POSTs the login payload to
// POST /api/auth/login and decodes the issued token and account
// snapshot.
func (h *httpServerGateway) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.request(ctx, http.MethodPost, "/auth/login", req, "", &auth); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Me implements [ServerGateway]. It GETs /api/auth/me with the supplied
// bearer token and decodes the account snapshot.
func (h *httpServerGateway) Me(ctx context.Context, token string) (models.PublicUser, error) {
	var user models.PublicUser
	if err := h.request(ctx, http.MethodGet, "/auth/me", nil, token, &user); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// Health implements [ServerGateway]. It GETs /api/health without
// authentication and decodes the liveness payload.
func (h *httpServerGateway) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if err := h.request(ctx, http.MethodGet, "/health", nil, "", &health); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// request performs a single attempt against apiPrefix+path and decodes
// the JSON response body into result. A Content-Type header is attached
// only when a body is present; an Authorization header only when a token
// is supplied. A 204 response leaves result untouched. Non-2xx responses
// are mapped by mapAPIError. No retries, no classification by status.
func (h *httpServerGateway) request(ctx context.Context, method, path string, body any, token string, result any) error {
	req := h.client.R().SetContext(ctx)

	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", strings.ToLower(method), path, err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	if resp.StatusCode() == http.StatusNoContent || result == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// mapAPIError converts a non-2xx response into an [*APIError]. The
// message is taken from the JSON error body when one is present; a
// missing or unparseable body falls back to the generic status-coded
// message. JSON parse failures are swallowed on purpose.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var errBody models.APIErrorBody
	if err := json.Unmarshal(resp.Body(), &errBody); err == nil && errBody.Error != "" {
		return &APIError{Message: errBody.Error}
	}

	return NewStatusError(resp.StatusCode())
}
