package models

// AuthResponse is returned by both register and login endpoints.
type AuthResponse struct {
	// Token is the bearer token for subsequent authenticated requests.
	// The client treats it as an opaque string; the server is the sole
	// authority on its validity.
	Token string `json:"token"`

	// User is the account snapshot issued together with the token.
	User PublicUser `json:"user"`
}

// HealthResponse is returned by GET /health. Only the literal status
// value "ok" counts as online; anything else is treated as offline.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthStatusOK is the only HealthResponse.Status value that maps to
// ServerStatusOnline.
const HealthStatusOK = "ok"
