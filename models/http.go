package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APIErrorBody is the shape the server uses for non-2xx responses.
// The error field is optional; an absent or unparseable body falls back
// to a generic status-coded message on the client side.
type APIErrorBody struct {
	Error string `json:"error"`
}
