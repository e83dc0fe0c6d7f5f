// Package authapi is the HTTP client for the Collectam backend's
// authentication endpoints (/api/auth/login, /api/auth/signup).
//
// Login and Register never return a Go error: a request that cannot
// complete comes back as an unsuccessful AuthResponse with a synthesized
// message, so callers always have a result-shaped value to surface.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/system/timeouts"
	"github.com/collectam/collectam-web/internal/domain/models"
	"go.uber.org/zap"
)

// NetworkErrorMessage is the user-facing message for a request that
// could not complete at the transport level.
const NetworkErrorMessage = "Network error occurred"

// LoginData is the login request body.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the signup request body.
type RegisterData struct {
	InvitationToken string `json:"invitationToken"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Phone           string `json:"phone"`
}

// AuthPayload is the data object of a successful auth response.
type AuthPayload struct {
	User         models.UserProfile `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// AuthResponse is the backend's auth envelope, returned to callers
// unchanged on both success and failure.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *AuthPayload `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Client talks to the auth endpoints of the backend API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

// New constructs an auth API client with a bounded request timeout.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeouts.Medium()},
		Log:     logger,
	}
}

// Login posts the credentials to /api/auth/login. Credentials are
// pre-validated by the caller; no re-validation happens here.
func (c *Client) Login(ctx context.Context, data LoginData) *AuthResponse {
	return c.post(ctx, "/api/auth/login", data)
}

// Register posts the signup fields to /api/auth/signup.
func (c *Client) Register(ctx context.Context, data RegisterData) *AuthResponse {
	return c.post(ctx, "/api/auth/signup", data)
}

func (c *Client) post(ctx context.Context, path string, body any) *AuthResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		// Request bodies are plain structs; this only fires on a
		// programming error, but the contract still holds.
		return networkFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return networkFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warn("auth API request failed", zap.String("path", path), zap.Error(err))
		return networkFailure(err)
	}
	defer resp.Body.Close()

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.Log.Warn("auth API response undecodable",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return networkFailure(err)
	}
	return &out
}

func networkFailure(err error) *AuthResponse {
	return &AuthResponse{
		Success: false,
		Message: NetworkErrorMessage,
		Error:   err.Error(),
	}
}
