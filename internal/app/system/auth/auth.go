// Package auth couples the backend auth API with the session store:
// a successful login or registration persists the issued session before
// the response is handed back, so callers can never observe a success
// without a saved session.
package auth

import (
	"context"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/authapi"
	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/app/system/session"
	"go.uber.org/zap"
)

// Service is the auth client used by the login, register, and logout
// handlers.
type Service struct {
	API      *authapi.Client
	Sessions *session.Store
	Log      *zap.Logger
}

// NewService wires the auth API client to the session store.
func NewService(api *authapi.Client, sessions *session.Store, logger *zap.Logger) *Service {
	return &Service{
		API:      api,
		Sessions: sessions,
		Log:      logger,
	}
}

// Login authenticates against the backend. On success the session is
// saved to both sinks before the response is returned unchanged; on
// failure the session is untouched and the backend's response comes
// back as-is for the caller to surface. Never returns an error.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, data authapi.LoginData) *authapi.AuthResponse {
	return s.persistOnSuccess(ctx, w, s.API.Login(ctx, data))
}

// Register creates an account via the backend, with the same session
// persistence contract as Login.
func (s *Service) Register(ctx context.Context, w http.ResponseWriter, data authapi.RegisterData) *authapi.AuthResponse {
	return s.persistOnSuccess(ctx, w, s.API.Register(ctx, data))
}

func (s *Service) persistOnSuccess(ctx context.Context, w http.ResponseWriter, resp *authapi.AuthResponse) *authapi.AuthResponse {
	if !resp.Success || resp.Data == nil {
		return resp
	}

	err := s.Sessions.Save(ctx, w, resp.Data.AccessToken, resp.Data.RefreshToken, resp.Data.User)
	if err != nil {
		s.Log.Error("session save after auth success failed",
			zap.String("user_id", resp.Data.User.ID),
			zap.Error(err))
		return &authapi.AuthResponse{
			Success: false,
			Message: "Unable to create session. Please try again.",
			Error:   err.Error(),
		}
	}

	s.Log.Info("session created",
		zap.String("user_id", resp.Data.User.ID),
		zap.String("role", resp.Data.User.Role))
	return resp
}

// Logout clears the session from both sinks and sends the browser to
// the login entry point. It has no failure mode.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Clear(r.Context(), w, r)
	http.Redirect(w, r, roleroute.LoginPath, http.StatusSeeOther)
}

// IsAuthenticated reports whether the request carries an access token.
func (s *Service) IsAuthenticated(r *http.Request) bool {
	return s.Sessions.IsAuthenticated(r)
}

// IsAdmin reports whether the session's cached profile carries an
// admin-tier role. Absent or unreadable profiles are not admins.
func (s *Service) IsAdmin(ctx context.Context, r *http.Request) bool {
	user, err := s.Sessions.User(ctx, r)
	if err != nil {
		return false
	}
	return user.IsAdmin()
}
