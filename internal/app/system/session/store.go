// Package session owns the browser session: the backend-issued token
// pair plus the cached user profile, duplicated across two sinks — a
// pair of cookies (read by the request gate and forwarded to the
// backend) and a persistent web_sessions record (the durable copy of
// the tokens and profile).
//
// Both sinks sit behind one Save/Clear surface so no caller can update
// one without the other.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/collectam/collectam-web/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Cookie names shared with the request gate and the backend clients.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Sessions live as long as the cookies: 30 days.
const TTL = 30 * 24 * time.Hour

// Collection is the Mongo collection holding web session records.
const Collection = "web_sessions"

// ErrNoSession is returned when no session record matches the request's
// access token.
var ErrNoSession = errors.New("session: no active session")

// Store writes and clears the dual-sink browser session.
type Store struct {
	coll   *mongo.Collection
	secure bool
	domain string
	log    *zap.Logger
}

// New constructs a session Store over the given database. The secure
// flag marks cookies Secure (prod only); domain is usually blank.
func New(db *mongo.Database, secure bool, domain string, logger *zap.Logger) *Store {
	return &Store{
		coll:   db.Collection(Collection),
		secure: secure,
		domain: domain,
		log:    logger,
	}
}

// Save persists a freshly issued session to both sinks: it inserts the
// web_sessions record and sets both token cookies with a 30-day expiry.
func (s *Store) Save(ctx context.Context, w http.ResponseWriter, accessToken, refreshToken string, user models.UserProfile) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user profile: %w", err)
	}

	now := time.Now().UTC()
	rec := models.WebSession{
		ID:           uuid.NewString(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserJSON:     string(userJSON),
		CreatedAt:    now,
		ExpiresAt:    now.Add(TTL),
	}

	// One record per access token; a re-login with the same token
	// replaces the old record.
	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"access_token": accessToken},
		rec,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("session: persist record: %w", err)
	}

	s.setCookie(w, AccessTokenCookie, accessToken)
	s.setCookie(w, RefreshTokenCookie, refreshToken)
	return nil
}

// Clear removes the session from both sinks. It never fails: a record
// delete error is logged and the cookies are expired regardless, so the
// browser always ends up signed out.
func (s *Store) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if token := s.Token(r); token != "" {
		if _, err := s.coll.DeleteOne(ctx, bson.M{"access_token": token}); err != nil {
			s.log.Warn("session record delete failed", zap.Error(err))
		}
	}
	s.expireCookie(w, AccessTokenCookie)
	s.expireCookie(w, RefreshTokenCookie)
}

// Token returns the access token carried by the request, or "" when the
// request has no session. The cookie is authoritative; the
// Authorization header covers API-style callers.
func (s *Store) Token(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

// User loads the cached profile for the request's session from the
// persistent sink. ErrNoSession means no token or no matching record; a
// stored profile that fails to parse is an error in its own right and
// is not coerced to an absent session.
func (s *Store) User(ctx context.Context, r *http.Request) (*models.UserProfile, error) {
	token := s.Token(r)
	if token == "" {
		return nil, ErrNoSession
	}

	var rec models.WebSession
	err := s.coll.FindOne(ctx, bson.M{"access_token": token}).Decode(&rec)
	switch {
	case err == mongo.ErrNoDocuments:
		return nil, ErrNoSession
	case err != nil:
		return nil, fmt.Errorf("session: load record: %w", err)
	}

	user, err := ParseUserJSON(rec.UserJSON)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IsAuthenticated reports whether the request carries an access token.
func (s *Store) IsAuthenticated(r *http.Request) bool {
	return s.Token(r) != ""
}

// ParseUserJSON decodes a stored user profile. Malformed data is a
// parse error for the caller to handle, by contract.
func ParseUserJSON(raw string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("session: malformed stored user profile: %w", err)
	}
	return &user, nil
}

// DeleteExpired removes session records whose expiry has passed. The
// TTL index does the same eventually; this keeps the collection tight
// between TTL sweeps and reports how many records went.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("session: delete expired records: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *Store) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   int(TTL.Seconds()),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
