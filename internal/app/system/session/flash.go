// internal/app/system/session/flash.go
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const flashSessionName = "collectam-flash"

// Flash is a one-shot notification shown on the next rendered page
// (the toast after a failed login, the goodbye note after logout).
type Flash struct {
	Kind    string // "success" | "error"
	Message string
}

// FlashStore carries flash messages across redirects in a signed
// cookie, separate from the token cookies.
type FlashStore struct {
	store *sessions.CookieStore
	log   *zap.Logger
}

// NewFlashStore builds the flash cookie store. The signing key must be
// non-empty; 32+ random chars are expected in production.
func NewFlashStore(signingKey, domain string, secure bool, logger *zap.Logger) (*FlashStore, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("session: flash signing key is empty")
	}
	if len(signingKey) < 32 {
		logger.Warn("flash signing key is short; 32+ chars recommended",
			zap.Int("length", len(signingKey)))
	}

	store := sessions.NewCookieStore([]byte(signingKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   300, // just needs to survive a redirect
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store, log: logger}, nil
}

// Add queues a flash for the next page view.
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, err := f.store.Get(r, flashSessionName)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			f.log.Warn("flash cookie invalid, using fresh session", zap.Error(err))
		} else {
			f.log.Error("flash store error, using fresh session", zap.Error(err))
		}
	}
	sess.AddFlash(kind + "|" + message)
	if err := sess.Save(r, w); err != nil {
		f.log.Warn("flash save failed", zap.Error(err))
	}
}

// Pop drains and returns any queued flashes. Consuming them rewrites
// the cookie so each message shows once.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	sess, err := f.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		f.log.Warn("flash save failed", zap.Error(err))
	}

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg := "success", s
		for i := 0; i < len(s); i++ {
			if s[i] == '|' {
				kind, msg = s[:i], s[i+1:]
				break
			}
		}
		out = append(out, Flash{Kind: kind, Message: msg})
	}
	return out
}
