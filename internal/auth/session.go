package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the login session cookie.
const SessionName = "terratrace-session"

// SessionKeyUserID holds the authenticated user's ID in the session.
const SessionKeyUserID = "user_id"

// NewSessionStore builds the cookie-backed session store. The secret can be
// any passphrase; it is SHA-256 hashed to derive a stable 32-byte signing
// key, so it must be consistent across restarts.
func NewSessionStore(secret string, secure bool, maxAge int) *sessions.CookieStore {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionUserID extracts the logged-in user ID from a request's session.
// The second return is false when the request carries no valid login.
func SessionUserID(store sessions.Store, r *http.Request) (int64, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[SessionKeyUserID].(int64)
	return id, ok
}
