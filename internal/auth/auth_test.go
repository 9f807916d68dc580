package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, expiresAt, err := GenerateToken(secret, 7, "officer", time.Hour)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "officer", claims.Username)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	token, _, err := GenerateToken([]byte("secret-a"), 7, "officer", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := []byte("test-secret")

	token, _, err := GenerateToken(secret, 7, "officer", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.Error(t, err)
}

func TestSessionUserIDWithoutCookie(t *testing.T) {
	store := NewSessionStore("test-secret", false, 3600)

	req := httptest.NewRequest("GET", "/", nil)
	_, ok := SessionUserID(store, req)
	assert.False(t, ok)
}

func TestSessionRoundTrip(t *testing.T) {
	store := NewSessionStore("test-secret", false, 3600)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	session, err := store.Get(req, SessionName)
	require.NoError(t, err)
	session.Values[SessionKeyUserID] = int64(42)
	require.NoError(t, session.Save(req, w))

	req2 := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		req2.AddCookie(cookie)
	}

	userID, ok := SessionUserID(store, req2)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}
