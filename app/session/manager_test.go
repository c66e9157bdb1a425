package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zee467/twitter-clone/app/models"
)

func newManager() *Manager {
	return &Manager{
		Signer:      &Signer{Secret: []byte("test-secret"), Issuer: "twitter-clone"},
		Store:       NewMemoryStore(),
		Cookie:      "twclone_session",
		TTL:         time.Hour,
		RememberTTL: 720 * time.Hour,
	}
}

func startSession(t *testing.T, m *Manager, remember bool) *http.Cookie {
	t.Helper()
	u := &models.User{ID: 7, Username: "alice"}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, m.Start(w, r, u, remember))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestStartAndCurrent(t *testing.T) {
	m := newManager()
	cookie := startSession(t, m, false)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 0, cookie.MaxAge, "plain login must use a browser-session cookie")

	r := httptest.NewRequest("GET", "/profile", nil)
	r.AddCookie(cookie)
	claims := m.Current(r)
	require.NotNil(t, claims)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRememberSetsPersistentCookie(t *testing.T) {
	m := newManager()
	cookie := startSession(t, m, true)
	assert.Equal(t, int(m.RememberTTL/time.Second), cookie.MaxAge)
}

func TestCurrentRejectsMissingOrForgedCookie(t *testing.T) {
	m := newManager()

	r := httptest.NewRequest("GET", "/profile", nil)
	assert.Nil(t, m.Current(r))

	// Token signed with a different secret.
	other := &Manager{Signer: &Signer{Secret: []byte("wrong"), Issuer: "twitter-clone"}, Store: m.Store, Cookie: m.Cookie, TTL: m.TTL, RememberTTL: m.RememberTTL}
	cookie := startSession(t, other, false)
	r = httptest.NewRequest("GET", "/profile", nil)
	r.AddCookie(cookie)
	assert.Nil(t, m.Current(r))
}

func TestDestroyRevokesServerSide(t *testing.T) {
	m := newManager()
	cookie := startSession(t, m, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/logout", nil)
	r.AddCookie(cookie)
	m.Destroy(w, r)

	expired := w.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Equal(t, -1, expired[0].MaxAge)

	// The old cookie value is dead even if the browser kept it.
	r = httptest.NewRequest("GET", "/profile", nil)
	r.AddCookie(cookie)
	assert.Nil(t, m.Current(r))
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(context.Background(), "sid", 1, -time.Second))
	_, err := s.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}
