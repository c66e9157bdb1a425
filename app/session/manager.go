package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zee467/twitter-clone/app/models"
)

// Manager issues and checks the session cookie. The cookie value is a signed
// JWT; the session id inside it must also be alive in the Store, so deleting
// the store entry revokes the token.
type Manager struct {
	Signer      *Signer
	Store       Store
	Cookie      string
	TTL         time.Duration
	RememberTTL time.Duration
	Secure      bool
}

func (m *Manager) Start(w http.ResponseWriter, r *http.Request, u *models.User, remember bool) error {
	ttl := m.TTL
	if remember {
		ttl = m.RememberTTL
	}
	sid := uuid.NewString()
	if err := m.Store.Save(r.Context(), sid, u.ID, ttl); err != nil {
		return err
	}
	token, err := m.Signer.Sign(sid, u.ID, u.Username, ttl)
	if err != nil {
		_ = m.Store.Delete(r.Context(), sid)
		return err
	}

	cookie := &http.Cookie{
		Name:     m.Cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	// Session cookie unless the user asked to be remembered.
	if remember {
		cookie.MaxAge = int(ttl / time.Second)
	}
	http.SetCookie(w, cookie)
	return nil
}

// Current returns the claims of a live session, or nil if the request
// carries no valid session cookie.
func (m *Manager) Current(r *http.Request) *Claims {
	cookie, err := r.Cookie(m.Cookie)
	if err != nil {
		return nil
	}
	claims, err := m.Signer.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	userID, err := m.Store.Get(r.Context(), claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil
	}
	return claims
}

func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.Cookie); err == nil {
		if claims, err := m.Signer.Parse(cookie.Value); err == nil {
			_ = m.Store.Delete(r.Context(), claims.SessionID)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.Cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
