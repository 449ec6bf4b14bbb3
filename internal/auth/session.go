package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// cookie session holding the issued token, so page navigations carry identity
type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(secret string, secure bool) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

func (s *SessionStore) SaveToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := s.store.Get(r, SessionName) //nolint:errcheck // a bad cookie yields a fresh session
	session.Values[sessionTokenKey] = token

	return session.Save(r, w)
}

// token from the session cookie, "" when absent or undecodable
func (s *SessionStore) Token(r *http.Request) string {
	session, err := s.store.Get(r, SessionName)
	if err != nil {
		return ""
	}

	token, _ := session.Values[sessionTokenKey].(string) //nolint:errcheck // type assertion
	return token
}

func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName) //nolint:errcheck // a bad cookie yields a fresh session
	delete(session.Values, sessionTokenKey)
	session.Options.MaxAge = -1

	return session.Save(r, w)
}
