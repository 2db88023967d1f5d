package theme

import (
	"net/http"
	"time"
)

// Store persists a user's theme choice.
type Store interface {
	Load(r *http.Request) (Mode, bool)
	Save(w http.ResponseWriter, m Mode)
}

// CookieName is the cookie used by CookieStore.
const CookieName = "theme"

// CookieStore keeps the theme in a browser cookie.
type CookieStore struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// NewCookieStore returns a store with a one year cookie.
func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{
		Name:   CookieName,
		MaxAge: 365 * 24 * time.Hour,
		Secure: secure,
	}
}

func (s *CookieStore) Load(r *http.Request) (Mode, bool) {
	c, err := r.Cookie(s.Name)
	if err != nil {
		return Light, false
	}
	return Parse(c.Value)
}

func (s *CookieStore) Save(w http.ResponseWriter, m Mode) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    m.String(),
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.Secure,
	})
}

// Middleware resolves the request's Preference from store and the system
// preference hint and stores it in the request context.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Accept-CH", PrefersColorSchemeHeader)
			w.Header().Add("Vary", PrefersColorSchemeHeader)

			stored := ""
			if m, ok := store.Load(r); ok {
				stored = m.String()
			}
			p := Resolve(stored, PrefersDark(r))
			next.ServeHTTP(w, r.WithContext(WithPreference(r.Context(), p)))
		})
	}
}
