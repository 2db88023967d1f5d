// Package theme resolves the light/dark display mode of a request.
//
// A Preference is resolved once per request and carried in the request
// context to the templates. Persisting a choice is the job of a Store.
package theme

import (
	"context"
	"net/http"
	"strings"
)

// Mode is a display theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

// PrefersColorSchemeHeader is the client hint carrying the system preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse reads "light" or "dark", case-insensitively.
func Parse(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Class is the class set on the document element for m.
func (m Mode) Class() string {
	if m == Dark {
		return "dark"
	}
	return ""
}

// Preference is the resolved theme of a single request.
type Preference struct {
	Mode Mode
	// Stored is true when the mode came from a persisted choice rather than
	// the system preference.
	Stored bool
}

// Resolve picks the stored mode when valid, then the system preference,
// then light.
func Resolve(stored string, prefersDark bool) Preference {
	if m, ok := Parse(stored); ok {
		return Preference{Mode: m, Stored: true}
	}
	if prefersDark {
		return Preference{Mode: Dark}
	}
	return Preference{Mode: Light}
}

// PrefersDark reports whether the request's color scheme client hint asks
// for dark mode.
func PrefersDark(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(PrefersColorSchemeHeader), `" `), "dark")
}

type contextKey struct{}

// WithPreference returns a copy of ctx carrying p.
func WithPreference(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the preference stored in ctx, or light.
func FromContext(ctx context.Context) Preference {
	if p, ok := ctx.Value(contextKey{}).(Preference); ok {
		return p
	}
	return Preference{Mode: Light}
}
