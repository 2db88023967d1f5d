package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/emiliopalmerini/hydrate/internal/shared/middleware"
	"github.com/emiliopalmerini/hydrate/internal/theme"
)

// handleTheme persists a theme choice. The form field mode is "light",
// "dark" or "toggle"; toggle flips the request's resolved mode.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	current := theme.FromContext(r.Context()).Mode
	raw := strings.TrimSpace(r.PostForm.Get("mode"))

	var next theme.Mode
	if strings.EqualFold(raw, "toggle") {
		next = current.Toggle()
	} else {
		m, ok := theme.Parse(raw)
		if !ok {
			http.Error(w, "mode must be light, dark or toggle", http.StatusBadRequest)
			return
		}
		next = m
	}

	s.themes.Save(w, next)

	if middleware.IsHTMX(r) {
		middleware.Refresh(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// redirectTarget sends the browser back to the page it came from when that
// page is on this site.
func redirectTarget(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || r.Referer() == "" {
		return "/"
	}
	if u.Host != "" && u.Host != r.Host {
		return "/"
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}
