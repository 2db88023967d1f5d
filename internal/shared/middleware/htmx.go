package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMX request and response headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXRefresh = "HX-Refresh"
)

// HTMX marks requests issued by htmx in the request context.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get(HeaderHXRequest) == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}

// Refresh asks htmx to reload the whole page after the response.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(HeaderHXRefresh, "true")
}
