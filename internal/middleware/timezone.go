package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type locationContextKey struct{}

// Timezone resolves the zone "today" is computed in from the X-Timezone
// header or tz query parameter (IANA names). Unknown names fall back to def.
func Timezone(def *time.Location) func(http.Handler) http.Handler {
	if def == nil {
		def = time.UTC
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := def
			name := strings.TrimSpace(r.Header.Get("X-Timezone"))
			if name == "" {
				name = strings.TrimSpace(r.URL.Query().Get("tz"))
			}
			if name != "" {
				if l, err := time.LoadLocation(name); err == nil {
					loc = l
				}
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), locationContextKey{}, loc)))
		})
	}
}

// LocationFromContext returns the request zone, or UTC when unset.
func LocationFromContext(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(locationContextKey{}).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.UTC
}
