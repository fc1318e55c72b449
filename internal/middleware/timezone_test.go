package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimezone(t *testing.T) {
	def := time.FixedZone("DEF", 3600)
	tests := []struct {
		name   string
		header string
		target string
		want   string
	}{
		{name: "header", header: "Asia/Jakarta", target: "/", want: "Asia/Jakarta"},
		{name: "query", target: "/?tz=Europe/Berlin", want: "Europe/Berlin"},
		{name: "header wins", header: "UTC", target: "/?tz=Europe/Berlin", want: "UTC"},
		{name: "unknown falls back", header: "Mars/Base", target: "/", want: "DEF"},
		{name: "absent", target: "/", want: "DEF"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			h := Timezone(def)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocationFromContext(r.Context()).String()
			}))
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				req.Header.Set("X-Timezone", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if got != tc.want {
				t.Fatalf("location = %q, want %q", got, tc.want)
			}
		})
	}
	if LocationFromContext(context.Background()) != time.UTC {
		t.Fatal("empty context should default to UTC")
	}
}
