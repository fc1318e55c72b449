package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/faheemframes/healthyfi/internal/sqlinline"
)

const pingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Health reports liveness and, when a store is attached, whether it answers
// a trivial query. A failed ping is 503.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		a.json(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()
	var one int
	if err := a.Store.QueryRow(ctx, sqlinline.QPing).Scan(&one); err != nil {
		a.log(r).Error().Err(err).Msg("health ping failed")
		a.json(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unavailable"})
		return
	}
	a.json(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
