package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/infra/geoip"
	"github.com/faheemframes/healthyfi/internal/middleware"
	"github.com/faheemframes/healthyfi/internal/providers/foodscan"
	"github.com/faheemframes/healthyfi/internal/service"
)

// maxBodyBytes bounds JSON request bodies. Scan requests may carry a photo.
const (
	maxBodyBytes     = 1 << 20
	maxScanBodyBytes = 10 << 20
)

type App struct {
	Config      *infra.Config
	Logger      infra.Logger
	Store       infra.SQLExecutor
	GeoIP       *geoip.Resolver
	Dashboard   *service.DashboardService
	Suggestions *service.SuggestionService
	Intake      *service.IntakeService
	Reminders   *service.ReminderService
	Profiles    *service.ProfileService
	Scanner     foodscan.Recognizer
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": msg},
	})
}

// functionError is the flat error body of the function endpoints.
func (a *App) functionError(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// log is the request-scoped logger, tagged with the request id.
func (a *App) log(r *http.Request) *infra.Logger {
	l := middleware.RequestLogger(r.Context(), a.Logger)
	return &l
}

func locationOf(r *http.Request) *time.Location {
	return middleware.LocationFromContext(r.Context())
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(v)
}

// session builds the per-request context: caller, request zone and the
// stored profile (nil when the user has not onboarded).
func (a *App) session(r *http.Request) (domain.SessionContext, error) {
	sess := a.bareSession(r)
	profile, err := a.Profiles.Load(r.Context(), sess.UserID)
	if err != nil {
		return sess, err
	}
	sess.Profile = profile
	return sess, nil
}

// storeError answers a failed store operation: invalid input is the
// caller's fault, a missing row is 404, anything else is logged.
func (a *App) storeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	p := printer(r)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", p.Sprintf(msgNotFound))
	default:
		a.log(r).Error().Err(err).
			Str("user_id", a.currentUserID(r)).
			Msg(action + " failed")
		a.error(w, http.StatusInternalServerError, "internal", p.Sprintf(msgInternal))
	}
}

// CountryLookup adapts the GeoIP resolver for the I18N middleware. It is nil
// when no database is loaded.
func (a *App) CountryLookup() middleware.CountryLookup {
	if !a.GeoIP.Enabled() {
		return nil
	}
	return a.GeoIP.CountryCode
}
