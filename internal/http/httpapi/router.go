package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/faheemframes/healthyfi/internal/http/handlers"
	"github.com/faheemframes/healthyfi/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	cfg := app.Config
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID(app.Logger),
		middleware.Logger(app.Logger),
		middleware.I18N(cfg.DefaultLocale, app.CountryLookup()),
		middleware.Timezone(cfg.Location()),
	)

	// Public functions: permissive CORS, throttled per client IP.
	r.Route("/v1/functions", func(r chi.Router) {
		r.Use(
			middleware.FunctionCORS,
			middleware.RateLimit(cfg.RateLimitPerMin, time.Minute, app.FunctionRateLimited),
		)
		r.Post("/diet-suggestions", app.DietSuggestions)
		r.Post("/scan-meal", app.ScanMeal)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

		r.Get("/healthz", app.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))

			r.Get("/dashboard", app.GetDashboard)

			r.Route("/meals", func(r chi.Router) {
				r.Get("/", app.ListMeals)
				r.Post("/", app.CreateMeal)
				r.Get("/common", app.CommonMeals)
			})

			r.Route("/water", func(r chi.Router) {
				r.Get("/", app.ListWater)
				r.Post("/", app.CreateWater)
			})

			r.Get("/profile", app.GetProfile)
			r.Put("/profile", app.PutProfile)

			r.Route("/reminders", func(r chi.Router) {
				r.Get("/", app.ListReminders)
				r.Post("/", app.CreateReminder)
				r.Delete("/{id}", app.DeleteReminder)
			})

			r.Post("/suggestions", app.PostSuggestions)
		})
	})

	return r
}
