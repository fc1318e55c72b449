package handlers

import (
	"net/http"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/service"
)

type mealRequest struct {
	Name     string     `json:"name"`
	Calories int        `json:"calories"`
	Time     *time.Time `json:"time"`
}

type waterRequest struct {
	AmountML int        `json:"amount_ml"`
	Time     *time.Time `json:"time"`
}

func (a *App) ListMeals(w http.ResponseWriter, r *http.Request) {
	sess := a.bareSession(r)
	meals, err := a.Intake.MealsToday(r.Context(), sess)
	if err != nil {
		a.storeError(w, r, err, "list meals")
		return
	}
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	a.json(w, http.StatusOK, map[string]any{"items": meals, "total_calories": total})
}

func (a *App) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := a.decode(w, r, maxBodyBytes, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", printer(r).Sprintf(msgInvalidPayload))
		return
	}
	meal, err := a.Intake.LogMeal(r.Context(), a.bareSession(r), req.Name, req.Calories, timeOrZero(req.Time))
	if err != nil {
		a.storeError(w, r, err, "create meal")
		return
	}
	a.json(w, http.StatusCreated, meal)
}

// CommonMeals lists the quick-add presets.
func (a *App) CommonMeals(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": service.CommonMeals})
}

func (a *App) ListWater(w http.ResponseWriter, r *http.Request) {
	sess := a.bareSession(r)
	intakes, err := a.Intake.WaterToday(r.Context(), sess)
	if err != nil {
		a.storeError(w, r, err, "list water")
		return
	}
	total := 0
	for _, in := range intakes {
		total += in.AmountML
	}
	a.json(w, http.StatusOK, map[string]any{"items": intakes, "total_ml": total})
}

func (a *App) CreateWater(w http.ResponseWriter, r *http.Request) {
	var req waterRequest
	if err := a.decode(w, r, maxBodyBytes, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", printer(r).Sprintf(msgInvalidPayload))
		return
	}
	intake, err := a.Intake.LogWater(r.Context(), a.bareSession(r), req.AmountML, timeOrZero(req.Time))
	if err != nil {
		a.storeError(w, r, err, "create water intake")
		return
	}
	a.json(w, http.StatusCreated, intake)
}

// bareSession is the session without the profile, for operations that do
// not read it.
func (a *App) bareSession(r *http.Request) domain.SessionContext {
	return domain.SessionContext{UserID: a.currentUserID(r), Location: locationOf(r)}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
