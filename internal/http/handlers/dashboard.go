package handlers

import "net/http"

// GetDashboard returns today's totals, progress, the weekly chart, BMI and
// streak for the caller.
func (a *App) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := a.session(r)
	if err != nil {
		a.storeError(w, r, err, "load profile")
		return
	}
	a.json(w, http.StatusOK, a.Dashboard.Build(r.Context(), sess))
}
