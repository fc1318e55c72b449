package handlers

import (
	"net/http"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

type profileResponse struct {
	Profile *domain.Profile      `json:"profile"`
	Status  domain.ProfileStatus `json:"status"`
	Goals   domain.GoalProfile   `json:"goals"`
	BMI     *insight.BMIReading  `json:"bmi"`
}

func newProfileResponse(p *domain.Profile) profileResponse {
	resp := profileResponse{
		Profile: p,
		Status:  domain.StatusOf(p),
		Goals:   domain.GoalProfile{DailyWaterGoalML: domain.DefaultWaterGoalML},
	}
	if p != nil {
		resp.Goals = p.Goals()
		resp.BMI = insight.ReadBMI(p.Body())
	}
	return resp
}

// GetProfile returns the caller's profile, or a null profile with status
// "missing" before onboarding.
func (a *App) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := a.Profiles.Load(r.Context(), a.currentUserID(r))
	if err != nil {
		a.storeError(w, r, err, "load profile")
		return
	}
	a.json(w, http.StatusOK, newProfileResponse(p))
}

// PutProfile upserts the caller's profile. BMI is derived, never stored.
func (a *App) PutProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.Profile
	if err := a.decode(w, r, maxBodyBytes, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", printer(r).Sprintf(msgInvalidPayload))
		return
	}
	saved, err := a.Profiles.Save(r.Context(), a.bareSession(r), req)
	if err != nil {
		a.storeError(w, r, err, "save profile")
		return
	}
	a.json(w, http.StatusOK, newProfileResponse(saved))
}
