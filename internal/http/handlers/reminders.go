package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/faheemframes/healthyfi/internal/domain"
)

type reminderRequest struct {
	Type string `json:"reminder_type"`
	Time string `json:"time"`
}

func (a *App) ListReminders(w http.ResponseWriter, r *http.Request) {
	items, err := a.Reminders.List(r.Context(), a.bareSession(r))
	if err != nil {
		a.storeError(w, r, err, "list reminders")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// CreateReminder schedules a reminder for today at the given local "HH:MM".
func (a *App) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := a.decode(w, r, maxBodyBytes, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", printer(r).Sprintf(msgInvalidPayload))
		return
	}
	rem, err := a.Reminders.Schedule(r.Context(), a.bareSession(r), domain.ReminderType(req.Type), req.Time)
	if err != nil {
		a.storeError(w, r, err, "create reminder")
		return
	}
	a.json(w, http.StatusCreated, rem)
}

func (a *App) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", printer(r).Sprintf(msgInvalidID))
		return
	}
	if err := a.Reminders.Delete(r.Context(), a.bareSession(r), id); err != nil {
		a.storeError(w, r, err, "delete reminder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
