package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	// Punch records a clock event for the authenticated staff member
	Punch(w http.ResponseWriter, r *http.Request)
	// Correct flags an event and records its replacement
	Correct(w http.ResponseWriter, r *http.Request)
	// ListEvents returns one staff member's raw events for a day
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{timeclockService: timeclockService}
}

// Punch handles POST /timeclock/punch
func (h *timeclockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeclockService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// Correct handles POST /timeclock/events/{eventID}/correct
func (h *timeclockHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req timeclock.CorrectEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EventID = chi.URLParam(r, "eventID")

	result, err := h.timeclockService.Correct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction recorded", result)
}

// ListEvents handles GET /timeclock/staff/{staffID}/events
func (h *timeclockHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD

	result, err := h.timeclockService.ListEvents(r.Context(), staffID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
