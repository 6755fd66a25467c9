package timeclock

import (
	"time"

	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

// ========== PUNCH DTOs ==========

type PunchRequest struct {
	Kind string `json:"kind"`
	// Optional override; defaults to the server clock. RFC3339.
	OccurredAt *string `json:"occurred_at,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !EventKind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be one of clock_in, break_start, break_end, clock_out"})
	}
	if r.OccurredAt != nil {
		if _, ok := validator.IsValidDateTime(*r.OccurredAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "occurred_at", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CorrectEventRequest replaces an existing punch. The original row is kept
// and flagged corrected; the replacement is inserted as a new event.
type CorrectEventRequest struct {
	EventID    string `json:"event_id"`
	Kind       string `json:"kind"`
	OccurredAt string `json:"occurred_at"`
}

func (r *CorrectEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "is required"})
	}
	if !EventKind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be one of clock_in, break_start, break_end, clock_out"})
	}
	if _, ok := validator.IsValidDateTime(r.OccurredAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "occurred_at", Message: "must be an RFC3339 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type EventResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	StaffName  *string `json:"staff_name,omitempty"`
	Kind       string  `json:"kind"`
	OccurredAt string  `json:"occurred_at"`
	Corrected  bool    `json:"corrected"`
}

func NewEventResponse(ev ClockEvent) EventResponse {
	return EventResponse{
		ID:         ev.ID,
		StaffID:    ev.StaffID,
		StaffName:  ev.StaffName,
		Kind:       string(ev.Kind),
		OccurredAt: ev.OccurredAt.Format(time.RFC3339),
		Corrected:  ev.Corrected,
	}
}

type DailyAttendanceResponse struct {
	Date         string   `json:"date"`
	FirstIn      *string  `json:"first_in,omitempty"`
	LastOut      *string  `json:"last_out,omitempty"`
	GrossMinutes int      `json:"gross_minutes"`
	BreakMinutes int      `json:"break_minutes"`
	NetMinutes   int      `json:"net_minutes"`
	Anomalies    []string `json:"anomalies"`
}

func NewDailyAttendanceResponse(day DailyAttendance) DailyAttendanceResponse {
	resp := DailyAttendanceResponse{
		Date:         day.Date,
		GrossMinutes: day.GrossMinutes,
		BreakMinutes: day.BreakMinutes,
		NetMinutes:   day.NetMinutes,
		Anomalies:    make([]string, 0, len(day.Anomalies)),
	}
	if day.FirstIn != nil {
		s := day.FirstIn.Format(time.RFC3339)
		resp.FirstIn = &s
	}
	if day.LastOut != nil {
		s := day.LastOut.Format(time.RFC3339)
		resp.LastOut = &s
	}
	for _, a := range day.Anomalies {
		resp.Anomalies = append(resp.Anomalies, string(a))
	}
	return resp
}
