package timeclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
	"github.com/yamato-foods/backoffice-go/internal/pkg/sse"
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
	"github.com/yamato-foods/backoffice-go/internal/repository/postgresql"
)

type TimeclockServiceImpl struct {
	db        *database.DB
	eventRepo timeclock.ClockEventRepository
	hub       *sse.Hub
	loc       *time.Location
}

func NewTimeclockService(
	db *database.DB,
	eventRepo timeclock.ClockEventRepository,
	hub *sse.Hub,
	loc *time.Location,
) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		db:        db,
		eventRepo: eventRepo,
		hub:       hub,
		loc:       loc,
	}
}

// Helper to get company_id and staff_id from JWT context
func claimsFromContext(ctx context.Context) (companyID, staffID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	staffID, ok = claims["staff_id"].(string)
	if !ok || staffID == "" {
		return "", "", fmt.Errorf("staff_id claim is missing or invalid")
	}

	return companyID, staffID, nil
}

// Punch implements timeclock.TimeclockService.
//
// Intake is deliberately permissive: a break_end with no open break or a
// second clock_in records the row as-is. The calculator tolerates noisy
// sequences and flags them as anomalies, so rejecting punches here would
// only lose data.
func (s *TimeclockServiceImpl) Punch(ctx context.Context, req timeclock.PunchRequest) (timeclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.EventResponse{}, err
	}

	companyID, staffID, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.OccurredAt)
		if err != nil {
			return timeclock.EventResponse{}, fmt.Errorf("failed to parse occurred_at: %w", err)
		}
		occurredAt = parsed.UTC()
	}

	event := timeclock.ClockEvent{
		ID:         uuid.NewString(),
		StaffID:    staffID,
		CompanyID:  companyID,
		Kind:       timeclock.EventKind(req.Kind),
		OccurredAt: occurredAt,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return timeclock.EventResponse{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	// Nudge dashboard watchers; the refresh job rebuilds the snapshot.
	s.hub.Publish(companyID, sse.Event{Event: "punch", Data: timeclock.NewEventResponse(created)})

	return timeclock.NewEventResponse(created), nil
}

// Correct implements timeclock.TimeclockService.
// Corrections never update a time value in place: the original row is
// flagged and a replacement row is inserted, so the punch history stays
// auditable.
func (s *TimeclockServiceImpl) Correct(ctx context.Context, req timeclock.CorrectEventRequest) (timeclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.EventResponse{}, err
	}

	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	original, err := s.eventRepo.GetByID(ctx, req.EventID, companyID)
	if err != nil {
		if errors.Is(err, timeclock.ErrEventNotFound) {
			return timeclock.EventResponse{}, timeclock.ErrEventNotFound
		}
		return timeclock.EventResponse{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	if original.Corrected {
		return timeclock.EventResponse{}, timeclock.ErrEventCorrected
	}

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		return timeclock.EventResponse{}, fmt.Errorf("failed to parse occurred_at: %w", err)
	}

	replacement := timeclock.ClockEvent{
		ID:         uuid.NewString(),
		StaffID:    original.StaffID,
		CompanyID:  companyID,
		Kind:       timeclock.EventKind(req.Kind),
		OccurredAt: occurredAt.UTC(),
	}

	// Flag and replace atomically so no reader ever sees the day without
	// either row.
	var created timeclock.ClockEvent
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.eventRepo.MarkCorrected(txCtx, original.ID, companyID); err != nil {
			return fmt.Errorf("failed to mark event corrected: %w", err)
		}

		created, err = s.eventRepo.Create(txCtx, replacement)
		if err != nil {
			return fmt.Errorf("failed to create replacement event: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.EventResponse{}, err
	}

	s.hub.Publish(companyID, sse.Event{Event: "punch", Data: timeclock.NewEventResponse(created)})

	return timeclock.NewEventResponse(created), nil
}

// ListEvents implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ListEvents(ctx context.Context, staffID string, date string) ([]timeclock.EventResponse, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	dayStart, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.eventRepo.ListByStaff(ctx, staffID, dayStart.UTC(), dayEnd.UTC(), companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}

	responses := make([]timeclock.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, timeclock.NewEventResponse(ev))
	}
	return responses, nil
}
