package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) timeclock.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Create implements timeclock.ClockEventRepository.
func (r *clockEventRepository) Create(ctx context.Context, event timeclock.ClockEvent) (timeclock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_events (id, staff_id, company_id, kind, occurred_at, corrected)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.StaffID,
		event.CompanyID,
		event.Kind,
		event.OccurredAt,
	).Scan(&event.CreatedAt)

	if err != nil {
		return timeclock.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

// GetByID implements timeclock.ClockEventRepository.
func (r *clockEventRepository) GetByID(ctx context.Context, id string, companyID string) (timeclock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, company_id, kind, occurred_at, corrected, created_at
		FROM clock_events
		WHERE id = $1
		  AND company_id = $2
	`

	var event timeclock.ClockEvent
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&event.ID, &event.StaffID, &event.CompanyID, &event.Kind,
		&event.OccurredAt, &event.Corrected, &event.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timeclock.ClockEvent{}, timeclock.ErrEventNotFound
		}
		return timeclock.ClockEvent{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	return event, nil
}

// ListByStaff implements timeclock.ClockEventRepository.
// Corrected rows are excluded; their replacement rows carry the data.
func (r *clockEventRepository) ListByStaff(ctx context.Context, staffID string, from, to time.Time, companyID string) ([]timeclock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, company_id, kind, occurred_at, corrected, created_at
		FROM clock_events
		WHERE staff_id = $1
		  AND company_id = $2
		  AND occurred_at >= $3
		  AND occurred_at < $4
		  AND corrected = false
		ORDER BY occurred_at
	`

	rows, err := q.Query(ctx, query, staffID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	return scanClockEvents(rows)
}

// ListByCompany implements timeclock.ClockEventRepository.
func (r *clockEventRepository) ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]timeclock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ce.id, ce.staff_id, ce.company_id, ce.kind, ce.occurred_at, ce.corrected, ce.created_at, s.name
		FROM clock_events ce
		JOIN staff s ON s.id = ce.staff_id
		WHERE ce.company_id = $1
		  AND ce.occurred_at >= $2
		  AND ce.occurred_at < $3
		  AND ce.corrected = false
		ORDER BY ce.occurred_at
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	events := make([]timeclock.ClockEvent, 0)
	for rows.Next() {
		var event timeclock.ClockEvent
		err := rows.Scan(
			&event.ID, &event.StaffID, &event.CompanyID, &event.Kind,
			&event.OccurredAt, &event.Corrected, &event.CreatedAt, &event.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock events: %w", err)
	}

	return events, nil
}

// MarkCorrected implements timeclock.ClockEventRepository.
func (r *clockEventRepository) MarkCorrected(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clock_events
		SET corrected = true
		WHERE id = $1
		  AND company_id = $2
		  AND corrected = false
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark clock event corrected: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrEventNotFound
	}

	return nil
}

func scanClockEvents(rows pgx.Rows) ([]timeclock.ClockEvent, error) {
	events := make([]timeclock.ClockEvent, 0)
	for rows.Next() {
		var event timeclock.ClockEvent
		err := rows.Scan(
			&event.ID, &event.StaffID, &event.CompanyID, &event.Kind,
			&event.OccurredAt, &event.Corrected, &event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock events: %w", err)
	}

	return events, nil
}
