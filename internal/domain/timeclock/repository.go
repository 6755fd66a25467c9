package timeclock

import (
	"context"
	"time"
)

// ClockEventRepository defines data access for raw punch rows.
// All methods take companyID to prevent cross-company data access.
// Row ordering is NOT guaranteed; the calculator sorts defensively.
type ClockEventRepository interface {
	// Create inserts a new punch row
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// GetByID retrieves one punch with company isolation
	GetByID(ctx context.Context, id string, companyID string) (ClockEvent, error)

	// ListByStaff retrieves punches for one staff member with occurred_at in [from, to)
	ListByStaff(ctx context.Context, staffID string, from, to time.Time, companyID string) ([]ClockEvent, error)

	// ListByCompany retrieves punches for every staff member with occurred_at in [from, to)
	ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]ClockEvent, error)

	// MarkCorrected flags an existing punch as superseded by a correction
	MarkCorrected(ctx context.Context, id string, companyID string) error
}
