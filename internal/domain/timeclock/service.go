package timeclock

import "context"

// TimeclockService handles punch intake and administrative corrections.
type TimeclockService interface {
	// Punch records a clock event for the authenticated staff member.
	Punch(ctx context.Context, req PunchRequest) (EventResponse, error)

	// Correct replaces a punch: inserts the corrected event and flags the original.
	Correct(ctx context.Context, req CorrectEventRequest) (EventResponse, error)

	// ListEvents returns the raw punches of one staff member for one local day.
	ListEvents(ctx context.Context, staffID string, date string) ([]EventResponse, error)
}
