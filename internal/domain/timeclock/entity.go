package timeclock

import (
	"time"
)

// EventKind enum
type EventKind string

const (
	KindClockIn    EventKind = "clock_in"
	KindBreakStart EventKind = "break_start"
	KindBreakEnd   EventKind = "break_end"
	KindClockOut   EventKind = "clock_out"
)

// ValidKinds lists every accepted punch kind, in shift order.
var ValidKinds = []EventKind{KindClockIn, KindBreakStart, KindBreakEnd, KindClockOut}

func (k EventKind) Valid() bool {
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

// ClockEvent - one punch. Immutable once created; administrative corrections
// insert a replacement row and flag the original instead of updating in place.
type ClockEvent struct {
	ID         string
	StaffID    string
	CompanyID  string
	Kind       EventKind
	OccurredAt time.Time
	Corrected  bool
	CreatedAt  time.Time

	// Joined fields
	StaffName *string
}

// Anomaly codes attached to a derived daily result. The minute total stays
// tolerant of noisy punch data; these exist so an administrator can review
// days where the tolerance rules kicked in.
type Anomaly string

const (
	AnomalyMissingClockIn      Anomaly = "missing_clock_in"
	AnomalyMissingClockOut     Anomaly = "missing_clock_out"
	AnomalyOpenBreak           Anomaly = "open_break"
	AnomalyStrayBreakEnd       Anomaly = "stray_break_end"
	AnomalyDuplicateBreakStart Anomaly = "duplicate_break_start"
	AnomalyBreakOutsideShift   Anomaly = "break_outside_shift"
)

// DailyAttendance - derived per staff member and calendar day, never persisted.
// NetMinutes is always >= 0; an incomplete shift (no clock_in or no clock_out)
// contributes zero minutes.
type DailyAttendance struct {
	Date         string
	FirstIn      *time.Time
	LastOut      *time.Time
	GrossMinutes int
	BreakMinutes int
	NetMinutes   int
	Anomalies    []Anomaly
}
