package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
)

var tokyo = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, tokyo)
	require.NoError(t, err)
	return ts.UTC()
}

func ev(t *testing.T, kind timeclock.EventKind, value string) timeclock.ClockEvent {
	t.Helper()
	return timeclock.ClockEvent{
		StaffID:    "staff-1",
		Kind:       kind,
		OccurredAt: at(t, value),
	}
}

func TestDashboardRow_NoEventsIsAbsent(t *testing.T) {
	t.Parallel()

	s := &ReportServiceImpl{loc: tokyo}
	st := staff.Staff{ID: "staff-1", Code: "0001-0001", Name: "田中 太郎", Role: "ホール"}

	row := s.dashboardRow(st, nil, at(t, "2026-03-10 12:00"))

	assert.Equal(t, report.StatusAbsent, row.Status)
	assert.Equal(t, 0, row.NetMinutes)
	assert.Nil(t, row.LastPunch)
}

func TestDashboardRow_WorkingShowsProvisionalMinutes(t *testing.T) {
	t.Parallel()

	s := &ReportServiceImpl{loc: tokyo}
	st := staff.Staff{ID: "staff-1", Code: "0001-0001", Name: "田中 太郎"}
	events := []timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, "2026-03-10 09:00"),
	}

	// Three hours into an open shift the board already shows 180 minutes.
	row := s.dashboardRow(st, events, at(t, "2026-03-10 12:00"))

	assert.Equal(t, report.StatusWorking, row.Status)
	assert.Equal(t, 180, row.NetMinutes)
	assert.Equal(t, "3.00", row.NetHours.StringFixed(2))
	require.NotNil(t, row.LastPunch)
}

func TestDashboardRow_OnBreakClosesTheOpenBreak(t *testing.T) {
	t.Parallel()

	s := &ReportServiceImpl{loc: tokyo}
	st := staff.Staff{ID: "staff-1"}
	events := []timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, "2026-03-10 09:00"),
		ev(t, timeclock.KindBreakStart, "2026-03-10 12:00"),
	}

	// 30 minutes into the break: 3h gross minus the running 30m break.
	row := s.dashboardRow(st, events, at(t, "2026-03-10 12:30"))

	assert.Equal(t, report.StatusOnBreak, row.Status)
	assert.Equal(t, 180, row.NetMinutes)
}

func TestDashboardRow_ClockedOutUsesRecordedMinutes(t *testing.T) {
	t.Parallel()

	s := &ReportServiceImpl{loc: tokyo}
	st := staff.Staff{ID: "staff-1"}
	events := []timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, "2026-03-10 09:00"),
		ev(t, timeclock.KindBreakStart, "2026-03-10 12:00"),
		ev(t, timeclock.KindBreakEnd, "2026-03-10 13:00"),
		ev(t, timeclock.KindClockOut, "2026-03-10 18:00"),
	}

	// "now" is long after the shift; no synthetic events get appended.
	row := s.dashboardRow(st, events, at(t, "2026-03-10 23:00"))

	assert.Equal(t, report.StatusClockedOut, row.Status)
	assert.Equal(t, 480, row.NetMinutes)
	assert.Equal(t, "8.00", row.NetHours.StringFixed(2))
}

func TestDashboardRow_StatusFollowsLastPunchNotInputOrder(t *testing.T) {
	t.Parallel()

	s := &ReportServiceImpl{loc: tokyo}
	st := staff.Staff{ID: "staff-1"}

	// Events delivered out of order; the latest timestamp decides the status.
	events := []timeclock.ClockEvent{
		ev(t, timeclock.KindBreakEnd, "2026-03-10 13:00"),
		ev(t, timeclock.KindClockIn, "2026-03-10 09:00"),
		ev(t, timeclock.KindBreakStart, "2026-03-10 12:00"),
	}

	row := s.dashboardRow(st, events, at(t, "2026-03-10 14:00"))

	assert.Equal(t, report.StatusWorking, row.Status)
	assert.Equal(t, 240, row.NetMinutes)
}

func TestGroupByStaff(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{StaffID: "a", Kind: timeclock.KindClockIn},
		{StaffID: "b", Kind: timeclock.KindClockIn},
		{StaffID: "a", Kind: timeclock.KindClockOut},
	}

	byStaff := groupByStaff(events)

	assert.Len(t, byStaff, 2)
	assert.Len(t, byStaff["a"], 2)
	assert.Len(t, byStaff["b"], 1)
}
