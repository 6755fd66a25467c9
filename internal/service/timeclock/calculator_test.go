package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
)

var tokyo = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, hour, min, 0, 0, tokyo)
}

func ev(t *testing.T, kind timeclock.EventKind, hour, min int) timeclock.ClockEvent {
	t.Helper()
	return timeclock.ClockEvent{
		ID:         string(kind) + "@" + at(t, hour, min).Format("15:04"),
		StaffID:    "staff-1",
		Kind:       kind,
		OccurredAt: at(t, hour, min),
	}
}

func TestNetWorkingMinutes(t *testing.T) {
	t.Parallel()

	start := at(t, 9, 0)

	assert.Equal(t, 0, NetWorkingMinutes(start, start.Add(-time.Hour)), "end before start clamps to zero")
	assert.Equal(t, 0, NetWorkingMinutes(start, start))
	assert.Equal(t, 0, NetWorkingMinutes(start, start.Add(59*time.Second)), "sub-minute elapsed floors to zero")
	assert.Equal(t, 1, NetWorkingMinutes(start, start.Add(90*time.Second)))
	assert.Equal(t, 540, NetWorkingMinutes(start, start.Add(9*time.Hour)))
}

func TestNetWorkingMinutes_MonotonicInEnd(t *testing.T) {
	t.Parallel()

	start := at(t, 9, 0)
	prev := 0
	for i := 0; i < 200; i++ {
		got := NetWorkingMinutes(start, start.Add(time.Duration(i)*7*time.Minute))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestDailyNetMinutes_IncompleteShifts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DailyNetMinutes(nil))
	assert.Equal(t, 0, DailyNetMinutes([]timeclock.ClockEvent{}))
	assert.Equal(t, 0, DailyNetMinutes([]timeclock.ClockEvent{ev(t, timeclock.KindClockIn, 9, 0)}))
	assert.Equal(t, 0, DailyNetMinutes([]timeclock.ClockEvent{ev(t, timeclock.KindClockOut, 18, 0)}))
	assert.Equal(t, 0, DailyNetMinutes([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakStart, 12, 0),
		ev(t, timeclock.KindBreakEnd, 13, 0),
	}), "clock-in followed by breaks but no clock-out still contributes nothing")
}

func TestDailyAttendance_StandardDayWithBreak(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakStart, 12, 0),
		ev(t, timeclock.KindBreakEnd, 13, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
	})

	assert.Equal(t, 540, day.GrossMinutes)
	assert.Equal(t, 60, day.BreakMinutes)
	assert.Equal(t, 480, day.NetMinutes)
	assert.Empty(t, day.Anomalies)
	require.NotNil(t, day.FirstIn)
	require.NotNil(t, day.LastOut)
	assert.Equal(t, at(t, 9, 0), *day.FirstIn)
	assert.Equal(t, at(t, 18, 0), *day.LastOut)
}

func TestDailyAttendance_NoBreak(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
	})

	assert.Equal(t, 540, day.NetMinutes)
	assert.Equal(t, 0, day.BreakMinutes)
}

func TestDailyAttendance_UnsortedInput(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockOut, 18, 0),
		ev(t, timeclock.KindBreakEnd, 13, 0),
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakStart, 12, 0),
	})

	assert.Equal(t, 480, day.NetMinutes, "calculator sorts defensively")
}

func TestDailyAttendance_OpenBreakNeverCloses(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakStart, 12, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
	})

	assert.Equal(t, 0, day.BreakMinutes, "open break contributes nothing")
	assert.Equal(t, 540, day.NetMinutes)
	assert.Contains(t, day.Anomalies, timeclock.AnomalyOpenBreak)
}

func TestDailyAttendance_NoisyBreakPunches(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakEnd, 10, 0),   // stray: no open break
		ev(t, timeclock.KindBreakStart, 12, 0),
		ev(t, timeclock.KindBreakStart, 12, 30), // duplicate while open
		ev(t, timeclock.KindBreakEnd, 13, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
	})

	assert.Equal(t, 60, day.BreakMinutes, "only the first open break pairs")
	assert.Equal(t, 480, day.NetMinutes)
	assert.Contains(t, day.Anomalies, timeclock.AnomalyStrayBreakEnd)
	assert.Contains(t, day.Anomalies, timeclock.AnomalyDuplicateBreakStart)
}

func TestDailyAttendance_BreakOutsideShiftWindow(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindBreakStart, 8, 0), // before clock-in
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
		ev(t, timeclock.KindBreakEnd, 19, 0), // after clock-out
	})

	assert.Equal(t, 0, day.BreakMinutes)
	assert.Equal(t, 540, day.NetMinutes)
	assert.Contains(t, day.Anomalies, timeclock.AnomalyBreakOutsideShift)
}

func TestDailyAttendance_ClockOutBeforeClockIn(t *testing.T) {
	t.Parallel()

	day := DailyAttendance([]timeclock.ClockEvent{
		ev(t, timeclock.KindClockOut, 8, 0),
		ev(t, timeclock.KindClockIn, 9, 0),
	})

	assert.Equal(t, 0, day.GrossMinutes, "last clock-out before first clock-in clamps to zero")
	assert.Equal(t, 0, day.NetMinutes)
}

func TestDailyNetMinutes_Idempotent(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		ev(t, timeclock.KindClockIn, 9, 0),
		ev(t, timeclock.KindBreakStart, 12, 0),
		ev(t, timeclock.KindBreakEnd, 13, 0),
		ev(t, timeclock.KindClockOut, 18, 0),
	}

	first := DailyNetMinutes(events)
	second := DailyNetMinutes(events)
	assert.Equal(t, first, second)
	assert.Equal(t, 480, first)
}

func TestMonthlyNetMinutes_GroupsByLocalDay(t *testing.T) {
	t.Parallel()

	day1 := []timeclock.ClockEvent{
		{Kind: timeclock.KindClockIn, OccurredAt: time.Date(2026, 3, 2, 9, 0, 0, 0, tokyo)},
		{Kind: timeclock.KindClockOut, OccurredAt: time.Date(2026, 3, 2, 17, 0, 0, 0, tokyo)},
	}
	day2 := []timeclock.ClockEvent{
		{Kind: timeclock.KindClockIn, OccurredAt: time.Date(2026, 3, 3, 9, 0, 0, 0, tokyo)},
		{Kind: timeclock.KindClockOut, OccurredAt: time.Date(2026, 3, 3, 18, 30, 0, 0, tokyo)},
	}
	// Overnight shift: clock-in and clock-out land on different local days,
	// so neither day pairs up and the shift counts for nothing.
	overnight := []timeclock.ClockEvent{
		{Kind: timeclock.KindClockIn, OccurredAt: time.Date(2026, 3, 4, 22, 0, 0, 0, tokyo)},
		{Kind: timeclock.KindClockOut, OccurredAt: time.Date(2026, 3, 5, 6, 0, 0, 0, tokyo)},
	}

	var events []timeclock.ClockEvent
	events = append(events, day1...)
	events = append(events, day2...)
	events = append(events, overnight...)

	assert.Equal(t, 480+570, MonthlyNetMinutes(events, tokyo))
}

func TestMonthlyNetMinutes_UTCStorageLocalBucketing(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on Mar 1 is 08:30 JST on Mar 2; both punches bucket into the
	// same Tokyo day even though their UTC dates differ.
	events := []timeclock.ClockEvent{
		{Kind: timeclock.KindClockIn, OccurredAt: time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)},
		{Kind: timeclock.KindClockOut, OccurredAt: time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)},
	}

	assert.Equal(t, 540, MonthlyNetMinutes(events, tokyo))
	assert.Equal(t, 0, MonthlyNetMinutes(events, time.UTC), "same punches split across two UTC days")
}
