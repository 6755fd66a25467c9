package timeclock

import (
	"sort"
	"time"

	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
)

// NetWorkingMinutes returns the whole-minute floor of the elapsed duration
// between start and end. A clock-out stamped before its clock-in yields 0,
// never a negative value. Total over all inputs.
func NetWorkingMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

// DailyAttendance derives one staff member's day from its raw punches.
//
// The shift window is [first clock_in, last clock_out]: using only the first
// in and the last out keeps the result stable under accidental double
// punches, at the cost of not representing multiple disjoint shifts in one
// day. If either end is missing the day contributes zero minutes.
//
// Breaks are paired inside the window with a single open-break scan. A
// break_start while another break is open, a break_end with no open break,
// and break punches outside the window change nothing in the minute total;
// they are recorded as anomalies so an administrator can review the day
// instead of the noise being swallowed silently.
func DailyAttendance(events []timeclock.ClockEvent) timeclock.DailyAttendance {
	sorted := make([]timeclock.ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	var day timeclock.DailyAttendance

	var firstIn, lastOut *time.Time
	for i := range sorted {
		if sorted[i].Kind == timeclock.KindClockIn {
			firstIn = &sorted[i].OccurredAt
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Kind == timeclock.KindClockOut {
			lastOut = &sorted[i].OccurredAt
			break
		}
	}

	if len(sorted) > 0 {
		day.Date = sorted[0].OccurredAt.Format("2006-01-02")
	}

	// Incomplete shift: contributes nothing, but is not an error.
	if firstIn == nil || lastOut == nil {
		if len(sorted) > 0 && firstIn == nil {
			day.Anomalies = append(day.Anomalies, timeclock.AnomalyMissingClockIn)
		}
		if len(sorted) > 0 && lastOut == nil {
			day.Anomalies = append(day.Anomalies, timeclock.AnomalyMissingClockOut)
		}
		return day
	}

	day.FirstIn = firstIn
	day.LastOut = lastOut
	day.GrossMinutes = NetWorkingMinutes(*firstIn, *lastOut)

	var openBreak *time.Time
	for i := range sorted {
		ev := sorted[i]
		if ev.Kind != timeclock.KindBreakStart && ev.Kind != timeclock.KindBreakEnd {
			continue
		}
		if ev.OccurredAt.Before(*firstIn) || ev.OccurredAt.After(*lastOut) {
			day.Anomalies = append(day.Anomalies, timeclock.AnomalyBreakOutsideShift)
			continue
		}

		switch ev.Kind {
		case timeclock.KindBreakStart:
			if openBreak == nil {
				openBreak = &sorted[i].OccurredAt
			} else {
				day.Anomalies = append(day.Anomalies, timeclock.AnomalyDuplicateBreakStart)
			}
		case timeclock.KindBreakEnd:
			if openBreak != nil {
				day.BreakMinutes += NetWorkingMinutes(*openBreak, ev.OccurredAt)
				openBreak = nil
			} else {
				day.Anomalies = append(day.Anomalies, timeclock.AnomalyStrayBreakEnd)
			}
		}
	}
	if openBreak != nil {
		// A break that never closed contributes 0 to the break total, which
		// over-reports net minutes; flag it for review.
		day.Anomalies = append(day.Anomalies, timeclock.AnomalyOpenBreak)
	}

	day.NetMinutes = day.GrossMinutes - day.BreakMinutes
	if day.NetMinutes < 0 {
		day.NetMinutes = 0
	}

	return day
}

// DailyNetMinutes returns the net worked minutes of one staff/day event list.
func DailyNetMinutes(events []timeclock.ClockEvent) int {
	return DailyAttendance(events).NetMinutes
}

// GroupByDay buckets events by their local calendar day in loc.
// Keys are YYYY-MM-DD.
func GroupByDay(events []timeclock.ClockEvent, loc *time.Location) map[string][]timeclock.ClockEvent {
	byDay := make(map[string][]timeclock.ClockEvent)
	for _, ev := range events {
		key := ev.OccurredAt.In(loc).Format("2006-01-02")
		byDay[key] = append(byDay[key], ev)
	}
	return byDay
}

// MonthlyNetMinutes sums DailyNetMinutes over the local calendar days of the
// given events. A shift must start and end on the same local day to count;
// there is no cross-day shift support.
func MonthlyNetMinutes(events []timeclock.ClockEvent, loc *time.Location) int {
	total := 0
	for _, dayEvents := range GroupByDay(events, loc) {
		total += DailyNetMinutes(dayEvents)
	}
	return total
}
