package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

func TestPunchRequestValidate(t *testing.T) {
	t.Parallel()

	valid := PunchRequest{Kind: "clock_in"}
	assert.NoError(t, valid.Validate())

	override := "2026-03-10T09:00:00+09:00"
	withTime := PunchRequest{Kind: "break_start", OccurredAt: &override}
	assert.NoError(t, withTime.Validate())

	bad := PunchRequest{Kind: "lunch"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "kind", errs[0].Field)

	garbled := "yesterday"
	badTime := PunchRequest{Kind: "clock_in", OccurredAt: &garbled}
	assert.Error(t, badTime.Validate())
}

func TestCorrectEventRequestValidate(t *testing.T) {
	t.Parallel()

	valid := CorrectEventRequest{
		EventID:    "evt-1",
		Kind:       "clock_out",
		OccurredAt: "2026-03-10T18:00:00+09:00",
	}
	assert.NoError(t, valid.Validate())

	missing := CorrectEventRequest{Kind: "clock_out"}
	err := missing.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2) // event_id and occurred_at
}

func TestEventKindValid(t *testing.T) {
	t.Parallel()

	for _, kind := range []EventKind{KindClockIn, KindBreakStart, KindBreakEnd, KindClockOut} {
		assert.True(t, kind.Valid(), string(kind))
	}
	assert.False(t, EventKind("overtime_start").Valid())
	assert.False(t, EventKind("").Valid())
}
