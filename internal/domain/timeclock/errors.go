package timeclock

import "errors"

// Timeclock domain errors
var (
	ErrEventNotFound    = errors.New("clock event not found")
	ErrUnknownEventKind = errors.New("unknown clock event kind")
	ErrEventCorrected   = errors.New("clock event has already been corrected")
)
