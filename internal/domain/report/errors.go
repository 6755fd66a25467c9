package report

import "errors"

// Report domain errors
var (
	ErrExportEmpty = errors.New("no staff to export for this period")
)
