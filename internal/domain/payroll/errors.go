package payroll

import "errors"

// Payroll domain errors
var (
	ErrNoWageProfile = errors.New("staff member has no wage profile")
)
