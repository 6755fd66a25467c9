package response

import (
	"errors"
	"net/http"

	"github.com/yamato-foods/backoffice-go/internal/domain/auth"
	"github.com/yamato-foods/backoffice-go/internal/domain/payroll"
	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid staff code or PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffInactive):
		Forbidden(w, "Staff account is inactive")
	case errors.Is(err, staff.ErrStaffCodeExists):
		Conflict(w, "Staff code already exists")

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrEventNotFound):
		NotFound(w, "Clock event not found")
	case errors.Is(err, timeclock.ErrEventCorrected):
		Conflict(w, "Clock event was already corrected")
	case errors.Is(err, timeclock.ErrUnknownEventKind):
		BadRequest(w, "Unknown clock event kind", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoWageProfile):
		Conflict(w, "Wage profile is not configured for this staff member")

	// Report domain errors
	case errors.Is(err, report.ErrExportEmpty):
		NotFound(w, "No staff to export for this month")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
