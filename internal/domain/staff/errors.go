package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffCodeExists = errors.New("staff code already exists")
	ErrStaffInactive   = errors.New("staff member is inactive")
)
