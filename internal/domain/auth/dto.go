package auth

import (
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

type LoginRequest struct {
	Code string `json:"code"`
	PIN  string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match the NNNN-NNNN staff code format"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4 to 6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	IsAdmin     bool   `json:"is_admin"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
