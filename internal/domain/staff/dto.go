package staff

import (
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

// ========== WAGE PROFILE DTOs ==========

type WageProfileResponse struct {
	StaffID     string        `json:"staff_id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Role        string        `json:"role"`
	HourlyWage  int64         `json:"hourly_wage"`
	Dependents  int           `json:"dependents"`
	TaxCategory string        `json:"tax_category"`
	Allowances  []NamedAmount `json:"allowances"`
	Deductions  []NamedAmount `json:"deductions"`
	IsActive    bool          `json:"is_active"`
}

func NewWageProfileResponse(s Staff) WageProfileResponse {
	allowances := s.Allowances
	if allowances == nil {
		allowances = []NamedAmount{}
	}
	deductions := s.Deductions
	if deductions == nil {
		deductions = []NamedAmount{}
	}
	return WageProfileResponse{
		StaffID:     s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Role:        s.Role,
		HourlyWage:  s.HourlyWage,
		Dependents:  s.Dependents,
		TaxCategory: string(s.TaxCategory),
		Allowances:  allowances,
		Deductions:  deductions,
		IsActive:    s.IsActive,
	}
}

type UpdateWageProfileRequest struct {
	StaffID     string
	HourlyWage  *int64         `json:"hourly_wage,omitempty"`
	Dependents  *int           `json:"dependents,omitempty"`
	TaxCategory *string        `json:"tax_category,omitempty"`
	Allowances  *[]NamedAmount `json:"allowances,omitempty"`
	Deductions  *[]NamedAmount `json:"deductions,omitempty"`
}

func (r *UpdateWageProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyWage != nil && *r.HourlyWage < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be non-negative"})
	}
	if r.Dependents != nil && *r.Dependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependents", Message: "must be non-negative"})
	}
	if r.TaxCategory != nil && !TaxCategory(*r.TaxCategory).Valid() {
		errs = append(errs, validator.ValidationError{Field: "tax_category", Message: "must be 'kou' or 'otsu'"})
	}
	if r.Allowances != nil {
		if len(*r.Allowances) > MaxAllowances {
			errs = append(errs, validator.ValidationError{Field: "allowances", Message: "at most 3 allowance lines"})
		}
		for _, a := range *r.Allowances {
			if validator.IsEmpty(a.Name) || a.Amount < 0 {
				errs = append(errs, validator.ValidationError{Field: "allowances", Message: "each line needs a name and a non-negative amount"})
				break
			}
		}
	}
	if r.Deductions != nil {
		if len(*r.Deductions) > MaxDeductions {
			errs = append(errs, validator.ValidationError{Field: "deductions", Message: "at most 2 deduction lines"})
		}
		for _, d := range *r.Deductions {
			if validator.IsEmpty(d.Name) || d.Amount < 0 {
				errs = append(errs, validator.ValidationError{Field: "deductions", Message: "each line needs a name and a non-negative amount"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
