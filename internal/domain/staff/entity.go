package staff

import "time"

// TaxCategory selects the withholding schedule. Primary (甲) earners get the
// per-dependent reduction; secondary (乙) earners are taxed on their own
// steeper schedule regardless of dependents.
type TaxCategory string

const (
	TaxCategoryPrimary   TaxCategory = "kou"
	TaxCategorySecondary TaxCategory = "otsu"
)

func (c TaxCategory) Valid() bool {
	return c == TaxCategoryPrimary || c == TaxCategorySecondary
}

// NamedAmount - one fixed monthly allowance or deduction line.
type NamedAmount struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Wage profiles carry at most this many allowance/deduction lines.
const (
	MaxAllowances = 3
	MaxDeductions = 2
)

// Staff - one employee record with its payroll-relevant attributes.
// The aggregation engine reads the wage profile; only administrators edit it.
type Staff struct {
	ID          string
	CompanyID   string
	Code        string
	Name        string
	Role        string
	PINHash     string
	HourlyWage  int64
	Dependents  int
	TaxCategory TaxCategory
	Allowances  []NamedAmount
	Deductions  []NamedAmount
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllowanceTotal sums the fixed monthly allowances.
func (s Staff) AllowanceTotal() int64 {
	var total int64
	for _, a := range s.Allowances {
		total += a.Amount
	}
	return total
}

// DeductionTotal sums the fixed monthly deductions.
func (s Staff) DeductionTotal() int64 {
	var total int64
	for _, d := range s.Deductions {
		total += d.Amount
	}
	return total
}
