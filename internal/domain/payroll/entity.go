package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
)

// PayrollResult - derived for one staff member over one period. Recomputed on
// every view from raw clock events; never persisted as authoritative.
// NetPay = GrossWage + AllowanceTotal - (DeductionTotal + IncomeTax). It can
// go negative on pathological input (deductions exceeding gross); that is
// surfaced as-is for administrator review rather than clamped.
type PayrollResult struct {
	StaffID        string
	TotalMinutes   int
	TotalHours     decimal.Decimal
	GrossWage      int64
	Allowances     []staff.NamedAmount
	AllowanceTotal int64
	Deductions     []staff.NamedAmount
	DeductionTotal int64
	IncomeTax      int64
	NetPay         int64
}
