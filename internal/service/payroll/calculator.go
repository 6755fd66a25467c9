package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/yamato-foods/backoffice-go/internal/domain/payroll"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
)

var sixty = decimal.NewFromInt(60)

// HoursFromMinutes converts minutes to hours rounded to 2 decimal places,
// half up. Display and CSV value only; wages are computed from raw minutes.
func HoursFromMinutes(minutes int) decimal.Decimal {
	if minutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(minutes)).DivRound(sixty, 2)
}

// GrossWage computes floor((minutes / 60) * hourlyWage) at full minute
// precision, truncated to a whole currency unit. Integer arithmetic keeps
// rounding error out of the sum across staff and days.
func GrossWage(minutes int, hourlyWage int64) int64 {
	if minutes <= 0 || hourlyWage <= 0 {
		return 0
	}
	return int64(minutes) * hourlyWage / 60
}

// NetPay is gross + allowances - deductions - tax. A negative result is
// possible when fixed deductions exceed a short month's gross; it is
// returned as-is so the anomaly stays visible to the administrator.
func NetPay(grossWage, allowances, deductions, tax int64) int64 {
	return grossWage + allowances - deductions - tax
}

// Compute assembles the full payroll result for one staff member's month
// from their net minutes and wage profile. Every view and export goes
// through here; none re-implements the arithmetic.
func Compute(totalMinutes int, s staff.Staff) payroll.PayrollResult {
	gross := GrossWage(totalMinutes, s.HourlyWage)
	allowanceTotal := s.AllowanceTotal()
	deductionTotal := s.DeductionTotal()
	tax := IncomeTax(gross, s.Dependents, s.TaxCategory)

	return payroll.PayrollResult{
		StaffID:        s.ID,
		TotalMinutes:   totalMinutes,
		TotalHours:     HoursFromMinutes(totalMinutes),
		GrossWage:      gross,
		Allowances:     s.Allowances,
		AllowanceTotal: allowanceTotal,
		Deductions:     s.Deductions,
		DeductionTotal: deductionTotal,
		IncomeTax:      tax,
		NetPay:         NetPay(gross, allowanceTotal, deductionTotal, tax),
	}
}
