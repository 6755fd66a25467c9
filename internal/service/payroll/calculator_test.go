package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
)

func TestHoursFromMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", HoursFromMinutes(0).StringFixed(2))
	assert.Equal(t, "0.00", HoursFromMinutes(-30).StringFixed(2))
	assert.Equal(t, "8.00", HoursFromMinutes(480).StringFixed(2))
	assert.Equal(t, "9.00", HoursFromMinutes(540).StringFixed(2))
	assert.Equal(t, "1.67", HoursFromMinutes(100).StringFixed(2), "1.666... rounds half up")
	assert.Equal(t, "0.02", HoursFromMinutes(1).StringFixed(2))
	assert.Equal(t, "7.83", HoursFromMinutes(470).StringFixed(2))
}

func TestGrossWage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(8800), GrossWage(480, 1100))
	assert.Equal(t, int64(0), GrossWage(0, 1100))
	assert.Equal(t, int64(0), GrossWage(480, 0))
	assert.Equal(t, int64(0), GrossWage(-60, 1100))

	// Raw-minute precision, floored: 475 min * 1100 / 60 = 8708.33...
	assert.Equal(t, int64(8708), GrossWage(475, 1100))
	// One minute at 1000/h is 16.66..., floored to 16.
	assert.Equal(t, int64(16), GrossWage(1, 1000))
}

func TestNetPay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(8800), NetPay(8800, 0, 0, 0))
	assert.Equal(t, int64(10_300), NetPay(8800, 2000, 500, 0))

	// Deductions exceeding gross go negative and are not clamped.
	assert.Equal(t, int64(-1200), NetPay(800, 0, 2000, 0))
}

func TestIncomeTax_BelowLowestBracket(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), IncomeTax(0, 0, staff.TaxCategoryPrimary))
	assert.Equal(t, int64(0), IncomeTax(8800, 0, staff.TaxCategoryPrimary))
	assert.Equal(t, int64(0), IncomeTax(87_999, 0, staff.TaxCategoryPrimary))
}

func TestIncomeTax_PrimaryBrackets(t *testing.T) {
	t.Parallel()

	// First bracket: 5.105% of the span above 88,000.
	assert.Equal(t, int64(5717), IncomeTax(200_000, 0, staff.TaxCategoryPrimary))

	// Dependents shrink the taxable base on the primary schedule.
	assert.Equal(t, int64(2484), IncomeTax(200_000, 2, staff.TaxCategoryPrimary))

	// Enough dependents push the base under the lowest bracket entirely.
	assert.Equal(t, int64(0), IncomeTax(100_000, 1, staff.TaxCategoryPrimary))
}

func TestIncomeTax_AboveTopBracketExtrapolates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(1_796_598), IncomeTax(5_000_000, 0, staff.TaxCategoryPrimary))
}

func TestIncomeTax_SecondaryIgnoresDependents(t *testing.T) {
	t.Parallel()

	base := IncomeTax(200_000, 0, staff.TaxCategorySecondary)
	assert.Equal(t, base, IncomeTax(200_000, 3, staff.TaxCategorySecondary))
	assert.Equal(t, base, IncomeTax(200_000, 7, staff.TaxCategorySecondary))

	// The primary schedule does differ for the same inputs.
	assert.NotEqual(t,
		IncomeTax(200_000, 0, staff.TaxCategoryPrimary),
		IncomeTax(200_000, 3, staff.TaxCategoryPrimary),
	)

	// Secondary withholds from the first yen: 3.063% of 50,000.
	assert.Equal(t, int64(1531), IncomeTax(50_000, 0, staff.TaxCategorySecondary))
}

func TestIncomeTax_MonotonicInGrossPay(t *testing.T) {
	t.Parallel()

	for _, category := range []staff.TaxCategory{staff.TaxCategoryPrimary, staff.TaxCategorySecondary} {
		var prev int64
		for gross := int64(0); gross <= 4_000_000; gross += 13_000 {
			got := IncomeTax(gross, 1, category)
			assert.GreaterOrEqual(t, got, prev, "category %s at gross %d", category, gross)
			prev = got
		}
	}
}

func TestCompute_EndToEnd(t *testing.T) {
	t.Parallel()

	s := staff.Staff{
		ID:          "staff-1",
		HourlyWage:  1100,
		Dependents:  0,
		TaxCategory: staff.TaxCategoryPrimary,
	}

	// One 09:00-18:00 day with a 12:00-13:00 break: 480 net minutes.
	result := Compute(480, s)

	assert.Equal(t, 480, result.TotalMinutes)
	assert.Equal(t, "8.00", result.TotalHours.StringFixed(2))
	assert.Equal(t, int64(8800), result.GrossWage)
	assert.GreaterOrEqual(t, result.IncomeTax, int64(0))
	assert.Equal(t, result.GrossWage-result.IncomeTax, result.NetPay)
}

func TestCompute_AllowancesAndDeductions(t *testing.T) {
	t.Parallel()

	s := staff.Staff{
		ID:          "staff-2",
		HourlyWage:  1200,
		Dependents:  1,
		TaxCategory: staff.TaxCategoryPrimary,
		Allowances: []staff.NamedAmount{
			{Name: "通勤手当", Amount: 10_000},
			{Name: "役職手当", Amount: 5_000},
		},
		Deductions: []staff.NamedAmount{
			{Name: "社宅控除", Amount: 20_000},
		},
	}

	// 160 hours at 1200/h.
	result := Compute(9600, s)

	assert.Equal(t, int64(192_000), result.GrossWage)
	assert.Equal(t, int64(15_000), result.AllowanceTotal)
	assert.Equal(t, int64(20_000), result.DeductionTotal)
	assert.Equal(t, IncomeTax(192_000, 1, staff.TaxCategoryPrimary), result.IncomeTax)
	assert.Equal(t,
		result.GrossWage+result.AllowanceTotal-result.DeductionTotal-result.IncomeTax,
		result.NetPay,
	)
}

func TestCompute_NoActivityMonth(t *testing.T) {
	t.Parallel()

	s := staff.Staff{
		ID:          "staff-3",
		HourlyWage:  1100,
		TaxCategory: staff.TaxCategoryPrimary,
		Deductions: []staff.NamedAmount{
			{Name: "駐車場代", Amount: 3_000},
		},
	}

	result := Compute(0, s)

	assert.Equal(t, 0, result.TotalMinutes)
	assert.Equal(t, int64(0), result.GrossWage)
	assert.Equal(t, int64(0), result.IncomeTax)
	// Fixed deductions still apply; the negative net pay is surfaced as-is.
	assert.Equal(t, int64(-3000), result.NetPay)
}
