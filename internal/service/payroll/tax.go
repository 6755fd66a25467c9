package payroll

import (
	"math"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
)

// Monthly withholding schedules, modeled on the NTA's 源泉徴収税額表 with the
// reconstruction surtax folded into the rates. Each row taxes the span from
// its lower bound: tax = base + rate * (taxable - lower). The top row has no
// upper bound; amounts above it extrapolate at the top marginal rate.
type taxBracket struct {
	lower int64
	base  int64
	rate  float64
}

// Primary (甲) schedule. Taxable pay below the first bound withholds nothing.
var primaryBrackets = []taxBracket{
	{lower: 88_000, base: 0, rate: 0.05105},
	{lower: 251_000, base: 8_321, rate: 0.10210},
	{lower: 412_000, base: 24_758, rate: 0.20420},
	{lower: 743_000, base: 92_348, rate: 0.23483},
	{lower: 1_022_000, base: 157_865, rate: 0.33693},
	{lower: 1_833_000, base: 431_114, rate: 0.40840},
	{lower: 3_588_000, base: 1_147_855, rate: 0.45945},
}

// Secondary (乙) schedule: no zero band and no dependent reduction.
var secondaryBrackets = []taxBracket{
	{lower: 0, base: 0, rate: 0.03063},
	{lower: 88_000, base: 2_695, rate: 0.10210},
	{lower: 740_000, base: 69_264, rate: 0.20420},
}

// Fixed monthly reduction of the taxable base per declared dependent,
// primary schedule only.
const dependentMonthlyDeduction int64 = 31_667

// IncomeTax computes the withheld income tax for one month's gross pay.
//
// Primary (甲): the per-dependent deduction shrinks the taxable base before
// the bracket lookup. Secondary (乙): the dependents parameter is ignored,
// matching the withholding tables where the 乙 column carries no dependent
// adjustment. Result is floored to a whole currency unit and never negative.
func IncomeTax(grossPay int64, dependents int, category staff.TaxCategory) int64 {
	if grossPay <= 0 {
		return 0
	}

	table := primaryBrackets
	taxable := grossPay
	if category == staff.TaxCategorySecondary {
		table = secondaryBrackets
	} else if dependents > 0 {
		taxable -= int64(dependents) * dependentMonthlyDeduction
	}

	if taxable < table[0].lower {
		return 0
	}

	row := table[0]
	for _, b := range table {
		if taxable < b.lower {
			break
		}
		row = b
	}

	tax := float64(row.base) + row.rate*float64(taxable-row.lower)
	if tax <= 0 {
		return 0
	}
	return int64(math.Floor(tax))
}
