package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// Excel on Windows misreads UTF-8 CSV without a BOM and mangles the
// Japanese headers, so the export always carries one.
const utf8BOM = "\uFEFF"

var payrollCSVHeader = []string{
	"氏名",
	"社員コード",
	"役職",
	"総労働時間",
	"時給",
	"総支給額",
	"手当合計",
	"控除合計",
	"源泉所得税",
	"差引支給額",
}

// buildPayrollCSV renders one row per staff member. Hours are the rounded
// display value; every currency column is a whole yen amount.
func buildPayrollCSV(months []staffMonth) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(payrollCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, m := range months {
		record := []string{
			m.st.Name,
			m.st.Code,
			m.st.Role,
			m.result.TotalHours.StringFixed(2),
			strconv.FormatInt(m.st.HourlyWage, 10),
			strconv.FormatInt(m.result.GrossWage, 10),
			strconv.FormatInt(m.result.AllowanceTotal, 10),
			strconv.FormatInt(m.result.DeductionTotal, 10),
			strconv.FormatInt(m.result.IncomeTax, 10),
			strconv.FormatInt(m.result.NetPay, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
