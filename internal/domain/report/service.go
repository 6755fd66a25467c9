package report

import "context"

// ReportService is the single consumer-facing surface of the aggregation
// engine. Every method fetches raw clock events and wage profiles, then runs
// the same two pure calculators; none of the five views carries its own
// arithmetic.
type ReportService interface {
	// Dashboard returns today's live presence board for the caller's company.
	Dashboard(ctx context.Context) (DashboardSnapshot, error)

	// DashboardForCompany is the claims-free variant used by the periodic
	// refresh job.
	DashboardForCompany(ctx context.Context, companyID string, date string) (DashboardSnapshot, error)

	// MonthlyLedger returns one staff member's month, day by day.
	MonthlyLedger(ctx context.Context, staffID string, req MonthlyRequest) (MonthlyLedger, error)

	// Payslip returns the full payroll result for one staff member and month.
	Payslip(ctx context.Context, staffID string, req MonthlyRequest) (Payslip, error)

	// AttendanceDetail returns raw punches plus the derived daily result.
	AttendanceDetail(ctx context.Context, staffID string, req DailyRequest) (AttendanceDetail, error)

	// Analytics returns per-staff and company totals for one month.
	Analytics(ctx context.Context, req MonthlyRequest) (Analytics, error)

	// ExportPayrollCSV renders the month as UTF-8 (BOM) CSV for download.
	ExportPayrollCSV(ctx context.Context, req MonthlyRequest) ([]byte, error)
}
