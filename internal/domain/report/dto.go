package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type MonthlyRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyRequest struct {
	Date string `json:"date"`
}

func (r *DailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// DASHBOARD
// ========================================

// Staff presence status derived from the last punch of the day.
const (
	StatusAbsent     = "absent"
	StatusWorking    = "working"
	StatusOnBreak    = "on_break"
	StatusClockedOut = "clocked_out"
)

type DashboardRow struct {
	StaffID    string          `json:"staff_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Status     string          `json:"status"`
	NetMinutes int             `json:"net_minutes"`
	NetHours   decimal.Decimal `json:"net_hours"`
	LastPunch  *string         `json:"last_punch,omitempty"`
}

type DashboardSnapshot struct {
	Date         string         `json:"date"`
	GeneratedAt  string         `json:"generated_at"`
	WorkingCount int            `json:"working_count"`
	OnBreakCount int            `json:"on_break_count"`
	Rows         []DashboardRow `json:"rows"`
}

// ========================================
// MONTHLY LEDGER
// ========================================

type LedgerDay struct {
	Date         string   `json:"date"`
	FirstIn      *string  `json:"first_in,omitempty"`
	LastOut      *string  `json:"last_out,omitempty"`
	BreakMinutes int      `json:"break_minutes"`
	NetMinutes   int      `json:"net_minutes"`
	Anomalies    []string `json:"anomalies,omitempty"`
}

type MonthlyLedger struct {
	StaffID      string          `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Days         []LedgerDay     `json:"days"`
	TotalMinutes int             `json:"total_minutes"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	HourlyWage   int64           `json:"hourly_wage"`
	GrossWage    int64           `json:"gross_wage"`
}

// ========================================
// PAYSLIP
// ========================================

type Payslip struct {
	StaffID        string              `json:"staff_id"`
	Code           string              `json:"code"`
	StaffName      string              `json:"staff_name"`
	Role           string              `json:"role"`
	Year           int                 `json:"year"`
	Month          int                 `json:"month"`
	TotalMinutes   int                 `json:"total_minutes"`
	TotalHours     decimal.Decimal     `json:"total_hours"`
	HourlyWage     int64               `json:"hourly_wage"`
	GrossWage      int64               `json:"gross_wage"`
	Allowances     []staff.NamedAmount `json:"allowances"`
	AllowanceTotal int64               `json:"allowance_total"`
	Deductions     []staff.NamedAmount `json:"deductions"`
	DeductionTotal int64               `json:"deduction_total"`
	IncomeTax      int64               `json:"income_tax"`
	NetPay         int64               `json:"net_pay"`
}

// ========================================
// ATTENDANCE DETAIL
// ========================================

type AttendanceDetail struct {
	StaffID   string                            `json:"staff_id"`
	StaffName string                            `json:"staff_name"`
	Date      string                            `json:"date"`
	Events    []timeclock.EventResponse         `json:"events"`
	Summary   timeclock.DailyAttendanceResponse `json:"summary"`
}

// ========================================
// ANALYTICS
// ========================================

type AnalyticsRow struct {
	StaffID      string          `json:"staff_id"`
	Name         string          `json:"name"`
	TotalMinutes int             `json:"total_minutes"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	GrossWage    int64           `json:"gross_wage"`
	IncomeTax    int64           `json:"income_tax"`
	NetPay       int64           `json:"net_pay"`
	AnomalyDays  int             `json:"anomaly_days"`
}

type Analytics struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Headcount    int             `json:"headcount"`
	TotalMinutes int             `json:"total_minutes"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalGross   int64           `json:"total_gross"`
	TotalTax     int64           `json:"total_tax"`
	LaborCost    int64           `json:"labor_cost"`
	AverageHours decimal.Decimal `json:"average_hours"`
	Rows         []AnalyticsRow  `json:"rows"`
}
