package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/yamato-foods/backoffice-go/internal/domain/payroll"
	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
	payrollcalc "github.com/yamato-foods/backoffice-go/internal/service/payroll"
	timeclockcalc "github.com/yamato-foods/backoffice-go/internal/service/timeclock"
)

// ReportServiceImpl feeds every consumer surface from the same two pure
// calculators. The dashboard, ledger, payslip, attendance detail, analytics
// and CSV export used to carry their own copies of the break-pairing and
// wage arithmetic; reconciliation bugs between them all traced back to that
// duplication.
type ReportServiceImpl struct {
	db        *database.DB
	eventRepo timeclock.ClockEventRepository
	staffRepo staff.StaffRepository
	loc       *time.Location
}

func NewReportService(
	db *database.DB,
	eventRepo timeclock.ClockEventRepository,
	staffRepo staff.StaffRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		db:        db,
		eventRepo: eventRepo,
		staffRepo: staffRepo,
		loc:       loc,
	}
}

// companyIDFromContext extracts company_id from JWT claims
func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// monthRange returns the [start, end) UTC window of a local calendar month.
func (s *ReportServiceImpl) monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}

// dayRange returns the [start, end) UTC window of one local calendar day.
func (s *ReportServiceImpl) dayRange(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return start.UTC(), start.AddDate(0, 0, 1).UTC(), nil
}

func groupByStaff(events []timeclock.ClockEvent) map[string][]timeclock.ClockEvent {
	byStaff := make(map[string][]timeclock.ClockEvent)
	for _, ev := range events {
		byStaff[ev.StaffID] = append(byStaff[ev.StaffID], ev)
	}
	return byStaff
}

// Dashboard implements report.ReportService.
func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardSnapshot, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.DashboardSnapshot{}, err
	}
	today := time.Now().In(s.loc).Format("2006-01-02")
	return s.DashboardForCompany(ctx, companyID, today)
}

// DashboardForCompany implements report.ReportService.
//
// Minutes shown for an open shift are provisional: a synthetic clock_out at
// "now" (plus a break_end when the staff member is mid-break) closes the day
// before it runs through the same daily calculator. The stored aggregation
// still reports zero for an incomplete day; only the live board extrapolates.
func (s *ReportServiceImpl) DashboardForCompany(ctx context.Context, companyID string, date string) (report.DashboardSnapshot, error) {
	from, to, err := s.dayRange(date)
	if err != nil {
		return report.DashboardSnapshot{}, err
	}

	staffList, err := s.staffRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return report.DashboardSnapshot{}, fmt.Errorf("failed to list staff: %w", err)
	}

	events, err := s.eventRepo.ListByCompany(ctx, companyID, from, to)
	if err != nil {
		return report.DashboardSnapshot{}, fmt.Errorf("failed to list clock events: %w", err)
	}
	byStaff := groupByStaff(events)

	now := time.Now().UTC()
	snapshot := report.DashboardSnapshot{
		Date:        date,
		GeneratedAt: now.In(s.loc).Format(time.RFC3339),
		Rows:        make([]report.DashboardRow, 0, len(staffList)),
	}

	for _, st := range staffList {
		row := s.dashboardRow(st, byStaff[st.ID], now)
		switch row.Status {
		case report.StatusWorking:
			snapshot.WorkingCount++
		case report.StatusOnBreak:
			snapshot.OnBreakCount++
		}
		snapshot.Rows = append(snapshot.Rows, row)
	}

	sort.Slice(snapshot.Rows, func(i, j int) bool {
		return snapshot.Rows[i].Code < snapshot.Rows[j].Code
	})

	return snapshot, nil
}

func (s *ReportServiceImpl) dashboardRow(st staff.Staff, events []timeclock.ClockEvent, now time.Time) report.DashboardRow {
	row := report.DashboardRow{
		StaffID:  st.ID,
		Code:     st.Code,
		Name:     st.Name,
		Role:     st.Role,
		Status:   report.StatusAbsent,
		NetHours: decimal.Zero,
	}

	if len(events) == 0 {
		return row
	}

	sorted := make([]timeclock.ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	last := sorted[len(sorted)-1]
	lastPunch := last.OccurredAt.In(s.loc).Format(time.RFC3339)
	row.LastPunch = &lastPunch

	switch last.Kind {
	case timeclock.KindClockIn, timeclock.KindBreakEnd:
		row.Status = report.StatusWorking
	case timeclock.KindBreakStart:
		row.Status = report.StatusOnBreak
	case timeclock.KindClockOut:
		row.Status = report.StatusClockedOut
	}

	// Close an open shift at "now" so the board shows minutes-so-far.
	augmented := sorted
	if row.Status == report.StatusOnBreak {
		augmented = append(augmented, timeclock.ClockEvent{Kind: timeclock.KindBreakEnd, OccurredAt: now})
	}
	if row.Status == report.StatusWorking || row.Status == report.StatusOnBreak {
		augmented = append(augmented, timeclock.ClockEvent{Kind: timeclock.KindClockOut, OccurredAt: now})
	}

	row.NetMinutes = timeclockcalc.DailyNetMinutes(augmented)
	row.NetHours = payrollcalc.HoursFromMinutes(row.NetMinutes)
	return row
}

// MonthlyLedger implements report.ReportService.
func (s *ReportServiceImpl) MonthlyLedger(ctx context.Context, staffID string, req report.MonthlyRequest) (report.MonthlyLedger, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyLedger{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyLedger{}, err
	}

	st, err := s.staffRepo.GetByID(ctx, staffID, companyID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return report.MonthlyLedger{}, staff.ErrStaffNotFound
		}
		return report.MonthlyLedger{}, fmt.Errorf("failed to get staff: %w", err)
	}

	from, to := s.monthRange(req.Year, req.Month)
	events, err := s.eventRepo.ListByStaff(ctx, staffID, from, to, companyID)
	if err != nil {
		return report.MonthlyLedger{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	ledger := report.MonthlyLedger{
		StaffID:    st.ID,
		StaffName:  st.Name,
		Year:       req.Year,
		Month:      req.Month,
		Days:       make([]report.LedgerDay, 0),
		HourlyWage: st.HourlyWage,
	}

	byDay := timeclockcalc.GroupByDay(events, s.loc)
	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day := timeclockcalc.DailyAttendance(byDay[date])

		ledgerDay := report.LedgerDay{
			Date:         date,
			BreakMinutes: day.BreakMinutes,
			NetMinutes:   day.NetMinutes,
		}
		if day.FirstIn != nil {
			v := day.FirstIn.In(s.loc).Format("15:04")
			ledgerDay.FirstIn = &v
		}
		if day.LastOut != nil {
			v := day.LastOut.In(s.loc).Format("15:04")
			ledgerDay.LastOut = &v
		}
		for _, a := range day.Anomalies {
			ledgerDay.Anomalies = append(ledgerDay.Anomalies, string(a))
		}

		ledger.Days = append(ledger.Days, ledgerDay)
		ledger.TotalMinutes += day.NetMinutes
	}

	ledger.TotalHours = payrollcalc.HoursFromMinutes(ledger.TotalMinutes)
	ledger.GrossWage = payrollcalc.GrossWage(ledger.TotalMinutes, st.HourlyWage)

	return ledger, nil
}

// Payslip implements report.ReportService.
func (s *ReportServiceImpl) Payslip(ctx context.Context, staffID string, req report.MonthlyRequest) (report.Payslip, error) {
	if err := req.Validate(); err != nil {
		return report.Payslip{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.Payslip{}, err
	}

	st, err := s.staffRepo.GetByID(ctx, staffID, companyID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return report.Payslip{}, staff.ErrStaffNotFound
		}
		return report.Payslip{}, fmt.Errorf("failed to get staff: %w", err)
	}

	if st.HourlyWage <= 0 {
		return report.Payslip{}, payroll.ErrNoWageProfile
	}

	from, to := s.monthRange(req.Year, req.Month)
	events, err := s.eventRepo.ListByStaff(ctx, staffID, from, to, companyID)
	if err != nil {
		return report.Payslip{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	result := payrollcalc.Compute(timeclockcalc.MonthlyNetMinutes(events, s.loc), st)

	return newPayslip(st, req, result), nil
}

func newPayslip(st staff.Staff, req report.MonthlyRequest, result payrollResult) report.Payslip {
	allowances := result.Allowances
	if allowances == nil {
		allowances = []staff.NamedAmount{}
	}
	deductions := result.Deductions
	if deductions == nil {
		deductions = []staff.NamedAmount{}
	}
	return report.Payslip{
		StaffID:        st.ID,
		Code:           st.Code,
		StaffName:      st.Name,
		Role:           st.Role,
		Year:           req.Year,
		Month:          req.Month,
		TotalMinutes:   result.TotalMinutes,
		TotalHours:     result.TotalHours,
		HourlyWage:     st.HourlyWage,
		GrossWage:      result.GrossWage,
		Allowances:     allowances,
		AllowanceTotal: result.AllowanceTotal,
		Deductions:     deductions,
		DeductionTotal: result.DeductionTotal,
		IncomeTax:      result.IncomeTax,
		NetPay:         result.NetPay,
	}
}

// AttendanceDetail implements report.ReportService.
func (s *ReportServiceImpl) AttendanceDetail(ctx context.Context, staffID string, req report.DailyRequest) (report.AttendanceDetail, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceDetail{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.AttendanceDetail{}, err
	}

	st, err := s.staffRepo.GetByID(ctx, staffID, companyID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return report.AttendanceDetail{}, staff.ErrStaffNotFound
		}
		return report.AttendanceDetail{}, fmt.Errorf("failed to get staff: %w", err)
	}

	from, to, err := s.dayRange(req.Date)
	if err != nil {
		return report.AttendanceDetail{}, err
	}

	events, err := s.eventRepo.ListByStaff(ctx, staffID, from, to, companyID)
	if err != nil {
		return report.AttendanceDetail{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	day := timeclockcalc.DailyAttendance(events)
	day.Date = req.Date

	detail := report.AttendanceDetail{
		StaffID:   st.ID,
		StaffName: st.Name,
		Date:      req.Date,
		Events:    make([]timeclock.EventResponse, 0, len(events)),
		Summary:   timeclock.NewDailyAttendanceResponse(day),
	}
	for _, ev := range events {
		detail.Events = append(detail.Events, timeclock.NewEventResponse(ev))
	}

	return detail, nil
}

// staffMonth is one staff member's aggregated month, shared by analytics
// and the CSV export.
type staffMonth struct {
	st          staff.Staff
	result      payrollResult
	anomalyDays int
}

type payrollResult = payroll.PayrollResult

// monthForCompany aggregates every active staff member of the company.
// Each staff member's computation is independent (pure functions over their
// own event slice), so the fan-out runs them concurrently.
func (s *ReportServiceImpl) monthForCompany(ctx context.Context, companyID string, req report.MonthlyRequest) ([]staffMonth, error) {
	staffList, err := s.staffRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	from, to := s.monthRange(req.Year, req.Month)
	events, err := s.eventRepo.ListByCompany(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	byStaff := groupByStaff(events)

	months := make([]staffMonth, len(staffList))
	g, _ := errgroup.WithContext(ctx)
	for i, st := range staffList {
		i, st := i, st
		g.Go(func() error {
			staffEvents := byStaff[st.ID]

			totalMinutes := 0
			anomalyDays := 0
			for _, dayEvents := range timeclockcalc.GroupByDay(staffEvents, s.loc) {
				day := timeclockcalc.DailyAttendance(dayEvents)
				totalMinutes += day.NetMinutes
				if len(day.Anomalies) > 0 {
					anomalyDays++
				}
			}

			months[i] = staffMonth{
				st:          st,
				result:      payrollcalc.Compute(totalMinutes, st),
				anomalyDays: anomalyDays,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].st.Code < months[j].st.Code
	})

	return months, nil
}

// Analytics implements report.ReportService.
func (s *ReportServiceImpl) Analytics(ctx context.Context, req report.MonthlyRequest) (report.Analytics, error) {
	if err := req.Validate(); err != nil {
		return report.Analytics{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.Analytics{}, err
	}

	months, err := s.monthForCompany(ctx, companyID, req)
	if err != nil {
		return report.Analytics{}, err
	}

	analytics := report.Analytics{
		Year:         req.Year,
		Month:        req.Month,
		Headcount:    len(months),
		AverageHours: decimal.Zero,
		Rows:         make([]report.AnalyticsRow, 0, len(months)),
	}

	for _, m := range months {
		analytics.TotalMinutes += m.result.TotalMinutes
		analytics.TotalGross += m.result.GrossWage
		analytics.TotalTax += m.result.IncomeTax
		analytics.LaborCost += m.result.GrossWage + m.result.AllowanceTotal

		analytics.Rows = append(analytics.Rows, report.AnalyticsRow{
			StaffID:      m.st.ID,
			Name:         m.st.Name,
			TotalMinutes: m.result.TotalMinutes,
			TotalHours:   m.result.TotalHours,
			GrossWage:    m.result.GrossWage,
			IncomeTax:    m.result.IncomeTax,
			NetPay:       m.result.NetPay,
			AnomalyDays:  m.anomalyDays,
		})
	}

	analytics.TotalHours = payrollcalc.HoursFromMinutes(analytics.TotalMinutes)
	if len(months) > 0 {
		analytics.AverageHours = analytics.TotalHours.DivRound(decimal.NewFromInt(int64(len(months))), 2)
	}

	return analytics, nil
}

// ExportPayrollCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportPayrollCSV(ctx context.Context, req report.MonthlyRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	months, err := s.monthForCompany(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	if len(months) == 0 {
		return nil, report.ErrExportEmpty
	}

	return buildPayrollCSV(months)
}
