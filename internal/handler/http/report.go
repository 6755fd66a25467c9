package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Dashboard returns today's live presence board
	Dashboard(w http.ResponseWriter, r *http.Request)
	// MonthlyLedger returns one staff member's month, day by day
	MonthlyLedger(w http.ResponseWriter, r *http.Request)
	// Payslip returns one staff member's payroll result for a month
	Payslip(w http.ResponseWriter, r *http.Request)
	// AttendanceDetail returns raw punches plus the derived daily result
	AttendanceDetail(w http.ResponseWriter, r *http.Request)
	// Analytics returns per-staff and company totals for a month
	Analytics(w http.ResponseWriter, r *http.Request)
	// ExportPayrollCSV streams the month as a CSV download
	ExportPayrollCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyRequest {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return report.MonthlyRequest{Year: year, Month: month}
}

// Dashboard handles GET /reports/dashboard
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyLedger handles GET /reports/staff/{staffID}/ledger
func (h *reportHandlerImpl) MonthlyLedger(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	result, err := h.reportService.MonthlyLedger(r.Context(), staffID, monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payslip handles GET /reports/staff/{staffID}/payslip
func (h *reportHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	result, err := h.reportService.Payslip(r.Context(), staffID, monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceDetail handles GET /reports/staff/{staffID}/attendance
func (h *reportHandlerImpl) AttendanceDetail(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	req := report.DailyRequest{Date: r.URL.Query().Get("date")}

	result, err := h.reportService.AttendanceDetail(r.Context(), staffID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Analytics handles GET /reports/analytics
func (h *reportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Analytics(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportPayrollCSV handles GET /reports/export/payroll
func (h *reportHandlerImpl) ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	req := monthlyRequestFromQuery(r)

	data, err := h.reportService.ExportPayrollCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll_%04d_%02d.csv"`, req.Year, req.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
