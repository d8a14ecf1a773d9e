package http

import (
	"net/http"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/report"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := report.AttendanceReportRequest{
		Month: queryInt(r, "month", int(now.Month())),
		Year:  queryInt(r, "year", now.Year()),
	}

	result, err := h.reportService.Attendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leave implements ReportHandler.
func (h *reportHandlerImpl) Leave(w http.ResponseWriter, r *http.Request) {
	req := report.LeaveReportRequest{
		Year: queryInt(r, "year", time.Now().Year()),
	}

	result, err := h.reportService.Leave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payroll implements ReportHandler.
func (h *reportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := report.PayrollReportRequest{
		Month: queryInt(r, "month", int(now.Month())),
		Year:  queryInt(r, "year", now.Year()),
	}

	result, err := h.reportService.Payroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
