package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-admin-backend/internal/domain/report"
)

type reportService struct {
	reportRepo report.ReportRepository
}

// Attendance implements report.ReportService.
func (s *reportService) Attendance(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	rows, err := s.reportRepo.AttendanceByMonth(ctx, req.Month, req.Year)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	return report.AttendanceReport{
		Month: req.Month,
		Year:  req.Year,
		Rows:  rows,
	}, nil
}

// Leave implements report.ReportService.
func (s *reportService) Leave(ctx context.Context, req report.LeaveReportRequest) (report.LeaveReport, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveReport{}, err
	}

	rows, err := s.reportRepo.LeaveByYear(ctx, req.Year)
	if err != nil {
		return report.LeaveReport{}, err
	}

	return report.LeaveReport{
		Year: req.Year,
		Rows: rows,
	}, nil
}

// Payroll implements report.ReportService. The period totals are summed
// here rather than in SQL so they always match the returned rows.
func (s *reportService) Payroll(ctx context.Context, req report.PayrollReportRequest) (report.PayrollReport, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollReport{}, err
	}

	rows, err := s.reportRepo.PayrollByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return report.PayrollReport{}, err
	}

	result := report.PayrollReport{
		Month:           req.Month,
		Year:            req.Year,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
		Rows:            rows,
	}
	for _, row := range rows {
		result.TotalGross = result.TotalGross.Add(row.GrossSalary)
		result.TotalDeductions = result.TotalDeductions.Add(row.TotalDeductions)
		result.TotalNet = result.TotalNet.Add(row.NetSalary)
	}

	return result, nil
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &reportService{reportRepo: reportRepo}
}
