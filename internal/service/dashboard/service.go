package dashboard

import (
	"context"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/dashboard"
)

type dashboardService struct {
	dashboardRepo dashboard.DashboardRepository
}

// Stats implements dashboard.DashboardService. Today's date and the
// current payroll period are fixed here so the repository query stays
// deterministic per call.
func (s *dashboardService) Stats(ctx context.Context) (dashboard.DashboardStats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.dashboardRepo.Stats(ctx, today, int(now.Month()), now.Year())
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}
