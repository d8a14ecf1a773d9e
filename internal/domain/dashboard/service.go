package dashboard

import "context"

type DashboardService interface {
	Stats(ctx context.Context) (DashboardStats, error)
}
