package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// Stats gathers the landing-page counters for the given day and
	// payroll period in one pass.
	Stats(ctx context.Context, today time.Time, month, year int) (DashboardStats, error)
}
