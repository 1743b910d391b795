// Package cache memoizes dashboard reports. Evaluations are pure functions
// of their inputs, so identical requests may be served the same report. This
// is a TTL cache, not a score history: nothing is ever listed or queried back.
package cache

import (
	"context"
	"fmt"

	"fraudlens/internal/models"
)

// Cache stores JSON-encoded values under string keys.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// ReportKey derives a deterministic cache key from an analysis request.
func ReportKey(req models.AnalysisRequest) string {
	return fmt.Sprintf("report:%s:%d:%g:%g:%g:%g:%g",
		req.Company,
		req.Year,
		req.RevenueGrowthPct,
		req.CashflowGrowthPct,
		req.AccrualsPctOfAssets,
		req.DebtToEquity,
		req.WorkingCapitalChangePct,
	)
}
