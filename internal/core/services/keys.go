// internal/core/services/keys.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

const (
	keyReportPattern     = "report:*"
	keyDashboard         = "report:dashboard"
	keyInventorySummary  = "report:inventory-summary"
	keyReferencePattern  = "ref:*"
	keyCategories        = "ref:categories"
	keyPhoneTypes        = "ref:phone-types"
	keySequenceResets    = "counter:phone-number-resets"
	keyReservationPrefix = "reserve"
)

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// invalidateReports drops cached report numbers after a stock change. A cache
// failure only costs freshness, so it is logged and swallowed.
func invalidateReports(ctx context.Context, cache ports.Cache, logger *slog.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, keyReportPattern); err != nil {
		logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}
