package services

import (
	"context"
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
)

// ReportingSvcFacade produces the aggregate figures consumed by the annual
// tax report's depreciation and investment sections.
type ReportingSvcFacade interface {
	// DepreciationReport returns per-asset depreciation for one tax year
	// plus the aggregate total.
	DepreciationReport(ctx context.Context, year int) (*domain.DepreciationReport, error)

	// PortfolioSummary returns portfolio-wide totals as of a date: book
	// value, annual depreciation, per-category totals and the assets whose
	// schedule has fully elapsed.
	PortfolioSummary(ctx context.Context, asOf time.Time) (*domain.PortfolioSummary, error)
}
