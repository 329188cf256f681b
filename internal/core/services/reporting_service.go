package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/utils/depreciation"
)

// reportingService implements the ReportingSvcFacade interface. All figures
// are recomputed from the asset records on every call; nothing is cached.
type reportingService struct {
	BaseService
	assetRepo portsrepo.AssetReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.AssetReader) portssvc.ReportingSvcFacade {
	return &reportingService{assetRepo: repo}
}

// Ensure reportingService implements the ReportingSvcFacade interface.
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// listAllAssets pages through the repository so aggregation always covers
// the full portfolio.
func (s *reportingService) listAllAssets(ctx context.Context) ([]domain.Asset, error) {
	const pageSize = 500

	var all []domain.Asset
	for offset := 0; ; offset += pageSize {
		page, err := s.assetRepo.ListAssets(ctx, portsrepo.AssetFilter{Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

// DepreciationReport generates the per-asset depreciation lines for one tax
// year. Assets with no depreciation in that year are omitted.
func (s *reportingService) DepreciationReport(ctx context.Context, year int) (*domain.DepreciationReport, error) {
	assets, err := s.listAllAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for depreciation report",
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to load assets for depreciation report: %w", err)
	}

	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.DepreciationReport{
		Year:              year,
		TotalDepreciation: depreciation.TotalForYear(assets, year),
	}
	for _, a := range assets {
		amount := depreciation.ForYear(a, year)
		if amount.IsZero() {
			continue
		}
		report.Rows = append(report.Rows, domain.DepreciationReportRow{
			AssetID:      a.AssetID,
			Name:         a.Name,
			Category:     a.Category,
			Depreciation: amount,
			BookValue:    depreciation.BookValue(a, yearEnd),
		})
	}

	s.LogInfo(ctx, "Depreciation report generated",
		slog.Int("year", year),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// PortfolioSummary generates the portfolio-wide aggregate figures as of a date.
func (s *reportingService) PortfolioSummary(ctx context.Context, asOf time.Time) (*domain.PortfolioSummary, error) {
	assets, err := s.listAllAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for portfolio summary")
		return nil, fmt.Errorf("failed to load assets for portfolio summary: %w", err)
	}

	summary := &domain.PortfolioSummary{
		TotalBookValue:          depreciation.TotalBookValue(assets, asOf),
		TotalAnnualDepreciation: depreciation.TotalAnnualDepreciation(assets),
		FullyDepreciated:        depreciation.FullyDepreciated(assets, asOf),
	}

	groups := depreciation.GroupByCategory(assets)
	for _, category := range domain.AllCategories() {
		bucket, ok := groups[category]
		if !ok {
			continue
		}
		summary.ByCategory = append(summary.ByCategory, domain.CategoryTotal{
			Category:   category,
			AssetCount: len(bucket),
			BookValue:  depreciation.TotalBookValue(bucket, asOf),
		})
	}

	s.LogInfo(ctx, "Portfolio summary generated",
		slog.String("as_of", asOf.Format(time.DateOnly)),
		slog.Int("asset_count", len(assets)))
	return summary, nil
}
