package dto

import (
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepreciationReportRowResponse is one asset line in the annual report.
type DepreciationReportRowResponse struct {
	AssetID      string               `json:"assetID"`
	Name         string               `json:"name"`
	Category     domain.AssetCategory `json:"category"`
	Depreciation decimal.Decimal      `json:"depreciation"`
	BookValue    decimal.Decimal      `json:"bookValue"`
}

// DepreciationReportResponse is the tax-year depreciation report.
type DepreciationReportResponse struct {
	Year              int                             `json:"year"`
	Rows              []DepreciationReportRowResponse `json:"rows"`
	TotalDepreciation decimal.Decimal                 `json:"totalDepreciation"`
}

// ToDepreciationReportResponse rounds report amounts for display.
func ToDepreciationReportResponse(r *domain.DepreciationReport) DepreciationReportResponse {
	res := DepreciationReportResponse{
		Year:              r.Year,
		Rows:              make([]DepreciationReportRowResponse, len(r.Rows)),
		TotalDepreciation: r.TotalDepreciation.Round(2),
	}
	for i, row := range r.Rows {
		res.Rows[i] = DepreciationReportRowResponse{
			AssetID:      row.AssetID,
			Name:         row.Name,
			Category:     row.Category,
			Depreciation: row.Depreciation.Round(2),
			BookValue:    row.BookValue.Round(2),
		}
	}
	return res
}

// CategoryTotalResponse aggregates book value over one category.
type CategoryTotalResponse struct {
	Category   domain.AssetCategory `json:"category"`
	AssetCount int                  `json:"assetCount"`
	BookValue  decimal.Decimal      `json:"bookValue"`
}

// PortfolioSummaryResponse is the dashboard view over the asset portfolio.
type PortfolioSummaryResponse struct {
	TotalBookValue          decimal.Decimal         `json:"totalBookValue"`
	TotalAnnualDepreciation decimal.Decimal         `json:"totalAnnualDepreciation"`
	ByCategory              []CategoryTotalResponse `json:"byCategory"`
	FullyDepreciated        []AssetResponse         `json:"fullyDepreciated"`
}
