package domain

import "github.com/shopspring/decimal"

// DepreciationReportRow is one asset's line in the annual depreciation report.
type DepreciationReportRow struct {
	AssetID      string          `json:"assetID"`
	Name         string          `json:"name"`
	Category     AssetCategory   `json:"category"`
	Depreciation decimal.Decimal `json:"depreciation"`
	BookValue    decimal.Decimal `json:"bookValue"` // Closing book value at year end
}

// DepreciationReport covers one tax year's depreciation figures.
type DepreciationReport struct {
	Year              int                     `json:"year"`
	Rows              []DepreciationReportRow `json:"rows"`
	TotalDepreciation decimal.Decimal         `json:"totalDepreciation"`
}

// CategoryTotal aggregates book value over one asset category.
type CategoryTotal struct {
	Category   AssetCategory   `json:"category"`
	AssetCount int             `json:"assetCount"`
	BookValue  decimal.Decimal `json:"bookValue"`
}

// PortfolioSummary is the dashboard view over the full asset portfolio.
type PortfolioSummary struct {
	TotalBookValue          decimal.Decimal `json:"totalBookValue"`
	TotalAnnualDepreciation decimal.Decimal `json:"totalAnnualDepreciation"`
	ByCategory              []CategoryTotal `json:"byCategory"`
	FullyDepreciated        []Asset         `json:"fullyDepreciated"` // Due for review/disposal
}

// ScheduleRow is one calendar year of an asset's depreciation schedule.
type ScheduleRow struct {
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Accumulated decimal.Decimal `json:"accumulated"`
	BookValue   decimal.Decimal `json:"bookValue"` // Closing book value at year end
}
