package depreciation

import (
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalBookValue sums the book value of all assets as of a date. No
// active/disposed filtering is applied; callers filter as needed.
func TotalBookValue(assets []domain.Asset, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(BookValue(a, asOf))
	}
	return total
}

// TotalAnnualDepreciation sums the steady-state annual figure over all assets.
func TotalAnnualDepreciation(assets []domain.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(AnnualDepreciation(a))
	}
	return total
}

// TotalForYear sums each asset's depreciation for one calendar year. This is
// the tax-year depreciation report line.
func TotalForYear(assets []domain.Asset, year int) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(ForYear(a, year))
	}
	return total
}

// GroupByCategory partitions assets into buckets keyed by category,
// preserving input order within each bucket.
func GroupByCategory(assets []domain.Asset) map[domain.AssetCategory][]domain.Asset {
	groups := make(map[domain.AssetCategory][]domain.Asset)
	for _, a := range assets {
		groups[a.Category] = append(groups[a.Category], a)
	}
	return groups
}

// FullyDepreciated filters the assets whose scheduled term has fully elapsed
// as of the given date. Surfaced to the UI as due for review or disposal.
func FullyDepreciated(assets []domain.Asset, asOf time.Time) []domain.Asset {
	var result []domain.Asset
	for _, a := range assets {
		if IsFullyDepreciated(a, asOf) {
			result = append(result, a)
		}
	}
	return result
}

// PurchasedInYear filters the assets purchased in the given calendar year.
func PurchasedInYear(assets []domain.Asset, year int) []domain.Asset {
	var result []domain.Asset
	for _, a := range assets {
		if a.PurchaseDate.Year() == year {
			result = append(result, a)
		}
	}
	return result
}
