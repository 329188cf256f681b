package depreciation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/praxisbooks/asset_depreciation_app/internal/utils/depreciation"
)

// deskAsset: 1200.00 desk bought January 2023, 5 year term, 120.00 residual.
func deskAsset() domain.Asset {
	return domain.Asset{
		AssetID:            "asset-desk",
		Name:               "Desk",
		Category:           domain.CategoryOfficeFurniture,
		PurchaseDate:       time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
		PurchaseValue:      decimal.NewFromInt(1200),
		ResidualValue:      decimal.NewFromInt(120),
		BusinessUsePercent: decimal.NewFromInt(100),
		DepreciationYears:  5,
		IsActive:           true,
	}
}

func TestTotalAnnualDepreciation(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset()}

	// 540 for the laptop plus 216 for the desk.
	assertDecimal(t, "756", depreciation.TotalAnnualDepreciation(assets))
}

func TestTotalForYear(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset()}

	assertDecimal(t, "216", depreciation.TotalForYear(assets, 2023))
	assertDecimal(t, "531", depreciation.TotalForYear(assets, 2024)) // 315 + 216
	assertDecimal(t, "756", depreciation.TotalForYear(assets, 2025))
	assertDecimal(t, "0", depreciation.TotalForYear(assets, 2031))
}

func TestTotalBookValue(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset()}
	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Laptop 3000 - 315, desk 1200 - 432 (24 months).
	assertDecimal(t, "3453", depreciation.TotalBookValue(assets, asOf))
}

func TestTotalBookValue_Empty(t *testing.T) {
	assertDecimal(t, "0", depreciation.TotalBookValue(nil, time.Now()))
}

func TestGroupByCategory(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset(), laptopAsset()}

	groups := depreciation.GroupByCategory(assets)
	require.Len(t, groups, 2)
	assert.Len(t, groups[domain.CategoryITEquipment], 2)
	assert.Len(t, groups[domain.CategoryOfficeFurniture], 1)
}

func TestFullyDepreciated(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset()}

	// Desk's term ends January 2028, laptop's June 2029.
	asOf := time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)
	done := depreciation.FullyDepreciated(assets, asOf)
	require.Len(t, done, 1)
	assert.Equal(t, "asset-desk", done[0].AssetID)

	done = depreciation.FullyDepreciated(assets, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Len(t, done, 2)
}

func TestPurchasedInYear(t *testing.T) {
	assets := []domain.Asset{laptopAsset(), deskAsset()}

	in2024 := depreciation.PurchasedInYear(assets, 2024)
	require.Len(t, in2024, 1)
	assert.Equal(t, "asset-laptop", in2024[0].AssetID)

	assert.Empty(t, depreciation.PurchasedInYear(assets, 2020))
}
