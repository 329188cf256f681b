package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
)

func validAsset() domain.Asset {
	return domain.Asset{
		AssetID:            "asset-1",
		Name:               "Laptop",
		Category:           domain.CategoryITEquipment,
		PurchaseDate:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PurchaseValue:      decimal.NewFromInt(3000),
		ResidualValue:      decimal.NewFromInt(300),
		BusinessUsePercent: decimal.NewFromInt(100),
		DepreciationYears:  5,
		IsActive:           true,
	}
}

func TestAssetValidate(t *testing.T) {
	disposalBeforePurchase := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	disposal := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(a *domain.Asset)
		wantErr bool
	}{
		{"valid asset", func(a *domain.Asset) {}, false},
		{"empty name", func(a *domain.Asset) { a.Name = "" }, true},
		{"unknown category", func(a *domain.Asset) { a.Category = "FURNITURE" }, true},
		{"negative purchase value", func(a *domain.Asset) { a.PurchaseValue = decimal.NewFromInt(-1) }, true},
		{"negative VAT", func(a *domain.Asset) { a.VATAmount = decimal.NewFromInt(-5) }, true},
		{"negative residual", func(a *domain.Asset) { a.ResidualValue = decimal.NewFromInt(-10) }, true},
		{"residual above purchase value", func(a *domain.Asset) { a.ResidualValue = decimal.NewFromInt(3500) }, true},
		{"residual equals purchase value", func(a *domain.Asset) { a.ResidualValue = decimal.NewFromInt(3000) }, false},
		{"business use over 100", func(a *domain.Asset) { a.BusinessUsePercent = decimal.NewFromInt(101) }, true},
		{"business use zero", func(a *domain.Asset) { a.BusinessUsePercent = decimal.Zero }, false},
		{"term below minimum", func(a *domain.Asset) { a.DepreciationYears = 3 }, true},
		{"disposal before in-service", func(a *domain.Asset) {
			a.DisposalDate = &disposalBeforePurchase
			a.IsActive = false
		}, true},
		{"disposed but still active", func(a *domain.Asset) { a.DisposalDate = &disposal }, true},
		{"properly disposed", func(a *domain.Asset) {
			a.DisposalDate = &disposal
			a.IsActive = false
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validAsset()
			tc.mutate(&a)
			err := a.Validate(5)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssetValidate_MinTermFloor(t *testing.T) {
	a := validAsset()
	a.DepreciationYears = 1

	// A configured minimum below 1 is raised to 1.
	assert.NoError(t, a.Validate(0))

	a.DepreciationYears = 0
	assert.ErrorIs(t, a.Validate(0), apperrors.ErrValidation)
}

func TestAssetInService(t *testing.T) {
	a := validAsset()
	assert.Equal(t, a.PurchaseDate, a.InService())

	inService := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	a.InServiceDate = &inService
	assert.Equal(t, inService, a.InService())
}

func TestCategoryDefaultTermYears(t *testing.T) {
	assert.Equal(t, 3, domain.CategoryITEquipment.DefaultTermYears())
	assert.Equal(t, 13, domain.CategoryOfficeFurniture.DefaultTermYears())
	assert.Equal(t, 8, domain.CategoryMedicalEquipment.DefaultTermYears())
	assert.Equal(t, 6, domain.CategoryVehicle.DefaultTermYears())
	assert.Equal(t, 5, domain.CategoryTools.DefaultTermYears())

	// Unknown categories fall back to the OTHER term.
	assert.Equal(t, 5, domain.AssetCategory("MYSTERY").DefaultTermYears())
}

func TestAllCategoriesAreValid(t *testing.T) {
	for _, c := range domain.AllCategories() {
		assert.True(t, c.IsValid(), "category %s", c)
	}
	assert.False(t, domain.AssetCategory("").IsValid())
}
