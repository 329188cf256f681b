package domain

import (
	"fmt"
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AssetCategory classifies a capitalized purchase. The set is closed;
// anything that does not fit goes under CategoryOther.
type AssetCategory string

const (
	CategoryITEquipment      AssetCategory = "IT_EQUIPMENT" // computers, phones
	CategoryOfficeFurniture  AssetCategory = "OFFICE_FURNITURE"
	CategoryMedicalEquipment AssetCategory = "MEDICAL_EQUIPMENT"
	CategoryVehicle          AssetCategory = "VEHICLE"
	CategorySoftwareLicense  AssetCategory = "SOFTWARE_LICENSE"
	CategoryTools            AssetCategory = "TOOLS"
	CategoryOther            AssetCategory = "OTHER"
)

// categoryDefaultTerm maps each category to its customary depreciation term
// in years. Values below the configured minimum term are raised to the
// minimum when an asset is seeded.
var categoryDefaultTerm = map[AssetCategory]int{
	CategoryITEquipment:      3,
	CategoryOfficeFurniture:  13,
	CategoryMedicalEquipment: 8,
	CategoryVehicle:          6,
	CategorySoftwareLicense:  3,
	CategoryTools:            5,
	CategoryOther:            5,
}

// IsValid reports whether c is one of the known categories.
func (c AssetCategory) IsValid() bool {
	_, ok := categoryDefaultTerm[c]
	return ok
}

// DefaultTermYears returns the customary depreciation term for the category.
// Unknown categories fall back to the CategoryOther term.
func (c AssetCategory) DefaultTermYears() int {
	if years, ok := categoryDefaultTerm[c]; ok {
		return years
	}
	return categoryDefaultTerm[CategoryOther]
}

// AllCategories returns the closed set of asset categories.
func AllCategories() []AssetCategory {
	return []AssetCategory{
		CategoryITEquipment,
		CategoryOfficeFurniture,
		CategoryMedicalEquipment,
		CategoryVehicle,
		CategorySoftwareLicense,
		CategoryTools,
		CategoryOther,
	}
}

// Asset represents one capitalized business purchase and its depreciation
// schedule parameters. All monetary fields are VAT-exclusive exact decimals;
// VATAmount is informational and never part of the depreciable base.
type Asset struct {
	AssetID            string           `json:"assetID"` // Primary Key (e.g., UUID)
	Name               string           `json:"name"`
	Description        string           `json:"description"` // Nullable
	Category           AssetCategory    `json:"category"`
	Supplier           string           `json:"supplier"`           // Nullable
	SupplierInvoiceRef string           `json:"supplierInvoiceRef"` // Nullable
	Notes              string           `json:"notes"`              // Nullable
	ReceiptPath        string           `json:"receiptPath"`        // Document reference, opaque to the engine
	PurchaseDate       time.Time        `json:"purchaseDate"`
	InServiceDate      *time.Time       `json:"inServiceDate"` // Depreciation clock; defaults to PurchaseDate
	PurchaseValue      decimal.Decimal  `json:"purchaseValue"`
	VATAmount          decimal.Decimal  `json:"vatAmount"`
	ResidualValue      decimal.Decimal  `json:"residualValue"`
	BusinessUsePercent decimal.Decimal  `json:"businessUsePercent"` // 0..100; only this fraction is deductible
	DepreciationYears  int              `json:"depreciationYears"`
	IsActive           bool             `json:"isActive"`
	DisposalDate       *time.Time       `json:"disposalDate"`  // Terminal once set
	DisposalValue      *decimal.Decimal `json:"disposalValue"` // Only meaningful with DisposalDate
	ExpenseID          *string          `json:"expenseID"`     // Back-reference to the originating expense; non-owning
	AuditFields
}

// InService returns the date the depreciation clock starts: the explicit
// in-service date when set, the purchase date otherwise.
func (a Asset) InService() time.Time {
	if a.InServiceDate != nil {
		return *a.InServiceDate
	}
	return a.PurchaseDate
}

// IsDisposed reports whether the asset has reached its terminal state.
func (a Asset) IsDisposed() bool {
	return a.DisposalDate != nil
}

// Validate checks the asset invariants. minTermYears is the configured
// minimum depreciation term; a floor of 1 is always applied.
func (a Asset) Validate(minTermYears int) error {
	if a.Name == "" {
		return fmt.Errorf("%w: asset name must not be empty", apperrors.ErrValidation)
	}
	if !a.Category.IsValid() {
		return fmt.Errorf("%w: unknown asset category %q", apperrors.ErrValidation, a.Category)
	}
	if a.PurchaseValue.IsNegative() {
		return fmt.Errorf("%w: purchase value must not be negative", apperrors.ErrValidation)
	}
	if a.VATAmount.IsNegative() {
		return fmt.Errorf("%w: VAT amount must not be negative", apperrors.ErrValidation)
	}
	if a.ResidualValue.IsNegative() || a.ResidualValue.GreaterThan(a.PurchaseValue) {
		return fmt.Errorf("%w: residual value must be between 0 and the purchase value", apperrors.ErrValidation)
	}
	if a.BusinessUsePercent.IsNegative() || a.BusinessUsePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: business use percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if minTermYears < 1 {
		minTermYears = 1
	}
	if a.DepreciationYears < minTermYears {
		return fmt.Errorf("%w: depreciation term of %d years is below the minimum of %d", apperrors.ErrValidation, a.DepreciationYears, minTermYears)
	}
	if a.DisposalDate != nil && a.DisposalDate.Before(a.InService()) {
		return fmt.Errorf("%w: disposal date must not be before the in-service date", apperrors.ErrValidation)
	}
	if a.DisposalDate != nil && a.IsActive {
		return fmt.Errorf("%w: a disposed asset cannot be active", apperrors.ErrValidation)
	}
	return nil
}
