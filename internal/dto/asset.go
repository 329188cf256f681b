package dto

import (
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/praxisbooks/asset_depreciation_app/internal/utils/depreciation"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register a manually entered asset.
type CreateAssetRequest struct {
	Name               string               `json:"name" binding:"required"`
	Description        string               `json:"description"`
	Category           domain.AssetCategory `json:"category" binding:"required,oneof=IT_EQUIPMENT OFFICE_FURNITURE MEDICAL_EQUIPMENT VEHICLE SOFTWARE_LICENSE TOOLS OTHER"`
	Supplier           string               `json:"supplier"`
	SupplierInvoiceRef string               `json:"supplierInvoiceRef"`
	Notes              string               `json:"notes"`
	ReceiptPath        string               `json:"receiptPath"`
	PurchaseDate       time.Time            `json:"purchaseDate" binding:"required"`
	InServiceDate      *time.Time           `json:"inServiceDate"` // Optional, defaults to purchase date
	PurchaseValue      decimal.Decimal      `json:"purchaseValue" binding:"required"`
	VATAmount          decimal.Decimal      `json:"vatAmount"`
	ResidualValue      *decimal.Decimal     `json:"residualValue"`      // Optional, defaults per policy
	BusinessUsePercent *decimal.Decimal     `json:"businessUsePercent"` // Optional, defaults to 100
	DepreciationYears  *int                 `json:"depreciationYears"`  // Optional, defaults per category
}

// CapitalizeExpenseRequest carries purchase data from the expense-entry
// collaborator. Amount is VAT-exclusive; VAT never enters the depreciable base.
type CapitalizeExpenseRequest struct {
	ExpenseID          string               `json:"expenseID" binding:"required"`
	Name               string               `json:"name" binding:"required"`
	Category           domain.AssetCategory `json:"category" binding:"required,oneof=IT_EQUIPMENT OFFICE_FURNITURE MEDICAL_EQUIPMENT VEHICLE SOFTWARE_LICENSE TOOLS OTHER"`
	Supplier           string               `json:"supplier"`
	SupplierInvoiceRef string               `json:"supplierInvoiceRef"`
	ReceiptPath        string               `json:"receiptPath"`
	PurchaseDate       time.Time            `json:"purchaseDate" binding:"required"`
	Amount             decimal.Decimal      `json:"amount" binding:"required"` // Net purchase amount
	VATAmount          decimal.Decimal      `json:"vatAmount"`
	BusinessUsePercent *decimal.Decimal     `json:"businessUsePercent"` // Optional, defaults to 100
}

// UpdateAssetRequest defines the data allowed for updating an asset.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAssetRequest struct {
	Name               *string               `json:"name"`
	Description        *string               `json:"description"`
	Category           *domain.AssetCategory `json:"category"`
	Supplier           *string               `json:"supplier"`
	SupplierInvoiceRef *string               `json:"supplierInvoiceRef"`
	Notes              *string               `json:"notes"`
	ReceiptPath        *string               `json:"receiptPath"`
	PurchaseDate       *time.Time            `json:"purchaseDate"`
	InServiceDate      *time.Time            `json:"inServiceDate"`
	PurchaseValue      *decimal.Decimal      `json:"purchaseValue"`
	VATAmount          *decimal.Decimal      `json:"vatAmount"`
	ResidualValue      *decimal.Decimal      `json:"residualValue"`
	BusinessUsePercent *decimal.Decimal      `json:"businessUsePercent"`
	DepreciationYears  *int                  `json:"depreciationYears"`
}

// DisposeAssetRequest defines the terminal disposal transition input.
type DisposeAssetRequest struct {
	DisposalDate  time.Time        `json:"disposalDate" binding:"required"`
	DisposalValue *decimal.Decimal `json:"disposalValue"` // Optional sale value
}

// AssetResponse defines the data returned for an asset, including the
// derived depreciation figures as of the request time. Derived amounts are
// rounded to the currency's minor unit at this boundary.
type AssetResponse struct {
	AssetID            string               `json:"assetID"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Category           domain.AssetCategory `json:"category"`
	Supplier           string               `json:"supplier"`
	SupplierInvoiceRef string               `json:"supplierInvoiceRef"`
	Notes              string               `json:"notes"`
	ReceiptPath        string               `json:"receiptPath"`
	PurchaseDate       time.Time            `json:"purchaseDate"`
	InServiceDate      time.Time            `json:"inServiceDate"`
	PurchaseValue      decimal.Decimal      `json:"purchaseValue"`
	VATAmount          decimal.Decimal      `json:"vatAmount"`
	ResidualValue      decimal.Decimal      `json:"residualValue"`
	BusinessUsePercent decimal.Decimal      `json:"businessUsePercent"`
	DepreciationYears  int                  `json:"depreciationYears"`
	IsActive           bool                 `json:"isActive"`
	DisposalDate       *time.Time           `json:"disposalDate,omitempty"`
	DisposalValue      *decimal.Decimal     `json:"disposalValue,omitempty"`
	ExpenseID          *string              `json:"expenseID,omitempty"`
	AnnualDepreciation decimal.Decimal      `json:"annualDepreciation"`
	DepreciationToDate decimal.Decimal      `json:"depreciationToDate"`
	BookValue          decimal.Decimal      `json:"bookValue"`
	FullyDepreciated   bool                 `json:"fullyDepreciated"`
	CreatedAt          time.Time            `json:"createdAt"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
}

// ToAssetResponse converts a domain.Asset to an AssetResponse with derived
// figures computed as of asOf.
func ToAssetResponse(a *domain.Asset, asOf time.Time) AssetResponse {
	return AssetResponse{
		AssetID:            a.AssetID,
		Name:               a.Name,
		Description:        a.Description,
		Category:           a.Category,
		Supplier:           a.Supplier,
		SupplierInvoiceRef: a.SupplierInvoiceRef,
		Notes:              a.Notes,
		ReceiptPath:        a.ReceiptPath,
		PurchaseDate:       a.PurchaseDate,
		InServiceDate:      a.InService(),
		PurchaseValue:      a.PurchaseValue,
		VATAmount:          a.VATAmount,
		ResidualValue:      a.ResidualValue,
		BusinessUsePercent: a.BusinessUsePercent,
		DepreciationYears:  a.DepreciationYears,
		IsActive:           a.IsActive,
		DisposalDate:       a.DisposalDate,
		DisposalValue:      a.DisposalValue,
		ExpenseID:          a.ExpenseID,
		AnnualDepreciation: depreciation.AnnualDepreciation(*a).Round(2),
		DepreciationToDate: depreciation.ToDate(*a, asOf).Round(2),
		BookValue:          depreciation.BookValue(*a, asOf).Round(2),
		FullyDepreciated:   depreciation.IsFullyDepreciated(*a, asOf),
		CreatedAt:          a.CreatedAt,
		LastUpdatedAt:      a.LastUpdatedAt,
	}
}

// ToListAssetResponse converts a slice of assets to response DTOs.
func ToListAssetResponse(assets []domain.Asset, asOf time.Time) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i], asOf)
	}
	return res
}

// CapitalizeExpenseResponse reports the eligibility outcome. Asset is nil
// when the purchase stays a direct expense.
type CapitalizeExpenseResponse struct {
	Capitalized bool           `json:"capitalized"`
	Asset       *AssetResponse `json:"asset,omitempty"`
}

// ScheduleRowResponse is one year of the depreciation schedule, rounded for display.
type ScheduleRowResponse struct {
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Accumulated decimal.Decimal `json:"accumulated"`
	BookValue   decimal.Decimal `json:"bookValue"`
}

// ScheduleResponse wraps an asset's full depreciation schedule.
type ScheduleResponse struct {
	AssetID string                `json:"assetID"`
	Rows    []ScheduleRowResponse `json:"rows"`
}

// ToScheduleResponse converts schedule rows to the display representation.
func ToScheduleResponse(assetID string, rows []domain.ScheduleRow) ScheduleResponse {
	res := ScheduleResponse{AssetID: assetID, Rows: make([]ScheduleRowResponse, len(rows))}
	for i, row := range rows {
		res.Rows[i] = ScheduleRowResponse{
			Year:        row.Year,
			Amount:      row.Amount.Round(2),
			Accumulated: row.Accumulated.Round(2),
			BookValue:   row.BookValue.Round(2),
		}
	}
	return res
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Category     string `form:"category"`
	IsActive     *bool  `form:"isActive"`
	PurchaseYear *int   `form:"purchaseYear"`
	Limit        int    `form:"limit,default=50"`
	Offset       int    `form:"offset,default=0"`
}

// ListAssetsResponse wraps the list of assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}
