package services

import (
	"context"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
)

// AssetReaderSvc defines read-only asset operations.
type AssetReaderSvc interface {
	// GetAssetByID retrieves a single asset.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves assets matching the filter.
	ListAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error)

	// GetSchedule computes the full per-year depreciation schedule.
	GetSchedule(ctx context.Context, assetID string) ([]domain.ScheduleRow, error)
}

// AssetWriterSvc defines mutating asset operations.
type AssetWriterSvc interface {
	// CreateAsset validates and persists a manually entered asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error)

	// CapitalizeExpense evaluates a purchase against the eligibility policy.
	// When the purchase qualifies, an asset seeded with policy defaults and a
	// back-reference to the originating expense is created and returned;
	// otherwise (nil, nil) is returned and the purchase stays a direct expense.
	CapitalizeExpense(ctx context.Context, req dto.CapitalizeExpenseRequest, userID string) (*domain.Asset, error)

	// UpdateAsset applies a partial update, revalidating all invariants.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error)

	// DisposeAsset performs the one-way Active -> Disposed transition,
	// freezing further depreciation accrual.
	DisposeAsset(ctx context.Context, assetID string, req dto.DisposeAssetRequest, userID string) (*domain.Asset, error)

	// UnlinkExpense severs the back-reference to the originating expense
	// without touching either record.
	UnlinkExpense(ctx context.Context, assetID string, userID string) (*domain.Asset, error)

	// DeleteAsset removes an asset as an explicit user action.
	DeleteAsset(ctx context.Context, assetID string, userID string) error
}

// AssetSvcFacade combines all asset service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
