package repositories

import (
	"context"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
)

// AssetFilter narrows asset listings. Nil fields are not applied.
type AssetFilter struct {
	Category     *domain.AssetCategory
	IsActive     *bool
	PurchaseYear *int
	Limit        int
	Offset       int
}

// AssetReader defines read operations for asset data.
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves assets matching the filter, paginated.
	ListAssets(ctx context.Context, filter AssetFilter) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's details, including the
	// disposal transition.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset. The originating expense record is not
	// touched; the association is non-owning.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
