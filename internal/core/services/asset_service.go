package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
	"github.com/praxisbooks/asset_depreciation_app/internal/utils/depreciation"
	"github.com/shopspring/decimal"
)

// assetService implements the AssetSvcFacade interface.
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
	policy    depreciation.Policy
}

// AssetServiceOption is a functional option for configuring the asset service.
type AssetServiceOption func(*assetService)

// WithPolicy overrides the default eligibility policy.
func WithPolicy(policy depreciation.Policy) AssetServiceOption {
	return func(s *assetService) {
		s.policy = policy
	}
}

// NewAssetService creates a new asset service with the provided options.
func NewAssetService(repo portsrepo.AssetRepositoryFacade, options ...AssetServiceOption) portssvc.AssetSvcFacade {
	svc := &assetService{
		assetRepo: repo,
		policy:    depreciation.DefaultPolicy(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure assetService implements the AssetSvcFacade interface.
var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error) {
	now := time.Now()

	residual := s.policy.DefaultResidualValue(req.PurchaseValue)
	if req.ResidualValue != nil {
		residual = *req.ResidualValue
	}

	businessUse := decimal.NewFromInt(100)
	if req.BusinessUsePercent != nil {
		businessUse = *req.BusinessUsePercent
	}

	// An explicitly requested term is validated, never silently corrected;
	// only the seeded category default is clamped up to the minimum.
	years := s.policy.ValidateDepreciationYears(req.Category.DefaultTermYears())
	if req.DepreciationYears != nil {
		years = *req.DepreciationYears
	}

	asset := domain.Asset{
		AssetID:            uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Supplier:           req.Supplier,
		SupplierInvoiceRef: req.SupplierInvoiceRef,
		Notes:              req.Notes,
		ReceiptPath:        req.ReceiptPath,
		PurchaseDate:       req.PurchaseDate,
		InServiceDate:      req.InServiceDate,
		PurchaseValue:      req.PurchaseValue,
		VATAmount:          req.VATAmount,
		ResidualValue:      residual,
		BusinessUsePercent: businessUse,
		DepreciationYears:  years,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := asset.Validate(s.policy.MinimumTermYears); err != nil {
		s.LogError(ctx, err, "Asset validation failed on create",
			slog.String("asset_name", req.Name))
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset",
			slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset created successfully",
		slog.String("asset_id", asset.AssetID),
		slog.String("category", string(asset.Category)))
	return &asset, nil
}

func (s *assetService) CapitalizeExpense(ctx context.Context, req dto.CapitalizeExpenseRequest, userID string) (*domain.Asset, error) {
	if !s.policy.QualifiesForDepreciation(req.Amount) {
		s.LogInfo(ctx, "Purchase below capitalization threshold, staying a direct expense",
			slog.String("expense_id", req.ExpenseID),
			slog.String("amount", req.Amount.String()))
		return nil, nil
	}

	now := time.Now()

	businessUse := decimal.NewFromInt(100)
	if req.BusinessUsePercent != nil {
		businessUse = *req.BusinessUsePercent
	}

	expenseID := req.ExpenseID
	asset := domain.Asset{
		AssetID:            uuid.NewString(),
		Name:               req.Name,
		Category:           req.Category,
		Supplier:           req.Supplier,
		SupplierInvoiceRef: req.SupplierInvoiceRef,
		ReceiptPath:        req.ReceiptPath,
		PurchaseDate:       req.PurchaseDate,
		PurchaseValue:      req.Amount,
		VATAmount:          req.VATAmount,
		ResidualValue:      s.policy.DefaultResidualValue(req.Amount),
		BusinessUsePercent: businessUse,
		DepreciationYears:  s.policy.ValidateDepreciationYears(req.Category.DefaultTermYears()),
		IsActive:           true,
		ExpenseID:          &expenseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := asset.Validate(s.policy.MinimumTermYears); err != nil {
		s.LogError(ctx, err, "Seeded asset failed validation",
			slog.String("expense_id", req.ExpenseID))
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save capitalized asset",
			slog.String("asset_id", asset.AssetID),
			slog.String("expense_id", req.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense capitalized into asset",
		slog.String("asset_id", asset.AssetID),
		slog.String("expense_id", req.ExpenseID))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset by ID",
				slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}

func (s *assetService) GetSchedule(ctx context.Context, assetID string) ([]domain.ScheduleRow, error) {
	asset, err := s.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return depreciation.Schedule(*asset), nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error) {
	asset, err := s.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		asset.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		asset.Description = *req.Description
		updated = true
	}
	if req.Category != nil {
		asset.Category = *req.Category
		updated = true
	}
	if req.Supplier != nil {
		asset.Supplier = *req.Supplier
		updated = true
	}
	if req.SupplierInvoiceRef != nil {
		asset.SupplierInvoiceRef = *req.SupplierInvoiceRef
		updated = true
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
		updated = true
	}
	if req.ReceiptPath != nil {
		asset.ReceiptPath = *req.ReceiptPath
		updated = true
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = *req.PurchaseDate
		updated = true
	}
	if req.InServiceDate != nil {
		asset.InServiceDate = req.InServiceDate
		updated = true
	}
	if req.PurchaseValue != nil {
		asset.PurchaseValue = *req.PurchaseValue
		updated = true
	}
	if req.VATAmount != nil {
		asset.VATAmount = *req.VATAmount
		updated = true
	}
	if req.ResidualValue != nil {
		asset.ResidualValue = *req.ResidualValue
		updated = true
	}
	if req.BusinessUsePercent != nil {
		asset.BusinessUsePercent = *req.BusinessUsePercent
		updated = true
	}
	if req.DepreciationYears != nil {
		asset.DepreciationYears = *req.DepreciationYears
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for asset update",
			slog.String("asset_id", assetID))
		return asset, nil
	}

	asset.Touch(userID, time.Now())

	if err := asset.Validate(s.policy.MinimumTermYears); err != nil {
		s.LogError(ctx, err, "Asset validation failed on update",
			slog.String("asset_id", assetID))
		return nil, err
	}

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset",
			slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset updated successfully",
		slog.String("asset_id", assetID))
	return asset, nil
}

func (s *assetService) DisposeAsset(ctx context.Context, assetID string, req dto.DisposeAssetRequest, userID string) (*domain.Asset, error) {
	asset, err := s.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if asset.IsDisposed() || !asset.IsActive {
		err := fmt.Errorf("%w: asset %s", apperrors.ErrAlreadyDisposed, assetID)
		s.LogError(ctx, err, "Disposal rejected for terminal asset",
			slog.String("asset_id", assetID))
		return nil, err
	}

	if req.DisposalDate.Before(asset.InService()) {
		err := fmt.Errorf("%w: disposal date must not be before the in-service date", apperrors.ErrValidation)
		s.LogError(ctx, err, "Disposal rejected",
			slog.String("asset_id", assetID))
		return nil, err
	}

	disposalDate := req.DisposalDate
	asset.DisposalDate = &disposalDate
	asset.DisposalValue = req.DisposalValue
	asset.IsActive = false
	asset.Touch(userID, time.Now())

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to persist disposal",
			slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset disposed",
		slog.String("asset_id", assetID),
		slog.String("disposal_date", disposalDate.Format(time.DateOnly)))
	return asset, nil
}

func (s *assetService) UnlinkExpense(ctx context.Context, assetID string, userID string) (*domain.Asset, error) {
	asset, err := s.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if asset.ExpenseID == nil {
		s.LogDebug(ctx, "Asset has no linked expense",
			slog.String("asset_id", assetID))
		return asset, nil
	}

	// Only the reference is cleared; the expense record itself belongs to
	// the expense collaborator and is never touched from here.
	asset.ExpenseID = nil
	asset.Touch(userID, time.Now())

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to unlink expense",
			slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense unlinked from asset",
		slog.String("asset_id", assetID))
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string, userID string) error {
	if _, err := s.GetAssetByID(ctx, assetID); err != nil {
		return err
	}

	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		s.LogError(ctx, err, "Failed to delete asset",
			slog.String("asset_id", assetID))
		return err
	}

	s.LogInfo(ctx, "Asset deleted",
		slog.String("asset_id", assetID),
		slog.String("deleted_by", userID))
	return nil
}
