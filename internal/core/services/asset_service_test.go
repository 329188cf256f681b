package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
)

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAssetRepository
	service  portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.service = services.NewAssetService(suite.mockRepo)
}

func storedAsset() *domain.Asset {
	return &domain.Asset{
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

// --- CreateAsset ---

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:          "Laptop",
		Category:      domain.CategoryITEquipment,
		PurchaseDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PurchaseValue: decimal.NewFromInt(3000),
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Name == req.Name && a.IsActive && a.CreatedBy == "user-1"
	})).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.NotEmpty(asset.AssetID)
	// Residual defaults to 10% of the purchase value.
	suite.True(decimal.NewFromInt(300).Equal(asset.ResidualValue))
	// Business use defaults to full.
	suite.True(decimal.NewFromInt(100).Equal(asset.BusinessUsePercent))
	// The IT category default of 3 years is raised to the 5 year minimum.
	suite.Equal(5, asset.DepreciationYears)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_ExplicitValuesKept() {
	ctx := context.Background()
	residual := decimal.NewFromInt(500)
	businessUse := decimal.NewFromInt(60)
	years := 8
	req := dto.CreateAssetRequest{
		Name:               "Company car",
		Category:           domain.CategoryVehicle,
		PurchaseDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PurchaseValue:      decimal.NewFromInt(25000),
		ResidualValue:      &residual,
		BusinessUsePercent: &businessUse,
		DepreciationYears:  &years,
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.Anything).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(residual.Equal(asset.ResidualValue))
	suite.True(businessUse.Equal(asset.BusinessUsePercent))
	suite.Equal(8, asset.DepreciationYears)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_ExplicitShortTermRejected() {
	ctx := context.Background()
	years := 2
	req := dto.CreateAssetRequest{
		Name:              "Laptop",
		Category:          domain.CategoryITEquipment,
		PurchaseDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PurchaseValue:     decimal.NewFromInt(3000),
		DepreciationYears: &years,
	}

	asset, err := suite.service.CreateAsset(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset")
}

func (suite *AssetServiceTestSuite) TestCreateAsset_InvalidResidualRejected() {
	ctx := context.Background()
	residual := decimal.NewFromInt(5000)
	req := dto.CreateAssetRequest{
		Name:          "Laptop",
		Category:      domain.CategoryITEquipment,
		PurchaseDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PurchaseValue: decimal.NewFromInt(3000),
		ResidualValue: &residual,
	}

	asset, err := suite.service.CreateAsset(ctx, req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset")
}

// --- CapitalizeExpense ---

func (suite *AssetServiceTestSuite) TestCapitalizeExpense_QualifyingAmount() {
	ctx := context.Background()
	req := dto.CapitalizeExpenseRequest{
		ExpenseID:    "expense-7",
		Name:         "Office printer",
		Category:     domain.CategoryITEquipment,
		PurchaseDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(600),
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.ExpenseID != nil && *a.ExpenseID == "expense-7"
	})).Return(nil).Once()

	asset, err := suite.service.CapitalizeExpense(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.True(decimal.NewFromInt(600).Equal(asset.PurchaseValue))
	suite.True(decimal.NewFromInt(60).Equal(asset.ResidualValue))
	suite.Equal(5, asset.DepreciationYears)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCapitalizeExpense_BelowThresholdStaysExpense() {
	ctx := context.Background()
	req := dto.CapitalizeExpenseRequest{
		ExpenseID:    "expense-8",
		Name:         "Keyboard",
		Category:     domain.CategoryITEquipment,
		PurchaseDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(400),
	}

	asset, err := suite.service.CapitalizeExpense(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset")
}

func (suite *AssetServiceTestSuite) TestCapitalizeExpense_ThresholdExactlyMet() {
	ctx := context.Background()
	req := dto.CapitalizeExpenseRequest{
		ExpenseID:    "expense-9",
		Name:         "Monitor",
		Category:     domain.CategoryITEquipment,
		PurchaseDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(450),
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.Anything).Return(nil).Once()

	asset, err := suite.service.CapitalizeExpense(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetAssetByID / ListAssets / GetSchedule ---

func (suite *AssetServiceTestSuite) TestGetAssetByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	asset, err := suite.service.GetAssetByID(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(asset)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestListAssets_NilBecomesEmptySlice() {
	ctx := context.Background()
	filter := portsrepo.AssetFilter{}
	suite.mockRepo.On("ListAssets", ctx, filter).Return([]domain.Asset{}, nil).Once()

	assets, err := suite.service.ListAssets(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(assets)
	suite.Empty(assets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestGetSchedule() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()

	rows, err := suite.service.GetSchedule(ctx, "asset-1")

	suite.Require().NoError(err)
	suite.Require().Len(rows, 6)
	suite.Equal(2024, rows[0].Year)
	suite.Equal(2029, rows[5].Year)
	suite.True(decimal.NewFromInt(2700).Equal(rows[5].Accumulated))
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateAsset ---

func (suite *AssetServiceTestSuite) TestUpdateAsset_PartialUpdate() {
	ctx := context.Background()
	newName := "Laptop (refurbished)"
	req := dto.UpdateAssetRequest{Name: &newName}

	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Name == newName && a.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	asset, err := suite.service.UpdateAsset(ctx, "asset-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(newName, asset.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_NoFieldsIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()

	asset, err := suite.service.UpdateAsset(ctx, "asset-1", dto.UpdateAssetRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset")
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_RevalidatesInvariants() {
	ctx := context.Background()
	badResidual := decimal.NewFromInt(9999)
	req := dto.UpdateAssetRequest{ResidualValue: &badResidual}

	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()

	asset, err := suite.service.UpdateAsset(ctx, "asset-1", req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset")
}

// --- DisposeAsset ---

func (suite *AssetServiceTestSuite) TestDisposeAsset_Success() {
	ctx := context.Background()
	saleValue := decimal.NewFromInt(800)
	req := dto.DisposeAssetRequest{
		DisposalDate:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		DisposalValue: &saleValue,
	}

	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return !a.IsActive && a.DisposalDate != nil && a.DisposalDate.Equal(req.DisposalDate)
	})).Return(nil).Once()

	asset, err := suite.service.DisposeAsset(ctx, "asset-1", req, "user-1")

	suite.Require().NoError(err)
	suite.False(asset.IsActive)
	suite.True(asset.IsDisposed())
	suite.Require().NotNil(asset.DisposalValue)
	suite.True(saleValue.Equal(*asset.DisposalValue))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDisposeAsset_AlreadyDisposed() {
	ctx := context.Background()
	disposed := storedAsset()
	disposalDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	disposed.DisposalDate = &disposalDate
	disposed.IsActive = false

	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(disposed, nil).Once()

	req := dto.DisposeAssetRequest{DisposalDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	asset, err := suite.service.DisposeAsset(ctx, "asset-1", req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrAlreadyDisposed)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset")
}

func (suite *AssetServiceTestSuite) TestDisposeAsset_DateBeforeInService() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()

	req := dto.DisposeAssetRequest{DisposalDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	asset, err := suite.service.DisposeAsset(ctx, "asset-1", req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset")
}

// --- UnlinkExpense / DeleteAsset ---

func (suite *AssetServiceTestSuite) TestUnlinkExpense() {
	ctx := context.Background()
	linked := storedAsset()
	expenseID := "expense-7"
	linked.ExpenseID = &expenseID

	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(linked, nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.ExpenseID == nil
	})).Return(nil).Once()

	asset, err := suite.service.UnlinkExpense(ctx, "asset-1", "user-1")

	suite.Require().NoError(err)
	suite.Nil(asset.ExpenseID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUnlinkExpense_NoLinkIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()

	asset, err := suite.service.UnlinkExpense(ctx, "asset-1", "user-1")

	suite.Require().NoError(err)
	suite.NotNil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset")
}

func (suite *AssetServiceTestSuite) TestDeleteAsset() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "asset-1").Return(storedAsset(), nil).Once()
	suite.mockRepo.On("DeleteAsset", ctx, "asset-1").Return(nil).Once()

	err := suite.service.DeleteAsset(ctx, "asset-1", "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAssetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAsset(ctx, "missing", "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAsset")
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
