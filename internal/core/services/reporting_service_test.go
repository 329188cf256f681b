package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAssetRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// portfolio returns two assets: the laptop from storedAsset and a desk
// bought January 2023 with a 216/year schedule.
func portfolio() []domain.Asset {
	desk := domain.Asset{
		AssetID:            "asset-2",
		Name:               "Desk",
		Category:           domain.CategoryOfficeFurniture,
		PurchaseDate:       time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
		PurchaseValue:      decimal.NewFromInt(1200),
		ResidualValue:      decimal.NewFromInt(120),
		BusinessUsePercent: decimal.NewFromInt(100),
		DepreciationYears:  5,
		IsActive:           true,
	}
	return []domain.Asset{*storedAsset(), desk}
}

func (suite *ReportingServiceTestSuite) TestDepreciationReport() {
	ctx := context.Background()
	suite.mockRepo.On("ListAssets", ctx, mock.Anything).Return(portfolio(), nil).Once()

	report, err := suite.service.DepreciationReport(ctx, 2024)

	suite.Require().NoError(err)
	suite.Equal(2024, report.Year)
	suite.Require().Len(report.Rows, 2)

	// Laptop: 7 of 12 months of 540. Desk: a full 216 year.
	suite.Equal("asset-1", report.Rows[0].AssetID)
	suite.True(decimal.NewFromInt(315).Equal(report.Rows[0].Depreciation))
	suite.Equal("asset-2", report.Rows[1].AssetID)
	suite.True(decimal.NewFromInt(216).Equal(report.Rows[1].Depreciation))
	suite.True(decimal.NewFromInt(531).Equal(report.TotalDepreciation))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDepreciationReport_OmitsZeroRows() {
	ctx := context.Background()
	suite.mockRepo.On("ListAssets", ctx, mock.Anything).Return(portfolio(), nil).Once()

	// Only the desk depreciates in 2023; the laptop enters service in 2024.
	report, err := suite.service.DepreciationReport(ctx, 2023)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("asset-2", report.Rows[0].AssetID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDepreciationReport_EmptyYear() {
	ctx := context.Background()
	suite.mockRepo.On("ListAssets", ctx, mock.Anything).Return(portfolio(), nil).Once()

	report, err := suite.service.DepreciationReport(ctx, 2040)

	suite.Require().NoError(err)
	suite.Empty(report.Rows)
	suite.True(report.TotalDepreciation.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPortfolioSummary() {
	ctx := context.Background()
	suite.mockRepo.On("ListAssets", ctx, mock.Anything).Return(portfolio(), nil).Once()

	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	summary, err := suite.service.PortfolioSummary(ctx, asOf)

	suite.Require().NoError(err)
	// Laptop 3000 - 315 plus desk 1200 - 432.
	suite.True(decimal.NewFromInt(3453).Equal(summary.TotalBookValue))
	suite.True(decimal.NewFromInt(756).Equal(summary.TotalAnnualDepreciation))
	suite.Empty(summary.FullyDepreciated)

	suite.Require().Len(summary.ByCategory, 2)
	// Categories come back in declaration order: IT before furniture.
	suite.Equal(domain.CategoryITEquipment, summary.ByCategory[0].Category)
	suite.Equal(1, summary.ByCategory[0].AssetCount)
	suite.Equal(domain.CategoryOfficeFurniture, summary.ByCategory[1].Category)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPortfolioSummary_FlagsFullyDepreciated() {
	ctx := context.Background()
	suite.mockRepo.On("ListAssets", ctx, mock.Anything).Return(portfolio(), nil).Once()

	summary, err := suite.service.PortfolioSummary(ctx, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Len(summary.FullyDepreciated, 2)
	// Floored at the residual values: 300 + 120.
	suite.True(decimal.NewFromInt(420).Equal(summary.TotalBookValue))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPortfolioSummary_PagesThroughRepository() {
	ctx := context.Background()

	// First page comes back full; the second page ends the listing.
	fullPage := make([]domain.Asset, 500)
	for i := range fullPage {
		fullPage[i] = *storedAsset()
	}
	suite.mockRepo.On("ListAssets", ctx, portsrepo.AssetFilter{Limit: 500, Offset: 0}).Return(fullPage, nil).Once()
	suite.mockRepo.On("ListAssets", ctx, portsrepo.AssetFilter{Limit: 500, Offset: 500}).Return([]domain.Asset{}, nil).Once()

	summary, err := suite.service.PortfolioSummary(ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(500, summary.ByCategory[0].AssetCount)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
