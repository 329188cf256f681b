package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
	"github.com/praxisbooks/asset_depreciation_app/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate depreciation figures.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/depreciation", h.depreciationReport)
		reports.GET("/portfolio", h.portfolioSummary)
	}
}

// depreciationReport godoc
// @Summary Annual depreciation report
// @Description Per-asset depreciation for one tax year plus the aggregate total
// @Tags reports
// @Produce  json
// @Param   year query int true "Tax year"
// @Success 200 {object} dto.DepreciationReportResponse
// @Failure 400 {object} map[string]string "Missing or invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/depreciation [get]
func (h *reportingHandler) depreciationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'year' must be an integer"})
		return
	}

	report, err := h.reportingService.DepreciationReport(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to generate depreciation report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate depreciation report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationReportResponse(report))
}

// portfolioSummary godoc
// @Summary Portfolio summary
// @Description Portfolio-wide book value, annual depreciation, per-category totals and fully depreciated assets
// @Tags reports
// @Produce  json
// @Param   asOf query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 400 {object} map[string]string "Invalid asOf date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/portfolio [get]
func (h *reportingHandler) portfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'asOf' must be a YYYY-MM-DD date"})
			return
		}
		asOf = parsed
	}

	summary, err := h.reportingService.PortfolioSummary(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate portfolio summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate portfolio summary"})
		return
	}

	response := dto.PortfolioSummaryResponse{
		TotalBookValue:          summary.TotalBookValue.Round(2),
		TotalAnnualDepreciation: summary.TotalAnnualDepreciation.Round(2),
		FullyDepreciated:        dto.ToListAssetResponse(summary.FullyDepreciated, asOf),
	}
	for _, total := range summary.ByCategory {
		response.ByCategory = append(response.ByCategory, dto.CategoryTotalResponse{
			Category:   total.Category,
			AssetCount: total.AssetCount,
			BookValue:  total.BookValue.Round(2),
		})
	}

	c.JSON(http.StatusOK, response)
}
