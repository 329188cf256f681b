package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
	"github.com/praxisbooks/asset_depreciation_app/internal/middleware"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.POST("/capitalize", h.capitalizeExpense)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAsset)
		assets.PUT("/:assetID", h.updateAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
		assets.POST("/:assetID/dispose", h.disposeAsset)
		assets.POST("/:assetID/unlink-expense", h.unlinkExpense)
		assets.GET("/:assetID/schedule", h.getSchedule)
	}
}

// respondServiceError maps service errors to HTTP responses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
	case errors.Is(err, apperrors.ErrAlreadyDisposed):
		logger.Warn("Asset already disposed", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createAsset godoc
// @Summary Register a new asset
// @Description Validates and persists a manually entered depreciable asset
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create asset")
		return
	}

	logger.Info("Asset created", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset, time.Now()))
}

// capitalizeExpense godoc
// @Summary Capitalize a purchase from the expense ledger
// @Description Evaluates a purchase against the capitalization threshold; creates an asset when it qualifies
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CapitalizeExpenseRequest true "Purchase details"
// @Success 200 {object} dto.CapitalizeExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /assets/capitalize [post]
func (h *assetHandler) capitalizeExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CapitalizeExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for capitalizeExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.CapitalizeExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "capitalize expense")
		return
	}

	if asset == nil {
		c.JSON(http.StatusOK, dto.CapitalizeExpenseResponse{Capitalized: false})
		return
	}

	response := dto.ToAssetResponse(asset, time.Now())
	c.JSON(http.StatusOK, dto.CapitalizeExpenseResponse{Capitalized: true, Asset: &response})
}

// getAsset godoc
// @Summary Get an asset by ID
// @Description Retrieves an asset with its derived depreciation figures
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, time.Now()))
}

// listAssets godoc
// @Summary List assets
// @Description Lists assets filtered by category, active state or purchase year
// @Tags assets
// @Produce  json
// @Param   category query string false "Asset category"
// @Param   isActive query bool false "Active filter"
// @Param   purchaseYear query int false "Purchase year filter"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.AssetFilter{
		IsActive:     params.IsActive,
		PurchaseYear: params.PurchaseYear,
		Limit:        params.Limit,
		Offset:       params.Offset,
	}
	if params.Category != "" {
		category := domain.AssetCategory(params.Category)
		if !category.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset category: " + params.Category})
			return
		}
		filter.Category = &category
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{Assets: dto.ToListAssetResponse(assets, time.Now())})
}

// updateAsset godoc
// @Summary Update an asset
// @Description Applies a partial update and revalidates all asset invariants
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, time.Now()))
}

// disposeAsset godoc
// @Summary Dispose an asset
// @Description Marks an asset as disposed, freezing further depreciation accrual. One-way transition.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Param   disposal body dto.DisposeAssetRequest true "Disposal details"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already disposed"
// @Security BearerAuth
// @Router /assets/{assetID}/dispose [post]
func (h *assetHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.DisposeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for disposeAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.DisposeAsset(c.Request.Context(), assetID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "dispose asset")
		return
	}

	logger.Info("Asset disposed", slog.String("asset_id", assetID))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, time.Now()))
}

// unlinkExpense godoc
// @Summary Unlink the originating expense
// @Description Severs the back-reference to the originating expense record without deleting either side
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID}/unlink-expense [post]
func (h *assetHandler) unlinkExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.UnlinkExpense(c.Request.Context(), assetID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "unlink expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, time.Now()))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Removes an asset as an explicit user action. The linked expense record is not touched.
// @Tags assets
// @Param   assetID path string true "Asset ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID, userID); err != nil {
		respondServiceError(c, logger, err, "delete asset")
		return
	}

	c.Status(http.StatusNoContent)
}

// getSchedule godoc
// @Summary Get an asset's depreciation schedule
// @Description Computes the full per-year depreciation table for an asset
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{assetID}/schedule [get]
func (h *assetHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	rows, err := h.assetService.GetSchedule(c.Request.Context(), assetID)
	if err != nil {
		respondServiceError(c, logger, err, "compute schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(assetID, rows))
}
