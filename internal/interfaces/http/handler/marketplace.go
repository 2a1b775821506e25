package handler

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	marketplaceapp "github.com/precify/backend/internal/application/marketplace"
)

// MarketplaceHandler handles sales channel API endpoints
type MarketplaceHandler struct {
	BaseHandler
	marketplaceService *marketplaceapp.MarketplaceService
}

// NewMarketplaceHandler creates a new MarketplaceHandler
func NewMarketplaceHandler(marketplaceService *marketplaceapp.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// RegisterRoutes registers marketplace routes on the given group
func (h *MarketplaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	marketplaces := rg.Group("/marketplaces")
	{
		marketplaces.POST("", h.Create)
		marketplaces.GET("", h.List)
		marketplaces.GET("/:id", h.GetByID)
		marketplaces.PUT("/:id", h.Update)
		marketplaces.PUT("/:id/shipping-tiers", h.ReplaceTiers)
		marketplaces.POST("/:id/bind-platform", h.BindPlatform)
		marketplaces.POST("/:id/sync-fees", h.SyncFees)
		marketplaces.POST("/:id/activate", h.Activate)
		marketplaces.POST("/:id/deactivate", h.Deactivate)
		marketplaces.DELETE("/:id", h.Delete)
	}
}

func (h *MarketplaceHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req marketplaceapp.CreateMarketplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.marketplaceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *MarketplaceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	filter, err := listFilter(c)
	if err != nil {
		h.HandleBindError(c, err)
		return
	}

	items, total, err := h.marketplaceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

func (h *MarketplaceHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	resp, err := h.marketplaceService.GetByID(c.Request.Context(), tenantID, marketplaceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MarketplaceHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	var req marketplaceapp.UpdateMarketplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.marketplaceService.Update(c.Request.Context(), tenantID, marketplaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReplaceTiers swaps the marketplace's shipping cost table in one call
func (h *MarketplaceHandler) ReplaceTiers(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	var req marketplaceapp.ReplaceTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.marketplaceService.ReplaceTiers(c.Request.Context(), tenantID, marketplaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// BindPlatform links the marketplace to an external fee provider
func (h *MarketplaceHandler) BindPlatform(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	var req marketplaceapp.BindPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.marketplaceService.BindPlatform(c.Request.Context(), tenantID, marketplaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SyncFees pulls current fee rates from the bound platform
func (h *MarketplaceHandler) SyncFees(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	// Body is optional: an empty body syncs with the default reference price
	var req marketplaceapp.SyncFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.marketplaceService.SyncFees(c.Request.Context(), tenantID, marketplaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MarketplaceHandler) Activate(c *gin.Context) {
	h.transition(c, h.marketplaceService.Activate)
}

func (h *MarketplaceHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.marketplaceService.Deactivate)
}

func (h *MarketplaceHandler) transition(c *gin.Context, op func(ctx context.Context, tenantID, marketplaceID uuid.UUID) (*marketplaceapp.MarketplaceResponse, error)) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	resp, err := op(c.Request.Context(), tenantID, marketplaceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MarketplaceHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	marketplaceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID")
		return
	}

	if err := h.marketplaceService.Delete(c.Request.Context(), tenantID, marketplaceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
