package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pricingapp "github.com/precify/backend/internal/application/pricing"
)

// ChargeHandler handles custom charge API endpoints
type ChargeHandler struct {
	BaseHandler
	chargeService *pricingapp.ChargeService
}

// NewChargeHandler creates a new ChargeHandler
func NewChargeHandler(chargeService *pricingapp.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService}
}

// RegisterRoutes registers custom charge routes on the given group
func (h *ChargeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	charges := rg.Group("/charges")
	{
		charges.POST("", h.Create)
		charges.GET("", h.List)
		charges.GET("/:id", h.GetByID)
		charges.PUT("/:id", h.Update)
		charges.POST("/:id/activate", h.Activate)
		charges.POST("/:id/deactivate", h.Deactivate)
		charges.DELETE("/:id", h.Delete)
	}
}

func (h *ChargeHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req pricingapp.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.chargeService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all charges for the tenant. The set is small enough
// that pagination would be noise.
func (h *ChargeHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	items, err := h.chargeService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *ChargeHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	chargeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid charge ID")
		return
	}

	resp, err := h.chargeService.GetByID(c.Request.Context(), tenantID, chargeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *ChargeHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	chargeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid charge ID")
		return
	}

	var req pricingapp.UpdateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.chargeService.Update(c.Request.Context(), tenantID, chargeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *ChargeHandler) Activate(c *gin.Context) {
	h.transition(c, h.chargeService.Activate)
}

func (h *ChargeHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.chargeService.Deactivate)
}

func (h *ChargeHandler) transition(c *gin.Context, op func(ctx context.Context, tenantID, chargeID uuid.UUID) (*pricingapp.ChargeResponse, error)) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	chargeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid charge ID")
		return
	}

	resp, err := op(c.Request.Context(), tenantID, chargeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *ChargeHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	chargeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid charge ID")
		return
	}

	if err := h.chargeService.Delete(c.Request.Context(), tenantID, chargeID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
