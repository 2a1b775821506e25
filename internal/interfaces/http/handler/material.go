package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/precify/backend/internal/application/catalog"
)

// MaterialHandler handles raw material API endpoints
type MaterialHandler struct {
	BaseHandler
	materialService *catalogapp.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(materialService *catalogapp.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// RegisterRoutes registers material routes on the given group
func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")
	{
		materials.POST("", h.Create)
		materials.GET("", h.List)
		materials.GET("/:id", h.GetByID)
		materials.PUT("/:id", h.Update)
		materials.POST("/:id/activate", h.Activate)
		materials.POST("/:id/deactivate", h.Deactivate)
		materials.DELETE("/:id", h.Delete)
	}
}

func (h *MaterialHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req catalogapp.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.materialService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *MaterialHandler) List(c *gin.Context) {
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

	items, total, err := h.materialService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

func (h *MaterialHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	materialID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material ID")
		return
	}

	resp, err := h.materialService.GetByID(c.Request.Context(), tenantID, materialID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	materialID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material ID")
		return
	}

	var req catalogapp.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.materialService.Update(c.Request.Context(), tenantID, materialID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MaterialHandler) Activate(c *gin.Context) {
	h.transition(c, h.materialService.Activate)
}

func (h *MaterialHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.materialService.Deactivate)
}

func (h *MaterialHandler) transition(c *gin.Context, op func(ctx context.Context, tenantID, materialID uuid.UUID) (*catalogapp.MaterialResponse, error)) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	materialID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material ID")
		return
	}

	resp, err := op(c.Request.Context(), tenantID, materialID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	materialID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material ID")
		return
	}

	if err := h.materialService.Delete(c.Request.Context(), tenantID, materialID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
