package handler

import (
	"github.com/gin-gonic/gin"
	pricingapp "github.com/precify/backend/internal/application/pricing"
)

// QuoteHandler handles price quote computation endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *pricingapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *pricingapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// RegisterRoutes registers quote routes on the given group
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pricing/quotes", h.Compute)
}

// Compute runs the full pricing pipeline for a product on a marketplace:
// cost resolution, fees, margin, and the minimum viable price
func (h *QuoteHandler) Compute(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req pricingapp.ComputeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	resp, err := h.quoteService.ComputeQuote(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
