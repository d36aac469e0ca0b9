package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalognorm "growkit-storefront/internal/catalog"
	"growkit-storefront/internal/domain"
	enquirysvc "growkit-storefront/internal/service/enquiry"
)

type enquiryRequest struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// createEnquiry builds the WhatsApp link for a product enquiry. Used by the
// enquiry-only categories, but any product can be asked about.
func (h *handlers) createEnquiry(c *gin.Context) {
	var req enquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.deps.Catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	variant := catalognorm.ResolveVariant(*p, req.VariantID)
	link, err := h.deps.Enquiry.Link(*p, variant, req.Quantity)
	if err != nil {
		if errors.Is(err, enquirysvc.ErrNoNumber) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "enquiries not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}
