package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growkit-storefront/internal/domain"
	"growkit-storefront/internal/shipping"
	catalogsvc "growkit-storefront/internal/service/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Catalog.Storefront(c.Request.Context(), catalogsvc.ListInput{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// shippingQuote exposes the courier calculator directly so the frontend can
// preview a fee. Out-of-range values are the calculator's business; only
// unparsable text is a client error.
func (h *handlers) shippingQuote(c *gin.Context) {
	raw := c.DefaultQuery("kg", "0")
	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kg must be a number"})
		return
	}
	c.JSON(http.StatusOK, shipping.Compute(kg))
}

func (h *handlers) listFAQ(c *gin.Context) {
	faqs, err := h.deps.FAQ.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if faqs == nil {
		faqs = []domain.FAQ{}
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}
