package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalognorm "growkit-storefront/internal/catalog"
	"growkit-storefront/internal/domain"
)

// adminProductRequest is the admin edit form. Price arrives as a currency
// string and variants/images in whatever shape the form produced; both are
// parsed once, here, into strict values.
type adminProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  string   `json:"description"`
	Price        string   `json:"price" binding:"required"`
	ChargeableKg float64  `json:"chargeableKg"`
	InStock      bool     `json:"inStock"`
	StockCount   int      `json:"stockCount"`
	Images       []string `json:"images"`
	Variants     any      `json:"variants"`
	Active       *bool    `json:"active"`
}

func (r adminProductRequest) toProduct(id string) (domain.Product, bool) {
	price, ok := catalognorm.ParsePrice(r.Price)
	if !ok {
		return domain.Product{}, false
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.Product{
		ID:           id,
		Name:         r.Name,
		Category:     r.Category,
		Description:  r.Description,
		BasePrice:    price,
		ChargeableKg: r.ChargeableKg,
		InStock:      r.InStock,
		StockCount:   r.StockCount,
		ImageURLs:    catalognorm.CoerceImages(r.Images),
		Variants:     catalognorm.NormalizeVariants(r.Variants),
		Active:       active,
	}, true
}

func (h *handlers) adminListProducts(c *gin.Context) {
	products, err := h.deps.Catalog.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) adminCreateProduct(c *gin.Context) {
	var req adminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, ok := req.toProduct("")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative amount"})
		return
	}
	created, err := h.deps.Catalog.Create(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) adminUpdateProduct(c *gin.Context) {
	var req adminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, ok := req.toProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative amount"})
		return
	}
	updated, err := h.deps.Catalog.Update(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) adminDeleteProduct(c *gin.Context) {
	if err := h.deps.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminListOrders(c *gin.Context) {
	orders, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Position int    `json:"position"`
}

func (h *handlers) adminCreateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.deps.FAQ.Create(c.Request.Context(), domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) adminUpdateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, err := h.deps.FAQ.Update(c.Request.Context(), domain.FAQ{
		ID:       c.Param("id"),
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) adminDeleteFAQ(c *gin.Context) {
	if err := h.deps.FAQ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.Status(http.StatusNoContent)
}
