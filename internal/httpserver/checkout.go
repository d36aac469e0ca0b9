package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"growkit-storefront/internal/domain"
	checkoutsvc "growkit-storefront/internal/service/checkout"
)

func (h *handlers) checkout(c *gin.Context) {
	var in checkoutsvc.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store := h.sessionStore(c)
	order, err := h.deps.Checkout.PlaceOrder(c.Request.Context(), store, in)
	if err != nil {
		switch {
		case errors.Is(err, checkoutsvc.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "empty_cart"})
		case errors.Is(err, checkoutsvc.ErrOverMaxWeight):
			c.JSON(http.StatusConflict, gin.H{"error": "over_weight_limit"})
		case errors.Is(err, checkoutsvc.ErrInvalidAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_address", "detail": err.Error()})
		default:
			h.logger.Printf("checkout failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.deps.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, order)
}
