package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"growkit-storefront/internal/cart"
	catalognorm "growkit-storefront/internal/catalog"
	"growkit-storefront/internal/domain"
)

const sessionCookie = "cart_session"

// sessionStore resolves the caller's cart from the session cookie, starting
// a fresh session (and setting the cookie) when there is none.
func (h *handlers) sessionStore(c *gin.Context) *cart.Store {
	id, _ := c.Cookie(sessionCookie)
	store, resolvedID := h.deps.Carts.Get(id)
	if resolvedID != id {
		c.SetCookie(sessionCookie, resolvedID, 0, "/", "", false, true)
	}
	return store
}

type cartResponse struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals cart.Totals       `json:"totals"`
}

func cartPayload(store *cart.Store) cartResponse {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{Lines: lines, Totals: store.Totals()}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(h.sessionStore(c)))
}

type addLineRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	VariantID string  `json:"variantId"`
	Quantity  float64 `json:"quantity"`
}

func (h *handlers) addCartLine(c *gin.Context) {
	var req addLineRequest
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

	// Proposed quantities are clamped into range before gating, so a form
	// glitch never turns into a refusal the shopper cannot act on.
	qty := catalognorm.ClampQuantity(*p, req.Quantity)

	if !h.deps.Gate.CanPurchase(*p, req.VariantID, qty) {
		c.JSON(http.StatusConflict, gin.H{"error": h.refusalReason(*p, req.VariantID, qty)})
		return
	}

	variant := catalognorm.ResolveVariant(*p, req.VariantID)
	line := domain.CartLine{
		ID:           lineID(p.ID, variant),
		Name:         lineName(*p, variant),
		UnitPrice:    catalognorm.ResolveUnitPrice(*p, req.VariantID),
		ChargeableKg: catalognorm.ResolveChargeableKg(*p, variant),
	}

	store := h.sessionStore(c)
	store.AddLine(line, qty)
	c.JSON(http.StatusCreated, cartPayload(store))
}

// refusalReason names the first gate condition that failed; the frontend
// turns it into a disabled button or a message.
func (h *handlers) refusalReason(p domain.Product, variantID string, qty int) string {
	switch {
	case h.deps.Gate.IsEnquiryOnly(p.Category):
		return "enquiry_only"
	case !catalognorm.IsInStock(p):
		return "out_of_stock"
	case len(p.Variants) > 0 && catalognorm.ResolveVariant(p, variantID) == nil:
		return "variant_required"
	case qty > p.StockCount:
		return "insufficient_stock"
	}
	return "not_purchasable"
}

func lineID(productID string, v *domain.Variant) string {
	if v == nil {
		return productID
	}
	return productID + ":" + v.ID
}

func lineName(p domain.Product, v *domain.Variant) string {
	if v == nil {
		return p.Name
	}
	return p.Name + " (" + v.Size + string(v.Unit) + ")"
}

type setQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

func (h *handlers) setCartLineQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	store := h.sessionStore(c)
	store.SetQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, cartPayload(store))
}

func (h *handlers) removeCartLine(c *gin.Context) {
	store := h.sessionStore(c)
	store.RemoveLine(c.Param("id"))
	c.JSON(http.StatusOK, cartPayload(store))
}

func (h *handlers) clearCart(c *gin.Context) {
	store := h.sessionStore(c)
	store.Clear()
	c.JSON(http.StatusOK, cartPayload(store))
}
