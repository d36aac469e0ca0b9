package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"growkit-storefront/internal/cart"
	catalognorm "growkit-storefront/internal/catalog"
	faqrepo "growkit-storefront/internal/repository/faq"
	orderrepo "growkit-storefront/internal/repository/order"
	catalogsvc "growkit-storefront/internal/service/catalog"
	checkoutsvc "growkit-storefront/internal/service/checkout"
	enquirysvc "growkit-storefront/internal/service/enquiry"
)

// Deps carries everything the handlers need.
type Deps struct {
	Catalog     *catalogsvc.Service
	Carts       *cart.Manager
	Checkout    *checkoutsvc.Service
	Enquiry     *enquirysvc.Service
	Gate        *catalognorm.Gate
	FAQ         faqrepo.Repository
	Orders      orderrepo.Repository
	CORSOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	router.GET("/products", h.listProducts)
	router.GET("/products/:id", h.getProduct)
	router.GET("/shipping/quote", h.shippingQuote)
	router.GET("/faq", h.listFAQ)
	router.POST("/enquiries", h.createEnquiry)

	router.GET("/cart", h.getCart)
	router.POST("/cart/lines", h.addCartLine)
	router.PATCH("/cart/lines/:id", h.setCartLineQuantity)
	router.DELETE("/cart/lines/:id", h.removeCartLine)
	router.DELETE("/cart", h.clearCart)

	router.POST("/checkout", h.checkout)
	router.GET("/orders/:id", h.getOrder)

	// The admin console is gated client-side in the frontend; roles and
	// authorization are out of scope for this service.
	admin := router.Group("/admin")
	{
		admin.GET("/products", h.adminListProducts)
		admin.POST("/products", h.adminCreateProduct)
		admin.PUT("/products/:id", h.adminUpdateProduct)
		admin.DELETE("/products/:id", h.adminDeleteProduct)
		admin.GET("/orders", h.adminListOrders)
		admin.POST("/faqs", h.adminCreateFAQ)
		admin.PUT("/faqs/:id", h.adminUpdateFAQ)
		admin.DELETE("/faqs/:id", h.adminDeleteFAQ)
	}

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
