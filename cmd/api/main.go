package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"growkit-storefront/internal/cart"
	catalognorm "growkit-storefront/internal/catalog"
	"growkit-storefront/internal/config"
	"growkit-storefront/internal/db"
	"growkit-storefront/internal/httpserver"
	faqrepo "growkit-storefront/internal/repository/faq"
	orderrepo "growkit-storefront/internal/repository/order"
	productrepo "growkit-storefront/internal/repository/product"
	catalogsvc "growkit-storefront/internal/service/catalog"
	checkoutsvc "growkit-storefront/internal/service/checkout"
	enquirysvc "growkit-storefront/internal/service/enquiry"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	gate := catalognorm.NewGate(cfg.EnquiryCategories)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	faqRepo := faqrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:     catalogsvc.New(productRepo, gate),
		Carts:       cart.NewManager(cfg.CartSessionTTL),
		Checkout:    checkoutsvc.New(orderRepo, cfg.CheckoutMaxKg),
		Enquiry:     enquirysvc.New(cfg.WhatsAppNumber),
		Gate:        gate,
		FAQ:         faqRepo,
		Orders:      orderRepo,
		CORSOrigins: cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
