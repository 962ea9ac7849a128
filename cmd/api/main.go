package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	cartrepo "storefront/internal/repository/cart"
	categoryrepo "storefront/internal/repository/category"
	orderrepo "storefront/internal/repository/order"
	productrepo "storefront/internal/repository/product"
	settingsrepo "storefront/internal/repository/settings"
	tokenrepo "storefront/internal/repository/token"
	userrepo "storefront/internal/repository/user"
	adminsvc "storefront/internal/service/admin"
	cartsvc "storefront/internal/service/cart"
	categorysvc "storefront/internal/service/category"
	checkoutsvc "storefront/internal/service/checkout"
	ordersvc "storefront/internal/service/order"
	productsvc "storefront/internal/service/product"
	settingssvc "storefront/internal/service/settings"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("disconnect mongo: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Fatalf("ensure indexes: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatalf("create upload dir: %v", err)
	}

	productRepo := productrepo.NewMongo(database)
	categoryRepo := categoryrepo.NewMongo(database)
	orderRepo := orderrepo.NewMongo(database)
	settingsRepo := settingsrepo.NewMongo(database)
	userRepo := userrepo.NewMongo(database)
	tokenRepo := tokenrepo.NewMongo(database)
	cartRepo := cartrepo.NewMongo(database)

	productService := productsvc.New(productRepo, categoryRepo)
	categoryService := categorysvc.New(categoryRepo)
	orderService := ordersvc.New(orderRepo)
	settingsService := settingssvc.New(settingsRepo)
	adminService := adminsvc.New(userRepo, tokenRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	checkoutService := checkoutsvc.New(cartRepo, orderRepo, settingsService, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, client, httpserver.Deps{
		ProductSvc:  productService,
		CategorySvc: categoryService,
		OrderSvc:    orderService,
		SettingsSvc: settingsService,
		AdminSvc:    adminService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
	}, httpserver.Options{
		UploadDir:   cfg.UploadDir,
		FrontendURL: cfg.FrontendURL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

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
