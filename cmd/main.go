package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storeadmin/internal/app/admin/apiclient"
	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/config"
	"storeadmin/internal/app/admin/entity"
	"storeadmin/internal/app/admin/handler"
	"storeadmin/internal/app/admin/service"
	"storeadmin/internal/app/admin/worker"
	"storeadmin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("storeadmin", cfg.LogLevel)

	// Единственная внешняя зависимость - storefront REST API.
	// Транспорт создается один раз и передается всем клиентам явно,
	// никакого глобального синглтона с зашитым адресом
	transport := apiclient.NewTransport(cfg.Storefront.BaseURL, cfg.Storefront.TimeoutSec)
	logger.Info().
		Str("base_url", cfg.Storefront.BaseURL).
		Int("timeout_sec", cfg.Storefront.TimeoutSec).
		Msg("Initialized storefront API transport")

	// Каждый экран владеет своим кешем; между экранами кеш не разделяется
	productClient := apiclient.NewProductClient(transport, cache.NewViewCache(func(p entity.Product) string { return p.ID }))
	categoryClient := apiclient.NewCategoryClient(transport, cache.NewViewCache(func(c entity.Category) string { return c.ID }))
	orderClient := apiclient.NewOrderClient(transport, cache.NewViewCache(func(o entity.Order) string { return o.ID }))
	paymentClient := apiclient.NewPaymentClient(transport, cache.NewViewCache(func(p entity.PaymentTransaction) string { return p.ID }))
	userClient := apiclient.NewUserClient(transport, cache.NewViewCache(func(u entity.User) string { return u.ID }))
	notificationClient := apiclient.NewNotificationClient(transport, cache.NewViewCache(func(n entity.Notification) string { return n.ID }))

	dashboardService := service.NewDashboardService(
		userClient,
		orderClient,
		productClient,
		paymentClient,
		categoryClient,
	)

	catalogHandler := handler.NewCatalogHandler(productClient, categoryClient)
	orderHandler := handler.NewOrderHandler(orderClient, paymentClient)
	userHandler := handler.NewUserHandler(userClient, notificationClient)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router := handler.SetupRoutes(catalogHandler, orderHandler, userHandler, dashboardHandler)

	refreshWorker := worker.NewRefreshWorker(dashboardService)
	if err := refreshWorker.Start(context.Background(), cfg.Refresh.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start refresh worker")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting storefront admin panel")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down storefront admin panel...")

	refreshWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Storefront admin panel stopped gracefully")
}
