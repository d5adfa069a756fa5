package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	orderAPI "github.com/ridloal/dyfn-shop/internal/order/api"
	"github.com/ridloal/dyfn-shop/internal/order/events"
	orderRepo "github.com/ridloal/dyfn-shop/internal/order/repository"
	orderService "github.com/ridloal/dyfn-shop/internal/order/service"
	"github.com/ridloal/dyfn-shop/internal/platform/config"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/httpserver"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/platform/metrics"
	productAPI "github.com/ridloal/dyfn-shop/internal/product/api"
	productRepo "github.com/ridloal/dyfn-shop/internal/product/repository"
	productService "github.com/ridloal/dyfn-shop/internal/product/service"
	systemAPI "github.com/ridloal/dyfn-shop/internal/system/api"
	systemService "github.com/ridloal/dyfn-shop/internal/system/service"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load Config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("Failed to load config", err)
		os.Exit(1)
	}

	logger.Info("Starting Shop Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Setup Database. The service still starts without one; data endpoints
	// then answer "Database not configured".
	store := openStore(ctx, cfg.Store)

	// Setup Order Events
	var publisher orderService.EventPublisher
	if len(cfg.Events.Brokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			logger.Warn("Order events disabled", "err", err)
		} else {
			defer kp.Close()
			publisher = kp
			logger.Info("Publishing order events", "topic", cfg.Events.Topic)
		}
	}

	// Setup Dependencies
	prodService := productService.NewProductService(productRepo.NewDocumentProductRepository(store))
	ordService := orderService.NewOrderService(orderRepo.NewDocumentOrderRepository(store), publisher)
	diagService := systemService.NewDiagnosticsService(store, cfg.Store)

	var heartbeat *systemService.StoreHeartbeat
	if cfg.Scheduler.HeartbeatSpec != "" && store != nil {
		hb := systemService.NewStoreHeartbeat(store)
		if err := hb.Start(cfg.Scheduler.HeartbeatSpec); err != nil {
			logger.Error("Store heartbeat not started", err)
		} else {
			heartbeat = hb
		}
	}

	// Setup Gin Router
	router := httpserver.NewRouter(metrics.NewServerMetrics("shop"))
	systemAPI.NewSystemHandler(diagService).RegisterRoutes(&router.RouterGroup)

	api := router.Group("/api")
	productAPI.NewProductHandler(prodService).RegisterRoutes(api)
	orderAPI.NewOrderHandler(ordService).RegisterRoutes(api)

	srv := httpserver.NewHTTPServer(cfg.Server.Port, router)
	go srv.Run(stop)

	<-ctx.Done()
	logger.Info("Shutting down Shop Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.Close(shutdownCtx)

	if heartbeat != nil {
		heartbeat.Stop()
	}
	if store != nil {
		if err := store.Close(shutdownCtx); err != nil {
			logger.Error("Failed to close database", err)
		}
	}
}

// openStore returns nil when no database is configured or it cannot be
// opened.
func openStore(ctx context.Context, cfg config.StoreConfig) docstore.Store {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	store, err := docstore.Open(ctx, cfg)
	switch {
	case errors.Is(err, docstore.ErrNotConfigured):
		logger.Warn("DATABASE_URL not set, running without a database")
		return nil
	case err != nil:
		logger.Error("Failed to open database, running without one", err)
		return nil
	}
	logger.Info("Database ready", "name", store.Name())
	return store
}
