package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/retailcore/branch_retail_app/internal/adapters/filestore"
	"github.com/retailcore/branch_retail_app/internal/adapters/memstore"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/core/services"
	"github.com/retailcore/branch_retail_app/internal/handlers"
	"github.com/retailcore/branch_retail_app/internal/session"
	"github.com/retailcore/branch_retail_app/pkg/config"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared state: in-memory registries fed from the record files on disk.
	repos := memstore.NewRepositoryProvider()
	container := services.NewServiceContainer(repos)

	store, err := filestore.NewStore(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to open data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := filestore.LoadSeedData(ctx, store, repos, container.Auth, logger); err != nil {
		logger.Error("Failed to load seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	actionLog := filestore.NewActionLog(cfg.ActionLogPath)
	defer actionLog.Close()

	// Read-only reporting API
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, container, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}
	go func() {
		logger.Info("Reporting API starting", slog.String("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Reporting API failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	// The textual command protocol is the primary surface; it blocks until
	// shutdown and drains its sessions before returning.
	tcpServer := session.NewServer(cfg.TCPAddr, container, session.Collaborators{
		Store:     store,
		ActionLog: actionLog,
		ReportDir: cfg.ReportDir,
	}, logger)
	if err := tcpServer.Run(ctx); err != nil {
		logger.Error("Command server failed", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Reporting API shutdown failed", slog.String("error", err.Error()))
	}

	persistSnapshots(shutdownCtx, container, store, logger)
	logger.Info("Shutdown complete")
}

// persistSnapshots writes the mutable registries back to the record files so
// the next process start resumes from the last known state.
func persistSnapshots(ctx context.Context, container *portssvc.ServiceContainer, store *filestore.Store, logger *slog.Logger) {
	if products, err := container.Catalog.ListProducts(ctx); err == nil {
		if err := store.SaveProducts(products); err != nil {
			logger.Error("Failed to persist catalog", slog.String("error", err.Error()))
		}
	}
	if customers, err := container.Directory.ListCustomers(ctx); err == nil {
		if err := store.SaveCustomers(customers); err != nil {
			logger.Error("Failed to persist customers", slog.String("error", err.Error()))
		}
	}
	if sales, err := container.Sale.ListSales(ctx); err == nil {
		if err := store.SaveSales(sales); err != nil {
			logger.Error("Failed to persist sales ledger", slog.String("error", err.Error()))
		}
	}
}
