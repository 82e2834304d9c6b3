package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrs/attendance-sheet/internal/config"
	appHTTP "github.com/adrs/attendance-sheet/internal/handler/http"
	"github.com/adrs/attendance-sheet/internal/pkg/cron"
	"github.com/adrs/attendance-sheet/internal/pkg/employeeapi"
	"github.com/adrs/attendance-sheet/internal/pkg/logger"
	"github.com/adrs/attendance-sheet/internal/pkg/sse"
	reportService "github.com/adrs/attendance-sheet/internal/service/report"
	"github.com/adrs/attendance-sheet/internal/service/roster"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	sseBuffer       = 16
)

func main() {
	if err := run(); err != nil {
		slog.Error("Sheet server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateSheet(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	level, _ := cfg.SlogLevel()
	log := logger.New("attendance-sheet", cfg.App.Env, level)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := employeeapi.NewClient(cfg.EmployeeAPI.BaseURL, cfg.EmployeeAPI.Timeout)
	if err != nil {
		return err
	}

	hub := sse.NewHub(sseBuffer)
	defer hub.Close()

	store := roster.NewStore(client, roster.NewNotifier(hub))
	if err := store.Open(ctx); err != nil {
		// The sheet stays usable; the next reload or refresh fills it.
		log.Warn("Initial roster load failed", slog.Any("error", err))
	}
	defer store.Close()

	scheduler := cron.NewScheduler()
	cron.NewRosterJobs(store).RegisterJobs(scheduler, cfg.Sheet.RefreshInterval)

	sheetHandler := appHTTP.NewSheetHandler(store, hub)
	reportHandler := appHTTP.NewReportHandler(reportService.NewReportService(), store)

	router := appHTTP.NewSheetRouter(appHTTP.RouterOptions{
		Logger:         log,
		LogLevel:       level,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, sheetHandler, reportHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Sheet.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Sheet server running",
			slog.String("addr", srv.Addr),
			slog.String("api_base_url", cfg.EmployeeAPI.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start(gCtx)
		<-gCtx.Done()
		log.Info("Shutting down sheet server...")

		scheduler.Stop()
		// open event streams only end once the hub closes
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
