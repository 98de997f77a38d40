package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"hoadash/internal/branding"
	"hoadash/internal/cli"
	"hoadash/internal/core"
	apphttp "hoadash/internal/http"
	"hoadash/internal/i18n"
	applog "hoadash/internal/log"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		applog.New(applog.DefaultConfig()).Error("Configuration validation failed",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpValidate,
			applog.FieldErrorType, applog.ErrorTypeConfiguration)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg, os.Stdout)

	ctx, cancel := cli.SignalContext(context.Background(), logger)
	defer cancel()

	ds, err := cli.OpenDataset(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open dataset", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	defer ds.Cleanup()

	brandCfg, err := cli.LoadBrandingConfig(cfg.BrandingConfig)
	if err != nil {
		logger.Error("Failed to load branding config", applog.FieldError, err, applog.FieldFile, cfg.BrandingConfig)
		os.Exit(1)
	}

	lang, _ := i18n.Parse(cfg.DefaultLanguage)
	cur, _ := core.ParseCurrency(cfg.DefaultCurrency)

	srv, err := apphttp.NewServer(apphttp.Options{
		Addr:            cfg.Addr(),
		Reader:          ds.Backend,
		Injector:        branding.NewInjector(brandCfg),
		BrandPages:      cfg.BrandingEnabled,
		DefaultLanguage: lang,
		DefaultCurrency: cur,
		CacheSize:       cfg.CacheSize,
		CacheTTL:        cfg.CacheTTL,
		RateLimit:       cfg.RateLimitPerMinute,
		Logger:          logger,
	})
	if err != nil {
		logger.Error("Failed to create server", applog.FieldError, err)
		os.Exit(1)
	}

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting hoadash server",
			applog.FieldOperation, applog.OpStartup,
			"port", cfg.Port,
			applog.FieldBackend, cfg.DataBackend,
			"branding", cfg.BrandingEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		logger.Info("Shutting down server", applog.FieldOperation, applog.OpShutdown)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err, applog.FieldOperation, applog.OpShutdown)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
