package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/config"
	"github.com/devbook/internal/content"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/handler"
	"github.com/devbook/internal/logger"
	"github.com/devbook/internal/router"
	"github.com/devbook/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.LogConfig{}, os.Stderr).Fatal(err, "failed to load configuration")
	}
	log := logger.New(cfg.Log, os.Stdout)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal(err, "failed to initialize database")
	}

	created, err := db.EnsureUser(context.Background(), db.DB, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName, db.RoleAdmin)
	if err != nil {
		log.Fatal(err, "failed to ensure admin user")
	}
	if created {
		log.With(map[string]interface{}{"email": cfg.AdminEmail}).Info("admin user created")
	}

	shutdownMetrics, err := telemetry.Setup(cfg.Metrics, os.Stderr)
	if err != nil {
		log.Fatal(err, "failed to set up metrics")
	}

	renderer := content.NewHTMLRenderer(content.WithDefaultMeter(), content.WithAnomalyHook(func(_ context.Context, index int) {
		log.With(map[string]interface{}{"block": index}).Warn("skipped unknown block while rendering")
	}))

	r, err := router.SetupRouter(db.DB, cfg, log, handler.WithRenderer(renderer))
	if err != nil {
		log.Fatal(err, "failed to set up router")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.With(map[string]interface{}{"addr": cfg.ListenAddr}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "failed to run server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "server shutdown failed")
	}
	if err := shutdownMetrics(ctx); err != nil {
		log.Error(err, "metrics shutdown failed")
	}
	log.Info("server stopped")
}
