package main

import (
	"context"
	"os"

	"github.com/devbook/internal/config"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.LogConfig{}, os.Stderr).Fatal(err, "failed to load configuration")
	}
	log := logger.New(cfg.Log, os.Stdout)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal(err, "failed to initialize database")
	}

	stats, err := seed(context.Background(), db.DB)
	if err != nil {
		log.Fatal(err, "failed to seed content")
	}
	log.With(map[string]interface{}{
		"technologies": stats.technologies,
		"modules":      stats.modules,
		"posts":        stats.posts,
	}).Info("sample content ready")
}
