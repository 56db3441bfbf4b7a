package main

import (
	"context"
	"flag"
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

	email := flag.String("email", cfg.AdminEmail, "account email")
	password := flag.String("password", cfg.AdminPassword, "account password")
	name := flag.String("name", cfg.AdminName, "display name")
	role := flag.String("role", string(db.RoleAdmin), "ADMIN, EDITOR or VIEWER")
	flag.Parse()

	if *password == "" {
		*password = "admin123"
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal(err, "failed to initialize database")
	}

	created, err := db.EnsureUser(context.Background(), db.DB, *email, *password, *name, db.Role(*role))
	if err != nil {
		log.Fatal(err, "failed to create user")
	}
	fields := log.With(map[string]interface{}{"email": *email, "role": *role})
	if !created {
		fields.Info("user already exists")
		return
	}
	fields.Info("user created")
}
