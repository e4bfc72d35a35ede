// Command create-admin provisions an administrator account for the site dashboard.
//
//	create-admin -email owner@example.com -password '...'
//
// Running it again for an existing email replaces the password.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"travel/internal/app"
	"travel/internal/auth"
	"travel/internal/config"
	"travel/internal/repository/documents"
	"travel/internal/repository/postgres"
	"travel/internal/service"
)

func main() {
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*email, *password); err != nil {
		fmt.Fprintln(os.Stderr, "create-admin:", err)
		os.Exit(1)
	}
}

func run(email, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.NewDatabase(ctx, cfg.Database, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	// Provisioning never checks or revokes sessions.
	store := postgres.NewDocumentStore(db, nil, logger)
	authService := service.NewAuthService(
		documents.NewAdminRepository(store),
		auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry),
		nil,
		logger,
	)

	admin, err := authService.CreateAdmin(ctx, email, password)
	if err != nil {
		return err
	}
	logger.WithField("email", admin.Email).Info("administrator saved")
	return nil
}
