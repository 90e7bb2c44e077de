package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizdash/backend/internal/application/identity"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/cache"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/infrastructure/migration"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/bizdash/backend/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env opens the resources a command needs; tests swap in sqlite-backed ones
type env struct {
	now         func() time.Time
	openConfig  func() (*config.Config, error)
	openAccount func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*identity.AuthService, func(), error)
	openSchema  func(cfg *config.Config, log *zap.Logger) (*migration.Migrator, error)
}

func defaultEnv() *env {
	return &env{
		now:         time.Now,
		openConfig:  config.Load,
		openAccount: openAccountService,
		openSchema: func(cfg *config.Config, log *zap.Logger) (*migration.Migrator, error) {
			if cfg.Database.Driver == persistence.DriverSQLite {
				return nil, errors.New("sqlite databases are migrated by the server on startup")
			}
			return migration.Open(cfg.Database.DSN(), migrations.FS, log)
		},
	}
}

func newRootCmd(e *env) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "bizctl",
		Short:         "Operate the business dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	newLogger := func() (*zap.Logger, error) {
		return logger.New(logger.Config{Level: logLevel, Format: "console", Output: "stderr"})
	}

	root.AddCommand(newMigrateCmd(e, newLogger), newUsersCmd(e, newLogger))
	return root
}

// openAccountService wires AuthService against the configured database and,
// when enabled, the Redis blacklist the running server reads
func openAccountService(ctx context.Context, cfg *config.Config, log *zap.Logger) (*identity.AuthService, func(), error) {
	db, err := persistence.NewDatabase(&cfg.Database, nil)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() { _ = db.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		blacklist = auth.NewRedisTokenBlacklist(client)
	} else {
		log.Warn("Redis is disabled; tokens issued before a revoke stay valid until they expire")
	}

	svc := identity.NewAuthService(
		persistence.NewGormUserRepository(db.DB),
		auth.NewJWTService(cfg.JWT),
		blacklist,
		nil,
		log,
	)
	return svc, cleanup, nil
}
