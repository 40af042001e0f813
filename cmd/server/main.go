// Command server runs the mesto API: account registration and signin plus
// authenticated card sharing, backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/mesto-api/internal/api"
	"github.com/phrazzld/mesto-api/internal/api/middleware"
	"github.com/phrazzld/mesto-api/internal/config"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/platform/postgres"
	"github.com/phrazzld/mesto-api/internal/service"
	"github.com/phrazzld/mesto-api/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", "error", cerr)
		}
	}()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("database migrations applied")

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime())
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	userStore := postgres.NewPostgresUserStore(db)
	cardStore := postgres.NewPostgresCardStore(db, log)

	userService := service.NewUserService(userStore, jwtService, hasher, log)
	cardService := service.NewCardService(cardStore, log)

	authHandler := api.NewAuthHandler(userService, log)
	userHandler := api.NewUserHandler(userService, log)
	cardHandler := api.NewCardHandler(cardService, log)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userStore, log)

	router := newRouter(routerDeps{
		logger:         log,
		authHandler:    authHandler,
		userHandler:    userHandler,
		cardHandler:    cardHandler,
		authMiddleware: authMiddleware,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("starting server", slog.String("addr", addr))
	return serve(ctx, log, addr, router)
}
