package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/wichananm65/food-order-backend/internal/category"
	"github.com/wichananm65/food-order-backend/internal/config"
	"github.com/wichananm65/food-order-backend/internal/favorite"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/order"
	"github.com/wichananm65/food-order-backend/internal/seed"
	"github.com/wichananm65/food-order-backend/internal/server"
	"github.com/wichananm65/food-order-backend/internal/user"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := mustOpenDB(ctx, cfg.DatabaseURL, logger)
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}
	if cat, err := seed.LoadFile(cfg.SeedFile); err != nil {
		logger.Warn("seed file not loaded", zap.String("path", cfg.SeedFile), zap.Error(err))
	} else if seeded, err := seedCatalog(ctx, db, cat); err != nil {
		logger.Warn("catalog seeding failed", zap.Error(err))
	} else if seeded {
		logger.Info("catalog seeded", zap.Int("foods", len(cat.Foods)))
	}

	repos := server.Repositories{
		Categories: category.NewPostgresRepository(db),
		Foods:      food.NewPostgresRepository(db),
		Orders:     order.NewPostgresRepository(db),
		Favorites:  favorite.NewPostgresRepository(db),
	}
	auth := user.JWT(cfg.JWTSecret)

	srv := server.New(cfg, repos, auth, logger)
	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := srv.Listen(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func mustOpenDB(ctx context.Context, dbURL string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("ping database", zap.Error(err))
	}

	return db
}
