// Command api serves the full HTTP surface from memory, seeded from a YAML
// catalog. Callers identify themselves with the X-User-ID header unless
// JWT_SECRET is set.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

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

	cat, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		logger.Fatal("load seed file", zap.String("path", cfg.SeedFile), zap.Error(err))
	}

	repos := server.Repositories{
		Categories: category.NewInMemoryRepository(cat.Categories),
		Foods:      food.NewInMemoryRepository(cat.Foods),
		Orders:     order.NewInMemoryRepository(),
		Favorites:  favorite.NewInMemoryRepository(),
	}

	auth := user.HeaderIdentity()
	if cfg.JWTSecret != "" {
		auth = user.JWT(cfg.JWTSecret)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, repos, auth, logger)
	logger.Info("starting in-memory server",
		zap.String("addr", cfg.Addr),
		zap.Int("categories", len(cat.Categories)),
		zap.Int("foods", len(cat.Foods)))
	if err := srv.Listen(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
