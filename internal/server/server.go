// Package server wires the HTTP surface shared by both entry points.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/wichananm65/food-order-backend/internal/catalog"
	"github.com/wichananm65/food-order-backend/internal/category"
	"github.com/wichananm65/food-order-backend/internal/config"
	"github.com/wichananm65/food-order-backend/internal/favorite"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/metrics"
	"github.com/wichananm65/food-order-backend/internal/middleware"
	"github.com/wichananm65/food-order-backend/internal/order"
	"go.uber.org/zap"
)

// Repositories are the storage backends of one deployment.
type Repositories struct {
	Categories category.Repository
	Foods      food.Repository
	Orders     order.Repository
	Favorites  favorite.Repository
}

// Server is the fiber app plus the session state it owns.
type Server struct {
	App *fiber.App

	cfg     config.Config
	logger  *zap.Logger
	drafts  *order.Drafts
	toggles *favorite.Registry
	limiter *middleware.RateLimiter
}

// New builds the app. auth runs in front of every protected route and must
// leave the caller identity in the request locals.
func New(cfg config.Config, repos Repositories, auth fiber.Handler, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger)

	foodService := food.NewService(repos.Foods)
	orderService := order.NewService(repos.Orders, foodService, logger)
	favoriteService := favorite.NewService(repos.Favorites, logger)

	toggles := favorite.NewRegistry(favoriteService, foodService, cfg.SessionTTL,
		favorite.NotifyOnAddFailure(cfg.NotifyOnAddFailure),
		favorite.NotifyOnRemoveFailure(cfg.NotifyOnRemoveFailure),
	)
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		drafts:  order.NewDrafts(foodService, orderService, cfg.SessionTTL, logger),
		toggles: toggles,
		limiter: middleware.NewRateLimiter(cfg.FavoriteRateLimitRPS, cfg.FavoriteRateLimitBurst, cfg.SessionTTL, logger),
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(metrics.Middleware())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", metrics.Handler())

	category.NewHandler(category.NewService(repos.Categories)).RegisterPublicRoutes(app)
	catalog.NewHandler(catalog.NewService(foodService)).RegisterPublicRoutes(app)
	food.NewHandler(foodService).RegisterPublicRoutes(app)

	protected := guardedRouter{Router: app, guards: []fiber.Handler{auth}}
	order.NewHandler(s.drafts, orderService).RegisterProtectedRoutes(protected)
	favorite.NewHandler(favoriteService, s.toggles, s.limiter.Handler()).RegisterProtectedRoutes(protected)

	s.App = app
	return s
}

// Run expires idle drafts, toggles and rate limit buckets until ctx is done.
func (s *Server) Run(ctx context.Context) {
	interval := s.cfg.SessionSweepInterval
	go s.drafts.Run(ctx, interval)
	go s.toggles.Run(ctx, interval)
	go s.limiter.Run(ctx, interval)
}

// Listen serves until ctx is done, then shuts the app down.
func (s *Server) Listen(ctx context.Context) error {
	s.Run(ctx)

	errc := make(chan error, 1)
	go func() { errc <- s.App.Listen(s.cfg.Addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.App.ShutdownWithTimeout(10 * time.Second)
	}
}

// guardedRouter puts guards in front of every route registered through it.
// Unlike app.Use, paths that match no route still answer 404.
type guardedRouter struct {
	fiber.Router
	guards []fiber.Handler
}

func (g guardedRouter) chain(handlers []fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(g.guards)+len(handlers))
	return append(append(out, g.guards...), handlers...)
}

func (g guardedRouter) Get(path string, handlers ...fiber.Handler) fiber.Router {
	return g.Router.Get(path, g.chain(handlers)...)
}

func (g guardedRouter) Post(path string, handlers ...fiber.Handler) fiber.Router {
	return g.Router.Post(path, g.chain(handlers)...)
}

func (g guardedRouter) Put(path string, handlers ...fiber.Handler) fiber.Router {
	return g.Router.Put(path, g.chain(handlers)...)
}

func (g guardedRouter) Patch(path string, handlers ...fiber.Handler) fiber.Router {
	return g.Router.Patch(path, g.chain(handlers)...)
}

func (g guardedRouter) Delete(path string, handlers ...fiber.Handler) fiber.Router {
	return g.Router.Delete(path, g.chain(handlers)...)
}
