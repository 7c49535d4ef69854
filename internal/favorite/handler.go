package favorite

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/user"
)

// Handler exposes the favourites screen and the favourite toggle of the
// detail screen.
type Handler struct {
	service  *Service
	registry *Registry
	guards   []fiber.Handler
}

// NewHandler builds the handler. guards run in front of the toggle route,
// e.g. a rate limiter.
func NewHandler(s *Service, r *Registry, guards ...fiber.Handler) *Handler {
	return &Handler{service: s, registry: r, guards: guards}
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Get("/api/v1/favorites", h.getFavorites)
	app.Get("/api/v1/foods/:id<int>/favorite", h.getToggle)
	app.Post("/api/v1/foods/:id<int>/favorite/toggle", append(h.guards, h.toggle)...)
	app.Delete("/api/v1/foods/:id<int>/favorite", h.closeToggle)
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	favs, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(favs)
}

func (h *Handler) getToggle(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	foodID, _ := strconv.Atoi(c.Params("id"))

	t, err := h.registry.Open(c.UserContext(), userID, foodID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(t.Consume())
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	foodID, _ := strconv.Atoi(c.Params("id"))

	snap, err := h.registry.Toggle(c.UserContext(), userID, foodID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(snap)
}

func (h *Handler) closeToggle(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	foodID, _ := strconv.Atoi(c.Params("id"))
	h.registry.Close(userID, foodID)
	return c.SendStatus(fiber.StatusNoContent)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "favorite change still in progress"})
	case errors.Is(err, ErrNotProbed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "favorite status not loaded yet"})
	case errors.Is(err, ErrInvalidUser):
		return user.Unauthorized(c)
	default:
		return food.WriteError(c, err)
	}
}
