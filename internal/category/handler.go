package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/food-order-backend/internal/food"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/categories", h.getCategories)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return food.WriteError(c, err)
	}
	return c.JSON(items)
}
