package catalog

import (
	"strconv"

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
	app.Get("/api/v1/foods", h.getFoods)
}

// getFoods accepts the query parameters the mobile client sends:
// category_like (category id) and name_like (search text).
func (h *Handler) getFoods(c *fiber.Ctx) error {
	var f Filter
	if raw := c.Query("category_like"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			f.Category = &id
		}
	}
	f.Query = c.Query("name_like")

	foods, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return food.WriteError(c, err)
	}
	return c.JSON(foods)
}
