package food

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/foods/:id<int>", h.getFood)
}

func (h *Handler) getFood(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	f, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return WriteError(c, err)
	}
	return c.JSON(f)
}

// WriteError maps food lookup errors onto the HTTP responses shared by every
// handler that loads foods.
func WriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "food not found"})
	case IsFetchError(err):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
