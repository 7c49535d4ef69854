package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/user"
)

// Handler exposes draft sessions and past orders to the mobile client.
type Handler struct {
	drafts  *Drafts
	service *Service
}

func NewHandler(drafts *Drafts, s *Service) *Handler {
	return &Handler{drafts: drafts, service: s}
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Get("/api/v1/orders", h.getOrders)

	app.Post("/api/v1/drafts", h.startDraft)
	app.Get("/api/v1/drafts/:draftId", h.getDraft)
	app.Delete("/api/v1/drafts/:draftId", h.discardDraft)
	app.Post("/api/v1/drafts/:draftId/food/increment", h.mutate(func(c *fiber.Ctx, d *Draft) error {
		d.IncrementFood()
		return nil
	}))
	app.Post("/api/v1/drafts/:draftId/food/decrement", h.mutate(func(c *fiber.Ctx, d *Draft) error {
		d.DecrementFood()
		return nil
	}))
	app.Post("/api/v1/drafts/:draftId/extras/:extraId/increment", h.mutate(func(c *fiber.Ctx, d *Draft) error {
		id, err := extraID(c)
		if err != nil {
			return err
		}
		return d.IncrementExtra(id)
	}))
	app.Post("/api/v1/drafts/:draftId/extras/:extraId/decrement", h.mutate(func(c *fiber.Ctx, d *Draft) error {
		id, err := extraID(c)
		if err != nil {
			return err
		}
		return d.DecrementExtra(id)
	}))
	app.Post("/api/v1/drafts/:draftId/submit", h.submitDraft)
}

type startDraftRequest struct {
	FoodID int `json:"foodId"`
}

func (h *Handler) startDraft(c *fiber.Ctx) error {
	payload := new(startDraftRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FoodID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid foodId"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}

	view, err := h.drafts.Start(c.UserContext(), userID, payload.FoodID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *Handler) getDraft(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	view, err := h.drafts.Get(userID, c.Params("draftId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) discardDraft(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	if err := h.drafts.Discard(userID, c.Params("draftId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mutate wraps a draft operation. Rejected operations answer with the error
// and leave the draft as it was.
func (h *Handler) mutate(op func(c *fiber.Ctx, d *Draft) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := user.GetUserIDFromCtx(c)
		if err != nil {
			return user.Unauthorized(c)
		}
		view, err := h.drafts.Apply(userID, c.Params("draftId"), func(d *Draft) error {
			return op(c, d)
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(view)
	}
}

func (h *Handler) submitDraft(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	created, err := h.drafts.Submit(c.UserContext(), userID, c.Params("draftId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// getOrders returns all orders belonging to the authenticated user.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.Unauthorized(c)
	}
	orders, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]listedOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, listedOrder{Order: o, FormattedTotal: o.FormattedTotal()})
	}
	return c.JSON(out)
}

type listedOrder struct {
	Order
	FormattedTotal string `json:"formattedTotal"`
}

var errBadExtraID = &badParamError{field: "extraId"}

type badParamError struct{ field string }

func (e *badParamError) Error() string { return "invalid " + e.field }
func (e *badParamError) Field() string { return e.field }

func extraID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("extraId"))
	if err != nil {
		return 0, errBadExtraID
	}
	return id, nil
}

func writeError(c *fiber.Ctx, err error) error {
	var submitErr *SubmitError
	switch {
	case IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrDraftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "draft not found"})
	case errors.Is(err, ErrInvalidUser):
		return user.Unauthorized(c)
	case errors.As(err, &submitErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	default:
		return food.WriteError(c, err)
	}
}
