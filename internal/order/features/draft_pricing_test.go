package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/money"
	"github.com/wichananm65/food-order-backend/internal/order"
)

type draftTestContext struct {
	food  food.Food
	draft *order.Draft
	err   error
}

func (c *draftTestContext) reset() {
	c.food = food.Food{}
	c.draft = nil
	c.err = nil
}

func (c *draftTestContext) aFoodPricedWithExtras(price string, table *godog.Table) error {
	p, err := money.Parse(price)
	if err != nil {
		return err
	}
	c.food = food.Food{ID: 1, Name: "Ao molho", Price: p}
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		value, err := money.Parse(row.Cells[2].Value)
		if err != nil {
			return err
		}
		c.food.Extras = append(c.food.Extras, food.Extra{ID: id, Name: row.Cells[1].Value, Value: value})
	}
	return nil
}

func (c *draftTestContext) aDraftIsOpened() error {
	c.draft = order.NewDraft(c.food)
	return nil
}

func (c *draftTestContext) theFoodQuantityIsIncreased(times int) error {
	for i := 0; i < times; i++ {
		c.draft.IncrementFood()
	}
	return nil
}

func (c *draftTestContext) theFoodQuantityIsDecreased(times int) error {
	for i := 0; i < times; i++ {
		c.draft.DecrementFood()
	}
	return nil
}

func (c *draftTestContext) extraIsIncreased(id, times int) error {
	for i := 0; i < times; i++ {
		if err := c.draft.IncrementExtra(id); err != nil {
			c.err = err
		}
	}
	return nil
}

func (c *draftTestContext) extraIsDecreased(id, times int) error {
	for i := 0; i < times; i++ {
		if err := c.draft.DecrementExtra(id); err != nil {
			c.err = err
		}
	}
	return nil
}

func (c *draftTestContext) theTotalIs(want string) error {
	if got := order.Total(c.draft).String(); got != want {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func (c *draftTestContext) theFormattedTotalIs(want string) error {
	if got := order.Total(c.draft).Format(); got != want {
		return fmt.Errorf("expected formatted total %q, got %q", want, got)
	}
	return nil
}

func (c *draftTestContext) theFoodQuantityIs(want int) error {
	if got := c.draft.Quantity(); got != want {
		return fmt.Errorf("expected food quantity %d, got %d", want, got)
	}
	return nil
}

func (c *draftTestContext) extraHasQuantity(id, want int) error {
	if got := c.draft.ExtraQuantity(id); got != want {
		return fmt.Errorf("expected extra %d quantity %d, got %d", id, want, got)
	}
	return nil
}

func (c *draftTestContext) theOperationIsRejectedAsAnUnknownExtra() error {
	var unknown *order.UnknownExtraError
	if !errors.As(c.err, &unknown) {
		return fmt.Errorf("expected UnknownExtraError, got %v", c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &draftTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a food priced (\d+\.\d+) with extras:$`, tc.aFoodPricedWithExtras)
	ctx.Step(`^a draft is opened$`, tc.aDraftIsOpened)
	ctx.Step(`^the food quantity is increased (\d+) times$`, tc.theFoodQuantityIsIncreased)
	ctx.Step(`^the food quantity is decreased (\d+) times$`, tc.theFoodQuantityIsDecreased)
	ctx.Step(`^extra (\d+) is increased (\d+) times$`, tc.extraIsIncreased)
	ctx.Step(`^extra (\d+) is decreased (\d+) times$`, tc.extraIsDecreased)
	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^the formatted total is "([^"]*)"$`, tc.theFormattedTotalIs)
	ctx.Step(`^the food quantity is (\d+)$`, tc.theFoodQuantityIs)
	ctx.Step(`^extra (\d+) has quantity (\d+)$`, tc.extraHasQuantity)
	ctx.Step(`^the operation is rejected as an unknown extra$`, tc.theOperationIsRejectedAsAnUnknownExtra)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"draft_pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
