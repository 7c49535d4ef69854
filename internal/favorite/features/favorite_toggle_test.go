package features

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/wichananm65/food-order-backend/internal/favorite"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/money"
)

type scriptedStore struct {
	mu       sync.Mutex
	favorite bool
	probeErr error
	writeErr error
	gate     chan struct{}
}

func (s *scriptedStore) IsFavorite(ctx context.Context, userID, foodID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorite, s.probeErr
}

func (s *scriptedStore) write(fav bool) error {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.favorite = fav
	return nil
}

func (s *scriptedStore) Add(ctx context.Context, userID int, f food.Food) error {
	return s.write(true)
}

func (s *scriptedStore) Remove(ctx context.Context, userID, foodID int) error {
	return s.write(false)
}

type toggleTestContext struct {
	store     *scriptedStore
	toggle    *favorite.Toggle
	snapshot  favorite.Snapshot
	err       error
	secondErr error
}

func (c *toggleTestContext) reset() {
	c.store = &scriptedStore{}
	c.toggle = favorite.NewToggle(c.store, 1, food.Food{ID: 1, Name: "Ao molho", Price: money.MustParse("19.90")})
	c.snapshot = favorite.Snapshot{}
	c.err = nil
	c.secondErr = nil
}

func (c *toggleTestContext) theStoreSaysTheFoodIsAFavourite() error {
	c.store.favorite = true
	return nil
}

func (c *toggleTestContext) theStoreSaysTheFoodIsNotAFavourite() error {
	c.store.favorite = false
	return nil
}

func (c *toggleTestContext) theStoreCannotBeReachedForProbes() error {
	c.store.favorite = true
	c.store.probeErr = errors.New("network unreachable")
	return nil
}

func (c *toggleTestContext) theStoreIsSlowToAnswer() error {
	c.store.gate = make(chan struct{})
	return nil
}

func (c *toggleTestContext) theStoreRejectsWrites() error {
	c.store.writeErr = errors.New("503 service unavailable")
	return nil
}

func (c *toggleTestContext) theToggleIsProbed() error {
	c.snapshot = c.toggle.Probe(context.Background())
	return nil
}

func (c *toggleTestContext) theUserTogglesTheFavourite() error {
	c.snapshot, c.err = c.toggle.Toggle(context.Background())
	return nil
}

func (c *toggleTestContext) theUserTogglesTheFavouriteAgain() error {
	_, c.secondErr = c.toggle.Toggle(context.Background())
	return nil
}

func (c *toggleTestContext) theStoreAnswers() error {
	c.store.mu.Lock()
	if c.store.gate != nil {
		close(c.store.gate)
		c.store.gate = nil
	}
	c.store.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.toggle.Wait(ctx); err != nil {
		return err
	}
	c.snapshot = c.toggle.Consume()
	return nil
}

func (c *toggleTestContext) theStateIs(want string) error {
	if got := c.snapshot.State.String(); got != want {
		return fmt.Errorf("expected state %q, got %q", want, got)
	}
	return nil
}

func (c *toggleTestContext) theFlagShowsFavourite() error {
	if !c.snapshot.IsFavorite {
		return errors.New("expected flag to show favourite")
	}
	return nil
}

func (c *toggleTestContext) theFlagShowsNotFavourite() error {
	if c.snapshot.IsFavorite {
		return errors.New("expected flag to show not favourite")
	}
	return nil
}

func (c *toggleTestContext) noNoticeIsShown() error {
	if len(c.snapshot.Notices) != 0 {
		return fmt.Errorf("expected no notice, got %+v", c.snapshot.Notices)
	}
	return nil
}

func (c *toggleTestContext) aNoticeIsShown(kind string) error {
	if len(c.snapshot.Notices) != 1 || c.snapshot.Notices[0].Kind != kind {
		return fmt.Errorf("expected one %q notice, got %+v", kind, c.snapshot.Notices)
	}
	return nil
}

func (c *toggleTestContext) theLastFailureTargeted(target string) error {
	failure := c.toggle.LastFailure()
	if failure == nil {
		return errors.New("expected a recorded failure")
	}
	if failure.Target.String() != target {
		return fmt.Errorf("expected failure targeting %q, got %q", target, failure.Target)
	}
	return nil
}

func (c *toggleTestContext) theSecondToggleIsRejectedAsPending() error {
	if c.err != nil {
		return fmt.Errorf("first toggle failed: %v", c.err)
	}
	if !errors.Is(c.secondErr, favorite.ErrPending) {
		return fmt.Errorf("expected ErrPending, got %v", c.secondErr)
	}
	return nil
}

func (c *toggleTestContext) theToggleIsRejectedAsNotProbed() error {
	if !errors.Is(c.err, favorite.ErrNotProbed) {
		return fmt.Errorf("expected ErrNotProbed, got %v", c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &toggleTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the store says the food is a favourite$`, tc.theStoreSaysTheFoodIsAFavourite)
	ctx.Step(`^the store says the food is not a favourite$`, tc.theStoreSaysTheFoodIsNotAFavourite)
	ctx.Step(`^the store cannot be reached for probes$`, tc.theStoreCannotBeReachedForProbes)
	ctx.Step(`^the store is slow to answer$`, tc.theStoreIsSlowToAnswer)
	ctx.Step(`^the store rejects writes$`, tc.theStoreRejectsWrites)
	ctx.Step(`^the toggle is probed$`, tc.theToggleIsProbed)
	ctx.Step(`^the user toggles the favourite$`, tc.theUserTogglesTheFavourite)
	ctx.Step(`^the user toggles the favourite again$`, tc.theUserTogglesTheFavouriteAgain)
	ctx.Step(`^the store answers$`, tc.theStoreAnswers)
	ctx.Step(`^the state is "([^"]*)"$`, tc.theStateIs)
	ctx.Step(`^the flag shows favourite$`, tc.theFlagShowsFavourite)
	ctx.Step(`^the flag shows not favourite$`, tc.theFlagShowsNotFavourite)
	ctx.Step(`^no notice is shown$`, tc.noNoticeIsShown)
	ctx.Step(`^a "([^"]*)" notice is shown$`, tc.aNoticeIsShown)
	ctx.Step(`^the last failure targeted "([^"]*)"$`, tc.theLastFailureTargeted)
	ctx.Step(`^the second toggle is rejected as pending$`, tc.theSecondToggleIsRejectedAsPending)
	ctx.Step(`^the toggle is rejected as not probed$`, tc.theToggleIsRejectedAsNotProbed)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"favorite_toggle.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
