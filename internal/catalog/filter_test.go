package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wichananm65/food-order-backend/internal/food"
)

const (
	categoryA = 1
	categoryB = 2
)

func sampleCatalog() []food.Food {
	return []food.Food{
		{ID: 1, Name: "Ao molho", CategoryID: categoryA},
		{ID: 2, Name: "Veggie", CategoryID: categoryB},
		{ID: 3, Name: "A La Camarón", CategoryID: categoryA},
	}
}

func ids(foods []food.Food) []int {
	out := make([]int, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.ID)
	}
	return out
}

func TestVisible_NoFilters(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ids(Visible(sampleCatalog(), Filter{})))
}

func TestVisible_SelectingCategoryTwiceClearsIt(t *testing.T) {
	var sel Selection

	sel.Select(categoryA)
	assert.Equal(t, []int{1, 3}, ids(Visible(sampleCatalog(), sel.Filter(""))))

	assert.Nil(t, sel.Select(categoryA))
	assert.Equal(t, []int{1, 2, 3}, ids(Visible(sampleCatalog(), sel.Filter(""))))
}

func TestVisible_SelectingAnotherCategoryReplacesIt(t *testing.T) {
	var sel Selection
	sel.Select(categoryA)
	got := sel.Select(categoryB)

	if assert.NotNil(t, got) {
		assert.Equal(t, categoryB, *got)
	}
	assert.Equal(t, []int{2}, ids(Visible(sampleCatalog(), sel.Filter(""))))
}

func TestVisible_SubstringQuery(t *testing.T) {
	assert.Equal(t, []int{1, 3}, ids(Visible(sampleCatalog(), Filter{Query: "a"})))
	assert.Equal(t, []int{2}, ids(Visible(sampleCatalog(), Filter{Query: "VEG"})))
	assert.Equal(t, []int{3}, ids(Visible(sampleCatalog(), Filter{Query: "camar"})))
}

func TestVisible_FiltersAreConjunctive(t *testing.T) {
	a := categoryA
	assert.Equal(t, []int{3}, ids(Visible(sampleCatalog(), Filter{Category: &a, Query: "camar"})))
	assert.Empty(t, Visible(sampleCatalog(), Filter{Category: &a, Query: "veggie"}))
}

func TestVisible_EmptyResultsAreNotNil(t *testing.T) {
	assert.NotNil(t, Visible(nil, Filter{Query: "x"}))
	assert.Len(t, Visible(sampleCatalog(), Filter{Query: "pizza"}), 0)
}

func TestSelection_CurrentIsACopy(t *testing.T) {
	var sel Selection
	sel.Select(categoryA)
	cur := sel.Current()
	*cur = 99
	assert.Equal(t, categoryA, *sel.Current())
}
