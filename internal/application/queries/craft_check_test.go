package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/crafting"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/test/helpers"
)

func TestCraftCheckHandler_CraftableRecipe(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 8),
		helpers.Entry(102, f.stone, 12),
	})

	handler := queries.NewCraftCheckHandler(f.catalogRepo, f.inventoryRepo)

	response, err := handler.Handle(context.Background(), &queries.CraftCheckQuery{RecipeID: 1, Multiplier: 1})
	require.NoError(t, err)
	result := response.(*queries.CraftCheckResult)

	assert.True(t, result.Verdict.OK)
	assert.Equal(t, "Hache en pierre", result.Recipe.Name)
	// Wood allows 4 axes, stone 4, energy (50 / 5) 10.
	assert.Equal(t, 4, result.MaxCraftable)
}

func TestCraftCheckHandler_ReportsAllFailures(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 1),
	})

	handler := queries.NewCraftCheckHandler(f.catalogRepo, f.inventoryRepo)

	response, err := handler.Handle(context.Background(), &queries.CraftCheckQuery{RecipeID: 1, Multiplier: 1})
	require.NoError(t, err)
	result := response.(*queries.CraftCheckResult)

	require.False(t, result.Verdict.OK)
	require.Len(t, result.Verdict.Reasons, 2)
	for _, reason := range result.Verdict.Reasons {
		assert.Equal(t, crafting.ReasonInsufficientIngredient, reason.Code)
	}
	assert.Equal(t, 0, result.MaxCraftable)
}

func TestCraftCheckHandler_UnknownRecipe(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, nil)

	handler := queries.NewCraftCheckHandler(f.catalogRepo, f.inventoryRepo)

	_, err := handler.Handle(context.Background(), &queries.CraftCheckQuery{RecipeID: 99, Multiplier: 1})

	require.Error(t, err)
	var notFound *catalog.RecipeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCraftCheckHandler_InvalidMultiplier(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 8),
		helpers.Entry(102, f.stone, 12),
	})

	handler := queries.NewCraftCheckHandler(f.catalogRepo, f.inventoryRepo)

	response, err := handler.Handle(context.Background(), &queries.CraftCheckQuery{RecipeID: 1, Multiplier: 0})
	require.NoError(t, err)
	result := response.(*queries.CraftCheckResult)

	require.False(t, result.Verdict.OK)
	require.Len(t, result.Verdict.Reasons, 1)
	assert.Equal(t, crafting.ReasonInvalidQuantity, result.Verdict.Reasons[0].Code)
	// The scan still reports what a valid multiplier could do.
	assert.Equal(t, 4, result.MaxCraftable)
}
