package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
	"github.com/andrescamacho/craftrules-go/test/helpers"
)

func seedRecipes(t *testing.T, f *snapshotFixture) {
	t.Helper()

	axe := helpers.Material(10, "Hache en pierre")
	plank := helpers.Material(11, "Planche")

	stoneAxe := helpers.Recipe(1, "Hache en pierre", axe, 5,
		helpers.Ingredient(f.wood, 2),
		helpers.Ingredient(f.stone, 3),
	)
	planks := helpers.Recipe(2, "Planche", plank, 1,
		helpers.Ingredient(f.wood, 1),
	)

	require.NoError(t, f.catalogRepo.ReplaceAll(context.Background(),
		[]*catalog.Material{f.wood, f.stone, f.apple, axe, plank},
		[]*catalog.Recipe{stoneAxe, planks}))
}

func recipeNames(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(*queries.RecipeRow).Name)
	}
	return out
}

func TestRecipeSearchHandler_FlagsCraftability(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	// Enough wood for planks, not enough stone for the axe.
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 5),
		helpers.Entry(102, f.stone, 1),
	})

	handler := queries.NewRecipeSearchHandler(f.catalogRepo, f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{})
	require.NoError(t, err)
	result := response.(*queries.RecipeSearchResult)

	require.Len(t, result.View.Items, 2)
	byName := make(map[string]*queries.RecipeRow)
	for _, item := range result.View.Items {
		row := item.(*queries.RecipeRow)
		byName[row.Name] = row
	}

	assert.False(t, byName["Hache en pierre"].Craftable)
	assert.False(t, byName["Hache en pierre"].HasIngredients)
	assert.True(t, byName["Planche"].Craftable)
	assert.True(t, byName["Planche"].HasIngredients)

	assert.Equal(t, string(catalog.CategoryMinerais), byName["Hache en pierre"].Category)
	assert.Equal(t, string(catalog.CategoryBois), byName["Planche"].Category)
}

func TestRecipeSearchHandler_CraftableFilter(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 5),
		helpers.Entry(102, f.stone, 1),
	})

	handler := queries.NewRecipeSearchHandler(f.catalogRepo, f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{
		State: listing.State{Toggles: map[string]bool{queries.FilterCraftable: true}},
	})
	require.NoError(t, err)
	result := response.(*queries.RecipeSearchResult)

	assert.Equal(t, []string{"Planche"}, recipeNames(result.View.Items))
	assert.Equal(t, 2, result.View.TotalCount)
	assert.Equal(t, 1, result.View.FilteredCount)
}

func TestRecipeSearchHandler_MultiplierScalesCraftability(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	// Exactly one axe worth of stone.
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 10),
		helpers.Entry(102, f.stone, 3),
	})

	handler := queries.NewRecipeSearchHandler(f.catalogRepo, f.inventoryRepo, f.memoizer)

	single, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{Multiplier: 1})
	require.NoError(t, err)
	double, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{Multiplier: 2})
	require.NoError(t, err)

	singleRows := single.(*queries.RecipeSearchResult).View.Items
	doubleRows := double.(*queries.RecipeSearchResult).View.Items

	craftable := func(items []any, name string) bool {
		for _, item := range items {
			row := item.(*queries.RecipeRow)
			if row.Name == name {
				return row.Craftable
			}
		}
		t.Fatalf("recipe %s not in view", name)
		return false
	}

	assert.True(t, craftable(singleRows, "Hache en pierre"))
	assert.False(t, craftable(doubleRows, "Hache en pierre"))
	// HasIngredients stays anchored at a single craft.
	for _, item := range doubleRows {
		row := item.(*queries.RecipeRow)
		if row.Name == "Hache en pierre" {
			assert.True(t, row.HasIngredients)
		}
	}
}

func TestRecipeSearchHandler_SearchByResultMaterial(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, nil)

	handler := queries.NewRecipeSearchHandler(f.catalogRepo, f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{
		State: listing.State{Search: "planche"},
	})
	require.NoError(t, err)
	result := response.(*queries.RecipeSearchResult)

	assert.Equal(t, []string{"Planche"}, recipeNames(result.View.Items))
}

func TestRecipeSearchHandler_GroupedView(t *testing.T) {
	f := newSnapshotFixture(t)
	seedRecipes(t, f)
	f.seedInventory(t, nil)

	handler := queries.NewRecipeSearchHandler(f.catalogRepo, f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.RecipeSearchQuery{Grouped: true})
	require.NoError(t, err)
	result := response.(*queries.RecipeSearchResult)

	assert.Nil(t, result.View.Items)
	assert.Len(t, result.View.Groups[string(catalog.CategoryMinerais)], 1)
	assert.Len(t, result.View.Groups[string(catalog.CategoryBois)], 1)
}
