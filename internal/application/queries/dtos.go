package queries

import (
	"time"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

// InventoryRow is the listing view of one inventory entry. Category is
// precomputed with the classifier so the engine can facet and group on a
// plain field; the raw material stays reachable for nested-path search.
type InventoryRow struct {
	Entry     *inventory.Entry  `json:"entry"`
	Material  *catalog.Material `json:"material"`
	Category  string            `json:"category"`
	Quantity  int               `json:"quantity"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RecipeRow is the listing view of one recipe. Craftability flags are
// precomputed against the current snapshot and plugged into the engine
// as custom filter predicates.
type RecipeRow struct {
	Recipe         *catalog.Recipe `json:"recipe"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Rarity         string          `json:"rarity"`
	Quantity       int             `json:"quantity"`
	EnergyCost     int             `json:"energy_cost"`
	Craftable      bool            `json:"craftable"`
	HasIngredients bool            `json:"has_ingredients"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// FilterCraftable is the name of the recipes custom filter backed by the
// craftability resolver.
const FilterCraftable = "craftable"

// FilterHasIngredients keeps recipes whose ingredient requirements are
// met at multiplier 1, ignoring energy and workstations.
const FilterHasIngredients = "has-ingredients"

// FilterInStock keeps inventory entries with a positive quantity.
const FilterInStock = "in-stock"

// InventoryListConfig is the declarative engine descriptor for the
// inventory collection.
func InventoryListConfig() listing.Config {
	return listing.Config{
		SearchFields:  []string{"material.name", "material.description"},
		CategoryField: "category",
		RarityField:   "material.rarity",
		NameField:     "material.name",
		DefaultSort:   listing.SortByName,
		Grouped:       true,
		CustomFilters: []listing.CustomFilter{
			{
				Name: FilterInStock,
				Predicate: func(item any) bool {
					row, ok := item.(*InventoryRow)
					return ok && row.Quantity > 0
				},
			},
		},
	}
}

// RecipeListConfig is the declarative engine descriptor for the recipe
// catalog.
func RecipeListConfig(grouped bool) listing.Config {
	return listing.Config{
		SearchFields:  []string{"name", "description", "recipe.result_material.name"},
		CategoryField: "category",
		RarityField:   "rarity",
		DefaultSort:   listing.SortByName,
		Grouped:       grouped,
		CustomFilters: []listing.CustomFilter{
			{
				Name: FilterCraftable,
				Predicate: func(item any) bool {
					row, ok := item.(*RecipeRow)
					return ok && row.Craftable
				},
			},
			{
				Name: FilterHasIngredients,
				Predicate: func(item any) bool {
					row, ok := item.(*RecipeRow)
					return ok && row.HasIngredients
				},
			},
		},
	}
}
