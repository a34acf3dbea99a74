package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftrules-go/internal/application/common"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/crafting"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

// RecipeSearchQuery asks for the filterable recipe catalog view.
// Multiplier scales the craftability predicate; it defaults to 1.
type RecipeSearchQuery struct {
	State      listing.State
	Multiplier int
	Grouped    bool
}

// RecipeSearchResult carries the engine view over recipe rows.
type RecipeSearchResult struct {
	View *listing.Result
}

// RecipeSearchHandler builds recipe rows against the current snapshot
// (classifier category, craftability flags) and runs the listing engine.
type RecipeSearchHandler struct {
	catalogRepo   catalog.Repository
	inventoryRepo inventory.Repository
	queries       *listing.Memoizer
}

// NewRecipeSearchHandler creates a new handler.
func NewRecipeSearchHandler(catalogRepo catalog.Repository, inventoryRepo inventory.Repository, queries *listing.Memoizer) *RecipeSearchHandler {
	return &RecipeSearchHandler{catalogRepo: catalogRepo, inventoryRepo: inventoryRepo, queries: queries}
}

// Handle executes the recipe search query.
func (h *RecipeSearchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*RecipeSearchQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	multiplier := query.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	recipes, err := h.catalogRepo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	entries, err := h.inventoryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	workstations, err := h.inventoryRepo.ListWorkstations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workstations: %w", err)
	}
	state, err := h.inventoryRepo.PlayerState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	rows := make([]any, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, buildRecipeRow(r, multiplier, entries, workstations, state.Energy))
	}

	// Live state feeds the memoization key: a fresh energy or inventory
	// snapshot must never reuse a stale craftability view.
	live := struct {
		Energy       int                           `json:"energy"`
		Multiplier   int                           `json:"multiplier"`
		Inventory    []*inventory.Entry            `json:"inventory"`
		Workstations []*inventory.OwnedWorkstation `json:"workstations"`
	}{state.Energy, multiplier, entries, workstations}

	view := h.queries.Query(listing.Flat(rows), RecipeListConfig(query.Grouped), query.State, live)

	return &RecipeSearchResult{View: view}, nil
}

// buildRecipeRow derives the listing row for one recipe: classifier
// category, result rarity, and craftability flags at the requested
// multiplier.
func buildRecipeRow(
	r *catalog.Recipe,
	multiplier int,
	entries []*inventory.Entry,
	workstations []*inventory.OwnedWorkstation,
	energy int,
) *RecipeRow {
	verdict := crafting.CanCraft(r, multiplier, entries, workstations, energy)

	// Ingredient availability alone, at multiplier 1: met when no
	// ingredient or reference reason appears in the base verdict.
	hasIngredients := true
	for _, reason := range crafting.CanCraft(r, 1, entries, workstations, energy).Reasons {
		if reason.Code == crafting.ReasonInsufficientIngredient || reason.Code == crafting.ReasonUnresolvedReference {
			hasIngredients = false
			break
		}
	}

	rarity := ""
	if r.ResultMaterial != nil {
		rarity = string(r.ResultMaterial.Rarity)
	}

	return &RecipeRow{
		Recipe:         r,
		Name:           r.Name,
		Description:    r.Description,
		Category:       string(catalog.ClassifyRecipe(r)),
		Rarity:         rarity,
		Quantity:       r.ResultQuantity,
		EnergyCost:     r.EnergyCost,
		Craftable:      verdict.OK,
		HasIngredients: hasIngredients,
		UpdatedAt:      r.UpdatedAt,
	}
}
