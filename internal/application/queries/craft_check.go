package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftrules-go/internal/application/common"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/crafting"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

// maxCraftableScan bounds the multiplier scan when computing the largest
// craftable batch.
const maxCraftableScan = 999

// CraftCheckQuery asks whether a recipe is craftable at a multiplier.
type CraftCheckQuery struct {
	RecipeID   int
	Multiplier int
}

// CraftCheckResult is the craftability verdict plus the largest batch
// the current snapshot allows.
type CraftCheckResult struct {
	Recipe       *catalog.Recipe
	Verdict      crafting.Verdict
	MaxCraftable int
}

// CraftCheckHandler resolves a recipe against the cached snapshot and
// delegates the decision to the craftability resolver.
type CraftCheckHandler struct {
	catalogRepo   catalog.Repository
	inventoryRepo inventory.Repository
}

// NewCraftCheckHandler creates a new handler.
func NewCraftCheckHandler(catalogRepo catalog.Repository, inventoryRepo inventory.Repository) *CraftCheckHandler {
	return &CraftCheckHandler{catalogRepo: catalogRepo, inventoryRepo: inventoryRepo}
}

// Handle executes the craft check query.
func (h *CraftCheckHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CraftCheckQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipe, err := h.catalogRepo.FindRecipeByID(ctx, query.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("craft check failed: %w", err)
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

	verdict := crafting.CanCraft(recipe, query.Multiplier, entries, workstations, state.Energy)
	common.LoggerFromContext(ctx).Log("INFO", "craft check evaluated", map[string]interface{}{
		"recipe":     recipe.ID,
		"multiplier": query.Multiplier,
		"ok":         verdict.OK,
	})

	return &CraftCheckResult{
		Recipe:       recipe,
		Verdict:      verdict,
		MaxCraftable: crafting.MaxCraftable(recipe, entries, workstations, state.Energy, maxCraftableScan),
	}, nil
}
