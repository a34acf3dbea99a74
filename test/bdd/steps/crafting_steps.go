package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/crafting"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

type craftingContext struct {
	materials    map[int]*catalog.Material
	recipe       *catalog.Recipe
	entries      []*inventory.Entry
	workstations []*inventory.OwnedWorkstation
	energy       int

	verdict  crafting.Verdict
	maxBatch int
}

// InitializeCraftingScenario registers the craftability decision steps.
func InitializeCraftingScenario(ctx *godog.ScenarioContext) {
	c := &craftingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*c = craftingContext{materials: make(map[int]*catalog.Material)}
		return ctx, nil
	})

	ctx.Step(`^the catalog contains materials:$`, c.theCatalogContainsMaterials)
	ctx.Step(`^a recipe "([^"]*)" producing material (\d+) costing (\d+) energy with ingredients:$`, c.aRecipeWithIngredients)
	ctx.Step(`^the recipe requires workstation (\d+)$`, c.theRecipeRequiresWorkstation)
	ctx.Step(`^the player owns workstation (\d+)$`, c.thePlayerOwnsWorkstation)
	ctx.Step(`^the player inventory contains:$`, c.thePlayerInventoryContains)
	ctx.Step(`^the player has (\d+) energy$`, c.thePlayerHasEnergy)
	ctx.Step(`^I check crafting (\d+) of the recipe$`, c.iCheckCrafting)
	ctx.Step(`^I compute the largest craftable batch$`, c.iComputeTheLargestCraftableBatch)
	ctx.Step(`^the craft should be allowed$`, c.theCraftShouldBeAllowed)
	ctx.Step(`^the craft should be refused$`, c.theCraftShouldBeRefused)
	ctx.Step(`^there should be (\d+) failure reasons$`, c.thereShouldBeNFailureReasons)
	ctx.Step(`^the failure reasons should include "([^"]*)"$`, c.theFailureReasonsShouldInclude)
	ctx.Step(`^the largest craftable batch should be (\d+)$`, c.theLargestCraftableBatchShouldBe)
}

func (c *craftingContext) theCatalogContainsMaterials(table *godog.Table) error {
	for _, row := range dataRows(table) {
		id, err := intCell(table, row, "id")
		if err != nil {
			return err
		}
		name, err := cellValue(table, row, "name")
		if err != nil {
			return err
		}
		c.materials[id] = &catalog.Material{ID: id, Name: name}
	}
	return nil
}

func (c *craftingContext) aRecipeWithIngredients(name string, resultID, energyCost int, table *godog.Table) error {
	result, ok := c.materials[resultID]
	if !ok {
		return fmt.Errorf("unknown result material %d", resultID)
	}

	recipe := &catalog.Recipe{
		ID:             1,
		Name:           name,
		EnergyCost:     energyCost,
		ResultMaterial: result,
		ResultQuantity: 1,
	}
	for _, row := range dataRows(table) {
		materialID, err := intCell(table, row, "material")
		if err != nil {
			return err
		}
		quantity, err := intCell(table, row, "quantity")
		if err != nil {
			return err
		}
		material, ok := c.materials[materialID]
		if !ok {
			return fmt.Errorf("unknown ingredient material %d", materialID)
		}
		recipe.Ingredients = append(recipe.Ingredients, catalog.RecipeIngredient{
			Material: material,
			Quantity: quantity,
		})
	}
	c.recipe = recipe
	return nil
}

func (c *craftingContext) theRecipeRequiresWorkstation(workstationID int) error {
	if c.recipe == nil {
		return fmt.Errorf("no recipe defined")
	}
	c.recipe.RequiredWorkstation = &catalog.Workstation{ID: workstationID}
	return nil
}

func (c *craftingContext) thePlayerOwnsWorkstation(workstationID int) error {
	c.workstations = append(c.workstations, &inventory.OwnedWorkstation{
		Workstation: &catalog.Workstation{ID: workstationID},
		Quantity:    1,
	})
	return nil
}

func (c *craftingContext) thePlayerInventoryContains(table *godog.Table) error {
	for i, row := range dataRows(table) {
		materialID, err := intCell(table, row, "material")
		if err != nil {
			return err
		}
		quantity, err := intCell(table, row, "quantity")
		if err != nil {
			return err
		}
		material, ok := c.materials[materialID]
		if !ok {
			return fmt.Errorf("unknown material %d", materialID)
		}
		c.entries = append(c.entries, &inventory.Entry{
			ID:       i + 1,
			Material: material,
			Quantity: quantity,
		})
	}
	return nil
}

func (c *craftingContext) thePlayerHasEnergy(energy int) error {
	c.energy = energy
	return nil
}

func (c *craftingContext) iCheckCrafting(multiplier int) error {
	if c.recipe == nil {
		return fmt.Errorf("no recipe defined")
	}
	c.verdict = crafting.CanCraft(c.recipe, multiplier, c.entries, c.workstations, c.energy)
	return nil
}

func (c *craftingContext) iComputeTheLargestCraftableBatch() error {
	if c.recipe == nil {
		return fmt.Errorf("no recipe defined")
	}
	c.maxBatch = crafting.MaxCraftable(c.recipe, c.entries, c.workstations, c.energy, 999)
	return nil
}

func (c *craftingContext) theCraftShouldBeAllowed() error {
	if !c.verdict.OK {
		return fmt.Errorf("expected craftable, got reasons: %v", c.verdict.Reasons)
	}
	return nil
}

func (c *craftingContext) theCraftShouldBeRefused() error {
	if c.verdict.OK {
		return fmt.Errorf("expected refusal, craft was allowed")
	}
	return nil
}

func (c *craftingContext) thereShouldBeNFailureReasons(expected int) error {
	if len(c.verdict.Reasons) != expected {
		return fmt.Errorf("expected %d reasons, got %d: %v", expected, len(c.verdict.Reasons), c.verdict.Reasons)
	}
	return nil
}

func (c *craftingContext) theFailureReasonsShouldInclude(code string) error {
	for _, reason := range c.verdict.Reasons {
		if string(reason.Code) == code {
			return nil
		}
	}
	return fmt.Errorf("no reason with code %q in %v", code, c.verdict.Reasons)
}

func (c *craftingContext) theLargestCraftableBatchShouldBe(expected int) error {
	if c.maxBatch != expected {
		return fmt.Errorf("expected largest batch %d, got %d", expected, c.maxBatch)
	}
	return nil
}
