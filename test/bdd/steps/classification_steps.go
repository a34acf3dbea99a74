package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
)

type classificationContext struct {
	material *catalog.Material
	recipe   *catalog.Recipe
	category catalog.Category
}

// InitializeClassificationScenario registers the material classification steps.
func InitializeClassificationScenario(ctx *godog.ScenarioContext) {
	c := &classificationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*c = classificationContext{}
		return ctx, nil
	})

	ctx.Step(`^a material named "([^"]*)"$`, c.aMaterialNamed)
	ctx.Step(`^a material named "([^"]*)" flagged as food$`, c.aMaterialNamedFlaggedAsFood)
	ctx.Step(`^a recipe producing a material named "([^"]*)"$`, c.aRecipeProducingAMaterialNamed)
	ctx.Step(`^I classify the material$`, c.iClassifyTheMaterial)
	ctx.Step(`^I classify the recipe$`, c.iClassifyTheRecipe)
	ctx.Step(`^the category should be "([^"]*)"$`, c.theCategoryShouldBe)
}

func (c *classificationContext) aMaterialNamed(name string) error {
	c.material = &catalog.Material{ID: 1, Name: name}
	return nil
}

func (c *classificationContext) aMaterialNamedFlaggedAsFood(name string) error {
	c.material = &catalog.Material{ID: 1, Name: name, IsFood: true}
	return nil
}

func (c *classificationContext) aRecipeProducingAMaterialNamed(name string) error {
	c.recipe = &catalog.Recipe{
		ID:             1,
		Name:           name,
		ResultMaterial: &catalog.Material{ID: 1, Name: name},
	}
	return nil
}

func (c *classificationContext) iClassifyTheMaterial() error {
	if c.material == nil {
		return fmt.Errorf("no material defined")
	}
	c.category = catalog.Classify(c.material)
	return nil
}

func (c *classificationContext) iClassifyTheRecipe() error {
	if c.recipe == nil {
		return fmt.Errorf("no recipe defined")
	}
	c.category = catalog.ClassifyRecipe(c.recipe)
	return nil
}

func (c *classificationContext) theCategoryShouldBe(expected string) error {
	if string(c.category) != expected {
		return fmt.Errorf("expected category %q, got %q", expected, c.category)
	}
	return nil
}
