package helpers

import (
	"time"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

// Material builds a minimal material fixture.
func Material(id int, name string) *catalog.Material {
	return &catalog.Material{
		ID:        id,
		Name:      name,
		Rarity:    catalog.RarityCommon,
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FoodMaterial builds a material flagged as food.
func FoodMaterial(id int, name string) *catalog.Material {
	m := Material(id, name)
	m.IsFood = true
	return m
}

// Entry builds an inventory entry fixture for a material.
func Entry(id int, material *catalog.Material, quantity int) *inventory.Entry {
	return &inventory.Entry{
		ID:        id,
		Material:  material,
		Quantity:  quantity,
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Recipe builds a recipe fixture producing the given material.
func Recipe(id int, name string, result *catalog.Material, energyCost int, ingredients ...catalog.RecipeIngredient) *catalog.Recipe {
	return &catalog.Recipe{
		ID:             id,
		Name:           name,
		EnergyCost:     energyCost,
		ResultMaterial: result,
		ResultQuantity: 1,
		Ingredients:    ingredients,
		UpdatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Ingredient builds one recipe ingredient.
func Ingredient(material *catalog.Material, quantity int) catalog.RecipeIngredient {
	return catalog.RecipeIngredient{Material: material, Quantity: quantity}
}

// OwnedWorkstation builds an owned workstation fixture.
func OwnedWorkstation(id int, name string, quantity int) *inventory.OwnedWorkstation {
	return &inventory.OwnedWorkstation{
		Workstation: &catalog.Workstation{ID: id, Name: name},
		Quantity:    quantity,
	}
}
