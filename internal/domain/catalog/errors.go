package catalog

import "fmt"

// RecipeNotFoundError indicates a recipe id absent from the current snapshot.
type RecipeNotFoundError struct {
	RecipeID int
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe not found: %d", e.RecipeID)
}

func NewRecipeNotFoundError(recipeID int) *RecipeNotFoundError {
	return &RecipeNotFoundError{RecipeID: recipeID}
}

// MaterialNotFoundError indicates a material id absent from the current snapshot.
type MaterialNotFoundError struct {
	MaterialID int
}

func (e *MaterialNotFoundError) Error() string {
	return fmt.Sprintf("material not found: %d", e.MaterialID)
}

func NewMaterialNotFoundError(materialID int) *MaterialNotFoundError {
	return &MaterialNotFoundError{MaterialID: materialID}
}
