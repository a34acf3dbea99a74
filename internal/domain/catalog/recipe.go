package catalog

import (
	"fmt"
	"time"
)

// RecipeIngredient is one required input of a recipe.
// Material may be nil when the backend returned a dangling reference;
// the craftability resolver reports that case instead of failing.
type RecipeIngredient struct {
	Material *Material `json:"material"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

// Recipe describes how a material is produced.
// A recipe has no stored category: it is classified through its result material.
type Recipe struct {
	ID                  int                `json:"id" validate:"required,gt=0"`
	Name                string             `json:"name" validate:"required"`
	Description         string             `json:"description"`
	EnergyCost          int                `json:"energy_cost" validate:"gte=0"`
	ResultMaterial      *Material          `json:"result_material"`
	ResultQuantity      int                `json:"result_quantity" validate:"gte=1"`
	RequiredWorkstation *Workstation       `json:"required_workstation"`
	Ingredients         []RecipeIngredient `json:"ingredients"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func (r *Recipe) String() string {
	return fmt.Sprintf("Recipe(%d, %s)", r.ID, r.Name)
}

// HasResolvedReferences reports whether the result material and every
// ingredient material resolved against the catalog.
func (r *Recipe) HasResolvedReferences() bool {
	if r.ResultMaterial == nil {
		return false
	}
	for _, ing := range r.Ingredients {
		if ing.Material == nil {
			return false
		}
	}
	return true
}
