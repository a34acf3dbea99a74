package catalog

// Catalog indexes a materials/recipes snapshot for id lookups.
type Catalog struct {
	materials map[int]*Material
	recipes   map[int]*Recipe

	orderedRecipes []*Recipe
}

// NewCatalog builds an index over one snapshot. Recipe order is preserved
// so that listings stay deterministic across calls.
func NewCatalog(materials []*Material, recipes []*Recipe) *Catalog {
	c := &Catalog{
		materials:      make(map[int]*Material, len(materials)),
		recipes:        make(map[int]*Recipe, len(recipes)),
		orderedRecipes: make([]*Recipe, 0, len(recipes)),
	}
	for _, m := range materials {
		if m != nil {
			c.materials[m.ID] = m
		}
	}
	for _, r := range recipes {
		if r != nil {
			c.recipes[r.ID] = r
			c.orderedRecipes = append(c.orderedRecipes, r)
		}
	}
	return c
}

// MaterialByID returns the material for an id, or nil when the reference
// is dangling in this snapshot.
func (c *Catalog) MaterialByID(id int) *Material {
	return c.materials[id]
}

// RecipeByID returns the recipe for an id, or nil when unknown.
func (c *Catalog) RecipeByID(id int) *Recipe {
	return c.recipes[id]
}

// Recipes returns all recipes in snapshot order.
func (c *Catalog) Recipes() []*Recipe {
	return c.orderedRecipes
}

// MaterialCount returns the number of indexed materials.
func (c *Catalog) MaterialCount() int {
	return len(c.materials)
}
