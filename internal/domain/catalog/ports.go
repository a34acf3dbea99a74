package catalog

import "context"

// Repository provides access to the cached catalog snapshot.
type Repository interface {
	ListMaterials(ctx context.Context) ([]*Material, error)
	ListRecipes(ctx context.Context) ([]*Recipe, error)
	FindRecipeByID(ctx context.Context, recipeID int) (*Recipe, error)

	// ReplaceAll swaps the cached snapshot for a fresh one fetched from
	// the backend. The previous snapshot is discarded wholesale.
	ReplaceAll(ctx context.Context, materials []*Material, recipes []*Recipe) error
}
