package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
)

// GormCatalogRepository implements catalog.Repository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListMaterials retrieves all cached materials ordered by id.
func (r *GormCatalogRepository) ListMaterials(ctx context.Context) ([]*catalog.Material, error) {
	var models []MaterialModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*catalog.Material, 0, len(models))
	for i := range models {
		materials = append(materials, modelToMaterial(&models[i]))
	}
	return materials, nil
}

// ListRecipes retrieves all cached recipes with resolved material and
// workstation references. A reference to a missing row resolves to nil
// so a stale catalog stays loadable.
func (r *GormCatalogRepository) ListRecipes(ctx context.Context) ([]*catalog.Recipe, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	materials, workstations, err := r.referenceIndexes(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]*catalog.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, modelToRecipe(&models[i], materials, workstations))
	}
	return recipes, nil
}

// FindRecipeByID retrieves one recipe by id.
func (r *GormCatalogRepository) FindRecipeByID(ctx context.Context, recipeID int) (*catalog.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("id = ?", recipeID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, catalog.NewRecipeNotFoundError(recipeID)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}

	materials, workstations, err := r.referenceIndexes(ctx)
	if err != nil {
		return nil, err
	}
	return modelToRecipe(&model, materials, workstations), nil
}

// ReplaceAll swaps the cached catalog snapshot inside one transaction.
func (r *GormCatalogRepository) ReplaceAll(ctx context.Context, materials []*catalog.Material, recipes []*catalog.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&RecipeIngredientModel{}, &RecipeModel{}, &MaterialModel{}, &WorkstationModel{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}

		workstationSeen := make(map[int]bool)
		for _, m := range materials {
			if m == nil {
				continue
			}
			if err := tx.Create(materialToModel(m)).Error; err != nil {
				return fmt.Errorf("failed to store material %d: %w", m.ID, err)
			}
		}
		for _, recipe := range recipes {
			if recipe == nil {
				continue
			}
			model, workstation := recipeToModel(recipe)
			if workstation != nil && !workstationSeen[workstation.ID] {
				workstationSeen[workstation.ID] = true
				if err := tx.Create(&WorkstationModel{ID: workstation.ID, Name: workstation.Name}).Error; err != nil {
					return fmt.Errorf("failed to store workstation %d: %w", workstation.ID, err)
				}
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store recipe %d: %w", recipe.ID, err)
			}
		}
		return nil
	})
}

func (r *GormCatalogRepository) referenceIndexes(ctx context.Context) (map[int]*catalog.Material, map[int]*catalog.Workstation, error) {
	var materialModels []MaterialModel
	if err := r.db.WithContext(ctx).Find(&materialModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load materials: %w", err)
	}
	materials := make(map[int]*catalog.Material, len(materialModels))
	for i := range materialModels {
		m := modelToMaterial(&materialModels[i])
		materials[m.ID] = m
	}

	var workstationModels []WorkstationModel
	if err := r.db.WithContext(ctx).Find(&workstationModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load workstations: %w", err)
	}
	workstations := make(map[int]*catalog.Workstation, len(workstationModels))
	for i := range workstationModels {
		workstations[workstationModels[i].ID] = &catalog.Workstation{
			ID:   workstationModels[i].ID,
			Name: workstationModels[i].Name,
		}
	}

	return materials, workstations, nil
}

func modelToMaterial(model *MaterialModel) *catalog.Material {
	return &catalog.Material{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		IsFood:        model.IsFood,
		IsEquipment:   model.IsEquipment,
		Rarity:        catalog.Rarity(model.Rarity),
		Weight:        model.Weight,
		Attack:        model.Attack,
		Defense:       model.Defense,
		Durability:    model.Durability,
		RestoreHealth: model.RestoreHealth,
		RestoreEnergy: model.RestoreEnergy,
		UpdatedAt:     model.UpdatedAt,
	}
}

func materialToModel(m *catalog.Material) *MaterialModel {
	return &MaterialModel{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		IsFood:        m.IsFood,
		IsEquipment:   m.IsEquipment,
		Rarity:        string(m.Rarity),
		Weight:        m.Weight,
		Attack:        m.Attack,
		Defense:       m.Defense,
		Durability:    m.Durability,
		RestoreHealth: m.RestoreHealth,
		RestoreEnergy: m.RestoreEnergy,
		UpdatedAt:     m.UpdatedAt,
	}
}

func modelToRecipe(model *RecipeModel, materials map[int]*catalog.Material, workstations map[int]*catalog.Workstation) *catalog.Recipe {
	recipe := &catalog.Recipe{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		EnergyCost:     model.EnergyCost,
		ResultMaterial: materials[model.ResultMaterialID],
		ResultQuantity: model.ResultQuantity,
		UpdatedAt:      model.UpdatedAt,
	}
	if model.RequiredWorkstationID != nil {
		recipe.RequiredWorkstation = workstations[*model.RequiredWorkstationID]
		if recipe.RequiredWorkstation == nil {
			// Keep the requirement visible even when the workstation row
			// is missing from this snapshot.
			recipe.RequiredWorkstation = &catalog.Workstation{ID: *model.RequiredWorkstationID}
		}
	}
	for _, ing := range model.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, catalog.RecipeIngredient{
			Material: materials[ing.MaterialID],
			Quantity: ing.Quantity,
		})
	}
	return recipe
}

func recipeToModel(recipe *catalog.Recipe) (*RecipeModel, *catalog.Workstation) {
	model := &RecipeModel{
		ID:             recipe.ID,
		Name:           recipe.Name,
		Description:    recipe.Description,
		EnergyCost:     recipe.EnergyCost,
		ResultQuantity: recipe.ResultQuantity,
		UpdatedAt:      recipe.UpdatedAt,
	}
	if recipe.ResultMaterial != nil {
		model.ResultMaterialID = recipe.ResultMaterial.ID
	}
	var workstation *catalog.Workstation
	if recipe.RequiredWorkstation != nil {
		workstation = recipe.RequiredWorkstation
		id := recipe.RequiredWorkstation.ID
		model.RequiredWorkstationID = &id
	}
	for i, ing := range recipe.Ingredients {
		ingModel := RecipeIngredientModel{
			RecipeID: recipe.ID,
			Quantity: ing.Quantity,
			Position: i,
		}
		if ing.Material != nil {
			ingModel.MaterialID = ing.Material.ID
		}
		model.Ingredients = append(model.Ingredients, ingModel)
	}
	return model, workstation
}
