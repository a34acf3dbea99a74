package persistence

import "time"

// MaterialModel represents the materials table.
type MaterialModel struct {
	ID            int       `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description;type:text"`
	IsFood        bool      `gorm:"column:is_food;not null;default:false"`
	IsEquipment   bool      `gorm:"column:is_equipment;not null;default:false"`
	Rarity        string    `gorm:"column:rarity"`
	Weight        float64   `gorm:"column:weight;not null;default:0"`
	Attack        int       `gorm:"column:attack;not null;default:0"`
	Defense       int       `gorm:"column:defense;not null;default:0"`
	Durability    int       `gorm:"column:durability;not null;default:0"`
	RestoreHealth int       `gorm:"column:restore_health;not null;default:0"`
	RestoreEnergy int       `gorm:"column:restore_energy;not null;default:0"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// WorkstationModel represents the workstations table.
type WorkstationModel struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (WorkstationModel) TableName() string {
	return "workstations"
}

// RecipeModel represents the recipes table. Material and workstation
// references are stored as plain ids; dangling ids surface as nil
// pointers on the domain side, never as load errors.
type RecipeModel struct {
	ID                    int       `gorm:"column:id;primaryKey"`
	Name                  string    `gorm:"column:name;not null"`
	Description           string    `gorm:"column:description;type:text"`
	EnergyCost            int       `gorm:"column:energy_cost;not null;default:0"`
	ResultMaterialID      int       `gorm:"column:result_material_id;not null"`
	ResultQuantity        int       `gorm:"column:result_quantity;not null;default:1"`
	RequiredWorkstationID *int      `gorm:"column:required_workstation_id"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel represents the recipe_ingredients table.
type RecipeIngredientModel struct {
	ID         int `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeID   int `gorm:"column:recipe_id;index;not null"`
	MaterialID int `gorm:"column:material_id;not null"`
	Quantity   int `gorm:"column:quantity;not null"`
	Position   int `gorm:"column:position;not null;default:0"`
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// SnapshotModel identifies one player snapshot fetch. Only the latest
// snapshot is kept; ReplaceSnapshot swaps it wholesale.
type SnapshotModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (SnapshotModel) TableName() string {
	return "snapshots"
}

// InventoryEntryModel represents the inventory_entries table.
type InventoryEntryModel struct {
	ID                int       `gorm:"column:id;primaryKey;autoIncrement"`
	SnapshotID        string    `gorm:"column:snapshot_id;index;not null"`
	EntryID           int       `gorm:"column:entry_id;not null"`
	MaterialID        int       `gorm:"column:material_id;not null"`
	Quantity          int       `gorm:"column:quantity;not null;default:0"`
	DurabilityCurrent *int      `gorm:"column:durability_current"`
	DurabilityMax     *int      `gorm:"column:durability_max"`
	Quality           *float64  `gorm:"column:quality"`
	Position          int       `gorm:"column:position;not null;default:0"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (InventoryEntryModel) TableName() string {
	return "inventory_entries"
}

// OwnedWorkstationModel represents the owned_workstations table.
type OwnedWorkstationModel struct {
	ID            int    `gorm:"column:id;primaryKey;autoIncrement"`
	SnapshotID    string `gorm:"column:snapshot_id;index;not null"`
	WorkstationID int    `gorm:"column:workstation_id;not null"`
	Quantity      int    `gorm:"column:quantity;not null;default:1"`
}

func (OwnedWorkstationModel) TableName() string {
	return "owned_workstations"
}

// PlayerStateModel represents the player_states table.
type PlayerStateModel struct {
	SnapshotID string `gorm:"column:snapshot_id;primaryKey"`
	Energy     int    `gorm:"column:energy;not null;default:0"`
	MaxEnergy  int    `gorm:"column:max_energy;not null;default:0"`
}

func (PlayerStateModel) TableName() string {
	return "player_states"
}
