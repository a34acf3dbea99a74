package catalog

import (
	"fmt"
	"time"
)

// Rarity grades a material. Values mirror the backend enumeration.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// AllRarities lists rarity grades in ascending order of scarcity.
var AllRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

var validRarities = map[Rarity]bool{
	RarityCommon:    true,
	RarityUncommon:  true,
	RarityRare:      true,
	RarityEpic:      true,
	RarityLegendary: true,
	RarityMythic:    true,
}

// IsValid reports whether the rarity is a known grade.
func (r Rarity) IsValid() bool {
	return validRarities[r]
}

// Material is a catalog item as returned by the backend.
// Materials are read-only snapshots; this layer never mutates them.
type Material struct {
	ID            int       `json:"id" validate:"required,gt=0"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	IsFood        bool      `json:"is_food"`
	IsEquipment   bool      `json:"is_equipment"`
	Rarity        Rarity    `json:"rarity"`
	Weight        float64   `json:"weight" validate:"gte=0"`
	Attack        int       `json:"attack"`
	Defense       int       `json:"defense"`
	Durability    int       `json:"durability"`
	RestoreHealth int       `json:"restore_health"`
	RestoreEnergy int       `json:"restore_energy"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *Material) String() string {
	return fmt.Sprintf("Material(%d, %s)", m.ID, m.Name)
}

// Workstation is a crafting station referenced by recipes.
type Workstation struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}
