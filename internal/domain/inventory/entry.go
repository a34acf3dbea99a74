package inventory

import (
	"fmt"
	"time"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
)

// Entry is one line of the player inventory. Entries are unique per
// (material, durability state) upstream; this layer treats them as an
// opaque flat list and sums duplicates where needed.
type Entry struct {
	ID                int               `json:"id"`
	Material          *catalog.Material `json:"material"`
	Quantity          int               `json:"quantity" validate:"gte=0"`
	DurabilityCurrent *int              `json:"durability_current"`
	DurabilityMax     *int              `json:"durability_max"`
	Quality           *float64          `json:"quality"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (e *Entry) String() string {
	name := "?"
	if e.Material != nil {
		name = e.Material.Name
	}
	return fmt.Sprintf("Entry(%s x%d)", name, e.Quantity)
}

// OwnedWorkstation records how many of a workstation the player owns.
type OwnedWorkstation struct {
	Workstation *catalog.Workstation `json:"workstation"`
	Quantity    int                  `json:"quantity" validate:"gte=1"`
}

// PlayerResourceState is the live resource snapshot used by craftability checks.
type PlayerResourceState struct {
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`
}

// NewPlayerResourceState creates a validated resource state.
func NewPlayerResourceState(energy, maxEnergy int) (*PlayerResourceState, error) {
	if energy < 0 {
		return nil, fmt.Errorf("energy cannot be negative")
	}
	if maxEnergy < 0 {
		return nil, fmt.Errorf("max energy cannot be negative")
	}
	if energy > maxEnergy {
		return nil, fmt.Errorf("energy %d exceeds max energy %d", energy, maxEnergy)
	}
	return &PlayerResourceState{Energy: energy, MaxEnergy: maxEnergy}, nil
}
