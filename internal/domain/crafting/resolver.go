package crafting

import (
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
)

// Verdict is the craftability answer for one recipe at one multiplier.
type Verdict struct {
	OK      bool
	Reasons []FailureReason
}

// CanCraft decides whether a recipe can currently be crafted at the
// requested multiplier, given a flat inventory snapshot, owned
// workstations and current energy.
//
// All requirement checks are independent and all evaluated; the verdict
// carries every failure so the player sees the full missing list, not
// just the first problem. Nothing is mutated: this is a pure predicate
// over the snapshot, and resource requirements scale linearly with the
// multiplier (a craftable n implies every 1..n is craftable too).
func CanCraft(
	recipe *catalog.Recipe,
	multiplier int,
	flatInventory []*inventory.Entry,
	workstations []*inventory.OwnedWorkstation,
	playerEnergy int,
) Verdict {
	if multiplier < 1 {
		// Rejected rather than clamped: clamping would misrepresent
		// what the player is about to craft.
		return Verdict{OK: false, Reasons: []FailureReason{NewInvalidQuantityReason(multiplier)}}
	}

	var reasons []FailureReason

	if recipe.ResultMaterial == nil {
		reasons = append(reasons, NewUnresolvedReferenceReason())
	}

	if recipe.RequiredWorkstation != nil && !ownsWorkstation(workstations, recipe.RequiredWorkstation.ID) {
		reasons = append(reasons, NewMissingWorkstationReason(recipe.RequiredWorkstation.ID))
	}

	if required := recipe.EnergyCost * multiplier; required > playerEnergy {
		reasons = append(reasons, NewInsufficientEnergyReason(playerEnergy, required))
	}

	owned := sumByMaterial(flatInventory)
	unresolvedIngredient := false
	for _, ing := range recipe.Ingredients {
		if ing.Material == nil {
			unresolvedIngredient = true
			continue
		}
		required := ing.Quantity * multiplier
		if have := owned[ing.Material.ID]; have < required {
			reasons = append(reasons, NewInsufficientIngredientReason(ing.Material.ID, have, required))
		}
	}
	if unresolvedIngredient {
		reasons = append(reasons, NewUnresolvedReferenceReason())
	}

	return Verdict{OK: len(reasons) == 0, Reasons: reasons}
}

// MaxCraftable returns the largest multiplier that still passes every
// check, or 0 when even a single craft is impossible. Relies on the
// monotonicity of CanCraft in the multiplier.
func MaxCraftable(
	recipe *catalog.Recipe,
	flatInventory []*inventory.Entry,
	workstations []*inventory.OwnedWorkstation,
	playerEnergy int,
	limit int,
) int {
	best := 0
	for n := 1; n <= limit; n++ {
		if !CanCraft(recipe, n, flatInventory, workstations, playerEnergy).OK {
			break
		}
		best = n
	}
	return best
}

// ownsWorkstation reports whether at least one owned workstation entry
// references the id with quantity >= 1.
func ownsWorkstation(workstations []*inventory.OwnedWorkstation, workstationID int) bool {
	for _, w := range workstations {
		if w != nil && w.Workstation != nil && w.Workstation.ID == workstationID && w.Quantity >= 1 {
			return true
		}
	}
	return false
}

// sumByMaterial flattens duplicate entries (differing durability states)
// into one total per material id.
func sumByMaterial(entries []*inventory.Entry) map[int]int {
	owned := make(map[int]int, len(entries))
	for _, e := range entries {
		if e == nil || e.Material == nil {
			continue
		}
		owned[e.Material.ID] += e.Quantity
	}
	return owned
}
