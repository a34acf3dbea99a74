package crafting

import "fmt"

// ReasonCode identifies why a craft is not currently possible.
type ReasonCode string

const (
	ReasonMissingWorkstation     ReasonCode = "missing_workstation"
	ReasonInsufficientEnergy     ReasonCode = "insufficient_energy"
	ReasonInsufficientIngredient ReasonCode = "insufficient_ingredient"
	ReasonUnresolvedReference    ReasonCode = "unresolved_reference"
	ReasonInvalidQuantity        ReasonCode = "invalid_quantity"
)

// FailureReason is one structured requirement failure. All applicable
// reasons are reported together so the player sees every missing
// requirement at once.
type FailureReason struct {
	Code          ReasonCode
	WorkstationID int
	MaterialID    int
	Have          int
	Required      int
}

func (r FailureReason) String() string {
	switch r.Code {
	case ReasonMissingWorkstation:
		return fmt.Sprintf("missing workstation %d", r.WorkstationID)
	case ReasonInsufficientEnergy:
		return fmt.Sprintf("insufficient energy: have %d, need %d", r.Have, r.Required)
	case ReasonInsufficientIngredient:
		return fmt.Sprintf("insufficient ingredient %d: have %d, need %d", r.MaterialID, r.Have, r.Required)
	case ReasonUnresolvedReference:
		return "recipe references a material missing from the catalog"
	case ReasonInvalidQuantity:
		return fmt.Sprintf("invalid craft quantity %d", r.Required)
	}
	return string(r.Code)
}

// NewMissingWorkstationReason reports an unowned required workstation.
func NewMissingWorkstationReason(workstationID int) FailureReason {
	return FailureReason{Code: ReasonMissingWorkstation, WorkstationID: workstationID}
}

// NewInsufficientEnergyReason reports that the scaled energy cost exceeds
// the player's current energy.
func NewInsufficientEnergyReason(have, required int) FailureReason {
	return FailureReason{Code: ReasonInsufficientEnergy, Have: have, Required: required}
}

// NewInsufficientIngredientReason reports a shortfall for one ingredient.
func NewInsufficientIngredientReason(materialID, have, required int) FailureReason {
	return FailureReason{Code: ReasonInsufficientIngredient, MaterialID: materialID, Have: have, Required: required}
}

// NewUnresolvedReferenceReason reports a dangling material reference.
func NewUnresolvedReferenceReason() FailureReason {
	return FailureReason{Code: ReasonUnresolvedReference}
}

// NewInvalidQuantityReason reports a non-positive craft multiplier.
func NewInvalidQuantityReason(requested int) FailureReason {
	return FailureReason{Code: ReasonInvalidQuantity, Required: requested}
}
