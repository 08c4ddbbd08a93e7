package units

import (
	"fmt"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
)

// Factory produces the static composition data for one unit type: base
// stats, the weighted behavior repertoire, and the sprite clip sequence.
// Implementations are pure and deterministic - the same factory returns
// equal values on every call, so callers may cache results.
type Factory interface {
	StatProfile() model.StatProfile
	BehaviorRepertoire() model.BehaviorRepertoire
	AnimationClips() []model.AnimationClipSpec
}

// FactoryFor resolves the composition factory for a unit type.
// The enumeration is closed, so an unknown type is a programming error.
func FactoryFor(unitType model.UnitType) Factory {
	switch unitType {
	case model.UnitAcolyte:
		return Acolyte{}
	case model.UnitWarrior:
		return Warrior{}
	case model.UnitCat:
		return Cat{}
	case model.UnitKnight:
		return Knight{}
	default:
		panic(fmt.Sprintf("no factory for unit type %d", unitType))
	}
}
