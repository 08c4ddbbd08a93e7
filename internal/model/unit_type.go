package model

// UnitType identifies a category of spawnable unit. The set is closed:
// every type listed here has a matching composition factory and a cost entry.
type UnitType int32

const (
	// UnitAcolyte - slow support unit that grants mana to its summoner
	UnitAcolyte UnitType = iota
	// UnitWarrior - heavy melee brawler
	UnitWarrior
	// UnitCat - fast, fragile skirmisher
	UnitCat
	// UnitKnight - armored enemy attacker
	UnitKnight
)

// AllUnitTypes returns every declared unit type.
// Startup validation and the cost registry iterate over this list.
func AllUnitTypes() []UnitType {
	return []UnitType{UnitAcolyte, UnitWarrior, UnitCat, UnitKnight}
}

// String returns human-readable unit type name
func (t UnitType) String() string {
	switch t {
	case UnitAcolyte:
		return "ACOLYTE"
	case UnitWarrior:
		return "WARRIOR"
	case UnitCat:
		return "CAT"
	case UnitKnight:
		return "KNIGHT"
	default:
		return "UNKNOWN"
	}
}
