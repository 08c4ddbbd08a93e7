package units

import (
	"fmt"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
)

// UnitConfig holds the economic configuration for one unit type
type UnitConfig struct {
	Cost uint8
}

// unitCosts is the authored cost table. NewRegistry verifies it covers
// every declared unit type.
var unitCosts = map[model.UnitType]UnitConfig{
	model.UnitAcolyte: {Cost: 40},
	model.UnitWarrior: {Cost: 30},
	model.UnitCat:     {Cost: 20},
	model.UnitKnight:  {Cost: 50},
}

// Registry maps unit types to their economic configuration. Built once at
// startup, read-only afterwards. The purchase UI consults it before issuing
// spawn requests.
type Registry struct {
	configs map[model.UnitType]UnitConfig
}

// NewRegistry builds the registry from the authored cost table and verifies
// its completeness. A missing or zero-cost entry is a configuration defect
// and aborts initialization.
func NewRegistry() (*Registry, error) {
	configs := make(map[model.UnitType]UnitConfig, len(unitCosts))
	for _, t := range model.AllUnitTypes() {
		cfg, ok := unitCosts[t]
		if !ok {
			return nil, fmt.Errorf("unit type %s has no cost entry", t)
		}
		if cfg.Cost == 0 {
			return nil, fmt.Errorf("unit type %s has zero cost", t)
		}
		configs[t] = cfg
	}
	return &Registry{configs: configs}, nil
}

// Lookup returns the configuration for a unit type. The enumeration is
// closed and NewRegistry verified completeness, so a miss here is a
// programming error and panics rather than returning a fallback.
func (r *Registry) Lookup(unitType model.UnitType) UnitConfig {
	cfg, ok := r.configs[unitType]
	if !ok {
		panic(fmt.Sprintf("no registry entry for unit type %s", unitType))
	}
	return cfg
}
