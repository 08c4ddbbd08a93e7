package units

import (
	"fmt"
	"log/slog"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
)

// LoadUnitData validates the static composition data of every declared unit
// type. Called once during startup; any failure is an authoring defect and
// must abort the game rather than let a malformed type reach a spawn call.
func LoadUnitData() error {
	for _, t := range model.AllUnitTypes() {
		factory := FactoryFor(t)

		if err := factory.BehaviorRepertoire().Validate(); err != nil {
			return fmt.Errorf("unit %s: behavior repertoire: %w", t, err)
		}
		if err := model.ValidateClipSet(factory.AnimationClips()); err != nil {
			return fmt.Errorf("unit %s: animation clips: %w", t, err)
		}
	}

	slog.Info("unit data loaded", "types", len(model.AllUnitTypes()))
	return nil
}
