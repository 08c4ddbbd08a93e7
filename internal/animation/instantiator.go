package animation

import (
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

// Instantiator turns a unit's clip-spec sequence into child visual entities.
// The spawn orchestrator is the sole producer of the clip sequence; the
// playback engine consumes the created children each frame.
type Instantiator interface {
	InstantiateChildren(parent world.Entity, clips []model.AnimationClipSpec) ([]world.Entity, error)
}
