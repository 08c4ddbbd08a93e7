package animation

import (
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

// Sprite describes the sheet a child visual entity renders from
type Sprite struct {
	SheetPath   string
	FrameWidth  float64
	FrameHeight float64
	Columns     int
	Rows        int
}

// Playback holds the clip's playback state, advanced by the playback engine
type Playback struct {
	Kind            model.AnimationKind
	Frame           int
	FrameCount      int
	Loops           bool
	AttackTriggered bool
}

// SpriteInstantiator creates child visual entities directly in the world,
// one per clip, parented to the spawned unit so they are destroyed with it.
type SpriteInstantiator struct {
	world *world.World
}

// NewSpriteInstantiator creates an instantiator backed by the given world
func NewSpriteInstantiator(w *world.World) *SpriteInstantiator {
	return &SpriteInstantiator{world: w}
}

// InstantiateChildren creates one child entity per clip, in clip order
func (s *SpriteInstantiator) InstantiateChildren(parent world.Entity, clips []model.AnimationClipSpec) ([]world.Entity, error) {
	children := make([]world.Entity, 0, len(clips))

	for _, clip := range clips {
		child := s.world.NewEntity()
		s.world.AddComponent(child, Sprite{
			SheetPath:   clip.SheetPath,
			FrameWidth:  clip.FrameWidth,
			FrameHeight: clip.FrameHeight,
			Columns:     clip.Columns,
			Rows:        clip.Rows,
		})
		s.world.AddComponent(child, Playback{
			Kind:            clip.Kind,
			FrameCount:      clip.FrameCount,
			Loops:           clip.Loops,
			AttackTriggered: clip.AttackTriggered,
		})
		s.world.SetParent(child, parent)
		children = append(children, child)
	}

	return children, nil
}
