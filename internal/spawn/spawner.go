package spawn

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/ai"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/animation"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/units"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

// UnitZLayer is the drawing layer all units are placed on. The caller
// supplies only the 2D position; Z is never per-type or per-call data.
const UnitZLayer = 0.0

// Spawner is the single entry point for creating live unit entities. It
// resolves the composition factory for a unit type and assembles base
// components, caller-supplied team and position, behavior wiring, and
// animation children into one consistent entity.
type Spawner struct {
	world    *world.World
	animator animation.Instantiator
	aiMgr    *ai.TickManager // nil disables AI registration
}

// NewSpawner creates a spawner. aiMgr may be nil when no tick loop runs,
// e.g. in tools that only inspect composed entities.
func NewSpawner(w *world.World, animator animation.Instantiator, aiMgr *ai.TickManager) *Spawner {
	return &Spawner{
		world:    w,
		animator: animator,
		aiMgr:    aiMgr,
	}
}

// Spawn assembles a live unit of the given type at the given position.
// Either the entity comes out fully formed - stats, team, transform,
// behavior holder plus one marker per legal behavior, animation children -
// or nothing observable is created.
func (s *Spawner) Spawn(unitType model.UnitType, team model.Team, position model.Position) (world.Entity, error) {
	factory := units.FactoryFor(unitType)

	// Validate all static data before touching the world, so a defective
	// factory never leaves a partially assembled entity behind.
	repertoire := factory.BehaviorRepertoire()
	if err := repertoire.Validate(); err != nil {
		return 0, fmt.Errorf("unit %s: behavior repertoire: %w", unitType, err)
	}
	clips := factory.AnimationClips()
	if err := model.ValidateClipSet(clips); err != nil {
		return 0, fmt.Errorf("unit %s: animation clips: %w", unitType, err)
	}

	profile := factory.StatProfile()

	entity := s.world.NewEntity()

	// Base components from the stat profile. Velocity starts at rest and
	// the transform takes the caller's position on the fixed unit layer.
	s.world.AddComponent(entity, model.Movement{Speed: profile.MoveSpeed})
	s.world.AddComponent(entity, model.Velocity{})
	s.world.AddComponent(entity, model.Health{Current: profile.MaxHealth, Max: profile.MaxHealth})
	s.world.AddComponent(entity, model.Transform{
		X:     position.X,
		Y:     position.Y,
		Z:     UnitZLayer,
		Scale: profile.Scale,
	})
	s.world.AddComponent(entity, model.CurrentAnimation{Kind: model.AnimationIdle})
	s.world.AddComponent(entity, model.Cleanup{})

	// Team is always caller-supplied, never per-type static data.
	s.world.AddComponent(entity, model.CurrentTeam{Team: team})

	// Behavior wiring: the holder carries the full weighted list and the
	// active kind; one marker per entry lets the AI loop probe legality by
	// component presence.
	s.world.AddComponent(entity, model.CurrentBehavior{Kind: repertoire.Initial})
	s.world.AddComponent(entity, model.SupportedBehaviors{Entries: slices.Clone(repertoire.Entries)})
	for _, entry := range repertoire.Entries {
		s.world.AddComponent(entity, model.BehaviorMarker(entry.Kind))
	}

	// Type-specific extras, e.g. the acolyte's mana grant.
	if provider, ok := factory.(extraComponentProvider); ok {
		for _, c := range provider.ExtraComponents() {
			s.world.AddComponent(entity, c)
		}
	}

	if _, err := s.animator.InstantiateChildren(entity, clips); err != nil {
		// Roll back: destroying the parent cascades to any children the
		// instantiator managed to create.
		s.world.DestroyEntity(entity)
		return 0, fmt.Errorf("unit %s: instantiating animation children: %w", unitType, err)
	}

	if s.aiMgr != nil {
		s.aiMgr.Register(uint32(entity), ai.NewUnitAI(s.world, entity))
	}

	slog.Debug("unit spawned",
		"type", unitType,
		"team", team,
		"entity", entity,
		"behavior", repertoire.Initial)

	return entity, nil
}

// extraComponentProvider is implemented by factories whose unit type carries
// components beyond the shared base bundle
type extraComponentProvider interface {
	ExtraComponents() []any
}
