package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

// UnitAI is the baseline controller for spawned units. It holds the active
// behavior in the entity's CurrentBehavior component and refuses switches
// to behaviors outside the unit's repertoire. It makes no decisions of its
// own - behavior evaluation belongs to the systems driving it.
type UnitAI struct {
	world     *world.World
	entity    world.Entity
	isRunning atomic.Bool
}

// NewUnitAI creates a controller for an already-assembled unit entity
func NewUnitAI(w *world.World, entity world.Entity) *UnitAI {
	return &UnitAI{
		world:  w,
		entity: entity,
	}
}

// Start starts the controller
func (ai *UnitAI) Start() {
	ai.isRunning.Store(true)
}

// Stop stops the controller
func (ai *UnitAI) Stop() {
	ai.isRunning.Store(false)
}

// SetBehavior switches the active behavior. Switches to behaviors the unit
// does not support are ignored - the legal set is fixed at spawn time.
func (ai *UnitAI) SetBehavior(kind model.BehaviorKind) {
	supported, ok := world.Get[model.SupportedBehaviors](ai.world, ai.entity)
	if !ok {
		return
	}

	legal := false
	for _, e := range supported.Entries {
		if e.Kind == kind {
			legal = true
			break
		}
	}
	if !legal {
		slog.Warn("ignored switch to unsupported behavior",
			"entity", ai.entity,
			"behavior", kind)
		return
	}

	old := ai.CurrentBehavior()
	ai.world.AddComponent(ai.entity, model.CurrentBehavior{Kind: kind})

	if old != kind && IsDebugEnabled() {
		slog.Debug("behavior changed",
			"entity", ai.entity,
			"from", old,
			"to", kind)
	}
}

// CurrentBehavior returns the active behavior
func (ai *UnitAI) CurrentBehavior() model.BehaviorKind {
	current, ok := world.Get[model.CurrentBehavior](ai.world, ai.entity)
	if !ok {
		return model.BehaviorIdle
	}
	return current.Kind
}

// Tick performs one AI tick
func (ai *UnitAI) Tick() {
	if !ai.isRunning.Load() {
		return
	}

	if IsDebugEnabled() {
		slog.Debug("unit tick",
			"entity", ai.entity,
			"behavior", ai.CurrentBehavior())
	}
}
