package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

func newBehaviorEntity(t *testing.T, w *world.World, initial model.BehaviorKind, kinds ...model.BehaviorKind) world.Entity {
	t.Helper()

	entries := make([]model.BehaviorEntry, 0, len(kinds))
	for i, kind := range kinds {
		entries = append(entries, model.BehaviorEntry{Kind: kind, Weight: int32(5 * (i + 1))})
	}

	e := w.NewEntity()
	w.AddComponent(e, model.CurrentBehavior{Kind: initial})
	w.AddComponent(e, model.SupportedBehaviors{Entries: entries})
	require.True(t, w.Exists(e))
	return e
}

func TestUnitAI_CurrentBehavior(t *testing.T) {
	w := world.New()
	e := newBehaviorEntity(t, w, model.BehaviorMoveToOrigin, model.BehaviorMoveToOrigin, model.BehaviorDead)

	ai := NewUnitAI(w, e)
	assert.Equal(t, model.BehaviorMoveToOrigin, ai.CurrentBehavior())
}

func TestUnitAI_SetBehavior(t *testing.T) {
	tests := []struct {
		name   string
		target model.BehaviorKind
		want   model.BehaviorKind
	}{
		{
			name:   "switch to supported behavior",
			target: model.BehaviorDead,
			want:   model.BehaviorDead,
		},
		{
			name:   "switch to unsupported behavior is ignored",
			target: model.BehaviorAttack,
			want:   model.BehaviorIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.New()
			e := newBehaviorEntity(t, w, model.BehaviorIdle, model.BehaviorIdle, model.BehaviorDead)

			ai := NewUnitAI(w, e)
			ai.Start()
			ai.SetBehavior(tt.target)

			current, ok := world.Get[model.CurrentBehavior](w, e)
			require.True(t, ok)
			assert.Equal(t, tt.want, current.Kind)
		})
	}
}

func TestUnitAI_TickWhileStopped(t *testing.T) {
	w := world.New()
	e := newBehaviorEntity(t, w, model.BehaviorIdle, model.BehaviorIdle)

	ai := NewUnitAI(w, e)

	// Must not panic or mutate state before Start / after Stop.
	ai.Tick()
	ai.Start()
	ai.Stop()
	ai.Tick()

	assert.Equal(t, model.BehaviorIdle, ai.CurrentBehavior())
}
