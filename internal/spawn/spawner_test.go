package spawn

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/ai"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/animation"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/units"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

func newTestSpawner(t *testing.T) (*Spawner, *world.World) {
	t.Helper()
	w := world.New()
	return NewSpawner(w, animation.NewSpriteInstantiator(w), nil), w
}

// failingInstantiator rejects every instantiation request
type failingInstantiator struct{}

func (failingInstantiator) InstantiateChildren(parent world.Entity, clips []model.AnimationClipSpec) ([]world.Entity, error) {
	return nil, errors.New("texture atlas unavailable")
}

func hasMarker(w *world.World, e world.Entity, kind model.BehaviorKind) bool {
	switch kind {
	case model.BehaviorIdle:
		return world.Has[model.IdleBehavior](w, e)
	case model.BehaviorWander:
		return world.Has[model.WanderBehavior](w, e)
	case model.BehaviorMoveToOrigin:
		return world.Has[model.MoveToOriginBehavior](w, e)
	case model.BehaviorChase:
		return world.Has[model.ChaseBehavior](w, e)
	case model.BehaviorAttack:
		return world.Has[model.AttackBehavior](w, e)
	case model.BehaviorFlee:
		return world.Has[model.FleeBehavior](w, e)
	case model.BehaviorDead:
		return world.Has[model.DeadBehavior](w, e)
	default:
		return false
	}
}

func TestSpawner_Spawn_BaseComponents(t *testing.T) {
	for _, unitType := range model.AllUnitTypes() {
		t.Run(unitType.String(), func(t *testing.T) {
			spawner, w := newTestSpawner(t)

			entity, err := spawner.Spawn(unitType, model.TeamPlayer, model.Position{X: 100, Y: 50})
			require.NoError(t, err)

			profile := units.FactoryFor(unitType).StatProfile()

			movement, ok := world.Get[model.Movement](w, entity)
			require.True(t, ok)
			assert.Equal(t, profile.MoveSpeed, movement.Speed)

			health, ok := world.Get[model.Health](w, entity)
			require.True(t, ok)
			assert.Equal(t, profile.MaxHealth, health.Current)
			assert.Equal(t, profile.MaxHealth, health.Max)

			transform, ok := world.Get[model.Transform](w, entity)
			require.True(t, ok)
			assert.Equal(t, 100.0, transform.X)
			assert.Equal(t, 50.0, transform.Y)
			assert.Equal(t, UnitZLayer, transform.Z)
			assert.Equal(t, profile.Scale, transform.Scale)

			velocity, ok := world.Get[model.Velocity](w, entity)
			require.True(t, ok)
			assert.Equal(t, model.Velocity{}, velocity)

			assert.True(t, world.Has[model.Cleanup](w, entity))
			assert.True(t, world.Has[model.CurrentAnimation](w, entity))
		})
	}
}

func TestSpawner_Spawn_TeamIsCallerSupplied(t *testing.T) {
	spawner, w := newTestSpawner(t)

	player, err := spawner.Spawn(model.UnitCat, model.TeamPlayer, model.Position{})
	require.NoError(t, err)
	enemy, err := spawner.Spawn(model.UnitCat, model.TeamEnemy, model.Position{})
	require.NoError(t, err)

	playerTeam, ok := world.Get[model.CurrentTeam](w, player)
	require.True(t, ok)
	assert.Equal(t, model.TeamPlayer, playerTeam.Team)

	enemyTeam, ok := world.Get[model.CurrentTeam](w, enemy)
	require.True(t, ok)
	assert.Equal(t, model.TeamEnemy, enemyTeam.Team)
}

func TestSpawner_Spawn_BehaviorWiring(t *testing.T) {
	for _, unitType := range model.AllUnitTypes() {
		t.Run(unitType.String(), func(t *testing.T) {
			spawner, w := newTestSpawner(t)

			entity, err := spawner.Spawn(unitType, model.TeamPlayer, model.Position{})
			require.NoError(t, err)

			repertoire := units.FactoryFor(unitType).BehaviorRepertoire()

			current, ok := world.Get[model.CurrentBehavior](w, entity)
			require.True(t, ok)
			assert.Equal(t, repertoire.Initial, current.Kind)

			supported, ok := world.Get[model.SupportedBehaviors](w, entity)
			require.True(t, ok)
			assert.Equal(t, repertoire.Entries, supported.Entries)

			// One presence marker per entry, and no orphan markers.
			for _, entry := range repertoire.Entries {
				assert.True(t, hasMarker(w, entity, entry.Kind), "marker for %s", entry.Kind)
			}
			allKinds := []model.BehaviorKind{
				model.BehaviorIdle, model.BehaviorWander, model.BehaviorMoveToOrigin,
				model.BehaviorChase, model.BehaviorAttack, model.BehaviorFlee, model.BehaviorDead,
			}
			for _, kind := range allKinds {
				if !repertoire.Supports(kind) {
					assert.False(t, hasMarker(w, entity, kind), "orphan marker for %s", kind)
				}
			}
		})
	}
}

func TestSpawner_Spawn_AnimationChildren(t *testing.T) {
	for _, unitType := range model.AllUnitTypes() {
		t.Run(unitType.String(), func(t *testing.T) {
			spawner, w := newTestSpawner(t)

			entity, err := spawner.Spawn(unitType, model.TeamPlayer, model.Position{})
			require.NoError(t, err)

			clips := units.FactoryFor(unitType).AnimationClips()
			children := w.Children(entity)
			require.Len(t, children, len(clips))

			for _, child := range children {
				parent, ok := w.Parent(child)
				require.True(t, ok)
				assert.Equal(t, entity, parent)
				assert.True(t, world.Has[animation.Sprite](w, child))
				assert.True(t, world.Has[animation.Playback](w, child))
			}
		})
	}
}

func TestSpawner_Spawn_AcolyteScenario(t *testing.T) {
	spawner, w := newTestSpawner(t)

	entity, err := spawner.Spawn(model.UnitAcolyte, model.TeamPlayer, model.Position{X: 100, Y: 50})
	require.NoError(t, err)

	movement, _ := world.Get[model.Movement](w, entity)
	assert.Equal(t, 75.0, movement.Speed)

	health, _ := world.Get[model.Health](w, entity)
	assert.Equal(t, int32(50), health.Max)

	team, _ := world.Get[model.CurrentTeam](w, entity)
	assert.Equal(t, model.TeamPlayer, team.Team)

	transform, _ := world.Get[model.Transform](w, entity)
	assert.Equal(t, 100.0, transform.X)
	assert.Equal(t, 50.0, transform.Y)
	assert.Equal(t, UnitZLayer, transform.Z)

	current, _ := world.Get[model.CurrentBehavior](w, entity)
	assert.Equal(t, model.BehaviorIdle, current.Kind)

	// Idle, walk, death - no attack clip for the support unit.
	children := w.Children(entity)
	assert.Len(t, children, 3)

	grant, ok := world.Get[model.ManaGrant](w, entity)
	require.True(t, ok)
	assert.Equal(t, uint8(5), grant.Amount)
	assert.Equal(t, time.Second, grant.Cooldown)
}

func TestSpawner_Spawn_KnightScenario(t *testing.T) {
	spawner, w := newTestSpawner(t)

	entity, err := spawner.Spawn(model.UnitKnight, model.TeamEnemy, model.Position{X: 100, Y: 50})
	require.NoError(t, err)

	current, _ := world.Get[model.CurrentBehavior](w, entity)
	assert.Equal(t, model.BehaviorMoveToOrigin, current.Kind)

	supported, _ := world.Get[model.SupportedBehaviors](w, entity)
	require.Len(t, supported.Entries, 5)
	for i := 1; i < len(supported.Entries); i++ {
		assert.Greater(t, supported.Entries[i].Weight, supported.Entries[i-1].Weight)
	}
}

func TestSpawner_Spawn_RollbackOnInstantiatorFailure(t *testing.T) {
	w := world.New()
	spawner := NewSpawner(w, failingInstantiator{}, nil)

	_, err := spawner.Spawn(model.UnitWarrior, model.TeamPlayer, model.Position{})
	require.Error(t, err)

	// Nothing observable may remain after a failed assembly.
	assert.Equal(t, 0, w.EntityCount())
	assert.Empty(t, world.Query[model.Cleanup](w))
}

func TestSpawner_Spawn_RegistersAIController(t *testing.T) {
	w := world.New()
	aiMgr := ai.NewTickManager(time.Second)
	spawner := NewSpawner(w, animation.NewSpriteInstantiator(w), aiMgr)

	entity, err := spawner.Spawn(model.UnitKnight, model.TeamEnemy, model.Position{})
	require.NoError(t, err)
	assert.Equal(t, 1, aiMgr.Count())

	spawner.Despawn(entity)
	assert.Equal(t, 0, aiMgr.Count())
	assert.False(t, w.Exists(entity))
}

func TestSpawner_DespawnAll(t *testing.T) {
	spawner, w := newTestSpawner(t)

	_, err := spawner.Spawn(model.UnitWarrior, model.TeamPlayer, model.Position{})
	require.NoError(t, err)
	_, err = spawner.Spawn(model.UnitKnight, model.TeamEnemy, model.Position{})
	require.NoError(t, err)

	despawned := spawner.DespawnAll()

	assert.Equal(t, 2, despawned)
	assert.Equal(t, 0, w.EntityCount(), "animation children torn down with their parents")
}
