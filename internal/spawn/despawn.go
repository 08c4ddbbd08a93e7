package spawn

import (
	"log/slog"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

// Despawn removes a spawned unit from the world: unregisters its AI
// controller and destroys the entity, cascading to its animation children.
func (s *Spawner) Despawn(entity world.Entity) {
	if s.aiMgr != nil {
		s.aiMgr.Unregister(uint32(entity))
	}
	s.world.DestroyEntity(entity)

	slog.Debug("unit despawned", "entity", entity)
}

// DespawnAll tears down every unit carrying the cleanup tag, used at level
// end. Animation children go down with their parents.
func (s *Spawner) DespawnAll() int {
	tagged := world.Query[model.Cleanup](s.world)
	for _, e := range tagged {
		s.Despawn(e)
	}

	if len(tagged) > 0 {
		slog.Info("level teardown complete", "units", len(tagged))
	}
	return len(tagged)
}
