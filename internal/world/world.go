package world

import (
	"reflect"
	"sync"
)

// Entity is a unique identifier for a live game object
type Entity uint32

// World is the entity/component store. Components are indexed by concrete
// type, and entities may own child entities (animation visuals) that are
// destroyed together with their parent.
//
// Spawns run synchronously from game-logic ticks, but the store is guarded
// by a mutex so systems running on other goroutines (tick manager, teardown)
// can read it safely.
type World struct {
	mu         sync.RWMutex
	nextID     Entity
	entities   map[Entity]struct{}
	components map[reflect.Type]map[Entity]any
	parent     map[Entity]Entity
	children   map[Entity][]Entity
}

// New creates an empty world
func New() *World {
	return &World{
		nextID:     1,
		entities:   make(map[Entity]struct{}),
		components: make(map[reflect.Type]map[Entity]any),
		parent:     make(map[Entity]Entity),
		children:   make(map[Entity][]Entity),
	}
}

// NewEntity allocates a new entity with a unique ID
func (w *World) NewEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.entities[id] = struct{}{}
	return id
}

// Exists reports whether the entity is alive
func (w *World) Exists(e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.entities[e]
	return ok
}

// AddComponent attaches a component to an entity, replacing any existing
// component of the same type. No-op if the entity does not exist.
func (w *World) AddComponent(e Entity, component any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[e]; !ok {
		return
	}

	t := reflect.TypeOf(component)
	store, ok := w.components[t]
	if !ok {
		store = make(map[Entity]any)
		w.components[t] = store
	}
	store[e] = component
}

// RemoveComponent detaches the component with the same type as the given
// value from an entity
func (w *World) RemoveComponent(e Entity, component any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if store, ok := w.components[reflect.TypeOf(component)]; ok {
		delete(store, e)
	}
}

// SetParent records an ownership edge: child is destroyed when parent is.
// No-op if either entity does not exist.
func (w *World) SetParent(child, parent Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[child]; !ok {
		return
	}
	if _, ok := w.entities[parent]; !ok {
		return
	}

	w.parent[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// Parent returns the owner of a child entity, if any
func (w *World) Parent(e Entity) (Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.parent[e]
	return p, ok
}

// Children returns the entities owned by a parent
func (w *World) Children(e Entity) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	kids := w.children[e]
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out
}

// DestroyEntity removes an entity, all its components, and - cascading -
// every child entity it owns
func (w *World) DestroyEntity(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.destroyLocked(e)
}

func (w *World) destroyLocked(e Entity) {
	if _, ok := w.entities[e]; !ok {
		return
	}

	for _, child := range w.children[e] {
		w.destroyLocked(child)
	}
	delete(w.children, e)

	if p, ok := w.parent[e]; ok {
		siblings := w.children[p]
		for i, c := range siblings {
			if c == e {
				w.children[p] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		delete(w.parent, e)
	}

	for _, store := range w.components {
		delete(store, e)
	}
	delete(w.entities, e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entities)
}

// Get retrieves a component of type T from an entity
func Get[T any](w *World, e Entity) (T, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var zero T
	store, ok := w.components[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	c, ok := store[e]
	if !ok {
		return zero, false
	}
	return c.(T), true
}

// Has reports whether an entity carries a component of type T.
// The AI loop uses this for behavior-marker presence checks.
func Has[T any](w *World, e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var zero T
	store, ok := w.components[reflect.TypeOf(zero)]
	if !ok {
		return false
	}
	_, ok = store[e]
	return ok
}

// Query returns all entities carrying a component of type T
func Query[T any](w *World) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var zero T
	store, ok := w.components[reflect.TypeOf(zero)]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(store))
	for e := range store {
		out = append(out, e)
	}
	return out
}
