package model

import "time"

// Component value types attached to spawned units. The movement, combat and
// AI systems mutate these over the unit's lifetime; this core only writes
// them once during spawn assembly.

// Position is a 2D world-space coordinate
type Position struct {
	X, Y float64
}

// Movement holds a unit's movement speed
type Movement struct {
	Speed float64
}

// Velocity is the unit's current velocity, integrated by the physics system.
// Spawned units start at rest.
type Velocity struct {
	X, Y float64
}

// Transform holds world-space placement. Z selects the drawing layer and is
// fixed at spawn time.
type Transform struct {
	X, Y, Z float64
	Scale   float64
}

// Health tracks unit hit points
type Health struct {
	Current int32
	Max     int32
}

// CurrentAnimation holds which animation kind the unit's visuals play
type CurrentAnimation struct {
	Kind AnimationKind
}

// Cleanup tags every spawned unit so level teardown can find and destroy
// them in bulk. Attached at spawn, never removed by this core.
type Cleanup struct{}

// CurrentBehavior holds the unit's active behavior, set to the repertoire's
// initial behavior at spawn and switched by the AI loop afterwards.
type CurrentBehavior struct {
	Kind BehaviorKind
}

// SupportedBehaviors holds the unit's full weighted repertoire. The per-kind
// marker components carry the same information in presence-check form.
type SupportedBehaviors struct {
	Entries []BehaviorEntry
}

// ManaGrant makes a unit periodically feed mana to its summoner.
// Only the acolyte carries this.
type ManaGrant struct {
	Amount   uint8
	Cooldown time.Duration
}
