package model

import "fmt"

// BehaviorKind identifies one possible unit behavior. The vocabulary is
// consumed by the AI decision loop; this core only wires the legal set
// and the initial value onto spawned units.
type BehaviorKind int32

const (
	// BehaviorIdle - unit is standing still, no active behavior
	BehaviorIdle BehaviorKind = iota
	// BehaviorWander - unit roams randomly near its position
	BehaviorWander
	// BehaviorMoveToOrigin - unit advances toward the arena origin
	BehaviorMoveToOrigin
	// BehaviorChase - unit pursues a hostile target
	BehaviorChase
	// BehaviorAttack - unit attacks a target in range
	BehaviorAttack
	// BehaviorFlee - unit runs from hostiles
	BehaviorFlee
	// BehaviorDead - unit has died and plays out its death
	BehaviorDead
)

// String returns human-readable behavior name
func (k BehaviorKind) String() string {
	switch k {
	case BehaviorIdle:
		return "IDLE"
	case BehaviorWander:
		return "WANDER"
	case BehaviorMoveToOrigin:
		return "MOVE_TO_ORIGIN"
	case BehaviorChase:
		return "CHASE"
	case BehaviorAttack:
		return "ATTACK"
	case BehaviorFlee:
		return "FLEE"
	case BehaviorDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// BehaviorEntry pairs a behavior kind with its priority weight.
// Duplicate weights inside one repertoire are legal; tie-breaking
// belongs to the AI decision loop.
type BehaviorEntry struct {
	Kind   BehaviorKind
	Weight int32
}

// BehaviorRepertoire is the weighted set of behaviors legal for a unit,
// plus the behavior it starts with. Computed once per spawn from static
// per-type data.
type BehaviorRepertoire struct {
	Initial BehaviorKind
	Entries []BehaviorEntry
}

// Validate checks the repertoire against its authoring invariants:
// at least one entry, and the initial behavior present among the entries.
// A failure indicates a defect in static per-type data, not a runtime
// condition.
func (r BehaviorRepertoire) Validate() error {
	if len(r.Entries) == 0 {
		return fmt.Errorf("repertoire has no entries")
	}
	if !r.Supports(r.Initial) {
		return fmt.Errorf("initial behavior %s not among entries", r.Initial)
	}
	return nil
}

// Supports reports whether the given behavior kind is listed in the entries.
func (r BehaviorRepertoire) Supports(kind BehaviorKind) bool {
	for _, e := range r.Entries {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// DefaultRepertoire returns the repertoire for unit types that declare no
// special behaviors: idle only. Kept explicit rather than empty so the
// initial-behavior invariant holds for every type.
func DefaultRepertoire() BehaviorRepertoire {
	return BehaviorRepertoire{
		Initial: BehaviorIdle,
		Entries: []BehaviorEntry{
			{Kind: BehaviorIdle, Weight: 5},
		},
	}
}
