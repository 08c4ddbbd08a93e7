package model

import "fmt"

// Per-kind behavior marker components. One marker is attached to a unit for
// every entry in its repertoire, so the AI loop can answer "can entity E do
// behavior B" with a single component-presence check instead of scanning the
// SupportedBehaviors list. The SupportedBehaviors holder and the markers are
// written together at spawn time and must stay consistent.

// IdleBehavior marks that the unit may idle
type IdleBehavior struct{}

// WanderBehavior marks that the unit may roam
type WanderBehavior struct{}

// MoveToOriginBehavior marks that the unit may advance on the arena origin
type MoveToOriginBehavior struct{}

// ChaseBehavior marks that the unit may pursue targets
type ChaseBehavior struct{}

// AttackBehavior marks that the unit may attack
type AttackBehavior struct{}

// FleeBehavior marks that the unit may flee
type FleeBehavior struct{}

// DeadBehavior marks that the unit has a death behavior
type DeadBehavior struct{}

// BehaviorMarker returns the marker component value for a behavior kind.
// Panics on a kind outside the enumeration - the enumeration is closed,
// so reaching the default branch is a programming error.
func BehaviorMarker(kind BehaviorKind) any {
	switch kind {
	case BehaviorIdle:
		return IdleBehavior{}
	case BehaviorWander:
		return WanderBehavior{}
	case BehaviorMoveToOrigin:
		return MoveToOriginBehavior{}
	case BehaviorChase:
		return ChaseBehavior{}
	case BehaviorAttack:
		return AttackBehavior{}
	case BehaviorFlee:
		return FleeBehavior{}
	case BehaviorDead:
		return DeadBehavior{}
	default:
		panic(fmt.Sprintf("no marker for behavior kind %d", kind))
	}
}
