package model

import "fmt"

// AnimationKind identifies what a sprite clip animates
type AnimationKind int32

const (
	// AnimationIdle - default/fallback pose, required for every unit type
	AnimationIdle AnimationKind = iota
	// AnimationWalk - movement loop
	AnimationWalk
	// AnimationDeath - one-shot death clip
	AnimationDeath
	// AnimationAttack - one-shot clip triggered by attacks
	AnimationAttack
)

// String returns human-readable animation kind name
func (k AnimationKind) String() string {
	switch k {
	case AnimationIdle:
		return "IDLE"
	case AnimationWalk:
		return "WALK"
	case AnimationDeath:
		return "DEATH"
	case AnimationAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}

// AnimationClipSpec declares one sprite-sheet clip for a unit type: which
// sheet to slice, how the frames are laid out, and how the clip plays.
// A spawn produces an ordered sequence of these, consumed once by the
// animation collaborator to create child visual entities.
type AnimationClipSpec struct {
	SheetPath   string
	FrameWidth  float64
	FrameHeight float64
	Columns     int
	Rows        int
	FrameCount  int
	Kind        AnimationKind
	Loops       bool

	// AttackTriggered clips stay hidden until the combat system fires them
	AttackTriggered bool
}

// Validate checks a single clip against its authoring invariants.
func (c AnimationClipSpec) Validate() error {
	if c.SheetPath == "" {
		return fmt.Errorf("clip %s has no sprite sheet path", c.Kind)
	}
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("clip %s (%s) has invalid grid %dx%d", c.Kind, c.SheetPath, c.Columns, c.Rows)
	}
	if c.FrameCount <= 0 {
		return fmt.Errorf("clip %s (%s) has invalid frame count %d", c.Kind, c.SheetPath, c.FrameCount)
	}
	if c.FrameCount > c.Columns*c.Rows {
		return fmt.Errorf("clip %s (%s) frame count %d exceeds grid capacity %d",
			c.Kind, c.SheetPath, c.FrameCount, c.Columns*c.Rows)
	}
	return nil
}

// ValidateClipSet checks a unit type's full clip sequence: every clip valid,
// and exactly one Idle clip to serve as the fallback pose.
func ValidateClipSet(clips []AnimationClipSpec) error {
	idleCount := 0
	for i, c := range clips {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("clip %d: %w", i, err)
		}
		if c.Kind == AnimationIdle {
			idleCount++
		}
	}
	if idleCount != 1 {
		return fmt.Errorf("clip set must contain exactly one IDLE clip, got %d", idleCount)
	}
	return nil
}
