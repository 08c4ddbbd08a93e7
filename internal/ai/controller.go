package ai

import "github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"

// Controller represents the AI controller interface for spawned units.
// The decision algorithm that evaluates and switches behaviors lives with
// the controller implementation; the spawn core only registers controllers
// and establishes their initial behavior and legal behavior set.
type Controller interface {
	// Start starts the controller
	Start()

	// Stop stops the controller
	Stop()

	// SetBehavior switches the active behavior
	SetBehavior(kind model.BehaviorKind)

	// CurrentBehavior returns the active behavior
	CurrentBehavior() model.BehaviorKind

	// Tick performs one AI tick
	Tick()
}
