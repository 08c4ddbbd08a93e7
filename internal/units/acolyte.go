package units

import (
	"time"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
)

// Acolyte is the mana-granting support unit: slow, fragile, never fights.
// Its repertoire has no attack ladder - it idles, flees from hostiles,
// and dies.
type Acolyte struct{}

func (Acolyte) StatProfile() model.StatProfile {
	return model.StatProfile{
		MoveSpeed: 75,
		MaxHealth: 50,
		Scale:     0.8,
	}
}

func (Acolyte) BehaviorRepertoire() model.BehaviorRepertoire {
	return model.BehaviorRepertoire{
		Initial: model.BehaviorIdle,
		Entries: []model.BehaviorEntry{
			{Kind: model.BehaviorIdle, Weight: 5},
			{Kind: model.BehaviorFlee, Weight: 10},
			{Kind: model.BehaviorDead, Weight: 15},
		},
	}
}

func (Acolyte) AnimationClips() []model.AnimationClipSpec {
	// The acolyte has no dedicated walk sheet; the idle sheet doubles as
	// the walk loop.
	return []model.AnimationClipSpec{
		{
			SheetPath:   "acolyte/acolyte_idle.png",
			FrameWidth:  80,
			FrameHeight: 80,
			Columns:     3,
			Rows:        4,
			FrameCount:  9,
			Kind:        model.AnimationIdle,
			Loops:       true,
		},
		{
			SheetPath:   "acolyte/acolyte_idle.png",
			FrameWidth:  80,
			FrameHeight: 80,
			Columns:     3,
			Rows:        4,
			FrameCount:  9,
			Kind:        model.AnimationWalk,
			Loops:       true,
		},
		{
			SheetPath:   "acolyte/acolyte_death.png",
			FrameWidth:  80,
			FrameHeight: 80,
			Columns:     3,
			Rows:        4,
			FrameCount:  9,
			Kind:        model.AnimationDeath,
		},
	}
}

// ExtraComponents attaches the acolyte's mana-grant data. The mana system
// reads this to feed mana to the summoner once per cooldown.
func (Acolyte) ExtraComponents() []any {
	return []any{
		model.ManaGrant{
			Amount:   5,
			Cooldown: time.Second,
		},
	}
}
