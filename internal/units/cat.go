package units

import "github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"

// Cat is the fast skirmisher: highest movement speed in the roster,
// moderate health. Default idle repertoire, like the warrior.
type Cat struct{}

func (Cat) StatProfile() model.StatProfile {
	return model.StatProfile{
		MoveSpeed: 300,
		MaxHealth: 125,
		Scale:     1.4,
	}
}

func (Cat) BehaviorRepertoire() model.BehaviorRepertoire {
	return model.DefaultRepertoire()
}

func (Cat) AnimationClips() []model.AnimationClipSpec {
	return []model.AnimationClipSpec{
		{
			SheetPath:   "cat/cat_idle.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     10,
			Rows:        1,
			FrameCount:  9,
			Kind:        model.AnimationIdle,
			Loops:       true,
		},
		{
			SheetPath:   "cat/cat_walk.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     8,
			Rows:        1,
			FrameCount:  7,
			Kind:        model.AnimationWalk,
			Loops:       true,
		},
		{
			SheetPath:   "cat/cat_death.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     18,
			Rows:        1,
			FrameCount:  17,
			Kind:        model.AnimationDeath,
		},
		{
			SheetPath:       "cat/cat_attack.png",
			FrameWidth:      96,
			FrameHeight:     96,
			Columns:         27,
			Rows:            1,
			FrameCount:      26,
			Kind:            model.AnimationAttack,
			AttackTriggered: true,
		},
	}
}
