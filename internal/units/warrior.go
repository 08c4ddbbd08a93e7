package units

import "github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"

// Warrior is the heavy melee brawler: slow, huge health pool, big sprite.
// It declares no special behaviors and runs on the default idle repertoire;
// the combat systems drive it through its attack clip directly.
type Warrior struct{}

func (Warrior) StatProfile() model.StatProfile {
	return model.StatProfile{
		MoveSpeed: 200,
		MaxHealth: 255,
		Scale:     1.8,
	}
}

func (Warrior) BehaviorRepertoire() model.BehaviorRepertoire {
	return model.DefaultRepertoire()
}

func (Warrior) AnimationClips() []model.AnimationClipSpec {
	return []model.AnimationClipSpec{
		{
			SheetPath:   "warrior/warrior_idle.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     21,
			Rows:        1,
			FrameCount:  20,
			Kind:        model.AnimationIdle,
			Loops:       true,
		},
		{
			SheetPath:   "warrior/warrior_walk.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     11,
			Rows:        1,
			FrameCount:  10,
			Kind:        model.AnimationWalk,
			Loops:       true,
		},
		{
			SheetPath:   "warrior/warrior_death.png",
			FrameWidth:  96,
			FrameHeight: 96,
			Columns:     36,
			Rows:        1,
			FrameCount:  35,
			Kind:        model.AnimationDeath,
		},
		{
			SheetPath:       "warrior/warrior_attack.png",
			FrameWidth:      96,
			FrameHeight:     96,
			Columns:         33,
			Rows:            1,
			FrameCount:      32,
			Kind:            model.AnimationAttack,
			AttackTriggered: true,
		},
	}
}
