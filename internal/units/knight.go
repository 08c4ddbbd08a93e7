package units

import "github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"

// Knight is the armored enemy attacker. It carries the full behavior
// ladder - wander, advance, chase, attack, die - with weights increasing
// in escalation order, and marches on the arena origin as soon as it
// spawns.
type Knight struct{}

func (Knight) StatProfile() model.StatProfile {
	return model.StatProfile{
		MoveSpeed: 250,
		MaxHealth: 90,
		Scale:     1.5,
	}
}

func (Knight) BehaviorRepertoire() model.BehaviorRepertoire {
	return model.BehaviorRepertoire{
		Initial: model.BehaviorMoveToOrigin,
		Entries: []model.BehaviorEntry{
			{Kind: model.BehaviorWander, Weight: 3},
			{Kind: model.BehaviorMoveToOrigin, Weight: 5},
			{Kind: model.BehaviorChase, Weight: 10},
			{Kind: model.BehaviorAttack, Weight: 15},
			{Kind: model.BehaviorDead, Weight: 20},
		},
	}
}

func (Knight) AnimationClips() []model.AnimationClipSpec {
	return []model.AnimationClipSpec{
		{
			SheetPath:   "enemy/enemy_idle.png",
			FrameWidth:  64,
			FrameHeight: 64,
			Columns:     12,
			Rows:        1,
			FrameCount:  11,
			Kind:        model.AnimationIdle,
			Loops:       true,
		},
		{
			SheetPath:   "enemy/enemy_move.png",
			FrameWidth:  96,
			FrameHeight: 64,
			Columns:     8,
			Rows:        1,
			FrameCount:  7,
			Kind:        model.AnimationWalk,
			Loops:       true,
		},
		{
			SheetPath:   "enemy/enemy_death.png",
			FrameWidth:  96,
			FrameHeight: 64,
			Columns:     15,
			Rows:        1,
			FrameCount:  14,
			Kind:        model.AnimationDeath,
		},
		{
			SheetPath:       "enemy/enemy_attack.png",
			FrameWidth:      144,
			FrameHeight:     64,
			Columns:         22,
			Rows:            1,
			FrameCount:      21,
			Kind:            model.AnimationAttack,
			AttackTriggered: true,
		},
	}
}
