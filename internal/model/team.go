package model

// Team identifies which side a unit fights for
type Team int32

const (
	// TeamPlayer - units summoned by the player
	TeamPlayer Team = iota
	// TeamEnemy - units spawned by the arena itself
	TeamEnemy
)

// String returns human-readable team name
func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "PLAYER"
	case TeamEnemy:
		return "ENEMY"
	default:
		return "UNKNOWN"
	}
}

// CurrentTeam is the component holding a unit's team affiliation.
// It is always set from the caller-supplied team at spawn time,
// never from per-type static data.
type CurrentTeam struct {
	Team Team
}
