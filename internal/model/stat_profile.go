package model

// StatProfile holds the per-type base stats a composition factory produces
// for every spawn. A fresh value is created per spawn call and owned by the
// new entity afterwards.
type StatProfile struct {
	MoveSpeed float64 // world units per second
	MaxHealth int32
	Scale     float64 // visual scale applied to the unit transform
}
