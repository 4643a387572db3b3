package model

// TargetKind discriminates the Target union.
type TargetKind uint8

const (
	// TargetNone is for abilities that take no argument (train, research, ...).
	TargetNone TargetKind = iota
	// TargetPos is for abilities aimed at a position (move, build, ...).
	TargetPos
	// TargetTag is for abilities aimed at another unit (attack, repair, ...).
	TargetTag
)

// Target is the argument of an ability. It is a small comparable value,
// usable directly as a map key for command deduplication.
type Target struct {
	Kind TargetKind `json:"kind"`
	Pos  Point      `json:"pos,omitempty"`
	Tag  uint64     `json:"tag,omitempty"`
}

// NoTarget is the zero Target.
var NoTarget = Target{Kind: TargetNone}

// TargetAt builds a position target.
func TargetAt(p Point) Target { return Target{Kind: TargetPos, Pos: p} }

// TargetUnit builds a unit-reference target.
func TargetUnit(tag uint64) Target { return Target{Kind: TargetTag, Tag: tag} }
