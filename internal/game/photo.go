package game

import (
	"github.com/glasshouse/mirrorsight/internal/room"
	"github.com/glasshouse/mirrorsight/internal/sight"
)

// Shot is the verdict on one photograph.
type Shot int

const (
	// ShotNothing: the sight-line ran out before reaching anything.
	ShotNothing Shot = iota
	// ShotDecoy: the photo caught a decoy, or the player's own reflection.
	ShotDecoy
	// ShotTarget: the photo caught the real target.
	ShotTarget
)

// String returns a human-readable verdict.
func (s Shot) String() string {
	switch s {
	case ShotTarget:
		return "target"
	case ShotDecoy:
		return "decoy"
	default:
		return "nothing"
	}
}

// Classify turns a traced sight-line into a photo verdict. Photographing
// your own mirror image counts as a decoy: it is the wrong subject.
func Classify(ray sight.Ray) Shot {
	item, ok := ray.Item()
	if !ok {
		return ShotNothing
	}
	if item.Kind == room.Target {
		return ShotTarget
	}
	return ShotDecoy
}
