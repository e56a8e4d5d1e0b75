package level

import (
	"errors"
	"fmt"

	"github.com/tiot2/wmt/pkg/math"
)

// ErrNoContainingSector is returned when a position lies outside every
// sector of the level.
var ErrNoContainingSector = errors.New("no sector contains the location")

// Walker tracks a pose moving through a level sector by sector. Moves
// are accepted only when the target position stays inside the current
// sector or crosses a portal whose destination the walker fits into,
// so a walker can never end up inside a wall.
type Walker struct {
	level  *Level
	Pose   Pose
	Sector SectorID
}

// NewWalker places a walker at the level's initial camera pose.
func NewWalker(lvl *Level) (*Walker, error) {
	pose := NewPose()
	pose.Set(lvl.Camera.Location(), lvl.Camera.Height, lvl.Camera.Rotation)

	id, ok := lvl.FindSector(pose.Location)
	if !ok {
		return nil, fmt.Errorf("camera at %v: %w", pose.Location, ErrNoContainingSector)
	}

	return &Walker{level: lvl, Pose: pose, Sector: id}, nil
}

// Step attempts to move by delta in the plane and dh vertically.
// It returns true when the move was accepted. Crossing into another
// sector requires the current height to lie within the destination's
// floor and ceiling; the height is always clamped to the bounds of the
// sector the walker ends up in.
func (w *Walker) Step(delta math.Vec2, dh float32) bool {
	target := w.Pose.Location.Add(delta)
	newHeight := w.Pose.Height + dh

	id, ok := w.level.FindAdjacentSector(target, w.Sector)
	if !ok {
		return false
	}

	dst := w.level.GetSector(id)

	if id != w.Sector {
		if w.Pose.Height < dst.Floor || w.Pose.Height > dst.Ceiling {
			return false
		}
		w.Sector = id
	}

	w.Pose.Set(target, clamp(newHeight, dst.Floor, dst.Ceiling), w.Pose.Rotation)
	return true
}

// Turn rotates the walker in place.
func (w *Walker) Turn(delta float32) {
	w.Pose.Set(w.Pose.Location, w.Pose.Height, w.Pose.Rotation+delta)
}

// CurrentSector returns the sector the walker is in.
func (w *Walker) CurrentSector() *Sector {
	return w.level.GetSector(w.Sector)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
