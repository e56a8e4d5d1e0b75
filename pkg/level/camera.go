package level

import (
	stdmath "math"

	"github.com/tiot2/wmt/pkg/math"
)

// Pose is a viewer pose: a 2D location with height and a facing angle,
// plus the cached camera-space basis derived from the angle.
type Pose struct {
	Location math.Vec2
	Height   float32
	// Rotation is counter-clockwise, in radians.
	Rotation  float32
	Direction math.Vec2
	Right     math.Vec2

	locationDotDirection float32
	locationDotRight     float32
}

// NewPose returns a pose at the origin looking along +X.
func NewPose() Pose {
	var p Pose
	p.Set(math.Vec2{}, 0.5, 0)
	return p
}

// Set places the pose and recomputes the cached basis vectors.
func (p *Pose) Set(location math.Vec2, height, rotation float32) {
	p.Location = location
	p.Height = height
	p.Rotation = rotation

	sin, cos := stdmath.Sincos(float64(rotation))
	p.Direction = math.Vec2{X: float32(cos), Y: float32(sin)}
	p.Right = p.Direction.Perp()

	p.locationDotDirection = p.Location.Dot(p.Direction)
	p.locationDotRight = p.Location.Dot(p.Right)
}

// ToSpace transforms a world point into pose space, where X runs along
// the right vector and Y along the view direction.
func (p *Pose) ToSpace(world math.Vec2) math.Vec2 {
	return math.Vec2{
		X: world.Dot(p.Right) - p.locationDotRight,
		Y: world.Dot(p.Direction) - p.locationDotDirection,
	}
}
