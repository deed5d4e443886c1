package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxPitch bounds the pitch angle in degrees so the view never flips over
// the vertical axis. The range is closed: pitch may equal ±MaxPitch.
const MaxPitch = 89.0

// Up is the world's vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// Pose holds the observer's position and orientation. Yaw and Pitch are in
// degrees; positive pitch looks up. At yaw 0 the observer faces -Z.
type Pose struct {
	Position   mgl64.Vec3
	Yaw, Pitch float64
}

// NewPose returns a pose at pos with the given orientation, pitch clamped.
func NewPose(pos mgl64.Vec3, yaw, pitch float64) Pose {
	p := Pose{Position: pos, Yaw: yaw}
	p.Look(0, pitch)
	return p
}

// Look rotates the pose by the given deltas and clamps pitch to
// [-MaxPitch, MaxPitch]. It is the only place orientation changes.
func (p *Pose) Look(dYaw, dPitch float64) {
	p.Yaw += dYaw
	p.Pitch = mgl64.Clamp(p.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Direction returns the unit aim vector.
func (p Pose) Direction() mgl64.Vec3 {
	yaw := mgl64.DegToRad(p.Yaw)
	pitch := mgl64.DegToRad(p.Pitch)
	cp := math.Cos(pitch)
	return mgl64.Vec3{
		-math.Sin(yaw) * cp,
		math.Sin(pitch),
		-math.Cos(yaw) * cp,
	}
}

// Forward returns the horizontal unit vector the observer faces. Pitch is
// ignored so walking never leaves the horizontal plane.
func (p Pose) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(p.Yaw)
	return mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
}

// Right returns the horizontal unit vector to the observer's right.
func (p Pose) Right() mgl64.Vec3 {
	return p.Forward().Cross(Up).Normalize()
}

// Move translates the pose along Forward, Right and Up by the given amounts.
func (p *Pose) Move(forward, right, up float64) {
	delta := p.Forward().Mul(forward).
		Add(p.Right().Mul(right)).
		Add(Up.Mul(up))
	p.Position = p.Position.Add(delta)
}
