package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// pitchMargin keeps orbit pitch away from the poles to avoid gimbal flip
const pitchMargin = 0.1

// Camera is an eye/center/up pose. No view matrix is persisted; the basis
// is recomputed from the pose on every call, so reading operations never
// mutate state.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// NewCamera creates a camera looking from eye toward center
func NewCamera(eye, center, up mgl32.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up}
}

// BasisChange transforms a camera-space direction into world space using
// the current orthonormalized basis, then normalizes. Camera space looks
// down -Z.
func (c *Camera) BasisChange(v mgl32.Vec3) mgl32.Vec3 {
	forward := c.Center.Sub(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rotated := right.Mul(v.X()).
		Add(up.Mul(v.Y())).
		Sub(forward.Mul(v.Z()))
	return rotated.Normalize()
}

// Move translates eye and center along the current forward and right
// directions, preserving the look direction.
func (c *Camera) Move(forward, rightward float32) {
	forwardDir := c.Center.Sub(c.Eye).Normalize()
	rightDir := forwardDir.Cross(c.Up).Normalize()

	delta := forwardDir.Mul(forward).Add(rightDir.Mul(rightward))
	c.Eye = c.Eye.Add(delta)
	c.Center = c.Center.Add(delta)
}

// MoveVertical translates eye and center along the up vector
func (c *Camera) MoveVertical(delta float32) {
	offset := c.Up.Mul(delta)
	c.Eye = c.Eye.Add(offset)
	c.Center = c.Center.Add(offset)
}

// Orbit rotates the eye around the look-at target by the given yaw and
// pitch deltas, expressed in radians. The center is unchanged.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	radiusVec := c.Eye.Sub(c.Center)
	radius := radiusVec.Len()

	yaw := math32.Atan2(radiusVec.Z(), radiusVec.X())
	radiusXZ := math32.Sqrt(radiusVec.X()*radiusVec.X() + radiusVec.Z()*radiusVec.Z())
	pitch := math32.Atan2(-radiusVec.Y(), radiusXZ)

	yaw = math32.Mod(yaw+deltaYaw, 2*math32.Pi)
	pitch = pitch + deltaPitch
	if limit := math32.Pi/2 - pitchMargin; pitch > limit {
		pitch = limit
	} else if pitch < -limit {
		pitch = -limit
	}

	c.Eye = c.Center.Add(mgl32.Vec3{
		radius * math32.Cos(yaw) * math32.Cos(pitch),
		-radius * math32.Sin(pitch),
		radius * math32.Sin(yaw) * math32.Cos(pitch),
	})
}
