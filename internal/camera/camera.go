package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the view basis away from the poles.
const MaxPitch = 89.0

const epsilon = 1e-6

var worldUp = mgl32.Vec3{0, 1, 0}

// Settings holds the per-tick tuning of the controller.
type Settings struct {
	Speed        float32
	Sensitivity  float32
	Gravity      float32
	JumpSpeed    float32
	PlayerHeight float32
}

// DefaultSettings returns the walkthrough tuning.
func DefaultSettings() Settings {
	return Settings{
		Speed:        0.15,
		Sensitivity:  0.12,
		Gravity:      -0.015,
		JumpSpeed:    0.25,
		PlayerHeight: 1.8,
	}
}

// Input is the set of movement keys held during one tick.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
}

// Camera is a first-person eye with gravity.
// Yaw and Pitch are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Front mgl32.Vec3
	Right mgl32.Vec3
	Up    mgl32.Vec3

	Velocity float32
	Grounded bool

	Settings Settings
}

// New places a camera at position looking along yaw/pitch.
func New(position mgl32.Vec3, yaw, pitch float32, s Settings) *Camera {
	c := &Camera{
		Position: position,
		Yaw:      yaw,
		Pitch:    clampPitch(pitch),
		Grounded: true,
		Settings: s,
		// fallback basis in case the first update is degenerate
		Front: mgl32.Vec3{0, 0, -1},
		Right: mgl32.Vec3{1, 0, 0},
		Up:    worldUp,
	}
	c.updateVectors()
	return c
}

// ProcessMouse turns the camera by a mouse delta in pixels.
// Non-finite deltas are dropped.
func (c *Camera) ProcessMouse(dx, dy float32) {
	if !finite(dx) || !finite(dy) {
		return
	}
	c.Yaw += dx * c.Settings.Sensitivity
	c.Pitch = clampPitch(c.Pitch - dy*c.Settings.Sensitivity)
	c.updateVectors()
}

// Update advances one fixed tick: horizontal walk, jump, gravity and the
// ground clamp.
func (c *Camera) Update(in Input) {
	s := c.Settings

	move := mgl32.Vec3{c.Front.X(), 0, c.Front.Z()}
	if l := move.Len(); l > epsilon {
		move = move.Mul(1 / l)
	}
	if in.Forward {
		c.Position = c.Position.Add(move.Mul(s.Speed))
	}
	if in.Back {
		c.Position = c.Position.Sub(move.Mul(s.Speed))
	}
	if in.Left {
		c.Position = c.Position.Sub(c.Right.Mul(s.Speed))
	}
	if in.Right {
		c.Position = c.Position.Add(c.Right.Mul(s.Speed))
	}

	// The impulse goes in before integration, otherwise the clamp below
	// cancels it on the same tick.
	if in.Jump && c.Grounded {
		c.Velocity = s.JumpSpeed
		c.Grounded = false
	}

	c.Velocity += s.Gravity
	c.Position[1] += c.Velocity

	if c.Position[1] <= s.PlayerHeight {
		c.Position[1] = s.PlayerHeight
		c.Velocity = 0
		c.Grounded = true
	}
}

// Target is the point one unit ahead of the eye.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Front)
}

// View returns the look-at matrix for the current pose.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), c.Up)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	l := front.Len()
	if !(l > epsilon) || !finite(l) {
		return
	}
	front = front.Mul(1 / l)

	right := front.Cross(worldUp)
	if rl := right.Len(); rl > epsilon {
		right = right.Mul(1 / rl)
	}

	c.Front = front
	c.Right = right
	c.Up = right.Cross(front)
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
