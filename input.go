package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"walkthrough3d/internal/camera"
)

// pollKeys samples the movement keys for one tick.
func pollKeys(w *glfw.Window) camera.Input {
	down := func(k glfw.Key) bool { return w.GetKey(k) == glfw.Press }
	return camera.Input{
		Forward: down(glfw.KeyW),
		Back:    down(glfw.KeyS),
		Left:    down(glfw.KeyA),
		Right:   down(glfw.KeyD),
		Jump:    down(glfw.KeySpace),
	}
}

// mouse turns absolute cursor positions into per-frame deltas.
type mouse struct {
	lastX, lastY float64
	primed       bool
}

// delta returns the cursor movement since the previous call. The first
// call only records the position.
func (m *mouse) delta(w *glfw.Window) (dx, dy float32) {
	x, y := w.GetCursorPos()
	if m.primed {
		dx, dy = float32(x-m.lastX), float32(y-m.lastY)
	}
	m.lastX, m.lastY, m.primed = x, y, true
	return dx, dy
}
