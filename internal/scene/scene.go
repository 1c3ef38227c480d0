// Package scene composes the library walkthrough out of geom primitives.
//
// Nothing is retained between frames: Draw re-emits the whole building
// every time it is called, in a fixed order.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

// Scene holds the immutable inputs of the composition.
type Scene struct {
	Palette Palette
	Layout  Layout
}

// New returns a scene with the given layout and the default palette.
func New(layout Layout) *Scene {
	return &Scene{Palette: DefaultPalette(), Layout: layout}
}

// Inside reports whether eye is within the building footprint.
func (s *Scene) Inside(eye mgl32.Vec3) bool {
	hw, hd := s.Layout.HalfWidth, s.Layout.HalfDepth
	return eye[0] > -hw && eye[0] < hw && eye[2] > -hd && eye[2] < hd
}

// ClearColor is the background for a frame seen from eye.
func (s *Scene) ClearColor(eye mgl32.Vec3) geom.Color {
	if s.Inside(eye) {
		return s.Palette.Interior
	}
	return s.Palette.Sky
}

// Draw emits one frame as seen from eye. From outside the street, the
// facade and the ramp are drawn; from inside only the interior, with the
// front wall closed so the street does not show through the windows.
func (s *Scene) Draw(p geom.Pen, eye mgl32.Vec3, door Door) {
	lifted := p.Translate(0, s.Layout.Lift, 0)
	if s.Inside(eye) {
		s.Interior(lifted, true)
	} else {
		s.Ground(p)
		s.Facade(lifted)
		s.Interior(lifted, false)
		s.Ramp(p)
	}
	s.DoubleDoor(lifted, door)
}

// Interior draws the reading room. closeFront adds an inner front wall.
func (s *Scene) Interior(p geom.Pen, closeFront bool) {
	pal := s.Palette
	hw, hd := s.Layout.HalfWidth, s.Layout.HalfDepth
	const h = buildingHeight

	p.Box(mgl32.Vec3{-hw - 0.25, h / 2, 0}, mgl32.Vec3{0.5, h, 2 * hd}, pal.Interior)
	p.Box(mgl32.Vec3{hw + 0.25, h / 2, 0}, mgl32.Vec3{0.5, h, 2 * hd}, pal.Interior)
	p.Box(mgl32.Vec3{0, h / 2, -hd - 0.25}, mgl32.Vec3{2*hw + 0.5, h, 0.5}, pal.Interior)
	s.WoodFloor(p, mgl32.Vec3{0, 0.03, 0}, 2*hw, 2*hd, 0.45)

	s.PlaceBookshelf(p, mgl32.Vec3{-7.6, 0, -2.4}, FacePlusZ)
	s.PlaceBookshelf(p, mgl32.Vec3{7.6, 0, -2.4}, FacePlusZ)
	s.PlaceBookshelf(p, mgl32.Vec3{-7.6, 0, 2.6}, FaceMinusZ)
	s.PlaceBookshelf(p, mgl32.Vec3{7.6, 0, 2.6}, FaceMinusZ)

	s.Table(p, mgl32.Vec3{5, 0, -1})
	s.Chair(p, mgl32.Vec3{4.2, 0, -1}, 90)
	s.Counter(p, mgl32.Vec3{0, 0, -3})
	s.Plant(p, mgl32.Vec3{8, 0, 2})
	s.RoundTableWithChairs(p, mgl32.Vec3{-2, 0, 1.5}, 0.8)
	s.WallClock(p, mgl32.Vec3{-hw + 0.05, 3.2, -0.6}, 0.5, FacePlusX)
	s.Painting(p, mgl32.Vec3{0, 2.2, -hd + 0.05}, 2.2, 1.3, FacePlusZ)

	if closeFront {
		p.Box(mgl32.Vec3{0, h / 2, hd - 0.05}, mgl32.Vec3{2 * hw, h, 0.1}, pal.Interior)
	}
}
