package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

const (
	buildingHeight = 9.5
	groundExtent   = 40
	archRatio      = 0.8
)

// Ground draws the street plane.
func (s *Scene) Ground(p geom.Pen) {
	const e = groundExtent
	p.Quad(s.Palette.Ground,
		mgl32.Vec3{-e, 0, -e}, mgl32.Vec3{-e, 0, e},
		mgl32.Vec3{e, 0, e}, mgl32.Vec3{e, 0, -e})
}

// Balcony draws a slab at base with a railing sizeZ in front of the wall.
func (s *Scene) Balcony(p geom.Pen, base mgl32.Vec3, sizeX, sizeZ float32) {
	pal := s.Palette
	lay := s.Layout
	x, y, z := base[0], base[1], base[2]
	rail := lay.BalconyRail

	p.Box(mgl32.Vec3{x, y, z + sizeZ/2}, mgl32.Vec3{sizeX + 0.1, 0.2, sizeZ + 0.1}, pal.Molding)
	p.Box(mgl32.Vec3{x, y + rail, z + sizeZ}, mgl32.Vec3{sizeX + 0.1, 0.08, 0.08}, pal.BalconyGrill)
	p.Box(mgl32.Vec3{x - sizeX/2, y + rail, z + sizeZ/2}, mgl32.Vec3{0.08, 0.08, sizeZ}, pal.BalconyGrill)
	p.Box(mgl32.Vec3{x + sizeX/2, y + rail, z + sizeZ/2}, mgl32.Vec3{0.08, 0.08, sizeZ}, pal.BalconyGrill)

	if lay.BalconyPosts < 2 {
		return
	}
	step := sizeX / float32(lay.BalconyPosts-1)
	for i := 0; i < lay.BalconyPosts; i++ {
		px := x - sizeX/2 + step*float32(i)
		p.Box(mgl32.Vec3{px, y + rail/2, z + sizeZ}, mgl32.Vec3{0.04, rail, 0.04}, pal.BalconyGrill)
	}
}

// OrnateWindow draws an arched window with a molding surround and
// mullions.
func (s *Scene) OrnateWindow(p geom.Pen, center, size mgl32.Vec3) {
	pal := s.Palette
	x, y, z := center[0], center[1], center[2]
	p.ArchedOpening(mgl32.Vec3{x, y, z - 0.02}, size.Add(mgl32.Vec3{0.2, 0.2, 0}), pal.Molding, archRatio)
	p.ArchedOpening(center, size, pal.DoorWindow, archRatio)
	p.Box(mgl32.Vec3{x, y, z + 0.01}, mgl32.Vec3{size[0] * 0.9, 0.05, 0.02}, pal.Molding)
	for _, off := range []float32{-0.4, 0, 0.4} {
		p.Box(mgl32.Vec3{x + off, y, z + 0.01}, mgl32.Vec3{0.05, size[1] * 0.9, 0.02}, pal.Molding)
	}
}

// Facade draws the outer shell: walls, moldings, arched street openings,
// balconied upper windows and the roof lantern.
func (s *Scene) Facade(p geom.Pen) {
	pal := s.Palette
	lay := s.Layout
	hw, hd := lay.HalfWidth, lay.HalfDepth
	w := 2 * hw
	const h = buildingHeight

	// shell, leaving the street-level door gap in the front wall
	p.Box(mgl32.Vec3{0, h / 2, -hd - 0.05}, mgl32.Vec3{w, h, 0.1}, pal.Wall)
	p.Box(mgl32.Vec3{-hw - 0.05, h / 2, 0}, mgl32.Vec3{0.1, h, 2 * hd}, pal.Wall)
	p.Box(mgl32.Vec3{hw + 0.05, h / 2, 0}, mgl32.Vec3{0.1, h, 2 * hd}, pal.Wall)

	door := lay.DoorHeight
	p.Box(mgl32.Vec3{0, door + (h-door)/2, hd}, mgl32.Vec3{w, h - door, 0.1}, pal.Wall)
	side := hw - lay.DoorHinge
	p.Box(mgl32.Vec3{-(lay.DoorHinge + side/2), door / 2, hd}, mgl32.Vec3{side, door, 0.1}, pal.Wall)
	p.Box(mgl32.Vec3{lay.DoorHinge + side/2, door / 2, hd}, mgl32.Vec3{side, door, 0.1}, pal.Wall)

	for i := 0; i <= lay.Floors; i++ {
		y := 3.5 + float32(i)*lay.FloorHeight
		p.Box(mgl32.Vec3{0, y, hd + 0.1}, mgl32.Vec3{w + 0.5, 0.4, 0.3}, pal.Molding)
	}

	for _, bay := range lay.GroundBays {
		x := float32(bay) * lay.BaySpacing
		p.ArchedOpening(mgl32.Vec3{x, 1.4, hd + 0.06}, mgl32.Vec3{1.6, 2.8, 0.1}, pal.DoorWindow, archRatio)
		s.Balcony(p, mgl32.Vec3{x, 0, hd}, 1.8, 0.6)
	}
	for floor := 1; floor <= lay.Floors; floor++ {
		y := 1.4 + float32(floor)*lay.FloorHeight
		for bay := -lay.UpperBays; bay <= lay.UpperBays; bay++ {
			x := float32(bay) * lay.BaySpacing
			s.OrnateWindow(p, mgl32.Vec3{x, y, hd + 0.06}, mgl32.Vec3{1.6, 2.2, 0.1})
			s.Balcony(p, mgl32.Vec3{x, y - 1.3, hd}, 1.8, 1.0)
		}
	}

	// roof lantern
	p.Box(mgl32.Vec3{0, 10.5, hd - 2}, mgl32.Vec3{4, 1.5, 5}, pal.Molding)
	p.Box(mgl32.Vec3{0, 11.2, hd - 2}, mgl32.Vec3{4.2, 0.2, 5.2}, pal.Roof)
	s.OrnateWindow(p, mgl32.Vec3{0, 10.5, hd + 0.55}, mgl32.Vec3{1.0, 1.2, 0.1})
}

// Ramp draws the access ramp in front of the door with its handrails.
func (s *Scene) Ramp(p geom.Pen) {
	pal := s.Palette
	hd := s.Layout.HalfDepth
	rise := s.Layout.Lift
	front := hd + 0.1
	end := hd + 4

	p.Quad(pal.Ramp,
		mgl32.Vec3{-2.5, rise, front}, mgl32.Vec3{2.5, rise, front},
		mgl32.Vec3{2.5, 0, end}, mgl32.Vec3{-2.5, 0, end})

	for _, sign := range []float32{-1, 1} {
		x := 2.4 * sign
		for i := 0; i < 5; i++ {
			t := float32(i) / 4
			p.Box(mgl32.Vec3{x, rise - t*rise + 0.5, front + t*(end-front)}, mgl32.Vec3{0.05, 1, 0.05}, pal.Handrail)
		}
		p.Lines(pal.Handrail, 5, mgl32.Vec3{x, rise + 1, front}, mgl32.Vec3{x, 1, end})
	}
}

// Door is the state of the front double door.
type Door struct {
	Open bool
}

// Toggle opens a closed door and closes an open one.
func (d *Door) Toggle() {
	d.Open = !d.Open
}

// Angle is the swing of each leaf in degrees.
func (d Door) Angle() float32 {
	if d.Open {
		return 90
	}
	return 0
}

// DoubleDoor draws both leaves hinged at ±DoorHinge on the front wall,
// swung by the door's angle.
func (s *Scene) DoubleDoor(p geom.Pen, d Door) {
	lay := s.Layout
	dw, dh, dt := lay.DoorWidth, lay.DoorHeight, lay.DoorThickness
	size := mgl32.Vec3{dw, dh, dt}
	z := lay.HalfDepth + dt/2
	a := d.Angle()

	p.Translate(-lay.DoorHinge, 0, z).RotateY(a).Translate(dw/2, dh/2, 0).
		Box(mgl32.Vec3{}, size, s.Palette.DoorWindow)
	p.Translate(lay.DoorHinge, 0, z).RotateY(-a).Translate(-dw/2, dh/2, 0).
		Box(mgl32.Vec3{}, size, s.Palette.DoorWindow)
}
