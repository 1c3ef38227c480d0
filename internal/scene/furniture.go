package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

const cylinderSlices = 32

// Table draws a rectangular reading table standing on base.
func (s *Scene) Table(p geom.Pen, base mgl32.Vec3) {
	x, y, z := base[0], base[1], base[2]
	c := s.Palette.WoodLight
	p.Box(mgl32.Vec3{x, y + 0.7, z}, mgl32.Vec3{1.5, 0.08, 0.8}, c)
	leg := mgl32.Vec3{0.08, 0.7, 0.08}
	for _, off := range [][2]float32{{-0.65, -0.3}, {0.65, -0.3}, {-0.65, 0.3}, {0.65, 0.3}} {
		p.Box(mgl32.Vec3{x + off[0], y + 0.35, z + off[1]}, leg, c)
	}
}

// Chair draws a chair on base with its back towards local -Z, turned by
// rotation degrees about Y.
func (s *Scene) Chair(p geom.Pen, base mgl32.Vec3, rotation float32) {
	const (
		seatThick = 0.12
		legH      = 0.45
		legOff    = 0.22
		legW      = 0.06
		seatW     = 0.55
		seatD     = 0.55
		backH     = 0.70
		backT     = 0.06
	)
	c := s.Palette.Chair
	p = p.TranslateV(base).RotateY(rotation)

	leg := mgl32.Vec3{legW, legH, legW}
	for _, off := range [][2]float32{{-legOff, -legOff}, {legOff, -legOff}, {-legOff, legOff}, {legOff, legOff}} {
		p.Box(mgl32.Vec3{off[0], legH / 2, off[1]}, leg, c)
	}
	seatY := float32(legH + seatThick/2)
	p.Box(mgl32.Vec3{0, seatY, 0}, mgl32.Vec3{seatW, seatThick, seatD}, c)
	p.Box(mgl32.Vec3{0, seatY + backH/2, -seatD/2 + 0.03}, mgl32.Vec3{seatW * 0.95, backH, backT}, c)
}

// Counter draws the lending counter centered on center.
func (s *Scene) Counter(p geom.Pen, center mgl32.Vec3) {
	p.Box(center, mgl32.Vec3{3.0, 1.0, 0.6}, s.Palette.WoodDark)
}

// Plant draws a potted shrub standing on base.
func (s *Scene) Plant(p geom.Pen, base mgl32.Vec3) {
	x, y, z := base[0], base[1], base[2]
	p.Box(mgl32.Vec3{x, y + 0.2, z}, mgl32.Vec3{0.4, 0.4, 0.4}, s.Palette.PlantPot)
	p.Box(mgl32.Vec3{x, y + 0.6, z}, mgl32.Vec3{0.6, 0.5, 0.6}, s.Palette.Plant)
}

// RoundTable draws a pedestal table with its top at base.y+height.
func (s *Scene) RoundTable(p geom.Pen, base mgl32.Vec3, radius, height float32) {
	pal := s.Palette
	p.Cylinder(base, 0.12, height, pal.TableGrayD, cylinderSlices)
	p.Cylinder(base.Sub(mgl32.Vec3{0, 0.04, 0}), 0.35, 0.04, pal.TableGray, cylinderSlices)
	p.Cylinder(base.Add(mgl32.Vec3{0, height - 0.06, 0}), radius, 0.06, pal.TableGray, cylinderSlices)
}

// RoundTableWithChairs draws a round table and four chairs facing it.
func (s *Scene) RoundTableWithChairs(p geom.Pen, base mgl32.Vec3, radius float32) {
	s.RoundTable(p, base, radius, 0.75)
	d := radius + 0.70
	s.Chair(p, base.Add(mgl32.Vec3{0, 0, d}), 180)
	s.Chair(p, base.Add(mgl32.Vec3{0, 0, -d}), 0)
	s.Chair(p, base.Add(mgl32.Vec3{d, 0, 0}), -90)
	s.Chair(p, base.Add(mgl32.Vec3{-d, 0, 0}), 90)
}
