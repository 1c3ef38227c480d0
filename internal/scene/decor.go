package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

// Hand angles of the wall clock, degrees counter-clockwise from 3 o'clock.
const (
	minuteHandAngle = -60.0
	hourHandAngle   = -305.0
)

const clockSlices = 96

// WallClock draws a round clock centered on center. With FacePlusX the
// face looks down +X, otherwise down +Z.
func (s *Scene) WallClock(p geom.Pen, center mgl32.Vec3, radius float32, f Facing) {
	pal := s.Palette
	p = p.TranslateV(center)
	if f == FacePlusX {
		p = p.RotateY(90)
	}

	p.AnnulusXY(mgl32.Vec3{}, radius, radius-0.035, pal.ClockBezel, clockSlices)
	face := radius - 0.038
	p.DiskXY(mgl32.Vec3{0, 0, 0.0008}, face, pal.White, clockSlices)

	ticks := make([]mgl32.Vec3, 0, 24)
	for i := 0; i < 12; i++ {
		a := 2 * math.Pi * float64(i) / 12
		co, si := float32(math.Cos(a)), float32(math.Sin(a))
		r0, r1 := face*0.82, face*0.95
		ticks = append(ticks,
			mgl32.Vec3{r0 * co, r0 * si, 0.0012},
			mgl32.Vec3{r1 * co, r1 * si, 0.0012},
		)
	}
	p.Lines(pal.Black, 2.5, ticks...)

	hub := mgl32.Vec3{0, 0, 0.0016}
	p.Lines(pal.Black, 3.0, hub, handTip(hourHandAngle, 0.55*face))
	p.Lines(pal.Black, 2.5, hub, handTip(minuteHandAngle, 0.88*face))
	p.Point(pal.Black, 6, hub)
}

func handTip(deg float64, length float32) mgl32.Vec3 {
	a := deg * math.Pi / 180
	return mgl32.Vec3{length * float32(math.Cos(a)), length * float32(math.Sin(a)), 0.0016}
}

// Painting draws a framed beach scene centered on center. The canvas
// faces +Z, or +X with FacePlusX.
func (s *Scene) Painting(p geom.Pen, center mgl32.Vec3, width, height float32, f Facing) {
	const (
		thickness = 0.03
		frame     = 0.1
		eps       = 0.001
	)
	pal := s.Palette
	p = p.TranslateV(center)
	if f == FacePlusX {
		p = p.RotateY(90)
	}

	p.Box(mgl32.Vec3{}, mgl32.Vec3{width, height, thickness}, pal.Frame)

	plane := float32(thickness/2 + eps)
	l, r := -width/2+frame, width/2-frame
	b, t := -height/2+frame, height/2-frame
	inner := t - b
	horizon := b + inner*0.6
	sandH := inner * 0.16
	seaTop, seaBottom := horizon-inner*0.02, b+sandH

	p.GradientQuad(pal.SkyTop, pal.SkyHorizon,
		mgl32.Vec3{l, t, plane}, mgl32.Vec3{r, t, plane},
		mgl32.Vec3{r, horizon, plane}, mgl32.Vec3{l, horizon, plane})
	p.GradientQuad(pal.SeaTop, pal.SeaBottom,
		mgl32.Vec3{l, seaTop, plane}, mgl32.Vec3{r, seaTop, plane},
		mgl32.Vec3{r, seaBottom, plane}, mgl32.Vec3{l, seaBottom, plane})
	p.Quad(pal.Sand,
		mgl32.Vec3{l, b, plane}, mgl32.Vec3{r, b, plane},
		mgl32.Vec3{r, b + sandH, plane}, mgl32.Vec3{l, b + sandH, plane})
	p.DiskXY(mgl32.Vec3{r - inner*0.3, t - inner*0.2, plane + 0.0015}, inner*0.12, pal.Sun, 72)
}

// WoodFloor draws a plank floor at height y covering size.x by size.z
// around center. Planks run along Z; each gets a slightly different tint
// and a dark seam on its left edge, plus one closing seam on the right.
func (s *Scene) WoodFloor(p geom.Pen, center mgl32.Vec3, sizeX, sizeZ, plankWidth float32) {
	pal := s.Palette
	x0, x1 := center[0]-sizeX/2, center[0]+sizeX/2
	z0, z1 := center[2]-sizeZ/2, center[2]+sizeZ/2
	top := center[1]
	line := top + 0.0007

	n := 1
	if plankWidth > 0 {
		n = max(1, int(math.Ceil(float64((x1-x0)/plankWidth))))
	}
	w := (x1 - x0) / float32(n)

	seams := make([]mgl32.Vec3, 0, 2*(n+1))
	for i := 0; i < n; i++ {
		a, b := x0+float32(i)*w, x0+float32(i+1)*w
		p.Quad(pal.FloorBase.Scale(plankTint(i)),
			mgl32.Vec3{a, top, z0}, mgl32.Vec3{a, top, z1},
			mgl32.Vec3{b, top, z1}, mgl32.Vec3{b, top, z0})
		seams = append(seams, mgl32.Vec3{a, line, z0}, mgl32.Vec3{a, line, z1})
	}
	seams = append(seams, mgl32.Vec3{x1, line, z0}, mgl32.Vec3{x1, line, z1})
	p.Lines(pal.FloorSeam, 1.5, seams...)
}

// plankTint is a deterministic brightness factor in [0.9, 1.02].
func plankTint(i int) float32 {
	f := float64(i)
	return float32(0.9 + 0.12*(0.5+0.5*math.Sin(f*2.1)*math.Cos(f*0.7)))
}
