package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"walkthrough3d/internal/geom"
)

// Book packing constants.
const (
	BookGap    = 0.006
	LeanEvery  = 7
	LeanAngle  = 5.0
	LeanMargin = 0.12
)

// Book dimensions cycle through these so every shelf looks the same on
// every frame.
var (
	bookWidths  = []float32{0.07, 0.05, 0.08, 0.06, 0.09, 0.045, 0.075, 0.065, 0.055, 0.085}
	bookHeights = []float32{0.42, 0.36, 0.48, 0.4, 0.44, 0.38, 0.46, 0.41, 0.43, 0.39}
)

// Bookshelf dimensions.
const (
	shelfWidth   = 2.00
	shelfHeight  = 3.00
	shelfDepth   = 0.40
	shelfSide    = 0.06
	shelfBoard   = 0.05
	shelfBack    = 0.02
	shelfRows    = 5
	shelfSkin    = 0.004
	minClearance = 0.1
)

// Book is one placed book on a shelf row. Left is its left edge along the
// row; Lean is a rotation in degrees about the depth axis.
type Book struct {
	Left   float32
	Width  float32
	Height float32
	Lean   float32
	Color  geom.Color
}

// Center is the book's midpoint along the row.
func (b Book) Center() float32 {
	return b.Left + b.Width/2
}

// Right is the book's right edge.
func (b Book) Right() float32 {
	return b.Left + b.Width
}

// PackShelf fills the span [left, right] of shelf row number shelf with
// books, greedily from the left. Heights are clipped to clearance. The
// packer stops at the first book that would overflow the span; a span
// too narrow for the first book yields no books, as does a span that is
// not finite.
func PackShelf(left, right, clearance float32, shelf int, colors []geom.Color) []Book {
	if !(left <= right) || math.IsInf(float64(right-left), 0) {
		return nil
	}
	var books []Book
	cur := left
	for k := 0; ; k++ {
		w := geom.Pick(bookWidths, k)
		if cur+w > right {
			break
		}
		h := geom.Pick(bookHeights, k)
		if h > clearance {
			h = clearance
		}
		b := Book{
			Left:   cur,
			Width:  w,
			Height: h,
			Color:  geom.Pick(colors, shelf*5+k),
		}
		mid := b.Center()
		if (shelf+k)%LeanEvery == 0 && mid-left > LeanMargin && right-mid > LeanMargin {
			b.Lean = LeanAngle
			if k%2 == 0 {
				b.Lean = -LeanAngle
			}
		}
		books = append(books, b)
		cur += w + BookGap
	}
	return books
}

// NextBookWidth is the width of the book PackShelf would try after n
// placed books.
func NextBookWidth(n int) float32 {
	return geom.Pick(bookWidths, n)
}

// Bookshelf draws a filled bookshelf standing on base, open towards +Z.
func (s *Scene) Bookshelf(p geom.Pen, base mgl32.Vec3) {
	pal := s.Palette
	x, y, z := base[0], base[1], base[2]
	const (
		w, h, d = shelfWidth, shelfHeight, shelfDepth
		t       = shelfSide
	)

	// carcass
	p.Box(mgl32.Vec3{x - (w/2 - t/2), y + h/2, z}, mgl32.Vec3{t, h, d}, pal.WoodDark)
	p.Box(mgl32.Vec3{x + (w/2 - t/2), y + h/2, z}, mgl32.Vec3{t, h, d}, pal.WoodDark)
	p.Box(mgl32.Vec3{x, y + t/2, z}, mgl32.Vec3{w, t, d}, pal.WoodDark)
	p.Box(mgl32.Vec3{x, y + h - t/2, z}, mgl32.Vec3{w, t, d}, pal.WoodDark)
	p.Box(mgl32.Vec3{x, y + h/2, z - d/2 + shelfBack/2 + 0.001}, mgl32.Vec3{w - 2*t, h - 2*t, shelfBack}, pal.WoodDark)

	innerH, innerD := float32(h-2*t), float32(d-0.06)
	p.Box(mgl32.Vec3{x - (w/2 - t) + shelfSkin/2, y + t + innerH/2, z}, mgl32.Vec3{shelfSkin, innerH, innerD}, pal.WoodDark)
	p.Box(mgl32.Vec3{x + (w/2 - t) - shelfSkin/2, y + t + innerH/2, z}, mgl32.Vec3{shelfSkin, innerH, innerD}, pal.WoodDark)

	left, right := x-(w/2-t)+0.01, x+(w/2-t)-0.01
	bookD := float32(d - shelfBack - 0.08)
	bookZ := (z - d/2 + shelfBack) + bookD/2 + 0.01

	var rows [shelfRows]float32
	for i := range rows {
		rows[i] = y + t + float32(i)*(innerH/(shelfRows-1))
		p.Box(mgl32.Vec3{x, rows[i], z}, mgl32.Vec3{w - 2*t, shelfBoard, innerD}, pal.WoodLight)
	}

	for i, row := range rows {
		floor := row + shelfBoard/2 + 0.003
		ceiling := y + h - 0.06
		if i < shelfRows-1 {
			ceiling = rows[i+1] - shelfBoard/2
		}
		clearance := ceiling - floor - 0.02
		if clearance < minClearance {
			clearance = minClearance
		}
		for _, b := range PackShelf(left, right, clearance, i, pal.BookPalette[:]) {
			p.Translate(b.Center(), floor+b.Height/2, bookZ).
				RotateZ(b.Lean).
				Box(mgl32.Vec3{}, mgl32.Vec3{b.Width, b.Height, bookD}, b.Color)
		}
	}
}

// Facing selects which way a wall-mounted item looks.
type Facing int

const (
	FacePlusZ Facing = iota
	FaceMinusZ
	FacePlusX
)

// PlaceBookshelf draws a bookshelf at base turned to face f.
func (s *Scene) PlaceBookshelf(p geom.Pen, base mgl32.Vec3, f Facing) {
	p = p.TranslateV(base)
	switch f {
	case FaceMinusZ:
		p = p.RotateY(180)
	case FacePlusX:
		p = p.RotateY(90)
	}
	s.Bookshelf(p, mgl32.Vec3{})
}
