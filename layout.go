package boxen

import "math"

// Affine2D is a 2D affine matrix [a b c d tx ty], laid out as:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// It places a panel's local outline onto a cutting sheet: SheetLayout uses
// only translation and 90-degree rotation, but the general composition is
// kept so a future nesting strategy (diagonal packing, mirrored duplicates)
// can reuse it without a new matrix type.
type Affine2D [6]float64

// IdentityAffine2D is the identity transform.
var IdentityAffine2D = Affine2D{1, 0, 0, 1, 0, 0}

// Translation returns a pure-translation transform.
func Translation(tx, ty float64) Affine2D { return Affine2D{1, 0, 0, 1, tx, ty} }

// Rotation returns a pure-rotation transform, angle in radians.
func Rotation(angle float64) Affine2D {
	sin, cos := math.Sincos(angle)
	return Affine2D{cos, sin, -sin, cos, 0, 0}
}

// Multiply composes two transforms: the result applies child first, then m
// (result = m * child).
func (m Affine2D) Multiply(child Affine2D) Affine2D {
	return Affine2D{
		m[0]*child[0] + m[2]*child[1],
		m[1]*child[0] + m[3]*child[1],
		m[0]*child[2] + m[2]*child[3],
		m[1]*child[2] + m[3]*child[3],
		m[0]*child[4] + m[2]*child[5] + m[4],
		m[1]*child[4] + m[3]*child[5] + m[5],
	}
}

// Invert returns the inverse transform, or IdentityAffine2D if m is
// singular.
func (m Affine2D) Invert() Affine2D {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine2D
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine2D{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms a point by m.
func (m Affine2D) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyToPath transforms every point of p by m.
func (m Affine2D) ApplyToPath(p Path) Path {
	out := make([]Vec2, len(p.Points))
	for i, pt := range p.Points {
		out[i] = m.Apply(pt)
	}
	return Path{Points: out}
}

// PanelPlacement records where one panel was placed during sheet nesting:
// which sheet, and the transform from the panel's own local frame into that
// sheet's coordinate space.
type PanelPlacement struct {
	PanelID   string
	Sheet     int
	Transform Affine2D
}

// SheetLayout packs panels onto fixed-size sheets using simple shelf
// packing: panels are placed left to right along the current shelf; a
// panel that doesn't fit (even rotated 90 degrees) starts a new shelf, and
// a shelf that doesn't fit starts a new sheet. This is the one nesting
// strategy the engine itself provides; external tools (see the exportsvg
// package) are free to recompute their own layout from the snapshot.
func SheetLayout(panels []PanelSnapshot, sheetWidth, sheetHeight, margin float64) []PanelPlacement {
	placements := make([]PanelPlacement, 0, len(panels))

	sheet := 0
	cursorX, cursorY, shelfHeight := margin, margin, 0.0

	for _, p := range panels {
		w, h := p.Width, p.Height
		rotated := false
		if cursorX+w+margin > sheetWidth && cursorX+h+margin <= sheetWidth {
			w, h = h, w
			rotated = true
		}

		if cursorX+w+margin > sheetWidth {
			cursorX = margin
			cursorY += shelfHeight + margin
			shelfHeight = 0
		}
		if cursorY+h+margin > sheetHeight {
			sheet++
			cursorX, cursorY, shelfHeight = margin, margin, 0
		}

		transform := Translation(cursorX, cursorY)
		if rotated {
			transform = Translation(cursorX, cursorY).Multiply(Rotation(math.Pi / 2)).Multiply(Translation(0, -p.Height))
		}

		placements = append(placements, PanelPlacement{PanelID: p.ID, Sheet: sheet, Transform: transform})

		cursorX += w + margin
		if h > shelfHeight {
			shelfHeight = h
		}
	}

	return placements
}
