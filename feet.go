package boxen

// FootRect describes one foot's local footprint on a wall panel's bottom
// edge: a rectangle of the given width extending downward by Height below
// whatever the edge's existing finger profile reaches at that span (§4.3
// "Feet").
type FootRect struct {
	X, Width, Height float64
}

// ComputeFeet derives the pair of foot rectangles for a wall panel's bottom
// edge from an assembly's feet configuration. Feet never appear on lid
// faces; callers only call this for a face whose normal axis differs from
// the assembly axis.
func ComputeFeet(panelWidth float64, feet FeetConfig) []FootRect {
	if !feet.Enabled {
		return nil
	}
	left := FootRect{X: feet.Inset, Width: feet.Width, Height: feet.Height}
	right := FootRect{X: panelWidth - feet.Inset - feet.Width, Width: feet.Width, Height: feet.Height}
	return []FootRect{left, right}
}

// applyFeetToBottomEdge splices foot protrusions into pts, the point list
// built so far for a panel's bottom edge only (x ascending from 0 to the
// panel's width). For each foot, every existing point whose X falls inside
// the foot's span is replaced by a flat-bottomed rectangular tab dropping
// Height below the edge's local level at that span, so a foot reads as a
// single rectangular step regardless of whatever finger teeth happen to
// fall underneath it.
func applyFeetToBottomEdge(pts []Vec2, feet []FootRect) []Vec2 {
	for _, f := range feet {
		pts = applyOneFoot(pts, f)
	}
	return pts
}

func applyOneFoot(pts []Vec2, f FootRect) []Vec2 {
	lo, hi := f.X, f.X+f.Width
	start, end := -1, -1
	for i, p := range pts {
		if p.X >= lo-EpsPoint && p.X <= hi+EpsPoint {
			if start == -1 {
				start = i
			}
			end = i
		}
	}
	if start == -1 {
		// The foot's span falls entirely within one constant-level segment, so
		// there is no existing vertex to anchor the splice on; find where it
		// sits along the edge and insert the tab there directly.
		idx := len(pts)
		for i, p := range pts {
			if p.X > hi {
				idx = i
				break
			}
		}
		level := pts[0].Y
		if idx > 0 {
			level = pts[idx-1].Y
		}
		tabY := level - f.Height
		out := make([]Vec2, 0, len(pts)+4)
		out = append(out, pts[:idx]...)
		out = append(out,
			Vec2{X: lo, Y: level},
			Vec2{X: lo, Y: tabY},
			Vec2{X: hi, Y: tabY},
			Vec2{X: hi, Y: level},
		)
		out = append(out, pts[idx:]...)
		return out
	}

	levelBefore := pts[start].Y
	if start > 0 {
		levelBefore = pts[start-1].Y
	}
	levelAfter := pts[end].Y
	if end+1 < len(pts) {
		levelAfter = pts[end+1].Y
	}

	// The tab's own bottom must be a single flat (axis-aligned) segment even
	// if the span it replaces straddled a finger-profile level change, so its
	// depth is measured from whichever side reaches lowest (most negative Y).
	base := levelBefore
	if levelAfter < base {
		base = levelAfter
	}
	tabY := base - f.Height

	out := make([]Vec2, 0, len(pts)-(end-start+1)+4)
	out = append(out, pts[:start]...)
	out = append(out,
		Vec2{X: lo, Y: levelBefore},
		Vec2{X: lo, Y: tabY},
		Vec2{X: hi, Y: tabY},
		Vec2{X: hi, Y: levelAfter},
	)
	out = append(out, pts[end+1:]...)
	return out
}
