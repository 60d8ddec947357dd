package boxen

import "math"

// AssemblyFingerData is the per-axis finger/hole transition pattern shared
// by every panel edge running along that axis, computed once per assembly
// (and per sub-assembly) and reused by every panel's outline builder so
// mating edges agree on their section boundaries (§4.1).
type AssemblyFingerData struct {
	// Points holds the N-1 cumulative section-end positions along the axis,
	// measured from the axis origin (i.e. already including InnerOffset).
	// Points[i] is the end of section i+1 (section 0's end is always
	// InnerOffset+EffectiveFingerWidth and isn't stored); the last entry is
	// therefore the absolute end of the final section, i.e. the overall end
	// of the tiled pattern.
	Points []float64
	// InnerOffset is the distance from the axis origin to the first section.
	InnerOffset float64
	// MaxJointLength is L - 2*MT, the span the finger pattern must fit in.
	MaxJointLength float64
	// SectionCount is N, the odd number of finger/hole sections.
	SectionCount int
	// EffectiveFingerWidth is the finger width actually used: the configured
	// FingerWidth, unless it had to be clamped down to fit N=3.
	EffectiveFingerWidth float64
	// Clamped reports whether EffectiveFingerWidth differs from the
	// configured MaterialConfig.FingerWidth.
	Clamped bool
}

// ComputeFingerData derives the finger/hole section pattern for a joint
// spanning axisLength, given the assembly's material configuration (§4.1).
//
// The joint span is maxJointLength = axisLength - 2*MT. The engine picks
// the largest odd section count N >= 3 such that N sections of the
// (unstretched, nominal) FingerWidth plus N-1 gaps of FingerGap*FingerWidth
// fit within maxJointLength. If even N=3 does not fit at the nominal
// FingerWidth, FingerWidth is clamped down to the largest value that makes
// N=3 fit exactly. The resulting pattern is centered in the span via
// InnerOffset, and alternates finger (even section index) and hole (odd
// section index) starting and ending on a finger, so both mating edges
// present a finger at each end.
func ComputeFingerData(axisLength float64, mc MaterialConfig) (AssemblyFingerData, error) {
	if err := mc.Validate(); err != nil {
		return AssemblyFingerData{}, err
	}

	maxJointLength := axisLength - 2*mc.Thickness
	if maxJointLength <= 0 {
		return AssemblyFingerData{}, &DimensionsInfeasibleError{Length: axisLength, MT: mc.Thickness}
	}

	fw := mc.FingerWidth
	fg := mc.FingerGap

	// used(N) = N*fw + (N-1)*fg*fw, for N sections of width fw separated by
	// N-1 gaps of width fg*fw. This is only the feasibility bound for
	// picking N: the pattern actually tiled below has ceil(N/2) finger
	// sections and floor(N/2) hole sections (it starts and ends on a
	// finger), a smaller span that the centering offset must be based on.
	used := func(n int, width float64) float64 {
		return float64(n)*width + float64(n-1)*fg*width
	}

	n := 3
	for used(n+2, fw) <= maxJointLength {
		n += 2
	}

	effectiveFW := fw
	clamped := false
	if used(n, fw) > maxJointLength {
		// Even N=3 doesn't fit at the nominal finger width: clamp it down so
		// the actual N=3 tiling (2 finger sections + 1 hole section) fits
		// exactly.
		n = 3
		effectiveFW = maxJointLength / (2 + fg)
		clamped = true
		if effectiveFW <= 0 {
			return AssemblyFingerData{}, &GeometryInfeasibleError{Length: axisLength}
		}
	}

	// relPoints[i] is the position, relative to the start of the tiled
	// pattern, at the end of section i+1; section 0's own end (always
	// effectiveFW) seeds the running total rather than being recorded, so
	// the last entry lands on the end of the final section instead of the
	// start of it.
	relPoints := make([]float64, n-1)
	pos := effectiveFW
	for i := 0; i < n-1; i++ {
		if i%2 == 0 {
			pos += fg * effectiveFW // hole section ends, finger begins
		} else {
			pos += effectiveFW // finger section ends, hole begins
		}
		relPoints[i] = pos
	}
	usedLength := relPoints[len(relPoints)-1]
	innerOffset := (maxJointLength - usedLength) / 2

	points := make([]float64, n-1)
	for i, p := range relPoints {
		points[i] = innerOffset + p
	}

	return AssemblyFingerData{
		Points:               points,
		InnerOffset:          innerOffset,
		MaxJointLength:       maxJointLength,
		SectionCount:         n,
		EffectiveFingerWidth: effectiveFW,
		Clamped:              clamped,
	}, nil
}

// sectionEnd returns the absolute position at the end of section i. Section
// 0 always ends at InnerOffset+EffectiveFingerWidth; every other section's
// end is recorded in Points.
func (d AssemblyFingerData) sectionEnd(i int) float64 {
	if i == 0 {
		return d.InnerOffset + d.EffectiveFingerWidth
	}
	return d.Points[i-1]
}

// SectionAt returns the absolute start/end of section index i (0-based,
// counting from the start of the pattern): even indices are finger
// sections, odd indices are hole sections.
func (d AssemblyFingerData) SectionAt(i int) (start, end float64) {
	start = d.InnerOffset
	if i > 0 {
		start = d.sectionEnd(i - 1)
	}
	return start, d.sectionEnd(i)
}

// IsFingerSection reports whether the section at index i protrudes (a
// "finger") as opposed to receding (a "hole"). Sections alternate starting
// and ending on a finger.
func (d AssemblyFingerData) IsFingerSection(i int) bool { return i%2 == 0 }

// nearestTransition returns the index of the transition point closest to x.
// No other code in the package calls it.
func (d AssemblyFingerData) nearestTransition(x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range d.Points {
		dist := math.Abs(p - x)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
