package boxen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DimensionTween animates an assembly's outer W/H/D toward target values,
// in the same shape as the teacher package's TweenGroup: one gween.Tween
// per animated field, advanced by Update(dt) and written directly into the
// target's fields. There is no global animation manager; a caller (for
// instance a preview session driving a slider drag) calls Update itself,
// typically once per tick before re-deriving a Snapshot.
type DimensionTween struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	target *Assembly

	prevInterior Bounds3D
	Done         bool
}

// NewDimensionTween creates a DimensionTween that animates target's outer
// W, H, and D toward the given values over duration seconds using fn for
// easing. The interior void tree is rescaled on every Update, exactly as
// Assembly.SetDimensions rescales it for an instantaneous resize.
func NewDimensionTween(target *Assembly, toW, toH, toD float64, duration float32, fn ease.TweenFunc) *DimensionTween {
	t := &DimensionTween{target: target, prevInterior: target.interiorBounds()}
	t.tweens[0] = gween.New(float32(target.Bounds.W), float32(toW), duration, fn)
	t.tweens[1] = gween.New(float32(target.Bounds.H), float32(toH), duration, fn)
	t.tweens[2] = gween.New(float32(target.Bounds.D), float32(toD), duration, fn)
	t.fields[0] = &target.Bounds.W
	t.fields[1] = &target.Bounds.H
	t.fields[2] = &target.Bounds.D
	return t
}

// Update advances every tween by dt seconds, writes the interpolated
// values into the target assembly's outer bounds, and rescales its void
// tree to match. Done is set once every tween has finished.
func (t *DimensionTween) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := range t.tweens {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone

	newInterior := t.target.interiorBounds()
	rescaleVoid(t.target.Root, t.prevInterior, newInterior)
	t.prevInterior = newInterior
}
