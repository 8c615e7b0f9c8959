package layout

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

const (
	ShakeDuration  = 250 * time.Millisecond
	ShakeAmplitude = float32(10)
)

// ShakeLayout centres its objects and shifts them horizontally by Offset.
// Animating Offset produces the wrong-PIN shake.
type ShakeLayout struct {
	Offset float32
}

func (sl *ShakeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		size := obj.MinSize()
		if size.Width > containerSize.Width {
			size.Width = containerSize.Width
		}
		size.Height = containerSize.Height

		x := (containerSize.Width-size.Width)/2 + sl.Offset
		obj.Resize(size)
		obj.Move(fyne.NewPos(x, 0))
	}
}

func (sl *ShakeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	// room for the swing on both sides
	minSize.Width += 2 * ShakeAmplitude
	return minSize
}

// OffsetAt returns the shake offset for animation progress p in [0,1]: two
// damped swings that settle back at zero.
func OffsetAt(p float32) float32 {
	damping := 1 - p
	return ShakeAmplitude * damping * float32(math.Sin(float64(p)*4*math.Pi))
}

// NewShake returns an animation that shakes the objects in c, which must use
// sl as its layout.
func NewShake(c *fyne.Container, sl *ShakeLayout) *fyne.Animation {
	anim := fyne.NewAnimation(ShakeDuration, func(p float32) {
		sl.Offset = OffsetAt(p)
		if p >= 1 {
			sl.Offset = 0
		}
		sl.Layout(c.Objects, c.Size())
		c.Refresh()
	})
	anim.Curve = fyne.AnimationLinear
	return anim
}
