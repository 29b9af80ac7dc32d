package tessel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FactorTween drives a Context's tween factor over time. Create one with
// TweenFactor, call Update(dt) each frame and Apply the result to a Context.
//
// There is no global animation manager. Callers call Update themselves.
type FactorTween struct {
	tween *gween.Tween
	value float64
	// Loop restarts the tween whenever it finishes, for cyclic polygon sets.
	Loop bool
	Done bool
}

// TweenFactor creates a FactorTween moving from one factor to another over
// duration seconds with the easing function fn. A polygon set of n frames
// plays one full cycle for a factor span of 1.
func TweenFactor(from, to float64, duration float32, fn ease.TweenFunc) *FactorTween {
	return &FactorTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// Update advances the tween by dt seconds and returns the current factor.
func (f *FactorTween) Update(dt float32) float64 {
	if f.Done {
		return f.value
	}
	val, finished := f.tween.Update(dt)
	f.value = float64(val)
	if finished {
		if f.Loop {
			f.tween.Reset()
		} else {
			f.Done = true
		}
	}
	return f.value
}

// Value returns the current factor.
func (f *FactorTween) Value() float64 { return f.value }

// Apply returns ctx with its tween factor set to the current value.
func (f *FactorTween) Apply(ctx Context) Context {
	return ctx.WithTweenFactor(f.value)
}

// ColorTween animates all four channels of a fill color.
type ColorTween struct {
	tweens [4]*gween.Tween
	value  Color
	Done   bool
}

// TweenColor creates a ColorTween from one color to another over duration
// seconds with the easing function fn.
func TweenColor(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	g := &ColorTween{value: from}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

// Update advances all channels by dt seconds and returns the current color.
func (g *ColorTween) Update(dt float32) Color {
	if g.Done {
		return g.value
	}
	fields := [4]*float64{&g.value.R, &g.value.G, &g.value.B, &g.value.A}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return g.value
}

// Value returns the current color.
func (g *ColorTween) Value() Color { return g.value }

// Apply returns ctx with its color set to the current value.
func (g *ColorTween) Apply(ctx Context) Context {
	return ctx.WithColor(g.value)
}
