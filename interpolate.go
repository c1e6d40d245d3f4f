// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

// InterpolateOptions tunes interpolation. The zero value interpolates in Lab
// with the "shorter" hue strategy, straight (non-premultiplied) alpha and
// linear progress.
type InterpolateOptions struct {
	// Space is the working space, "" means "lab".
	Space string
	// Hue selects the path around the hue circle in cylindrical spaces:
	// "shorter" (default), "longer", "increasing", "decreasing" or
	// "specified" (no adjustment).
	Hue string
	// Premultiplied scales non-angle channels by alpha before
	// interpolating and divides back out after, avoiding fringing toward
	// transparent endpoints.
	Premultiplied bool
	// Progress, when non-nil, is an easing function applied to t.
	Progress func(t float64) float64
}

// adjust_hues rewrites the two hue endpoints so that linear interpolation
// between them travels the direction the strategy asks for. NaN hues are
// left alone, the per-channel NaN rule handles them.
func adjust_hues(h1, h2 float64, strategy string) (float64, float64, error) {
	if alg.IsNaN(h1) || alg.IsNaN(h2) {
		return h1, h2, nil
	}
	h1 = alg.ConstrainHue(h1)
	h2 = alg.ConstrainHue(h2)
	switch strategy {
	case "", "shorter":
		switch d := h2 - h1; {
		case d > 180:
			h1 += 360
		case d < -180:
			h2 += 360
		}
	case "longer":
		if d := h2 - h1; 0 < d && d < 180 {
			h1 += 360
		} else if -180 < d && d <= 0 {
			h2 += 360
		}
	case "increasing":
		if h2 < h1 {
			h2 += 360
		}
	case "decreasing":
		if h1 < h2 {
			h1 += 360
		}
	case "specified":
	default:
		return 0, 0, fmt.Errorf("unknown hue adjustment strategy: %s", strategy)
	}
	return h1, h2, nil
}

// Interpolate returns a function of t in [0, 1] blending between the two
// colors in the working space. Both endpoints are gamut-fitted into the
// working space first. A channel that is NaN on one side takes the other
// side's value outright; NaN on both sides interpolates as zero.
func Interpolate(c1, c2 Color, o *InterpolateOptions) (func(t float64) Color, error) {
	if o == nil {
		o = &InterpolateOptions{}
	}
	space := o.Space
	if space == "" {
		space = "lab"
	}
	t := spaces.Lookup(space)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	a, err := c1.Fit(space, "")
	if err != nil {
		return nil, err
	}
	b, err := c2.Fit(space, "")
	if err != nil {
		return nil, err
	}
	coords1 := t.NullAdjust(a.coords)
	coords2 := t.NullAdjust(b.coords)
	alpha1, alpha2 := a.alpha, b.alpha

	if hi := t.HueIndex(); hi >= 0 {
		coords1[hi], coords2[hi], err = adjust_hues(coords1[hi], coords2[hi], o.Hue)
		if err != nil {
			return nil, err
		}
	}
	if o.Premultiplied {
		coords1 = premultiply(t, coords1, alpha1)
		coords2 = premultiply(t, coords2, alpha2)
	}
	chans := t.Channels()
	return func(p float64) Color {
		if o.Progress != nil {
			p = o.Progress(p)
		}
		var coords spaces.Vec
		for i := range coords {
			coords[i] = lerp_channel(coords1[i], coords2[i], p)
			if chans[i].Angle {
				coords[i] = alg.ConstrainHue(coords[i])
			}
		}
		alpha := alpha1 + (alpha2-alpha1)*p
		if o.Premultiplied {
			coords = postdivide(t, coords, alpha)
		}
		return Color{space: t, coords: t.NullAdjust(coords), alpha: alg.Clamp(alpha, 0, 1)}
	}, nil
}

func lerp_channel(v1, v2, p float64) float64 {
	switch {
	case alg.IsNaN(v1) && alg.IsNaN(v2):
		return 0
	case alg.IsNaN(v1):
		return v2
	case alg.IsNaN(v2):
		return v1
	}
	return v1 + (v2-v1)*p
}

func premultiply(t spaces.Space, coords spaces.Vec, alpha float64) spaces.Vec {
	for i, ch := range t.Channels() {
		if !ch.Angle {
			coords[i] *= alpha
		}
	}
	return coords
}

func postdivide(t spaces.Space, coords spaces.Vec, alpha float64) spaces.Vec {
	if alpha == 0 {
		return coords
	}
	for i, ch := range t.Channels() {
		if !ch.Angle {
			coords[i] /= alpha
		}
	}
	return coords
}

// Mix blends the two colors at the given point, 0 giving the first color
// and 1 the second. Unlike Interpolate the default working space is the
// first color's own space.
func Mix(c1, c2 Color, percent float64, o *InterpolateOptions) (Color, error) {
	oo := InterpolateOptions{}
	if o != nil {
		oo = *o
	}
	if oo.Space == "" {
		oo.Space = c1.Space()
	}
	f, err := Interpolate(c1, c2, &oo)
	if err != nil {
		return Color{}, err
	}
	return f(percent), nil
}

// Overlay composites a translucent color against a backdrop, approximating
// what the eye sees. The math runs in the named space ("" means the color's
// own space) after gamut fitting both sides; hues follow the shorter arc
// weighted by opacity rather than premultiplying. An already opaque color is
// returned unchanged, otherwise the result is in the color's own space.
func (self Color) Overlay(backdrop Color, space string) (Color, error) {
	if self.alpha >= 1 {
		return self, nil
	}
	if space == "" {
		space = self.Space()
	}
	t := spaces.Lookup(space)
	if t == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	this, err := self.Fit(space, "")
	if err != nil {
		return Color{}, err
	}
	back, err := backdrop.Fit(space, "")
	if err != nil {
		return Color{}, err
	}
	coords1, coords2 := this.coords, back.coords
	if hi := t.HueIndex(); hi >= 0 {
		coords1[hi], coords2[hi], err = adjust_hues(coords1[hi], coords2[hi], "")
		if err != nil {
			return Color{}, err
		}
	}
	a1, a2 := this.alpha, back.alpha
	a0 := a1 + a2*(1-a1)
	chans := t.Channels()
	var coords spaces.Vec
	for i := range coords {
		coords[i] = overlay_channel(coords1[i], coords2[i], a1, a2, a0, chans[i].Angle)
	}
	ans := Color{space: t, coords: t.NullAdjust(coords), alpha: alg.Clamp(a0, 0, 1)}
	return ans.convert(self.space), nil
}

func overlay_channel(c1, c2, a1, a2, a0 float64, angle bool) float64 {
	switch {
	case alg.IsNaN(c1) && alg.IsNaN(c2):
		return 0
	case alg.IsNaN(c1):
		if angle {
			return c2
		}
		return c2 * a2
	case alg.IsNaN(c2):
		if angle {
			return c1
		}
		return c1 * a1
	}
	if angle {
		return alg.ConstrainHue(c1 + (c2-c1)*(1-a1))
	}
	c0 := c1*a1 + c2*a2*(1-a1)
	if a0 != 0 {
		return c0 / a0
	}
	return c0
}

// StepsOptions extends InterpolateOptions with the sampling controls for
// Steps.
type StepsOptions struct {
	InterpolateOptions
	// Steps is the minimum number of samples, at least 2.
	Steps int
	// MaxSteps caps adaptive subdivision, 0 meaning 1000.
	MaxSteps int
	// MaxDeltaE, when positive, forces adjacent samples to be at most this
	// far apart perceptually, inserting midpoints until they are.
	MaxDeltaE float64
	// DeltaEMethod names the metric used for MaxDeltaE, "" meaning "76".
	DeltaEMethod string
}

type step struct {
	t float64
	c Color
}

// Steps samples the interpolation between the two colors. With MaxDeltaE
// set, midpoints are inserted between perceptually distant neighbors until
// every adjacent pair is close enough or MaxSteps is reached.
func Steps(c1, c2 Color, o *StepsOptions) ([]Color, error) {
	if o == nil {
		o = &StepsOptions{}
	}
	f, err := Interpolate(c1, c2, &o.InterpolateOptions)
	if err != nil {
		return nil, err
	}
	max_steps := o.MaxSteps
	if max_steps == 0 {
		max_steps = 1000
	}
	count := max(o.Steps, 2)
	if o.MaxDeltaE > 0 {
		total, err := DeltaE(c1, c2, o.DeltaEMethod)
		if err != nil {
			return nil, err
		}
		count = max(count, int(math.Ceil(total/o.MaxDeltaE))+1)
	}
	count = min(count, max_steps)

	ret := make([]step, count)
	for i := range ret {
		t := float64(i) / float64(count-1)
		ret[i] = step{t, f(t)}
	}

	if o.MaxDeltaE > 0 {
		// Measure the worst current gap, then subdivide every gap each sweep
		// until the worst observed gap is under the threshold or the cap is
		// hit. The initial measurement keeps an already satisfied ramp as is.
		m_delta := 0.0
		for i := 1; i < len(ret); i++ {
			d, err := DeltaE(ret[i-1].c, ret[i].c, o.DeltaEMethod)
			if err != nil {
				return nil, err
			}
			m_delta = math.Max(m_delta, d)
		}
		for m_delta > o.MaxDeltaE && len(ret) < max_steps {
			m_delta = 0
			for i := 1; i < len(ret) && len(ret) < max_steps; i += 2 {
				prev, cur := ret[i-1], ret[i]
				t := (prev.t + cur.t) / 2
				c := f(t)
				d1, err := DeltaE(c, prev.c, o.DeltaEMethod)
				if err != nil {
					return nil, err
				}
				d2, err := DeltaE(c, cur.c, o.DeltaEMethod)
				if err != nil {
					return nil, err
				}
				m_delta = math.Max(m_delta, math.Max(d1, d2))
				ret = slices.Insert(ret, i, step{t, c})
			}
		}
	}
	ans := make([]Color, len(ret))
	for i, s := range ret {
		ans[i] = s.c
	}
	return ans, nil
}
