// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

// DefaultGamutTolerance absorbs floating noise from round-tripped
// conversions so colors that are nominally on a gamut boundary still count
// as inside it.
const DefaultGamutTolerance = 0.000075

// InGamut reports whether the color fits the named space's channel bounds
// within the tolerance. Angle and unbounded channels always pass. Spaces with
// a more sensitive companion (sRGB checks HSL too, since tiny excursions
// invisible in sRGB show up there) require both to pass.
func (self Color) InGamut(space string, tolerance float64) (bool, error) {
	t := spaces.Lookup(space)
	if t == nil {
		return false, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	return in_gamut(self, t, tolerance), nil
}

func in_gamut(c Color, t spaces.Space, tolerance float64) bool {
	if !coords_in_gamut(t, c.convert(t).coords, tolerance) {
		return false
	}
	if g := t.GamutCheck(); g != "" {
		gs := spaces.Lookup(g)
		if gs != nil && !coords_in_gamut(gs, c.convert(gs).coords, tolerance) {
			return false
		}
	}
	return true
}

func coords_in_gamut(t spaces.Space, coords spaces.Vec, tolerance float64) bool {
	for i, ch := range t.Channels() {
		if ch.Angle || !ch.Bound {
			continue
		}
		v := coords[i]
		if alg.IsNaN(v) {
			continue
		}
		if v < ch.Low-tolerance || v > ch.High+tolerance {
			return false
		}
	}
	return true
}

// Clip converts to the named space and clamps every bounded non-angle
// channel to its range. Angle channels wrap mod 360 instead.
func (self Color) Clip(space string) (Color, error) {
	t := spaces.Lookup(space)
	if t == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	return clip(self, t), nil
}

func clip(c Color, t spaces.Space) Color {
	ans := c.convert(t)
	for i, ch := range t.Channels() {
		switch {
		case ch.Angle:
			ans.coords[i] = alg.ConstrainHue(ans.coords[i])
		case ch.Bound:
			if !alg.IsNaN(ans.coords[i]) {
				ans.coords[i] = alg.Clamp(ans.coords[i], ch.Low, ch.High)
			}
		}
	}
	return ans
}

// Fit maps the color into the named space's gamut. Methods: "clip" clamps
// channels, "lch-chroma" (the default, method "") reduces LCh chroma by
// binary search, preserving hue and lightness while keeping the perceptual
// error close to that of a plain clip. A color already in gamut is returned
// converted but otherwise untouched.
func (self Color) Fit(space, method string) (Color, error) {
	t := spaces.Lookup(space)
	if t == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	switch method {
	case "clip":
		return clip(self, t), nil
	case "", "lch-chroma":
		if in_gamut(self, t, DefaultGamutTolerance) {
			return self.convert(t), nil
		}
		return lch_chroma(self, t), nil
	}
	return Color{}, fmt.Errorf("unknown gamut mapping method: %s", method)
}

// MustFit is Fit, panicking on unknown spaces or methods.
func (self Color) MustFit(space, method string) Color {
	ans, err := self.Fit(space, method)
	if err != nil {
		panic(err)
	}
	return ans
}

// lch_chroma reduces chroma in LCh, holding lightness and hue fixed, until
// the color clips into gamut without straying perceptually far from the
// original. When a plain clip is already close (ΔE2000 ≤ 2.3, roughly one
// just-noticeable difference) the clip is used outright.
func lch_chroma(c Color, t spaces.Space) Color {
	const threshold = 0.001
	clipped := clip(c, t)
	base_error := delta_e_2000_colors(c, clipped)
	if base_error > 2.3 {
		mapcolor := c.convert(spaces.LCh)
		low, high := 0.0, mapcolor.coords[1]
		err := delta_e_2000_colors(c, mapcolor)
		for high-low > threshold && err < base_error {
			clipped = clip(mapcolor, t)
			delta := delta_e_2000_colors(mapcolor, clipped)
			err = delta_e_2000_colors(c, mapcolor)
			if delta-2 < threshold {
				low = mapcolor.coords[1]
			} else {
				if math.Abs(delta-2) < threshold {
					break
				}
				high = mapcolor.coords[1]
			}
			mapcolor.coords[1] = (high + low) / 2
		}
		c = mapcolor
	}
	return clip(c, t)
}
