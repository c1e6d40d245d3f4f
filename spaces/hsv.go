// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

// https://en.wikipedia.org/wiki/HSL_and_HSV#Interconversion

func hsv_to_hsl(hsv Vec) Vec {
	h := hsv[0]
	s := hsv[1] / 100
	v := hsv[2] / 100
	l := v * (1 - s/2)
	if l == 0 || l == 1 {
		s = 0
	} else {
		s = (v - l) / math.Min(l, 1-l)
	}
	if s == 0 {
		h = math.NaN()
	}
	return Vec{alg.ConstrainHue(h), s * 100, l * 100}
}

func hsl_to_hsv(hsl Vec) Vec {
	h := hsl[0]
	s := hsl[1] / 100
	l := hsl[2] / 100
	v := l + s*math.Min(l, 1-l)
	if v == 0 {
		s = 0
	} else {
		s = 2 * (1 - l/v)
	}
	if s == 0 {
		h = math.NaN()
	}
	return Vec{alg.ConstrainHue(h), s * 100, v * 100}
}

type hsv_space struct{}

func (self *hsv_space) Name() string       { return "hsv" }
func (self *hsv_space) White() Vec         { return WhiteD65 }
func (self *hsv_space) HueIndex() int      { return 0 }
func (self *hsv_space) GamutCheck() string { return "hsl" }

func (self *hsv_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "hue", Low: 0, High: 360, Bound: true, Angle: true},
		{Name: "saturation", Low: 0, High: 100, Bound: true, Percent: true},
		{Name: "value", Low: 0, High: 100, Bound: true, Percent: true},
	}
}

func (self *hsv_space) NullAdjust(c Vec) Vec {
	if c[1] == 0 {
		c[0] = math.NaN()
	}
	return c
}

func (self *hsv_space) ToXYZ(hsv Vec) Vec   { return SRGB.ToXYZ(hsl_to_srgb(hsv_to_hsl(hsv))) }
func (self *hsv_space) FromXYZ(xyz Vec) Vec { return hsl_to_hsv(srgb_to_hsl(SRGB.FromXYZ(xyz))) }

// HSV has no CSS functional notation, only the generic color() form.
func (self *hsv_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *hsv_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
