// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

func srgb_to_hsl(rgb Vec) Vec {
	r, g, b := rgb[0], rgb[1], rgb[2]
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	h := math.NaN()
	s := 0.0
	l := (mn + mx) / 2
	c := mx - mn

	if c != 0 {
		switch mx {
		case r:
			h = (g - b) / c
		case g:
			h = (b-r)/c + 2
		default:
			h = (r-g)/c + 4
		}
		if l != 0 && l != 1 {
			s = (mx - l) / math.Min(l, 1-l)
		}
		h *= 60
	}
	return Vec{alg.ConstrainHue(h), s * 100, l * 100}
}

// hsl_to_srgb per the alternative formulation on
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSL_to_RGB_alternative
func hsl_to_srgb(hsl Vec) Vec {
	h := alg.ConstrainHue(alg.NoNaN(hsl[0]))
	s := hsl[1] / 100
	l := hsl[2] / 100

	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		a := s * math.Min(l, 1-l)
		return l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
	}
	return Vec{f(0), f(8), f(4)}
}

type hsl_space struct{}

func (self *hsl_space) Name() string       { return "hsl" }
func (self *hsl_space) White() Vec         { return WhiteD65 }
func (self *hsl_space) HueIndex() int      { return 0 }
func (self *hsl_space) GamutCheck() string { return "" }

func (self *hsl_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "hue", Low: 0, High: 360, Bound: true, Angle: true},
		{Name: "saturation", Low: 0, High: 100, Bound: true, Percent: true},
		{Name: "lightness", Low: 0, High: 100, Bound: true, Percent: true},
	}
}

func (self *hsl_space) NullAdjust(c Vec) Vec {
	if c[1] == 0 {
		c[0] = math.NaN()
	}
	return c
}

func (self *hsl_space) ToXYZ(hsl Vec) Vec   { return SRGB.ToXYZ(hsl_to_srgb(hsl)) }
func (self *hsl_space) FromXYZ(xyz Vec) Vec { return srgb_to_hsl(SRGB.FromXYZ(xyz)) }

const re_hsl_func = `\bhsla?\(\s*` +
	`(?:` +
	re_angle + re_space + re_percent + re_space + re_percent +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`|` +
	re_angle + re_comma + re_percent + re_comma + re_percent +
	`(?:` + re_comma + `(?:` + re_percent + `|` + re_float + `))?` +
	`)` +
	`\s*\)`

func translate_hue_percent_channel(channel int, tok string) float64 {
	switch channel {
	case 0:
		return norm_angle(tok)
	case -1:
		return norm_alpha_channel(tok)
	}
	return norm_percent_channel(tok)
}

func (self *hsl_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_hsl_func), text, start, fullmatch, translate_hue_percent_channel, self.NullAdjust)
}

func (self *hsl_space) String(coords Vec, alpha float64, o *StringOptions) string {
	if o.Generic {
		return serialize_generic(self, coords, alpha, o)
	}
	coords = alg.NoNaNs(coords)
	p := o.precision()
	chans := [3]string{
		alg.FmtFloat(coords[0], p),
		alg.FmtFloat(coords[1], p) + "%",
		alg.FmtFloat(coords[2], p) + "%",
	}
	return serialize_functional("hsl", "hsla", chans, alpha, o)
}
