// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

func hwb_to_hsv(hwb Vec) Vec {
	h := hwb[0]
	w := hwb[1] / 100
	b := hwb[2] / 100

	wb := w + b
	if wb >= 1 {
		gray := w / wb
		return Vec{math.NaN(), 0, gray * 100}
	}
	v := 1 - b
	s := 0.0
	if v != 0 {
		s = 1 - w/v
	}
	return Vec{h, s * 100, v * 100}
}

func hsv_to_hwb(hsv Vec) Vec {
	h := hsv[0]
	s := hsv[1] / 100
	v := hsv[2] / 100
	w := v * (1 - s)
	b := 1 - v
	if w+b >= 1 {
		h = math.NaN()
	}
	return Vec{h, w * 100, b * 100}
}

type hwb_space struct{}

func (self *hwb_space) Name() string       { return "hwb" }
func (self *hwb_space) White() Vec         { return WhiteD65 }
func (self *hwb_space) HueIndex() int      { return 0 }
func (self *hwb_space) GamutCheck() string { return "hsl" }

func (self *hwb_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "hue", Low: 0, High: 360, Bound: true, Angle: true},
		{Name: "whiteness", Low: 0, High: 100, Bound: true, Percent: true},
		{Name: "blackness", Low: 0, High: 100, Bound: true, Percent: true},
	}
}

func (self *hwb_space) NullAdjust(c Vec) Vec {
	if c[1]+c[2] >= 100 {
		c[0] = math.NaN()
	}
	return c
}

func (self *hwb_space) ToXYZ(hwb Vec) Vec {
	return SRGB.ToXYZ(hsl_to_srgb(hsv_to_hsl(hwb_to_hsv(hwb))))
}

func (self *hwb_space) FromXYZ(xyz Vec) Vec {
	return hsv_to_hwb(hsl_to_hsv(srgb_to_hsl(SRGB.FromXYZ(xyz))))
}

// CSS has no legacy comma form for hwb() but editor dialects use one, so the
// comma variant is accepted on input.
const re_hwb_func = `\bhwb\(\s*` +
	`(?:` +
	re_angle + re_space + re_percent + re_space + re_percent +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`|` +
	re_angle + re_comma + re_percent + re_comma + re_percent +
	`(?:` + re_comma + `(?:` + re_percent + `|` + re_float + `))?` +
	`)` +
	`\s*\)`

func (self *hwb_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_hwb_func), text, start, fullmatch, translate_hue_percent_channel, self.NullAdjust)
}

func (self *hwb_space) String(coords Vec, alpha float64, o *StringOptions) string {
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
	return serialize_functional("hwb", "hwb", chans, alpha, o)
}
