// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

// Chroma below this is treated as achromatic and the hue becomes undefined.
const achromatic_lch_threshold = 0.02

func lab_to_lch(lab Vec) Vec {
	l, a, b := lab[0], lab[1], lab[2]
	c := math.Sqrt(a*a + b*b)
	h := math.NaN()
	if c >= achromatic_lch_threshold {
		h = alg.ConstrainHue(math.Atan2(b, a) * alg.Rad2Deg)
	}
	return Vec{l, c, h}
}

func lch_to_lab(lch Vec) Vec {
	l, c, h := lch[0], lch[1], alg.NoNaN(lch[2])
	if c < 0 {
		c = 0
	}
	return Vec{l, c * math.Cos(h*alg.Deg2Rad), c * math.Sin(h*alg.Deg2Rad)}
}

type lch_space struct{}

func (self *lch_space) Name() string       { return "lch" }
func (self *lch_space) White() Vec         { return WhiteD50 }
func (self *lch_space) HueIndex() int      { return 2 }
func (self *lch_space) GamutCheck() string { return "" }

func (self *lch_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "lightness", Low: 0, High: 100, Bound: true, Percent: true},
		{Name: "chroma", Low: 0, High: 100},
		{Name: "hue", Low: 0, High: 360, Bound: true, Angle: true},
	}
}

func (self *lch_space) NullAdjust(c Vec) Vec {
	if c[1] < achromatic_lch_threshold {
		c[2] = math.NaN()
	}
	return c
}

func (self *lch_space) ToXYZ(lch Vec) Vec   { return lab_to_xyz(lch_to_lab(lch)) }
func (self *lch_space) FromXYZ(xyz Vec) Vec { return lab_to_lch(xyz_to_lab(xyz)) }

// lch(l% c h / alpha)
const re_lch_func = `\blch\(\s*` +
	re_percent + re_space + re_float + re_space + re_angle +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`\s*\)`

func translate_lch_channel(channel int, tok string) float64 {
	switch channel {
	case 0:
		return norm_percent_channel(tok)
	case 2:
		return norm_angle(tok)
	case -1:
		return norm_alpha_channel(tok)
	}
	return must_norm_float(tok)
}

func (self *lch_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_lch_func), text, start, fullmatch, translate_lch_channel, self.NullAdjust)
}

func (self *lch_space) String(coords Vec, alpha float64, o *StringOptions) string {
	if o.Generic {
		return serialize_generic(self, coords, alpha, o)
	}
	coords = alg.NoNaNs(coords)
	p := o.precision()
	chans := [3]string{
		alg.FmtFloat(coords[0], p) + "%",
		alg.FmtFloat(coords[1], p),
		alg.FmtFloat(coords[2], p),
	}
	return serialize_functional("lch", "lch", chans, alpha, o)
}
