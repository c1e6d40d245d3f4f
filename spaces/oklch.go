// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

// OKLCh chroma is two orders of magnitude smaller than Lab chroma, so the
// achromatic cutoff shrinks accordingly.
const achromatic_oklch_threshold = 0.0002

func oklab_to_oklch(lab Vec) Vec {
	l, a, b := lab[0], lab[1], lab[2]
	c := math.Sqrt(a*a + b*b)
	h := math.NaN()
	if c >= achromatic_oklch_threshold {
		h = alg.ConstrainHue(math.Atan2(b, a) * alg.Rad2Deg)
	}
	return Vec{l, c, h}
}

func oklch_to_oklab(lch Vec) Vec {
	l, c, h := lch[0], lch[1], alg.NoNaN(lch[2])
	if c < 0 {
		c = 0
	}
	return Vec{l, c * math.Cos(h*alg.Deg2Rad), c * math.Sin(h*alg.Deg2Rad)}
}

type oklch_space struct{}

func (self *oklch_space) Name() string       { return "oklch" }
func (self *oklch_space) White() Vec         { return WhiteD65 }
func (self *oklch_space) HueIndex() int      { return 2 }
func (self *oklch_space) GamutCheck() string { return "" }

func (self *oklch_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "lightness", Low: 0, High: 1, Bound: true},
		{Name: "chroma", Low: 0, High: 1},
		{Name: "hue", Low: 0, High: 360, Bound: true, Angle: true},
	}
}

func (self *oklch_space) NullAdjust(c Vec) Vec {
	if c[1] < achromatic_oklch_threshold {
		c[2] = math.NaN()
	}
	return c
}

func (self *oklch_space) ToXYZ(lch Vec) Vec   { return OKLab.ToXYZ(oklch_to_oklab(lch)) }
func (self *oklch_space) FromXYZ(xyz Vec) Vec { return oklab_to_oklch(OKLab.FromXYZ(xyz)) }

// oklch(l c h / alpha). Lightness may be a percentage, 100% meaning 1.0.
const re_oklch_func = `\boklch\(\s*` +
	`(?:` + re_percent + `|` + re_float + `)` + re_space + re_float + re_space + re_angle +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`\s*\)`

func translate_oklch_channel(channel int, tok string) float64 {
	switch channel {
	case 0:
		return norm_color_channel(tok, true)
	case 2:
		return norm_angle(tok)
	case -1:
		return norm_alpha_channel(tok)
	}
	return must_norm_float(tok)
}

func (self *oklch_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_oklch_func), text, start, fullmatch, translate_oklch_channel, self.NullAdjust)
}

func (self *oklch_space) String(coords Vec, alpha float64, o *StringOptions) string {
	if o.Generic {
		return serialize_generic(self, coords, alpha, o)
	}
	coords = alg.NoNaNs(coords)
	p := o.precision()
	chans := [3]string{
		alg.FmtFloat(coords[0], p),
		alg.FmtFloat(coords[1], p),
		alg.FmtFloat(coords[2], p),
	}
	return serialize_functional("oklch", "oklch", chans, alpha, o)
}
