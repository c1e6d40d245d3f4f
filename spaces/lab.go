// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

// CIE Lab, D50 referenced so conversion to the hub needs no adaptation.
// Constants per http://www.brucelindbloom.com/Eqn_Lab_to_XYZ.html
const (
	lab_epsilon3 = 216.0 / 24389.0 // 6^3 / 29^3
	lab_epsilon  = 24.0 / 116.0
	lab_ratio1   = 16.0 / 116.0
	lab_ratio2   = 108.0 / 841.0
	lab_ratio3   = 841.0 / 108.0
)

func xyz_to_lab(xyz Vec) Vec {
	var f Vec
	for i, v := range xyz {
		v /= WhiteD50[i]
		if v > lab_epsilon3 {
			f[i] = alg.Cbrt(v)
		} else {
			f[i] = lab_ratio3*v + lab_ratio1
		}
	}
	return Vec{116*f[1] - 16, 500 * (f[0] - f[1]), 200 * (f[1] - f[2])}
}

func lab_to_xyz(lab Vec) Vec {
	l, a, b := lab[0], lab[1], lab[2]
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	var xyz Vec
	if fx > lab_epsilon {
		xyz[0] = fx * fx * fx
	} else {
		xyz[0] = (fx - lab_ratio1) * lab_ratio2
	}
	if fy > lab_epsilon || l > 8 {
		xyz[1] = fy * fy * fy
	} else {
		xyz[1] = (fy - lab_ratio1) * lab_ratio2
	}
	if fz > lab_epsilon {
		xyz[2] = fz * fz * fz
	} else {
		xyz[2] = (fz - lab_ratio1) * lab_ratio2
	}
	for i := range xyz {
		xyz[i] *= WhiteD50[i]
	}
	return xyz
}

type lab_space struct{}

func (self *lab_space) Name() string         { return "lab" }
func (self *lab_space) White() Vec           { return WhiteD50 }
func (self *lab_space) HueIndex() int        { return -1 }
func (self *lab_space) GamutCheck() string   { return "" }
func (self *lab_space) NullAdjust(c Vec) Vec { return c }

func (self *lab_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "lightness", Low: 0, High: 100, Bound: true, Percent: true},
		{Name: "a", Low: -160, High: 160},
		{Name: "b", Low: -160, High: 160},
	}
}

func (self *lab_space) ToXYZ(lab Vec) Vec   { return lab_to_xyz(lab) }
func (self *lab_space) FromXYZ(xyz Vec) Vec { return xyz_to_lab(xyz) }

// lab(l% a b / alpha). Lightness must be a percentage, a and b are plain
// numbers.
const re_lab_func = `\blab\(\s*` +
	re_percent + re_space + re_float + re_space + re_float +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`\s*\)`

func translate_lab_channel(channel int, tok string) float64 {
	switch channel {
	case 0:
		return norm_percent_channel(tok)
	case -1:
		return norm_alpha_channel(tok)
	}
	return must_norm_float(tok)
}

func (self *lab_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_lab_func), text, start, fullmatch, translate_lab_channel, self.NullAdjust)
}

func (self *lab_space) String(coords Vec, alpha float64, o *StringOptions) string {
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
	return serialize_functional("lab", "lab", chans, alpha, o)
}
