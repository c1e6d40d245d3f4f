// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

// OKLab per https://bottosson.github.io/posts/oklab/ routed through linear
// sRGB rather than XYZ directly, which keeps the published matrices intact.

func lin_srgb_to_oklab(rgb Vec) Vec {
	l := alg.Cbrt(0.4122214708*rgb[0] + 0.5363325363*rgb[1] + 0.0514459929*rgb[2])
	m := alg.Cbrt(0.2119034982*rgb[0] + 0.6806995451*rgb[1] + 0.1073969566*rgb[2])
	s := alg.Cbrt(0.0883024619*rgb[0] + 0.2817188376*rgb[1] + 0.6299787005*rgb[2])
	return Vec{
		0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

func oklab_to_lin_srgb(lab Vec) Vec {
	l_ := lab[0] + 0.3963377774*lab[1] + 0.2158037573*lab[2]
	m_ := lab[0] - 0.1055613458*lab[1] - 0.0638541728*lab[2]
	s_ := lab[0] - 0.0894841775*lab[1] - 1.2914855480*lab[2]
	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_
	return Vec{
		4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

type oklab_space struct{}

func (self *oklab_space) Name() string         { return "oklab" }
func (self *oklab_space) White() Vec           { return WhiteD65 }
func (self *oklab_space) HueIndex() int        { return -1 }
func (self *oklab_space) GamutCheck() string   { return "" }
func (self *oklab_space) NullAdjust(c Vec) Vec { return c }

func (self *oklab_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "lightness", Low: 0, High: 1, Bound: true},
		{Name: "a", Low: -0.5, High: 0.5},
		{Name: "b", Low: -0.5, High: 0.5},
	}
}

func (self *oklab_space) ToXYZ(lab Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_srgb_to_xyz_m, oklab_to_lin_srgb(lab)))
}

func (self *oklab_space) FromXYZ(xyz Vec) Vec {
	return lin_srgb_to_oklab(alg.Dot(xyz_to_lin_srgb_m, chromatic_adaptation(WhiteD50, self.White(), xyz)))
}

// oklab(l a b / alpha). Lightness may be a percentage, 100% meaning 1.0.
const re_oklab_func = `\boklab\(\s*` +
	`(?:` + re_percent + `|` + re_float + `)` + re_space + re_float + re_space + re_float +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`\s*\)`

func translate_oklab_channel(channel int, tok string) float64 {
	switch channel {
	case 0:
		return norm_color_channel(tok, true)
	case -1:
		return norm_alpha_channel(tok)
	}
	return must_norm_float(tok)
}

func (self *oklab_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	return match_functional(pat(re_oklab_func), text, start, fullmatch, translate_oklab_channel, self.NullAdjust)
}

func (self *oklab_space) String(coords Vec, alpha float64, o *StringOptions) string {
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
	return serialize_functional("oklab", "oklab", chans, alpha, o)
}
