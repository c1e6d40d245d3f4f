// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

type srgb_linear_space struct{}

func (self *srgb_linear_space) Name() string         { return "srgb-linear" }
func (self *srgb_linear_space) White() Vec           { return WhiteD65 }
func (self *srgb_linear_space) HueIndex() int        { return -1 }
func (self *srgb_linear_space) GamutCheck() string   { return "" }
func (self *srgb_linear_space) NullAdjust(c Vec) Vec { return c }

func (self *srgb_linear_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *srgb_linear_space) ToXYZ(rgb Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_srgb_to_xyz_m, rgb))
}

func (self *srgb_linear_space) FromXYZ(xyz Vec) Vec {
	return alg.Dot(xyz_to_lin_srgb_m, chromatic_adaptation(WhiteD50, self.White(), xyz))
}

func (self *srgb_linear_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *srgb_linear_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
