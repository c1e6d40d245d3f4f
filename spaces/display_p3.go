// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

// Display P3 shares the sRGB transfer curve with wider primaries.

var lin_p3_to_xyz_m = [3][3]float64{
	{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
	{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
	{0.0000000000000000, 0.04511338185890264, 1.043944368900976},
}

var xyz_to_lin_p3_m = [3][3]float64{
	{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
	{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
	{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
}

type display_p3_space struct{}

func (self *display_p3_space) Name() string         { return "display-p3" }
func (self *display_p3_space) White() Vec           { return WhiteD65 }
func (self *display_p3_space) HueIndex() int        { return -1 }
func (self *display_p3_space) GamutCheck() string   { return "" }
func (self *display_p3_space) NullAdjust(c Vec) Vec { return c }

func (self *display_p3_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *display_p3_space) ToXYZ(rgb Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_p3_to_xyz_m, lin_srgb(rgb)))
}

func (self *display_p3_space) FromXYZ(xyz Vec) Vec {
	return gam_srgb(alg.Dot(xyz_to_lin_p3_m, chromatic_adaptation(WhiteD50, self.White(), xyz)))
}

func (self *display_p3_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *display_p3_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
