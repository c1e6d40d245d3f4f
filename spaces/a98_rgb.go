// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

// A98 RGB uses a pure power transfer function, exponent 563/256 per the
// Adobe RGB (1998) specification.
const a98_gamma = 563.0 / 256.0

var lin_a98_to_xyz_m = [3][3]float64{
	{0.5766690429101305, 0.1855582379065463, 0.1882286462349947},
	{0.29734497525053605, 0.6273635662554661, 0.07529145849399788},
	{0.02703136138641234, 0.07068885253582723, 0.9913375368376388},
}

var xyz_to_lin_a98_m = [3][3]float64{
	{2.0415879038107465, -0.5650069742788596, -0.34473135077832956},
	{-0.9692436362808795, 1.8759675015077202, 0.04155505740717557},
	{0.013444280632031142, -0.11836239223101838, 1.0151749943912054},
}

func lin_a98rgb(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		ans[i] = alg.Spow(c, a98_gamma)
	}
	return ans
}

func gam_a98rgb(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		ans[i] = alg.Spow(c, 1/a98_gamma)
	}
	return ans
}

type a98_rgb_space struct{}

func (self *a98_rgb_space) Name() string         { return "a98-rgb" }
func (self *a98_rgb_space) White() Vec           { return WhiteD65 }
func (self *a98_rgb_space) HueIndex() int        { return -1 }
func (self *a98_rgb_space) GamutCheck() string   { return "" }
func (self *a98_rgb_space) NullAdjust(c Vec) Vec { return c }

func (self *a98_rgb_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *a98_rgb_space) ToXYZ(rgb Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_a98_to_xyz_m, lin_a98rgb(rgb)))
}

func (self *a98_rgb_space) FromXYZ(xyz Vec) Vec {
	return gam_a98rgb(alg.Dot(xyz_to_lin_a98_m, chromatic_adaptation(WhiteD50, self.White(), xyz)))
}

func (self *a98_rgb_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *a98_rgb_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
