// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

// ProPhoto RGB (ROMM). Natively D50 so, like Lab, no adaptation to the hub.
const (
	prophoto_et  = 1.0 / 512.0
	prophoto_et2 = 16.0 / 512.0
)

var lin_prophoto_to_xyz_m = [3][3]float64{
	{0.7977604896723027, 0.13518583717574031, 0.0313493495815248},
	{0.2880711282292934, 0.7118432178101014, 0.00008565396060525902},
	{0.0000000000000000, 0.0000000000000000, 0.8251046025104601},
}

var xyz_to_lin_prophoto_m = [3][3]float64{
	{1.3457989731028281, -0.25558010007997534, -0.05110628506753401},
	{-0.5446224939028347, 1.5082327413132781, 0.02053603239147973},
	{0.0000000000000000, 0.0000000000000000, 1.2119675456389454},
}

func lin_prophoto(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		if math.Abs(c) < prophoto_et2 {
			ans[i] = c / 16
		} else {
			ans[i] = math.Copysign(math.Pow(math.Abs(c), 1.8), c)
		}
	}
	return ans
}

func gam_prophoto(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		if math.Abs(c) < prophoto_et {
			ans[i] = 16 * c
		} else {
			ans[i] = math.Copysign(math.Pow(math.Abs(c), 1/1.8), c)
		}
	}
	return ans
}

type prophoto_space struct{}

func (self *prophoto_space) Name() string         { return "prophoto-rgb" }
func (self *prophoto_space) White() Vec           { return WhiteD50 }
func (self *prophoto_space) HueIndex() int        { return -1 }
func (self *prophoto_space) GamutCheck() string   { return "" }
func (self *prophoto_space) NullAdjust(c Vec) Vec { return c }

func (self *prophoto_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *prophoto_space) ToXYZ(rgb Vec) Vec {
	return alg.Dot(lin_prophoto_to_xyz_m, lin_prophoto(rgb))
}

func (self *prophoto_space) FromXYZ(xyz Vec) Vec {
	return gam_prophoto(alg.Dot(xyz_to_lin_prophoto_m, xyz))
}

func (self *prophoto_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *prophoto_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
