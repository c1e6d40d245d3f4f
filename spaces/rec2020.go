// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"

	"github.com/kovidgoyal/tint/alg"
)

// Rec. 2020 transfer per ITU-R BT.2020-2.
const (
	rec2020_alpha  = 1.09929682680944
	rec2020_beta   = 0.018053968510807
	rec2020_beta45 = rec2020_beta * 4.5
)

var lin_2020_to_xyz_m = [3][3]float64{
	{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
	{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
	{0.0000000000000000, 0.028072693049087428, 1.060985057710791},
}

var xyz_to_lin_2020_m = [3][3]float64{
	{1.7166511879712674, -0.35567078377639233, -0.25336628137365974},
	{-0.6666843518324892, 1.6164812366349395, 0.01576854581391113},
	{0.017639857445310783, -0.042770613257808524, 0.9421031212354738},
}

func lin_2020(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		abs_c := math.Abs(c)
		if abs_c < rec2020_beta45 {
			ans[i] = c / 4.5
		} else {
			ans[i] = math.Copysign(math.Pow((abs_c+rec2020_alpha-1)/rec2020_alpha, 1/0.45), c)
		}
	}
	return ans
}

func gam_2020(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		abs_c := math.Abs(c)
		if abs_c < rec2020_beta {
			ans[i] = 4.5 * c
		} else {
			ans[i] = math.Copysign(rec2020_alpha*math.Pow(abs_c, 0.45)-(rec2020_alpha-1), c)
		}
	}
	return ans
}

type rec2020_space struct{}

func (self *rec2020_space) Name() string         { return "rec2020" }
func (self *rec2020_space) White() Vec           { return WhiteD65 }
func (self *rec2020_space) HueIndex() int        { return -1 }
func (self *rec2020_space) GamutCheck() string   { return "" }
func (self *rec2020_space) NullAdjust(c Vec) Vec { return c }

func (self *rec2020_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *rec2020_space) ToXYZ(rgb Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_2020_to_xyz_m, lin_2020(rgb)))
}

func (self *rec2020_space) FromXYZ(xyz Vec) Vec {
	return gam_2020(alg.Dot(xyz_to_lin_2020_m, chromatic_adaptation(WhiteD50, self.White(), xyz)))
}

func (self *rec2020_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *rec2020_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
