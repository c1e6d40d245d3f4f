// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

// XYZ D50 is the hub every conversion passes through, so its descriptor is
// the identity. The D65 variant differs only in chromatic adaptation.

func xyz_channels() [3]Channel {
	return [3]Channel{
		{Name: "x", Low: 0, High: 1},
		{Name: "y", Low: 0, High: 1},
		{Name: "z", Low: 0, High: 1},
	}
}

type xyz_space struct{}

func (self *xyz_space) Name() string         { return "xyz" }
func (self *xyz_space) White() Vec           { return WhiteD50 }
func (self *xyz_space) HueIndex() int        { return -1 }
func (self *xyz_space) GamutCheck() string   { return "" }
func (self *xyz_space) NullAdjust(c Vec) Vec { return c }
func (self *xyz_space) Channels() [3]Channel { return xyz_channels() }
func (self *xyz_space) ToXYZ(xyz Vec) Vec    { return xyz }
func (self *xyz_space) FromXYZ(xyz Vec) Vec  { return xyz }

func (self *xyz_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *xyz_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}

type xyz_d65_space struct{}

func (self *xyz_d65_space) Name() string         { return "xyz-d65" }
func (self *xyz_d65_space) White() Vec           { return WhiteD65 }
func (self *xyz_d65_space) HueIndex() int        { return -1 }
func (self *xyz_d65_space) GamutCheck() string   { return "" }
func (self *xyz_d65_space) NullAdjust(c Vec) Vec { return c }
func (self *xyz_d65_space) Channels() [3]Channel { return xyz_channels() }

func (self *xyz_d65_space) ToXYZ(xyz Vec) Vec {
	return chromatic_adaptation(WhiteD65, WhiteD50, xyz)
}

func (self *xyz_d65_space) FromXYZ(xyz Vec) Vec {
	return chromatic_adaptation(WhiteD50, WhiteD65, xyz)
}

func (self *xyz_d65_space) Match(text string, start int, fullmatch bool) *Matched {
	return match_generic(self, text, start, fullmatch)
}

func (self *xyz_d65_space) String(coords Vec, alpha float64, o *StringOptions) string {
	return serialize_generic(self, coords, alpha, o)
}
