// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"github.com/kovidgoyal/tint/alg"
)

// Bradford chromatic adaptation matrices between the two supported white
// points. Each is the composition of: convert XYZ to the retinal cone
// domain, scale components from one reference white to the other, convert
// back to XYZ. http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html

var bradford_d50_to_d65 = [3][3]float64{
	{0.9555766, -0.0230393, 0.0631636},
	{-0.0282895, 1.0099416, 0.0210077},
	{0.0122982, -0.0204830, 1.3299098},
}

var bradford_d65_to_d50 = [3][3]float64{
	{1.0478112, 0.0228866, -0.0501270},
	{0.0295424, 0.9904844, -0.0170491},
	{-0.0092345, 0.0150436, 0.7521316},
}

// chromatic_adaptation maps XYZ coordinates between white points. Same white
// is the identity.
func chromatic_adaptation(from, to Vec, xyz Vec) Vec {
	switch {
	case from == to:
		return xyz
	case from == WhiteD50 && to == WhiteD65:
		return alg.Dot(bradford_d50_to_d65, xyz)
	case from == WhiteD65 && to == WhiteD50:
		return alg.Dot(bradford_d65_to_d50, xyz)
	}
	panic("unknown white point pair for chromatic adaptation")
}
