// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/tint/spaces"
)

// ErrUnknownSpace means a space name is not in the registry. This is a
// programmer error, not bad user input, so callers should fail fast.
var ErrUnknownSpace = errors.New("unknown color space")

// Convert returns the color expressed in the named space. Converting to the
// color's own space is the identity. A direct registered route is used when
// one exists, otherwise conversion goes through the XYZ D50 hub with
// chromatic adaptation handled by the space descriptors.
func (self Color) Convert(space string) (Color, error) {
	t := spaces.Lookup(space)
	if t == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	return self.convert(t), nil
}

// MustConvert panics on an unknown space name.
func (self Color) MustConvert(space string) Color {
	ans, err := self.Convert(space)
	if err != nil {
		panic(err)
	}
	return ans
}

func (self Color) convert(t spaces.Space) Color {
	if t == self.space {
		return self
	}
	var coords spaces.Vec
	if f := spaces.Route(self.space.Name(), t.Name()); f != nil {
		coords = f(self.coords)
	} else {
		coords = t.FromXYZ(self.space.ToXYZ(self.coords))
	}
	return Color{space: t, coords: t.NullAdjust(coords), alpha: self.alpha}
}
