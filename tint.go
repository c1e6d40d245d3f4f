// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Package tint is a color science engine: it parses textual color notations,
// represents colors across a set of color spaces, converts between them
// through an XYZ hub with chromatic adaptation, and provides gamut mapping,
// perceptual distance metrics, WCAG contrast, compositing and interpolation.
//
// Color values are immutable: every operation returns a new value. The engine
// performs no I/O and holds no shared mutable state beyond the read-mostly
// space registry, so values and operations are safe to use from any
// goroutine.
package tint

import (
	"fmt"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

var _ = fmt.Print

// Color is a color in some registered space: three channel coordinates plus
// alpha. Cylindrical spaces use NaN in the hue channel to mean the hue is
// undefined (achromatic color). Alpha is always in [0, 1] and never NaN.
type Color struct {
	space  spaces.Space
	coords spaces.Vec
	alpha  float64
}

// New creates a color in the named space. Coordinates are taken as is apart
// from the space's achromatic hue adjustment, alpha is clamped to [0, 1].
func New(space string, coords spaces.Vec, alpha float64) (Color, error) {
	s := spaces.Lookup(space)
	if s == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	return Color{space: s, coords: s.NullAdjust(coords), alpha: alg.Clamp(alg.NoNaN(alpha), 0, 1)}, nil
}

// MustNew is New for spaces known to be registered. Panics on unknown space.
func MustNew(space string, coords spaces.Vec, alpha float64) Color {
	ans, err := New(space, coords, alpha)
	if err != nil {
		panic(err)
	}
	return ans
}

func (self Color) Space() string { return self.space.Name() }

func (self Color) Coords() spaces.Vec { return self.coords }

func (self Color) Alpha() float64 { return self.alpha }

// Coord returns a single channel value, which may be NaN for an undefined
// hue. Use alg.NoNaN when a definite number is needed.
func (self Color) Coord(i int) float64 { return self.coords[i] }

// IsNaN reports whether the channel is the NaN "undefined" sentinel.
func (self Color) IsNaN(i int) bool { return alg.IsNaN(self.coords[i]) }

// WithCoord returns a copy with one channel replaced.
func (self Color) WithCoord(i int, v float64) Color {
	self.coords[i] = v
	self.coords = self.space.NullAdjust(self.coords)
	return self
}

// WithAlpha returns a copy with the alpha replaced, clamped to [0, 1].
func (self Color) WithAlpha(a float64) Color {
	self.alpha = alg.Clamp(alg.NoNaN(a), 0, 1)
	return self
}

// Equal reports exact equality: same space, equal coordinates with NaN
// considered equal to NaN, equal alpha.
func (self Color) Equal(o Color) bool {
	if self.space != o.space || self.alpha != o.alpha {
		return false
	}
	for i := range self.coords {
		a, b := self.coords[i], o.coords[i]
		if a != b && !(alg.IsNaN(a) && alg.IsNaN(b)) {
			return false
		}
	}
	return true
}
