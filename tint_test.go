// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"math"
	"testing"

	"github.com/kovidgoyal/tint/spaces"
)

func close_enough(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func vecs_close(a, b spaces.Vec, tol float64) bool {
	for i := range a {
		if !close_enough(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	c, err := New("srgb", spaces.Vec{1, 0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if c.Alpha() != 1 {
		t.Errorf("alpha not clamped: %v", c.Alpha())
	}
	if _, err := New("bogus", spaces.Vec{}, 1); err == nil {
		t.Fatal("expected error for unknown space")
	}
	// Achromatic construction nulls the hue.
	c = MustNew("hsl", spaces.Vec{120, 0, 50}, 1)
	if !c.IsNaN(0) {
		t.Errorf("achromatic hsl hue = %v, wanted NaN", c.Coord(0))
	}
}

func TestConvert(t *testing.T) {
	red := MustNew("srgb", spaces.Vec{1, 0, 0}, 1)
	hsl, err := red.Convert("hsl")
	if err != nil {
		t.Fatal(err)
	}
	if !vecs_close(hsl.Coords(), spaces.Vec{0, 100, 50}, 1e-9) {
		t.Errorf("red -> hsl = %v", hsl.Coords())
	}
	// Converting to the same space is the identity.
	same := red.MustConvert("srgb")
	if !same.Equal(red) {
		t.Error("identity conversion changed the color")
	}
	if _, err := red.Convert("bogus"); err == nil {
		t.Fatal("expected ErrUnknownSpace")
	}
	// Alpha survives conversion.
	c := MustNew("srgb", spaces.Vec{0.1, 0.2, 0.3}, 0.25).MustConvert("lab")
	if c.Alpha() != 0.25 {
		t.Errorf("alpha lost in conversion: %v", c.Alpha())
	}
}

func TestRoundTripAllSpaces(t *testing.T) {
	base := MustNew("srgb", spaces.Vec{0.25, 0.5, 0.75}, 1)
	for _, name := range spaces.Names() {
		c := base.MustConvert(name)
		back := c.MustConvert("srgb")
		if !vecs_close(back.Coords(), base.Coords(), 1e-6) {
			t.Errorf("srgb -> %s -> srgb = %v, wanted %v", name, back.Coords(), base.Coords())
		}
	}
}

func TestEqual(t *testing.T) {
	a := MustNew("hsl", spaces.Vec{math.NaN(), 0, 50}, 1)
	b := MustNew("hsl", spaces.Vec{math.NaN(), 0, 50}, 1)
	if !a.Equal(b) {
		t.Error("NaN hues must compare equal")
	}
	if a.Equal(a.WithAlpha(0.5)) {
		t.Error("different alphas compared equal")
	}
}
