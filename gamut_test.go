// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"testing"

	"github.com/kovidgoyal/tint/spaces"
)

func TestInGamut(t *testing.T) {
	in := MustNew("srgb", spaces.Vec{0.5, 0.5, 0.5}, 1)
	out := MustNew("srgb", spaces.Vec{1.5, -0.2, 0.5}, 1)
	if ok, err := in.InGamut("srgb", DefaultGamutTolerance); err != nil || !ok {
		t.Fatalf("gray reported out of srgb gamut: %v %v", ok, err)
	}
	if ok, _ := out.InGamut("srgb", DefaultGamutTolerance); ok {
		t.Fatal("out of range color reported in gamut")
	}
	// Boundary values survive the tolerance.
	edge := MustNew("srgb", spaces.Vec{1 + DefaultGamutTolerance/2, 0, 0}, 1)
	if ok, _ := edge.InGamut("srgb", DefaultGamutTolerance); !ok {
		t.Fatal("tolerance not applied at the gamut edge")
	}
	// Wide gamut green is outside srgb but inside display-p3.
	green := MustNew("display-p3", spaces.Vec{0, 1, 0}, 1)
	if ok, _ := green.InGamut("srgb", DefaultGamutTolerance); ok {
		t.Fatal("P3 green reported inside srgb")
	}
	if ok, _ := green.InGamut("display-p3", DefaultGamutTolerance); !ok {
		t.Fatal("P3 green reported outside display-p3")
	}
	if _, err := in.InGamut("bogus", 0); err == nil {
		t.Fatal("expected ErrUnknownSpace")
	}
}

func TestClip(t *testing.T) {
	c := MustNew("srgb", spaces.Vec{1.5, -0.2, 0.5}, 1)
	clipped, err := c.Clip("srgb")
	if err != nil {
		t.Fatal(err)
	}
	if !vecs_close(clipped.Coords(), spaces.Vec{1, 0, 0.5}, 1e-9) {
		t.Errorf("clip gave %v", clipped.Coords())
	}
	// Angle channels wrap instead of clamping.
	h := MustNew("hsl", spaces.Vec{400, 50, 50}, 1)
	clipped = h.MustFit("hsl", "clip")
	if !vecs_close(clipped.Coords(), spaces.Vec{40, 50, 50}, 1e-9) {
		t.Errorf("hue clip gave %v", clipped.Coords())
	}
}

func TestFit(t *testing.T) {
	c := MustNew("srgb", spaces.Vec{1.5, -0.2, 0.5}, 1)
	clipped, err := c.Fit("srgb", "clip")
	if err != nil {
		t.Fatal(err)
	}
	if !vecs_close(clipped.Coords(), spaces.Vec{1, 0, 0.5}, 1e-9) {
		t.Errorf("Fit clip gave %v", clipped.Coords())
	}

	// The default method must land in gamut without increasing chroma.
	green := MustNew("display-p3", spaces.Vec{0, 1, 0}, 1)
	fitted, err := green.Fit("srgb", "")
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := fitted.InGamut("srgb", DefaultGamutTolerance); !ok {
		t.Fatal("fitted color still out of gamut")
	}
	orig_c := green.MustConvert("lch").Coord(1)
	fitted_c := fitted.MustConvert("lch").Coord(1)
	if fitted_c > orig_c+1e-6 {
		t.Errorf("gamut mapping increased chroma: %v -> %v", orig_c, fitted_c)
	}

	// A color already in gamut passes through, merely converted.
	in := MustNew("srgb", spaces.Vec{0.25, 0.5, 0.75}, 1)
	same, err := in.Fit("srgb", "")
	if err != nil {
		t.Fatal(err)
	}
	if !same.Equal(in) {
		t.Errorf("in gamut color was modified: %v", same.Coords())
	}

	if _, err := c.Fit("srgb", "wishful-thinking"); err == nil {
		t.Fatal("expected an error for an unknown method")
	}
}
