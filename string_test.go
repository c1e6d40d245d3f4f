// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"testing"

	"github.com/kovidgoyal/tint/spaces"
)

func TestColorString(t *testing.T) {
	c := MustNew("srgb", spaces.Vec{1, 0, 0}, 1)
	if s := c.String(); s != "rgb(255 0 0)" {
		t.Errorf("String() = %q", s)
	}
	if s := c.WithAlpha(0.5).String(); s != "rgb(255 0 0 / 0.5)" {
		t.Errorf("String() with alpha = %q", s)
	}
	if s := c.ToString(&spaces.StringOptions{Hex: true}); s != "#ff0000" {
		t.Errorf("hex = %q", s)
	}
	if s := MustNew("hsl", spaces.Vec{120, 50, 25}, 1).String(); s != "hsl(120 50% 25%)" {
		t.Errorf("hsl String() = %q", s)
	}
	// Out of gamut values are fitted before serializing.
	out := MustNew("srgb", spaces.Vec{1.5, -0.2, 0.5}, 1)
	if s := out.ToString(&spaces.StringOptions{Fit: "clip"}); s != "rgb(255 0 127.5)" {
		t.Errorf("clipped serialization = %q", s)
	}
	// Unless fitting is disabled.
	if s := out.ToString(&spaces.StringOptions{Fit: "none", Generic: true}); s != "color(srgb 1.5 -0.2 0.5)" {
		t.Errorf("unfitted serialization = %q", s)
	}
}
