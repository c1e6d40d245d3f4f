// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kovidgoyal/tint/alg"
)

func close_enough(a, b, tol float64) bool {
	if alg.IsNaN(a) && alg.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func vecs_close(a, b Vec, tol float64) bool {
	for i := range a {
		if !close_enough(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// Every space must reproduce its own coordinates after a trip through the
// XYZ hub, within floating tolerance, for random in-gamut colors.
func TestRoundTripThroughXYZ(t *testing.T) {
	rng := rand.New(rand.NewSource(0x746976))
	for _, s := range MatchOrder() {
		for range 1000 {
			rgb := Vec{rng.Float64(), rng.Float64(), rng.Float64()}
			coords := s.NullAdjust(s.FromXYZ(SRGB.ToXYZ(rgb)))
			back := s.NullAdjust(s.FromXYZ(s.ToXYZ(coords)))
			if !vecs_close(coords, back, 1e-6) {
				t.Fatalf("%s: round trip %v -> %v for srgb %v", s.Name(), coords, back, rgb)
			}
		}
	}
}

func TestDirectRoutesAgreeWithHub(t *testing.T) {
	rng := rand.New(rand.NewSource(0x746e69))
	pairs := [][2]string{
		{"hsl", "srgb"}, {"srgb", "hsl"}, {"hsv", "hsl"}, {"hwb", "hsv"},
		{"lch", "lab"}, {"lab", "lch"}, {"oklch", "oklab"},
		{"srgb-linear", "srgb"}, {"oklab", "srgb-linear"},
	}
	for _, p := range pairs {
		from, to := Lookup(p[0]), Lookup(p[1])
		route := Route(p[0], p[1])
		if route == nil {
			t.Fatalf("no direct route %s -> %s", p[0], p[1])
		}
		for range 200 {
			rgb := Vec{rng.Float64(), rng.Float64(), rng.Float64()}
			coords := from.NullAdjust(from.FromXYZ(SRGB.ToXYZ(rgb)))
			direct := to.NullAdjust(route(coords))
			hub := to.NullAdjust(to.FromXYZ(from.ToXYZ(coords)))
			if !vecs_close(direct, hub, 1e-6) {
				t.Fatalf("%s -> %s: direct %v != hub %v for %v", p[0], p[1], direct, hub, coords)
			}
		}
	}
}

func TestKnownConversions(t *testing.T) {
	type tr struct {
		space    string
		rgb      Vec
		expected Vec
		tol      float64
	}
	tests := []tr{
		{"hsl", Vec{1, 0, 0}, Vec{0, 100, 50}, 1e-9},
		{"hsl", Vec{0, 0, 1}, Vec{240, 100, 50}, 1e-9},
		{"hsv", Vec{1, 0, 0}, Vec{0, 100, 100}, 1e-9},
		{"hwb", Vec{1, 0, 0}, Vec{0, 0, 0}, 1e-9},
		{"hwb", Vec{0.5, 0.5, 0.5}, Vec{math.NaN(), 50, 50}, 1e-9},
		// Reference Lab values for the sRGB primaries.
		{"lab", Vec{1, 0, 0}, Vec{54.29173, 80.8125, 69.88504}, 1e-3},
		{"lab", Vec{1, 1, 1}, Vec{100, 0, 0}, 1e-2},
		{"lab", Vec{0, 0, 0}, Vec{0, 0, 0}, 1e-9},
		{"xyz-d65", Vec{1, 1, 1}, Vec{0.95047, 1, 1.08883}, 1e-5},
	}
	for _, tt := range tests {
		s := Lookup(tt.space)
		actual := s.NullAdjust(s.FromXYZ(SRGB.ToXYZ(tt.rgb)))
		if !vecs_close(actual, tt.expected, tt.tol) {
			t.Errorf("srgb%v -> %s = %v, wanted %v", tt.rgb, tt.space, actual, tt.expected)
		}
	}
}

func TestAchromaticHueIsNaN(t *testing.T) {
	for _, space := range []string{"hsl", "hsv", "lch", "oklch"} {
		s := Lookup(space)
		coords := s.NullAdjust(s.FromXYZ(SRGB.ToXYZ(Vec{0.5, 0.5, 0.5})))
		if !alg.IsNaN(coords[s.HueIndex()]) {
			t.Errorf("%s: achromatic gray has hue %v, wanted NaN", space, coords[s.HueIndex()])
		}
	}
}

func TestRegistry(t *testing.T) {
	if Lookup("srgb") != SRGB {
		t.Fatal("lookup of srgb failed")
	}
	if Lookup("no-such-space") != nil {
		t.Fatal("lookup of unknown space did not return nil")
	}
	names := Names()
	if len(names) != 15 {
		t.Fatalf("expected 15 registered spaces, got %d: %v", len(names), names)
	}
	if names[0] != "hsl" {
		t.Fatalf("hsl must have top match priority, got %v", names[0])
	}
}
