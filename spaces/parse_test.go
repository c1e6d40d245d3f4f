// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func match_any(text string, start int, fullmatch bool) (Space, *Matched) {
	for _, s := range MatchOrder() {
		if m := s.Match(text, start, fullmatch); m != nil {
			return s, m
		}
	}
	return nil, nil
}

func TestMatchNotations(t *testing.T) {
	type tr struct {
		input  string
		space  string
		coords Vec
		alpha  float64
		end    int
	}
	tests := []tr{
		{`#FF0000`, "srgb", Vec{1, 0, 0}, 1, 7},
		{`#ff000080`, "srgb", Vec{1, 0, 0}, 128.0 / 255.0, 9},
		{`#f00`, "srgb", Vec{1, 0, 0}, 1, 4},
		{`#f008`, "srgb", Vec{1, 0, 0}, 136.0 / 255.0, 5},
		{`rgb(255 0 0 / 50%)`, "srgb", Vec{1, 0, 0}, 0.5, 18},
		{`rgb(255, 0, 0)`, "srgb", Vec{1, 0, 0}, 1, 14},
		{`rgba(100%, 0%, 0%, 0.5)`, "srgb", Vec{1, 0, 0}, 0.5, 23},
		{`red`, "srgb", Vec{1, 0, 0}, 1, 3},
		{`rebeccapurple`, "srgb", Vec{0x66 / 255.0, 0x33 / 255.0, 0x99 / 255.0}, 1, 13},
		{`transparent`, "srgb", Vec{0, 0, 0}, 0, 11},
		{`hsl(120 50% 25%)`, "hsl", Vec{120, 50, 25}, 1, 16},
		{`hsla(120, 50%, 25%, 40%)`, "hsl", Vec{120, 50, 25}, 0.4, 24},
		{`hsl(0.5turn 100% 50%)`, "hsl", Vec{180, 100, 50}, 1, 21},
		{`hsl(200grad 100% 50%)`, "hsl", Vec{180, 100, 50}, 1, 21},
		{`hwb(90 10% 20%)`, "hwb", Vec{90, 10, 20}, 1, 15},
		{`hwb(0, 60%, 40%)`, "hwb", Vec{math.NaN(), 60, 40}, 1, 16},
		{`lab(50% 40 -30)`, "lab", Vec{50, 40, -30}, 1, 15},
		{`lch(50% 30 270 / 0.5)`, "lch", Vec{50, 30, 270}, 0.5, 21},
		{`oklab(0.5 0.1 -0.05)`, "oklab", Vec{0.5, 0.1, -0.05}, 1, 20},
		{`oklab(50% 0.1 -0.05)`, "oklab", Vec{0.5, 0.1, -0.05}, 1, 20},
		{`oklch(0.7 0.15 140)`, "oklch", Vec{0.7, 0.15, 140}, 1, 19},
		{`color(srgb 1 0 0.5)`, "srgb", Vec{1, 0, 0.5}, 1, 19},
		{`color(hsv 120 50% 50% / 0.5)`, "hsv", Vec{120, 50, 50}, 0.5, 28},
		// Missing channels fill with zero, surplus ones are thrown away.
		{`color(srgb 1)`, "srgb", Vec{1, 0, 0}, 1, 13},
		{`color(srgb 1 0 0 0.5 0.5)`, "srgb", Vec{1, 0, 0}, 1, 25},
		{`color(xyz 0.1 0.2 0.3)`, "xyz", Vec{0.1, 0.2, 0.3}, 1, 22},
		{`color(display-p3 1 0 0)`, "display-p3", Vec{1, 0, 0}, 1, 23},
		{`color(rec2020 0.5 0.5 0.5)`, "rec2020", Vec{0.5, 0.5, 0.5}, 1, 26},
		{`rgb(1e2 0 0)`, "srgb", Vec{100.0 / 255.0, 0, 0}, 1, 12},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, m := match_any(tt.input, 0, true)
			if m == nil {
				t.Fatalf("no match for %#v", tt.input)
			}
			if s.Name() != tt.space {
				t.Fatalf("%#v matched in space %s, wanted %s", tt.input, s.Name(), tt.space)
			}
			if !vecs_close(m.Coords, tt.coords, 1e-9) {
				t.Errorf("%#v coords = %v, wanted %v", tt.input, m.Coords, tt.coords)
			}
			if !close_enough(m.Alpha, tt.alpha, 1e-9) {
				t.Errorf("%#v alpha = %v, wanted %v", tt.input, m.Alpha, tt.alpha)
			}
			if m.End != tt.end {
				t.Errorf("%#v end = %d, wanted %d", tt.input, m.End, tt.end)
			}
		})
	}
}

func TestMatchAtOffsetAndFullmatch(t *testing.T) {
	text := `background: #ff0000; color: hsl(120 50% 25%)`
	s, m := match_any(text, 12, false)
	if m == nil || s.Name() != "srgb" || m.End != 19 {
		t.Fatalf("offset match failed: %v %v", s, m)
	}
	if _, m := match_any(text, 12, true); m != nil {
		t.Fatal("fullmatch should fail with trailing text")
	}
	if _, m := match_any(text, 28, false); m == nil || m.End != len(text) {
		t.Fatalf("match at 28 failed: %v", m)
	}
	// A name must not match inside a longer word or before a call paren.
	if _, m := match_any("lightgray(", 0, false); m != nil {
		t.Fatal("matched a function name as a color")
	}
	if _, m := match_any("#ff0000red", 7, false); m != nil {
		t.Fatal("matched a name directly after hex digits")
	}
	// Recognizers must not fire in the middle of an identifier.
	if _, m := match_any("xrgb(255 0 0)", 1, false); m != nil {
		t.Fatal("matched rgb() inside a longer identifier")
	}
	if _, m := match_any("xcolor(srgb 1 0 0)", 1, false); m != nil {
		t.Fatal("matched color() inside a longer identifier")
	}
	if _, m := match_any("a#ff0000", 1, false); m != nil {
		t.Fatal("matched a hash color directly after an identifier byte")
	}
	// A non-word byte before the notation is fine.
	if _, m := match_any("(rgb(255 0 0))", 1, false); m == nil || m.End != 13 {
		t.Fatalf("match after a paren failed: %v", m)
	}
}

func TestNoMatch(t *testing.T) {
	for _, text := range []string{``, `nonsense`, `rgb(`, `rgb()`, `#gg0000`, `hsl(1 2 3)`} {
		if s, m := match_any(text, 0, true); m != nil {
			t.Errorf("%#v unexpectedly matched in %s as %v", text, s.Name(), m)
		}
	}
}

func TestSerialize(t *testing.T) {
	type tr struct {
		space    string
		coords   Vec
		alpha    float64
		opts     StringOptions
		expected string
	}
	tests := []tr{
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Hex: true}, "#ff0000"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Hex: true, Upper: true}, "#FF0000"},
		{"srgb", Vec{1, 0, 0}, 0.5, StringOptions{Hex: true}, "#ff000080"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Hex: true, Compress: true}, "#f00"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Names: true}, "red"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{}, "rgb(255 0 0)"},
		{"srgb", Vec{1, 0, 0}, 0.5, StringOptions{}, "rgb(255 0 0 / 0.5)"},
		{"srgb", Vec{1, 0, 0}, 0.5, StringOptions{Comma: true}, "rgba(255, 0, 0, 0.5)"},
		{"srgb", Vec{0.5, 0, 0}, 1, StringOptions{}, "rgb(127.5 0 0)"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Percent: true}, "rgb(100% 0% 0%)"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Generic: true}, "color(srgb 1 0 0)"},
		{"srgb", Vec{1, 0, 0}, 1, StringOptions{Alpha: AlphaAlways}, "rgb(255 0 0 / 1)"},
		{"hsl", Vec{120, 50, 25}, 1, StringOptions{}, "hsl(120 50% 25%)"},
		{"hsl", Vec{120, 50, 25}, 0.4, StringOptions{Comma: true}, "hsla(120, 50%, 25%, 0.4)"},
		{"hsl", Vec{math.NaN(), 0, 50}, 1, StringOptions{Generic: true}, "color(hsl none 0 50)"},
		{"hwb", Vec{90, 10, 20}, 1, StringOptions{}, "hwb(90 10% 20%)"},
		{"lab", Vec{50, 40, -30}, 1, StringOptions{}, "lab(50% 40 -30)"},
		{"lch", Vec{50, 30, 270}, 1, StringOptions{}, "lch(50% 30 270)"},
		{"oklch", Vec{0.7, 0.15, 140}, 1, StringOptions{}, "oklch(0.7 0.15 140)"},
		{"xyz", Vec{0.1, 0.2, 0.3}, 1, StringOptions{}, "color(xyz 0.1 0.2 0.3)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			s := Lookup(tt.space)
			actual := s.String(tt.coords, tt.alpha, &tt.opts)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Fatalf("%s%v serialization mismatch: %s", tt.space, tt.coords, diff)
			}
		})
	}
}

// Serializing then reparsing must reproduce the color within the precision
// implied by the options.
func TestSerializeParseIdempotence(t *testing.T) {
	type tr struct {
		space  string
		coords Vec
		alpha  float64
	}
	tests := []tr{
		{"srgb", Vec{0.25, 0.5, 0.75}, 1},
		{"srgb", Vec{1, 0, 0}, 0.5},
		{"hsl", Vec{33.3, 45.6, 78.9}, 1},
		{"hwb", Vec{200, 15, 25}, 0.25},
		{"lab", Vec{64.5, 12.25, -33.5}, 1},
		{"lch", Vec{64.5, 30.25, 120.5}, 1},
		{"oklch", Vec{0.64, 0.12, 120.5}, 1},
		{"rec2020", Vec{0.25, 0.5, 0.75}, 1},
	}
	for _, tt := range tests {
		s := Lookup(tt.space)
		text := s.String(tt.coords, tt.alpha, &StringOptions{})
		got, m := match_any(text, 0, true)
		if m == nil {
			t.Fatalf("%s did not reparse", text)
		}
		if got.Name() != tt.space {
			t.Fatalf("%s reparsed into %s, wanted %s", text, got.Name(), tt.space)
		}
		if !vecs_close(m.Coords, tt.coords, 1e-4) || !close_enough(m.Alpha, tt.alpha, 1e-4) {
			t.Fatalf("%s reparsed to %v/%v, wanted %v/%v", text, m.Coords, m.Alpha, tt.coords, tt.alpha)
		}
	}
}

func BenchmarkMatchHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		match_any("#ff0000", 0, true)
	}
}

func BenchmarkMatchFunctional(b *testing.B) {
	for i := 0; i < b.N; i++ {
		match_any("hsl(120 50% 25%)", 0, true)
	}
}

func BenchmarkMatchName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		match_any("rebeccapurple", 0, true)
	}
}
