// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"errors"
	"math"
	"testing"

	"github.com/kovidgoyal/tint/spaces"
)

func eval(t *testing.T, text string, o *EvalOptions) Color {
	t.Helper()
	c, err := Evaluate(text, o)
	if err != nil {
		t.Fatalf("Evaluate(%#v) failed: %v", text, err)
	}
	return c
}

func TestEvaluateLiterals(t *testing.T) {
	// Plain literals evaluate as themselves, including the generic form.
	c := eval(t, `rgb(255 0 0)`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{1, 0, 0}, 1e-9) {
		t.Errorf("literal gave %v", c.Coords())
	}
	c = eval(t, `color(srgb 1 0 0.5)`, nil)
	if c.Space() != "srgb" || !vecs_close(c.Coords(), spaces.Vec{1, 0, 0.5}, 1e-9) {
		t.Errorf("generic literal gave %s %v", c.Space(), c.Coords())
	}
}

func TestEvaluateAlpha(t *testing.T) {
	type tr struct {
		expr  string
		alpha float64
	}
	tests := []tr{
		{`color(#ff0000 a(50%))`, 0.5},
		{`color(#ff0000 a(0.25))`, 0.25},
		{`color(#ff0000 alpha(25%))`, 0.25},
		{`color(rgba(255, 0, 0, 0.5) a(+ 25%))`, 0.75},
		{`color(rgba(255, 0, 0, 0.5) a(- 25%))`, 0.25},
		{`color(rgba(255, 0, 0, 0.5) a(*0.5))`, 0.25},
		{`color(#ff0000 a(200%))`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			c := eval(t, tt.expr, nil)
			if math.Abs(c.Alpha()-tt.alpha) > 1e-9 {
				t.Errorf("alpha = %v, wanted %v", c.Alpha(), tt.alpha)
			}
			if !vecs_close(c.Coords(), spaces.Vec{1, 0, 0}, 1e-9) {
				t.Errorf("channels disturbed: %v", c.Coords())
			}
		})
	}
}

func TestEvaluateLightnessSaturation(t *testing.T) {
	type tr struct {
		expr     string
		expected spaces.Vec
	}
	tests := []tr{
		{`color(red l(25%))`, spaces.Vec{0.5, 0, 0}},
		{`color(red l(- 25%))`, spaces.Vec{0.5, 0, 0}},
		{`color(red lightness(*0.5))`, spaces.Vec{0.5, 0, 0}},
		{`color(red l(+ 25%))`, spaces.Vec{1, 0.5, 0.5}},
		{`color(red s(0%))`, spaces.Vec{0.5, 0.5, 0.5}},
		{`color(red saturation(*0.5))`, spaces.Vec{0.75, 0.25, 0.25}},
		// A hue angle base is hsl(h 100% 50%).
		{`color(120 s(50%))`, spaces.Vec{0.25, 0.75, 0.25}},
		{`color(0.5turn l(25%))`, spaces.Vec{0, 0.5, 0.5}},
		// Desaturating to gray and back restores the remembered hue.
		{`color(red s(0%) s(100%))`, spaces.Vec{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			c := eval(t, tt.expr, nil)
			if !vecs_close(c.Coords(), tt.expected, 1e-9) {
				t.Errorf("gave %v, wanted %v", c.Coords(), tt.expected)
			}
		})
	}
}

func TestEvaluateBlend(t *testing.T) {
	c := eval(t, `color(red blend(blue 50%))`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{0.5, 0, 0.5}, 1e-9) {
		t.Errorf("blend gave %v", c.Coords())
	}
	// The percent is how much of the base color survives.
	c = eval(t, `color(red blend(blue 25%))`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{0.25, 0, 0.75}, 1e-9) {
		t.Errorf("25%% blend gave %v", c.Coords())
	}
	// blend takes the blended color's alpha, blenda interpolates it.
	c = eval(t, `color(red blend(rgba(0, 0, 255, 0.5) 50%))`, nil)
	if math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("blend alpha = %v, wanted 0.5", c.Alpha())
	}
	c = eval(t, `color(red blenda(rgba(0, 0, 255, 0.5) 50%))`, nil)
	if math.Abs(c.Alpha()-0.75) > 1e-9 {
		t.Errorf("blenda alpha = %v, wanted 0.75", c.Alpha())
	}
	// An explicit blend space.
	c = eval(t, `color(red blend(blue 50% hsl))`, nil)
	hsl := c.MustConvert("hsl")
	if h := hsl.Coord(0); math.Abs(h-300) > 1e-6 {
		t.Errorf("hsl blend hue = %v, wanted 300", h)
	}
}

func TestEvaluateMinContrast(t *testing.T) {
	black := MustNew("srgb", spaces.Vec{0, 0, 0}, 1)
	white := MustNew("srgb", spaces.Vec{1, 1, 1}, 1)

	c := eval(t, `color(#666666 min-contrast(#000000 4.5))`, nil)
	if r := Contrast(c, black); r < 4.5 {
		t.Errorf("contrast after adjustment = %v, wanted >= 4.5", r)
	}
	c = eval(t, `color(#999999 min-contrast(#ffffff 4.5))`, nil)
	if r := Contrast(c, white); r < 4.5 {
		t.Errorf("contrast against white = %v, wanted >= 4.5", r)
	}
	// Already sufficient contrast leaves the color alone.
	c = eval(t, `color(white min-contrast(black 4.5))`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{1, 1, 1}, 1e-9) {
		t.Errorf("white was disturbed: %v", c.Coords())
	}
	// Targets under 1 are a no-op.
	c = eval(t, `color(#666666 min-contrast(black 0.5))`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{0.4, 0.4, 0.4}, 1e-3) {
		t.Errorf("no-op target modified the color: %v", c.Coords())
	}
}

func TestEvaluateNested(t *testing.T) {
	c := eval(t, `color(color(red l(25%)) a(50%))`, nil)
	if !vecs_close(c.Coords(), spaces.Vec{0.5, 0, 0}, 1e-9) || math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("nested expression gave %v / %v", c.Coords(), c.Alpha())
	}
	// Adjusters chain left to right.
	c = eval(t, `color(red a(50%) a(*0.5))`, nil)
	if math.Abs(c.Alpha()-0.25) > 1e-9 {
		t.Errorf("chained alpha = %v", c.Alpha())
	}
}

func TestEvaluateVariables(t *testing.T) {
	o := &EvalOptions{Variables: map[string]string{
		"accent": "#ff0000",
		"dim":    "50%",
		"chain":  "var(accent)",
		"loop-a": "var(loop-b)",
		"loop-b": "var(loop-a)",
		"evil":   "#ff0000) a(1%",
	}}
	c := eval(t, `var(accent)`, o)
	if !vecs_close(c.Coords(), spaces.Vec{1, 0, 0}, 1e-9) {
		t.Errorf("var gave %v", c.Coords())
	}
	c = eval(t, `color(var(accent) a(var(dim)))`, o)
	if math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("var in adjuster gave alpha %v", c.Alpha())
	}
	c = eval(t, `var(chain)`, o)
	if !vecs_close(c.Coords(), spaces.Vec{1, 0, 0}, 1e-9) {
		t.Errorf("chained var gave %v", c.Coords())
	}
	// The same variable may appear more than once.
	c = eval(t, `color(var(accent) blend(var(accent) 50%))`, o)
	if !vecs_close(c.Coords(), spaces.Vec{1, 0, 0}, 1e-9) {
		t.Errorf("repeated var gave %v", c.Coords())
	}
	if _, err := Evaluate(`var(loop-a)`, o); err == nil {
		t.Fatal("a variable reference cycle must not evaluate")
	}
	// A value that would scramble the expression is dropped, not spliced.
	if _, err := Evaluate(`color(var(evil) a(50%))`, o); err == nil {
		t.Fatal("an invalid variable value was substituted")
	}
	if _, err := Evaluate(`var(undefined)`, o); err == nil {
		t.Fatal("an undefined variable must not evaluate")
	}
}

func TestEvaluateErrors(t *testing.T) {
	type tr struct {
		expr     string
		expected error
	}
	tests := []tr{
		{`color(red`, ErrUnterminatedExpression},
		{`color(red a(50%)`, ErrUnterminatedExpression},
		{`color(red blend(blue)`, ErrUnterminatedExpression},
		{`color(red wibble(1))`, ErrInvalidAdjuster},
		{`color()`, ErrMissingColor},
		{`color(red blend(50%))`, ErrMissingColor},
		{`color(red) trailing`, ErrIncompleteFullMatch},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if _, err := Evaluate(tt.expr, nil); !errors.Is(err, tt.expected) {
				t.Errorf("Evaluate(%#v) = %v, wanted %v", tt.expr, err, tt.expected)
			}
		})
	}
	if _, err := Evaluate(`not a color at all`, nil); err == nil {
		t.Fatal("nonsense evaluated without error")
	}
}
