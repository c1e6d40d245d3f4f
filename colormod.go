// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

var _ = fmt.Print

// color-mod style expression evaluator: color(<base> <adjuster>*) where the
// base is a hue angle, a nested color() expression or any recognizable color
// literal, and adjusters are alpha()/a(), lightness()/l(), saturation()/s(),
// blend()/blenda() and min-contrast().

var (
	// ErrUnterminatedExpression means a color() expression was not closed.
	ErrUnterminatedExpression = errors.New("unterminated color expression")
	// ErrInvalidAdjuster means text inside color() is not a recognized
	// adjuster.
	ErrInvalidAdjuster = errors.New("invalid color adjuster")
	// ErrMissingColor means an expression or adjuster needs a color where
	// none could be recognized.
	ErrMissingColor = errors.New("no base color in expression")
)

// Unsigned number fragments: the sign belongs to the adjuster operator, not
// the value.
const (
	mod_float   = `(?:[0-9]*\.[0-9]+|[0-9]+)`
	mod_percent = mod_float + `%`
)

var (
	re_mod_color_start = regexp.MustCompile(`(?i)\Acolor\(\s*`)
	re_mod_hue         = regexp.MustCompile(`(?i)\A` + mod_float + `(?:deg|rad|turn|grad)?`)
	re_mod_alpha       = regexp.MustCompile(`(?i)\A\s+a(?:lpha)?\(\s*` +
		`(?:(\+\s+|\-\s+)?(` + mod_percent + `|` + mod_float + `)|(\*)?\s*(` + mod_percent + `|` + mod_float + `))` +
		`\s*\)`)
	re_mod_saturation = regexp.MustCompile(`(?i)\A\s+s(?:aturation)?\((\+\s|\-\s|\*)?\s*(` + mod_percent + `)\s*\)`)
	re_mod_lightness  = regexp.MustCompile(`(?i)\A\s+l(?:ightness)?\((\+\s|\-\s|\*)?\s*(` + mod_percent + `)\s*\)`)
	re_mod_contrast   = regexp.MustCompile(`(?i)\A\s+min-contrast\(\s*`)
	re_mod_blend      = regexp.MustCompile(`(?i)\A\s+(blenda?)\(\s*`)
	re_mod_end        = regexp.MustCompile(`(?i)\A\s*\)`)
	re_mod_blend_end  = regexp.MustCompile(`(?i)\A\s+(` + mod_percent + `)(?:\s+(rgb|hsl|hwb))?\s*\)`)
	re_mod_ctr_end    = regexp.MustCompile(`(?i)\A\s+(` + mod_float + `)\s*\)`)

	// var() substitution needs lookbehind and lookahead to keep from firing
	// inside longer tokens, which the standard RE2 engine cannot express.
	re_mod_vars = regexp2.MustCompile(
		`(?i)(?:(?<=^)|(?<=[\s\t\(,/]))(var\(\s*([-\w][-\w\d]*)\s*\))(?!\()(?=[\s\t\),/]|$)`, regexp2.None)

	// Variable value validation tokens.
	re_tok_unit = regexp.MustCompile(`(?i)\A(?:` +
		`[+\-]?(?:[0-9]*\.[0-9]+|[0-9]+)(?:e[-+]?[0-9]+)?(?:%|deg|rad|turn|grad)?` +
		`|#(?:[0-9a-f]{6}(?:[0-9a-f]{2})?|[0-9a-f]{3}[0-9a-f]?)` +
		`|[a-z_][\w\-]*` +
		`)`)
	re_tok_func = regexp.MustCompile(`(?i)\A[a-z_][\w\-]*\(`)
	re_tok_sep  = regexp.MustCompile(`\A(?:\s*,\s*|\s*/\s*|\s+)`)
)

// EvalOptions configures expression evaluation.
type EvalOptions struct {
	// Variables maps var() names to replacement text. Values that do not
	// look like valid color fragments are ignored.
	Variables map[string]string
}

// Evaluate parses a full color-mod expression (or a plain color literal)
// into a color. Malformed expressions fail atomically with no partial
// result.
func Evaluate(text string, o *EvalOptions) (Color, error) {
	if o != nil && len(o.Variables) > 0 {
		text = substitute_vars(text, validate_vars(o.Variables), map[string]bool{})
	}
	// Plain literals, including the generic color(space ...) form, are not
	// mod expressions.
	if c, err := Parse(text); err == nil {
		return c, nil
	}
	cm := colormod{hue: math.NaN()}
	color, end, err := cm.adjust(text, 0)
	if err != nil {
		return Color{}, err
	}
	if end != len(text) {
		return Color{}, ErrIncompleteFullMatch
	}
	return color, nil
}

// validate_vars keeps only variable values that form a sequence of color
// tokens (numbers, hex literals, names, function calls) joined by valid
// separators, so a substitution cannot scramble the surrounding expression.
func validate_vars(vars map[string]string) map[string]string {
	good := make(map[string]string, len(vars))
	for k, v := range vars {
		v = strings.TrimSpace(v)
		if valid_var_value(v) {
			good[k] = v
		}
	}
	return good
}

func valid_var_value(v string) bool {
	start := 0
	need_sep := false
	for start < len(v) {
		if need_sep {
			m := re_tok_sep.FindStringIndex(v[start:])
			if m == nil {
				return false
			}
			start += m[1]
			need_sep = false
			continue
		}
		if m := re_tok_func.FindStringIndex(v[start:]); m != nil {
			depth := 1
			i := start + m[1]
			for ; i < len(v) && depth > 0; i++ {
				switch v[i] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth != 0 {
				return false
			}
			start = i
			need_sep = true
			continue
		}
		if m := re_tok_unit.FindStringIndex(v[start:]); m != nil {
			start += m[1]
			need_sep = true
			continue
		}
		return false
	}
	return start == len(v)
}

// substitute_vars replaces var() references recursively, with the parents
// set breaking reference cycles.
func substitute_vars(text string, vars map[string]string, parents map[string]bool) string {
	ans, err := re_mod_vars.ReplaceFunc(text, func(m regexp2.Match) string {
		name := m.GroupByNumber(2).String()
		replacement := vars[name]
		if replacement == "" || parents[name] {
			replacement = ""
		}
		parents[name] = true
		expanded := substitute_vars(replacement, vars, parents)
		delete(parents, name)
		return expanded
	}, -1, -1)
	if err != nil {
		return text
	}
	return ans
}

type colormod struct {
	color Color   // current value, kept in sRGB
	hue   float64 // last known concrete hue, NaN when never seen
}

func (self *colormod) remember_hue() {
	hsl := self.color.convert(spaces.HSL)
	if !alg.IsNaN(hsl.coords[0]) {
		self.hue = hsl.coords[0]
	}
}

// parse_base recognizes the base color after "color(": a bare hue angle, a
// nested color() expression or any color literal.
func (self *colormod) parse_base(text string, start int) (int, error) {
	if m := re_mod_hue.FindStringIndex(text[start:]); m != nil {
		h := norm_mod_angle(text[start : start+m[1]])
		self.color = MustNew("hsl", spaces.Vec{h, 100, 50}, 1).convert(spaces.SRGB)
		self.hue = h
		return start + m[1], nil
	}
	if re_mod_color_start.MatchString(text[start:]) {
		nested := colormod{hue: math.NaN()}
		color, end, err := nested.adjust(text, start)
		if err != nil {
			return 0, err
		}
		self.color = color.convert(spaces.SRGB)
		self.remember_hue()
		return end, nil
	}
	if m := match_at(text, start, false, nil); m != nil {
		self.color = m.Color.convert(spaces.SRGB)
		self.remember_hue()
		return m.End, nil
	}
	return 0, ErrMissingColor
}

// adjust evaluates one color(...) expression starting exactly at start and
// returns the resulting color and the offset just past the closing paren.
func (self *colormod) adjust(text string, start int) (Color, int, error) {
	m := re_mod_color_start.FindStringIndex(text[start:])
	if m == nil {
		return Color{}, 0, ErrMissingColor
	}
	pos, err := self.parse_base(text, start+m[1])
	if err != nil {
		return Color{}, 0, err
	}
	for {
		if m := re_mod_end.FindStringIndex(text[pos:]); m != nil {
			return self.color, pos + m[1], nil
		}
		pos, err = self.apply_adjuster(text, pos)
		if err != nil {
			return Color{}, 0, err
		}
	}
}

func (self *colormod) apply_adjuster(text string, pos int) (int, error) {
	tail := text[pos:]
	if m := re_mod_alpha.FindStringSubmatch(tail); m != nil {
		op := strings.TrimSpace(m[1] + m[3])
		value := m[2]
		if value == "" {
			value = m[4]
		}
		self.adjust_alpha(parse_mod_value(value), op)
		return pos + len(m[0]), nil
	}
	if m := re_mod_saturation.FindStringSubmatch(tail); m != nil {
		self.adjust_hsl_channel(1, parse_mod_value(m[2]), strings.TrimSpace(m[1]))
		return pos + len(m[0]), nil
	}
	if m := re_mod_lightness.FindStringSubmatch(tail); m != nil {
		self.adjust_hsl_channel(2, parse_mod_value(m[2]), strings.TrimSpace(m[1]))
		return pos + len(m[0]), nil
	}
	if m := re_mod_blend.FindStringSubmatch(tail); m != nil {
		return self.apply_blend(text, pos+len(m[0]), strings.EqualFold(m[1], "blenda"))
	}
	if m := re_mod_contrast.FindStringIndex(tail); m != nil {
		return self.apply_min_contrast(text, pos+m[1])
	}
	if tail == "" || strings.TrimSpace(tail) == "" {
		return 0, ErrUnterminatedExpression
	}
	return 0, ErrInvalidAdjuster
}

// parse_mod_value returns the value as a fraction: percents divide by 100,
// bare floats are taken as is.
func parse_mod_value(tok string) float64 {
	if strings.HasSuffix(tok, "%") {
		return must_parse_float(tok[:len(tok)-1]) / 100
	}
	return must_parse_float(tok)
}

func must_parse_float(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func norm_mod_angle(s string) float64 {
	ls := strings.ToLower(s)
	switch {
	case strings.HasSuffix(ls, "turn"):
		return must_parse_float(s[:len(s)-4]) * 360
	case strings.HasSuffix(ls, "grad"):
		return must_parse_float(s[:len(s)-4]) * 0.9
	case strings.HasSuffix(ls, "rad"):
		return must_parse_float(s[:len(s)-3]) * alg.Rad2Deg
	case strings.HasSuffix(ls, "deg"):
		return must_parse_float(s[:len(s)-3])
	}
	return must_parse_float(s)
}

func apply_mod_op(op string, current, value float64) float64 {
	switch op {
	case "+":
		return current + value
	case "-":
		return current - value
	case "*":
		return current * value
	}
	return value
}

func (self *colormod) adjust_alpha(value float64, op string) {
	self.color = self.color.WithAlpha(apply_mod_op(op, self.color.alpha, value))
}

// adjust_hsl_channel operates on saturation (1) or lightness (2) in HSL,
// restoring the remembered hue when the current color is achromatic so a
// later saturation increase brings the original hue back.
func (self *colormod) adjust_hsl_channel(idx int, value float64, op string) {
	hsl := self.color.convert(spaces.HSL)
	if alg.IsNaN(hsl.coords[0]) && !alg.IsNaN(self.hue) {
		hsl.coords[0] = self.hue
	}
	// Channels are 0-100, the multiply op works on the fraction.
	if op == "*" {
		hsl.coords[idx] = alg.Clamp(hsl.coords[idx]*value, 0, 100)
	} else {
		hsl.coords[idx] = alg.Clamp(apply_mod_op(op, hsl.coords[idx], value*100), 0, 100)
	}
	self.color = hsl.convert(spaces.SRGB)
	self.remember_hue()
}

// parse_mod_color recognizes a nested color for blend/min-contrast: either a
// nested color() expression or any color literal.
func (self *colormod) parse_mod_color(text string, pos int) (Color, int, error) {
	if re_mod_color_start.MatchString(text[pos:]) {
		nested := colormod{hue: math.NaN()}
		return nested.adjust(text, pos)
	}
	if m := match_at(text, pos, false, nil); m != nil {
		return m.Color, m.End, nil
	}
	return Color{}, 0, ErrMissingColor
}

func (self *colormod) apply_blend(text string, pos int, with_alpha bool) (int, error) {
	color2, pos, err := self.parse_mod_color(text, pos)
	if err != nil {
		return 0, err
	}
	m := re_mod_blend_end.FindStringSubmatch(text[pos:])
	if m == nil {
		return 0, ErrUnterminatedExpression
	}
	value := alg.Clamp(parse_mod_value(m[1]), 0, 1)
	space := "srgb"
	if m[2] != "" {
		space = strings.ToLower(m[2])
		if space == "rgb" {
			space = "srgb"
		}
	}
	this := self.color.MustConvert(space)
	color2 = color2.MustConvert(space)
	mixed, err := Mix(this, color2, 1-value, &InterpolateOptions{Space: space})
	if err != nil {
		return 0, err
	}
	if !with_alpha {
		mixed = mixed.WithAlpha(color2.alpha)
	}
	self.color = mixed.convert(spaces.SRGB)
	self.remember_hue()
	return pos + len(m[0]), nil
}

func (self *colormod) apply_min_contrast(text string, pos int) (int, error) {
	color2, pos, err := self.parse_mod_color(text, pos)
	if err != nil {
		return 0, err
	}
	m := re_mod_ctr_end.FindStringSubmatch(text[pos:])
	if m == nil {
		return 0, ErrUnterminatedExpression
	}
	target := must_parse_float(m[1])
	this := self.color.convert(spaces.SRGB)
	backdrop := color2.convert(spaces.SRGB).WithAlpha(1)
	self.color = min_contrast(this, backdrop, target)
	self.remember_hue()
	return pos + len(m[0]), nil
}

// min_contrast adjusts color toward white (dark backdrop) or black (light
// backdrop) in HWB until the WCAG contrast ratio against the backdrop
// reaches the target, then quantizes to 8 bit channels rounding up when
// lightening and down when darkening so truncation cannot drop the result
// back under the target.
func min_contrast(color, backdrop Color, target float64) Color {
	ratio := Contrast(color, backdrop)
	if ratio > target || target < 1 {
		return color
	}

	is_dark := backdrop.Luminance() < 0.5
	orig := color.convert(spaces.HWB)
	orig.coords[0] = alg.NoNaN(orig.coords[0])
	var primary, secondary int
	if is_dark {
		primary, secondary = 1, 2 // raise whiteness
	} else {
		primary, secondary = 2, 1 // raise blackness
	}
	min_mix := alg.NoNaN(orig.coords[primary])
	max_mix := 100.0
	orig_ratio := ratio
	last_ratio, last_mix, last_other := 0.0, 0.0, 0.0

	temp := orig
	for math.Abs(min_mix-max_mix) > 0.2 {
		mid_mix := alg.RoundHalfUpScale((max_mix+min_mix)/2, 1)
		mid_other := alg.NoNaN(orig.coords[secondary])/100 -
			((mid_mix-alg.NoNaN(orig.coords[primary]))/(1-alg.NoNaN(orig.coords[primary])))*alg.NoNaN(orig.coords[secondary])
		temp.coords[primary] = mid_mix
		temp.coords[secondary] = mid_other
		ratio = Contrast(temp, backdrop)

		if ratio < target {
			min_mix = mid_mix
		} else {
			max_mix = mid_mix
		}
		if (last_ratio < target && ratio > last_ratio) || (ratio > target && ratio < last_ratio) {
			last_ratio = ratio
			last_mix = mid_mix
			last_other = mid_other
		}
	}

	// No candidate improved on where we started.
	if last_ratio < ratio && orig_ratio > last_ratio {
		return color
	}

	coords := spaces.Vec{orig.coords[0], last_mix, last_other}
	if !is_dark {
		coords = spaces.Vec{orig.coords[0], last_other, last_mix}
	}
	final := MustNew("hwb", coords, orig.alpha).convert(spaces.SRGB)
	rnd := alg.RoundHalfUp
	if !is_dark {
		rnd = math.Floor
	}
	for i, c := range final.coords {
		final.coords[i] = rnd(c*255.0) / 255.0
	}
	return final
}
