// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/tint/alg"
)

var _ = fmt.Print

var lin_srgb_to_xyz_m = [3][3]float64{
	{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
	{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
	{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
}

var xyz_to_lin_srgb_m = [3][3]float64{
	{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
	{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
	{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
}

// lin_srgb removes the sRGB gamma curve. The function is mirrored across
// zero so extended range values interpolate smoothly through black.
func lin_srgb(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		abs_c := math.Abs(c)
		if abs_c < 0.04045 {
			ans[i] = c / 12.92
		} else {
			ans[i] = math.Copysign(math.Pow((abs_c+0.055)/1.055, 2.4), c)
		}
	}
	return ans
}

// gam_srgb applies the sRGB gamma curve, mirrored across zero.
func gam_srgb(rgb Vec) Vec {
	var ans Vec
	for i, c := range rgb {
		abs_c := math.Abs(c)
		if abs_c > 0.0031308 {
			ans[i] = math.Copysign(1.055*math.Pow(abs_c, 1/2.4)-0.055, c)
		} else {
			ans[i] = 12.92 * c
		}
	}
	return ans
}

type srgb_space struct{}

func (self *srgb_space) Name() string       { return "srgb" }
func (self *srgb_space) White() Vec         { return WhiteD65 }
func (self *srgb_space) HueIndex() int      { return -1 }
func (self *srgb_space) NullAdjust(c Vec) Vec { return c }

// HSL is far more sensitive to slight excursions than sRGB itself, so gamut
// checking consults it as well.
func (self *srgb_space) GamutCheck() string { return "hsl" }

func (self *srgb_space) Channels() [3]Channel {
	return [3]Channel{
		{Name: "red", Low: 0, High: 1, Bound: true},
		{Name: "green", Low: 0, High: 1, Bound: true},
		{Name: "blue", Low: 0, High: 1, Bound: true},
	}
}

func (self *srgb_space) ToXYZ(rgb Vec) Vec {
	return chromatic_adaptation(self.White(), WhiteD50, alg.Dot(lin_srgb_to_xyz_m, lin_srgb(rgb)))
}

func (self *srgb_space) FromXYZ(xyz Vec) Vec {
	return gam_srgb(alg.Dot(xyz_to_lin_srgb_m, chromatic_adaptation(WhiteD50, self.White(), xyz)))
}

const re_rgb_func = `\brgba?\(\s*` +
	`(?:` +
	`(?:(?:` + re_float + re_space + `){2}` + re_float + `|(?:` + re_percent + re_space + `){2}` + re_percent + `)` +
	`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?` +
	`|` +
	`(?:(?:` + re_float + re_comma + `){2}` + re_float + `|(?:` + re_percent + re_comma + `){2}` + re_percent + `)` +
	`(?:` + re_comma + `(?:` + re_percent + `|` + re_float + `))?` +
	`)` +
	`\s*\)`

const re_hex_color = `#(?:` + re_hex + `{6}(?:` + re_hex + `{2})?|` + re_hex + `{3}` + re_hex + `?)\b`

func translate_rgb_channel(channel int, tok string) float64 {
	if channel == -1 {
		return norm_alpha_channel(tok)
	}
	return norm_rgb_channel(tok)
}

func (self *srgb_space) Match(text string, start int, fullmatch bool) *Matched {
	if m := match_generic(self, text, start, fullmatch); m != nil {
		return m
	}
	if m := match_functional(pat(re_rgb_func), text, start, fullmatch, translate_rgb_channel, self.NullAdjust); m != nil {
		return m
	}
	if m := match_hex(text, start, fullmatch); m != nil {
		return m
	}
	return match_name(text, start, fullmatch)
}

// match_hex recognizes 6/8/3/4 digit hex notation. A hash directly after an
// identifier byte is not a color (in CSS it is an id selector).
func match_hex(text string, start int, fullmatch bool) *Matched {
	if starts_mid_word(text, start) {
		return nil
	}
	tail := text[start:]
	m := pat(re_hex_color).FindStringIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	h := tail[1:m[1]]
	alpha := 1.0
	var coords Vec
	switch len(h) {
	case 8:
		alpha = norm_hex_channel(h[6:8])
		fallthrough
	case 6:
		coords = Vec{norm_hex_channel(h[0:2]), norm_hex_channel(h[2:4]), norm_hex_channel(h[4:6])}
	case 4:
		alpha = norm_hex_channel(strings.Repeat(h[3:4], 2))
		fallthrough
	case 3:
		coords = Vec{
			norm_hex_channel(strings.Repeat(h[0:1], 2)),
			norm_hex_channel(strings.Repeat(h[1:2], 2)),
			norm_hex_channel(strings.Repeat(h[2:3], 2)),
		}
	}
	return &Matched{Coords: coords, Alpha: alpha, End: start + m[1]}
}

// match_name recognizes CSS color names. The token must sit on a word
// boundary and must not be a function call.
func match_name(text string, start int, fullmatch bool) *Matched {
	tail := text[start:]
	m := pat(`[a-z]{3,}\b`).FindStringIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	if start > 0 {
		prev := text[start-1]
		if prev == '#' || prev == '-' || prev == '_' ||
			('a' <= prev|0x20 && prev|0x20 <= 'z') || ('0' <= prev && prev <= '9') {
			return nil
		}
	}
	if m[1] < len(tail) && tail[m[1]] == '(' {
		return nil
	}
	coords, alpha, found := lookup_color_name(strings.ToLower(tail[:m[1]]))
	if !found {
		return nil
	}
	return &Matched{Coords: coords, Alpha: alpha, End: start + m[1]}
}

func hex_byte(c float64) int {
	return int(alg.RoundHalfUp(alg.Clamp(c, 0, 1) * 255.0))
}

func (self *srgb_space) hex(coords Vec, alpha float64, with_alpha bool, o *StringOptions) string {
	template := "#%02x%02x%02x"
	if o.Upper {
		template = "#%02X%02X%02X"
	}
	ans := fmt.Sprintf(template, hex_byte(coords[0]), hex_byte(coords[1]), hex_byte(coords[2]))
	if with_alpha {
		at := "%02x"
		if o.Upper {
			at = "%02X"
		}
		ans += fmt.Sprintf(at, hex_byte(alg.NoNaN(alpha)))
	}
	return ans
}

// compress_hex shortens #rrggbb(aa) to #rgb(a) when every pair repeats.
func compress_hex(h string) string {
	b := strings.Builder{}
	b.WriteByte('#')
	for i := 1; i < len(h); i += 2 {
		if h[i] != h[i+1] {
			return h
		}
		b.WriteByte(h[i])
	}
	return b.String()
}

func (self *srgb_space) String(coords Vec, alpha float64, o *StringOptions) string {
	if o.Generic {
		return serialize_generic(self, coords, alpha, o)
	}
	coords = alg.NoNaNs(coords)
	show_alpha := o.show_alpha(alpha)
	if o.Hex || o.Names {
		h := self.hex(coords, alpha, show_alpha, o)
		value := ""
		if o.Hex {
			value = h
			if o.Compress {
				value = compress_hex(value)
			}
		}
		if o.Names {
			// An opaque alpha suffix does not prevent a name match.
			stripped := h
			if show_alpha && strings.EqualFold(h[7:], "ff") {
				stripped = h[:7]
			}
			if n := hex_to_name(strings.ToLower(stripped)); n != "" {
				value = n
			}
		}
		if value != "" {
			return value
		}
	}
	p := o.precision()
	var chans [3]string
	factor, suffix := 255.0, ""
	if o.Percent {
		factor, suffix = 100.0, "%"
	}
	for i, c := range coords {
		chans[i] = alg.FmtFloat(c*factor, p) + suffix
	}
	return serialize_functional("rgb", "rgba", chans, alpha, o)
}
