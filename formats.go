// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

// Editor-centric sRGB hex variants: #AARRGGBB (alpha first), 0xRRGGBBAA and
// the ASS subtitle &HAABBGGRR form where the alpha byte stores transparency.

var (
	re_ahex     = regexp.MustCompile(`(?i)\A#(?:[0-9a-f]{8}|[0-9a-f]{6})\b`)
	re_zerox    = regexp.MustCompile(`(?i)\A0x(?:[0-9a-f]{8}|[0-9a-f]{6})\b`)
	re_ass_abgr = regexp.MustCompile(`(?i)\A&H([0-9a-f]{8}|[0-9a-f]{6})\b`)
)

func hex_channel(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0
	}
	return float64(v) / 255.0
}

func match_ahex(text string, start int, fullmatch bool) *spaces.Matched {
	tail := text[start:]
	m := re_ahex.FindStringIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	h := tail[1:m[1]]
	if len(h) == 8 {
		return &spaces.Matched{
			Coords: spaces.Vec{hex_channel(h[2:4]), hex_channel(h[4:6]), hex_channel(h[6:8])},
			Alpha:  hex_channel(h[0:2]),
			End:    start + m[1],
		}
	}
	return &spaces.Matched{
		Coords: spaces.Vec{hex_channel(h[0:2]), hex_channel(h[2:4]), hex_channel(h[4:6])},
		Alpha:  1, End: start + m[1],
	}
}

func match_zerox_hex(text string, start int, fullmatch bool) *spaces.Matched {
	if start > 0 && is_word_byte(text[start-1]) {
		return nil
	}
	tail := text[start:]
	m := re_zerox.FindStringIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	h := tail[2:m[1]]
	alpha := 1.0
	if len(h) == 8 {
		alpha = hex_channel(h[6:8])
	}
	return &spaces.Matched{
		Coords: spaces.Vec{hex_channel(h[0:2]), hex_channel(h[2:4]), hex_channel(h[4:6])},
		Alpha:  alpha, End: start + m[1],
	}
}

func match_ass_abgr(text string, start int, fullmatch bool) *spaces.Matched {
	tail := text[start:]
	m := re_ass_abgr.FindStringSubmatchIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	h := tail[m[2]:m[3]]
	if len(h) == 6 {
		h = "00" + h
	}
	return &spaces.Matched{
		Coords: spaces.Vec{hex_channel(h[6:8]), hex_channel(h[4:6]), hex_channel(h[2:4])},
		Alpha:  1 - hex_channel(h[0:2]),
		End:    start + m[1],
	}
}

func is_word_byte(b byte) bool {
	return b == '_' || ('a' <= b|0x20 && b|0x20 <= 'z') || ('0' <= b && b <= '9')
}

func (self Color) fitted_bytes() (r, g, b, a int) {
	c, err := self.Fit("srgb", "")
	if err != nil {
		c = clip(self, spaces.SRGB)
	}
	coords := alg.NoNaNs(c.coords)
	quant := func(v float64) int { return int(alg.RoundHalfUp(alg.Clamp(v, 0, 1) * 255.0)) }
	return quant(coords[0]), quant(coords[1]), quant(coords[2]), quant(c.alpha)
}

// AHexString serializes as #AARRGGBB, dropping the alpha byte when opaque
// unless always is set.
func (self Color) AHexString(always, upper bool) string {
	r, g, b, a := self.fitted_bytes()
	if always || self.alpha < 1 {
		if upper {
			return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
		}
		return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
	}
	if upper {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ZeroXHexString serializes as 0xRRGGBB or 0xRRGGBBAA.
func (self Color) ZeroXHexString(always, upper bool) string {
	r, g, b, a := self.fitted_bytes()
	if always || self.alpha < 1 {
		if upper {
			return fmt.Sprintf("0x%02X%02X%02X%02X", r, g, b, a)
		}
		return fmt.Sprintf("0x%02x%02x%02x%02x", r, g, b, a)
	}
	if upper {
		return fmt.Sprintf("0x%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("0x%02x%02x%02x", r, g, b)
}

// ASSABGRString serializes as &HAABBGGRR or &HBBGGRR. The alpha byte is
// inverted: 00 is opaque.
func (self Color) ASSABGRString(always, upper bool) string {
	r, g, b, a := self.fitted_bytes()
	if always || self.alpha < 1 {
		if upper {
			return fmt.Sprintf("&H%02X%02X%02X%02X", 255-a, b, g, r)
		}
		return fmt.Sprintf("&H%02x%02x%02x%02x", 255-a, b, g, r)
	}
	if upper {
		return fmt.Sprintf("&H%02X%02X%02X", b, g, r)
	}
	return fmt.Sprintf("&H%02x%02x%02x", b, g, r)
}
