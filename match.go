// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"errors"

	"github.com/kovidgoyal/tint/spaces"
)

var (
	// ErrNoMatch means the text at the offset does not form a recognized
	// color. Callers scanning a buffer advance and retry.
	ErrNoMatch = errors.New("no color recognized")
	// ErrIncompleteFullMatch means a valid color prefix was found but
	// trailing text remained under full match mode.
	ErrIncompleteFullMatch = errors.New("color recognized but trailing text remains")
)

// MatchOptions restricts and extends the set of notations recognized.
type MatchOptions struct {
	// Spaces limits recognition to the named spaces, in the given order.
	// Empty means all registered spaces in their priority order.
	Spaces []string
	// AlphaHex reads 8-digit hex as #AARRGGBB instead of #RRGGBBAA. Takes
	// priority over the standard hex notation.
	AlphaHex bool
	// ZeroXHex recognizes 0xRRGGBB / 0xRRGGBBAA literals.
	ZeroXHex bool
	// ASSABGR recognizes &HAABBGGRR / &HBBGGRR literals (ASS subtitle
	// format, alpha is stored inverted).
	ASSABGR bool
}

// ColorMatch is a recognized color literal: the color plus the offsets of
// the consumed text. End is always a legal token boundary.
type ColorMatch struct {
	Color      Color
	Start, End int
}

func (self *MatchOptions) match_order() []spaces.Space {
	if self == nil || len(self.Spaces) == 0 {
		return spaces.MatchOrder()
	}
	ans := make([]spaces.Space, 0, len(self.Spaces))
	for _, name := range self.Spaces {
		if s := spaces.Lookup(name); s != nil {
			ans = append(ans, s)
		}
	}
	return ans
}

func match_at(text string, start int, fullmatch bool, o *MatchOptions) *ColorMatch {
	if o != nil && o.AlphaHex {
		if m := match_ahex(text, start, fullmatch); m != nil {
			return &ColorMatch{Color: from_matched(spaces.SRGB, m), Start: start, End: m.End}
		}
	}
	for _, s := range o.match_order() {
		if m := s.Match(text, start, fullmatch); m != nil {
			return &ColorMatch{Color: from_matched(s, m), Start: start, End: m.End}
		}
	}
	if o != nil && o.ZeroXHex {
		if m := match_zerox_hex(text, start, fullmatch); m != nil {
			return &ColorMatch{Color: from_matched(spaces.SRGB, m), Start: start, End: m.End}
		}
	}
	if o != nil && o.ASSABGR {
		if m := match_ass_abgr(text, start, fullmatch); m != nil {
			return &ColorMatch{Color: from_matched(spaces.SRGB, m), Start: start, End: m.End}
		}
	}
	return nil
}

func from_matched(s spaces.Space, m *spaces.Matched) Color {
	return Color{space: s, coords: s.NullAdjust(m.Coords), alpha: m.Alpha}
}

// Match recognizes a color literal starting exactly at the offset. Under
// fullmatch the literal must extend to the end of the text, and a literal
// that stops short reports ErrIncompleteFullMatch.
func Match(text string, start int, fullmatch bool, o *MatchOptions) (ColorMatch, error) {
	if m := match_at(text, start, fullmatch, o); m != nil {
		return *m, nil
	}
	if fullmatch {
		if match_at(text, start, false, o) != nil {
			return ColorMatch{}, ErrIncompleteFullMatch
		}
	}
	return ColorMatch{}, ErrNoMatch
}

// Parse validates and parses an entire string as one color literal.
func Parse(text string) (Color, error) {
	m, err := Match(text, 0, true, nil)
	if err != nil {
		return Color{}, err
	}
	return m.Color, nil
}
