// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/tint/alg"
)

var _ = fmt.Print

// DefaultPrecision is the number of significant digits used for
// serialization when none is requested.
const DefaultPrecision = 5

type AlphaMode int

const (
	AlphaAuto AlphaMode = iota // include alpha only when < 1
	AlphaAlways
	AlphaNever
)

// StringOptions controls serialization. The zero value gives the canonical
// form for the space: functional CSS notation where one exists, otherwise
// the generic color() form, lowercase, space separated, alpha only when
// meaningful.
type StringOptions struct {
	Hex      bool // sRGB only: serialize as #rrggbb / #rrggbbaa
	Names    bool // sRGB only: prefer a CSS color name when one matches exactly
	Comma    bool // legacy comma separated functional form
	Percent  bool // sRGB only: percentages instead of 0-255 channel values
	Upper    bool // uppercase hex digits
	Compress bool // compress #rrggbb to #rgb when possible
	Alpha    AlphaMode
	// Precision in significant digits. 0 means DefaultPrecision, -1 full.
	Precision int
	// Fit names the gamut mapping method applied before serialization:
	// "" for the default, "none" to serialize out of gamut values as is.
	Fit string
	// Generic forces the color(space ...) form even when the space has a
	// CSS functional notation.
	Generic bool
}

func (self *StringOptions) precision() int {
	if self.Precision == 0 {
		return DefaultPrecision
	}
	return self.Precision
}

func (self *StringOptions) alpha_precision() int {
	p := self.precision()
	if p != -1 && p < DefaultPrecision {
		p = DefaultPrecision
	}
	return p
}

func (self *StringOptions) show_alpha(alpha float64) bool {
	switch self.Alpha {
	case AlphaAlways:
		return true
	case AlphaNever:
		return false
	}
	return alg.NoNaN(alpha) < 1.0
}

// serialize_generic emits the `color(space c1 c2 c3 / alpha)` form. NaN
// channels serialize as "none".
func serialize_generic(s Space, coords Vec, alpha float64, o *StringOptions) string {
	p := o.precision()
	b := strings.Builder{}
	b.WriteString("color(")
	b.WriteString(s.Name())
	for _, c := range coords {
		b.WriteByte(' ')
		b.WriteString(alg.FmtFloat(c, p))
	}
	if o.show_alpha(alpha) {
		b.WriteString(" / ")
		b.WriteString(alg.FmtFloat(alg.NoNaN(alpha), o.alpha_precision()))
	}
	b.WriteByte(')')
	return b.String()
}

// serialize_functional emits `name(a b c / alpha)` or the legacy
// `namea(a, b, c, alpha)` style. Channel strings are preformatted by the
// caller since scaling is space specific.
func serialize_functional(name, legacy_name string, chans [3]string, alpha float64, o *StringOptions) string {
	if o.show_alpha(alpha) {
		a := alg.FmtFloat(alg.NoNaN(alpha), o.alpha_precision())
		if o.Comma {
			return fmt.Sprintf("%s(%s, %s, %s, %s)", legacy_name, chans[0], chans[1], chans[2], a)
		}
		return fmt.Sprintf("%s(%s %s %s / %s)", name, chans[0], chans[1], chans[2], a)
	}
	if o.Comma {
		return fmt.Sprintf("%s(%s, %s, %s)", name, chans[0], chans[1], chans[2])
	}
	return fmt.Sprintf("%s(%s %s %s)", name, chans[0], chans[1], chans[2])
}
