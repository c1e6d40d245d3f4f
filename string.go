// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"github.com/kovidgoyal/tint/spaces"
)

// String serializes with default options: the space's canonical CSS form,
// gamut fitted, five significant digits, alpha included when below one.
func (self Color) String() string {
	return self.ToString(nil)
}

// ToString serializes with explicit options. Unless options request
// Fit "none" the color is gamut mapped into its own space first so the
// output is always a displayable value.
func (self Color) ToString(o *spaces.StringOptions) string {
	if o == nil {
		o = &spaces.StringOptions{}
	}
	c := self
	if o.Fit != "none" {
		if fitted, err := self.Fit(self.space.Name(), o.Fit); err == nil {
			c = fitted
		}
	}
	return c.space.String(c.coords, c.alpha, o)
}
