// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

var _ = fmt.Print

// CSS named colors. The SVG 1.1 set from x/image covers everything except
// the two later CSS additions, which are patched in here. transparent is
// black with zero alpha per CSS Color 4.

type named_color struct {
	coords Vec
	alpha  float64
}

var color_names = sync.OnceValue(func() map[string]named_color {
	ans := make(map[string]named_color, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		ans[name] = named_color{
			coords: Vec{float64(c.R) * rgb_channel_scale, float64(c.G) * rgb_channel_scale, float64(c.B) * rgb_channel_scale},
			alpha:  1.0,
		}
	}
	ans["rebeccapurple"] = named_color{coords: Vec{0x66 * rgb_channel_scale, 0x33 * rgb_channel_scale, 0x99 * rgb_channel_scale}, alpha: 1.0}
	ans["transparent"] = named_color{}
	return ans
})

// hex_by_name maps lowercase #rrggbb strings back to a name. Several names
// alias the same value (aqua/cyan, fuchsia/magenta, the gray/grey pairs), so
// names are applied in sorted order and the first one wins, keeping
// serialization deterministic.
var hex_by_name = sync.OnceValue(func() map[string]string {
	cn := color_names()
	names := maps.Keys(cn)
	slices.Sort(names)
	ans := make(map[string]string, len(names))
	for _, name := range names {
		if name == "transparent" {
			continue
		}
		c := cn[name]
		h := fmt.Sprintf("#%02x%02x%02x", hex_byte(c.coords[0]), hex_byte(c.coords[1]), hex_byte(c.coords[2]))
		if _, seen := ans[h]; !seen {
			ans[h] = name
		}
	}
	return ans
})

func lookup_color_name(name string) (coords Vec, alpha float64, found bool) {
	c, found := color_names()[name]
	return c.coords, c.alpha, found
}

func hex_to_name(h string) string {
	return hex_by_name()[h]
}
