// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kovidgoyal/tint/alg"
)

var _ = fmt.Print

// Vec holds the three channel coordinates of a color in some space.
type Vec = [3]float64

// White points used by the supported spaces.
var (
	WhiteD50 = Vec{0.96422, 1.00000, 0.82521}
	WhiteD65 = Vec{0.95047, 1.00000, 1.08883}
)

// Channel describes one coordinate of a color space: its name, gamut bounds
// and how textual values for it are scaled. Angle channels wrap mod 360
// instead of clamping and never fail gamut checks. Percent channels keep
// their 0-100 scale when parsed from a percentage.
type Channel struct {
	Name      string
	Low, High float64
	Bound     bool
	Angle     bool
	Percent   bool
}

// Matched is the result of recognizing a color literal in text. End is the
// offset just past the last consumed byte, always a legal token boundary.
type Matched struct {
	Coords Vec
	Alpha  float64
	End    int
}

// Space is the flat descriptor for a color space: static metadata, conversion
// to and from the XYZ D50 hub, and its textual grammar. Implementations are
// stateless values registered once at startup.
type Space interface {
	Name() string
	Channels() [3]Channel
	White() Vec
	// GamutCheck names a more sensitive companion space that must also be
	// verified during gamut checking, or "".
	GamutCheck() string
	// HueIndex returns the index of the hue channel, or -1 for
	// rectangular spaces.
	HueIndex() int
	// NullAdjust sets the hue channel to NaN when the color is achromatic.
	NullAdjust(Vec) Vec
	ToXYZ(Vec) Vec
	FromXYZ(Vec) Vec
	// Match recognizes this space's notations at start. Returns nil when
	// the text does not form a color in this space.
	Match(text string, start int, fullmatch bool) *Matched
	// String serializes already gamut-fitted coordinates.
	String(coords Vec, alpha float64, o *StringOptions) string
}

// Singleton descriptors. Registered in priority order by init below, which is
// also the order recognizers are tried when matching text.
var (
	HSL        = &hsl_space{}
	HWB        = &hwb_space{}
	Lab        = &lab_space{}
	LCh        = &lch_space{}
	SRGB       = &srgb_space{}
	SRGBLinear = &srgb_linear_space{}
	HSV        = &hsv_space{}
	DisplayP3  = &display_p3_space{}
	A98RGB     = &a98_rgb_space{}
	ProPhoto   = &prophoto_space{}
	Rec2020    = &rec2020_space{}
	XYZD50     = &xyz_space{}
	XYZD65     = &xyz_d65_space{}
	OKLab      = &oklab_space{}
	OKLCh      = &oklch_space{}
)

type registry_state struct {
	by_name     map[string]Space
	match_order []Space
	routes      map[string]func(Vec) Vec
}

var registry atomic.Pointer[registry_state]
var registry_lock sync.Mutex

// Register adds a space to the process wide registry. Lookups read an
// immutable snapshot, so registration copies and swaps.
func Register(s Space) {
	registry_lock.Lock()
	defer registry_lock.Unlock()
	old := registry.Load()
	ns := &registry_state{
		by_name: make(map[string]Space, len(old.by_name)+1),
		routes:  old.routes,
	}
	for k, v := range old.by_name {
		ns.by_name[k] = v
	}
	if _, known := ns.by_name[s.Name()]; !known {
		ns.match_order = append(append([]Space{}, old.match_order...), s)
	} else {
		ns.match_order = old.match_order
	}
	ns.by_name[s.Name()] = s
	registry.Store(ns)
}

// RegisterRoute declares a direct conversion between two spaces that avoids
// the XYZ hub, for example HSL<->sRGB or LCh<->Lab.
func RegisterRoute(from, to string, f func(Vec) Vec) {
	registry_lock.Lock()
	defer registry_lock.Unlock()
	old := registry.Load()
	ns := &registry_state{by_name: old.by_name, match_order: old.match_order}
	ns.routes = make(map[string]func(Vec) Vec, len(old.routes)+1)
	for k, v := range old.routes {
		ns.routes[k] = v
	}
	ns.routes[from+">"+to] = f
	registry.Store(ns)
}

// Lookup returns the space registered under name, or nil.
func Lookup(name string) Space {
	return registry.Load().by_name[name]
}

// Route returns the direct conversion function between two spaces, or nil if
// conversion must go through the XYZ hub.
func Route(from, to string) func(Vec) Vec {
	return registry.Load().routes[from+">"+to]
}

// MatchOrder returns all registered spaces in recognizer priority order.
func MatchOrder() []Space {
	return registry.Load().match_order
}

// Names returns the registered space names in priority order.
func Names() []string {
	mo := MatchOrder()
	ans := make([]string, len(mo))
	for i, s := range mo {
		ans[i] = s.Name()
	}
	return ans
}

// ConstrainAngles wraps any angle channels into [0, 360) and substitutes zero
// for NaN, leaving other channels untouched.
func ConstrainAngles(s Space, coords Vec) Vec {
	chans := s.Channels()
	for i, ch := range chans {
		if ch.Angle {
			coords[i] = alg.ConstrainHue(alg.NoNaN(coords[i]))
		}
	}
	return coords
}

func init() {
	registry.Store(&registry_state{by_name: map[string]Space{}})
	for _, s := range []Space{
		HSL, HWB, Lab, LCh, SRGB, SRGBLinear, HSV,
		DisplayP3, A98RGB, ProPhoto, Rec2020, XYZD50, XYZD65, OKLab, OKLCh,
	} {
		Register(s)
	}
	RegisterRoute("hsl", "srgb", hsl_to_srgb)
	RegisterRoute("srgb", "hsl", srgb_to_hsl)
	RegisterRoute("hsv", "hsl", hsv_to_hsl)
	RegisterRoute("hsl", "hsv", hsl_to_hsv)
	RegisterRoute("hsv", "srgb", func(v Vec) Vec { return hsl_to_srgb(hsv_to_hsl(v)) })
	RegisterRoute("srgb", "hsv", func(v Vec) Vec { return hsl_to_hsv(srgb_to_hsl(v)) })
	RegisterRoute("hwb", "hsv", hwb_to_hsv)
	RegisterRoute("hsv", "hwb", hsv_to_hwb)
	RegisterRoute("hwb", "hsl", func(v Vec) Vec { return hsv_to_hsl(hwb_to_hsv(v)) })
	RegisterRoute("hsl", "hwb", func(v Vec) Vec { return hsv_to_hwb(hsl_to_hsv(v)) })
	RegisterRoute("hwb", "srgb", func(v Vec) Vec { return hsl_to_srgb(hsv_to_hsl(hwb_to_hsv(v))) })
	RegisterRoute("srgb", "hwb", func(v Vec) Vec { return hsv_to_hwb(hsl_to_hsv(srgb_to_hsl(v))) })
	RegisterRoute("srgb-linear", "srgb", gam_srgb)
	RegisterRoute("srgb", "srgb-linear", lin_srgb)
	RegisterRoute("lch", "lab", lch_to_lab)
	RegisterRoute("lab", "lch", lab_to_lch)
	RegisterRoute("oklch", "oklab", oklch_to_oklab)
	RegisterRoute("oklab", "oklch", oklab_to_oklch)
	RegisterRoute("oklab", "srgb-linear", oklab_to_lin_srgb)
	RegisterRoute("srgb-linear", "oklab", lin_srgb_to_oklab)
}
