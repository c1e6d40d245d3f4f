// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

// Separable blend functions per the W3C compositing spec: the blended
// channel is B(backdrop, source), applied independently per channel.
// https://www.w3.org/TR/compositing-1/#blending

type blend_func = func(cb, cs float64) float64

func blend_normal(cb, cs float64) float64   { return cs }
func blend_multiply(cb, cs float64) float64 { return cb * cs }
func blend_screen(cb, cs float64) float64   { return cb + cs - cb*cs }
func blend_darken(cb, cs float64) float64   { return math.Min(cb, cs) }
func blend_lighten(cb, cs float64) float64  { return math.Max(cb, cs) }

func blend_color_dodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func blend_color_burn(cb, cs float64) float64 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func blend_hard_light(cb, cs float64) float64 {
	if cs <= 0.5 {
		return blend_multiply(cb, 2*cs)
	}
	return blend_screen(cb, 2*cs-1)
}

func blend_overlay(cb, cs float64) float64 { return blend_hard_light(cs, cb) }

func blend_soft_light(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func blend_difference(cb, cs float64) float64 { return math.Abs(cb - cs) }
func blend_exclusion(cb, cs float64) float64  { return cb + cs - 2*cb*cs }

var separable_blends = map[string]blend_func{
	"normal":      blend_normal,
	"multiply":    blend_multiply,
	"screen":      blend_screen,
	"darken":      blend_darken,
	"lighten":     blend_lighten,
	"color-dodge": blend_color_dodge,
	"color-burn":  blend_color_burn,
	"overlay":     blend_overlay,
	"hard-light":  blend_hard_light,
	"soft-light":  blend_soft_light,
	"difference":  blend_difference,
	"exclusion":   blend_exclusion,
}

// Non-separable blends operate on the whole RGB triple using the standard
// Lum/Sat/ClipColor helpers. NTSC luma weights match the reference behavior
// this engine reproduces.

func ns_lum(rgb spaces.Vec) float64 {
	return 0.299*rgb[0] + 0.587*rgb[1] + 0.114*rgb[2]
}

func ns_clip_color(rgb spaces.Vec) spaces.Vec {
	l := ns_lum(rgb)
	n := math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
	x := math.Max(rgb[0], math.Max(rgb[1], rgb[2]))
	if n < 0 {
		for i, c := range rgb {
			rgb[i] = l + (c-l)*l/(l-n)
		}
	}
	if x > 1 {
		for i, c := range rgb {
			rgb[i] = l + (c-l)*(1-l)/(x-l)
		}
	}
	return rgb
}

func ns_set_lum(rgb spaces.Vec, l float64) spaces.Vec {
	d := l - ns_lum(rgb)
	for i := range rgb {
		rgb[i] += d
	}
	return ns_clip_color(rgb)
}

func ns_sat(rgb spaces.Vec) float64 {
	return math.Max(rgb[0], math.Max(rgb[1], rgb[2])) - math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
}

func ns_set_sat(rgb spaces.Vec, s float64) spaces.Vec {
	// Order the channel indices so cmin <= cmid <= cmax.
	idx := [3]int{0, 1, 2}
	if rgb[idx[0]] > rgb[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if rgb[idx[1]] > rgb[idx[2]] {
		idx[1], idx[2] = idx[2], idx[1]
	}
	if rgb[idx[0]] > rgb[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	cmin, cmid, cmax := idx[0], idx[1], idx[2]
	if rgb[cmax] > rgb[cmin] {
		rgb[cmid] = (rgb[cmid] - rgb[cmin]) * s / (rgb[cmax] - rgb[cmin])
		rgb[cmax] = s
	} else {
		rgb[cmid] = 0
		rgb[cmax] = 0
	}
	rgb[cmin] = 0
	return rgb
}

type ns_blend_func = func(cb, cs spaces.Vec) spaces.Vec

var non_separable_blends = map[string]ns_blend_func{
	"hue": func(cb, cs spaces.Vec) spaces.Vec {
		return ns_set_lum(ns_set_sat(cs, ns_sat(cb)), ns_lum(cb))
	},
	"saturation": func(cb, cs spaces.Vec) spaces.Vec {
		return ns_set_lum(ns_set_sat(cb, ns_sat(cs)), ns_lum(cb))
	},
	"color": func(cb, cs spaces.Vec) spaces.Vec {
		return ns_set_lum(cs, ns_lum(cb))
	},
	"luminosity": func(cb, cs spaces.Vec) spaces.Vec {
		return ns_set_lum(cb, ns_lum(cs))
	},
}

// Porter-Duff operators expressed as the Fa/Fb weights of the general
// compositing equation co = as*Fa*Cs + ab*Fb*Cb.
// https://www.w3.org/TR/compositing-1/#advancedcompositing
type porter_duff struct {
	fa, fb func(csa, cba float64) float64
}

func pd_zero(csa, cba float64) float64    { return 0 }
func pd_one(csa, cba float64) float64     { return 1 }
func pd_csa(csa, cba float64) float64     { return csa }
func pd_cba(csa, cba float64) float64     { return cba }
func pd_inv_csa(csa, cba float64) float64 { return 1 - csa }
func pd_inv_cba(csa, cba float64) float64 { return 1 - cba }

var porter_duff_ops = map[string]porter_duff{
	"clear":            {pd_zero, pd_zero},
	"copy":             {pd_one, pd_zero},
	"destination":      {pd_zero, pd_one},
	"source-over":      {pd_one, pd_inv_csa},
	"destination-over": {pd_inv_cba, pd_one},
	"source-in":        {pd_cba, pd_zero},
	"destination-in":   {pd_zero, pd_csa},
	"source-out":       {pd_inv_cba, pd_zero},
	"destination-out":  {pd_zero, pd_inv_csa},
	"source-atop":      {pd_cba, pd_inv_csa},
	"destination-atop": {pd_inv_cba, pd_csa},
	"xor":              {pd_inv_cba, pd_inv_csa},
	"lighter":          {pd_one, pd_one},
}

// Compose blends the source over the backdrop with the named blend mode
// ("" means "normal") then alpha-composites with the named Porter-Duff
// operator ("" means "source-over") in the given working space ("" means
// sRGB; non-separable modes always work in sRGB). The result is in the
// working space with channels clipped to its bounds.
func Compose(source, backdrop Color, blend, operator, space string) (Color, error) {
	if blend == "" {
		blend = "normal"
	}
	if operator == "" {
		operator = "source-over"
	}
	if space == "" {
		space = "srgb"
	}
	sep, separable := separable_blends[blend]
	nsep, nonseparable := non_separable_blends[blend]
	if !separable && !nonseparable {
		return Color{}, fmt.Errorf("unknown blend mode: %s", blend)
	}
	if nonseparable {
		space = "srgb"
	}
	op, ok := porter_duff_ops[operator]
	if !ok {
		return Color{}, fmt.Errorf("unknown compositing operator: %s", operator)
	}
	t := spaces.Lookup(space)
	if t == nil {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}

	src := clip(source, t)
	bak := clip(backdrop, t)
	csa := src.alpha
	cba := bak.alpha
	cs := alg.NoNaNs(src.coords)
	cb := alg.NoNaNs(bak.coords)

	// Blend, weighted by the backdrop's opacity.
	var cr spaces.Vec
	if separable {
		for i := range cr {
			cr[i] = (1-cba)*cs[i] + cba*sep(cb[i], cs[i])
		}
	} else {
		bl := nsep(cb, cs)
		for i := range cr {
			cr[i] = (1-cba)*cs[i] + cba*bl[i]
		}
	}
	chans := t.Channels()
	for i, ch := range chans {
		if ch.Bound && !ch.Angle {
			cr[i] = alg.Clamp(cr[i], ch.Low, ch.High)
		}
	}

	// Composite premultiplied, then divide back out.
	fa := op.fa(csa, cba)
	fb := op.fb(csa, cba)
	ao := alg.Clamp(csa*fa+cba*fb, 0, 1)
	var co spaces.Vec
	for i := range co {
		co[i] = csa*fa*cr[i] + cba*fb*cb[i]
		if ao != 0 {
			co[i] /= ao
		}
	}
	for i, ch := range chans {
		if ch.Bound && !ch.Angle {
			co[i] = alg.Clamp(co[i], ch.Low, ch.High)
		}
	}
	return Color{space: t, coords: t.NullAdjust(co), alpha: ao}, nil
}
