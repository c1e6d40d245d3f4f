// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package tint

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/spaces"
)

// Distance is the Euclidean distance between the two colors' coordinates in
// the named working space ("" means Lab). NaN channels count as zero.
func Distance(a, b Color, space string) (float64, error) {
	if space == "" {
		space = "lab"
	}
	t := spaces.Lookup(space)
	if t == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSpace, space)
	}
	ca := alg.NoNaNs(a.convert(t).coords)
	cb := alg.NoNaNs(b.convert(t).coords)
	var total float64
	for i := range ca {
		d := ca[i] - cb[i]
		total += d * d
	}
	return math.Sqrt(total), nil
}

// DeltaE computes the named perceptual color difference: "76", "94", "cmc"
// or "2000". "" means "76". Method specific weights use the standard
// graphics arts defaults.
func DeltaE(a, b Color, method string) (float64, error) {
	la := alg.NoNaNs(a.convert(spaces.Lab).coords)
	lb := alg.NoNaNs(b.convert(spaces.Lab).coords)
	switch method {
	case "", "76":
		return delta_e_76(la, lb), nil
	case "94":
		return delta_e_94(la, lb, 1, 0.045, 0.015), nil
	case "cmc":
		return delta_e_cmc(la, lb, 2, 1), nil
	case "2000":
		return delta_e_2000(la, lb, 1, 1, 1), nil
	}
	return 0, fmt.Errorf("unknown delta-E method: %s", method)
}

func delta_e_2000_colors(a, b Color) float64 {
	return delta_e_2000(
		alg.NoNaNs(a.convert(spaces.Lab).coords),
		alg.NoNaNs(b.convert(spaces.Lab).coords), 1, 1, 1)
}

func delta_e_76(lab1, lab2 spaces.Vec) float64 {
	dl := lab1[0] - lab2[0]
	da := lab1[1] - lab2[1]
	db := lab1[2] - lab2[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// delta_e_94 per the CIE94 definition. Asymmetric: the first color is the
// reference whose chroma drives the scaling factors.
func delta_e_94(lab1, lab2 spaces.Vec, kl, k1, k2 float64) float64 {
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	dl := l1 - l2
	dc := c1 - c2
	da := a1 - a2
	db := b1 - b2
	// dh is derived rather than computed from angles, can dip slightly
	// negative from floating error.
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	sl := 1.0
	sc := 1 + k1*c1
	sh := 1 + k2*c1
	vl := dl / (kl * sl)
	vc := dc / sc
	return math.Sqrt(vl*vl + vc*vc + dh2/(sh*sh))
}

// delta_e_cmc implements CMC l:c (1984), defaults l=2 c=1 (acceptability).
// Like CIE94 it is asymmetric in its first argument.
func delta_e_cmc(lab1, lab2 spaces.Vec, l, c float64) float64 {
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	dl := l1 - l2
	dc := c1 - c2
	da := a1 - a2
	db := b1 - b2
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}

	sl := 0.511
	if l1 >= 16 {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638

	h1 := alg.ConstrainHue(math.Atan2(b1, a1) * alg.Rad2Deg)
	var t float64
	if 164 <= h1 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*alg.Deg2Rad))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*alg.Deg2Rad))
	}
	c1_4 := c1 * c1 * c1 * c1
	f := math.Sqrt(c1_4 / (c1_4 + 1900))
	sh := sc * (f*t + 1 - f)

	vl := dl / (l * sl)
	vc := dc / (c * sc)
	return math.Sqrt(vl*vl + vc*vc + dh2/(sh*sh))
}

// delta_e_2000 implements the full CIEDE2000 formula, the metric gamut
// mapping relies on. http://www2.ece.rochester.edu/~gsharma/ciede2000/
func delta_e_2000(lab1, lab2 spaces.Vec, kl, kc, kh float64) float64 {
	const g_const = 6103515625.0 // 25^7
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	cm := (c1 + c2) / 2
	cm7 := math.Pow(cm, 7)
	g := 0.5 * (1 - math.Sqrt(cm7/(cm7+g_const)))

	ap1 := a1 * (1 + g)
	ap2 := a2 * (1 + g)
	cp1 := math.Sqrt(ap1*ap1 + b1*b1)
	cp2 := math.Sqrt(ap2*ap2 + b2*b2)

	hp1 := 0.0
	if b1 != 0 || ap1 != 0 {
		hp1 = alg.ConstrainHue(math.Atan2(b1, ap1) * alg.Rad2Deg)
	}
	hp2 := 0.0
	if b2 != 0 || ap2 != 0 {
		hp2 = alg.ConstrainHue(math.Atan2(b2, ap2) * alg.Rad2Deg)
	}

	dl := l2 - l1
	dc := cp2 - cp1
	var dhp float64
	switch {
	case cp1*cp2 == 0:
		dhp = 0
	case math.Abs(hp2-hp1) <= 180:
		dhp = hp2 - hp1
	case hp2-hp1 > 180:
		dhp = hp2 - hp1 - 360
	default:
		dhp = hp2 - hp1 + 360
	}
	dh := 2 * math.Sqrt(cp1*cp2) * math.Sin(dhp/2*alg.Deg2Rad)

	lm := (l1 + l2) / 2
	cpm := (cp1 + cp2) / 2
	hsum := hp1 + hp2
	var hm float64
	switch {
	case cp1*cp2 == 0:
		hm = hsum
	case math.Abs(hp1-hp2) <= 180:
		hm = hsum / 2
	case hsum < 360:
		hm = (hsum + 360) / 2
	default:
		hm = (hsum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos((hm-30)*alg.Deg2Rad) +
		0.24*math.Cos(2*hm*alg.Deg2Rad) +
		0.32*math.Cos((3*hm+6)*alg.Deg2Rad) -
		0.20*math.Cos((4*hm-63)*alg.Deg2Rad)

	dtheta := 30 * math.Exp(-math.Pow((hm-275)/25, 2))
	cpm7 := math.Pow(cpm, 7)
	rc := 2 * math.Sqrt(cpm7/(cpm7+g_const))
	rt := -rc * math.Sin(2*dtheta*alg.Deg2Rad)

	lm50 := (lm - 50) * (lm - 50)
	sl := 1 + 0.015*lm50/math.Sqrt(20+lm50)
	sc := 1 + 0.045*cpm
	sh := 1 + 0.015*cpm*t

	vl := dl / (kl * sl)
	vc := dc / (kc * sc)
	vh := dh / (kh * sh)
	return math.Sqrt(vl*vl + vc*vc + vh*vh + rt*vc*vh)
}

// Luminance is the relative luminance: the Y channel of the color in XYZ
// with a D65 white, as used by WCAG.
func (self Color) Luminance() float64 {
	return self.convert(spaces.XYZD65).coords[1]
}

// Contrast is the WCAG contrast ratio between the two colors, in [1, 21].
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
