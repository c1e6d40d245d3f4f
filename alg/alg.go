// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package alg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var _ = fmt.Print

// Numeric helpers shared by the color spaces and the engine proper. Hue
// channels use NaN as the "undefined" sentinel, so everything here has to be
// explicit about NaN handling rather than letting it leak into output.

const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

func NaN() float64 { return math.NaN() }

func IsNaN(x float64) bool { return math.IsNaN(x) }

// NoNaN substitutes zero for NaN so a caller that needs a definite number
// (display, arithmetic) gets the ideal achromatic hue.
func NoNaN(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

func NoNaNs(v [3]float64) [3]float64 {
	for i, x := range v {
		if math.IsNaN(x) {
			v[i] = 0
		}
	}
	return v
}

func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// Dot multiplies a 3x3 matrix with a column vector.
func Dot(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Spow performs pow mirrored across zero: sign(base) * |base|^exp. The RGB
// transfer functions use this so interpolation across zero stays smooth.
func Spow(base, exp float64) float64 {
	return math.Copysign(math.Pow(math.Abs(base), exp), base)
}

func Cbrt(x float64) float64 { return math.Cbrt(x) }

// RoundHalfUp rounds half away from truncation at the given decimal scale,
// matching the behavior expected when quantizing channels to 8 bits.
func RoundHalfUp(n float64) float64 {
	return math.Floor(n + 0.5)
}

func RoundHalfUpScale(n float64, scale int) float64 {
	mult := math.Pow(10, float64(scale))
	return math.Floor(n*mult+0.5) / mult
}

// RoundTo rounds to p significant digits using half up rounding.
// p == 0 rounds to a whole integer, p == -1 returns the value untouched.
func RoundTo(f float64, p int) float64 {
	if p == -1 {
		return f
	}
	if p == 0 {
		return RoundHalfUp(f)
	}
	if math.IsInf(f, 0) || f == 0 {
		return f
	}
	return RoundHalfUpScale(f, p-magnitude(f))
}

// magnitude is the number of digits before the decimal point, negative for
// values below 0.1, so p - magnitude is the decimal scale that keeps p
// significant digits.
func magnitude(f float64) int {
	return int(math.Floor(math.Log10(math.Abs(f)))) + 1
}

// FmtFloat formats a float rounded to p significant digits with trailing
// precision zeros trimmed: 12.50 -> "12.5", 12.00 -> "12". NaN formats as
// "none" per CSS serialization of missing components.
func FmtFloat(f float64, p int) string {
	if math.IsNaN(f) {
		return "none"
	}
	value := RoundTo(f, p)
	if p == -1 {
		p = 17
	}
	prec := p
	if value != 0 {
		prec = max(p-magnitude(value), 0)
	}
	s := strconv.FormatFloat(value, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// ConstrainHue wraps a hue into [0, 360). NaN passes through untouched.
func ConstrainHue(hue float64) float64 {
	if math.IsNaN(hue) {
		return hue
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}
