// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package spaces

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kovidgoyal/tint/alg"
	"github.com/kovidgoyal/tint/internal/cache"
)

var _ = fmt.Print

// Regex fragments shared by the per-notation recognizers. All compiled
// patterns are anchored with \A and run against text[start:] so a match
// always begins exactly at the requested offset.
const (
	re_float   = `[+\-]?(?:(?:[0-9]*\.[0-9]+)|[0-9]+)(?:e[-+]?[0-9]*)?`
	re_percent = re_float + `%`
	re_angle   = re_float + `(?:deg|rad|turn|grad)?`
	re_space   = `\s+`
	re_comma   = `\s*,\s*`
	re_slash   = `\s*/\s*`
	re_hex     = `[0-9a-f]`
)

const (
	rgb_channel_scale = 1.0 / 255.0
	scale_percent     = 1.0 / 100.0
	convert_turn      = 360.0
	convert_grad      = 90.0 / 100.0
)

var pat_cache = cache.NewLRU[string, *regexp.Regexp](256)

// pat compiles a case-insensitive pattern anchored at the match offset,
// caching the result. Patterns are built dynamically per space name, hence
// the cache instead of package level MustCompile vars.
func pat(p string) *regexp.Regexp {
	return pat_cache.MustGetOrCreate(p, func(p string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)\A` + p)
	})
}

var re_chan_split = regexp.MustCompile(`(?:\s*[,/]\s*|\s+)`)
var re_slash_split = regexp.MustCompile(`\s*/\s*`)

func norm_float(s string) (float64, error) {
	ls := strings.ToLower(s)
	if strings.HasSuffix(ls, "e-") || strings.HasSuffix(ls, "e+") || strings.HasSuffix(ls, "e") {
		s += "0"
	}
	return strconv.ParseFloat(s, 64)
}

func must_norm_float(s string) float64 {
	ans, err := norm_float(s)
	if err != nil {
		return math.NaN()
	}
	return ans
}

// norm_color_channel handles a float or percent token. Percent values are
// scaled to [0,1] unless the channel is percent-typed, in which case the raw
// 0-100 number is kept.
func norm_color_channel(s string, scale bool) float64 {
	if strings.HasSuffix(s, "%") {
		v := must_norm_float(s[:len(s)-1])
		if scale {
			return v * scale_percent
		}
		return v
	}
	return must_norm_float(s)
}

// norm_rgb_channel scales an rgb() channel to [0,1]: percents /100, numbers /255.
func norm_rgb_channel(s string) float64 {
	if strings.HasSuffix(s, "%") {
		return must_norm_float(s[:len(s)-1]) * scale_percent
	}
	return must_norm_float(s) * rgb_channel_scale
}

func norm_percent_channel(s string) float64 {
	if strings.HasSuffix(s, "%") {
		return must_norm_float(s[:len(s)-1])
	}
	return must_norm_float(s)
}

func norm_alpha_channel(s string) float64 {
	var v float64
	if strings.HasSuffix(s, "%") {
		v = must_norm_float(s[:len(s)-1]) * scale_percent
	} else {
		v = must_norm_float(s)
	}
	return alg.Clamp(v, 0, 1)
}

// norm_angle converts any of the CSS angle units to degrees. A bare number
// is already degrees.
func norm_angle(s string) float64 {
	ls := strings.ToLower(s)
	switch {
	case strings.HasSuffix(ls, "turn"):
		return must_norm_float(s[:len(s)-4]) * convert_turn
	case strings.HasSuffix(ls, "grad"):
		return must_norm_float(s[:len(s)-4]) * convert_grad
	case strings.HasSuffix(ls, "rad"):
		return must_norm_float(s[:len(s)-3]) * alg.Rad2Deg
	case strings.HasSuffix(ls, "deg"):
		return must_norm_float(s[:len(s)-3])
	}
	return must_norm_float(s)
}

// norm_hex_channel scales a two digit hex pair to [0,1].
func norm_hex_channel(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return math.NaN()
	}
	return float64(v) * rgb_channel_scale
}

// starts_mid_word reports whether start sits directly after an identifier
// byte. The compiled patterns run against text[start:], so a leading \b in
// them cannot see the preceding character; recognizers for notations that
// begin with a word character must check it themselves.
func starts_mid_word(text string, start int) bool {
	if start == 0 {
		return false
	}
	b := text[start-1]
	return b == '_' || ('a' <= b|0x20 && b|0x20 <= 'z') || ('0' <= b && b <= '9')
}

// match_generic recognizes the `color(space c1 c2 c3 / alpha)` form for the
// given space. Percent tokens scale per the channel's percent typing and
// missing channels fill with zero.
func match_generic(s Space, text string, start int, fullmatch bool) *Matched {
	if starts_mid_word(text, start) {
		return nil
	}
	p := pat(`color\(\s*(` + regexp.QuoteMeta(s.Name()) + `)\s+` +
		`((?:` + re_percent + `|` + re_float + `)` +
		`(?:` + re_space + `(?:` + re_percent + `|` + re_float + `)){0,5}` +
		`(?:` + re_slash + `(?:` + re_percent + `|` + re_float + `))?)` +
		`\s*\)`)
	tail := text[start:]
	m := p.FindStringSubmatchIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	body := tail[m[4]:m[5]]
	coords, alpha := split_channels(s, body)
	return &Matched{Coords: coords, Alpha: alpha, End: start + m[1]}
}

// split_channels splits the body of a color() form into channel values plus
// alpha, applying per-channel percent scaling and the space's null adjust.
func split_channels(s Space, body string) (Vec, float64) {
	alpha := 1.0
	parts := re_slash_split.Split(strings.TrimSpace(body), 2)
	if len(parts) > 1 {
		alpha = norm_alpha_channel(strings.TrimSpace(parts[1]))
	}
	var coords Vec
	chans := s.Channels()
	for i, tok := range re_chan_split.Split(strings.TrimSpace(parts[0]), -1) {
		if tok == "" || i > 2 {
			continue
		}
		coords[i] = norm_color_channel(tok, !chans[i].Percent)
	}
	return s.NullAdjust(coords), alpha
}

// match_functional matches a compiled CSS functional pattern at start and
// splits its channel body with the supplied per-channel translator. channel
// index -1 denotes alpha.
func match_functional(p *regexp.Regexp, text string, start int, fullmatch bool,
	translate func(channel int, tok string) float64, null_adjust func(Vec) Vec) *Matched {
	if starts_mid_word(text, start) {
		return nil
	}
	tail := text[start:]
	m := p.FindStringIndex(tail)
	if m == nil || (fullmatch && m[1] != len(tail)) {
		return nil
	}
	matched := tail[:m[1]]
	body := matched[strings.IndexByte(matched, '(')+1 : len(matched)-1]
	alpha := 1.0
	var coords Vec
	for i, tok := range re_chan_split.Split(strings.TrimSpace(body), -1) {
		if tok == "" {
			continue
		}
		if i <= 2 {
			coords[i] = translate(i, tok)
		} else {
			alpha = translate(-1, tok)
		}
	}
	return &Matched{Coords: null_adjust(coords), Alpha: alpha, End: start + m[1]}
}
