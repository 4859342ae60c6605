// Package paint parses the CSS-style color strings used by cloud
// configuration ("#fff", "#336699", "rgba(255,0,0,0.3)", "hsl(120,80%,40%)",
// and a handful of named colors) and generates random HSL colors.
//
// Colors stay strings throughout the engine because the SVG surface writes
// them verbatim; raster surfaces convert them with [Parse].
package paint

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var named = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"yellow":      {255, 255, 0, 255},
	"transparent": {0, 0, 0, 0},
}

// Parse converts a color string into a color.NRGBA.
func Parse(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	}
	return color.NRGBA{}, fmt.Errorf("unrecognized color %q", s)
}

// MustParse is like Parse but falls back to opaque black.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

func parseHex(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, alpha}, nil
}

// args splits "fn(a, b, c)" into its trimmed arguments.
func args(s string) ([]string, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func parseAlpha(parts []string, idx int) (uint8, error) {
	if len(parts) <= idx {
		return 255, nil
	}
	a, err := strconv.ParseFloat(parts[idx], 64)
	if err != nil {
		return 0, err
	}
	return uint8(math.Round(clamp01(a) * 255)), nil
}

func parseRGB(s string) (color.NRGBA, error) {
	parts, err := args(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	if len(parts) < 3 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSuffix(parts[i], "%"), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if strings.HasSuffix(parts[i], "%") {
			v = v / 100 * 255
		}
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	a, err := parseAlpha(parts, 3)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{ch[0], ch[1], ch[2], a}, nil
}

func parseHSL(s string) (color.NRGBA, error) {
	parts, err := args(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	if len(parts) < 3 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSuffix(parts[i], "%"), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		v[i] = f
	}
	a, err := parseAlpha(parts, 3)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := colorful.Hsl(math.Mod(v[0], 360), clamp01(v[1]/100), clamp01(v[2]/100)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, a}, nil
}

func clamp01(f float64) float64 { return math.Max(0, math.Min(1, f)) }

// RandomHSL returns "hsl(h,s%,l%)" with hue in [0,360), saturation in
// [70,100] and lightness in [minL,maxL], each rounded to an integer.
func RandomHSL(rng *rand.Rand, minL, maxL float64) string {
	h := math.Round(rng.Float64() * 360)
	s := math.Round(rng.Float64()*30 + 70)
	l := math.Round(rng.Float64()*(maxL-minL) + minL)
	return fmt.Sprintf("hsl(%.0f,%.0f%%,%.0f%%)", h, s, l)
}
