// Package fonts provides the text engine used to measure and rasterize words.
//
// The Go fonts shipped with golang.org/x/image are embedded in the binary,
// so a [Source] is always available without external files. Custom TrueType
// or OpenType fonts can be loaded with [Load] or [Parse].
//
// Faces are created lazily per pixel size and cached on the Source; a Source
// is safe for concurrent use.
package fonts

import (
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font weights accepted by ByWeight.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// FontFamily is the CSS font-family written by the SVG surface for the
// embedded fonts.
const FontFamily = `'Go', 'Trebuchet MS', 'Arial Unicode MS', sans-serif`

// Provider hands out font faces at a given pixel size.
type Provider interface {
	Face(size float64) font.Face
}

// Source is a parsed font with a per-size face cache.
type Source struct {
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// Parse parses TrueType or OpenType data.
func Parse(data []byte) (*Source, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Source{font: f, faces: make(map[float64]font.Face)}, nil
}

// Load reads and parses the font file at path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return Parse(data)
}

var (
	regular, bold         *Source
	regularOnce, boldOnce sync.Once
)

// Regular returns the embedded Go Regular font.
func Regular() *Source {
	regularOnce.Do(func() { regular = mustParse(goregular.TTF) })
	return regular
}

// Bold returns the embedded Go Bold font.
func Bold() *Source {
	boldOnce.Do(func() { bold = mustParse(gobold.TTF) })
	return bold
}

// ByWeight returns the embedded font for a CSS-like weight name.
// Anything other than "bold" or a numeric weight of 600 and above
// resolves to Regular.
func ByWeight(weight string) *Source {
	switch weight {
	case WeightBold, "bolder", "600", "700", "800", "900":
		return Bold()
	}
	return Regular()
}

func mustParse(data []byte) *Source {
	s, err := Parse(data)
	if err != nil {
		panic(err) // embedded fonts always parse
	}
	return s
}

// Face returns a face rendering at size pixels (72 DPI, so points equal
// pixels). Sizes are cached at 1/64 pixel resolution.
func (s *Source) Face(size float64) font.Face {
	key := math.Max(math.Round(size*64)/64, 1.0/64)
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    key,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(fmt.Sprintf("fonts: new face at %v: %v", key, err)) // only fails for invalid sizes
	}
	s.faces[key] = f
	return f
}

// Measure returns the advance width of text at size pixels.
func Measure(p Provider, text string, size float64) float64 {
	adv := font.MeasureString(p.Face(size), text)
	return float64(adv) / 64
}

// ProbeMinSize detects a minimum renderable font size imposed by p, the way
// browsers clamp small canvas fonts. Starting at 20px and shrinking one
// pixel at a time, it measures a full-width "Ｗ" and an "m"; the first size
// whose widths equal those of the previous (larger) size reveals the clamp,
// and the returned minimum is one above it. Zero means no clamp was found.
func ProbeMinSize(p Provider) float64 {
	var hanWidth, mWidth float64
	for size := 20; size > 0; size-- {
		h := Measure(p, "Ｗ", float64(size))
		m := Measure(p, "m", float64(size))
		if size < 20 && h == hanWidth && m == mWidth {
			return float64(size + 1)
		}
		hanWidth, mWidth = h, m
	}
	return 0
}
