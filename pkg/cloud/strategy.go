package cloud

import (
	"math/rand/v2"

	"github.com/matzehuels/wordcloud/pkg/cloud/paint"
)

// WordStyle describes a word being committed. It is passed to color and
// class strategies.
type WordStyle struct {
	Word     string
	Weight   float64
	FontSize float64

	// Distance is the ring radius of the placement, Theta the angle of the
	// candidate point.
	Distance int
	Theta    float64

	// Index counts the words drawn earlier in the same run.
	Index int
}

// =============================================================================
// Weight
// =============================================================================

// WeightFunc maps an item weight to a font size in pixels. A size at or
// below Config.MinSize skips the word.
type WeightFunc interface {
	Size(weight float64) float64
}

// Factor scales weights linearly.
type Factor float64

func (f Factor) Size(weight float64) float64 { return float64(f) * weight }

// WeightFn adapts a plain function to WeightFunc.
type WeightFn func(weight float64) float64

func (f WeightFn) Size(weight float64) float64 { return f(weight) }

// =============================================================================
// Color
// =============================================================================

// ColorStrategy picks the color of each committed word. rng is the run's
// random source.
type ColorStrategy interface {
	Color(s WordStyle, rng *rand.Rand) string
}

// FixedColor paints every word the same color.
type FixedColor string

func (c FixedColor) Color(WordStyle, *rand.Rand) string { return string(c) }

// RandomHSL draws a random hue and saturation with lightness in
// [MinLightness, MaxLightness] percent.
type RandomHSL struct {
	MinLightness, MaxLightness float64
}

func (c RandomHSL) Color(_ WordStyle, rng *rand.Rand) string {
	return paint.RandomHSL(rng, c.MinLightness, c.MaxLightness)
}

// Named random color strategies.
var (
	RandomDark  = RandomHSL{MinLightness: 10, MaxLightness: 50}
	RandomLight = RandomHSL{MinLightness: 50, MaxLightness: 90}
)

// Palette cycles through a fixed list of colors in draw order. The slice is
// never modified.
type Palette []string

func (p Palette) Color(s WordStyle, _ *rand.Rand) string {
	if len(p) == 0 {
		return "black"
	}
	return p[s.Index%len(p)]
}

// ColorFunc adapts a per-word callback to ColorStrategy.
type ColorFunc func(s WordStyle) string

func (f ColorFunc) Color(s WordStyle, _ *rand.Rand) string { return f(s) }

// =============================================================================
// Classes
// =============================================================================

// ClassStrategy picks the class attribute written by element surfaces.
type ClassStrategy interface {
	Classes(s WordStyle) string
}

// FixedClasses assigns the same classes to every word.
type FixedClasses string

func (c FixedClasses) Classes(WordStyle) string { return string(c) }

// ClassFunc adapts a per-word callback to ClassStrategy.
type ClassFunc func(s WordStyle) string

func (f ClassFunc) Classes(s WordStyle) string { return f(s) }
