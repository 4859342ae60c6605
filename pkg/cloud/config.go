package cloud

import (
	"image"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/cloud/grid"
	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// Default values used by DefaultConfig.
const (
	DefaultGridSize      = 8
	DefaultEllipticity   = 0.65
	DefaultRotateRatio   = 0.1
	DefaultRotationSteps = 2
	DefaultBackground    = "#fff"
	DefaultMaskColor     = "rgba(255,0,0,0.3)"
	DefaultMaskGap       = 0.3
	DefaultSeed          = 42
)

// Config controls a single run. The zero value is usable: it places words
// unrotated at weight-as-pixel-size in random dark colors on a white
// background with shuffled candidate order. DefaultConfig additionally
// enables the occasional quarter-turn rotation.
type Config struct {
	// GridSize is the cell side in pixels, floored and raised to at least
	// grid.MinCellSize. Zero selects DefaultGridSize.
	GridSize float64

	// Weight maps weights to font sizes (nil: Factor(1)). Words whose size
	// is at or below MinSize are skipped.
	Weight  WeightFunc
	MinSize float64

	// Font supplies faces for measuring and drawing (nil: fonts.Regular()).
	// FontFamily and FontWeight are written by element surfaces.
	Font       fonts.Provider
	FontFamily string
	FontWeight string

	// A word is rotated with probability RotateRatio. Its angle is drawn
	// from [MinRotation, MaxRotation] in RotationSteps discrete steps, or
	// continuously when RotationSteps is 0. Angles are radians.
	MinRotation   float64
	MaxRotation   float64
	RotationSteps int
	RotateRatio   float64

	// Shape is the cloud silhouette (nil: circle). Ellipticity flattens the
	// Y axis (zero selects DefaultEllipticity).
	Shape       shape.Profile
	Ellipticity float64

	// Color picks word colors (nil: RandomDark); Classes their classes.
	Color   ColorStrategy
	Classes ClassStrategy

	// DrawMask paints each occupied cell on the first surface with
	// MaskColor, inset by MaskGap pixels.
	DrawMask  bool
	MaskColor string
	MaskGap   float64

	// AbortThreshold is the per-word time budget and TotalBudget the
	// whole-run budget. Zero disables either.
	AbortThreshold time.Duration
	TotalBudget    time.Duration

	// Preserve keeps existing surface content and seeds the grid from it
	// instead of painting Background over every surface. It requires the
	// first surface to implement Snapshotter.
	Preserve   bool
	Background string

	// Origin overrides the cloud center, in pixels.
	Origin *image.Point

	// Ordered disables shuffling of candidate points within a ring.
	Ordered bool

	// Wait is the delay Drive inserts between words.
	Wait time.Duration

	// Seed seeds the run's random source when Rand is nil.
	Seed uint64
	Rand *rand.Rand

	// Hover and Click are invoked by Run.Hover and Run.Click. Hover
	// receives nil when the pointer leaves a word. Abort is called once
	// when a run aborts.
	Hover func(p *Placement)
	Click func(p *Placement)
	Abort func()

	// Clock replaces time.Now for budget checks.
	Clock func() time.Time

	Logger *log.Logger
}

// DefaultConfig returns the stock configuration: quarter-turn rotation for
// one word in ten, an 8px grid, a circular cloud and random dark colors.
func DefaultConfig() Config {
	return Config{
		GridSize:      DefaultGridSize,
		Weight:        Factor(1),
		FontWeight:    fonts.WeightNormal,
		MinRotation:   -math.Pi / 2,
		MaxRotation:   math.Pi / 2,
		RotationSteps: DefaultRotationSteps,
		RotateRatio:   DefaultRotateRatio,
		Shape:         shape.Circle{},
		Ellipticity:   DefaultEllipticity,
		Color:         RandomDark,
		MaskColor:     DefaultMaskColor,
		MaskGap:       DefaultMaskGap,
		Background:    DefaultBackground,
		Seed:          DefaultSeed,
	}
}

// withDefaults fills unset fields whose zero value is unusable.
func (c Config) withDefaults() Config {
	if c.GridSize == 0 {
		c.GridSize = DefaultGridSize
	}
	if c.Weight == nil {
		c.Weight = Factor(1)
	}
	if c.Font == nil {
		c.Font = fonts.ByWeight(c.FontWeight)
	}
	if c.FontFamily == "" {
		c.FontFamily = fonts.FontFamily
	}
	if c.FontWeight == "" {
		c.FontWeight = fonts.WeightNormal
	}
	if c.Shape == nil {
		c.Shape = shape.Circle{}
	}
	if c.Ellipticity == 0 {
		c.Ellipticity = DefaultEllipticity
	}
	if c.Color == nil {
		c.Color = RandomDark
	}
	if c.MaskColor == "" {
		c.MaskColor = DefaultMaskColor
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// cellSize returns the effective grid cell side in pixels.
func (c Config) cellSize() int { return grid.CellSize(c.GridSize) }

// interactive reports whether hit-test metadata must be recorded.
func (c Config) interactive() bool { return c.Hover != nil || c.Click != nil }

// rotation draws a rotation angle for the next word.
func (c Config) rotation(rng *rand.Rand) float64 {
	if c.RotateRatio == 0 {
		return 0
	}
	if rng.Float64() > c.RotateRatio {
		return 0
	}
	lo := math.Min(c.MinRotation, c.MaxRotation)
	span := math.Abs(c.MaxRotation - c.MinRotation)
	if span == 0 {
		return lo
	}
	if c.RotationSteps > 0 {
		step := math.Floor(rng.Float64() * float64(c.RotationSteps))
		return lo + step*span/float64(c.RotationSteps)
	}
	return lo + rng.Float64()*span
}
