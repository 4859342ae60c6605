// Package pipeline provides the end-to-end word cloud pipeline used by the
// CLI and by library callers.
//
// A run goes through three stages:
//
//  1. Configure: validate [Options] and translate them into a cloud.Config,
//     resolving the shape, color strategy and font
//  2. Place: create the drawing surfaces and drive a cloud.Run to completion
//  3. Render: encode the surfaces in the requested formats (PNG, SVG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"png", "svg"}
//	result, err := runner.Execute(ctx, opts, items)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Options can also be read from a TOML file with [LoadOptions]; values not
// present in the file keep their [DefaultOptions] value.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/paint"
	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
	"github.com/matzehuels/wordcloud/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 600

	// DefaultWeightFactor maps weights to font sizes one to one.
	DefaultWeightFactor = 1.0

	// DefaultRotation is the default rotation range bound in degrees.
	DefaultRotation = 90.0

	// DefaultScale is the default scale factor for vector PNG output.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Color strategy names accepted by Options.Color besides literal colors.
const (
	ColorRandomDark  = "random-dark"
	ColorRandomLight = "random-light"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a word cloud run. Rotations are
// in degrees; durations accept Go duration strings ("50ms") in TOML.
type Options struct {
	// Surface options
	Width           int    `json:"width,omitempty" toml:"width"`
	Height          int    `json:"height,omitempty" toml:"height"`
	Background      string `json:"background,omitempty" toml:"background"`
	BackgroundImage string `json:"background_image,omitempty" toml:"background_image"` // Preserve mode over an image
	Origin          []int  `json:"origin,omitempty" toml:"origin"`                     // [x, y] cloud center in pixels

	// Placement options
	GridSize      float64       `json:"grid_size,omitempty" toml:"grid_size"`
	WeightFactor  float64       `json:"weight_factor,omitempty" toml:"weight_factor"`
	MinSize       float64       `json:"min_size,omitempty" toml:"min_size"`
	MinRotation   float64       `json:"min_rotation" toml:"min_rotation"`
	MaxRotation   float64       `json:"max_rotation" toml:"max_rotation"`
	RotationSteps int           `json:"rotation_steps" toml:"rotation_steps"` // 0 rotates continuously
	RotateRatio   float64       `json:"rotate_ratio" toml:"rotate_ratio"`
	Shape         string        `json:"shape,omitempty" toml:"shape"`
	ShapeExpr     string        `json:"shape_expr,omitempty" toml:"shape_expr"` // JavaScript over theta
	Ellipticity   float64       `json:"ellipticity,omitempty" toml:"ellipticity"`
	Ordered       bool          `json:"ordered,omitempty" toml:"ordered"` // Disable candidate shuffling
	Sort          bool          `json:"sort,omitempty" toml:"sort"`       // Sort words by descending weight
	Seed          uint64        `json:"seed,omitempty" toml:"seed"`
	Wait          time.Duration `json:"wait,omitempty" toml:"wait"`

	// Budgets
	AbortThreshold time.Duration `json:"abort_threshold,omitempty" toml:"abort_threshold"`
	TotalBudget    time.Duration `json:"total_budget,omitempty" toml:"total_budget"`

	// Style options
	FontFile   string   `json:"font_file,omitempty" toml:"font_file"`
	FontWeight string   `json:"font_weight,omitempty" toml:"font_weight"`
	Color      string   `json:"color,omitempty" toml:"color"`
	Palette    []string `json:"palette,omitempty" toml:"palette"`
	Classes    string   `json:"classes,omitempty" toml:"classes"`
	DrawMask   bool     `json:"draw_mask,omitempty" toml:"draw_mask"`
	MaskColor  string   `json:"mask_color,omitempty" toml:"mask_color"`
	MaskGap    float64  `json:"mask_gap,omitempty" toml:"mask_gap"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`
	Title   string   `json:"title,omitempty" toml:"title"`
	Hover   bool     `json:"hover,omitempty" toml:"hover"`   // Hover highlighting in SVG
	Scale   float64  `json:"scale,omitempty" toml:"scale"`   // Vector PNG scale (rsvg-convert)
	Vector  bool     `json:"vector,omitempty" toml:"vector"` // Render PNG from the SVG surface

	// Runtime options (not serialized)
	Logger  *log.Logger             `json:"-" toml:"-"`
	OnHover func(p *cloud.Placement) `json:"-" toml:"-"` // Interactive hover, nil when leaving a word
	OnClick func(p *cloud.Placement) `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the placement run in logs and hooks.
	RunID string

	// Status is the run's final status.
	Status cloud.Status

	// Placements are the drawn words in drawing order.
	Placements []*cloud.Placement

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	cloud.Stats
	PlaceTime  time.Duration
	RenderTime time.Duration
}

// DefaultOptions returns the stock options: an 800×600 PNG with one word in
// ten turned a quarter, in random dark colors.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Background:    cloud.DefaultBackground,
		GridSize:      cloud.DefaultGridSize,
		WeightFactor:  DefaultWeightFactor,
		MinRotation:   -DefaultRotation,
		MaxRotation:   DefaultRotation,
		RotationSteps: cloud.DefaultRotationSteps,
		RotateRatio:   cloud.DefaultRotateRatio,
		Shape:         shape.NameCircle,
		Ellipticity:   cloud.DefaultEllipticity,
		Sort:          true,
		Seed:          cloud.DefaultSeed,
		Color:         ColorRandomDark,
		MaskColor:     cloud.DefaultMaskColor,
		MaskGap:       cloud.DefaultMaskGap,
		Formats:       []string{FormatPNG},
		Scale:         DefaultScale,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateShape checks that a shape name is built in.
func ValidateShape(name string) error {
	if _, ok := shape.Lookup(name); !ok {
		return errors.New(errors.ErrCodeInvalidShape, "invalid shape: %q (must be one of: %s)",
			name, strings.Join(shape.Names(), ", "))
	}
	return nil
}

// ValidateColor checks that s is a color strategy name or a parseable color.
func ValidateColor(s string) error {
	if s == ColorRandomDark || s == ColorRandomLight {
		return nil
	}
	if _, err := paint.Parse(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color")
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills fields whose zero value is unusable. Fields where zero
// is meaningful (rotation range and steps, rotate ratio) are left alone;
// start from DefaultOptions to get their defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Background == "" {
		o.Background = cloud.DefaultBackground
	}
	if o.GridSize == 0 {
		o.GridSize = cloud.DefaultGridSize
	}
	if o.WeightFactor == 0 {
		o.WeightFactor = DefaultWeightFactor
	}
	if o.Shape == "" {
		o.Shape = shape.NameCircle
	}
	if o.Ellipticity == 0 {
		o.Ellipticity = cloud.DefaultEllipticity
	}
	if o.Seed == 0 {
		o.Seed = cloud.DefaultSeed
	}
	if o.Color == "" && len(o.Palette) == 0 {
		o.Color = ColorRandomDark
	}
	if o.MaskColor == "" {
		o.MaskColor = cloud.DefaultMaskColor
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option values. It does not apply defaults.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.ShapeExpr == "" {
		if err := ValidateShape(o.Shape); err != nil {
			return err
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Color != "" {
		if err := ValidateColor(o.Color); err != nil {
			return err
		}
	}
	for _, c := range o.Palette {
		if _, err := paint.Parse(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid palette color")
		}
	}
	if _, err := paint.Parse(o.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid background")
	}
	if o.Origin != nil && len(o.Origin) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "origin must be [x, y], got %d values", len(o.Origin))
	}
	if o.RotateRatio < 0 || o.RotateRatio > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "rotate_ratio must be within [0, 1], got %v", o.RotateRatio)
	}
	if o.RotationSteps < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rotation_steps cannot be negative")
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// NeedsSVG reports whether any requested output is produced from the SVG
// surface.
func (o *Options) NeedsSVG() bool {
	for _, f := range o.Formats {
		if f == FormatSVG || f == FormatPDF || (f == FormatPNG && o.Vector) {
			return true
		}
	}
	return false
}
