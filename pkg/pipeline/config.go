package pipeline

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// LoadOptions reads a TOML options file. Keys absent from the file keep
// their DefaultOptions value; unknown keys are an error. Relative
// font_file and background_image paths are resolved against the file's
// directory.
//
//	width = 1200
//	height = 800
//	shape = "star"
//	rotate_ratio = 0.5
//	palette = ["#264653", "#2a9d8f", "#e9c46a"]
//	abort_threshold = "200ms"
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{&opts.FontFile, &opts.BackgroundImage} {
		if *p == "" {
			continue
		}
		if err := errors.ValidatePath(*p); err != nil {
			return Options{}, err
		}
		*p = filepath.Join(dir, *p)
	}
	return opts, nil
}

// Config translates validated options into a cloud configuration.
func (o *Options) Config() (cloud.Config, error) {
	cfg := cloud.DefaultConfig()
	cfg.GridSize = o.GridSize
	cfg.Weight = cloud.Factor(o.WeightFactor)
	cfg.MinSize = o.MinSize
	cfg.MinRotation = o.MinRotation * math.Pi / 180
	cfg.MaxRotation = o.MaxRotation * math.Pi / 180
	cfg.RotationSteps = o.RotationSteps
	cfg.RotateRatio = o.RotateRatio
	cfg.Ellipticity = o.Ellipticity
	cfg.DrawMask = o.DrawMask
	cfg.MaskColor = o.MaskColor
	cfg.MaskGap = o.MaskGap
	cfg.AbortThreshold = o.AbortThreshold
	cfg.TotalBudget = o.TotalBudget
	cfg.Background = o.Background
	cfg.Preserve = o.BackgroundImage != ""
	cfg.Ordered = o.Ordered
	cfg.Wait = o.Wait
	cfg.Seed = o.Seed
	cfg.Logger = o.Logger
	cfg.Hover = o.OnHover
	cfg.Click = o.OnClick
	if o.Classes != "" {
		cfg.Classes = cloud.FixedClasses(o.Classes)
	}
	if len(o.Origin) == 2 {
		cfg.Origin = &image.Point{X: o.Origin[0], Y: o.Origin[1]}
	}

	switch {
	case len(o.Palette) > 0:
		cfg.Color = cloud.Palette(o.Palette)
	case o.Color == ColorRandomLight:
		cfg.Color = cloud.RandomLight
	case o.Color == ColorRandomDark || o.Color == "":
		cfg.Color = cloud.RandomDark
	default:
		cfg.Color = cloud.FixedColor(o.Color)
	}

	if o.ShapeExpr != "" {
		expr, err := shape.NewExpr(o.ShapeExpr)
		if err != nil {
			return cloud.Config{}, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid shape expression")
		}
		cfg.Shape = expr
	} else {
		p, ok := shape.Lookup(o.Shape)
		if !ok {
			return cloud.Config{}, ValidateShape(o.Shape)
		}
		cfg.Shape = p
	}

	cfg.FontWeight = o.FontWeight
	if o.FontFile != "" {
		if _, err := os.Stat(o.FontFile); err != nil {
			return cloud.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s not found", o.FontFile)
		}
		src, err := fonts.Load(o.FontFile)
		if err != nil {
			return cloud.Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid font")
		}
		cfg.Font = src
		cfg.FontFamily = strings.TrimSuffix(filepath.Base(o.FontFile), filepath.Ext(o.FontFile))
	}
	return cfg, nil
}
