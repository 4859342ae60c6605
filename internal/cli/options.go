package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
	"github.com/matzehuels/wordcloud/pkg/fonts"
	wcio "github.com/matzehuels/wordcloud/pkg/io"
	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// optionFlags holds the flags shared by commands that place a word list.
// Values are bound to opts, which starts from the stock defaults so help
// output shows them; only flags the user changed override the options
// loaded from a config file.
type optionFlags struct {
	config      string
	inputFormat string
	opts        pipeline.Options
}

// flagSetters copies a changed flag's value from src into dst, keyed by
// flag name.
var flagSetters = map[string]func(dst, src *pipeline.Options){
	"width":            func(d, s *pipeline.Options) { d.Width = s.Width },
	"height":           func(d, s *pipeline.Options) { d.Height = s.Height },
	"background":       func(d, s *pipeline.Options) { d.Background = s.Background },
	"background-image": func(d, s *pipeline.Options) { d.BackgroundImage = s.BackgroundImage },
	"origin":           func(d, s *pipeline.Options) { d.Origin = s.Origin },
	"grid-size":        func(d, s *pipeline.Options) { d.GridSize = s.GridSize },
	"weight-factor":    func(d, s *pipeline.Options) { d.WeightFactor = s.WeightFactor },
	"min-size":         func(d, s *pipeline.Options) { d.MinSize = s.MinSize },
	"min-rotation":     func(d, s *pipeline.Options) { d.MinRotation = s.MinRotation },
	"max-rotation":     func(d, s *pipeline.Options) { d.MaxRotation = s.MaxRotation },
	"rotation-steps":   func(d, s *pipeline.Options) { d.RotationSteps = s.RotationSteps },
	"rotate-ratio":     func(d, s *pipeline.Options) { d.RotateRatio = s.RotateRatio },
	"shape":            func(d, s *pipeline.Options) { d.Shape = s.Shape },
	"shape-expr":       func(d, s *pipeline.Options) { d.ShapeExpr = s.ShapeExpr },
	"ellipticity":      func(d, s *pipeline.Options) { d.Ellipticity = s.Ellipticity },
	"ordered":          func(d, s *pipeline.Options) { d.Ordered = s.Ordered },
	"sort":             func(d, s *pipeline.Options) { d.Sort = s.Sort },
	"seed":             func(d, s *pipeline.Options) { d.Seed = s.Seed },
	"wait":             func(d, s *pipeline.Options) { d.Wait = s.Wait },
	"abort-threshold":  func(d, s *pipeline.Options) { d.AbortThreshold = s.AbortThreshold },
	"total-budget":     func(d, s *pipeline.Options) { d.TotalBudget = s.TotalBudget },
	"font":             func(d, s *pipeline.Options) { d.FontFile = s.FontFile },
	"font-weight":      func(d, s *pipeline.Options) { d.FontWeight = s.FontWeight },
	"color":            func(d, s *pipeline.Options) { d.Color = s.Color },
	"palette":          func(d, s *pipeline.Options) { d.Palette = s.Palette },
	"classes":          func(d, s *pipeline.Options) { d.Classes = s.Classes },
	"draw-mask":        func(d, s *pipeline.Options) { d.DrawMask = s.DrawMask },
	"mask-color":       func(d, s *pipeline.Options) { d.MaskColor = s.MaskColor },
	"mask-gap":         func(d, s *pipeline.Options) { d.MaskGap = s.MaskGap },
	"title":            func(d, s *pipeline.Options) { d.Title = s.Title },
	"hover":            func(d, s *pipeline.Options) { d.Hover = s.Hover },
	"scale":            func(d, s *pipeline.Options) { d.Scale = s.Scale },
	"vector":           func(d, s *pipeline.Options) { d.Vector = s.Vector },
}

// register binds the option flags to cmd.
func (f *optionFlags) register(cmd *cobra.Command) {
	f.opts = pipeline.DefaultOptions()
	o := &f.opts
	fl := cmd.Flags()

	fl.StringVarP(&f.config, "config", "c", "", "TOML options file (default ~/.config/wordcloud/config.toml if present)")
	fl.StringVar(&f.inputFormat, "input-format", "", "word list format: json, csv, tsv, txt (default from extension)")

	fl.IntVar(&o.Width, "width", o.Width, "canvas width in pixels")
	fl.IntVar(&o.Height, "height", o.Height, "canvas height in pixels")
	fl.StringVar(&o.Background, "background", o.Background, "background color")
	fl.StringVar(&o.BackgroundImage, "background-image", "", "place words around the artwork of this image")
	fl.IntSliceVar(&o.Origin, "origin", nil, "cloud center as x,y pixels (default canvas center)")

	fl.Float64Var(&o.GridSize, "grid-size", o.GridSize, "cell size in pixels (minimum 4)")
	fl.Float64Var(&o.WeightFactor, "weight-factor", o.WeightFactor, "font size per unit of weight")
	fl.Float64Var(&o.MinSize, "min-size", 0, "skip words whose font size is below this")
	fl.Float64Var(&o.MinRotation, "min-rotation", o.MinRotation, "minimum rotation in degrees")
	fl.Float64Var(&o.MaxRotation, "max-rotation", o.MaxRotation, "maximum rotation in degrees")
	fl.IntVar(&o.RotationSteps, "rotation-steps", o.RotationSteps, "number of discrete rotations (0 for continuous)")
	fl.Float64Var(&o.RotateRatio, "rotate-ratio", o.RotateRatio, "probability that a word is rotated")
	fl.StringVar(&o.Shape, "shape", o.Shape, "cloud shape (see 'wordcloud shapes')")
	fl.StringVar(&o.ShapeExpr, "shape-expr", "", "JavaScript shape expression over theta, overrides --shape")
	fl.Float64Var(&o.Ellipticity, "ellipticity", o.Ellipticity, "vertical squash of the spiral")
	fl.BoolVar(&o.Ordered, "ordered", false, "try candidate points in spiral order instead of shuffled")
	fl.BoolVar(&o.Sort, "sort", o.Sort, "sort words by descending weight")
	fl.Uint64Var(&o.Seed, "seed", o.Seed, "random seed")
	fl.DurationVar(&o.Wait, "wait", 0, "pause between words")
	fl.DurationVar(&o.AbortThreshold, "abort-threshold", 0, "abort when a single word takes longer than this")
	fl.DurationVar(&o.TotalBudget, "total-budget", 0, "abort when the whole run takes longer than this")

	fl.StringVar(&o.FontFile, "font", "", "TrueType or OpenType font file (default embedded Go font)")
	fl.StringVar(&o.FontWeight, "font-weight", "", "embedded font weight: normal, bold")
	fl.StringVar(&o.Color, "color", o.Color, "word color, random-dark or random-light")
	fl.StringSliceVar(&o.Palette, "palette", nil, "colors assigned to words in turn, overrides --color")
	fl.StringVar(&o.Classes, "classes", "", "CSS classes added to SVG words")
	fl.BoolVar(&o.DrawMask, "draw-mask", false, "shade occupied cells on the raster")
	fl.StringVar(&o.MaskColor, "mask-color", o.MaskColor, "mask shading color")
	fl.Float64Var(&o.MaskGap, "mask-gap", o.MaskGap, "gap in pixels between mask cells")

	fl.StringVar(&o.Title, "title", "", "SVG document title")
	fl.BoolVar(&o.Hover, "hover", false, "highlight SVG words on hover")
	fl.Float64Var(&o.Scale, "scale", o.Scale, "vector PNG scale factor")
	fl.BoolVar(&o.Vector, "vector", false, "render PNG from the SVG output (requires rsvg-convert)")

	_ = cmd.RegisterFlagCompletionFunc("shape", fixedCompletion(shape.Names()...))
	_ = cmd.RegisterFlagCompletionFunc("input-format", fixedCompletion(wcio.FormatJSON, wcio.FormatCSV, wcio.FormatTSV, wcio.FormatText))
	_ = cmd.RegisterFlagCompletionFunc("font-weight", fixedCompletion(fonts.WeightNormal, fonts.WeightBold))
}

// fixedCompletion completes a flag from a fixed list of values.
func fixedCompletion(values ...string) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// resolve loads options from the config file, falling back to the user's
// default file and then the stock defaults, and applies changed flags.
func (f *optionFlags) resolve(fs *pflag.FlagSet) (pipeline.Options, error) {
	path := f.config
	if path == "" {
		path = defaultConfigPath()
	}

	opts := pipeline.DefaultOptions()
	if path != "" {
		loaded, err := pipeline.LoadOptions(path)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	applyFlags(fs, &opts, &f.opts)
	return opts, nil
}

// applyFlags copies every flag the user set from src into dst.
func applyFlags(fs *pflag.FlagSet, dst, src *pipeline.Options) {
	fs.Visit(func(fl *pflag.Flag) {
		if set, ok := flagSetters[fl.Name]; ok {
			set(dst, src)
		}
	})
}

// readInput reads the word list at path, or standard input for "-".
func (f *optionFlags) readInput(path string) ([]cloud.Item, error) {
	if path != "-" {
		if f.inputFormat == "" {
			return wcio.ImportWords(path)
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return wcio.ReadWords(file, f.inputFormat)
	}
	format := strings.ToLower(f.inputFormat)
	if format == "" {
		format = wcio.FormatText
	}
	return wcio.ReadWords(os.Stdin, format)
}
