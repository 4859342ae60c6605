// Package pkg provides the core libraries for wordcloud.
//
// # Overview
//
// Wordcloud lays out weighted words on a spiral: the heaviest word lands at
// the center, each following word takes the first free spot on rings of
// growing radius, and nothing overlaps. The pkg directory is organized into
// three main areas:
//
//  1. [cloud] - The placement engine (grid, footprints, spiral search, runs)
//  2. [pipeline] - Orchestration (options → placement → rendering)
//  3. Supporting packages for input, output, fonts, errors and hooks
//
// # Architecture
//
// The typical data flow through wordcloud:
//
//	Word list (JSON, CSV, TSV, text)
//	         ↓
//	    [io] package (read and validate items)
//	         ↓
//	    [cloud] package (footprint → spiral search → commit, one word per step)
//	         ↓
//	    [cloud/sink] package (raster, SVG and JSON surfaces)
//	         ↓
//	    PNG/SVG/PDF/JSON output
//
// # Quick Start
//
// Place a word list and render it as PNG and SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/wordcloud/pkg/io"
//	    "github.com/matzehuels/wordcloud/pkg/pipeline"
//	)
//
//	items, _ := io.ImportWords("words.csv")
//
//	opts := pipeline.DefaultOptions()
//	opts.Shape = "star"
//	opts.Formats = []string{pipeline.FormatPNG, pipeline.FormatSVG}
//
//	result, _ := pipeline.NewRunner(nil).Execute(context.Background(), opts, items)
//	png := result.Artifacts[pipeline.FormatPNG]
//
// Drive the engine directly for step-by-step control:
//
//	raster := sink.NewRaster(800, 600)
//	group, _ := cloud.NewGroup(raster)
//	run, _ := cloud.NewRun(group, items, cloud.DefaultConfig())
//	status, _ := cloud.Drive(ctx, run)
//
// # Main Packages
//
// ## Placement Engine
//
// [cloud] - Sessions, footprints, the spiral search, the commit step and the
// Run state machine with its lifecycle events. Runs sharing a [cloud.Group]
// supersede each other.
//
//   - [cloud/grid]: Occupancy grid with out-of-bounds cells reported as taken
//   - [cloud/shape]: Polar shape profiles (analytic, sampled, JavaScript)
//   - [cloud/paint]: CSS color parsing and random HSL colors
//   - [cloud/sink]: Surfaces and encoders (PNG, SVG, PDF, JSON)
//
// [fonts] - Embedded Go fonts, font file loading and the minimum size probe.
//
// ## Orchestration
//
// [pipeline] - Options with TOML config files, validation and defaults, and
// the Runner used by the CLI. Ensures consistent behavior across entry points.
//
// [render] - Format conversion (SVG to PDF/PNG) via rsvg-convert.
//
// ## Support
//
// [io] - Word list import and placement export.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Run and render hooks for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/cloud/...              # Specific package
//	go test -run Example                 # Examples only
//
// [cloud]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/cloud
// [cloud/grid]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/cloud/grid
// [cloud/shape]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/cloud/shape
// [cloud/paint]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/cloud/paint
// [cloud/sink]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/cloud/sink
// [fonts]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordcloud/pkg/buildinfo
package pkg
