package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/sink"
	"github.com/matzehuels/wordcloud/pkg/observability"
)

// Render encodes a finished job's surfaces in every requested format.
func Render(ctx context.Context, job *Job, status cloud.Status) (artifacts map[string][]byte, err error) {
	opts := job.opts
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte

		switch format {
		case FormatPNG:
			if opts.Vector {
				data, err = sink.RenderPNG(job.SVG, sink.WithScale(opts.Scale))
			} else {
				data, err = job.Raster.PNG()
			}
		case FormatSVG:
			data = job.SVG.Bytes()
		case FormatPDF:
			data, err = sink.RenderPDF(job.SVG)
		case FormatJSON:
			data, err = sink.RenderJSON(job.Run.Placements(), jsonOptions(job, status)...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// svgOptions builds SVG surface options from pipeline options.
func svgOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Hover {
		svgOpts = append(svgOpts, sink.WithHoverHighlight())
	}
	return svgOpts
}

func jsonOptions(job *Job, status cloud.Status) []sink.JSONOption {
	return []sink.JSONOption{
		sink.WithJSONSize(job.opts.Width, job.opts.Height),
		sink.WithJSONGridSize(job.Run.Session().CellSize()),
		sink.WithJSONSeed(job.opts.Seed),
		sink.WithJSONShape(shapeName(job.opts)),
		sink.WithJSONRun(status, job.Run.Stats()),
	}
}
