package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/sink"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/observability"
)

// Runner executes the pipeline. It holds no per-run state, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Job is a prepared run together with the surfaces it draws on.
type Job struct {
	Run    *cloud.Run
	Group  *cloud.Group
	Raster *sink.Raster
	SVG    *sink.SVG // nil unless an SVG-based format was requested

	opts  Options
	words int
}

// Options returns the validated options the job was prepared with.
func (j *Job) Options() Options { return j.opts }

// Words returns the number of items in the job's word list.
func (j *Job) Words() int { return j.words }

// Execute runs the complete configure → place → render pipeline.
//
// A run that aborts on its time budget is not an error: the result holds
// the words placed so far with Status set to cloud.StatusAborted. A
// canceled ctx stops placement and returns ctx's error.
func (r *Runner) Execute(ctx context.Context, opts Options, items []cloud.Item) (*Result, error) {
	job, err := r.Prepare(ctx, opts, items)
	if err != nil {
		return nil, err
	}
	return r.Finish(ctx, job)
}

// Finish places a prepared job and renders its outputs. Listeners added to
// job.Group between Prepare and Finish observe the whole run.
func (r *Runner) Finish(ctx context.Context, job *Job) (*Result, error) {
	opts := job.opts
	result := &Result{RunID: job.Run.ID}

	// Stage 2: Place
	placeStart := time.Now()
	status, err := r.Place(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	result.Status = status
	result.Placements = job.Run.Placements()
	result.Stats.Stats = job.Run.Stats()
	result.Stats.PlaceTime = time.Since(placeStart)

	r.Logger.Info("placed words",
		"drawn", result.Stats.Drawn,
		"skipped", result.Stats.Skipped,
		"rejected", result.Stats.Rejected,
		"status", status,
		"duration", result.Stats.PlaceTime)
	if status == cloud.StatusAborted {
		r.Logger.Warn("run aborted on time budget", "processed", result.Stats.Processed, "words", job.words)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, job, status)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare validates opts, creates the surfaces and returns an idle run over
// items. Lifecycle events are forwarded to the observability run hooks
// with ctx.
func (r *Runner) Prepare(ctx context.Context, opts Options, items []cloud.Item) (*Job, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidWordList, "word list is empty")
	}

	// Stage 1: Configure
	cfg, err := opts.Config()
	if err != nil {
		return nil, err
	}

	job := &Job{opts: opts, words: len(items)}
	if opts.BackgroundImage != "" {
		img, err := sink.LoadBackground(opts.BackgroundImage, opts.Width, opts.Height)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "load background image")
		}
		job.Raster = sink.NewRasterFromImage(img)
	} else {
		job.Raster = sink.NewRaster(opts.Width, opts.Height)
	}
	surfaces := []cloud.Surface{job.Raster}
	if opts.NeedsSVG() {
		job.SVG = sink.NewSVG(opts.Width, opts.Height, svgOptions(opts)...)
		surfaces = append(surfaces, job.SVG)
	}

	job.Group, err = cloud.NewGroup(surfaces...)
	if err != nil {
		return nil, err
	}

	if opts.Sort {
		items = slices.Clone(items)
		slices.SortStableFunc(items, func(a, b cloud.Item) int { return cmp.Compare(b.Weight, a.Weight) })
	}
	job.Run, err = cloud.NewRun(job.Group, items, cfg)
	if err != nil {
		return nil, err
	}
	r.observe(ctx, job, len(items))

	opts.Logger.Debug("prepared run",
		"run", job.Run.ID,
		"words", len(items),
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"shape", shapeName(opts))
	return job, nil
}

// Place starts the job's run if it is idle and drives it to a terminal
// status.
func (r *Runner) Place(ctx context.Context, job *Job) (cloud.Status, error) {
	status, err := cloud.Drive(ctx, job.Run)
	if err != nil {
		return status, err
	}
	if status == cloud.StatusIdle {
		return status, errors.New(errors.ErrCodeInternal, "run %s was not started", job.Run.ID)
	}
	return status, nil
}

func (r *Runner) observe(ctx context.Context, job *Job, words int) {
	hooks := observability.Run()
	var started, last time.Time

	job.Group.On(cloud.EventStart, func(e *cloud.Event) {
		if e.Run != job.Run {
			return
		}
		started = time.Now()
		last = started
		hooks.OnRunStart(ctx, job.Run.ID, words)
	})
	job.Group.On(cloud.EventDrawn, func(e *cloud.Event) {
		now := time.Now()
		hooks.OnWordProcessed(ctx, job.Run.ID, e.Item.Word, e.Drawn, now.Sub(last))
		last = now
	})
	job.Group.On(cloud.EventStop, func(e *cloud.Event) {
		hooks.OnRunStop(ctx, job.Run.ID, e.Run.State().String(), e.Run.Stats().Drawn, time.Since(started))
	})
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func shapeName(opts Options) string {
	if opts.ShapeExpr != "" {
		return opts.ShapeExpr
	}
	return opts.Shape
}
