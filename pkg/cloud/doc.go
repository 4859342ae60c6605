// Package cloud implements the word cloud placement engine.
//
// # Overview
//
// Words are placed one at a time onto an occupancy [grid.Grid] laid over the
// output surfaces. For each word the engine:
//
//  1. Rasterizes the word offscreen and derives its occupied-cell [Footprint]
//  2. Scans rings of candidate points outward from the cloud center, shaped
//     by a [shape.Profile], and takes the first position where every
//     footprint cell is free (first fit)
//  3. Commits the placement: marks the cells occupied, paints the word on
//     every [Surface], and records hit-test metadata for hover and click
//
// # Runs
//
// A [Run] is an explicit state machine (Idle, Running, then Completed,
// Aborted or Superseded) advanced by [Run.Step], one word per call. [Drive]
// steps a run with a cooperative yield or a fixed wait between words.
// Starting a run on a [Group] emits a cancelable start event; any run still
// active on the same group is superseded and never ticks again.
//
//	group, err := cloud.NewGroup(sink.NewRaster(800, 600))
//	run := cloud.NewRun(group, items, cloud.DefaultConfig())
//	status, err := cloud.Drive(ctx, run)
//
// # Budgets
//
// Config.AbortThreshold bounds the time spent on a single word and
// Config.TotalBudget the time spent on the whole run. Both are checked
// cooperatively: once after rasterization and once at the end of each tick.
//
// [grid.Grid]: github.com/matzehuels/wordcloud/pkg/cloud/grid.Grid
// [shape.Profile]: github.com/matzehuels/wordcloud/pkg/cloud/shape.Profile
package cloud
