package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// defaultBase names outputs of a word list read from standard input.
const defaultBase = appName

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	optionFlags
	output  string // output file (single format) or base path
	formats string // comma-separated output formats
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a word list as a word cloud",
		Long: `Render a weighted word list as a word cloud.

The word list is a JSON, CSV, TSV or plain text file ("-" reads standard
input). Words are placed largest first along a spiral from the center of
the canvas; words that do not fit are skipped.`,
		Example: `  wordcloud render words.txt
  wordcloud render words.csv -f svg,png -o cloud
  cat words.txt | wordcloud render - --shape star --palette '#1b9e77,#d95f02'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ro.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				opts.Formats = parseFormats(ro.formats)
			}
			return c.runRender(cmd.Context(), args[0], ro.output, opts, &ro.optionFlags)
		},
	}

	ro.register(cmd)
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format, - for stdout) or base path")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")

	return cmd
}

// runRender places the word list at input and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options, of *optionFlags) error {
	logger := loggerFromContext(ctx)

	items, err := of.readInput(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d words from %s", len(items), displayInput(input))

	runner := c.newRunner()
	job, err := runner.Prepare(ctx, opts, items)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, placingMessage(0, len(items)))
	off := trackProgress(job, spinner)
	spinner.Start()
	prog := newProgress(logger)
	result, err := runner.Finish(ctx, job)
	spinner.Stop()
	off()
	if err != nil {
		return err
	}
	prog.done("Placed words", "drawn", result.Stats.Drawn, "words", len(items), "status", result.Status)

	paths, err := writeArtifacts(result.Artifacts, job.Options().Formats, output, input)
	if err != nil {
		return err
	}

	if output == "-" {
		return nil
	}
	printRunSummary(result)
	for _, p := range paths {
		printFile(p)
	}
	if result.Status == cloud.StatusAborted {
		printWarning("placement was aborted, the cloud is incomplete")
	}
	return nil
}

// trackProgress reports processed words on the spinner while the job runs.
func trackProgress(job *pipeline.Job, spinner *Spinner) (off func()) {
	total := job.Words()
	return job.Group.On(cloud.EventDrawn, func(e *cloud.Event) {
		spinner.SetMessage(placingMessage(e.Run.Stats().Processed, total))
	})
}

func placingMessage(done, total int) string {
	return fmt.Sprintf("Placing words %d/%d...", done, total)
}

// writeArtifacts writes each rendered format to its output path and returns
// the paths written, in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(output, input, format, len(formats))
		out, err := openOutput(path)
		if err != nil {
			return nil, err
		}
		_, err = out.Write(data)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", format, err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// outputPath returns the file for one format. A single format honors an
// explicit output path verbatim; "-" selects standard output, which is
// returned as the empty path.
func outputPath(output, input, format string, count int) string {
	if output == "-" && count == 1 {
		return ""
	}
	if count == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" || output == "-" {
		if input == "-" || input == "" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// openOutput opens path for writing, or standard output for "".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func displayInput(input string) string {
	if input == "-" {
		return "stdin"
	}
	return input
}
