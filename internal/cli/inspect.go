package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// inspectCommand creates the inspect command for browsing a placed cloud
// in the terminal.
func (c *CLI) inspectCommand() *cobra.Command {
	var of optionFlags

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse a word cloud interactively in the terminal",
		Long: `Place a word list and browse the result in the terminal.

The cursor acts as the mouse pointer: moving it over a word shows its
placement and enter selects it. Selected words are printed on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := of.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], opts, &of)
		},
	}

	of.register(cmd)
	return cmd
}

// runInspect places the word list with pointer callbacks and runs the TUI.
func (c *CLI) runInspect(ctx context.Context, input string, opts pipeline.Options, of *optionFlags) error {
	logger := loggerFromContext(ctx)

	items, err := of.readInput(input)
	if err != nil {
		return err
	}

	state := &pointerState{}
	opts.OnHover = state.hover
	opts.OnClick = state.click

	runner := c.newRunner()
	job, err := runner.Prepare(ctx, opts, items)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, placingMessage(0, len(items)))
	off := trackProgress(job, spinner)
	spinner.Start()
	prog := newProgress(logger)
	status, err := runner.Place(ctx, job)
	spinner.Stop()
	off()
	if err != nil {
		return err
	}
	prog.done("Placed words", "drawn", job.Run.Stats().Drawn, "words", len(items), "status", status)

	o := job.Options()
	model := NewInspectModel(job.Run, o.Width, o.Height, state)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	clicked := final.(InspectModel).Clicked()
	if len(clicked) == 0 {
		printInfo("No words selected")
		return nil
	}
	printSuccess("Selected %d words", len(clicked))
	for _, p := range clicked {
		printKeyValue(p.Item.Word, fmt.Sprintf("%g", p.Item.Weight))
	}
	return nil
}
