package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
)

// shapesCommand creates the shapes command listing the built-in shapes.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the built-in cloud shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeShapes(cmd.OutOrStdout())
		},
	}
}

// writeShapes writes the shape table to w.
func writeShapes(w io.Writer) error {
	rows := [][]string{}
	for _, name := range shape.Names() {
		kind := "analytic"
		if shape.IsSampled(name) {
			kind = "sampled"
		}
		rows = append(rows, []string{name, kind})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Shape", "Kind").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleDim.Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, StyleDim.Render("Use --shape-expr for a custom JavaScript shape over theta."))
	return err
}
