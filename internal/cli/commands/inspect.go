package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pgxcube/internal/cli/config"
	"github.com/leapstack-labs/pgxcube/pkg/codec"
)

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	Format string // Output format: table, json
}

// InspectResult is the report for a single cube expression.
type InspectResult struct {
	Input      string `json:"input"`
	Dimensions int    `json:"dimensions"`
	Point      bool   `json:"point"`
	Normalized string `json:"normalized"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <cube>...",
		Short: "Parse cube expressions and report their properties",
		Long: `Parse one or more cube text expressions and report the dimension count,
whether the value is a degenerate point, and the normalized output form.`,
		Example: `  # Inspect a box and a point
  pgxcube inspect '(0,0),(1,1)' '3.5,-2'

  # Output as JSON
  pgxcube inspect --format json '(1, 2)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *InspectOptions, args []string) error {
	logger := config.GetLogger(cmd.Context())

	format := opts.Format
	if format == "" {
		if cfg := config.GetCurrentConfig(); cfg != nil {
			format = cfg.Output
		} else {
			format = config.DefaultOutput
		}
	}

	results := make([]InspectResult, 0, len(args))
	for _, arg := range args {
		c, err := codec.Parse(arg)
		if err != nil {
			return fmt.Errorf("inspect %q: %w", arg, err)
		}
		logger.Debug("parsed cube", "input", arg, "dimensions", c.Dimensions())

		results = append(results, InspectResult{
			Input:      arg,
			Dimensions: c.Dimensions(),
			Point:      c.IsPoint(),
			Normalized: codec.Format(c),
		})
	}

	switch format {
	case "json":
		return renderInspectJSON(cmd.OutOrStdout(), results)
	default:
		renderInspectTable(cmd.OutOrStdout(), results)
		return nil
	}
}

func renderInspectJSON(w io.Writer, results []InspectResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderInspectTable(w io.Writer, results []InspectResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Input", "Dimensions", "Point", "Normalized"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Input, r.Dimensions, r.Point, r.Normalized})
	}

	t.Render()
}
