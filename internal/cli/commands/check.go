package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pgxcube/internal/cli/config"
	"github.com/leapstack-labs/pgxcube/pkg/codec"
	"github.com/leapstack-labs/pgxcube/pkg/cube"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format  string        // Output format: table, json
	Timeout time.Duration // Per-connection timeout
}

// CheckResult is the outcome of one round-trip through the server.
type CheckResult struct {
	Expression string `json:"expression"`
	Status     string `json:"status"` // "pass" or "fail"
	Detail     string `json:"detail,omitempty"`
}

// checkSamples covers the shapes the codec must survive: points, boxes,
// negative and fractional coordinates, and a higher dimension count.
var checkSamples = []cube.Cube{
	codec.MustParse("(0)"),
	codec.MustParse("(3.5, -2)"),
	codec.MustParse("(0, 0),(1, 1)"),
	codec.MustParse("(-1.5, 2.25, 0),(4, 5, 6)"),
	codec.MustParse("(1, 2, 3, 4, 5)"),
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify cube support against a live PostgreSQL server",
		Long: `Connect to PostgreSQL, verify the cube extension is installed, register
the cube codec on the connection, and round-trip a set of sample values
through the server.

The connection string comes from --dsn, the PGXCUBE_DSN environment
variable, or the dsn key in pgxcube.yaml.`,
		Example: `  # Check against a local server
  pgxcube check --dsn postgres://localhost/geo

  # Machine-readable report
  pgxcube check --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Connection timeout")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cfg := config.GetCurrentConfig()
	if cfg == nil || cfg.DSN == "" {
		return fmt.Errorf("no connection string configured: set --dsn, PGXCUBE_DSN, or dsn in pgxcube.yaml")
	}
	logger := config.GetLogger(cmd.Context())

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()
	logger.Debug("connected", "database", conn.Config().Database)

	var installed bool
	if err := conn.QueryRow(ctx,
		"select exists (select 1 from pg_extension where extname = 'cube')",
	).Scan(&installed); err != nil {
		return fmt.Errorf("failed to query pg_extension: %w", err)
	}
	if !installed {
		return fmt.Errorf("cube extension is not installed: run CREATE EXTENSION cube")
	}

	if err := codec.RegisterConn(ctx, conn); err != nil {
		return fmt.Errorf("failed to register cube codec: %w", err)
	}
	logger.Debug("cube codec registered")

	results := make([]CheckResult, 0, len(checkSamples))
	failures := 0
	for _, sample := range checkSamples {
		result := roundTrip(ctx, conn, sample)
		if result.Status != "pass" {
			failures++
		}
		results = append(results, result)
	}

	format := opts.Format
	if format == "" {
		format = cfg.Output
	}
	switch format {
	case "json":
		if err := renderCheckJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	default:
		renderCheckTable(cmd.OutOrStdout(), results)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d round-trips failed", failures, len(results))
	}
	return nil
}

func roundTrip(ctx context.Context, conn *pgx.Conn, sample cube.Cube) CheckResult {
	result := CheckResult{Expression: codec.Format(sample)}

	var got cube.Cube
	if err := conn.QueryRow(ctx, "select $1::cube", sample).Scan(&got); err != nil {
		result.Status = "fail"
		result.Detail = err.Error()
		return result
	}

	if !got.Equal(sample) {
		result.Status = "fail"
		result.Detail = fmt.Sprintf("server returned %s", codec.Format(got))
		return result
	}

	result.Status = "pass"
	return result
}

func renderCheckJSON(w io.Writer, results []CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderCheckTable(w io.Writer, results []CheckResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Expression", "Status", "Detail"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Expression, r.Status, r.Detail})
	}

	t.Render()
}
