package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/teachnology/codelytics/internal/analyzer"
	"github.com/teachnology/codelytics/internal/config"
)

// Style definitions for the stats view.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(30)
	valueStyle = lipgloss.NewStyle()
)

func newStatsCmd() *cobra.Command {
	var (
		asCSV      bool
		asJSON     bool
		ignore     []string
		workers    int
		ref        string
		allCommits bool
	)

	cmd := &cobra.Command{
		Use:   "stats <dir>",
		Short: "Analyze a project directory and print its metrics record",
		Long: `Analyze a project directory: every .py file and notebook code cell
feeds the code metrics, notebook markdown cells feed the text metrics,
and git history feeds the repository metadata. The output is one flat
record with a fixed field order, so records from different projects
align column-for-column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asCSV && asJSON {
				return fmt.Errorf("--csv and --json are mutually exclusive")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			if cmd.Flags().Changed("ignore") {
				cfg.Analyze.Ignore = ignore
			}
			if cmd.Flags().Changed("workers") {
				cfg.Analyze.Workers = workers
			}
			if cmd.Flags().Changed("ref") {
				cfg.Git.Ref = ref
			}
			if allCommits {
				cfg.Git.Ref = "--all"
			}

			logf := func(string, ...any) {}
			if verbose {
				errOut := cmd.ErrOrStderr()
				logf = func(format string, args ...any) {
					fmt.Fprintf(errOut, format+"\n", args...)
				}
			}

			a := analyzer.New(args[0], analyzer.Options{
				Ignore:  cfg.Analyze.Ignore,
				Workers: cfg.Analyze.Workers,
				GitRef:  cfg.Git.Ref,
				Logf:    logf,
			})
			record, err := a.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("analyze %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, record)
			case asCSV:
				return writeCSV(out, record)
			default:
				writePretty(out, args[0], record)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit the record as a two-line CSV (header and values)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the record as JSON")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns to exclude (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "extraction worker count (0 = one per CPU)")
	cmd.Flags().StringVar(&ref, "ref", "", "git ref to count commits on (default HEAD)")
	cmd.Flags().BoolVar(&allCommits, "all", false, "count commits on every branch")

	return cmd
}

func writeJSON(out io.Writer, record *analyzer.ProjectRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writeCSV(out io.Writer, record *analyzer.ProjectRecord) error {
	fields := record.Fields()
	header := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
		values[i] = formatValue(f.Value)
	}
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.Write(values); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writePretty(out io.Writer, dir string, record *analyzer.ProjectRecord) {
	title := fmt.Sprintf("Project metrics: %s", dir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(title))
	fmt.Fprintln(out, headerStyle.Render(strings.Repeat("=", len(title))))
	fmt.Fprintln(out)

	for _, f := range record.Fields() {
		fmt.Fprintf(out, "  %s%s\n",
			labelStyle.Render(f.Name),
			valueStyle.Render(formatValue(f.Value)))
	}
	fmt.Fprintln(out)
}

// formatValue renders a record scalar: booleans and integers verbatim,
// floats trimmed to their shortest exact representation.
func formatValue(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
