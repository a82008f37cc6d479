package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teachnology/codelytics/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a .codelytics.yaml config file",
		Long: `Initialize a codelytics configuration file in the current directory.

The generated .codelytics.yaml documents every setting with its default
value; edit it to change ignore patterns, worker counts, or the git ref.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			configPath := filepath.Join(cwd, config.DefaultConfigFile+"."+config.DefaultConfigType)
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists", configPath)
			}

			if err := os.WriteFile(configPath, []byte(defaultConfigYAML()), 0644); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", configPath)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  1. Edit the ignore patterns to match your project layout")
			fmt.Fprintln(out, "  2. Run 'codelytics stats <dir>' to analyze a project")

			return nil
		},
	}
}

func defaultConfigYAML() string {
	return `analyze:
  # Glob patterns excluded from the walk, on top of the built-in
  # version-control exclusions (.git, .hg, .svn).
  ignore:
    - "**/__pycache__/**"
    - "**/.ipynb_checkpoints/**"
    - "**/node_modules/**"
    - "**/venv/**"
    - "**/.venv/**"
    - "**/dist/**"
    - "**/build/**"
  # Extraction worker count. 0 means one worker per CPU.
  workers: 0

git:
  # Ref whose commits are counted. "--all" counts every branch.
  ref: HEAD

pdf:
  # Report pages excluded from word counting: page numbers ("3") or
  # open ranges (">10").
  ignore_pages: []
`
}
