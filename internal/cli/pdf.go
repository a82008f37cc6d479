package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teachnology/codelytics/internal/config"
	"github.com/teachnology/codelytics/internal/pdfdoc"
)

func newPDFCmd() *cobra.Command {
	var (
		ignorePages  []string
		toReferences bool
	)

	cmd := &cobra.Command{
		Use:   "pdf <file>",
		Short: "Count words in a report PDF",
		Long: `Count the words in a report PDF. Title pages, appendices, or any
other pages can be excluded with --ignore-pages; --to-references stops
counting at the last references or bibliography heading.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if !cmd.Flags().Changed("ignore-pages") {
				ignorePages = cfg.PDF.IgnorePages
			}

			doc, err := pdfdoc.Open(args[0])
			if err != nil {
				return err
			}

			refPage := doc.ReferencesPage()
			if toReferences {
				if refPage == 0 {
					return fmt.Errorf("%s has no references or bibliography heading", args[0])
				}
				ignorePages = append(ignorePages, fmt.Sprintf(">%d", refPage-1))
			}

			words, err := doc.CountWords(ignorePages)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %s%d\n", labelStyle.Render("n_pages"), doc.NPages())
			fmt.Fprintf(out, "  %s%d\n", labelStyle.Render("n_words"), words)
			fmt.Fprintf(out, "  %s%d\n", labelStyle.Render("references_page"), refPage)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignorePages, "ignore-pages", nil, `pages to exclude: numbers ("3") or open ranges (">10")`)
	cmd.Flags().BoolVar(&toReferences, "to-references", false, "exclude the references page and everything after it")

	return cmd
}
