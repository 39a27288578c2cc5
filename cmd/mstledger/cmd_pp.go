package main

import (
	"fmt"

	"github.com/hupe1980/mstledger/footer"
	"github.com/spf13/cobra"
)

func newPPCmd(a *app) *cobra.Command {
	var fast bool

	cmd := &cobra.Command{
		Use:   "pp FILE...",
		Short: "Pretty-print generated input paths",
		Long: `Prints each generated input as I(<generator arguments>) read from its
footer. Inputs without a readable footer, and every input with --fast or
pretty_print.fast set, print as their path below the inputs root.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &footer.Printer{
				Mode:    a.cfg.PrettyPrintMode(),
				Root:    a.cfg.Paths.Inputs,
				Scraper: footer.NewScraper(nil),
			}
			if fast {
				p.Mode = footer.ModeFast
			}

			for _, path := range args {
				fmt.Fprintln(cmd.OutOrStdout(), p.Print(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fast, "fast", false, "skip footer extraction")
	return cmd
}
