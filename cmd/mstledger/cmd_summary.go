package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hupe1980/mstledger"
	"github.com/hupe1980/mstledger/internal/fs"
	"github.com/hupe1980/mstledger/record"
	"github.com/hupe1980/mstledger/revconf"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary corr|perf",
		Short: "Summarize the results of every tracked revision",
		Long: `Loads the corr or perf log of every tracked revision concurrently and
prints one line per revision. Revisions without a log report zero results.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"corr", "perf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mstledger.LookupKind(args[0])
			if err != nil {
				return err
			}
			c, err := revconf.Load(fs.Default, a.cfg.Paths.TrackedRevs)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			switch k.Kind {
			case record.KindCorr:
				err = corrSummary(cmd, a.ledger, c, tw)
			case record.KindPerf:
				err = perfSummary(cmd, a.ledger, c, tw)
			default:
				return fmt.Errorf("no summary for %s results", k.Name)
			}
			if err != nil {
				return err
			}
			return tw.Flush()
		},
	}
}

func corrSummary(cmd *cobra.Command, l *mstledger.Ledger, c *revconf.Config, w io.Writer) error {
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, record.CorrPath(e.Rev))
	}
	logs, err := mstledger.LoadMany[record.RunID](cmd.Context(), l, names, record.ParseCorrResult, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "REV\tTAG\tINPUTS\tRUNS\tCORRECT")
	for _, e := range c.Entries {
		results := logs[record.CorrPath(e.Rev)].Records()
		correct := 0
		for _, r := range results {
			if r.IsCorrect() {
				correct++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", e.Rev, e.Tag, mstledger.IndexRuns(results).Len(), len(results), correct)
	}
	return nil
}

func perfSummary(cmd *cobra.Command, l *mstledger.Ledger, c *revconf.Config, w io.Writer) error {
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, record.PerfPath(e.Rev))
	}
	logs, err := mstledger.LoadMany[record.RunID](cmd.Context(), l, names, record.ParsePerfResult, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "REV\tTAG\tINPUTS\tRUNS\tTOTAL(sec)")
	for _, e := range c.Entries {
		results := logs[record.PerfPath(e.Rev)].Records()
		total := 0.0
		for _, r := range results {
			total += r.TimeSec()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\n", e.Rev, e.Tag, mstledger.IndexRuns(results).Len(), len(results), total)
	}
	return nil
}
