package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/mstledger"
	"github.com/hupe1980/mstledger/config"
	"github.com/hupe1980/mstledger/record"
	"github.com/spf13/cobra"
)

type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	ledger *mstledger.Ledger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mstledger",
		Short: "Record and report MST benchmark results",
		Long: `mstledger keeps the tab-separated logs of generated inputs, correctness
results, performance results and MST weights of the benchmarked revisions.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "mstledger.yaml", "configuration file")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log at debug level")

	cmd.AddCommand(
		newAddCmd(a),
		newShowCmd(a),
		newNextRunCmd(a),
		newRevsCmd(a),
		newPPCmd(a),
		newSummaryCmd(a),
	)
	return cmd
}

// setup loads the configuration and opens the ledger once per process.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfg == nil {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.ledger != nil {
		return nil
	}

	store, err := config.OpenStore(cmd.Context(), a.cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	a.ledger = mstledger.New(store, mstledger.WithLogger(a.cfg.NewLogger(a.verbose)))
	return nil
}

// tokens splits arguments given either one per token or as quoted lines.
func tokens(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// logName resolves the NAME argument of a kind to a store name: a file in
// input/ for inputs, a revision for corr and perf, a weight type for weight.
func logName(k record.KindInfo, name string) string {
	switch k.Kind {
	case record.KindCorr:
		return record.CorrPath(name)
	case record.KindPerf:
		return record.PerfPath(name)
	case record.KindWeight:
		return record.WeightPath(name)
	default:
		return record.InputDir + "/" + name
	}
}
