package main

import (
	"context"
	"io"

	"github.com/hupe1980/mstledger"
	"github.com/hupe1980/mstledger/dataset"
	"github.com/hupe1980/mstledger/model"
	"github.com/hupe1980/mstledger/record"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show KIND NAME",
		Short: "Print a log in canonical order",
		Long: `Prints the header and the sorted records of a log. NAME is the file in
input/ for inputs (e.g. perf.inputs), the revision for corr and perf and
the weight type for weight. With --raw NAME is the store name itself.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mstledger.LookupKind(args[0])
			if err != nil {
				return err
			}
			name := args[1]
			if !raw {
				name = logName(k, name)
			}
			return show(cmd.Context(), a.ledger, k.Kind, name, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "treat NAME as a store name")
	return cmd
}

func show(ctx context.Context, l *mstledger.Ledger, kind record.Kind, name string, w io.Writer) error {
	switch kind {
	case record.KindInputSolution:
		return writeLog[model.ID](ctx, l, name, record.ParseInputSolution, w)
	case record.KindCorr:
		return writeLog[record.RunID](ctx, l, name, record.ParseCorrResult, w)
	case record.KindPerf:
		return writeLog[record.RunID](ctx, l, name, record.ParsePerfResult, w)
	default:
		return writeLog[record.RunID](ctx, l, name, record.ParseWeightResult, w)
	}
}

func writeLog[K comparable, R dataset.Record[K, R]](ctx context.Context, l *mstledger.Ledger, name string, decode dataset.Decoder[R], w io.Writer) error {
	d, err := mstledger.Load[K](ctx, l, name, decode, true)
	if err != nil {
		return err
	}
	_, err = d.WriteTo(w)
	return err
}
