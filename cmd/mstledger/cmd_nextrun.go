package main

import (
	"fmt"

	"github.com/hupe1980/mstledger"
	"github.com/hupe1980/mstledger/model"
	"github.com/spf13/cobra"
)

func newNextRunCmd(a *app) *cobra.Command {
	var rev string

	cmd := &cobra.Command{
		Use:   "next-run KIND PREC DIMS MIN MAX V E SEED",
		Short: "Print the next free run number of an input",
		Long: `Prints one past the highest run number recorded for the input in the log
a result of KIND from --rev would go to, or 0 when there is none.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mstledger.LookupKind(args[0])
			if err != nil {
				return err
			}
			in, err := model.ParseInput(tokens(args[1:]))
			if err != nil {
				return err
			}

			next, err := a.ledger.NextRunNum(cmd.Context(), k.Kind, rev, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}

	cmd.Flags().StringVar(&rev, "rev", "", "revision of the results")
	return cmd
}
