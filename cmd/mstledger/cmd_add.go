package main

import (
	"fmt"

	"github.com/hupe1980/mstledger"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var override string

	cmd := &cobra.Command{
		Use:   "add KIND TOKENS...",
		Short: "Add a record to its log",
		Long: `Decodes a record from its log line tokens and merges it into its log.
KIND is input, corr, perf or weight. Prints "changed" when the log was
rewritten and "unchanged" when it already held the record.

Example:
  mstledger add corr 1 0 0.0 100000.0 100 200 42 abc123 0 1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mstledger.LookupKind(args[0])
			if err != nil {
				return err
			}
			rec, err := k.Decode(tokens(args[1:]))
			if err != nil {
				return err
			}

			changed, err := a.ledger.AddRecord(cmd.Context(), rec, override)
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintln(cmd.OutOrStdout(), "changed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&override, "log", "", "store name of the log instead of the record's own")
	return cmd
}
