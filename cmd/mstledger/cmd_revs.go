package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/mstledger/internal/fs"
	"github.com/hupe1980/mstledger/revconf"
	"github.com/spf13/cobra"
)

func newRevsCmd(a *app) *cobra.Command {
	var tags bool

	cmd := &cobra.Command{
		Use:   "revs",
		Short: "List the tracked revisions",
		Long: `Lists the tracked revisions in file order, or with --tags one line per tag
followed by its revisions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := revconf.Load(fs.Default, a.cfg.Paths.TrackedRevs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !tags {
				for _, rev := range c.Revisions() {
					fmt.Fprintln(out, rev)
				}
				return nil
			}

			byTag := c.AlgsAndRevs()
			for _, tag := range c.Tags() {
				fmt.Fprintf(out, "%s\t%s\n", tag, strings.Join(byTag[tag], " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tags, "tags", false, "group revisions by tag")
	return cmd
}
