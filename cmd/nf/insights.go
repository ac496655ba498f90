package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show the top category and spending averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			section, err := resolveSection(cmd, store)
			if err != nil {
				return err
			}

			txns := store.Transactions(section)
			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No %s transactions yet", section)))
				return nil
			}

			fmt.Fprintln(out, cli.RenderInsights(analytics.Insights(txns, a.formatter())))
			return nil
		},
	}

	addSectionFlag(cmd)
	return cmd
}
