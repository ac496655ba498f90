package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/spf13/cobra"
)

func (a *app) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balance, income and expenses",
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

			vocab := policy.For(section)
			summary := analytics.Summarize(store.Transactions(section))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s summary", section)))
			fmt.Fprintln(out, cli.RenderSummary(summary, vocab.Labels, a.formatter()))
			return nil
		},
	}

	addSectionFlag(cmd)
	return cmd
}
