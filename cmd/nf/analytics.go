package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/spf13/cobra"
)

func (a *app) analyticsCmd() *cobra.Command {
	var months, width int

	cmd := &cobra.Command{
		Use:     "analytics",
		Aliases: []string{"chart"},
		Short:   "Chart spending by category and net by month",
		Long: `Analytics draws two charts for a section: the absolute total of each
category, and the net amount of each of the last N calendar months ending
with the current one. Undated transactions are placed by when they were added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("months") {
				months = a.settings.Months
			}
			if months < 1 {
				return common.NewUserError("--months must be at least 1", nil)
			}

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
			f := a.formatter()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s analytics", section)))
			fmt.Fprintln(out, cli.BoldStyle.Render(cli.ChartIcon+" By category"))
			fmt.Fprintln(out, cli.RenderBars(cli.CategoryBars(analytics.CategoryTotals(txns)), width, f))
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.BoldStyle.Render(fmt.Sprintf("%s Net, last %d months", cli.ChartIcon, months)))
			fmt.Fprintln(out, cli.RenderBars(cli.MonthlyBars(analytics.MonthlySeriesAt(txns, months, a.now())), width, f))
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().IntVarP(&months, "months", "m", 0, "number of months to chart (default from analytics.months)")
	cmd.Flags().IntVarP(&width, "width", "w", cli.DefaultBarWidth, "width of the longest bar")
	return cmd
}
