package main

import (
	"github.com/Veraticus/neo-finance/internal/tui"
	"github.com/Veraticus/neo-finance/internal/tui/themes"
	"github.com/spf13/cobra"
)

func (a *app) dashboardCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Dashboard shows the active section's summary, monthly trend and
transactions. Press tab to switch sections, / to search, f and c to cycle
the type and category filters, x to delete and ? for help.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(cmd.Context(), tui.Config{
				Ledger:    store,
				Formatter: a.formatter(),
				Theme:     themes.ByName(theme),
				Months:    a.settings.Months,
			})
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin)")
	return cmd
}
