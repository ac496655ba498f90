package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every transaction in a section",
		Long: `Clear removes all transactions from one section. The other section is
left untouched. This cannot be undone.`,
		Args: cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			count := len(store.Transactions(section))
			if count == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No data to clear"))
				return nil
			}

			// Confirm with user unless --yes is used
			if !yes {
				fmt.Fprintf(out, "This will delete all %d %s transactions.\n", count, section)
				ok, err := cli.NewNonBlockingReader(cmd.InOrStdin()).Confirm(cmd.Context(), out, "Are you sure you want to continue?")
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if !ok {
					fmt.Fprintln(out, "Clear canceled.")
					return nil
				}
			}

			cleared, err := store.Clear(cmd.Context(), section)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Cleared %d %s transactions", cleared, section)))
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
