package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/spf13/cobra"
)

func (a *app) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete transactions by id",
		Long: `Delete one or more transactions from the active section. Each one is shown
and confirmed before it is removed unless --yes is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
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

			out := cmd.OutOrStdout()
			reader := cli.NewNonBlockingReader(cmd.InOrStdin())
			for _, id := range ids {
				txn, ok := store.Get(section, id)
				if !ok {
					fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No %s transaction with id %d", section, id)))
					continue
				}
				if !yes {
					if err := cli.WriteTransactionTable(out, []model.Transaction{txn}, policy.For(section), a.formatter()); err != nil {
						return err
					}
					confirmed, err := reader.Confirm(cmd.Context(), out, "Delete this transaction?")
					if err != nil {
						return err
					}
					if !confirmed {
						fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Kept transaction %d", id)))
						continue
					}
				}

				removed, err := store.Remove(cmd.Context(), section, id)
				if err != nil {
					return fmt.Errorf("failed to delete transaction %d: %w", id, err)
				}
				if removed {
					fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
				} else {
					fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No %s transaction with id %d", section, id)))
				}
			}
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompts")
	return cmd
}
