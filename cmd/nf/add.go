package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	var (
		amount, category, desc, date, note string
		expense, income                    bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Long: `Add a transaction to a ledger section.

The amount is signed: positive for income, negative for expenses. Pass
--expense or --income to set the direction from a plain amount instead.
Without --date the transaction is dated now.`,
		Example: `  nf add --amount 150 --expense --category Food --desc Coffee
  nf add --amount 52000 --income --category Salary --date 2025-03-01
  nf add -s vendor --amount 12000 --category "Project Payment" --desc "ABC Corp"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signed, err := parseAmount(amount, expense, income)
			if err != nil {
				return err
			}

			draft := model.Draft{
				Description: desc,
				Category:    category,
				Amount:      signed,
				Note:        model.NormalizeNote(note),
			}
			if date != "" {
				if draft.Date, err = parseDateFlag(date); err != nil {
					return err
				}
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

			txn, err := store.Add(cmd.Context(), section, draft)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %s transaction %d: %s %s",
				section, txn.ID, a.formatter().Format(txn.Amount), txn.Category)))
			if !policy.For(section).Suggests(txn.Category) {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%q is not one of the suggested %s categories", txn.Category, section)))
			}
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, negative for expenses")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "description (vendor or client name in the vendor section)")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note")
	cmd.Flags().BoolVar(&expense, "expense", false, "record the amount as an expense")
	cmd.Flags().BoolVar(&income, "income", false, "record the amount as income")
	cmd.MarkFlagsMutuallyExclusive("expense", "income")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
