package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) editCmd() *cobra.Command {
	var (
		amount, category, desc, date, note string
		expense, income                    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Edit replaces only the fields whose flags are given. The id never changes.

--expense or --income on their own flip the direction of the stored amount.
Pass an empty --note to remove a note.`,
		Example: `  nf edit 1735689600000 --amount 175
  nf edit 1735689600000 --category Transport --note "cab home"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
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
			existing, ok := store.Get(section, id)
			if !ok {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No %s transaction with id %d", section, id)))
				return nil
			}

			var patch model.Patch
			flags := cmd.Flags()
			switch {
			case flags.Changed("amount"):
				signed, parseErr := parseAmount(amount, expense, income)
				if parseErr != nil {
					return parseErr
				}
				patch.Amount = &signed
			case expense || income:
				signed := applyDirection(existing.Amount, expense, income)
				patch.Amount = &signed
			}
			if flags.Changed("desc") {
				patch.Description = &desc
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("note") {
				patch.Note = &note
			}
			if flags.Changed("date") {
				if patch.Date, err = parseDateFlag(date); err != nil {
					return err
				}
			}

			updated, _, err := store.Update(cmd.Context(), section, id, patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Updated transaction %d: %s %s",
				updated.ID, a.formatter().Format(updated.Amount), updated.Category)))
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount, negative for expenses")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "new description")
	cmd.Flags().StringVar(&date, "date", "", "new date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&note, "note", "n", "", "new note")
	cmd.Flags().BoolVar(&expense, "expense", false, "make the amount an expense")
	cmd.Flags().BoolVar(&income, "income", false, "make the amount income")
	cmd.MarkFlagsMutuallyExclusive("expense", "income")

	return cmd
}
