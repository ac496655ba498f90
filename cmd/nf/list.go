package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/Veraticus/neo-finance/internal/query"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var search, sign, category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, newest first",
		Long: `List shows the transactions of a section, newest first.

--search matches the description or the note, ignoring case.
--type keeps only income or only expenses.
--category keeps one category; "all" disables the filter.`,
		Example: `  nf list --type expense --category Food
  nf list -s vendor --search "abc corp"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedSign, err := query.ParseSign(sign)
			if err != nil {
				return common.NewUserError("Use --type all, income or expense", err)
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

			all := store.Transactions(section)
			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No %s transactions yet", section)))
				return nil
			}

			visible := query.Apply(all, query.Filter{Text: search, Sign: parsedSign, Category: category})
			if len(visible) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No transactions match the current filters"))
				return nil
			}

			if err := cli.WriteTransactionTable(out, visible, policy.For(section), a.formatter()); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nShowing %d of %d %s transactions\n", len(visible), len(all), section)
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().StringVarP(&search, "search", "q", "", "text to find in description or note")
	cmd.Flags().StringVarP(&sign, "type", "t", string(query.SignAll), "all, income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", query.AllCategories, "category to show")
	return cmd
}
