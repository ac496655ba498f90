package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List suggested and used categories",
		Long: `Categories prints the categories suggested for a section, followed by any
other category already used in either section. Any text is accepted as a
category; the suggestions are only a starting point.`,
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

			vocab := policy.For(section)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Suggested %s categories", section)))
			for _, c := range vocab.Categories() {
				fmt.Fprintf(out, "  %s\n", c)
			}

			var custom []string
			for _, c := range store.UsedCategories() {
				if !vocab.Suggests(c) {
					custom = append(custom, c)
				}
			}
			if len(custom) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, cli.SubtitleStyle.Render("Also in use"))
				for _, c := range custom {
					fmt.Fprintf(out, "  %s\n", cli.SubtleStyle.Render(c))
				}
			}
			return nil
		},
	}

	addSectionFlag(cmd)
	return cmd
}
