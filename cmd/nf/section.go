package main

import (
	"fmt"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) sectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "section [individual|vendor]",
		Short: "Show or switch the active section",
		Long: `Without an argument, section prints the active section. With one, it makes
that section the default for every other command. The choice is saved.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.SectionIndividual), string(model.SectionVendor)},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				active := store.Active()
				for _, s := range model.Sections() {
					marker := "  "
					if s == active {
						marker = cli.SuccessStyle.Render("▸") + " "
					}
					fmt.Fprintf(out, "%s%s (%d transactions)\n", marker, s, len(store.Transactions(s)))
				}
				return nil
			}

			section, err := model.ParseSection(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown section %q (use individual or vendor)", args[0]), err)
			}
			if err := store.SetActive(cmd.Context(), section); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Active section is now %s", section)))
			return nil
		},
	}
}
