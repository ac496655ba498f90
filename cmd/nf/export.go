package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/config"
	"github.com/Veraticus/neo-finance/internal/export"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a section as CSV",
		Long: `Export writes every transaction of a section, in stored order, to
{section}_transactions_{YYYY-MM-DD}.csv in the output directory.
Use --out - to write to standard output.`,
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

			txns := store.Transactions(section)
			if outDir == "-" {
				return export.WriteCSV(cmd.OutOrStdout(), txns)
			}

			dir := config.ExpandPath(outDir)
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(dir, export.FileName(section, a.now()))

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			if err := export.WriteCSV(f, txns); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to write export: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close export file: %w", err)
			}

			slog.Debug("Exported section", "section", section, "path", path, "count", len(txns))
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(txns), path)))
			return nil
		},
	}

	addSectionFlag(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory, or - for stdout")
	return cmd
}
