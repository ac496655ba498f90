package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/ofx"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const previewRows = 10

func (a *app) importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) statements exported from
your bank into a ledger section.

Amounts keep the sign from the statement. The payee becomes the description,
the memo becomes the note, and a category is suggested from the transaction
type. A transaction seen twice (same account and FITID) is imported once.`,
		Example: `  # Import single file
  nf import-ofx ~/Downloads/hdfc_jan_2025.qfx

  # Preview every statement in a directory
  nf import-ofx --dry-run ~/Downloads/*.qfx

  # Import client payments into the vendor section
  nf import-ofx -s vendor ~/Downloads/business/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runImportOFX,
	}

	addSectionFlag(cmd)
	cmd.Flags().Bool("dry-run", false, "preview the import without saving")
	return cmd
}

func (a *app) runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	slog.Info("Importing OFX files", "file_count", len(files), "dry_run", dryRun)

	entries := parseFiles(cmd.Context(), out, files)
	if len(entries) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No transactions found in any file"))
		return nil
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

	if dryRun {
		return a.previewImport(out, section, entries)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	handler := cli.NewInterruptHandler(out, "Import")
	ctx = handler.HandleInterrupts(ctx)

	bar := newImportProgressBar(cmd.ErrOrStderr(), len(entries))
	importer := ofx.NewImporter(store, section)
	result, err := importer.Import(ctx, entries, func() {
		if barErr := bar.Add(1); barErr != nil {
			slog.Warn("Failed to update progress bar", "error", barErr)
		}
	})
	if err != nil && !(errors.Is(err, context.Canceled) && handler.WasInterrupted()) {
		return fmt.Errorf("failed to import transactions: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions into %s", result.Added, section)))
	if result.Duplicates > 0 {
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Skipped %d duplicates", result.Duplicates)))
	}
	if result.Rejected > 0 {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Rejected %d invalid transactions (see log)", result.Rejected)))
	}
	return nil
}

// expandFiles resolves glob patterns. Patterns that match nothing are kept
// when they name an existing file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}
	return files, nil
}

// parseFiles parses every file in order, skipping the ones that fail.
func parseFiles(ctx context.Context, out io.Writer, files []string) []ofx.Entry {
	parser := ofx.NewParser()

	var entries []ofx.Entry
	fmt.Fprintln(out, "📁 Files:")
	for _, path := range files {
		name := filepath.Base(path)

		f, err := os.Open(path)
		if err != nil {
			slog.Error("Failed to open file", "file", path, "error", err)
			fmt.Fprintf(out, "  - %s: %s\n", name, cli.ErrorStyle.Render("could not open"))
			continue
		}

		parsed, err := parser.ParseFile(ctx, f)
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close file", "file", path, "error", closeErr)
		}
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", path, "error", err)
			fmt.Fprintf(out, "  - %s: %s\n", name, cli.ErrorStyle.Render("not a valid OFX file"))
			continue
		}

		fmt.Fprintf(out, "  - %s: %d transactions\n", name, len(parsed))
		entries = append(entries, parsed...)
	}
	return entries
}

// previewImport shows what an import would add without touching the ledger.
func (a *app) previewImport(out io.Writer, section model.Section, entries []ofx.Entry) error {
	dedupe := ofx.NewImporter(nil, section)
	preview := make([]model.Transaction, 0, previewRows)
	unique := 0
	for _, e := range entries {
		if dedupe.IsDuplicate(e) {
			continue
		}
		unique++
		if len(preview) < previewRows {
			preview = append(preview, model.Transaction{
				Description: e.Draft.Description,
				Amount:      e.Draft.Amount,
				Category:    e.Draft.Category,
				Date:        e.Draft.Date,
				Note:        e.Draft.Note,
			})
		}
	}

	fmt.Fprintln(out)
	if err := cli.WriteTransactionTable(out, preview, policy.For(section), a.formatter()); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Dry run: %d of %d transactions would be added to %s; nothing was saved",
		unique, len(entries), section)))
	return nil
}

func newImportProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
