package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/config"
	"github.com/Veraticus/neo-finance/internal/ledger"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/money"
	"github.com/Veraticus/neo-finance/internal/service"
	"github.com/Veraticus/neo-finance/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// initStorage opens the configured snapshot backend.
func (a *app) initStorage(ctx context.Context) (service.SnapshotStore, error) {
	switch a.settings.Backend {
	case config.BackendFile:
		store, err := storage.NewFileStorage(a.settings.SnapshotDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		store, err := storage.NewSQLiteStorage(a.settings.DatabasePath)
		if err != nil {
			return nil, err
		}

		// Run migrations
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	}
}

// openLedger loads the ledger from storage. The returned cleanup closes the backend.
func (a *app) openLedger(ctx context.Context) (*ledger.Store, func(), error) {
	snapshots, err := a.initStorage(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := ledger.New(snapshots, ledger.WithClock(a.now))
	store.Load(ctx)

	cleanup := func() {
		if err := snapshots.Close(); err != nil {
			slog.Warn("failed to close storage", "error", err)
		}
	}
	return store, cleanup, nil
}

func (a *app) formatter() *money.Formatter {
	f, err := a.settings.Formatter()
	if err != nil {
		return money.Default()
	}
	return f
}

// addSectionFlag registers --section on cmd.
func addSectionFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("section", "s", "", "ledger section (individual, vendor); defaults to the active section")
}

// resolveSection returns the --section flag value or the active section.
func resolveSection(cmd *cobra.Command, store *ledger.Store) (model.Section, error) {
	name, _ := cmd.Flags().GetString("section")
	if strings.TrimSpace(name) == "" {
		return store.Active(), nil
	}
	section, err := model.ParseSection(name)
	if err != nil {
		return "", common.NewUserError(fmt.Sprintf("Unknown section %q (use individual or vendor)", name), err)
	}
	return section, nil
}

// parseAmount reads a decimal amount and applies the direction flags.
func parseAmount(raw string, expense, income bool) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, common.NewUserError("Enter a valid amount", fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, raw))
	}
	return applyDirection(amount, expense, income), nil
}

// applyDirection forces the sign of amount when a direction flag is set.
func applyDirection(amount decimal.Decimal, expense, income bool) decimal.Decimal {
	switch {
	case expense:
		return amount.Abs().Neg()
	case income:
		return amount.Abs()
	default:
		return amount
	}
}

func parseDateFlag(raw string) (*time.Time, error) {
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, common.NewUserError("Enter a date as YYYY-MM-DD", err)
	}
	return &d, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, common.NewUserError(fmt.Sprintf("Invalid transaction id %q", raw), err)
	}
	return id, nil
}
