// Package testutil provides ledger fixtures backed by real storage.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/neo-finance/internal/ledger"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/storage"
)

// DefaultNow is the clock used by SetupTestLedger.
var DefaultNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

// TestLedger is a ledger over a migrated in-memory SQLite database.
type TestLedger struct {
	Store     *ledger.Store
	Snapshots *storage.SQLiteStorage
	t         *testing.T
	now       func() time.Time
}

// SetupTestLedger creates a loaded, empty ledger. It automatically handles
// migrations and cleanup.
//
// Example:
//
//	tl := testutil.SetupTestLedger(t)
//	tl.Seed(model.SectionIndividual, txns.NewBuilder(t).WithFixture(txns.Household).Drafts()...)
func SetupTestLedger(t *testing.T) *TestLedger {
	t.Helper()

	snapshots, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := snapshots.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = snapshots.Close()
	})

	tl := &TestLedger{
		Snapshots: snapshots,
		t:         t,
		now:       func() time.Time { return DefaultNow },
	}
	tl.Store = tl.Reopen()
	return tl
}

// Seed adds drafts to section and returns the stored transactions.
func (tl *TestLedger) Seed(section model.Section, drafts ...model.Draft) []model.Transaction {
	tl.t.Helper()

	out := make([]model.Transaction, 0, len(drafts))
	for _, d := range drafts {
		txn, err := tl.Store.Add(context.Background(), section, d)
		if err != nil {
			tl.t.Fatalf("failed to seed %q: %v", d.Description, err)
		}
		out = append(out, txn)
	}
	return out
}

// Reopen returns a fresh ledger loaded from the same database, as a new
// process would see it.
func (tl *TestLedger) Reopen() *ledger.Store {
	tl.t.Helper()
	store := ledger.New(tl.Snapshots, ledger.WithClock(tl.now))
	store.Load(context.Background())
	return store
}

// MustSnapshot returns the raw payload stored under key.
func (tl *TestLedger) MustSnapshot(key string) []byte {
	tl.t.Helper()
	payload, err := tl.Snapshots.LoadSnapshot(context.Background(), key)
	if err != nil {
		tl.t.Fatalf("failed to load snapshot %q: %v", key, err)
	}
	return payload
}
