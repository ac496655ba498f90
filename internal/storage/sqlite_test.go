package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// backends returns one fresh instance of every SnapshotStore implementation.
func backends(t *testing.T) map[string]service.SnapshotStore {
	t.Helper()

	sqliteStore, cleanup := createTestStorage(t)
	t.Cleanup(cleanup)

	memStore, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, memStore.Migrate(context.Background()))
	t.Cleanup(func() { _ = memStore.Close() })

	fileStore, err := NewFileStorage(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)

	return map[string]service.SnapshotStore{
		"sqlite":        sqliteStore,
		"sqlite memory": memStore,
		"file":          fileStore,
	}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			payload := []byte(`[{"id":1,"amount":"-150","category":"Food"}]`)
			require.NoError(t, store.SaveSnapshot(ctx, service.KeyIndividualTransactions, payload))

			got, err := store.LoadSnapshot(ctx, service.KeyIndividualTransactions)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestSnapshotStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SaveSnapshot(ctx, service.KeyActiveSection, []byte(`"individual"`)))
			require.NoError(t, store.SaveSnapshot(ctx, service.KeyActiveSection, []byte(`"vendor"`)))

			got, err := store.LoadSnapshot(ctx, service.KeyActiveSection)
			require.NoError(t, err)
			assert.Equal(t, `"vendor"`, string(got))
		})
	}
}

func TestSnapshotStore_MissingKey(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.LoadSnapshot(ctx, service.KeyVendorTransactions)
			assert.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestSnapshotStore_Validation(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, store.SaveSnapshot(ctx, "", []byte(`[]`)), ErrEmptyString)
			assert.ErrorIs(t, store.SaveSnapshot(ctx, "../escape", []byte(`[]`)), ErrInvalidKey)
			assert.ErrorIs(t, store.SaveSnapshot(ctx, "ok", nil), ErrNilParameter)
			//nolint:staticcheck // nil context is the case under test
			_, err := store.LoadSnapshot(nil, "ok")
			assert.ErrorIs(t, err, ErrNilContext)
		})
	}
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "ledger.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SaveSnapshot(ctx, "k", []byte("payload")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	got, err := reopened.LoadSnapshot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
