// Package service defines the interfaces shared between the ledger and its collaborators.
package service

import (
	"context"
)

// Snapshot keys used by the ledger. One entry per section plus the active
// section selection.
const (
	KeyIndividualTransactions = "individualTransactions"
	KeyVendorTransactions     = "vendorTransactions"
	KeyActiveSection          = "nf_active"
)

// SnapshotStore defines the contract for our persistence layer. Each key holds
// one opaque payload that is replaced as a unit on every save.
type SnapshotStore interface {
	// LoadSnapshot returns the payload for key, or an error wrapping
	// common.ErrNotFound when nothing has been saved under it.
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)
	// SaveSnapshot overwrites the payload for key.
	SaveSnapshot(ctx context.Context, key string, payload []byte) error

	Close() error
}
