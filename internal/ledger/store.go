// Package ledger owns the transaction collections of both sections and keeps
// them in step with their persisted snapshots.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/service"
)

// Validation errors returned by Add and Update.
var (
	ErrInvalidAmount   = errors.New("amount must be non-zero")
	ErrMissingCategory = errors.New("category is required")
)

// OtherCategory collects transactions recorded without a category.
const OtherCategory = "Other"

// Store is the single owner of ledger state. Readers only ever receive copies.
type Store struct {
	snapshots service.SnapshotStore
	now       func() time.Time
	sections  map[model.Section][]model.Transaction
	active    model.Section
	lastID    int64
	mu        sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store backed by snapshots. Call Load to restore state.
func New(snapshots service.SnapshotStore, opts ...Option) *Store {
	s := &Store{
		snapshots: snapshots,
		now:       time.Now,
		sections:  make(map[model.Section][]model.Transaction, 2),
		active:    model.DefaultSection,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sectionKey(section model.Section) string {
	if section == model.SectionVendor {
		return service.KeyVendorTransactions
	}
	return service.KeyIndividualTransactions
}

// Load restores both sections and the active section. A missing or unreadable
// snapshot yields an empty collection; problems are logged, never returned.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// lastID only grows so ids minted before a reload are never reissued.
	for _, section := range model.Sections() {
		txns := s.loadSection(ctx, section)
		s.sections[section] = txns
		for _, t := range txns {
			if t.ID > s.lastID {
				s.lastID = t.ID
			}
		}
	}
	s.active = s.loadActive(ctx)
}

func (s *Store) loadSection(ctx context.Context, section model.Section) []model.Transaction {
	key := sectionKey(section)
	payload, err := s.snapshots.LoadSnapshot(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			slog.Warn("Failed to read snapshot, starting empty", "section", section, "error", err)
		}
		return []model.Transaction{}
	}

	var txns []model.Transaction
	if err := json.Unmarshal(payload, &txns); err != nil {
		slog.Warn("Corrupt snapshot, starting empty", "section", section, "error", err)
		return []model.Transaction{}
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	slog.Debug("Loaded section", "section", section, "transactions", len(txns))
	return txns
}

func (s *Store) loadActive(ctx context.Context) model.Section {
	payload, err := s.snapshots.LoadSnapshot(ctx, service.KeyActiveSection)
	if err != nil {
		return model.DefaultSection
	}

	var name string
	if err := json.Unmarshal(payload, &name); err != nil {
		// Older snapshots stored the bare name.
		name = string(payload)
	}
	section, err := model.ParseSection(name)
	if err != nil {
		slog.Warn("Ignoring unknown active section", "value", name)
		return model.DefaultSection
	}
	return section
}

// persist writes the full collection of section. Callers hold the write lock.
func (s *Store) persist(ctx context.Context, section model.Section) error {
	txns := s.sections[section]
	if txns == nil {
		txns = []model.Transaction{}
	}
	payload, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", section, err)
	}
	if err := s.snapshots.SaveSnapshot(ctx, sectionKey(section), payload); err != nil {
		return fmt.Errorf("failed to persist %s transactions: %w", section, err)
	}
	return nil
}

// commit swaps in next for section and persists it, restoring the previous
// collection if the write fails.
func (s *Store) commit(ctx context.Context, section model.Section, next []model.Transaction) error {
	prev := s.sections[section]
	s.sections[section] = next
	if err := s.persist(ctx, section); err != nil {
		s.sections[section] = prev
		return err
	}
	return nil
}

func validate(txn model.Transaction) error {
	if txn.Amount.IsZero() {
		return common.NewUserError("Enter a valid amount", ErrInvalidAmount)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return common.NewUserError("Please fill all required fields", ErrMissingCategory)
	}
	return nil
}

func checkSection(section model.Section) error {
	if !section.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownSection, section)
	}
	return nil
}

// mintID returns an id greater than every id handed out so far.
func (s *Store) mintID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add validates draft, appends it to section with a fresh id, and persists.
func (s *Store) Add(ctx context.Context, section model.Section, draft model.Draft) (model.Transaction, error) {
	if err := checkSection(section); err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Description: strings.TrimSpace(draft.Description),
		Amount:      draft.Amount,
		Category:    strings.TrimSpace(draft.Category),
	}
	if draft.Note != nil {
		txn.Note = model.NormalizeNote(*draft.Note)
	}
	if err := validate(txn); err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if draft.Date != nil {
		d := *draft.Date
		txn.Date = &d
	} else {
		txn.Date = &now
	}

	prevID := s.lastID
	txn.ID = s.mintID(now)

	current := s.sections[section]
	next := make([]model.Transaction, len(current), len(current)+1)
	copy(next, current)
	next = append(next, txn)

	if err := s.commit(ctx, section, next); err != nil {
		s.lastID = prevID
		return model.Transaction{}, err
	}

	slog.Debug("Added transaction", "section", section, "id", txn.ID, "amount", txn.Amount.String())
	return txn.Clone(), nil
}

func indexOf(txns []model.Transaction, id int64) int {
	for i, t := range txns {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Update merges patch into the transaction with id. The boolean is false when
// no such transaction exists, in which case nothing changes.
func (s *Store) Update(ctx context.Context, section model.Section, id int64, patch model.Patch) (model.Transaction, bool, error) {
	if err := checkSection(section); err != nil {
		return model.Transaction{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.sections[section]
	idx := indexOf(current, id)
	if idx < 0 {
		slog.Debug("Update ignored, transaction not found", "section", section, "id", id)
		return model.Transaction{}, false, nil
	}

	updated := patch.Apply(current[idx])
	if err := validate(updated); err != nil {
		return model.Transaction{}, true, err
	}

	next := make([]model.Transaction, len(current))
	copy(next, current)
	next[idx] = updated

	if err := s.commit(ctx, section, next); err != nil {
		return model.Transaction{}, true, err
	}
	return updated.Clone(), true, nil
}

// Remove deletes the transaction with id if present and persists the section.
func (s *Store) Remove(ctx context.Context, section model.Section, id int64) (bool, error) {
	if err := checkSection(section); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.sections[section]
	next := make([]model.Transaction, 0, len(current))
	for _, t := range current {
		if t.ID != id {
			next = append(next, t)
		}
	}
	removed := len(next) != len(current)

	if err := s.commit(ctx, section, next); err != nil {
		return false, err
	}
	return removed, nil
}

// Clear empties section and returns how many transactions were dropped.
func (s *Store) Clear(ctx context.Context, section model.Section) (int, error) {
	if err := checkSection(section); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.sections[section])
	if err := s.commit(ctx, section, []model.Transaction{}); err != nil {
		return 0, err
	}
	return count, nil
}

// Transactions returns a copy of section's collection in stored order.
func (s *Store) Transactions(section model.Section) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.sections[section]
	out := make([]model.Transaction, len(current))
	for i, t := range current {
		out[i] = t.Clone()
	}
	return out
}

// Get returns a copy of one transaction.
func (s *Store) Get(section model.Section, id int64) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.sections[section]
	if idx := indexOf(current, id); idx >= 0 {
		return current[idx].Clone(), true
	}
	return model.Transaction{}, false
}

// Active returns the currently selected section.
func (s *Store) Active() model.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive selects section and persists the choice.
func (s *Store) SetActive(ctx context.Context, section model.Section) error {
	if err := checkSection(section); err != nil {
		return err
	}

	payload, err := json.Marshal(string(section))
	if err != nil {
		return fmt.Errorf("failed to encode active section: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.SaveSnapshot(ctx, service.KeyActiveSection, payload); err != nil {
		return fmt.Errorf("failed to persist active section: %w", err)
	}
	s.active = section
	return nil
}

// UsedCategories lists every category recorded in either section in
// first-seen order. Blank categories count as Other.
func (s *Store) UsedCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, section := range model.Sections() {
		for _, t := range s.sections[section] {
			cat := t.Category
			if strings.TrimSpace(cat) == "" {
				cat = OtherCategory
			}
			if strings.EqualFold(cat, "all") {
				continue
			}
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}
