package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=store.go -destination=persister_mock.go -package=ledger
type Persister interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, l Ledger) error
	Clear(ctx context.Context) error
}

// Store holds the authoritative in-memory ledger and mirrors every change to a Persister.
// Each operation runs under a single lock, persistence included, so readers never see a
// half-applied change.
type Store struct {
	mu     sync.Mutex
	ledger Ledger

	// retired holds ids of removed records; they are never handed out again.
	retired map[string]struct{}

	persister      Persister
	logger         *slog.Logger
	vocab          Vocabulary
	defaultBalance decimal.Decimal
	now            func() time.Time
	newID          func() string
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithVocabulary(v Vocabulary) Option {
	return func(s *Store) { s.vocab = v }
}

func WithDefaultBalance(d decimal.Decimal) Option {
	return func(s *Store) { s.defaultBalance = d }
}

// WithClock overrides the source of "today" for drafts without a date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:      p,
		logger:         slog.Default(),
		vocab:          DefaultVocabulary,
		defaultBalance: DefaultStartingBalance,
		now:            time.Now,
		newID:          uuid.NewString,
		retired:        make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.ledger = Empty(s.defaultBalance)

	return s
}

// Load replaces the in-memory ledger with the persisted one.
// On error the store keeps an empty ledger and stays usable in memory.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.persister.Load(ctx)
	if err != nil {
		s.ledger = Empty(s.defaultBalance)
		return fmt.Errorf("loading ledger: %w", err)
	}

	if l.Records == nil {
		l.Records = []Transaction{}
	}

	s.ledger = l

	return nil
}

// Save writes the current ledger to the persister.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Save(ctx, s.ledger.Clone()); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	return nil
}

// persist must be called with s.mu held.
func (s *Store) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.ledger.Clone()); err != nil {
		s.logger.Warn("failed to persist ledger, continuing in memory", "error", err)
	}
}

// Add validates d and prepends it as a new record.
func (s *Store) Add(ctx context.Context, d Draft) (Transaction, error) {
	if err := d.Validate(); err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.build(d, nil)
	s.ledger.Records = slices.Insert(s.ledger.Records, 0, tx)
	s.persist(ctx)

	s.logger.Debug("transaction added", "id", tx.ID, "type", tx.Type, "status", tx.Status)

	return tx, nil
}

// Import adds every draft or none of them. Drafts are given in display order
// (newest first), the same order Export writes them in.
func (s *Store) Import(ctx context.Context, drafts []Draft) ([]Transaction, error) {
	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("draft %d: %w", i+1, err)
		}
	}

	if len(drafts) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reserved := make(map[string]struct{}, len(drafts))
	txs := make([]Transaction, len(drafts))

	for i, d := range drafts {
		txs[i] = s.build(d, reserved)
		reserved[txs[i].ID] = struct{}{}
	}

	s.ledger.Records = slices.Insert(s.ledger.Records, 0, txs...)
	s.persist(ctx)

	s.logger.Info("transactions imported", "count", len(txs))

	return txs, nil
}

// build must be called with s.mu held. Ids already present in the ledger, retired
// or in reserved are never handed out.
func (s *Store) build(d Draft, reserved map[string]struct{}) Transaction {
	date := d.Date
	if date.IsZero() {
		date = s.now()
	}

	id := s.newID()
	for s.taken(id, reserved) {
		id = s.newID()
	}

	return Transaction{
		ID:       id,
		Date:     DateOnly(date),
		Type:     d.Type,
		Status:   d.Status,
		Category: strings.TrimSpace(d.Category),
		Amount:   d.Amount,
		Note:     d.Note,
	}
}

func (s *Store) taken(id string, reserved map[string]struct{}) bool {
	if _, ok := reserved[id]; ok {
		return true
	}

	if _, ok := s.retired[id]; ok {
		return true
	}

	return s.indexOf(id) >= 0
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.ledger.Records, func(t Transaction) bool { return t.ID == id })
}

// Remove deletes the record with the given id. Unknown ids are ignored.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.retired[id] = struct{}{}
	s.ledger.Records = slices.Delete(s.ledger.Records, idx, idx+1)
	s.persist(ctx)

	return nil
}

// Confirm turns a forecast record into an actual one. Unknown ids and records
// that are already actual are left alone.
func (s *Store) Confirm(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 || s.ledger.Records[idx].Status != StatusForecast {
		return nil
	}

	s.ledger.Records[idx].Status = StatusActual
	s.persist(ctx)

	return nil
}

// SetStartingBalance replaces the starting balance. Negative values represent debt.
func (s *Store) SetStartingBalance(ctx context.Context, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.StartingBalance = balance
	s.persist(ctx)

	return nil
}

// Reset drops every record, restores the default balance and removes the stored copy.
// When the stored copy cannot be cleared it is overwritten with the empty ledger instead.
// An error is returned only if both fail.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.ledger.Records {
		s.retired[t.ID] = struct{}{}
	}

	s.ledger = Empty(s.defaultBalance)

	if err := s.persister.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear stored ledger, overwriting it", "error", err)

		if saveErr := s.persister.Save(ctx, s.ledger.Clone()); saveErr != nil {
			return fmt.Errorf("resetting stored ledger: %w", errors.Join(err, saveErr))
		}
	}

	s.logger.Info("ledger reset")

	return nil
}

// Snapshot returns a copy of the current ledger.
func (s *Store) Snapshot() Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Clone()
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Transaction{}, false
	}

	return s.ledger.Records[idx], true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ledger.Records)
}

func (s *Store) Summary() Summary {
	return s.vocab.Summarize(s.Snapshot())
}

func (s *Store) Segments() []Segment {
	return Segments(s.Summary())
}

func (s *Store) Vocabulary() Vocabulary {
	return s.vocab
}
