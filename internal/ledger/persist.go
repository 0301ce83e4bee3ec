package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/meeledger/internal/storage"
)

const (
	KeyRecords         = "budget_tx"
	KeyStartingBalance = "budget_start"
)

//go:generate mockgen -source=persist.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Bridge mirrors a Ledger into two keys of a key-value Repository.
type Bridge struct {
	repo           Repository
	defaultBalance decimal.Decimal
	logger         *slog.Logger
}

func NewBridge(repo Repository, defaultBalance decimal.Decimal, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bridge{repo: repo, defaultBalance: defaultBalance, logger: logger}
}

// record is the stored shape of a Transaction.
type record struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Type     Type        `json:"type"`
	Status   Status      `json:"status"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount"`
	Note     string      `json:"note,omitempty"`
}

// Load reads the stored ledger. Missing or undecodable keys fall back to defaults;
// only repository failures are returned, together with the default ledger.
func (b *Bridge) Load(ctx context.Context) (Ledger, error) {
	l := Empty(b.defaultBalance)

	raw, found, err := b.get(ctx, KeyRecords)
	if err != nil {
		return l, err
	}

	if found {
		records, err := decodeRecords(raw)
		if err != nil {
			b.logger.Debug("ignoring stored records", "error", &StorageDecodeError{Key: KeyRecords, Err: err})
		} else {
			l.Records = records
		}
	}

	raw, found, err = b.get(ctx, KeyStartingBalance)
	if err != nil {
		return Empty(b.defaultBalance), err
	}

	if found {
		balance, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			b.logger.Debug("ignoring stored starting balance", "error", &StorageDecodeError{Key: KeyStartingBalance, Err: err})
		} else {
			l.StartingBalance = balance
		}
	}

	return l, nil
}

func (b *Bridge) get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}

	return v, true, nil
}

// Save writes both keys.
func (b *Bridge) Save(ctx context.Context, l Ledger) error {
	raw, err := encodeRecords(l.Records)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if err := b.repo.Put(ctx, KeyRecords, raw); err != nil {
		return fmt.Errorf("writing %s: %w", KeyRecords, err)
	}

	if err := b.repo.Put(ctx, KeyStartingBalance, l.StartingBalance.String()); err != nil {
		return fmt.Errorf("writing %s: %w", KeyStartingBalance, err)
	}

	return nil
}

// Clear removes both keys so the next Load behaves like a first run.
func (b *Bridge) Clear(ctx context.Context) error {
	if err := b.repo.Delete(ctx, KeyRecords, KeyStartingBalance); err != nil {
		return fmt.Errorf("clearing ledger keys: %w", err)
	}

	return nil
}

func encodeRecords(txs []Transaction) (string, error) {
	out := make([]record, len(txs))
	for i, t := range txs {
		out[i] = record{
			ID:       t.ID,
			Date:     t.Date.Format(time.DateOnly),
			Type:     t.Type,
			Status:   t.Status,
			Category: t.Category,
			Amount:   json.Number(t.Amount.String()),
			Note:     t.Note,
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// decodeRecords rejects the whole payload if any record breaks a ledger invariant.
func decodeRecords(raw string) ([]Transaction, error) {
	var in []record
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(in))
	txs := make([]Transaction, 0, len(in))

	for i, r := range in {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}

		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, r.ID)
		}

		seen[r.ID] = struct{}{}

		if !r.Type.Valid() || !r.Status.Valid() {
			return nil, fmt.Errorf("record %d: unknown type %q or status %q", i, r.Type, r.Status)
		}

		date, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if !amount.IsPositive() {
			return nil, fmt.Errorf("record %d: non-positive amount", i)
		}

		txs = append(txs, Transaction{
			ID:       r.ID,
			Date:     date,
			Type:     r.Type,
			Status:   r.Status,
			Category: r.Category,
			Amount:   amount,
			Note:     r.Note,
		})
	}

	return txs, nil
}
