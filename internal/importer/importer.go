package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/meeledger/internal/encoding"
	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

const (
	colDate     = "date"
	colType     = "type"
	colStatus   = "status"
	colCategory = "category"
	colAmount   = "amount"
	colNote     = "note"
)

var requiredCols = []string{colDate, colType, colStatus, colCategory, colAmount}

// ErrNoHeader is returned when no row carries the export header.
var ErrNoHeader = errors.New("no ledger header found: expected date,type,status,category,amount columns")

// Adder is satisfied by *ledger.Store.
type Adder interface {
	Import(ctx context.Context, drafts []ledger.Draft) ([]ledger.Transaction, error)
}

type Service struct {
	store Adder
}

func NewService(store Adder) *Service {
	return &Service{store: store}
}

// Import parses r and adds every row to the store, or nothing if any row is invalid.
func (s *Service) Import(ctx context.Context, r io.Reader) ([]ledger.Transaction, error) {
	drafts, err := Parse(r)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.Import(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("importing drafts: %w", err)
	}

	return txs, nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// Parse reads a ledger export. Ids in the file are ignored; imported rows get fresh ones.
// Rows before the header (e.g. a spreadsheet title line) are skipped.
func Parse(r io.Reader) ([]ledger.Draft, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, ErrNoHeader
	}

	var drafts []ledger.Draft

	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-based, skipping header

		if isBlank(row) {
			continue
		}

		d, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		drafts = append(drafts, d)
	}

	return drafts, nil
}

func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if hasAll(cols, requiredCols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func hasAll(cols colIndex, names []string) bool {
	for _, n := range names {
		if _, ok := cols[n]; !ok {
			return false
		}
	}

	return true
}

func parseRow(cols colIndex, row []string) (ledger.Draft, error) {
	date, err := time.Parse(time.DateOnly, cellValue(row, cols[colDate]))
	if err != nil {
		return ledger.Draft{}, &ledger.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	amount, err := ledger.ParseAmount(cellValue(row, cols[colAmount]))
	if err != nil {
		return ledger.Draft{}, err
	}

	d := ledger.Draft{
		Date:     date,
		Type:     ledger.Type(cellValue(row, cols[colType])),
		Status:   ledger.Status(cellValue(row, cols[colStatus])),
		Category: cellValue(row, cols[colCategory]),
		Amount:   amount,
	}

	if idx, ok := cols[colNote]; ok {
		d.Note = cellValue(row, idx)
	}

	if err := d.Validate(); err != nil {
		return ledger.Draft{}, err
	}

	return d, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
