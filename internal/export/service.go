package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

// Header is the first row of every export.
var Header = []string{"id", "date", "type", "status", "category", "amount", "note"}

// Snapshotter is satisfied by *ledger.Store.
type Snapshotter interface {
	Snapshot() ledger.Ledger
}

// Service writes the ledger out as CSV.
type Service struct {
	ledger Snapshotter
	now    func() time.Time
}

func NewService(l Snapshotter) *Service {
	return &Service{ledger: l, now: time.Now}
}

// Filename names the export after the current month, e.g. budget-2026-10.csv.
func (s *Service) Filename() string {
	return fmt.Sprintf("budget-%s.csv", ledger.Month(s.now()))
}

// Write writes the header and one row per record, in store order.
func (s *Service) Write(w io.Writer) error {
	return WriteCSV(w, s.ledger.Snapshot().Records)
}

// ExportToDir writes the export into dir and returns the file path.
func (s *Service) ExportToDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, s.Filename())

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := s.Write(f); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing file: %w", err)
	}

	return path, nil
}

// WriteCSV writes records as comma-separated rows. Commas inside notes are replaced
// by spaces so every row keeps exactly seven columns. Fields that start with a space or
// contain quotes are quoted, so a note like ", ok" is written as "  ok".
func WriteCSV(w io.Writer, records []ledger.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range records {
		row := []string{
			t.ID,
			t.Date.Format(time.DateOnly),
			string(t.Type),
			string(t.Status),
			t.Category,
			t.Amount.String(),
			strings.ReplaceAll(t.Note, ",", " "),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// GenerateSummary renders the summary figures as plain text lines.
// A nil format prints plain decimals.
func GenerateSummary(s ledger.Summary, format func(decimal.Decimal) string) string {
	if format == nil {
		format = decimal.Decimal.String
	}

	var sb strings.Builder

	lines := []struct {
		label string
		value decimal.Decimal
	}{
		{"ปัจจุบัน", s.CurrentBalance},
		{"ลงทุน (ออมทอง, เทรด, ซื้อหุ้น)", s.InvestedActual},
		{"เงินคาดการณ์ รายรับ", s.ForecastIncome},
		{"เงินคาดการณ์ รายจ่าย", s.ForecastExpense},
		{"รวมเงินคาดการณ์ (สุทธิ)", s.NetForecast},
		{"รวม (ปัจจุบัน + คาดการณ์ + ลงทุน)", s.CombinedProjection},
	}

	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("* %s | %s\n", l.label, format(l.value)))
	}

	return sb.String()
}
