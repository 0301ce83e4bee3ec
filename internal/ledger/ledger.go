package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the kind of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
	TypeInvest  Type = "invest"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeInvest:
		return true
	}

	return false
}

// Status tells whether a transaction has happened or is only planned.
type Status string

const (
	StatusActual   Status = "actual"
	StatusForecast Status = "forecast"
)

func (s Status) Valid() bool {
	return s == StatusActual || s == StatusForecast
}

// DefaultStartingBalance is used when no balance has been stored yet.
var DefaultStartingBalance = decimal.RequireFromString("78956.64")

// Transaction is a single ledger record.
type Transaction struct {
	ID       string
	Date     time.Time // UTC midnight
	Type     Type
	Status   Status
	Category string
	Amount   decimal.Decimal // always > 0
	Note     string
}

// Ledger is the starting balance plus every record, newest first.
type Ledger struct {
	StartingBalance decimal.Decimal
	Records         []Transaction
}

// Empty returns a ledger with no records and the given balance.
func Empty(startingBalance decimal.Decimal) Ledger {
	return Ledger{StartingBalance: startingBalance, Records: []Transaction{}}
}

// Clone returns a copy that shares no slice memory with l.
func (l Ledger) Clone() Ledger {
	records := make([]Transaction, len(l.Records))
	copy(records, l.Records)

	return Ledger{StartingBalance: l.StartingBalance, Records: records}
}

// Draft carries the user-supplied fields of a new transaction.
type Draft struct {
	Date     time.Time // zero means today
	Type     Type
	Status   Status
	Category string
	Amount   decimal.Decimal
	Note     string
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Month formats t as YYYY-MM.
func Month(t time.Time) string {
	return t.Format("2006-01")
}
