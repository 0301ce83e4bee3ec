package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

const dbTimeout = 5 * time.Second

var printer = message.NewPrinter(language.Thai)

// FormatAmount renders d with Thai digit grouping and at most two fraction digits.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatSigned prefixes the amount with + for income and - for everything else.
func FormatSigned(t ledger.Type, d decimal.Decimal) string {
	if t == ledger.TypeIncome {
		return "+" + FormatAmount(d)
	}

	return "-" + FormatAmount(d)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// TypeLabel is the Thai label shown for a transaction type.
func TypeLabel(t ledger.Type) string {
	switch t {
	case ledger.TypeIncome:
		return "รายรับ"
	case ledger.TypeExpense:
		return "รายจ่าย"
	case ledger.TypeInvest:
		return "ลงทุน"
	}

	return string(t)
}

// StatusLabel is the Thai label shown for a transaction status.
func StatusLabel(s ledger.Status) string {
	switch s {
	case ledger.StatusActual:
		return "จริง"
	case ledger.StatusForecast:
		return "คาดการณ์"
	}

	return string(s)
}

// DbCtx returns a context with a standard timeout for storage operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
