package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input into a positive amount.
// Thousand separators ("1,234.50") are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "is required"}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "is not a number"}
	}

	if !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	return d, nil
}

// Validate checks a draft without touching any store.
func (d Draft) Validate() error {
	if !d.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	if strings.TrimSpace(d.Category) == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}

	if !d.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be income, expense or invest"}
	}

	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be actual or forecast"}
	}

	return nil
}
