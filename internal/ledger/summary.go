package ledger

import "github.com/shopspring/decimal"

// Summary holds the figures derived from a ledger. Actual and forecast amounts are
// kept apart so unconfirmed records never move the current balance.
type Summary struct {
	ActualIncome    decimal.Decimal
	ActualExpense   decimal.Decimal // invest records included
	ForecastIncome  decimal.Decimal
	ForecastExpense decimal.Decimal
	InvestedActual  decimal.Decimal

	CurrentBalance     decimal.Decimal
	NetForecast        decimal.Decimal
	CombinedProjection decimal.Decimal
}

// Summarize derives the summary using the default vocabulary.
func Summarize(l Ledger) Summary {
	return DefaultVocabulary.Summarize(l)
}

// Summarize derives the summary of l. Money moved into investments is counted both
// as an actual expense and as invested.
func (v Vocabulary) Summarize(l Ledger) Summary {
	var s Summary

	for _, t := range l.Records {
		switch t.Status {
		case StatusActual:
			if t.Type == TypeIncome {
				s.ActualIncome = s.ActualIncome.Add(t.Amount)
			} else {
				s.ActualExpense = s.ActualExpense.Add(t.Amount)
			}

			if t.Type == TypeInvest || (t.Type == TypeExpense && v.IsInvestment(t.Category)) {
				s.InvestedActual = s.InvestedActual.Add(t.Amount)
			}
		case StatusForecast:
			switch t.Type {
			case TypeIncome:
				s.ForecastIncome = s.ForecastIncome.Add(t.Amount)
			case TypeExpense, TypeInvest:
				s.ForecastExpense = s.ForecastExpense.Add(t.Amount)
			}
		}
	}

	s.CurrentBalance = l.StartingBalance.Add(s.ActualIncome).Sub(s.ActualExpense)
	s.NetForecast = s.ForecastIncome.Sub(s.ForecastExpense)
	s.CombinedProjection = s.CurrentBalance.Add(s.InvestedActual).Add(s.NetForecast)

	return s
}
