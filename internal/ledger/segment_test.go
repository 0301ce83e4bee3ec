package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

func TestSegments(t *testing.T) {
	type testCase struct {
		name     string
		summary  ledger.Summary
		wantKeys []string
	}

	tests := []testCase{
		{
			name:     "AllZeroYieldsPlaceholder",
			summary:  ledger.Summary{},
			wantKeys: []string{ledger.SegmentEmpty},
		},
		{
			name: "NegativeBalanceDropped",
			summary: ledger.Summary{
				CurrentBalance:  dec("-300"),
				InvestedActual:  dec("300"),
				ForecastExpense: dec("50"),
			},
			wantKeys: []string{ledger.SegmentInvest, ledger.SegmentForecastExpense},
		},
		{
			name:     "OnlyNegativeYieldsPlaceholder",
			summary:  ledger.Summary{CurrentBalance: dec("-1")},
			wantKeys: []string{ledger.SegmentEmpty},
		},
		{
			name: "AllPositive",
			summary: ledger.Summary{
				CurrentBalance:  dec("1300"),
				InvestedActual:  dec("300"),
				ForecastIncome:  dec("40"),
				ForecastExpense: dec("100"),
			},
			wantKeys: []string{
				ledger.SegmentCash,
				ledger.SegmentInvest,
				ledger.SegmentForecastIncome,
				ledger.SegmentForecastExpense,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Segments(tt.summary)

			keys := make([]string, len(got))
			for i, s := range got {
				keys[i] = s.Key
				assert.True(t, s.Value.IsPositive(), "segment %s must be positive", s.Key)
				assert.NotEmpty(t, s.Label)
				assert.NotEmpty(t, s.Color)
			}

			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestSegments_Placeholder(t *testing.T) {
	got := ledger.Segments(ledger.Summary{})
	require.Len(t, got, 1)

	assert.Equal(t, "ว่าง", got[0].Label)
	assert.Equal(t, "#334155", got[0].Color)
	assertDec(t, "1", got[0].Value, "Value")
}

func TestShares(t *testing.T) {
	segs := ledger.Segments(ledger.Summary{
		CurrentBalance: dec("750"),
		InvestedActual: dec("250"),
	})

	shares := ledger.Shares(segs)
	require.Len(t, shares, 2)
	assert.InDelta(t, 0.75, shares[0], 1e-9)
	assert.InDelta(t, 0.25, shares[1], 1e-9)

	assert.Equal(t, []float64{0}, ledger.Shares([]ledger.Segment{{Key: "x"}}))
}
