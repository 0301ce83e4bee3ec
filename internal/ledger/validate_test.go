package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Integer", input: "200", want: "200"},
		{name: "Fraction", input: "850.25", want: "850.25"},
		{name: "ThousandSeparators", input: "1,234,567.89", want: "1234567.89"},
		{name: "Whitespace", input: "  42 ", want: "42"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Zero", input: "0", wantErr: true},
		{name: "Negative", input: "-10", wantErr: true},
		{name: "NotANumber", input: "สิบ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ParseAmount(tt.input)

			if tt.wantErr {
				var vErr *ledger.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "amount", vErr.Field)

				return
			}

			require.NoError(t, err)
			assertDec(t, tt.want, got, "amount")
		})
	}
}

func TestVocabulary(t *testing.T) {
	v := ledger.DefaultVocabulary

	assert.Equal(t, "เงินเดือน", v.DefaultCategory(ledger.TypeIncome))
	assert.Equal(t, "ค่ากิน", v.DefaultCategory(ledger.TypeExpense))
	assert.Equal(t, "โอนเงินไปเทรดหุ้น", v.DefaultCategory(ledger.TypeInvest))
	assert.Empty(t, v.DefaultCategory("gift"))

	assert.Len(t, v.Groups(ledger.TypeExpense), 3)
	assert.Contains(t, v.Categories(ledger.TypeExpense), "ค่าหนี้รายเดือน")

	assert.True(t, v.IsInvestment("ออมทอง"))
	assert.False(t, v.IsInvestment("ค่ากิน"))
}

func TestMonth(t *testing.T) {
	assert.Equal(t, "2026-03", ledger.Month(date(2026, 3, 31)))
}
