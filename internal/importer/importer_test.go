package importer_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/meeledger/internal/export"
	"github.com/MrJamesThe3rd/meeledger/internal/importer"
	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
	"github.com/MrJamesThe3rd/meeledger/internal/storage/memory"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name      string
		input     string
		wantLen   int
		wantErr   error
		wantField string
	}

	tests := []testCase{
		{
			name: "ExportFormat",
			input: "id,date,type,status,category,amount,note\n" +
				"b,2026-10-02,expense,actual,ค่ากิน,250.5,lunch  with friends\n" +
				"a,2026-10-01,income,forecast,เงินเดือน,30000,\n",
			wantLen: 2,
		},
		{
			name: "TitleRowAndBlankLines",
			input: "MeeApp export,,,,,,\n" +
				"Date,Type,Status,Category,Amount\n" +
				"\n" +
				"2026-10-03,invest,actual,ออมทอง,\"1,500\"\n" +
				",,,,\n",
			wantLen: 1,
		},
		{
			name:    "NoHeader",
			input:   "foo,bar\n1,2\n",
			wantErr: importer.ErrNoHeader,
		},
		{
			name:      "BadDate",
			input:     "date,type,status,category,amount\n02/10/2026,expense,actual,ค่ากิน,10\n",
			wantField: "date",
		},
		{
			name:      "ZeroAmount",
			input:     "date,type,status,category,amount\n2026-10-02,expense,actual,ค่ากิน,0\n",
			wantField: "amount",
		},
		{
			name:      "UnknownType",
			input:     "date,type,status,category,amount\n2026-10-02,gift,actual,ค่ากิน,10\n",
			wantField: "type",
		},
		{
			name:      "MissingCategory",
			input:     "date,type,status,category,amount\n2026-10-02,expense,forecast,,10\n",
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, err := importer.Parse(strings.NewReader(tt.input))

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantField != "":
				var vErr *ledger.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
			default:
				require.NoError(t, err)
				assert.Len(t, drafts, tt.wantLen)
			}
		})
	}
}

func TestParse_Windows874(t *testing.T) {
	csv := "date,type,status,category,amount,note\n2026-10-01,expense,actual,ค่าไฟ,900,บิลเดือนนี้\n"

	encoded, err := charmap.Windows874.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	drafts, err := importer.Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "ค่าไฟ", drafts[0].Category)
	assert.Equal(t, "บิลเดือนนี้", drafts[0].Note)
}

type recordingAdder struct {
	drafts []ledger.Draft
	err    error
}

func (r *recordingAdder) Import(_ context.Context, drafts []ledger.Draft) ([]ledger.Transaction, error) {
	r.drafts = drafts
	return make([]ledger.Transaction, len(drafts)), r.err
}

func TestService_Import(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adder := &recordingAdder{}
		txs, err := importer.NewService(adder).Import(context.Background(), strings.NewReader(
			"date,type,status,category,amount\n2026-10-02,expense,actual,ค่ากิน,10\n",
		))
		require.NoError(t, err)
		assert.Len(t, txs, 1)
		require.Len(t, adder.drafts, 1)
		assert.True(t, adder.drafts[0].Amount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("ParseErrorSkipsStore", func(t *testing.T) {
		adder := &recordingAdder{}
		_, err := importer.NewService(adder).Import(context.Background(), strings.NewReader("nothing here"))
		require.ErrorIs(t, err, importer.ErrNoHeader)
		assert.Nil(t, adder.drafts)
	})

	t.Run("StoreError", func(t *testing.T) {
		errBoom := errors.New("boom")
		adder := &recordingAdder{err: errBoom}
		_, err := importer.NewService(adder).Import(context.Background(), strings.NewReader(
			"date,type,status,category,amount\n2026-10-02,expense,actual,ค่ากิน,10\n",
		))
		require.ErrorIs(t, err, errBoom)
	})
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()

	src := ledger.NewStore(ledger.NewBridge(memory.New(), ledger.DefaultStartingBalance, nil))
	for i, d := range []ledger.Draft{
		{Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Type: ledger.TypeIncome, Status: ledger.StatusActual, Category: "เงินเดือน", Amount: decimal.RequireFromString("30000")},
		{Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), Type: ledger.TypeExpense, Status: ledger.StatusForecast, Category: "ค่าบ้าน", Amount: decimal.RequireFromString("8500.75"), Note: "rent, october"},
		{Date: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Type: ledger.TypeInvest, Status: ledger.StatusActual, Category: "ซื้อหุ้น", Amount: decimal.RequireFromString("1000")},
	} {
		_, err := src.Add(ctx, d)
		require.NoError(t, err, "draft %d", i)
	}

	var buf bytes.Buffer
	require.NoError(t, export.NewService(src).Write(&buf))

	dst := ledger.NewStore(ledger.NewBridge(memory.New(), ledger.DefaultStartingBalance, nil))
	_, err := importer.NewService(dst).Import(ctx, &buf)
	require.NoError(t, err)

	want := src.Snapshot().Records
	got := dst.Snapshot().Records
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].Status, got[i].Status)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
	}

	assert.Equal(t, "rent  october", got[1].Note)
	assert.True(t, src.Summary().CurrentBalance.Equal(dst.Summary().CurrentBalance))
}
