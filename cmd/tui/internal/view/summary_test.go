package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBarCells(t *testing.T) {
	type testCase struct {
		name   string
		shares []float64
		width  int
		want   []int
	}

	tests := []testCase{
		{name: "Even", shares: []float64{0.5, 0.5}, width: 10, want: []int{5, 5}},
		{name: "LargestRemainder", shares: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, width: 10, want: []int{4, 3, 3}},
		{name: "Single", shares: []float64{1}, width: 48, want: []int{48}},
		{name: "AllZero", shares: []float64{0, 0}, width: 10, want: []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, barCells(tt.shares, tt.width))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "78,956.64", FormatAmount(decimal.RequireFromString("78956.64")))
	assert.Equal(t, "1,300", FormatAmount(decimal.NewFromInt(1300)))
	assert.Equal(t, "0.33", FormatAmount(decimal.RequireFromString("0.333")))
}

func TestRangeContains(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r := timeframeRange(TimeframeThisMonth, now)

	assert.Equal(t, "2026-10", r.Label)
	assert.True(t, r.Contains(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))

	last := timeframeRange(TimeframeLastMonth, now)
	assert.Equal(t, "2026-09", last.Label)
	assert.True(t, last.Contains(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)))

	assert.True(t, timeframeRange(TimeframeAll, now).Contains(time.Time{}))
}
