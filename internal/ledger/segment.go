package ledger

import "github.com/shopspring/decimal"

// Segment is one wedge of the summary ring.
type Segment struct {
	Key   string
	Label string
	Color string
	Value decimal.Decimal // never negative
}

const (
	SegmentCash            = "cash"
	SegmentInvest          = "invest"
	SegmentForecastIncome  = "forecast_income"
	SegmentForecastExpense = "forecast_expense"
	SegmentEmpty           = "empty"
)

// Placeholder is drawn when every figure is zero.
var Placeholder = Segment{Key: SegmentEmpty, Label: "ว่าง", Color: "#334155", Value: decimal.NewFromInt(1)}

// Segments turns the summary into ring wedges. Negative figures are floored to zero,
// zero wedges are dropped, and an all-zero summary yields only Placeholder.
func Segments(s Summary) []Segment {
	candidates := []Segment{
		{Key: SegmentCash, Label: "เงินคงเหลือ", Color: "#22c55e", Value: s.CurrentBalance},
		{Key: SegmentInvest, Label: "เงินลงทุน", Color: "#0ea5e9", Value: s.InvestedActual},
		{Key: SegmentForecastIncome, Label: "คาดการณ์รายรับ", Color: "#a78bfa", Value: s.ForecastIncome},
		{Key: SegmentForecastExpense, Label: "คาดการณ์รายจ่าย", Color: "#f43f5e", Value: s.ForecastExpense},
	}

	out := make([]Segment, 0, len(candidates))

	for _, c := range candidates {
		if !c.Value.IsPositive() {
			continue
		}

		out = append(out, c)
	}

	if len(out) == 0 {
		return []Segment{Placeholder}
	}

	return out
}

// Shares returns each segment's fraction of the total, in segment order.
func Shares(segments []Segment) []float64 {
	total := decimal.Zero
	for _, s := range segments {
		total = total.Add(s.Value)
	}

	shares := make([]float64, len(segments))
	if !total.IsPositive() {
		return shares
	}

	for i, s := range segments {
		shares[i] = s.Value.Div(total).InexactFloat64()
	}

	return shares
}
