package ledger

import "slices"

// CategoryGroup is a titled list of category labels offered for one transaction type.
type CategoryGroup struct {
	Title      string
	Categories []string
}

// Vocabulary lists the categories offered per transaction type.
// Categories are suggestions for the form; a record is not rejected for using another label.
type Vocabulary struct {
	Income     []CategoryGroup
	Expense    []CategoryGroup
	Investment []CategoryGroup
}

// DefaultVocabulary is the built-in category set.
var DefaultVocabulary = Vocabulary{
	Income: []CategoryGroup{
		{Title: "รายรับ", Categories: []string{"เงินเดือน", "ฟรีแลนซ์", "โบนัส", "ดอกเบี้ย", "ขายของ", "เงินปั่นผล", "เทรดหุ้น", "อื่น ๆ"}},
	},
	Expense: []CategoryGroup{
		{Title: "รายวัน (Daily)", Categories: []string{"ค่ากิน", "ค่าน้ำมัน", "ออกกำลังกาย"}},
		{Title: "รายเดือน (Bills)", Categories: []string{"ค่าบ้าน", "ค่ารถ", "ค่าเน็ตบ้าน", "ค่าเน็ตโทรศัพท์", "ค่าน้ำ", "ค่าไฟ", "ค่าประกันรถ", "ค่าหนี้รายเดือน"}},
		{Title: "พิเศษ/อื่น ๆ", Categories: []string{"ให้เงินแม่", "เที่ยว", "ไหว้พระ", "อื่น ๆ"}},
	},
	Investment: []CategoryGroup{
		{Title: "ลงทุน", Categories: []string{"โอนเงินไปเทรดหุ้น", "ออมทอง", "ซื้อหุ้น"}},
	},
}

// Groups returns the category groups offered for t.
func (v Vocabulary) Groups(t Type) []CategoryGroup {
	switch t {
	case TypeIncome:
		return v.Income
	case TypeExpense:
		return v.Expense
	case TypeInvest:
		return v.Investment
	}

	return nil
}

// Categories returns the flattened category list for t.
func (v Vocabulary) Categories(t Type) []string {
	var out []string
	for _, g := range v.Groups(t) {
		out = append(out, g.Categories...)
	}

	return out
}

// DefaultCategory is the category preselected when the form switches to t.
func (v Vocabulary) DefaultCategory(t Type) string {
	cats := v.Categories(t)
	if len(cats) == 0 {
		return ""
	}

	return cats[0]
}

// IsInvestment reports whether category belongs to the investment vocabulary.
// Expense records filed under such a category also count as invested money.
func (v Vocabulary) IsInvestment(category string) bool {
	return slices.Contains(v.Categories(TypeInvest), category)
}
