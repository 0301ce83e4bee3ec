package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

// addValues lives behind a pointer so the form bindings survive model copies.
type addValues struct {
	typ      ledger.Type
	status   ledger.Status
	category string
	date     string
	amount   string
	note     string

	// shownType is the type the category list was last filled for.
	shownType ledger.Type
}

func newAddValues(vocab ledger.Vocabulary, today time.Time) *addValues {
	return &addValues{
		typ:       ledger.TypeExpense,
		status:    ledger.StatusActual,
		category:  vocab.DefaultCategory(ledger.TypeExpense),
		date:      FormatDate(today),
		shownType: ledger.TypeExpense,
	}
}

// draft converts the submitted values. The form validators have already run.
func (v *addValues) draft() (ledger.Draft, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(v.date))
	if err != nil {
		return ledger.Draft{}, &ledger.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	amount, err := ledger.ParseAmount(v.amount)
	if err != nil {
		return ledger.Draft{}, err
	}

	return ledger.Draft{
		Date:     date,
		Type:     v.typ,
		Status:   v.status,
		Category: v.category,
		Amount:   amount,
		Note:     strings.TrimSpace(v.note),
	}, nil
}

// syncCategory preselects the first category of a newly chosen type.
func (v *addValues) syncCategory(vocab ledger.Vocabulary) {
	if v.typ == v.shownType {
		return
	}

	v.shownType = v.typ
	v.category = vocab.DefaultCategory(v.typ)
}

func categoryOptions(vocab ledger.Vocabulary, t ledger.Type) []huh.Option[string] {
	var opts []huh.Option[string]

	for _, g := range vocab.Groups(t) {
		for _, c := range g.Categories {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s · %s", c, g.Title), c))
		}
	}

	return opts
}

func buildAddForm(v *addValues, vocab ledger.Vocabulary) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Type]().
				Key("type").
				Title("ประเภท").
				Options(
					huh.NewOption(TypeLabel(ledger.TypeIncome), ledger.TypeIncome),
					huh.NewOption(TypeLabel(ledger.TypeExpense), ledger.TypeExpense),
					huh.NewOption(TypeLabel(ledger.TypeInvest), ledger.TypeInvest),
				).
				Value(&v.typ),

			huh.NewSelect[ledger.Status]().
				Key("status").
				Title("สถานะ").
				Options(
					huh.NewOption(StatusLabel(ledger.StatusActual), ledger.StatusActual),
					huh.NewOption(StatusLabel(ledger.StatusForecast), ledger.StatusForecast),
				).
				Value(&v.status),

			huh.NewSelect[string]().
				Key("category").
				Title("หมวด").
				Height(8).
				OptionsFunc(func() []huh.Option[string] {
					return categoryOptions(vocab, v.typ)
				}, &v.typ).
				Value(&v.category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("กรุณาเลือกหมวดหมู่")
					}

					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("วันที่").
				Placeholder("YYYY-MM-DD").
				Value(&v.date).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}

					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("จำนวน").
				Placeholder("0.00").
				Value(&v.amount).
				Validate(func(s string) error {
					if _, err := ledger.ParseAmount(s); err != nil {
						return fmt.Errorf("กรุณาใส่จำนวนเงินที่มากกว่า 0")
					}

					return nil
				}),

			huh.NewInput().
				Key("note").
				Title("หมายเหตุ").
				Value(&v.note),
		),
	).WithWidth(44).WithShowHelp(false)
}
