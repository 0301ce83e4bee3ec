package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/meeledger/internal/export"
	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
)

const ringWidth = 48

// SummaryModel shows the aggregate figures and the segment ring. It only reads the store.
type SummaryModel struct {
	CommonModel
	store *ledger.Store

	summary  ledger.Summary
	segments []ledger.Segment
}

func NewSummaryModel(store *ledger.Store, styles Styles) SummaryModel {
	m := SummaryModel{CommonModel: CommonModel{Styles: styles}, store: store}
	m.refresh()

	return m
}

func (m SummaryModel) Title() string { return "ยอดเงินคงเหลือ" }

func (m SummaryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m SummaryModel) Init() tea.Cmd {
	return nil
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.refresh()
		}
	}

	return m, nil
}

func (m *SummaryModel) refresh() {
	m.summary = m.store.Summary()
	m.segments = ledger.Segments(m.summary)
}

func (m SummaryModel) View() string {
	s := m.Styles

	balance := s.Income
	if m.summary.CurrentBalance.IsNegative() {
		balance = s.Expense
	}

	hero := lipgloss.JoinVertical(lipgloss.Left,
		s.Muted.Render("เงินเหลือจริง ปัจจุบัน (ไม่ร่วมอย่างอื่น)"),
		balance.Bold(true).Render(FormatAmount(m.summary.CurrentBalance)),
		s.Muted.Render("เดือนปัจจุบัน: "+ledger.Month(time.Now())),
	)

	ring := renderRing(m.segments, ringWidth)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render(m.Title()),
			"",
			hero,
			"",
			ring,
			"",
			m.renderLegend(),
			"",
			s.Panel.Render(strings.TrimRight(export.GenerateSummary(m.summary, FormatAmount), "\n")),
		),
	)
}

func (m SummaryModel) renderLegend() string {
	shares := ledger.Shares(m.segments)
	lines := make([]string, len(m.segments))

	for i, seg := range m.segments {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render("●")
		value := FormatAmount(seg.Value)

		if seg.Key == ledger.SegmentEmpty {
			value = "-"
		}

		lines[i] = fmt.Sprintf("%s %-16s %14s  %5.1f%%", swatch, seg.Label, value, shares[i]*100)
	}

	return strings.Join(lines, "\n")
}

// renderRing draws the segments as one colored bar, each segment sized by its share.
func renderRing(segments []ledger.Segment, width int) string {
	cells := barCells(ledger.Shares(segments), width)

	var sb strings.Builder

	for i, seg := range segments {
		if cells[i] == 0 {
			continue
		}

		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(seg.Color)).
			Render(strings.Repeat("█", cells[i])))
	}

	return sb.String()
}

// barCells splits width cells across shares by largest remainder, so the cells always add up
// to width when any share is positive.
func barCells(shares []float64, width int) []int {
	cells := make([]int, len(shares))

	var total float64
	for _, s := range shares {
		total += s
	}

	if total <= 0 {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}

	used := 0
	rems := make([]rem, len(shares))

	for i, s := range shares {
		exact := s / total * float64(width)
		cells[i] = int(math.Floor(exact))
		used += cells[i]
		rems[i] = rem{idx: i, frac: exact - float64(cells[i])}
	}

	for left := width - used; left > 0; left-- {
		best := -1
		for j, r := range rems {
			if best < 0 || r.frac > rems[best].frac {
				best = j
			}
		}

		cells[rems[best].idx]++
		rems[best].frac = -1
	}

	return cells
}
