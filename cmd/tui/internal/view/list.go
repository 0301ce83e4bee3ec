package view

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
	"github.com/MrJamesThe3rd/meeledger/internal/settings"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateAdd
	listStateSubmitting
	listStateTimeframe
)

// ListModel is the ledger screen: the record table plus the collapsible add panel.
type ListModel struct {
	CommonModel
	store    *ledger.Store
	settings *settings.Service

	state   listState
	table   table.Model
	txs     []ledger.Transaction
	addOpen bool

	values *addValues
	form   *huh.Form

	timeframe Range
	picker    TimeframePicker

	status string
	err    error
}

func NewListModel(store *ledger.Store, settingsSvc *settings.Service, styles Styles) ListModel {
	columns := []table.Column{
		{Title: "วันที่", Width: 12},
		{Title: "ประเภท", Width: 9},
		{Title: "สถานะ", Width: 10},
		{Title: "หมวด", Width: 18},
		{Title: "จำนวน", Width: 14},
		{Title: "หมายเหตุ", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = styles.Selected.Bold(false)
	t.SetStyles(s)

	values := newAddValues(store.Vocabulary(), time.Now())

	return ListModel{
		CommonModel: CommonModel{Styles: styles},
		store:       store,
		settings:    settingsSvc,
		table:       t,
		addOpen:     true,
		values:      values,
		form:        buildAddForm(values, store.Vocabulary()),
		timeframe:   AllTime,
		picker:      NewTimeframePicker(),
	}
}

func (m ListModel) Title() string { return "รายการ" }

func (m ListModel) ShortHelp() string {
	switch m.state {
	case listStateAdd:
		return "Enter: next/submit | Esc: back to table"
	case listStateSubmitting:
		return "Saving..."
	case listStateTimeframe:
		return "Enter: select | Esc: cancel"
	}

	return "Esc: back | a: add | +: show/hide form | c: confirm | x: delete | f: timeframe | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.loadAddOpenCmd())
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case addOpenMsg:
		m.addOpen = msg.open
		return m, nil

	case listActionMsg:
		m.err = msg.err
		m.status = msg.status

		return m, m.loadCmd()

	case addResultMsg:
		m.state = listStateAdd

		if msg.err != nil {
			m.err = msg.err
			m.form = buildAddForm(m.values, m.store.Vocabulary())

			return m, m.form.Init()
		}

		m.err = nil
		m.status = fmt.Sprintf("Added %s %s", msg.tx.Category, FormatSigned(msg.tx.Type, msg.tx.Amount))
		m.resetForm()

		return m, tea.Batch(m.loadCmd(), m.form.Init())

	case TimeframeSelectedMsg:
		m.timeframe = msg.Range
		m.state = listStateBrowse
		m.table.Focus()
		m.table.SetCursor(0)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-12, 5))

		return m, nil
	}

	switch m.state {
	case listStateAdd:
		return m.updateAdd(msg)
	case listStateSubmitting:
		// The completed form ignores input; only addResultMsg leaves this state.
		return m, nil
	case listStateTimeframe:
		return m.updateTimeframe(msg)
	}

	return m.updateBrowse(msg)
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		case "a":
			m.addOpen = true
			m.state = listStateAdd
			m.table.Blur()

			return m, tea.Batch(m.form.Init(), m.saveAddOpenCmd(true))
		case "+":
			m.addOpen = !m.addOpen
			return m, m.saveAddOpenCmd(m.addOpen)
		case "c":
			if tx, ok := m.selected(); ok {
				return m, m.confirmCmd(tx)
			}
		case "x", "delete":
			if tx, ok := m.selected(); ok {
				return m, m.removeCmd(tx)
			}
		case "f":
			m.picker.Reset()
			m.state = listStateTimeframe
			m.table.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = listStateBrowse
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	m.values.syncCategory(m.store.Vocabulary())

	switch m.form.State {
	case huh.StateCompleted:
		m.state = listStateSubmitting
		return m, m.addCmd()
	case huh.StateAborted:
		m.resetForm()
		m.state = listStateBrowse
		m.table.Focus()

		return m, nil
	}

	return m, cmd
}

func (m ListModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
		m.state = listStateBrowse
		m.table.Focus()

		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m *ListModel) resetForm() {
	prev := m.values
	m.values = newAddValues(m.store.Vocabulary(), time.Now())

	// Keep type, status and date so a run of similar entries needs fewer keystrokes.
	m.values.typ = prev.typ
	m.values.status = prev.status
	m.values.category = prev.category
	m.values.shownType = prev.typ
	m.values.date = prev.date

	m.form = buildAddForm(m.values, m.store.Vocabulary())
}

func (m ListModel) selected() (ledger.Transaction, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return ledger.Transaction{}, false
	}

	return m.txs[idx], true
}

func (m ListModel) View() string {
	s := m.Styles

	header := fmt.Sprintf("%s  %s %s  %s",
		s.Title.Render(m.Title()),
		s.Muted.Render("[f]"),
		s.Accent.Render(m.timeframe.Label),
		s.Muted.Render(fmt.Sprintf("%d records", len(m.txs))),
	)

	var body string

	switch {
	case m.state == listStateTimeframe:
		body = s.Panel.Render(m.picker.View(s))
	case len(m.txs) == 0:
		body = s.Muted.Render("No transactions yet. Press a to add one.")
	default:
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(s.Border).
			Render(m.table.View())
	}

	if m.addOpen && m.state != listStateTimeframe {
		title := "เพิ่มรายการ"
		switch m.state {
		case listStateSubmitting:
			title += s.Muted.Render("  saving...")
		case listStateBrowse:
			title += s.Muted.Render("  (a to focus)")
		}

		panel := s.Panel.Width(48).Render(title + "\n\n" + m.form.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
	)

	switch {
	case m.err != nil:
		content += "\n" + s.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		content += "\n" + s.Success.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			TypeLabel(tx.Type),
			StatusLabel(tx.Status),
			tx.Category,
			FormatSigned(tx.Type, tx.Amount),
			tx.Note,
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Messages

type loadListMsg struct {
	txs []ledger.Transaction
}

type addOpenMsg struct {
	open bool
}

type addResultMsg struct {
	tx  ledger.Transaction
	err error
}

type listActionMsg struct {
	status string
	err    error
}

func (m ListModel) loadCmd() tea.Cmd {
	tf := m.timeframe

	return func() tea.Msg {
		records := m.store.Snapshot().Records
		txs := make([]ledger.Transaction, 0, len(records))

		for _, tx := range records {
			if tf.Contains(tx.Date) {
				txs = append(txs, tx)
			}
		}

		return loadListMsg{txs: txs}
	}
}

func (m ListModel) loadAddOpenCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		open, err := m.settings.AddFormOpen(ctx)
		if err != nil {
			slog.Warn("failed to read add panel preference", "error", err)
		}

		return addOpenMsg{open: open}
	}
}

func (m ListModel) saveAddOpenCmd(open bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.settings.SetAddFormOpen(ctx, open); err != nil {
			slog.Warn("failed to save add panel preference", "error", err)
		}

		return nil
	}
}

func (m ListModel) addCmd() tea.Cmd {
	values := *m.values

	return func() tea.Msg {
		d, err := values.draft()
		if err != nil {
			return addResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.store.Add(ctx, d)

		return addResultMsg{tx: tx, err: err}
	}
}

func (m ListModel) confirmCmd(tx ledger.Transaction) tea.Cmd {
	return func() tea.Msg {
		if tx.Status != ledger.StatusForecast {
			return listActionMsg{status: "Already confirmed"}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.store.Confirm(ctx, tx.ID); err != nil {
			return listActionMsg{err: err}
		}

		return listActionMsg{status: fmt.Sprintf("ยืนยันแล้ว: %s %s", tx.Category, FormatAmount(tx.Amount))}
	}
}

func (m ListModel) removeCmd(tx ledger.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.store.Remove(ctx, tx.ID); err != nil {
			return listActionMsg{err: err}
		}

		return listActionMsg{status: fmt.Sprintf("ลบรายการ: %s %s", tx.Category, FormatAmount(tx.Amount))}
	}
}
