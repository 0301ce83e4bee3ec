package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
	"github.com/MrJamesThe3rd/meeledger/internal/settings"
)

type settingsState int

const (
	settingsStateMenu settingsState = iota
	settingsStateBalance
	settingsStateReset
)

// ThemeChangedMsg asks the root model to restyle every screen.
type ThemeChangedMsg struct {
	Theme settings.Theme
}

type settingsValues struct {
	balance string
	confirm bool
}

type SettingsModel struct {
	CommonModel
	store    *ledger.Store
	settings *settings.Service

	state  settingsState
	values *settingsValues
	form   *huh.Form

	status string
	err    error
}

func NewSettingsModel(store *ledger.Store, settingsSvc *settings.Service, styles Styles) SettingsModel {
	return SettingsModel{
		CommonModel: CommonModel{Styles: styles},
		store:       store,
		settings:    settingsSvc,
		values:      &settingsValues{},
	}
}

func (m SettingsModel) Title() string { return "Settings" }

func (m SettingsModel) ShortHelp() string {
	if m.state != settingsStateMenu {
		return "Enter: confirm | Esc: cancel"
	}

	return "b: starting balance | t: theme | R: reset ledger | Esc: back"
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(settingsResultMsg); ok {
		m.state = settingsStateMenu
		m.form = nil
		m.err = res.err
		m.status = res.status

		return m, res.next
	}

	if m.state == settingsStateMenu {
		return m.updateMenu(msg)
	}

	return m.updateForm(msg)
}

func (m SettingsModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, Back
	case "b":
		m.values.balance = m.store.Snapshot().StartingBalance.String()
		m.form = m.buildBalanceForm()
		m.state = settingsStateBalance

		return m, m.form.Init()
	case "t":
		return m, m.toggleThemeCmd()
	case "R":
		m.values.confirm = false
		m.form = m.buildResetForm()
		m.state = settingsStateReset

		return m, m.form.Init()
	}

	return m, nil
}

func (m SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = settingsStateMenu
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case settingsStateBalance:
		return m, m.saveBalanceCmd(m.values.balance)
	case settingsStateReset:
		if !m.values.confirm {
			m.state = settingsStateMenu
			m.form = nil

			return m, nil
		}

		return m, m.resetCmd()
	}

	return m, nil
}

func parseBalance(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("enter a number, e.g. 78956.64 or -1200")
	}

	return d, nil
}

func (m SettingsModel) buildBalanceForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("balance").
				Title("ยอดเงินตั้งต้น").
				Description("Negative values are treated as debt").
				Value(&m.values.balance).
				Validate(func(s string) error {
					_, err := parseBalance(s)
					return err
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SettingsModel) buildResetForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Delete every transaction and restore the default balance?").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&m.values.confirm),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m SettingsModel) View() string {
	s := m.Styles

	var body string

	switch m.state {
	case settingsStateMenu:
		l := m.store.Snapshot()
		body = strings.Join([]string{
			fmt.Sprintf("[b] Starting balance   %s", s.Accent.Render(FormatAmount(l.StartingBalance))),
			fmt.Sprintf("[t] Theme              %s", s.Accent.Render(string(s.Theme))),
			fmt.Sprintf("[R] Reset ledger       %s", s.Muted.Render(fmt.Sprintf("%d records", len(l.Records)))),
		}, "\n")
	default:
		body = m.form.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(m.Title()), "", body)

	switch {
	case m.err != nil:
		content += "\n\n" + s.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		content += "\n\n" + s.Success.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type settingsResultMsg struct {
	status string
	err    error
	next   tea.Cmd
}

func (m SettingsModel) saveBalanceCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		d, err := parseBalance(raw)
		if err != nil {
			return settingsResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.store.SetStartingBalance(ctx, d); err != nil {
			return settingsResultMsg{err: err}
		}

		return settingsResultMsg{status: "Starting balance set to " + FormatAmount(d)}
	}
}

func (m SettingsModel) toggleThemeCmd() tea.Cmd {
	next := m.Styles.Theme.Toggle()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.settings.SetTheme(ctx, next); err != nil {
			return settingsResultMsg{err: err}
		}

		return settingsResultMsg{
			status: "Theme: " + string(next),
			next:   func() tea.Msg { return ThemeChangedMsg{Theme: next} },
		}
	}
}

func (m SettingsModel) resetCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.store.Reset(ctx); err != nil {
			return settingsResultMsg{err: err}
		}

		return settingsResultMsg{status: "Ledger reset"}
	}
}
