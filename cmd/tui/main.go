package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/meeledger/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/meeledger/internal/config"
	"github.com/MrJamesThe3rd/meeledger/internal/database"
	"github.com/MrJamesThe3rd/meeledger/internal/export"
	"github.com/MrJamesThe3rd/meeledger/internal/importer"
	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
	"github.com/MrJamesThe3rd/meeledger/internal/settings"
	"github.com/MrJamesThe3rd/meeledger/internal/storage/memory"
	sqliteStore "github.com/MrJamesThe3rd/meeledger/internal/storage/sqlite"
)

// repository is what both the ledger bridge and the settings service need from storage.
type repository interface {
	ledger.Repository
	settings.Repository
}

type model struct {
	cfg *config.Config

	store         *ledger.Store
	settings      *settings.Service
	importService *importer.Service
	exportService *export.Service

	styles      view.Styles
	onboarded   bool
	currentView View

	listView     view.ListModel
	summaryView  view.SummaryModel
	exportView   view.ExportModel
	importView   view.ImportModel
	settingsView view.SettingsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewList     View = 1
	ViewSummary  View = 2
	ViewExport   View = 3
	ViewImport   View = 4
	ViewSettings View = 5
)

func openRepository(cfg *config.Config) (repository, *sql.DB, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		return memory.New(), nil, nil
	}

	db, err := database.New(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening sqlite storage: %w", err)
	}

	return sqliteStore.New(db), db, nil
}

func initialModel(cfg *config.Config, repo repository) model {
	logger := slog.Default()

	store := ledger.NewStore(
		ledger.NewBridge(repo, cfg.StartingBalance(), logger),
		ledger.WithLogger(logger),
		ledger.WithDefaultBalance(cfg.StartingBalance()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Load(ctx); err != nil {
		slog.Warn("failed to load ledger, starting empty", "error", err)
	}

	settingsSvc := settings.NewService(repo)

	theme, err := settingsSvc.Theme(ctx)
	if err != nil {
		slog.Warn("failed to read theme", "error", err)
	}

	onboarded, err := settingsSvc.Onboarded(ctx)
	if err != nil {
		slog.Warn("failed to read onboarding flag", "error", err)
	}

	slog.Info("ledger loaded", "records", store.Len(), "driver", cfg.Storage.Driver)

	return model{
		cfg:           cfg,
		store:         store,
		settings:      settingsSvc,
		importService: importer.NewService(store),
		exportService: export.NewService(store),
		styles:        view.NewStyles(theme),
		onboarded:     onboarded,
		currentView:   ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			return m.updateMenu(msg)
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.ThemeChangedMsg:
		m.styles = view.NewStyles(msg.Theme)
		m.settingsView.Styles = m.styles

		return m, nil
	}

	switch m.currentView {
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var onboard tea.Cmd
	if !m.onboarded {
		m.onboarded = true
		onboard = m.markOnboardedCmd()
	}

	switch msg.String() {
	case "q":
		if onboard == nil {
			return m, tea.Quit
		}

		// Write the flag before quitting.
		return m, func() tea.Msg {
			onboard()
			return tea.Quit()
		}
	case "1":
		m.currentView = ViewList
		m.listView = view.NewListModel(m.store, m.settings, m.styles)

		return m, tea.Batch(onboard, m.listView.Init())
	case "2":
		m.currentView = ViewSummary
		m.summaryView = view.NewSummaryModel(m.store, m.styles)

		return m, tea.Batch(onboard, m.summaryView.Init())
	case "3":
		m.currentView = ViewExport
		m.exportView = view.NewExportModel(m.exportService, m.store, m.cfg.Export.Dir, m.styles)

		return m, tea.Batch(onboard, m.exportView.Init())
	case "4":
		m.currentView = ViewImport
		m.importView = view.NewImportModel(m.importService, m.styles)

		return m, tea.Batch(onboard, m.importView.Init())
	case "5":
		m.currentView = ViewSettings
		m.settingsView = view.NewSettingsModel(m.store, m.settings, m.styles)

		return m, tea.Batch(onboard, m.settingsView.Init())
	}

	return m, onboard
}

func (m model) markOnboardedCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.DbCtx()
		defer cancel()

		if err := m.settings.MarkOnboarded(ctx); err != nil {
			slog.Warn("failed to save onboarding flag", "error", err)
		}

		return nil
	}
}

func (m model) active() view.View {
	switch m.currentView {
	case ViewList:
		return m.listView
	case ViewSummary:
		return m.summaryView
	case ViewExport:
		return m.exportView
	case ViewImport:
		return m.importView
	case ViewSettings:
		return m.settingsView
	}

	return nil
}

func (m model) View() string {
	v := m.active()
	if v == nil {
		return m.viewMenu()
	}

	help := lipgloss.NewStyle().PaddingLeft(2).Render(m.styles.Muted.Render(v.ShortHelp()))

	return v.View() + "\n" + help
}

func (m model) viewMenu() string {
	s := m.styles
	sum := m.store.Summary()

	header := fmt.Sprintf("%s  %s\n%s %s",
		s.Title.Render(m.cfg.App.Name),
		s.Muted.Render("จัดการรายรับ-รายจ่าย"),
		s.Muted.Render("เดือนปัจจุบัน: "+ledger.Month(time.Now())+"  ปัจจุบัน:"),
		s.Accent.Render(view.FormatAmount(sum.CurrentBalance)),
	)

	menu := "1. Transactions\n" +
		"2. Summary\n" +
		"3. Export CSV\n" +
		"4. Import CSV\n" +
		"5. Settings\n\n" +
		"q. Quit"

	content := header + "\n\n" + menu

	if !m.onboarded {
		hint := s.Panel.Render(
			"ยินดีต้อนรับ! Add income and expenses under Transactions.\n" +
				"Mark planned items as คาดการณ์ and confirm them with c once they happen.\n" +
				"Press any key to continue.",
		)
		content = hint + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

func setupLogging(cfg *config.Config) (func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	f, err := tea.LogToFile(cfg.Log.File, cfg.App.Name)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))

	return f.Close, nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	repo, db, err := openRepository(cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	if db != nil {
		defer db.Close()
	}

	p := tea.NewProgram(initialModel(cfg, repo), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
