package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"macrotoggle/internal/config"
	"macrotoggle/internal/desktopentry"
	"macrotoggle/internal/logging"
	"macrotoggle/internal/models"
	"macrotoggle/internal/ui"
	"macrotoggle/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

var (
	appLog     = logging.ForComponent(logging.CompApp)
	rewriteLog = logging.ForComponent(logging.CompRewrite)
	uiLog      = logging.ForComponent(logging.CompUI)
	configLog  = logging.ForComponent(logging.CompConfig)
)

const appTitle = "Toggle Exec Command"

// Messages shown to the user. Error details only go to the log.
const (
	successTitle   = "Exec command updated"
	successMessage = "Exec command updated successfully."
	failureTitle   = "Error"
	failureMessage = "Error updating Exec command."
	noMatchDetail  = "No Exec line matched; the file was left unchanged"
)

// Updater applies an Exec line to the target file.
// *desktopentry.Rewriter is the production implementation.
type Updater interface {
	UpdateExecLine(value string) desktopentry.Result
	ExecLines() ([]string, error)
}

// Model is the main application model
type Model struct {
	config  *config.Config
	updater Updater
	target  string

	// UI Components
	panel       *components.TogglePanel
	dialog      *components.NoticeDialog
	highlighter *ui.Highlighter
	help        help.Model
	keys        ui.KeyMap

	// State
	current    []string // Exec lines read from the target file
	currentErr error
	status     string
	width      int
	height     int
}

// New creates the model. The first option starts selected and the file is
// not touched until the user selects an option.
func New(cfg *config.Config, updater Updater, target string) *Model {
	m := &Model{
		config:      cfg,
		updater:     updater,
		target:      target,
		panel:       components.NewTogglePanel(models.DefaultOptions()),
		dialog:      components.NewNoticeDialog(),
		highlighter: ui.NewHighlighter(),
		help:        help.New(),
		keys:        ui.DefaultKeyMap(),
		status:      "Ready",
		width:       80,
		height:      24,
	}
	m.refreshCurrent()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The notice is modal: nothing else reacts until it is closed
	if m.dialog.IsVisible() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dialog.Hide()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.panel.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.panel.MoveDown()

	case key.Matches(msg, m.keys.Select):
		if _, ok := m.panel.SelectCursor(); ok {
			m.apply()
		}

	case key.Matches(msg, m.keys.First, m.keys.Second):
		if _, ok := m.panel.SelectIndex(m.panel.Options.IndexOfKey(msg.String())); ok {
			m.apply()
		}
	}

	return m, nil
}

// apply rewrites the Exec line with the selected option synchronously and
// opens the notice
func (m *Model) apply() {
	opt := m.panel.SelectedOption()
	res := m.updater.UpdateExecLine(opt.Command)

	if !res.OK() {
		rewriteLog.Error("update_failed",
			slog.String("option", opt.Label),
			slog.String("op", res.Err.Op),
			slog.String("path", res.Err.Path),
			slog.String("error", res.Err.Error()),
			slog.String("stack", string(res.Err.Stack)))
		m.dialog.ShowError(failureTitle, failureMessage)
		m.status = "Error: " + failureMessage
		return
	}

	change := res.Diff()
	rewriteLog.Info("exec_line_updated",
		slog.String("option", opt.Label),
		slog.String("path", res.Path),
		slog.String("value", res.Value),
		slog.Int("matches", res.Matches),
		slog.String("change", change.Summary()))

	title := fmt.Sprintf("%s (%s)", successTitle, change.Summary())
	m.dialog.ShowSuccess(title, successMessage, m.changeDetails(res.Matches, change))
	m.status = "✓ " + opt.Label + " selected"
	m.refreshCurrent()
}

// changeDetails renders the changed lines for the success notice
func (m *Model) changeDetails(matches int, change *desktopentry.Change) []string {
	if matches == 0 {
		return []string{ui.MutedStyle.Render(noMatchDetail)}
	}
	if !m.config.ShowDiff {
		return nil
	}

	if change.IsEmpty() {
		return []string{ui.MutedStyle.Render("Already set; content unchanged")}
	}

	var lines []string
	for _, line := range change.Lines {
		switch line.Type {
		case desktopentry.ChangeRemoved:
			lines = append(lines, ui.RemovedLineStyle.Render("- "+line.Content))
		case desktopentry.ChangeAdded:
			lines = append(lines, ui.AddedLineStyle.Render("+ "+line.Content))
		}
	}
	return lines
}

// refreshCurrent re-reads the Exec lines shown under the panel
func (m *Model) refreshCurrent() {
	lines, err := m.updater.ExecLines()
	m.current = lines
	m.currentErr = err
	if err != nil {
		uiLog.Warn("read_exec_lines_failed", slog.String("path", m.target), slog.String("error", err.Error()))
	}
}

func (m *Model) View() string {
	if m.dialog.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.panel.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderCurrent())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render(appTitle)
	ver := ui.VersionStyle.Render("v" + version)
	path := ui.MutedStyle.Render("  " + m.target)

	return ui.HeaderStyle.Render(title + "  " + ver + path)
}

// renderCurrent shows the Exec line(s) found in the file
func (m *Model) renderCurrent() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitleStyle.Render("Current launcher"))
	b.WriteString("\n")

	if m.currentErr != nil {
		b.WriteString(ui.MutedStyle.Render("  unavailable"))
		return b.String()
	}
	if len(m.current) == 0 {
		b.WriteString(ui.MutedStyle.Render("  no Exec line"))
		return b.String()
	}

	shown := m.current
	if m.config.Highlight {
		shown = m.highlighter.HighlightLines(m.current, filepath.Base(m.target))
	}

	for i, line := range m.current {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + shown[i])

		if idx := m.panel.Options.Match(line); idx >= 0 {
			opt, _ := m.panel.Options.At(idx)
			b.WriteString(ui.MutedStyle.Render(fmt.Sprintf("  [%s]", opt.Key)))
		}
	}

	return b.String()
}

func (m *Model) renderStatusBar() string {
	if strings.HasPrefix(m.status, "✓") {
		return ui.RenderNotification("success", strings.TrimPrefix(m.status, "✓ "))
	}
	if strings.HasPrefix(m.status, "Error") {
		return ui.RenderNotification("error", m.status)
	}
	return ui.MutedStyle.Render(m.status)
}

func main() {
	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("macrotoggle %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("macrotoggle - toggle the Exec command of the Fiji launcher")
			fmt.Println()
			fmt.Println("Usage: macrotoggle [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Log at debug level")
			fmt.Println()
			fmt.Printf("Rewrites the Exec line of %s.\n", config.TargetPath)
			return
		case "-d", "--debug", "debug":
			debugMode = true
		}
	}

	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = config.Default()
	}

	if err := logging.Init(logging.Config{
		Path:  cfg.LogPath(),
		Level: cfg.LogLevel,
		Debug: debugMode,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; diagnostic log written to %s\n", err, logging.Path())
		appLog.Warn("log_dir_unusable", slog.String("dir", cfg.LogDir), slog.String("error", err.Error()))
	}
	defer logging.Shutdown()

	if cfgErr != nil {
		configLog.Warn("config_load_failed", slog.String("path", config.ConfigPath()), slog.String("error", cfgErr.Error()))
	}
	appLog.Info("start",
		slog.String("version", version),
		slog.String("target", config.TargetPath),
		slog.Bool("first_run", cfg.FirstRun))

	p := tea.NewProgram(New(cfg, desktopentry.NewOS(config.TargetPath), config.TargetPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLog.Error("program_failed", slog.String("error", err.Error()))
		logging.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
