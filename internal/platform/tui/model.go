package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amazer/internal/amazer"
	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/storage"
)

// chromeLines is the number of screen lines not used by the area.
const chromeLines = 3

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// SessionOptions configures an interactive session.
type SessionOptions struct {
	Config  config.AreaConfig
	Runtime core.RuntimeConfig // screen size; a non-zero Seed overrides Config.Seed
	Store   *storage.Store     // archive for saved areas, may be nil
	Dir     string             // directory for saved files, empty disables file saving
	Format  codec.Format
	Logger  *log.Logger

	// Username prefixes default save names. Set for SSH sessions.
	Username string

	// FitToScreen resizes the area to the terminal on every resize.
	FitToScreen bool
}

// areaMsg carries the result of a pipeline run.
type areaMsg struct {
	run    int
	result *amazer.Result
	err    error
}

// SessionModel is the Bubble Tea model for browsing generated areas.
type SessionModel struct {
	opts        SessionOptions
	cfg         config.AreaConfig
	result      *amazer.Result
	run         int
	keys        SessionKeyMap
	help        help.Model
	input       textinput.Model
	commandMode bool
	showConfig  bool
	status      string
	statusErr   bool
	statusGen   int
	width       int
	height      int
	quitting    bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Format == "" {
		opts.Format = codec.Binary
	}

	cfg := opts.Config.WithDefaults()
	if opts.Runtime.Seed != 0 {
		cfg.Seed = opts.Runtime.Seed
	}
	if opts.FitToScreen && opts.Runtime.ScreenW > 0 && opts.Runtime.ScreenH > 0 {
		cfg.Size = fitSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}

	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "size 41x31 | generator rooms | modifiers emmure | seed 7 | save name"
	input.CharLimit = 256

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	return SessionModel{
		opts:   opts,
		cfg:    cfg,
		keys:   DefaultSessionKeyMap(),
		help:   h,
		input:  input,
		run:    1,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// fitSize returns the largest odd-sided area that fits on screen together
// with the header, status and help lines.
func fitSize(screenW, screenH int) core.Size {
	w, h := screenW, screenH-chromeLines
	if w%2 == 0 {
		w--
	}
	if h%2 == 0 {
		h--
	}
	return core.S(max(w, 1), max(h, 1))
}

// Init generates the first area.
func (m SessionModel) Init() tea.Cmd {
	return generateCmd(m.run, m.cfg, m.opts.Logger)
}

// generate starts a new pipeline run with the current config.
func (m *SessionModel) generate() tea.Cmd {
	m.run++
	return generateCmd(m.run, m.cfg, m.opts.Logger)
}

func generateCmd(run int, cfg config.AreaConfig, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		result, err := amazer.New(cfg, amazer.WithLogger(logger)).Generate(context.Background())
		return areaMsg{run: run, result: result, err: err}
	}
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.commandMode {
			return m.handleCommandKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case areaMsg:
		return m.handleArea(msg)

	case clearStatusMsg:
		if int(msg) == m.statusGen {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input in viewing mode.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.cfg.Seed = 0
		cmd := m.generate()
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		return m.save("")

	case key.Matches(msg, m.keys.Config):
		m.showConfig = !m.showConfig
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.commandMode = true
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	}

	return m, nil
}

// handleCommandKey processes keyboard input while the command line is open.
func (m SessionModel) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.commandMode = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		line := m.input.Value()
		m.commandMode = false
		m.input.Blur()
		return m.runCommand(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m SessionModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.input.Width = max(msg.Width-2, 1)

	if m.opts.FitToScreen {
		if size := fitSize(msg.Width, msg.Height); size != m.cfg.Size {
			m.cfg.Size = size
			cmd := m.generate()
			return m, cmd
		}
	}
	return m, nil
}

// handleArea stores a finished pipeline run.
func (m SessionModel) handleArea(msg areaMsg) (tea.Model, tea.Cmd) {
	if msg.run != m.run {
		// Superseded by a newer run.
		return m, nil
	}
	if msg.err != nil {
		// Keep the last working config so the next run does not fail again.
		if m.result != nil {
			m.cfg = m.result.Config
		}
		cmd := m.setStatus(msg.err.Error(), true)
		return m, cmd
	}

	m.result = msg.result
	m.cfg = msg.result.Config
	m.opts.Logger.Debug("area ready",
		"user", m.opts.Username,
		"generator", m.cfg.Generator.Name,
		"seed", m.cfg.Seed,
	)
	return m, nil
}

// setStatus shows a status line and schedules its removal.
func (m *SessionModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusGen++
	m.status = text
	m.statusErr = isErr
	return clearStatusCmd(m.statusGen)
}

// View renders the current state to a string for display.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	bodyH := 0
	if m.height > 0 {
		bodyH = max(m.height-chromeLines, 1)
	}
	switch {
	case m.result == nil:
		b.WriteString(infoStyle.Render("generating..."))
	case m.showConfig:
		b.WriteString(m.renderConfig(bodyH))
	default:
		b.WriteString(RenderArea(m.result.Area, m.width, bodyH))
	}
	b.WriteString("\n")

	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(errorStyle.Render("error: " + m.status))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	if m.commandMode {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func (m SessionModel) renderHeader() string {
	title := titleStyle.Render("amazer")
	if m.result == nil {
		return title
	}
	cfg := m.result.Config
	parts := []string{
		cfg.Generator.String(),
		m.result.Area.Size().String(),
		fmt.Sprintf("seed %d", cfg.Seed),
		fmt.Sprintf("floors %d", m.result.Area.Count(core.IsPassable)),
		m.result.Elapsed.Round(100 * time.Microsecond).String(),
	}
	if len(cfg.Modifiers) > 0 {
		parts = append(parts, "modifiers "+strings.Join(cfg.ModifierNames(), ","))
	}
	return title + " " + infoStyle.Render(strings.Join(parts, " | "))
}

func (m SessionModel) renderConfig(maxLines int) string {
	data, err := config.Marshal(m.result.Config, config.FileName)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// Config returns the config of the next run.
func (m SessionModel) Config() config.AreaConfig {
	return m.cfg
}

// Result returns the last generated area, or nil before the first run ends.
func (m SessionModel) Result() *amazer.Result {
	return m.result
}

// Run starts the Bubble Tea program with a new session model.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
