package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/chart"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Rows below and above the playfield: title, two gauge rows, help.
const chromeRows = 4

// Smallest terminal the flight view is drawn in.
const (
	minWidth  = 40
	minHeight = 12
)

type phase int

const (
	phaseWelcome phase = iota
	phaseFlight
	phaseOutcome
	phaseChart
)

// Options configures an interactive session.
type Options struct {
	Config        config.LanderConfig
	Runtime       core.RuntimeConfig
	Difficulty    string
	Store         *storage.Store // nil disables the flight log
	Logger        *log.Logger    // nil discards
	ChartPath     string         // PNG written after each landing, empty to skip
	ScreenshotDir string         // defaults to ~/.lunar/screenshots

	// NewStopwatch creates the clock for each flight; the wall clock by default.
	NewStopwatch func() lander.Stopwatch
}

// surface is the probe the loop polls; quitting closes it.
type surface struct {
	closed bool
}

func (s *surface) Open() bool {
	return !s.closed
}

// Model is the Bubble Tea model for one lander session.
type Model struct {
	opts   Options
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	hud    hud
	screen *core.Screen
	width  int
	height int

	phase   phase
	seed    int64
	terrain lander.Terrain
	slider  *lander.ThrustSlider
	control *lander.InputController
	loop    *lander.Loop
	surface *surface
	result  lander.Result
	status  string

	quitting bool
}

// NewModel creates the model and prepares the first flight.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.NewStopwatch == nil {
		opts.NewStopwatch = func() lander.Stopwatch { return lander.NewWallStopwatch() }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:    opts,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hud:     newHUD(),
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-chromeRows, 0)),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		seed:    opts.Runtime.Seed,
		surface: &surface{},
	}
	m.hud.setWidth(m.width)
	m.help.Width = m.width

	if err := m.prepareFlight(); err != nil {
		return m, err
	}
	return m, nil
}

// prepareFlight builds terrain, controls and loop for the current seed.
func (m *Model) prepareFlight() error {
	cfg := m.opts.Config
	m.terrain = lander.NewTerrainGenerator(cfg.Terrain).Generate(m.seed)
	m.slider = lander.NewThrustSlider(cfg.Lander.MaxThrust, cfg.Controls.ThrustStep)
	m.control = lander.NewInputController(m.slider)

	loop, err := lander.NewLoop(cfg, m.control, m.opts.NewStopwatch(), m.surface)
	if err != nil {
		return err
	}
	m.loop = loop
	m.result = lander.Result{}
	m.status = ""
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.surface.closed = true
		if m.phase == phaseFlight {
			// The loop sees the closed surface and aborts without a verdict.
			m.loop.Tick()
			m.result = m.loop.Result()
			m.logger.Info("flight aborted", "seed", m.seed, "elapsed", round2(m.result.Elapsed))
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	switch m.phase {
	case phaseWelcome:
		if action == core.ActionConfirm {
			m.phase = phaseFlight
			m.logger.Info("ignition", "seed", m.seed, "difficulty", m.opts.Difficulty)
		}

	case phaseFlight:
		m.handleFlightKey(msg, action)

	case phaseOutcome:
		switch action {
		case core.ActionConfirm:
			m.phase = phaseChart
		case core.ActionRestart:
			return m.restart()
		}

	case phaseChart:
		if action == core.ActionRestart || action == core.ActionConfirm {
			return m.restart()
		}
	}

	return m, nil
}

func (m Model) handleFlightKey(msg tea.KeyMsg, action core.Action) {
	if f, ok := m.keys.ThrustPreset(msg); ok {
		m.slider.SetFraction(f)
		return
	}

	switch action {
	case core.ActionRotateLeft:
		m.control.Press(lander.TiltLeft)
	case core.ActionRotateRight:
		m.control.Press(lander.TiltRight)
	case core.ActionThrustUp:
		m.slider.Nudge(1)
	case core.ActionThrustDown:
		m.slider.Nudge(-1)
	case core.ActionThrustCut:
		m.slider.Set(0)
	}
}

// restart starts a new flight over fresh terrain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	if err := m.prepareFlight(); err != nil {
		m.logger.Error("cannot start flight", "err", err)
		m.quitting = true
		return m, tea.Quit
	}
	m.phase = phaseFlight
	m.logger.Info("ignition", "seed", m.seed, "difficulty", m.opts.Difficulty)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))
	m.hud.setWidth(msg.Width)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the flight by one loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickInterval())
	if m.phase != phaseFlight {
		return m, next
	}

	if m.loop.Tick() == lander.StatusTerminated {
		m.finishFlight()
	} else if m.logger.GetLevel() <= log.DebugLevel {
		f := m.loop.Frame()
		m.logger.Debug("tick",
			"n", f.Tick,
			"dt", round2(f.Dt),
			"height", round2(f.State.Height),
			"vy", round2(f.State.VY),
			"theta", round2(f.State.Theta),
			"fuel", round2(f.State.Fuel),
			"thrust", f.EffectiveThrust,
		)
	}
	return m, next
}

// finishFlight shows the verdict and records the landing.
func (m *Model) finishFlight() {
	m.result = m.loop.Result()
	m.phase = phaseOutcome

	final := m.result.Final
	m.logger.Info("touchdown",
		"outcome", m.result.Outcome,
		"speed", round2(math.Abs(final.VY)),
		"theta", round2(final.Theta),
		"fuel", round2(final.Fuel),
		"time", round2(m.result.Elapsed),
		"ticks", m.result.Ticks,
	)

	if m.opts.Store != nil {
		rec := storage.FlightRecord{
			Outcome:     m.result.Outcome.String(),
			FlightTime:  m.result.Elapsed,
			FuelLeft:    final.Fuel,
			ImpactSpeed: math.Abs(final.VY),
			Tilt:        final.Theta,
			Seed:        m.seed,
			Difficulty:  m.opts.Difficulty,
		}
		if _, err := m.opts.Store.SaveFlight(rec); err != nil {
			m.logger.Warn("flight not recorded", "err", err)
		}
	}

	if m.opts.ChartPath != "" {
		if err := chart.SavePNG(m.opts.ChartPath, m.result.Trajectory); err != nil {
			m.logger.Warn("chart not saved", "err", err)
			m.status = "chart export failed"
		} else {
			m.logger.Info("chart saved", "path", m.opts.ChartPath)
			m.status = "chart saved to " + m.opts.ChartPath
		}
	}
}

// saveScreenshot writes the current screen buffer to a text file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".lunar", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lander_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current phase into the screen buffer.
func (m Model) draw() {
	switch m.phase {
	case phaseChart:
		chart.DrawText(m.screen, m.result.Trajectory)
	default:
		f := m.loop.Frame()
		lander.Render(m.screen, lander.Scene{
			Terrain: m.terrain,
			Ceiling: m.opts.Config.Terrain.Ceiling,
			State:   f.State,
			Thrust:  f.EffectiveThrust,
		})
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minWidth, minHeight, m.width, m.height)
	}

	switch m.phase {
	case phaseWelcome:
		return renderDialog(lander.WelcomeDialog, "enter to launch · q to quit", m.width, m.height)

	case phaseOutcome:
		d, _ := lander.DialogFor(m.result.Outcome)
		hint := "enter for the trajectory · r new flight · q quit"
		if m.status != "" {
			hint = m.status + "\n" + hint
		}
		return renderDialog(d, hint, m.width, m.height)

	case phaseChart:
		m.draw()
		return RenderScreen(m.screen) + "\n\n" +
			statusStyle.Render(fmt.Sprintf("%s · %.1f s · r new flight · q quit", m.result.Outcome, m.result.Elapsed)) + "\n"
	}

	m.draw()
	f := m.loop.Frame()
	title := titleStyle.Render("LUNAR LANDER") +
		statusStyle.Render(fmt.Sprintf("  seed %d · t %5.1f s · θ %+.2f rad", m.seed, f.Elapsed, f.State.Theta))

	return title + "\n" +
		RenderScreen(m.screen) + "\n" +
		m.hud.view(f, m.opts.Config.Lander.StartHeight, m.slider) + "\n" +
		m.help.View(m.keys)
}

// Result returns the last finished or aborted flight.
func (m Model) Result() lander.Result {
	return m.result
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
