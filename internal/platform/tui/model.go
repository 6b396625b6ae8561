package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Model is the Bubble Tea model that drives one Flappy Dragon session.
type Model struct {
	session       *dragon.Session
	world         config.DragonConfig // Tuning before any terminal fitting
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	config        core.RuntimeConfig
	pending       core.Action // Key pressed since the last tick
	lastTick      time.Time
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
// A nil logger discards log output.
func NewModel(gameCfg config.DragonConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionCfg := gameCfg
	if cfg.Fit {
		sessionCfg = fitWorld(gameCfg, cfg.ScreenW, cfg.ScreenH)
	}

	return Model{
		session:       dragon.New(sessionCfg, rand.New(rand.NewSource(cfg.Seed))),
		world:         gameCfg,
		screen:        core.NewScreen(sessionCfg.Screen.Width, sessionCfg.Screen.Height),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		config:        cfg,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session created", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	// The game sees at most one key per frame; the latest one wins.
	m.pending = m.keys.MapKey(msg)
	return m, nil
}

// handleResize tracks the terminal size. Without Fit the world keeps its
// size and is clipped to the window. With Fit it is refitted, but only in
// the menu so a run never changes shape under the player.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	if m.config.Fit {
		fitted := fitWorld(m.world, msg.Width, msg.Height)
		if m.session.Reconfigure(fitted) {
			m.logger.Debug("world refitted", "width", fitted.Screen.Width, "height", fitted.Screen.Height)
		}
	}
	return m, nil
}

// fitWorld sizes the world to a terminal. The help line takes the last row.
// An unknown or too small terminal keeps the configured world.
func fitWorld(world config.DragonConfig, width, height int) config.DragonConfig {
	if width <= 0 || height <= 1 {
		return world
	}
	return world.FitTo(width, height-1)
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	before := m.session.Mode()
	quit := m.session.Update(m.pending, dt)
	m.pending = core.ActionNone

	if after := m.session.Mode(); after != before {
		m.logger.Debug("mode changed", "from", before, "to", after, "score", m.session.Score())
	}

	if quit {
		m.logger.Debug("quit requested")
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	Draw(m.session.Frame(), m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("dragon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// defaultScreenshotDir returns ~/.dragon/screenshots, or a relative
// directory if home is unavailable.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".dragon", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.session.Frame(), m.screen)

	// Leave the last terminal row for the help line.
	maxH := 0
	if m.config.ScreenH > 1 {
		maxH = m.config.ScreenH - 1
	}
	return RenderScreen(m.screen, m.config.ScreenW, maxH) + "\n" + m.help.View(m.keys)
}

// Session returns the game session the model drives.
func (m Model) Session() *dragon.Session {
	return m.session
}

// Run starts the Bubble Tea program for a local terminal.
func Run(gameCfg config.DragonConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(gameCfg, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
