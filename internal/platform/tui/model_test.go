package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 7
	m := NewModel(config.DefaultDragonConfig(), rt, nil)
	m.screenshotDir = t.TempDir()
	return m
}

// send feeds a message to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsGameOnTick(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = send(t, m, runeKey("p"))
	if m.Session().Mode() != dragon.ModeMenu {
		t.Fatal("keys should only reach the game on the next tick")
	}

	m, cmd := send(t, m, TickMsg(t0))
	if m.Session().Mode() != dragon.ModePlaying {
		t.Errorf("mode = %v, expected playing", m.Session().Mode())
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick")
	}
	if m.pending != core.ActionNone {
		t.Error("pending key should be consumed by the tick")
	}
}

func TestModelElapsedTimeDrivesPhysics(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg(t0))
	x := m.Session().Glider().X

	m, _ = send(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	if m.Session().Glider().X != x {
		t.Fatalf("glider stepped after 50ms")
	}

	m, _ = send(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	if m.Session().Glider().X != x+1 {
		t.Errorf("glider X = %d, expected %d after 100ms", m.Session().Glider().X, x+1)
	}
}

func TestModelFlap(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg(t0))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = send(t, m, TickMsg(t0.Add(time.Millisecond)))

	if v := m.Session().Glider().Velocity; v >= 0 {
		t.Errorf("velocity = %f, expected upward after a flap", v)
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey("q"))
	m, cmd := send(t, m, TickMsg(time.Unix(1000, 0)))

	if !isQuit(cmd) {
		t.Error("q in the menu should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg(time.Unix(1000, 0)))

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit while playing")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule a command")
	}

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}

	data, err := os.ReadFile(m.screenshotDir + "/" + entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Welcome to Flappy Dragon") {
		t.Error("screenshot should contain the menu")
	}
	if m.pending != core.ActionNone {
		t.Error("screenshot key should not reach the game")
	}
}

func TestModelViewClipsToWindow(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})

	view := m.View()
	lines := strings.Split(view, "\n")

	// 10 board rows plus the help line
	if len(lines) != 11 {
		t.Errorf("view has %d lines, expected 11", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "flap") {
		t.Errorf("last line = %q, expected key help", lines[len(lines)-1])
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.View(), "Welcome to Flappy Dragon") {
		t.Error("menu view should show the title")
	}
}

func TestModelInit(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init should start the frame loop")
	}
}

func newFitModel(t *testing.T, width, height int) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: 60, Seed: 7, Fit: true}
	m := NewModel(config.DefaultDragonConfig(), rt, nil)
	m.screenshotDir = t.TempDir()
	return m
}

func TestModelFitsWorldAtStart(t *testing.T) {
	m := newFitModel(t, 100, 26)

	got := m.Session().Config().Screen
	if got.Width != 100 || got.Height != 25 {
		t.Errorf("world = %dx%d, expected 100x25", got.Width, got.Height)
	}
}

func TestModelResizeRefitsInMenu(t *testing.T) {
	m := newFitModel(t, 100, 26)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 21})

	got := m.Session().Config().Screen
	if got.Width != 60 || got.Height != 20 {
		t.Errorf("world = %dx%d, expected 60x20 after resize", got.Width, got.Height)
	}
}

func TestModelResizeKeepsWorldWhilePlaying(t *testing.T) {
	m := newFitModel(t, 100, 26)
	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg(time.Unix(1000, 0)))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 21})

	got := m.Session().Config().Screen
	if got.Width != 100 || got.Height != 25 {
		t.Errorf("world = %dx%d, expected 100x25 to hold during a run", got.Width, got.Height)
	}
}

func TestModelResizeWithoutFitClips(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 21})

	if m.Session().Config() != config.DefaultDragonConfig() {
		t.Errorf("world changed without Fit: %+v", m.Session().Config().Screen)
	}
}
