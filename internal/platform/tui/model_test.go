package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step feeds msg to the model and, when a generation run is started,
// completes it synchronously. Other commands (status timers, cursor blink)
// are dropped.
func step(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	run := m.run
	next, cmd := m.Update(msg)
	m = next.(SessionModel)
	if cmd == nil || m.run == run {
		return m
	}
	if area, ok := cmd().(areaMsg); ok {
		next, _ = m.Update(area)
		m = next.(SessionModel)
	}
	return m
}

func started(t *testing.T, opts SessionOptions) SessionModel {
	t.Helper()
	m := NewSessionModel(opts)
	next, _ := m.Update(m.Init()())
	m = next.(SessionModel)
	if m.Result() == nil {
		t.Fatalf("first run produced no area, status %q", m.status)
	}
	return m
}

func command(t *testing.T, m SessionModel, line string) SessionModel {
	t.Helper()
	m = step(t, m, runeKey(":"))
	if !m.commandMode {
		t.Fatal("':' should open the command line")
	}
	m.input.SetValue(line)
	return step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func testOptions() SessionOptions {
	return SessionOptions{
		Config: config.AreaConfig{
			Size:      core.S(21, 11),
			Generator: config.MustGenerator("kruskal"),
			Seed:      7,
		},
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
	}
}

func TestRenderArea(t *testing.T) {
	area := core.MustParseASCII(
		"###",
		"# #",
		"#?#",
	)

	out := RenderArea(area, 0, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "███") {
		t.Errorf("wall row = %q", lines[0])
	}
	if !strings.Contains(lines[1], " ") {
		t.Errorf("floor cell missing in %q", lines[1])
	}
	if !strings.Contains(lines[2], "?") {
		t.Errorf("empty cell missing in %q", lines[2])
	}

	cropped := strings.Split(RenderArea(area, 2, 1), "\n")
	if len(cropped) != 1 || strings.Count(cropped[0], "█") != 2 {
		t.Errorf("RenderArea(2, 1) = %q", cropped)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h int
		want core.Size
	}{
		{80, 24, core.S(79, 21)},
		{81, 26, core.S(81, 23)},
		{1, 2, core.S(1, 1)},
	}

	for _, tc := range tests {
		if got := fitSize(tc.w, tc.h); got != tc.want {
			t.Errorf("fitSize(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestSessionFirstArea(t *testing.T) {
	m := started(t, testOptions())

	if m.Result().Config.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", m.Result().Config.Seed)
	}
	view := m.View()
	for _, want := range []string{"amazer", "kruskal", "21x11", "seed 7", "█"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSessionNextAreaUsesNewSeed(t *testing.T) {
	m := started(t, testOptions())
	first := m.Result()

	m = step(t, m, runeKey("n"))
	if m.Result() == first {
		t.Fatal("'n' should produce a new area")
	}
	if m.Result().Config.Seed == 7 {
		t.Error("'n' should pick a new seed")
	}
}

func TestSessionCommands(t *testing.T) {
	m := started(t, testOptions())

	m = command(t, m, "size 15x9")
	if got := m.Result().Area.Size(); got != core.S(15, 9) {
		t.Errorf("size = %v, expected 15x9", got)
	}
	if m.Result().Config.Seed != 7 {
		t.Error("changing the size should keep the seed")
	}

	m = command(t, m, "generator rooms:room_placement_attempts=10")
	if m.Result().Config.Generator.Name != "rooms" {
		t.Errorf("generator = %s, expected rooms", m.Result().Config.Generator.Name)
	}

	m = command(t, m, "modifiers break-passages:amount=2;emmure")
	if got := m.Result().Area.Size(); got != core.S(17, 11) {
		t.Errorf("size after emmure = %v, expected 17x11", got)
	}

	m = command(t, m, "seed 99")
	if m.Result().Config.Seed != 99 {
		t.Errorf("seed = %d, expected 99", m.Result().Config.Seed)
	}

	m = command(t, m, "modifiers none")
	if len(m.Result().Config.Modifiers) != 0 {
		t.Error("'modifiers none' should clear the modifiers")
	}
}

func TestSessionCommandErrors(t *testing.T) {
	tests := []string{
		"size 0x4",
		"generator nope",
		"modifiers emmure;bogus",
		"seed abc",
		"frobnicate",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			m := started(t, testOptions())
			before := m.Result()
			m = command(t, m, line)
			if !m.statusErr || m.status == "" {
				t.Errorf("expected an error status, got %q", m.status)
			}
			if m.Result() != before {
				t.Error("a failed command should keep the current area")
			}
		})
	}
}

func TestSessionGenerationFailureRestoresConfig(t *testing.T) {
	m := started(t, testOptions())

	// Parses fine but the generator rejects it.
	m = command(t, m, "generator rooms:min_room_size=4x4,max_room_size=4x4")
	if !m.statusErr {
		t.Fatal("expected a generation error")
	}
	if m.Config().Generator.Name != "kruskal" {
		t.Errorf("config generator = %s, expected kruskal", m.Config().Generator.Name)
	}
}

func TestSessionSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "archive.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions()
	opts.Dir = dir
	opts.Store = store
	m := started(t, opts)

	m = step(t, m, runeKey("s"))
	if m.statusErr {
		t.Fatalf("save failed: %s", m.status)
	}
	path := filepath.Join(dir, "kruskal-7.maze")
	area, err := codec.ReadFile(path, codec.Binary)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !area.Equal(m.Result().Area) {
		t.Error("saved area differs from the displayed one")
	}

	recent, err := store.RecentAreas(10)
	if err != nil {
		t.Fatalf("RecentAreas() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Name != "kruskal-7" {
		t.Fatalf("archive = %+v, expected one kruskal-7 record", recent)
	}

	m = command(t, m, "save-config ../outside")
	if m.statusErr {
		t.Fatalf("save-config failed: %s", m.status)
	}
	cfg, err := config.Load(filepath.Join(dir, "outside.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Seed != 7 || cfg.Generator.Name != "kruskal" {
		t.Errorf("saved config = %+v", cfg)
	}
}

func TestSessionSaveUnavailable(t *testing.T) {
	m := started(t, testOptions())

	m = step(t, m, runeKey("s"))
	if !m.statusErr {
		t.Error("save without directory or archive should fail")
	}

	m = command(t, m, "save-config")
	if !m.statusErr {
		t.Error("save-config without directory should fail")
	}
}

func TestSessionConfigToggleAndQuit(t *testing.T) {
	m := started(t, testOptions())

	m = step(t, m, runeKey("c"))
	if !strings.Contains(m.View(), "generator: kruskal") {
		t.Errorf("config view missing generator:\n%s", m.View())
	}

	next, cmd := m.Update(runeKey("q"))
	m = next.(SessionModel)
	if cmd == nil || !m.quitting {
		t.Error("'q' should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionCommandEscape(t *testing.T) {
	m := started(t, testOptions())
	m = step(t, m, runeKey(":"))
	m.input.SetValue("size 5x5")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.commandMode {
		t.Error("esc should close the command line")
	}
	if m.Result().Area.Size() != core.S(21, 11) {
		t.Error("esc should not run the command")
	}
}

func TestSessionFitToScreen(t *testing.T) {
	opts := testOptions()
	opts.FitToScreen = true
	m := started(t, opts)

	if got := m.Result().Area.Size(); got != core.S(79, 21) {
		t.Errorf("initial size = %v, expected 79x21", got)
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 41, Height: 20})
	if got := m.Result().Area.Size(); got != core.S(41, 17) {
		t.Errorf("size after resize = %v, expected 41x17", got)
	}
}

func TestSSHSessionOptions(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig(), logger: log.New(io.Discard)}

	opts := srv.sessionOptions("alice", 100, 30)
	if !opts.FitToScreen {
		t.Error("a zero area size should fit the area to the terminal")
	}
	if opts.Username != "alice" || opts.Dir != "" {
		t.Errorf("options = %+v", opts)
	}

	m := started(t, opts)
	if got := m.Result().Area.Size(); got != core.S(99, 27) {
		t.Errorf("size = %v, expected 99x27", got)
	}
	if name := m.defaultName(); !strings.HasPrefix(name, "alice-backtracker-") {
		t.Errorf("defaultName() = %q", name)
	}
}
