package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
	"github.com/vovakirdan/fishrun/internal/telemetry"
)

// Options carries the optional collaborators of a game session.
type Options struct {
	Player   string                 // Recorded with scores; empty means local
	Recorder *telemetry.Recorder    // nil disables metrics
	Events   *telemetry.EventLogger // nil disables event logging
}

// enemyCounter is implemented by games that report their enemy population.
type enemyCounter interface {
	EnemyCount() int
}

// GameModel runs one game: it samples keys, measures frame time, steps the
// game and persists the result when the run ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *core.KeyTracker
	clock      *frameClock
	actions    core.InputFrame // One-shot actions collected since the last tick
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current run has been persisted
}

// NewGameModel creates a model for game. A zero seed is replaced with the
// current time.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      core.NewKeyTracker(core.DefaultFirstHold, core.DefaultRepeatHold),
		clock:     &frameClock{},
		actions:   core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The world is resolution independent; only the buffer changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if (m.gameState.GameOver || m.gameState.Paused) && m.keyMapper.IsBack(msg) {
		return m.leave()
	}

	k, action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.persist()
		return m, tea.Quit
	}
	if k != core.KeyNone {
		m.keys.Press(k, now)
	}
	if action != core.ActionNone {
		m.actions.Set(action)
	}
	return m, nil
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.persist()
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.actions.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.actions.Clear()
		m.keys.Reset()
		m.clock.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	dt := m.clock.Next(now, m.config.FixedDt())
	frame := m.keys.Frame(now, dt)
	for a, on := range m.actions.Actions {
		if on {
			frame.Set(a)
		}
	}
	m.actions.Clear()

	start := time.Now()
	result := m.game.Step(frame)
	elapsed := time.Since(start)
	m.gameState = result.State

	enemies := 0
	if ec, ok := m.game.(enemyCounter); ok {
		enemies = ec.EnemyCount()
	}
	m.opts.Recorder.ObserveStep(elapsed, result.Events, enemies)
	m.opts.Events.Log(result.Events)

	if m.gameState.GameOver {
		m.persist()
	}
	return m, tickCmd(m.config.TickRate)
}

// persist saves the score and run summary once per run. Saving is best
// effort; the game continues regardless.
func (m *GameModel) persist() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	state := m.game.State()
	if state.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScoreFor(m.game.ID(), m.opts.Player, state.Score)
	}
	if r, ok := m.game.(registry.Reporter); ok {
		summary := r.Summary()
		if summary.Elapsed > 0 {
			//nolint:errcheck // Best-effort save
			m.store.SaveRun(m.opts.Player, summary)
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".fishrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
