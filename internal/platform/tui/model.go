package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// helpHeight is the number of rows kept below the game for the key help.
const helpHeight = 1

// GameModel is the Bubble Tea model that runs one game: it feeds key presses
// to the game on every tick and renders the game's screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. cfg.ScreenH is the terminal height;
// the game gets one row less for the help footer.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, holdWindow time.Duration) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      NewHoldTracker(holdWindow),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey records the press for the next tick. Quit, back and screenshot
// are handled here and never reach the game.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action, m.now())
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize passes the new size to the game. Games that cannot resize in
// place are restarted unless the round is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.holds.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.inputFrame.Has(core.ActionRestart) {
		m.holds.Reset()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under
// ~/.blockfall/screenshots.
func (m GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game screen and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game in the current terminal. It returns true when the
// user left with the back key rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, holdWindow time.Duration) (bool, error) {
	model := backQuits{NewGameModel(game, cfg, holdWindow)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(backQuits); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}

// backQuits ends the program when the game asks for the menu, for runs
// without a session around the game.
type backQuits struct {
	GameModel
}

func (b backQuits) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		b.GameModel = gm
	}
	if b.BackToMenu() {
		return b, tea.Quit
	}
	return b, cmd
}
