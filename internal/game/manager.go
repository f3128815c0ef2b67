package game

import (
	"fmt"
	"log"

	"github.com/glasshouse/mirrorsight/internal/level"
	"github.com/glasshouse/mirrorsight/internal/render"
	"github.com/glasshouse/mirrorsight/internal/ui/menu"
)

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.MainMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
}

// NewManager creates a new game manager.
func NewManager(r render.Renderer, input render.InputManager, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		Renderer:     r,
		InputMgr:     input,
	}
}

// SetMainMenu sets the main menu.
func (m *Manager) SetMainMenu(mainMenu *menu.MainMenu) {
	m.MainMenu = mainMenu
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case menu.StateMainMenu:
		selected, entry := m.MainMenu.Update()
		if selected {
			if err := m.LoadLevel(entry); err != nil {
				log.Printf("Failed to load level: %v", err)
				return err
			}
			m.State = menu.StatePlaying
		}
	case menu.StatePlaying:
		if m.Game != nil {
			if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
				m.State = menu.StateMainMenu
				m.Game = nil
				return nil
			}
			if err := m.Game.Update(); err != nil {
				return err
			}
			if m.Game.Finished() {
				log.Printf("Level complete after %d attempts", m.Game.Attempts)
				m.State = menu.StateMainMenu
				m.Game = nil
			}
			return nil
		}
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.MainMenu != nil {
			m.MainMenu.SetSize(outsideWidth, outsideHeight)
		}
		if m.Game != nil {
			m.Game.ScreenWidth = outsideWidth
			m.Game.ScreenHeight = outsideHeight
			m.Game.GameHUD.SetScreenSize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// StartLevel loads a level by path and jumps straight into it, bypassing
// the menu.
func (m *Manager) StartLevel(path string) error {
	if err := m.LoadLevel(level.Entry{Path: path}); err != nil {
		return err
	}
	m.State = menu.StatePlaying
	return nil
}

// LoadLevel loads a level file and starts a session in it.
func (m *Manager) LoadLevel(entry level.Entry) error {
	log.Printf("Loading level: %s", entry.Path)

	lvl, err := level.Load(entry.Path)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", entry.Path, err)
	}

	m.Game = New(lvl, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight)
	log.Printf("Level loaded: %s (%d edges, %d items, budget %.1fm)",
		lvl.Name, len(lvl.Room.Edges()), len(lvl.Room.Items()), float64(lvl.Budget))
	return nil
}
