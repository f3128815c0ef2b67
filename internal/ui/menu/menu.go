// Package menu implements the level-select screen.
package menu

import (
	"fmt"
	"image/color"

	"github.com/glasshouse/mirrorsight/internal/level"
	"github.com/glasshouse/mirrorsight/internal/render"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

// Menu layout constants.
const (
	listX       = 50
	listStartY  = 110
	entryHeight = 30
)

// MainMenu represents the level-select screen.
type MainMenu struct {
	entries      []level.Entry
	selected     int
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates a new main menu over the scanned level entries.
func NewMainMenu(entries []level.Entry, r render.Renderer, input render.InputManager, width, height int) *MainMenu {
	return &MainMenu{
		entries:      entries,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetSize updates the menu layout for a new screen size.
func (m *MainMenu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Update updates the menu state based on user input.
// Returns true and the chosen entry when a level was selected.
func (m *MainMenu) Update() (selected bool, entry level.Entry) {
	if len(m.entries) == 0 {
		return false, level.Entry{}
	}

	if m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mouseX, mouseY := m.input.GetCursorPosition()
		for i := range m.entries {
			r := rect{x: listX, y: listStartY + i*entryHeight, w: 400, h: entryHeight - 5}
			if pointInRect(mouseX, mouseY, r) {
				if i == m.selected {
					// Second click on the highlighted entry starts it.
					return true, m.entries[i]
				}
				m.selected = i
				break
			}
		}
	}

	if m.input.IsKeyJustPressed(render.KeyUp) && m.selected > 0 {
		m.selected--
	}
	if m.input.IsKeyJustPressed(render.KeyDown) && m.selected < len(m.entries)-1 {
		m.selected++
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		return true, m.entries[m.selected]
	}

	return false, level.Entry{}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	// Clear screen with dark background
	screen.Fill(color.RGBA{20, 20, 30, 255})

	titleColor := color.RGBA{255, 255, 255, 255}
	m.renderer.DrawText(screen, "MIRRORSIGHT", listX, 30, titleColor, 3.0)
	m.renderer.DrawText(screen, "Select a Room", listX, 70, titleColor, 1.5)

	if len(m.entries) == 0 {
		warnColor := color.RGBA{255, 100, 100, 255}
		m.renderer.DrawText(screen, "No levels found in the data directory!", listX, listStartY, warnColor, 1.2)
		return
	}

	for i, e := range m.entries {
		y := listStartY + i*entryHeight
		entryColor := color.RGBA{180, 180, 180, 255}
		if i == m.selected {
			entryColor = color.RGBA{255, 255, 100, 255}
			m.renderer.DrawText(screen, ">", listX-15, y, entryColor, 1.2)
		}
		text := e.Name
		if e.Description != "" {
			text = fmt.Sprintf("%s - %s", e.Name, e.Description)
		}
		m.renderer.DrawText(screen, text, listX, y, entryColor, 1.2)
	}

	instructionY := m.screenHeight - 60
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "Up/Down to choose, Enter or Space to start.", 20, instructionY, instructionColor, 1.0)
	m.renderer.DrawText(screen, "Click a room twice to jump straight in.", 20, instructionY+20, instructionColor, 1.0)
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}
