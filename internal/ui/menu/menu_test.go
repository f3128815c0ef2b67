package menu

import (
	"testing"

	"github.com/glasshouse/mirrorsight/internal/level"
	"github.com/glasshouse/mirrorsight/internal/render"
)

type stubInput struct {
	cursorX, cursorY int
	justPressedKeys  map[render.Key]bool
	mouseJustPressed bool
}

func (s *stubInput) IsKeyPressed(render.Key) bool                 { return false }
func (s *stubInput) IsKeyJustPressed(k render.Key) bool           { return s.justPressedKeys[k] }
func (s *stubInput) GetCursorPosition() (int, int)                { return s.cursorX, s.cursorY }
func (s *stubInput) IsMouseButtonPressed(render.MouseButton) bool { return false }
func (s *stubInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return s.mouseJustPressed && b == render.MouseButtonLeft
}

func (s *stubInput) press(keys ...render.Key) {
	s.justPressedKeys = map[render.Key]bool{}
	for _, k := range keys {
		s.justPressedKeys[k] = true
	}
}

func (s *stubInput) clickAt(x, y int) {
	s.justPressedKeys = map[render.Key]bool{}
	s.cursorX, s.cursorY = x, y
	s.mouseJustPressed = true
}

func testEntries() []level.Entry {
	return []level.Entry{
		{Name: "Gallery", Path: "01_gallery.json"},
		{Name: "Corridor", Path: "02_corridor.json"},
	}
}

func TestMenuKeyboardSelection(t *testing.T) {
	input := &stubInput{}
	m := NewMainMenu(testEntries(), nil, input, 800, 600)

	input.press(render.KeyDown)
	if selected, _ := m.Update(); selected {
		t.Fatal("Moving the highlight must not start a level")
	}

	input.press(render.KeyEnter)
	selected, entry := m.Update()
	if !selected {
		t.Fatal("Enter should start the highlighted level")
	}
	if entry.Path != "02_corridor.json" {
		t.Errorf("Started %q, want the second entry", entry.Path)
	}

	// Down at the bottom of the list stays put.
	input.press(render.KeyDown, render.KeySpace)
	if _, entry := m.Update(); entry.Path != "02_corridor.json" {
		t.Errorf("Started %q, the highlight should clamp at the last entry", entry.Path)
	}
}

func TestMenuClickSelectsThenStarts(t *testing.T) {
	input := &stubInput{}
	m := NewMainMenu(testEntries(), nil, input, 800, 600)

	// A click rising edge inside the second entry's row highlights it.
	input.clickAt(listX+10, listStartY+entryHeight+5)
	if selected, _ := m.Update(); selected {
		t.Fatal("The first click on an unhighlighted entry only selects it")
	}

	// The button staying down across frames is not a new click.
	input.mouseJustPressed = false
	if selected, _ := m.Update(); selected {
		t.Fatal("A held button must not count as a second click")
	}

	// A second rising edge on the now-highlighted entry starts it.
	input.clickAt(listX+10, listStartY+entryHeight+5)
	selected, entry := m.Update()
	if !selected {
		t.Fatal("The second click on the highlighted entry should start it")
	}
	if entry.Path != "02_corridor.json" {
		t.Errorf("Started %q, want the clicked entry", entry.Path)
	}
}

func TestMenuEmptyListNeverSelects(t *testing.T) {
	input := &stubInput{}
	m := NewMainMenu(nil, nil, input, 800, 600)
	input.press(render.KeyEnter)
	if selected, _ := m.Update(); selected {
		t.Error("An empty menu has nothing to start")
	}
}
