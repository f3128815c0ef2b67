// Package hud draws the in-level overlay: the current phase, how much of
// the sight budget the shot uses, the bounce count, and the attempt tally.
package hud

import (
	"fmt"
	"image/color"

	"github.com/glasshouse/mirrorsight/internal/render"
)

// HUD manages the heads-up display.
type HUD struct {
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	state    string
	attempts int
	used     float64
	budget   float64
	bounces  int
}

// New creates a new HUD.
func New(r render.Renderer, screenWidth, screenHeight int) *HUD {
	return &HUD{
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetState updates the phase banner.
func (h *HUD) SetState(state string) {
	h.state = state
}

// SetAttempts updates the attempt tally.
func (h *HUD) SetAttempts(n int) {
	h.attempts = n
}

// SetShot updates the sight-line readout: meters used of the budget and
// the number of mirror bounces.
func (h *HUD) SetShot(used, budget float64, bounces int) {
	h.used = used
	h.budget = budget
	h.bounces = bounces
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD to the screen.
func (h *HUD) Draw(screen render.Image) {
	bannerColor := color.RGBA{255, 255, 200, 255}
	textColor := color.RGBA{200, 200, 200, 255}

	h.renderer.DrawText(screen, h.state, 12, 10, bannerColor, 1.2)
	h.renderer.DrawText(screen, fmt.Sprintf("Sight: %.1f / %.1f m", h.used, h.budget), 12, 28, textColor, 1.0)
	h.renderer.DrawText(screen, fmt.Sprintf("Bounces: %d", h.bounces), 12, 44, textColor, 1.0)
	h.renderer.DrawText(screen, fmt.Sprintf("Attempts: %d", h.attempts), 12, 60, textColor, 1.0)

	hintColor := color.RGBA{130, 130, 130, 255}
	h.renderer.DrawText(screen, "Aim with the mouse. Click to take the photo. Esc for menu.",
		12, h.screenHeight-20, hintColor, 1.0)
}
