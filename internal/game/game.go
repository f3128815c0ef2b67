package game

import (
	"log"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/level"
	"github.com/glasshouse/mirrorsight/internal/render"
	"github.com/glasshouse/mirrorsight/internal/sight"
	"github.com/glasshouse/mirrorsight/internal/ui/hud"
)

// Game holds the state of one level session: the loaded scene, the current
// aim, the live preview trace, and the unfolding animation after a shot.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Level        *level.Level
	Renderer     render.Renderer
	InputMgr     render.InputManager

	State    State
	Aim      geometry.Vec
	Preview  sight.Ray // re-traced every aiming tick
	FinalRay sight.Ray // the ray the photo was taken along
	Result   Shot
	Attempts int
	finished bool

	anim *unfolding

	// HUD
	GameHUD *hud.HUD

	// UI state
	Messages []Message
}

// New creates a game session for a loaded level.
func New(lvl *level.Level, r render.Renderer, input render.InputManager, width, height int) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Level:        lvl,
		Renderer:     r,
		InputMgr:     input,
		State:        StateAiming,
		Aim:          lvl.Aim,
		GameHUD:      hud.New(r, width, height),
	}
	g.Preview = g.trace(g.Aim)
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0

	g.updateMessages(dt)

	// R discards the shot and its derived values from any phase.
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Reset()
	}

	switch g.State {
	case StateAiming:
		g.updateAiming()
	case StateUnfolding:
		g.updateUnfolding(dt)
	case StateResult:
		if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) ||
			g.InputMgr.IsKeyJustPressed(render.KeyEnter) {
			if g.Result == ShotTarget {
				g.finished = true
			} else {
				g.Reset()
			}
		}
	}

	g.syncHUD()
	return nil
}

func (g *Game) updateAiming() {
	cx, cy := g.InputMgr.GetCursorPosition()
	world := g.screenToWorld(cx, cy)
	dir := world.Sub(g.Level.Room.Player().Pos)
	if dir.Length() > 0 {
		g.Aim = dir.Normalize()
	}
	g.Preview = g.trace(g.Aim)

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.takePhoto()
	}
}

func (g *Game) updateUnfolding(dt float64) {
	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.anim.skip()
	}
	g.anim.advance(dt)
	if g.anim.done() {
		g.State = StateResult
		g.ShowMessage(g.verdictText())
	}
}

// takePhoto freezes the preview ray, classifies it, and starts the
// unfolding animation.
func (g *Game) takePhoto() {
	g.Attempts++
	g.FinalRay = g.Preview
	g.Result = Classify(g.FinalRay)
	g.anim = newUnfolding(g.Level.Room, g.FinalRay)
	log.Printf("Photo %d: %s after %d bounces, path %.2fm of %.2fm",
		g.Attempts, g.Result, len(g.FinalRay.Bounces), float64(g.FinalRay.Length()), float64(g.Level.Budget))

	if g.anim.done() {
		// Nothing bounced, nothing to unfold.
		g.State = StateResult
		g.ShowMessage(g.verdictText())
		return
	}
	g.State = StateUnfolding
}

// Reset returns to aiming for another shot. The attempt counter keeps
// counting; the aim stays where it was.
func (g *Game) Reset() {
	g.State = StateAiming
	g.anim = nil
	g.Preview = g.trace(g.Aim)
}

func (g *Game) trace(dir geometry.Vec) sight.Ray {
	return sight.Trace(g.Level.Room, g.Level.Room.Player().Pos, dir, g.Level.Budget)
}

// Finished reports that the level was completed with a target photo and
// the player chose to move on.
func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) verdictText() string {
	switch g.Result {
	case ShotTarget:
		return "You photographed the target! Click to continue."
	case ShotDecoy:
		return "That was a decoy. Press R to try again."
	default:
		return "The photo shows nothing. Press R to try again."
	}
}

func (g *Game) syncHUD() {
	banner := stateName(g.State)
	if g.State == StateResult && g.Result == ShotTarget {
		banner = "COMPLETE"
	}
	g.GameHUD.SetState(banner)
	g.GameHUD.SetAttempts(g.Attempts)
	ray := g.Preview
	if g.State != StateAiming {
		ray = g.FinalRay
	}
	g.GameHUD.SetShot(float64(ray.Length()), float64(g.Level.Budget), len(ray.Bounces))
}

func stateName(s State) string {
	switch s {
	case StateUnfolding:
		return "UNFOLDING"
	case StateResult:
		return "RESULT"
	default:
		return "AIMING"
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}

// screenToWorld converts a cursor position to world coordinates. The view
// is centered on the level's view center; world Y points up, screen Y down.
func (g *Game) screenToWorld(sx, sy int) geometry.Point {
	ppm := g.Level.PixelsPerMeter
	return geometry.Point{
		X: g.Level.Center.X + (float64(sx)-float64(g.ScreenWidth)/2)/ppm,
		Y: g.Level.Center.Y - (float64(sy)-float64(g.ScreenHeight)/2)/ppm,
	}
}

// worldToScreen converts world coordinates to screen pixels.
func (g *Game) worldToScreen(p geometry.Point) (float32, float32) {
	ppm := g.Level.PixelsPerMeter
	sx := (p.X-g.Level.Center.X)*ppm + float64(g.ScreenWidth)/2
	sy := float64(g.ScreenHeight)/2 - (p.Y-g.Level.Center.Y)*ppm
	return float32(sx), float32(sy)
}
