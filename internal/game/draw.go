package game

import (
	"image/color"
	"log"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/render"
	"github.com/glasshouse/mirrorsight/internal/room"
	"github.com/glasshouse/mirrorsight/internal/sight"
)

var (
	backgroundColor = color.RGBA{18, 18, 26, 255}
	floorColor      = color.RGBA{34, 36, 48, 255}
	mirrorColor     = color.RGBA{140, 200, 255, 255}
	solidWallColor  = color.RGBA{110, 104, 96, 255}
	playerColor     = color.RGBA{240, 240, 240, 255}
	targetColor     = color.RGBA{110, 230, 130, 255}
	decoyColor      = color.RGBA{230, 110, 110, 255}
	rayColor        = color.RGBA{255, 220, 100, 255}
	rayGhostColor   = color.RGBA{255, 220, 100, 140}
	ghostFloorColor = color.RGBA{60, 80, 110, 70}
	ghostEdgeColor  = color.RGBA{140, 200, 255, 110}
	hitMarkColor    = color.RGBA{255, 120, 80, 255}
)

const (
	mirrorStrokeWidth = 3.0
	solidStrokeWidth  = 2.0
	rayStrokeWidth    = 2.0
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawRoom(screen, g.Level.Room, floorColor, mirrorColor, solidWallColor)
	g.drawItems(screen, g.Level.Room)

	switch g.State {
	case StateAiming:
		g.drawRay(screen, g.Preview.Points(), rayColor)
		g.drawTerminal(screen, g.Preview)
	case StateUnfolding, StateResult:
		g.drawUnfolding(screen)
	}

	g.GameHUD.Draw(screen)
	g.drawMessages(screen)
}

// drawUnfolding renders the current animation snapshot: the reflected room
// copy swinging into place, the straightened head, and the blending tail.
func (g *Game) drawUnfolding(screen render.Image) {
	if g.anim == nil {
		return
	}
	f, err := g.anim.frame()
	if err != nil {
		log.Printf("Unfolding frame failed: %v", err)
		g.anim.skip()
		return
	}

	if f.Ghost != nil {
		g.drawRoom(screen, *f.Ghost, ghostFloorColor, ghostEdgeColor, ghostEdgeColor)
		g.drawGhostItems(screen, *f.Ghost)
	}

	g.drawRay(screen, f.Head, rayColor)
	if f.Ghost != nil {
		g.drawRay(screen, f.Tail.Points(), rayGhostColor)
	}
	if g.State == StateResult {
		g.drawTerminal(screen, g.FinalRay)
	}
}

func (g *Game) drawRoom(screen render.Image, rm room.Room, floor, mirror, solid color.RGBA) {
	verts := rm.Vertices()
	xs := make([]float32, len(verts))
	ys := make([]float32, len(verts))
	for i, v := range verts {
		xs[i], ys[i] = g.worldToScreen(v)
	}
	g.Renderer.FillPolygon(screen, xs, ys, floor)

	for _, e := range rm.Edges() {
		ax, ay := g.worldToScreen(e.A)
		bx, by := g.worldToScreen(e.B)
		if e.Mirror {
			g.Renderer.StrokeLine(screen, ax, ay, bx, by, mirrorStrokeWidth, mirror)
		} else {
			g.Renderer.StrokeLine(screen, ax, ay, bx, by, solidStrokeWidth, solid)
		}
	}
}

func (g *Game) drawItems(screen render.Image, rm room.Room) {
	ppm := g.Level.PixelsPerMeter
	for _, it := range rm.Items() {
		x, y := g.worldToScreen(it.Pos)
		r := float32(float64(it.Radius) * ppm)
		g.Renderer.FillCircle(screen, x, y, r, itemColor(it.Kind))
	}
	// Ring around the player so the camera origin reads at a glance.
	px, py := g.worldToScreen(rm.Player().Pos)
	pr := float32(float64(rm.Player().Radius) * ppm)
	g.Renderer.StrokeCircle(screen, px, py, pr+3, 1, playerColor)
}

func (g *Game) drawGhostItems(screen render.Image, rm room.Room) {
	ppm := g.Level.PixelsPerMeter
	for _, it := range rm.Items() {
		x, y := g.worldToScreen(it.Pos)
		r := float32(float64(it.Radius) * ppm)
		c := itemColor(it.Kind)
		c.A = 110
		g.Renderer.StrokeCircle(screen, x, y, r, 1, c)
	}
}

func itemColor(kind room.ItemKind) color.RGBA {
	switch kind {
	case room.Target:
		return targetColor
	case room.Decoy:
		return decoyColor
	default:
		return playerColor
	}
}

func (g *Game) drawRay(screen render.Image, pts []geometry.Point, clr color.RGBA) {
	for i := 0; i+1 < len(pts); i++ {
		ax, ay := g.worldToScreen(pts[i])
		bx, by := g.worldToScreen(pts[i+1])
		g.Renderer.StrokeLine(screen, ax, ay, bx, by, rayStrokeWidth, clr)
	}
}

// drawTerminal marks where the sight-line ended: a ring on the item it
// reached, or a small cross where the budget ran out.
func (g *Game) drawTerminal(screen render.Image, ray sight.Ray) {
	x, y := g.worldToScreen(ray.Terminal.At)
	if item, ok := ray.Item(); ok {
		ppm := g.Level.PixelsPerMeter
		ix, iy := g.worldToScreen(item.Pos)
		r := float32(float64(item.Radius)*ppm) + 4
		g.Renderer.StrokeCircle(screen, ix, iy, r, 2, hitMarkColor)
		return
	}
	const arm = 5
	g.Renderer.StrokeLine(screen, x-arm, y-arm, x+arm, y+arm, 1, hitMarkColor)
	g.Renderer.StrokeLine(screen, x-arm, y+arm, x+arm, y-arm, 1, hitMarkColor)
}

func (g *Game) drawMessages(screen render.Image) {
	y := g.ScreenHeight - 40 - len(g.Messages)*18
	for _, msg := range g.Messages {
		alpha := uint8(255)
		if msg.TimeLeft < 1.0 {
			alpha = uint8(255 * msg.TimeLeft)
		}
		g.Renderer.DrawText(screen, msg.Text, 20, y, color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 18
	}
}
