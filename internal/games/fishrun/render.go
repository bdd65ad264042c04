package fishrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/games/fishrun/sim"
)

// Row 0 is the HUD; the playfield fills the rest of the screen.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	bounds         sim.Bounds
	sx, sy         float64
	width, height  int
}

func newViewport(b sim.Bounds, width, height int) viewport {
	rows := height - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		bounds: b,
		sx:     float64(width) / (b.Right - b.Left),
		sy:     float64(rows) / (b.Top - b.Bottom),
		width:  width,
		height: height,
	}
}

func (v viewport) cellX(x float64) int {
	return int(math.Floor((x - v.bounds.Left) * v.sx))
}

func (v viewport) cellY(y float64) int {
	return hudRows + int(math.Floor((v.bounds.Top-y)*v.sy))
}

// rect converts a world box to cells. Anything with area gets at least one cell.
func (v viewport) rect(b core.AABB) core.Rect {
	x0, x1 := v.cellX(b.Left()), v.cellX(b.Right())
	y0, y1 := v.cellY(b.Top()), v.cellY(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the scene description onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "fishrun failed to start")
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}

	v := newViewport(g.world.Bounds(), dst.Width(), dst.Height())
	playfield := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)

	floor := g.atlas.Glyph(g.floor)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), floor.Rune, floor.Color)

	for _, item := range g.world.Scene() {
		switch item.Layer {
		case sim.LayerBackground:
			// Screen is already cleared
		case sim.LayerScore:
			g.drawHUD(dst, item.Text)
		case sim.LayerPlayer:
			if g.blink() {
				continue
			}
			fallthrough
		default:
			glyph := g.atlas.Glyph(item.Sprite)
			dst.DrawRect(v.rect(item.Box).Clip(playfield), glyph.Rune, glyph.Color)
		}
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.world.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Fish: %d  |  Press R to restart", g.world.Score()))
	}
}

// blink hides the player on alternate tenths of a second while invulnerable.
func (g *Game) blink() bool {
	inv := g.world.Invulnerable()
	return inv > 0 && int(inv*10)%2 == 1
}

func (g *Game) drawHUD(dst *core.Screen, score string) {
	dst.DrawTextColor(1, 0, " "+score+" ", core.ColorBrightYellow)

	lives := fmt.Sprintf(" %s ", strings.Repeat("♥", g.world.Lives()))
	dst.DrawTextColor(len(score)+4, 0, lives, core.ColorRed)

	dist := fmt.Sprintf(" %dm ", int(g.world.Player().Distance/10))
	if g.world.Difficulty().IsEnabled() {
		level := g.world.Difficulty().Level(g.world.Progress())
		dist = fmt.Sprintf(" Lv %.1f %s", level, dist)
	}
	dst.DrawText(dst.Width()-len([]rune(dist))-1, 0, dist)
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2
	boxW := max(len(title), len([]rune(subtitle))) + 6
	boxX := (dst.Width() - boxW) / 2

	dst.DrawRect(core.NewRect(boxX, centerY-2, boxW, 5), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, centerY-2, boxW, 5))
	dst.DrawTextCentered(centerY-1, title)
	dst.DrawTextCentered(centerY+1, subtitle)
}
