package scroller

import (
	"fmt"

	"github.com/vovakirdan/sky-scroller/internal/core"
)

// Render draws the current game state to the screen.
// World coordinates are scaled to fit the terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	sx := float64(dst.Width()) / float64(g.cfg.Viewport.Width)
	sy := float64(dst.Height()) / float64(g.cfg.Viewport.Height)

	for _, o := range g.field.Obstacles() {
		art := g.sprites.ObstacleSprite(o.Variant)
		dst.DrawRect(o.Rect().Scale(sx, sy), art.Rune, art.Color)
	}

	if g.phase != PhaseGameOver {
		art := g.sprites.PlayerSprite(g.sprite)
		dst.DrawRect(g.player.Rect().Scale(sx, sy), art.Rune, art.Color)
	}

	g.drawHUD(dst)

	switch g.phase {
	case PhasePaused:
		dst.Tint(g.sprites.Overlay)
		g.drawCenteredMessage(dst, "Paused", "Press Enter to continue")
	case PhaseGameOver:
		g.drawLossScreen(dst)
	}
}

// drawHUD writes score and level on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", int(g.player.Score.Score))
	dst.DrawTextColored(1, 0, score, g.sprites.HUD)

	level := fmt.Sprintf(" Level: %d ", g.player.Score.Level)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, g.sprites.HUD)
}

// drawLossScreen lays out the summary at the same relative heights as the
// play field: title at a quarter, best at a third, score at a half.
func (g *Game) drawLossScreen(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/4, "Game Over", core.ColorRed)
	dst.DrawTextCentered(h/3, fmt.Sprintf("High Score: %d", int(g.best.Best())), core.ColorBrightWhite)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Your Score: %d", int(g.player.Score.Score)), core.ColorBrightWhite)
	dst.DrawTextCentered(h/2+1, "Press Enter to try again.", core.ColorWhite)
	if g.newBest {
		dst.DrawTextCentered(h/2+3, "New high score!", core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}
