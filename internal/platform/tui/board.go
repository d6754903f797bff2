package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Each board tile is drawn two columns wide so it looks square in a terminal.
const tileW = 2

// BoardView is everything DrawBoard needs to paint one frame.
type BoardView struct {
	Snapshot  snake.Snapshot
	Effects   Effects
	Preset    string
	Best      int
	Paused    bool
	Collision snake.CollisionKind
}

// boardRect returns the framed board area for a tile count, placed below
// the HUD row and centered horizontally.
func boardRect(tiles, screenW int) core.Rect {
	w := tiles*tileW + 2
	h := tiles + 2
	return core.NewRect((screenW-w)/2, 1, w, h)
}

// boardFits reports whether the framed board and HUD fit on the screen.
func boardFits(tiles, screenW, screenH int) bool {
	return boardRect(tiles, screenW).Fits(screenW, screenH)
}

// DrawBoard renders the HUD, board and any status overlay into dst.
func DrawBoard(dst *core.Screen, v BoardView) {
	dst.Clear()
	s := v.Snapshot

	if !boardFits(s.TileCount, dst.Width(), dst.Height()) {
		drawTooSmall(dst, s.TileCount)
		return
	}

	drawHUD(dst, v)

	r := boardRect(s.TileCount, dst.Width())
	dst.DrawBox(r, core.ColorBorder)
	for y := 0; y < s.TileCount; y++ {
		for x := 0; x < s.TileCount; x++ {
			drawTile(dst, r, s.TileCount, snake.Cell{X: x, Y: y}, "· ", core.ColorBoard)
		}
	}

	if s.HasFood {
		c := core.ColorFood
		if v.Effects.Flashing() {
			c = core.ColorFlash
		}
		drawTile(dst, r, s.TileCount, s.Food, "<>", c)
	}

	for i := len(s.Snake) - 1; i >= 0; i-- {
		cell := s.Snake[i]
		if i == 0 {
			c := core.ColorSnakeHead
			if s.Status == snake.StatusOver && !s.Won {
				c = core.ColorDanger
			}
			drawTile(dst, r, s.TileCount, cell, "██", c)
			continue
		}
		drawTile(dst, r, s.TileCount, cell, "▓▓", core.ColorSnakeBody)
	}

	drawOverlay(dst, r, v)
}

// drawTile paints one board tile. Tiles outside the board (a head that
// left it on a wall crash) are skipped.
func drawTile(dst *core.Screen, r core.Rect, tiles int, c snake.Cell, glyph string, color core.Color) {
	if c.X < 0 || c.Y < 0 || c.X >= tiles || c.Y >= tiles {
		return
	}
	dst.DrawText(r.X+1+c.X*tileW, r.Y+1+c.Y, glyph, color)
}

func drawHUD(dst *core.Screen, v BoardView) {
	s := v.Snapshot
	scoreColor := core.ColorHUD
	if v.Effects.Flashing() {
		scoreColor = core.ColorFlash
	}

	x := 1
	x = hudText(dst, x, "SNAKE", core.ColorAccent)
	x = hudText(dst, x, fmt.Sprintf("Score %d", s.Score), scoreColor)
	x = hudText(dst, x, fmt.Sprintf("Best %d", max(v.Best, s.Score)), core.ColorHUD)
	x = hudText(dst, x, fmt.Sprintf("Speed %dms", s.Interval.Milliseconds()), core.ColorHUD)
	if v.Preset != "" {
		x = hudText(dst, x, "["+v.Preset+"]", core.ColorMuted)
	}
	if v.Effects.ShowFaster() {
		hudText(dst, x, "faster!", core.ColorAccent)
	}
}

// hudText draws a HUD field and returns the x of the next one.
func hudText(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawText(x, 0, text, c)
	return x + len([]rune(text)) + 2
}

func drawOverlay(dst *core.Screen, r core.Rect, v BoardView) {
	s := v.Snapshot
	var lines []string
	color := core.ColorHUD

	switch {
	case v.Paused && s.Status == snake.StatusRunning:
		lines = []string{"PAUSED", "Press P to resume"}
	case s.Status == snake.StatusNotStarted:
		lines = []string{"S N A K E", "Press Enter to start"}
		color = core.ColorAccent
	case s.Status == snake.StatusOver && s.Won:
		lines = []string{"You filled the board!", fmt.Sprintf("Score: %d", s.Score), "Press any key to play again"}
		color = core.ColorAccent
	case s.Status == snake.StatusOver:
		title := "Game Over"
		if v.Collision != snake.CollisionNone {
			title = fmt.Sprintf("Game Over (%s)", v.Collision)
		}
		lines = []string{title, fmt.Sprintf("Score: %d", s.Score), "Press any key to play again"}
		color = core.ColorDanger
	default:
		return
	}

	top := r.Y + (r.H-len(lines))/2
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line))+2)
	}
	dst.DrawRect(core.NewRect(r.X+(r.W-w)/2, top, w, len(lines)), ' ', core.ColorDefault)
	for i, line := range lines {
		drawBanner(dst, r, top+i, line, color)
	}
}

// drawBanner draws text centered on r, padded with one blank on each side.
// Text wider than the board spills over the frame onto the cleared panel.
func drawBanner(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	padded := " " + text + " "
	n := len([]rune(padded))
	dst.DrawText(r.X+(r.W-n)/2, y, padded, c)
}

func drawTooSmall(dst *core.Screen, tiles int) {
	needW := tiles*tileW + 2
	needH := tiles + 4
	lines := []string{
		"Window too small",
		fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()+1),
		"Resize to continue",
	}
	colors := []core.Color{core.ColorDanger, core.ColorHUD, core.ColorMuted}
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	box := core.CenteredRect(w, len(lines), dst.Width(), dst.Height())
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+i, line, colors[i])
	}
}
