package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/slide2048/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// boardSize returns the drawn board width and height.
func (g *Game) boardSize() (w, h int) {
	return g.opts.Cols*cellWidth + 1, g.opts.Rows*cellHeight + 1
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.grid == nil {
		dst.DrawTextCentered(g.screenH/2, "Not started")
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and board info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Max: %d", g.MaxTile())
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)

	dims := fmt.Sprintf("%dx%d  Moves: %d", g.opts.Rows, g.opts.Cols, g.moves)
	dst.DrawText(boardX+(boardW-len(dims))/2, 2, dims)
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	rows, cols := g.opts.Rows, g.opts.Cols

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for _, t := range g.grid.Tiles() {
		cellX := boardX + t.C*cellWidth + 1
		cellY := boardY + t.R*cellHeight + 1

		valStr := strconv.Itoa(t.Value)
		padLeft := max(0, (cellWidth-1-len(valStr))/2)
		dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.TileColor(t.Value))

		// Markers for tiles touched by the last move
		switch {
		case t.IsMerging:
			dst.SetColor(cellX, cellY, '*', core.ColorBrightWhite)
		case t.IsNew:
			dst.SetColor(cellX, cellY, '+', core.ColorGray)
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	centerX, centerY := area.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.status == StatusWon:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", "Enter: keep going", "R: restart")
	case g.status == StatusLost:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", g.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | Enter: Continue | R: Restart | Q: Quit"
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
