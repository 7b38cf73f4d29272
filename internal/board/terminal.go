package board

import "github.com/vovakirdan/slide2048/internal/core"

// WinValue is the tile value that wins the game.
const WinValue = 2048

// HasWon reports whether any tile reached WinValue.
func HasWon(tiles []*Tile) bool {
	for _, t := range tiles {
		if t.Value == WinValue {
			return true
		}
	}
	return false
}

// CanContinue reports whether any move is still possible: an empty cell
// exists, or some tile has an orthogonal neighbour of equal value.
func CanContinue(g *Grid) bool {
	if g.Len() < g.Size() {
		return true
	}

	for _, t := range g.Tiles() {
		for _, dir := range Directions {
			next := Location{
				R: core.Clamp(t.R+dir.R, 0, g.Rows()-1),
				C: core.Clamp(t.C+dir.C, 0, g.Cols()-1),
			}
			if next == t.Location {
				continue
			}
			neighbour := g.At(next)
			if neighbour == nil || neighbour.Value == t.Value {
				return true
			}
		}
	}
	return false
}
