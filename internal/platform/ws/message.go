package ws

import (
	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/game"
)

// Client message types.
const (
	TypeNew      = "new"
	TypeMove     = "move"
	TypePause    = "pause"
	TypeContinue = "continue"
	TypeState    = "state"
)

// Server message types.
const (
	TypeError = "error"
)

// ClientMessage is a request sent by the browser or script.
type ClientMessage struct {
	Type    string `json:"type"`
	Dir     string `json:"dir,omitempty"`     // move: up, down, left or right
	Variant string `json:"variant,omitempty"` // new: registry variant, server default when empty
	Seed    int64  `json:"seed,omitempty"`    // new: RNG seed, random when zero
}

// TileView is the wire form of one tile.
type TileView struct {
	ID        string `json:"id"`
	Index     int    `json:"index"`
	R         int    `json:"r"`
	C         int    `json:"c"`
	Value     int    `json:"value"`
	IsNew     bool   `json:"is_new,omitempty"`
	IsMerging bool   `json:"is_merging,omitempty"`
}

// ServerMessage is a state snapshot or an error.
type ServerMessage struct {
	Type    string     `json:"type"`
	Variant string     `json:"variant,omitempty"`
	Rows    int        `json:"rows,omitempty"`
	Cols    int        `json:"cols,omitempty"`
	Tiles   []TileView `json:"tiles,omitempty"`
	Score   int        `json:"score"`
	Delta   int        `json:"delta"`
	Changed bool       `json:"changed"`
	Status  string     `json:"status,omitempty"`
	Paused  bool       `json:"paused"`
	Error   string     `json:"error,omitempty"`
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err.Error()}
}

// stateMessage renders g along with the outcome of the last operation.
func stateMessage(g *game.Game, out game.Outcome) ServerMessage {
	grid := g.Grid()
	return ServerMessage{
		Type:    TypeState,
		Variant: g.ID(),
		Rows:    grid.Rows(),
		Cols:    grid.Cols(),
		Tiles:   tileViews(grid.Tiles()),
		Score:   g.Score(),
		Delta:   out.ScoreDelta,
		Changed: out.Changed,
		Status:  g.Status().String(),
		Paused:  g.Paused(),
	}
}

func tileViews(tiles []*board.Tile) []TileView {
	views := make([]TileView, len(tiles))
	for i, t := range tiles {
		views[i] = TileView{
			ID:        t.ID,
			Index:     t.Index,
			R:         t.R,
			C:         t.C,
			Value:     t.Value,
			IsNew:     t.IsNew,
			IsMerging: t.IsMerging,
		}
	}
	return views
}
