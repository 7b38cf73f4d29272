package ws

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	errNoGame      = errors.New("no game in progress, send \"new\" first")
	errUnknownType = errors.New("unknown message type")
)

// session owns the game of one connection. Messages are handled one at a
// time by the connection's read loop.
type session struct {
	id             string
	defaultVariant string
	store          *storage.Store
	log            *log.Logger
	game           *game.Game
	saved          bool
}

// handle applies one client message and returns the reply.
func (s *session) handle(msg ClientMessage) ServerMessage {
	if msg.Type == TypeNew {
		if err := s.newGame(msg.Variant, msg.Seed); err != nil {
			return errorMessage(err)
		}
		return stateMessage(s.game, game.Outcome{})
	}

	if s.game == nil {
		return errorMessage(errNoGame)
	}

	var out game.Outcome
	switch msg.Type {
	case TypeMove:
		dir, err := board.ParseVector(msg.Dir)
		if err != nil {
			return errorMessage(err)
		}
		out, err = s.game.Move(dir)
		if err != nil {
			s.log.Error("move failed", "dir", msg.Dir, "error", err)
			return errorMessage(err)
		}
		if out.Status == game.StatusLost {
			s.saveResult()
		}
	case TypePause:
		s.game.TogglePause()
	case TypeContinue:
		s.game.Continue()
		if s.game.Status() == game.StatusLost {
			s.saveResult()
		}
	case TypeState:
	default:
		return errorMessage(fmt.Errorf("%w %q", errUnknownType, msg.Type))
	}

	return stateMessage(s.game, out)
}

// newGame replaces the current game, saving it first if it finished.
func (s *session) newGame(variant string, seed int64) error {
	if variant == "" {
		variant = s.defaultVariant
	}
	rg, err := registry.Create(variant)
	if err != nil {
		return err
	}
	g, ok := rg.(*game.Game)
	if !ok {
		return fmt.Errorf("variant %q is not a board game", variant)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.SetLogger(s.log)
	if err := g.Start(seed); err != nil {
		return err
	}

	s.finish()
	s.game = g
	s.saved = false
	s.log.Debug("game started", "variant", variant, "seed", seed)
	return nil
}

// finish stores the current game if it reached the win tile and was not saved yet.
func (s *session) finish() {
	if s.game != nil && s.game.Reached() {
		s.saveResult()
	}
}

func (s *session) saveResult() {
	if s.saved || s.store == nil || s.game == nil || s.game.Score() == 0 {
		return
	}
	st := s.game.State()
	_, err := s.store.SaveResult(storage.Result{
		Variant: s.game.ID(),
		Session: s.id,
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
		Won:     st.Won,
	})
	if err != nil {
		s.log.Error("could not save result", "error", err)
		return
	}
	s.saved = true
	s.log.Info("result saved", "variant", s.game.ID(), "score", st.Score, "max", st.MaxTile, "won", st.Won)
}
