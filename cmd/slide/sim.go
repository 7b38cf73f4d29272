package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagSimGames    int
	flagSimStrategy string
	flagSimMaxMoves int
	flagSimStopWin  bool
	flagSimSave     bool
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [board]",
	Short: "Play games headlessly with a simple strategy",
	Long: `Run games without a terminal and report the results.

Strategies:
  random  - Slide in a random direction each turn
  corner  - Prefer down, then left, then right, then up

Game i uses seed --seed + i, so runs are reproducible when --seed is set.

Examples:
  slide sim
  slide sim --games 100 --strategy corner --seed 1
  slide sim 2048_3x3 --games 20 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "random", "Move strategy: random or corner")
	simCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 100000, "Stop a game after this many moves")
	simCmd.Flags().BoolVar(&flagSimStopWin, "stop-at-win", false, "End a game when the win tile appears")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store results in the database")
	simCmd.Flags().BoolVar(&flagSimVerbose, "board", false, "Print the final board of every game")
}

// strategy returns the directions to try, in order, for the next move.
type strategy func(rng *rand.Rand) []board.Vector

var strategies = map[string]strategy{
	"random": func(rng *rand.Rand) []board.Vector {
		dirs := []board.Vector{board.Up, board.Down, board.Left, board.Right}
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		return dirs
	},
	"corner": func(_ *rand.Rand) []board.Vector {
		return []board.Vector{board.Down, board.Left, board.Right, board.Up}
	},
}

func runSim(_ *cobra.Command, args []string) {
	variant := "2048"
	if len(args) > 0 {
		variant = args[0]
	}

	pick, ok := strategies[flagSimStrategy]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q (want random or corner)\n", flagSimStrategy)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	session := uuid.NewString()

	var totalScore, wins, best, bestTile int
	for i := range flagSimGames {
		g, err := newSimGame(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := g.Start(seed + int64(i)); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
			os.Exit(1)
		}

		if err := playOut(g, pick, rng); err != nil {
			fmt.Fprintf(os.Stderr, "Error in game %d: %v\n", i+1, err)
			os.Exit(1)
		}

		totalScore += g.Score()
		best = max(best, g.Score())
		bestTile = max(bestTile, g.MaxTile())
		if g.Reached() {
			wins++
		}

		logger.Info("game finished",
			"game", i+1,
			"score", g.Score(),
			"max_tile", g.MaxTile(),
			"moves", g.Moves(),
			"status", g.Status(),
		)
		if flagSimVerbose {
			fmt.Printf("Game %d: score %d\n%s\n\n", i+1, g.Score(), g.Grid())
		}

		if store != nil && g.Score() > 0 {
			if _, err := store.SaveResult(storage.Result{
				Variant: variant,
				Session: session,
				Score:   g.Score(),
				MaxTile: g.MaxTile(),
				Moves:   g.Moves(),
				Won:     g.Reached(),
			}); err != nil {
				logger.Warn("could not save result", "error", err)
			}
		}
	}

	if flagSimGames == 0 {
		return
	}
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		flagSimGames, wins, best, bestTile, float64(totalScore)/float64(flagSimGames))
}

// newSimGame creates the board variant as a concrete game.
func newSimGame(variant string) (*game.Game, error) {
	rg, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	g, ok := rg.(*game.Game)
	if !ok {
		return nil, fmt.Errorf("board %q cannot be simulated", variant)
	}
	g.SetLogger(logger)
	return g, nil
}

// playOut moves until the game is lost, the move cap is hit, or the win
// tile appears with --stop-at-win.
func playOut(g *game.Game, pick strategy, rng *rand.Rand) error {
	for g.Moves() < flagSimMaxMoves {
		switch g.Status() {
		case game.StatusLost:
			return nil
		case game.StatusWon:
			if flagSimStopWin {
				return nil
			}
			g.Continue()
			continue
		}

		changed := false
		for _, dir := range pick(rng) {
			out, err := g.Move(dir)
			if err != nil {
				return err
			}
			if out.Changed {
				changed = true
				break
			}
		}
		if !changed {
			return fmt.Errorf("no direction changed a playing board:\n%s", g.Grid())
		}
	}
	return nil
}
