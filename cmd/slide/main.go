// slide is a sliding-tile puzzle (2048) for the terminal, SSH and WebSocket clients.
//
// Usage:
//
//	slide list               - List available boards
//	slide play [board]       - Play a board (default 2048)
//	slide menu               - Pick boards interactively
//	slide sim                - Run headless simulated games
//	slide serve              - Start SSH and/or WebSocket servers
//	slide scores <board>     - Show best results for a board
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.slide2048/results.db)
//	--config <path>      - Rules YAML file
//	--rows, --cols <n>   - Override the classic board size
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/game"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagRows     int
	flagCols     int
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "slide2048 - the sliding-tile puzzle in your terminal",
	Long: `slide2048 is a 2048 engine with a terminal front end, an SSH server
and a WebSocket JSON server.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker
  sim      - Simulate games without a terminal
  serve    - Start SSH and/or WebSocket servers
  scores   - View best results

Examples:
  slide play
  slide play 2048_5x5
  slide play --rows 6 --cols 4
  slide sim --games 100 --strategy corner
  slide serve --ssh :2222 --ws :8080
  slide scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide2048/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to rules YAML")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Rows of the classic board (0 = from rules)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Columns of the classic board (0 = from rules)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger and applies rules before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	logger, err = newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	rules, err := config.LoadRules(flagConfig)
	if err != nil {
		return err
	}
	rules = rules.WithBoard(flagRows, flagCols)
	if err := rules.Validate(); err != nil {
		return err
	}
	game.SetRules(rules)

	logger.Debug("rules loaded",
		"rows", rules.Board.Rows,
		"cols", rules.Board.Cols,
		"initial", rules.Spawn.InitialTiles,
		"per_move", rules.Spawn.PerMove,
		"four_probability", rules.Spawn.FourProbability,
	)
	return nil
}

// newLogger returns a stderr logger at the given level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide2048",
		Level:           lvl,
	}), nil
}

// runtimeConfig returns a config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
