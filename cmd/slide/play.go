package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default 2048).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  Enter/C           - Keep going after reaching 2048
  R                 - Restart
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  slide play
  slide play 2048_3x3
  slide play --rows 5 --cols 8
  slide play --config ./my-rules.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := "2048"
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'slide list' to see available boards.")
		os.Exit(1)
	}

	g, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(g, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore opens the results database, or returns nil so play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
