package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best results for a board",
	Long: `Display the top results for the given board, or a summary of every
board when none is given.

Examples:
  slide scores
  slide scores 2048
  slide scores 2048_5x5 --limit 25
  slide scores 2048_3x3 --clear
  slide scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the board")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	variant := args[0]
	rg, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'slide list' to see available boards.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearResults(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", rg.Title())
		return
	}

	results, err := store.TopResults(variant, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", rg.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slide play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "---", "-----", "---", "----")

	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(variant); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.WinsCount, stats.BestTile, stats.AvgScore)
	}
}

// printSummary prints one line per played board.
func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	variants := make([]string, 0, len(all))
	for v := range all {
		variants = append(variants, v)
	}
	slices.Sort(variants)

	fmt.Printf("  %-10s  %-6s  %-5s  %-8s  %s\n", "Board", "Games", "Wins", "Best", "Best tile")
	for _, v := range variants {
		s := all[v]
		fmt.Printf("  %-10s  %-6d  %-5d  %-8d  %d\n", v, s.GamesCount, s.WinsCount, s.HighScore, s.BestTile)
	}
}
