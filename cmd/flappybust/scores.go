package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappybust/internal/games/flappy"
	"github.com/vovakirdan/flappybust/internal/platform/tui"
	"github.com/vovakirdan/flappybust/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  flappybust scores
  flappybust scores --limit 25
  flappybust scores --interactive
  flappybust scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flappy.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flappy.GameID, "Flappybust", width, height)
	}

	scores, err := store.TopScores(flappy.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Flappybust")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappybust play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "Rank", "Score", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "----", "----", "----")
	for i, run := range scores {
		fmt.Printf("  %-4d  %-6d  %-7s  %-8s  %s\n",
			i+1, run.Score, run.Difficulty, run.Duration.Round(time.Second), run.PlayedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(flappy.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TimePlayed.Round(time.Second))
	}
	return nil
}
