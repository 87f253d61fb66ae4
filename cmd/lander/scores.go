package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the flight log",
	Long: `Show recorded flights, best first.

By default this opens an interactive table (Tab toggles best/recent).
Use --plain for plain text output suitable for piping.

Examples:
  lander scores
  lander scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain-text flight log instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening flight log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain {
		if err := tui.RunFlightLog(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing flight log: %v\n", err)
			os.Exit(1)
		}
		return
	}

	flights, err := store.TopFlights(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Flight Log - Best Flights")
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lander fly' to make the first attempt!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %-8s  %-8s  %s\n",
		"Rank", "Result", "Score", "Speed m/s", "Pad m", "Fuel kg", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %-8s  %-8s  %s\n",
		"----", "------", "-----", "---------", "-----", "-------", "----")

	for i, f := range flights {
		result := "crashed"
		if f.Landed {
			result = "landed"
		}
		fmt.Printf("  %-4d  %-8s  %-7d  %-10.1f  %-8.0f  %-8.0f  %s\n",
			i+1, result, f.Score, f.TouchdownSpeed, f.PadDistance, f.FuelRemaining,
			f.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Attempts: %d  Landings: %d", stats.Attempts, stats.Landings)
	if stats.Landings > 0 {
		fmt.Printf("  Softest touchdown: %.1f m/s", stats.SoftestSpeed)
	}
	fmt.Println()
}
