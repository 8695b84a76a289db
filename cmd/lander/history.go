package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the flight log",
	Long: `Display recent flights and per-outcome totals.

On a terminal the log opens as a scrollable table; when the output is
piped the most recent flights are printed as text.

Examples:
  lander history
  lander history --limit 5 | cat
  lander history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of flights to print when not on a terminal")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded flight")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening flight log: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearFlights(); err != nil {
			store.Close()
			fatalf("clearing flight log: %v", err)
		}
		fmt.Println("Flight log cleared.")
		return
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := tui.RunHistory(store, w, h); err != nil {
			store.Close()
			fatalf("showing flight log: %v", err)
		}
		return
	}

	if err := printHistory(store, flagLimit); err != nil {
		store.Close()
		fatalf("reading flight log: %v", err)
	}
}

func printHistory(store *storage.Store, limit int) error {
	flights, err := store.RecentFlights(limit)
	if err != nil {
		return err
	}

	fmt.Println("Flight Log")
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lander play' to make the first landing!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-13s  %-8s  %-10s  %-7s  %s\n", "#", "Outcome", "Time", "Speed", "Fuel", "Date")
	fmt.Printf("  %-5s  %-13s  %-8s  %-10s  %-7s  %s\n", "-", "-------", "----", "-----", "----", "----")

	for _, f := range flights {
		fmt.Printf("  %-5d  %-13s  %-8s  %-10s  %-7.0f  %s\n",
			f.ID,
			f.Outcome,
			fmt.Sprintf("%.1f s", f.FlightTime),
			fmt.Sprintf("%.2f m/s", f.ImpactSpeed),
			f.FuelLeft,
			f.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	counts, err := store.OutcomeCounts()
	if err != nil {
		return err
	}
	best, err := store.BestLanding()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(tui.SummaryLine(counts, best))

	stats, err := store.Stats()
	if err == nil && stats.Flights > 0 {
		fmt.Printf("Average flight: %.1f s\n", stats.AvgFlightTime)
	}
	return nil
}
