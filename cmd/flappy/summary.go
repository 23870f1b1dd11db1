package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// printSummary writes the session's run statistics.
func printSummary(w io.Writer, store *storage.Store) {
	sum, err := store.Summary()
	if err != nil {
		fmt.Fprintf(w, "Could not summarize runs: %v\n", err)
		return
	}
	if sum.Runs == 0 {
		fmt.Fprintln(w, "No runs finished this session.")
		return
	}

	fmt.Fprintf(w, "Runs:  %d\n", sum.Runs)
	fmt.Fprintf(w, "Best:  %d\n", sum.Best)
	fmt.Fprintf(w, "Total: %d\n", sum.Total)
	fmt.Fprintf(w, "Mean:  %.1f\n", sum.MeanScore)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Best by mode:")
	for _, d := range config.Difficulties() {
		best, err := store.BestFor(string(d))
		if err != nil {
			fmt.Fprintf(w, "  %-7s ?\n", d)
			continue
		}
		fmt.Fprintf(w, "  %-7s %5d\n", d, best)
	}

	runs, err := store.Runs(5)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Last runs:")
	for _, r := range runs {
		fmt.Fprintf(w, "  #%-4d %-7s %5d  (%d ticks, %s)\n", r.ID, r.Difficulty, r.Score, r.Ticks, r.Frontend)
	}
}
