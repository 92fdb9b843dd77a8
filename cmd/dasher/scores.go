package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/registry"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show run history",
	Long: `Display the best runs recorded for a variant.

Without a variant, a summary of every variant played so far is shown.

Examples:
  dasher scores
  dasher scores dasher
  dasher scores dasher-endless --limit 20
  dasher scores --recent
  dasher scores dasher-pair --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs across all variants")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
		if !registry.Exists(variantID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
			fmt.Fprintln(os.Stderr, "Run 'dasher list' to see available variants.")
			os.Exit(1)
		}
	}
	if flagClear && variantID == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearRuns(os.Stdout, store, variantID)
	case flagRecent:
		err = printRecent(os.Stdout, store, flagLimit)
	case variantID == "":
		err = printSummary(os.Stdout, store)
	default:
		err = printBest(os.Stdout, store, variantID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func variantTitle(variantID string) string {
	if game, err := registry.Create(variantID); err == nil {
		return game.Title()
	}
	return variantID
}

func printBest(w io.Writer, store *storage.Store, variantID string, limit int) error {
	runs, err := store.TopRuns(variantID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Runs - %s\n\n", variantTitle(variantID))

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'dasher play %s' to set the first one!\n", variantID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Outcome, fmt.Sprintf("%.1fs", r.Survived), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.Stats(variantID); err == nil {
		fmt.Fprintf(w, "Runs: %d  Wins: %d  Best: %d  Longest: %.1fs\n",
			stats.Runs, stats.Wins, stats.BestScore, stats.LongestAlive)
	}
	return nil
}

func printRecent(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recent Runs\n\n")
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-6s  %-6s  %-8s  %s\n", "Variant", "Score", "Result", "Time", "Date")
	fmt.Fprintf(w, "  %-16s  %-6s  %-6s  %-8s  %s\n", "-------", "-----", "------", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-6d  %-6s  %-8s  %s\n",
			r.VariantID, r.Score, r.Outcome, fmt.Sprintf("%.1fs", r.Survived), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run History\n\n")
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-5s  %-7s  %s\n", "Variant", "Runs", "Wins", "Best", "Avg", "Last played")
	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-5s  %-7s  %s\n", "-------", "----", "----", "----", "---", "-----------")
	for _, id := range slices.Sorted(maps.Keys(all)) {
		s := all[id]
		fmt.Fprintf(w, "  %-16s  %-5d  %-5d  %-5d  %-7.1f  %s\n",
			id, s.Runs, s.Wins, s.BestScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearRuns(w io.Writer, store *storage.Store, variantID string) error {
	if err := store.ClearRuns(variantID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared run history for %s.\n", variantTitle(variantID))
	return nil
}
