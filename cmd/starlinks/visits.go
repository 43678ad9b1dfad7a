package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starlinks/internal/platform/tui"
	"github.com/vovakirdan/starlinks/internal/storage"
)

var (
	flagLimit  int
	flagByTag  bool
	flagBrowse bool
	flagClear  bool
)

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Show the log of opened links",
	Long: `Display the links opened by hitting targets, newest first.

Examples:
  starlinks visits
  starlinks visits --limit 50
  starlinks visits --by-tag
  starlinks visits --browse
  starlinks visits --clear`,
	Args: cobra.NoArgs,
	RunE: runVisits,
}

func init() {
	visitsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent visits to show")
	visitsCmd.Flags().BoolVar(&flagByTag, "by-tag", false, "Show totals per tag")
	visitsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the log interactively")
	visitsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded visit")
}

func runVisits(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening visit log: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearVisits(); err != nil {
			return fmt.Errorf("clearing visit log: %w", err)
		}
		fmt.Println("Visit log cleared.")
		return nil

	case flagBrowse:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunVisits(store, flagLimit, width, height); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil

	case flagByTag:
		return printCounts(store)

	default:
		return printRecent(store)
	}
}

func printRecent(store *storage.Store) error {
	visits, err := store.RecentVisits(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving visits: %w", err)
	}

	fmt.Println("Recent visits")
	fmt.Println()

	if len(visits) == 0 {
		fmt.Println("No links visited yet.")
		fmt.Println()
		fmt.Println("Run 'starlinks play' and shoot a target!")
		return nil
	}

	// Calculate column widths
	maxTagLen := 3 // "Tag" header
	for _, v := range visits {
		maxTagLen = max(maxTagLen, len(v.Tag))
	}

	// Print header
	fmt.Printf("  %-16s  %-*s  %-8s  %s\n", "Date", maxTagLen, "Tag", "Host", "URL")
	fmt.Printf("  %-16s  %-*s  %-8s  %s\n", "----", maxTagLen, "---", "----", "---")

	for _, v := range visits {
		dateStr := v.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-*s  %-8s  %s\n", dateStr, maxTagLen, v.Tag, v.Host, v.URL)
	}
	return nil
}

func printCounts(store *storage.Store) error {
	counts, err := store.VisitCounts()
	if err != nil {
		return fmt.Errorf("retrieving visits: %w", err)
	}

	fmt.Println("Visits by tag")
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("No links visited yet.")
		return nil
	}

	maxTagLen := 3
	for _, c := range counts {
		maxTagLen = max(maxTagLen, len(c.Tag))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxTagLen, "Tag", "Visits", "Last")
	fmt.Printf("  %-*s  %-6s  %s\n", maxTagLen, "---", "------", "----")

	total := 0
	for _, c := range counts {
		fmt.Printf("  %-*s  %-6d  %s\n", maxTagLen, c.Tag, c.Count, c.LastVisit.Format("2006-01-02 15:04"))
		total += c.Count
	}

	fmt.Println()
	fmt.Printf("Total: %d\n", total)
	return nil
}
