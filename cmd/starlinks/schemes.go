package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starlinks/internal/input"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List touch control schemes",
	Long:  `Shows the on-screen control schemes that can be passed to 'play --controls'.`,
	Args:  cobra.NoArgs,
	Run:   runSchemes,
}

func runSchemes(_ *cobra.Command, _ []string) {
	schemes := input.List()

	if len(schemes) == 0 {
		fmt.Println("No control schemes available.")
		return
	}

	fmt.Println("Available control schemes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range schemes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range schemes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'starlinks play --controls <id>' to use one.")
}
