package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all playable variants",
	Long:  `Shows every variant defined by the active configuration.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants configured.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Obstacles", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "---------", "-----")

	for _, g := range games {
		count := "-"
		if v, ok := dasherCfg.Variant(g.ID); ok {
			count = fmt.Sprintf("%d", dasherCfg.Resolve(v).Obstacles.Count)
		}
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, g.ID, count, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'dasher play <id>' to play a variant.")
}
