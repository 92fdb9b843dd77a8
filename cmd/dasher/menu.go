package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/platform/tui"
	"github.com/vovakirdan/dapper-dasher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from a terminal menu",
	Long: `Start in interactive menu mode in the terminal.

Use arrow keys or j/k to navigate, Enter to select a variant, Tab for
the best runs. After a run ends, you return to the menu.

Examples:
  dasher menu
  dasher menu --fps 30
  dasher menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.VariantID)
		if err != nil {
			logger.Error("cannot create variant", "variant", menuResult.VariantID, "error", err)
			continue
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			logger.Error("run failed", "variant", menuResult.VariantID, "error", err)
		}
	}
}
