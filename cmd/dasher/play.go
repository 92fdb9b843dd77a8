package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/platform/tui"
	"github.com/vovakirdan/dapper-dasher/internal/platform/window"
	"github.com/vovakirdan/dapper-dasher/internal/registry"
)

const defaultVariant = "dasher"

var (
	flagRenderer string
	flagAssets   string
	flagWatch    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant (default: dasher).

Controls:
  Space      - Jump
  P          - Pause
  R          - Restart (after the run ends)
  Esc/Q      - Quit

Renderers:
  window   - Desktop window with the sprite sheets from --assets
  terminal - ASCII rendition in the terminal

Difficulty options:
  easy   - Start slow, speed up to max
  normal - Start at 30% difficulty, speed up to max
  hard   - Start at 70% difficulty, speed up to max
  fixed  - Constant speed (default)

Examples:
  dasher play
  dasher play dasher-gauntlet --difficulty hard
  dasher play --renderer terminal
  dasher play --config ./my-dasher.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "window", "Renderer: window or terminal")
	playCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory containing the textures")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change (window renderer)")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := defaultVariant
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'dasher list' to see available variants.")
		os.Exit(1)
	}

	var err error
	switch flagRenderer {
	case "window":
		err = playWindow(variantID)
	case "terminal":
		err = playTerminal(variantID)
	default:
		err = fmt.Errorf("unknown renderer %q", flagRenderer)
	}
	if err != nil {
		logger.Error("play failed", "variant", variantID, "error", err)
		os.Exit(1)
	}
}

func playWindow(variantID string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watchPath := ""
	if flagWatch {
		watchPath = config.Source(flagConfig)
		if watchPath == "" {
			logger.Warn("--watch needs a config file; using embedded defaults without reload")
		}
	}

	logger.Info("starting", "variant", variantID, "renderer", "window")
	return window.Run(window.Options{
		Config:    dasherCfg,
		VariantID: variantID,
		AssetsDir: flagAssets,
		WatchPath: watchPath,
		Preset:    config.ParsePreset(flagDifficulty),
		Runtime:   runtimeConfig(),
		Store:     store,
		Logger:    logger,
	})
}

func playTerminal(variantID string) error {
	if flagWatch {
		logger.Warn("--watch only applies to the window renderer")
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, logger, terminalRuntime())
}

// terminalRuntime sizes the runtime config to the current terminal,
// keeping the default 80x24 when stdout is not a terminal.
func terminalRuntime() core.RuntimeConfig {
	cfg := runtimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// runtimeConfig applies the global flags to the default runtime.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
