// dasher is a side-scrolling runner: jump over nebulae, reach the finish line.
//
// Usage:
//
//	dasher list                 - List playable variants
//	dasher play [variant]       - Play a variant (default: dasher)
//	dasher menu                 - Terminal menu to pick variants interactively
//	dasher scores <variant>     - Show best runs for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--db <path>           - Set database path (default: ~/.dasher/runs.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs.
	logger    *log.Logger
	dasherCfg config.DasherConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dapper Dasher - jump the nebulae, reach the finish line",
	Long: `Dapper Dasher is a side-scrolling runner. Jump over animated nebulae
while the city scrolls by; touching one ends the run.

Available commands:
  list     - Show all playable variants
  play     - Play a variant in a window or the terminal
  menu     - Interactive variant picker (terminal)
  scores   - View best runs

Examples:
  dasher list
  dasher play
  dasher play dasher-endless --renderer terminal
  dasher menu --difficulty hard
  dasher scores dasher`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup configures logging, loads the config and registers the variants.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	dasherCfg = cfg

	ids := dasher.RegisterVariants(cfg)
	logger.Debug("config loaded", "source", configSource(), "variants", len(ids))
	return nil
}

func configSource() string {
	if src := config.Source(flagConfig); src != "" {
		return src
	}
	return "embedded"
}

// openStore opens run history. Failure is logged and the caller continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
