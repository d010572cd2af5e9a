package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/gatherers/internal/config"
	"github.com/napolitain/gatherers/internal/logging"
)

var (
	configFile string
	logLevel   string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gatherers",
		Short: "Gatherers economy simulation",
		Long: `A tick-based economy simulation: players assign workers to gather
Iron, Copper and Stone, queue production of new workers, and sell
resources to a consumer sector whose prices drift after every trade.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to gatherers.yaml")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(newRunCmd(), newMarketCmd(), newCatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the logger. Errors are fatal.
func setup() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := logging.Setup(cfg.Logging)
	if err != nil {
		color.Red("Error configuring logging: %v", err)
		os.Exit(1)
	}
	return cfg, logger
}

func printTitle(subtitle string) {
	if quiet {
		return
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Printf("│  %-25s│\n", "Gatherers")
	titleColor.Printf("│  %-25s│\n", subtitle)
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}
