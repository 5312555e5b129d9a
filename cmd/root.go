package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/config"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

var (
	configFile string
	logLevel   string

	// Set by loadEnvironment before any subcommand runs
	cfg    *config.Config
	logger *zap.Logger
	eval   *check.Evaluator
)

var rootCmd = &cobra.Command{
	Use:   "steelcalc",
	Short: "Steel Member and Connection Capacity Tool",
	Long: `steelcalc - Steel Capacity Calculator

A CLI tool for the capacity check of hot-rolled steel members and
connections based on SNI 1729:2020 (AISC 360 LRFD).

This tool helps structural engineers perform:
  - Tension, compression and flexural capacity of WF sections
  - Combined axial and bending interaction (H1-1a / H1-1b)
  - Weld, bolt, base plate and moment end plate checks
  - Factored load effects using SNI 1727:2020 load combinations
  - Batch checks from YAML or Excel job files
  - A JSON HTTP API for the same checks

Forces are given in kN, moments in kN-m, lengths in mm and
stresses in MPa.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   steelcalc v%-45s║\n", version.Version)
		fmt.Println("  ║   Steel Member and Connection Capacity Calculator         ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the capacity check of steel members and")
		fmt.Println("  connections based on SNI 1729:2020 (AISC 360 LRFD).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored loads using SNI 1727:2020 load combinations")
		fmt.Println("    • Tension, compression and flexure of WF profiles")
		fmt.Println("    • Combined axial and bending interaction")
		fmt.Println("    • Weld, bolt, base plate and end plate connections")
		fmt.Println("    • PDF reports, Excel batch jobs and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'steelcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}

// loadEnvironment reads configuration, builds the logger and opens the
// section catalog shared by every command.
func loadEnvironment(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := config.NewLogger(c.Log)
	if err != nil {
		return err
	}

	cat, err := profile.Open(c.Catalog.Path, profile.WithLogger(l))
	if err != nil {
		return fmt.Errorf("failed to open section catalog: %w", err)
	}
	l.Debug("catalog ready",
		zap.String("path", c.Catalog.Path),
		zap.Int("sections", cat.Len()),
		zap.String("command", cmd.CommandPath()))

	cfg, logger = c, l
	eval = check.NewEvaluator(cat, c.Steel.Defaults())
	return nil
}
