package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle-go/internal/factory"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil

	rootCmd := &cobra.Command{
		Use:   "seabattle",
		Short: "Sea battle against an automated opponent",
		Long: `seabattle is a terminal sea battle game on a 6x6 board.

Place your fleet, then take turns with the computer guessing coordinates.
A hit or a sunk ship earns another shot; the first side to sink the whole
enemy fleet wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			var err error
			app, err = factory.New(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a fresh game every time (env: SEABATTLE_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: SEABATTLE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: SEABATTLE_OUTPUT)")
	rootCmd.PersistentFlags().IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "Random placement attempts per ship (env: SEABATTLE_ATTEMPTS)")
	rootCmd.PersistentFlags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Opponent targeting strategy (env: SEABATTLE_STRATEGY)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Session storage: memory, redis (env: SEABATTLE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --storage redis (env: SEABATTLE_REDIS_URL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
