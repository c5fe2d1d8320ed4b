package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/skirmish/internal/game"
	"github.com/samdwyer/skirmish/internal/logging"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	defaults := game.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "skirmish",
		Short: "Resolve a turn-based tactical encounter in the terminal",
		Long: `Generates an arena, fills each team with creatures up to a challenge
rating target and prompts for every actor's action in initiative order.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file for local development, before any SKIRMISH_*
			// value is read.
			if err := godotenv.Load(); err != nil {
				log.Printf("Note: .env file not loaded: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v)
		},
	}

	flags := cmd.Flags()
	flags.Int64("seed", defaults.Seed, "random seed, 0 picks one from the clock")
	flags.Int("width", defaults.Width, "arena width in cells")
	flags.Int("height", defaults.Height, "arena height in cells")
	flags.Int("branch-depth", defaults.BranchDepth, "how many times the room generator may split the arena")
	flags.Int("teams", defaults.Teams, "number of teams")
	flags.Float64("cr", defaults.CRTarget, "challenge rating each team is filled up to")
	flags.String("creatures", defaults.CreaturesFile, "YAML creature catalog replacing the built-in one")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-file", defaults.LogFile, "write structured logs to this file")

	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// configFrom reads flags, falling back to SKIRMISH_* environment variables.
func configFrom(v *viper.Viper) game.Config {
	return game.Config{
		Seed:          v.GetInt64("seed"),
		Width:         v.GetInt("width"),
		Height:        v.GetInt("height"),
		BranchDepth:   v.GetInt("branch-depth"),
		Teams:         v.GetInt("teams"),
		CRTarget:      v.GetFloat64("cr"),
		CreaturesFile: v.GetString("creatures"),
		LogLevel:      v.GetString("log-level"),
		LogFile:       v.GetString("log-file"),
	}
}

func run(ctx context.Context, v *viper.Viper) error {
	cfg := configFrom(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	telemetryCfg, err := telemetry.LoadConfig()
	if err != nil {
		log.Printf("Warning: telemetry config invalid: %v", err)
	}
	shutdown, err := telemetry.Setup(ctx, telemetryCfg)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	defer g.Close()

	return g.Run(ctx)
}
