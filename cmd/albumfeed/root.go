package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"albumfeed/internal/logging"
	"albumfeed/internal/scraper"
	"albumfeed/pkg/utils"
)

// commandContext carries the configuration and logger shared by every
// subcommand; it is built once in PersistentPreRunE.
type commandContext struct {
	configPath string
	logLevel   string
	timeout    time.Duration

	cfg utils.Config
	log *slog.Logger
}

func (c *commandContext) load() error {
	cfg, err := utils.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.timeout > 0 {
		cfg.Timeout.Duration = c.timeout
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = log
	return nil
}

func (c *commandContext) aggregator() *scraper.Aggregator {
	f := scraper.NewFetcher(c.cfg.UserAgent, c.cfg.Timeout.Duration)
	return scraper.NewAggregator(
		scraper.NewSourceA(f, c.cfg.Pitchfork),
		scraper.NewSourceB(f, c.cfg.Metacritic),
		c.log,
	)
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	printCmd := newPrintCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "albumfeed",
		Short:         "Highly rated albums from Pitchfork and Metacritic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load()
		},
		RunE: printCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&ctx.timeout, "timeout", 0, "Deadline for fetching both sites (default from config)")
	rootCmd.Flags().AddFlagSet(printCmd.Flags())

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
