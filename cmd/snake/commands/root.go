package commands

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vinser/snake/internal/app"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/logging"
)

var version = "dev"

// options are the command line overrides shared by every command.
type options struct {
	configPath string
	tick       time.Duration
	spriteSize string
	keys       string
	seed       int64
	logLevel   string
	logFile    string
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the snake command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "snake",
		Short:         "snake is a classic snake game for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load(c)
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()

			logger.WithFields(log.Fields{"tick": cfg.Tick, "keys": cfg.Keys}).Info("game started")
			p := tea.NewProgram(app.New(cfg, logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "run game")
			}
			return nil
		},
	}
	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + "\n" + config.Usage() + "\n")

	opts.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAutoplayCmd(opts))
	return rootCmd
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.StringVarP(&o.configPath, "config", "c", "snake.yml", "path to the YAML config file")
	flags.DurationVar(&o.tick, "tick", config.DefaultTick, "time between two moves")
	flags.StringVar(&o.spriteSize, "sprite-size", "", "cell size: small, medium or large")
	flags.StringVar(&o.keys, "keys", "", "key set: arrows, wasd or vim")
	flags.Int64Var(&o.seed, "seed", 0, "seed for food placement, 0 picks one from the clock")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file")
}

// load reads the config file and applies the flags the user set.
func (o *options) load(c *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := c.Flags()
	if flags.Changed("tick") {
		cfg.Tick = o.tick
	}
	if flags.Changed("sprite-size") {
		cfg.SpriteSize = o.spriteSize
	}
	if flags.Changed("keys") {
		cfg.Keys = o.keys
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
