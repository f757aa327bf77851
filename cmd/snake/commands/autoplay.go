package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/grid"
	"github.com/vinser/snake/internal/logging"
	"github.com/vinser/snake/internal/pilot"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/session"
)

func newAutoplayCmd(opts *options) *cobra.Command {
	var (
		maxTicks uint64
		clear    bool
	)
	autoplayCmd := &cobra.Command{
		Use:   "autoplay",
		Short: "watch the computer play a game in plain text",
		Args:  cobra.NoArgs,
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

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			entry := log.NewEntry(logger)
			e := engine.New(engine.WithSeed(cfg.Seed), engine.WithLogger(entry))
			out := c.OutOrStdout()
			s := session.New(e, render.NewWriter(out, grid.New(cfg.SpriteSize), clear), session.Options{
				Interval:       cfg.Tick,
				Controller:     pilot.New(cfg.Seed),
				ExitOnGameOver: true,
				MaxTicks:       maxTicks,
				Logger:         entry,
			})

			err = s.Run(ctx)
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			if err != nil {
				return errors.Wrap(err, "autoplay")
			}
			snap := e.Snapshot()
			fmt.Fprintf(out, "Final score: %d after %d ticks (session %s)\n", snap.Score, snap.Tick, s.ID())
			return nil
		},
	}
	autoplayCmd.Flags().Uint64Var(&maxTicks, "max-ticks", 0, "stop after this many ticks, 0 plays until game over")
	autoplayCmd.Flags().BoolVar(&clear, "clear", true, "clear the screen before every frame")
	return autoplayCmd
}
