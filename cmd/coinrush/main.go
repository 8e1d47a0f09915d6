// Package main is the entry point for Coin Rush.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/samdwyer/coinrush/internal/game"
	"github.com/samdwyer/coinrush/internal/logger"
	"github.com/samdwyer/coinrush/internal/save"
	"github.com/samdwyer/coinrush/internal/telemetry"
	"github.com/samdwyer/coinrush/internal/ui"
	"github.com/samdwyer/coinrush/internal/world"
)

func main() {
	seed := flag.Int64("seed", -1, "start a new game with this seed, skipping the menu")
	load := flag.Bool("load", false, "resume the saved game, skipping the menu")
	savePath := flag.String("save", "", "save file path (default $COINRUSH_SAVE_FILE or save.txt)")
	dump := flag.Bool("dump", false, "print the map generated for -seed and exit")
	replay := flag.Bool("replay", false, "replay the save file without a terminal UI and print the result")
	flag.Parse()

	// Load .env file for local development
	envErr := godotenv.Load()

	cfg := game.NewConfig()
	if *savePath != "" {
		cfg.SavePath = *savePath
	}
	if *seed >= 0 {
		cfg = cfg.WithSeed(*seed)
	}

	headless := *dump || *replay
	closeLog := initLogging(headless)
	defer closeLog()

	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()
	shutdown := initTelemetry(ctx)
	defer shutdown()

	var err error
	switch {
	case *dump:
		err = runDump(ctx, cfg)
	case *replay:
		err = runReplay(ctx, cfg)
	default:
		err = runTerminal(ctx, cfg, *seed >= 0, *load)
	}
	if err != nil {
		logger.Log.WithError(err).Error("coinrush failed")
		shutdown()
		closeLog()
		os.Exit(1)
	}
}

// initLogging sends logs to stderr for headless modes. The terminal UI owns the
// screen, so there logs go to LOG_FILE or nowhere.
func initLogging(headless bool) func() {
	if headless {
		logger.Init(os.Stderr)
		return func() {}
	}

	out, closeFn, err := logger.OpenFile()
	if err != nil {
		logger.Init(os.Stderr)
		logger.Log.WithError(err).Fatal("failed to open log file")
	}
	logger.Init(out)
	return func() { _ = closeFn() }
}

// initTelemetry starts trace export when an endpoint is configured. The game runs
// without observability if setup fails.
func initTelemetry(ctx context.Context) func() {
	tcfg := telemetry.ConfigFromEnv()
	if !tcfg.Enabled() {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx, tcfg)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, continuing without tracing")
		return func() {}
	}
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if err := shutdown(ctx); err != nil {
			logger.Log.WithError(err).Error("error shutting down telemetry")
		}
	}
}

func runTerminal(ctx context.Context, cfg game.Config, seeded, load bool) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	switch {
	case load:
		g.Load(ctx)
	case seeded:
		g.Start(ctx, cfg.Seed)
	}
	return g.Run(ctx)
}

func runDump(ctx context.Context, cfg game.Config) error {
	w, err := world.Generate(ctx, cfg.Seed, cfg.World)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":  w.Seed,
		"rooms": len(w.Rooms),
		"coins": w.Coins.Placed(),
	}).Info("world generated")
	return ui.WriteASCII(os.Stdout, w.Grid, term.IsTerminal(int(os.Stdout.Fd())))
}

func runReplay(ctx context.Context, cfg game.Config) error {
	f, err := save.NewStore(cfg.SavePath).Load()
	if errors.Is(err, save.ErrNoSave) {
		logger.Log.WithField("path", cfg.SavePath).Warn("nothing to replay")
		return nil
	}
	if err != nil {
		return err
	}

	s, err := game.Replay(ctx, cfg.WithSeed(f.Seed), f.History)
	if err != nil {
		return err
	}
	x, y := s.Avatar().Position()
	logger.Log.WithFields(logrus.Fields{
		"session":   s.ID().String(),
		"seed":      f.Seed,
		"collected": s.Coins().Collected(),
		"placed":    s.Coins().Placed(),
		"avatar_x":  x,
		"avatar_y":  y,
		"state":     s.State().String(),
	}).Info("replay finished")
	return ui.WriteASCII(os.Stdout, s.Grid(), term.IsTerminal(int(os.Stdout.Fd())))
}
