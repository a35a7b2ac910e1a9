package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/feed"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/progress"
	"containmentbreach/pkg/game/progress/sqlite"
	"containmentbreach/pkg/game/renderer"
	ebitenrenderer "containmentbreach/pkg/game/renderer/ebiten"
	"containmentbreach/pkg/game/renderer/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "front-end: ebiten or tui")
	flag.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "normal, hard or nightmare")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.StringVar(&cfg.SavePath, "save", cfg.SavePath, "sqlite progress file (empty keeps progress in memory)")
	flag.StringVar(&cfg.FeedAddr, "feed", cfg.FeedAddr, "address for the websocket event feed, e.g. :8088")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	dumpDir := flag.String("dump-dir", ".", "directory for F9 state dumps")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Init(cfg.LogLevel, cfg.LogFormat, logOut)
	log := logger.WithComponent("main")

	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")

	difficulty, err := nights.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(cfg.SavePath)
	if err != nil {
		return err
	}
	defer closeStore()

	bus := events.NewBus()
	defer bus.Close()

	s, err := gameplay.NewSession(ctx, gameplay.Options{
		Tuning:     cfg.Tuning(),
		Difficulty: difficulty,
		Seed:       cfg.Seed,
		Store:      store,
		Bus:        bus,
		MaxStep:    cfg.MaxStep,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	log.WithFields(logrus.Fields{
		"session":    s.ID(),
		"seed":       cfg.Seed,
		"difficulty": difficulty.String(),
		"renderer":   cfg.Renderer,
	}).Info("Session started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("Scheduler stopped")
		}
	}()

	if cfg.FeedAddr != "" {
		srv := feed.NewServer(cfg.FeedAddr, feed.NewHandler(bus, s.ID()))
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.WithError(err).Error("Event feed stopped")
			}
		}()
	}

	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Renderer, err)
	}
	return r.Run(ctx, renderer.NewDriver(s, *dumpDir))
}

func newRenderer(cfg config.Config) renderer.Renderer {
	if cfg.Renderer == "tui" {
		return tui.New()
	}
	return ebitenrenderer.New(cfg.TileSize)
}

// openStore opens the sqlite save file, or an in-memory store when path is empty.
func openStore(path string) (progress.Store, func(), error) {
	if path == "" {
		return progress.NewMemoryStore(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create save directory: %w", err)
	}
	st, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return st, func() { _ = st.Close() }, nil
}

// logOutput picks the log destination. The terminal front-end owns the
// screen, so without a log file its logs are dropped.
func logOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Renderer == "tui" {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
