package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"the-snake/config"
	"the-snake/game"
	"the-snake/ui"
	"the-snake/ui/term"

	"golang.org/x/exp/rand"
)

func init() {
	// raylib talks to the window system from the thread that opened it
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg, rand.New(rand.NewSource(seed)), logger)
	logger.SetPrefix(fmt.Sprintf("[%s] ", g.UUID[:8]))
	logger.Printf("backend %s, seed %d", cfg.Backend, seed)

	backend, err := openBackend(cfg, g, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := g.Run(ctx, backend, game.NewTickClock(cfg.TickInterval()))
	if err := backend.Close(); err != nil {
		logger.Printf("close backend: %v", err)
	}
	if runErr != nil {
		logger.Printf("game aborted: %v", runErr)
	}
	return runErr
}

func openBackend(cfg config.Config, g *game.Game, logger *log.Logger) (game.Backend, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		t, err := term.NewTerminal(cfg)
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		if !t.Fits(g.Grid) {
			logger.Printf("terminal is smaller than the %dx%d board, edges will be clipped", g.Grid.Columns(), g.Grid.Rows())
		}
		return t, nil
	default:
		w, err := ui.NewWindow(cfg)
		if err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
		return w, nil
	}
}

// newLogger writes to the configured file, or to stderr unless the terminal
// backend owns the screen.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	flags := log.LstdFlags | log.Lmicroseconds

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, "", flags), func() { f.Close() }, nil
	}

	var out io.Writer = os.Stderr
	if cfg.Backend == config.BackendTerminal {
		out = io.Discard
	}
	return log.New(out, "", flags), func() {}, nil
}
