package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/logging"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to "+constants.LogDir+"/"+constants.LogFileName)
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	seedFlag  = flag.Uint64("seed", 0, "Food placement seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := logging.Setup(*debugFlag, constants.LogDir)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := engine.DefaultConfig()
	session, err := engine.NewSession(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	core.SetResetHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	reg.Ints.Get("session.seed").Store(int64(seed))

	surface := render.NewTerminalSurface(screen, cfg.CellSize, cfg.GridWidth(), cfg.GridHeight())
	surface.Redraw()
	session.Render(surface, surface)
	surface.Show()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			logger.Info("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	// Input polling goroutine, exits when the screen is finalized
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	clock := engine.NewClockScheduler(cfg.TickInterval)

	game := engine.NewGame(session, surface, surface)
	game.SetLogger(logger)
	game.SetRegistry(reg)
	game.SetTimer(clock)
	game.SetSoundPlayer(sound)
	game.SetNotifier(render.NewGameOverOverlay(surface, func() { awaitKey(ctx, events, screen) }))

	handler := input.NewHandler(session)
	handler.SetRegistry(reg)

	defer func() {
		reg.Ints.Get("clock.ticks").Store(int64(clock.TickCount()))
		logger.Info("counters", reg.Fields()...)
	}()

	clock.Start()
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("session end", zap.String("session", session.ID()), zap.String("reason", "signal"))
			return nil

		case <-clock.Ticks():
			game.Tick()
			if game.Over() {
				logger.Info("session end", zap.String("session", session.ID()), zap.Int("score", session.Score()))
				return nil
			}
			surface.Show()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsQuit(ev) {
					logger.Info("session end", zap.String("session", session.ID()), zap.String("reason", "quit"))
					return nil
				}
				handler.HandleKey(input.KeyCodeFromTcell(ev))
			case *tcell.EventResize:
				surface.Redraw()
				session.Render(surface, surface)
				surface.Show()
			}
		}
	}
}

// awaitKey blocks until any key is pressed or ctx is cancelled
func awaitKey(ctx context.Context, events <-chan tcell.Event, screen tcell.Screen) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
