package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/logging"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/window"
	"github.com/lixenwraith/vi-snake/status"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func main() {
	debug := flag.Bool("debug", false, "Write a debug log to "+constants.LogDir+"/"+constants.LogFileName)
	mute := flag.Bool("mute", false, "Disable sound effects")
	seedFlag := flag.Uint64("seed", 0, "Food placement seed, 0 seeds from the clock")
	flag.Parse()

	if err := run(*debug, *mute, *seedFlag); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake-window: %v\n", err)
		os.Exit(1)
	}
}

func run(debug, mute bool, seed uint64) error {
	logger, closeLog, err := logging.Setup(debug, constants.LogDir)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := engine.DefaultConfig()
	session, err := engine.NewSession(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	list := render.NewDisplayList(cfg.Width, cfg.Height)
	banner := &window.GameOverBanner{}
	renderer := window.NewRenderer(list, banner)

	w, h := renderer.WindowSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w, h, constants.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(time.Second / constants.FrameUpdateInterval))

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if !mute {
		if err := sound.Initialize(); err != nil {
			logger.Info("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	reg := status.NewRegistry()
	reg.Ints.Get("session.seed").Store(int64(seed))

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), cfg.TickInterval)

	game := engine.NewGame(session, list, list)
	game.SetLogger(logger)
	game.SetRegistry(reg)
	game.SetTimer(clock)
	game.SetSoundPlayer(sound)
	game.SetNotifier(banner)

	handler := input.NewHandler(session)
	handler.SetRegistry(reg)

	defer func() {
		reg.Ints.Get("clock.ticks").Store(int64(clock.TickCount()))
		logger.Info("counters", reg.Fields()...)
	}()

	session.Render(list, list)

	for !rl.WindowShouldClose() {
		acknowledged := false
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if banner.Active() {
				acknowledged = true
				break
			}
			if key == rl.KeyQ {
				logger.Info("session end", zap.String("session", session.ID()), zap.String("reason", "quit"))
				return nil
			}
			handler.HandleKey(window.KeyCode(key))
		}
		if acknowledged {
			logger.Info("session end", zap.String("session", session.ID()), zap.Int("score", session.Score()))
			return nil
		}

		if clock.Due() {
			game.Tick()
		}

		renderer.Draw()
	}

	logger.Info("session end", zap.String("session", session.ID()), zap.String("reason", "window closed"))
	return nil
}
