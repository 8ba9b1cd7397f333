package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/open-island/audio"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/input"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/render"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/system"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML game config (built-in default when empty)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed for a reproducible session (0 uses the clock)")
	logFlag    = flag.String("log", "", "Write logs to this file")
	levelFlag  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	muteFlag   = flag.Bool("mute", false, "Start with sound disabled")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logger, logCloser, err := setupLogging(*logFlag, *levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	registry := status.NewRegistry()
	opts := []engine.Option{engine.WithLogger(logger), engine.WithStatus(registry)}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithSeed(*seedFlag))
	}
	m := system.NewGame(cfg, opts...)
	m.Log.Info("session started", "seed", *seedFlag, "config", *configFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterCrashTerminal(screen)
	defer core.RegisterCrashTerminal(nil)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := audio.NewSoundPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("audio initialization failed", "error", err)
		audioCfg.Enabled = false
	}
	defer player.Cleanup()

	run(screen, m, player, audioCfg.Enabled, logger)
	m.Log.Info("session ended", append([]any{"score", m.Score, "rooms", m.RoomsCleared}, registry.Attrs()...)...)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// run drives the fixed-step simulation and renders at frame rate until quit
func run(screen tcell.Screen, m *engine.Model, player *audio.SoundPlayer, audioOn bool, logger *slog.Logger) {
	orchestrator := render.NewDefaultOrchestrator(screen)
	machine := input.NewMachine()
	clock := engine.NewClock(parameter.TickInterval, parameter.MaxTicksPerFrame)
	muted := !audioOn

	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Clean exit on screen finalization
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev, time.Now())
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				return
			case input.IntentPause:
				if clock.Toggle() {
					player.Silence()
				}
				logger.Debug("pause toggled", "paused", clock.IsPaused())
			case input.IntentReset:
				m.Reset()
				machine.Reset()
				clock.Resume()
			case input.IntentToggleMute:
				if audioOn {
					muted = !muted
					if muted {
						player.Silence()
					}
				}
			case input.IntentToggleHUD:
				orchestrator.ToggleStatusBar()
			case input.IntentResize:
				orchestrator.Resize()
			}

		case <-frameTicker.C:
			now := time.Now()
			w, h := screen.Size()
			ctx := render.NewRenderContext(m, w, h)

			for steps := clock.Advance(); steps > 0; steps-- {
				m.CursorPos = machine.CursorWorld(&ctx, m.Player.Position())
				m.Update(machine.Controls(now, &ctx), clock.StepSeconds())
			}

			cues := m.Events.Drain()
			if !muted && !clock.IsPaused() {
				player.Play(cues)
			}

			// Reframe after the camera moved
			ctx = render.NewRenderContext(m, w, h)
			ctx.IsPaused = clock.IsPaused()
			ctx.AudioOn = !muted
			orchestrator.RenderFrame(ctx, m)
		}
	}
}
