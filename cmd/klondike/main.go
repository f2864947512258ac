package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/event"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/data"
	"github.com/feltengine/klondike/internal/game"
	"github.com/feltengine/klondike/internal/input"
	"github.com/feltengine/klondike/internal/render"
	"github.com/feltengine/klondike/internal/resource"
	gamesys "github.com/feltengine/klondike/internal/system"
	"github.com/feltengine/klondike/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "klondike: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to config.toml (defaults built in)")
		layoutPath = flag.String("layout", "", "path to layout.yaml (defaults built in)")
		seed       = flag.Int64("seed", 0, "deal seed, 0 picks one from the clock")
		logPath    = flag.String("log", "klondike.log", "log file path")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	layout := data.DefaultLayout()
	if *layoutPath != "" {
		loaded, err := data.LoadLayout(*layoutPath)
		if err != nil {
			return err
		}
		layout = loaded
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log, err := buildLogger(cfg.Logging, *logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()
	log.Info("starting", zap.Int64("seed", *seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w := world.New(cfg.Game.MaxEntities)
	res := resource.New(cfg.Game.TargetFPS)
	bus := event.NewBus()
	eng := game.NewEngine(w, cfg, layout, bus, log)

	if _, err := eng.SetupBoard(rand.New(rand.NewSource(*seed))); err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	res.Game = resource.StatePlaying

	event.Subscribe(bus, func(ev event.GameWon) {
		log.Info("victory", zap.Uint64("frames", ev.Frames))
	})
	event.Subscribe(bus, func(ev event.StockDrawn) {
		log.Debug("drew card", zap.Uint64("card", uint64(ev.Card)))
	})

	runner := coresys.NewRunner()
	runner.Register(gamesys.NewClickSystem(w, res, eng, cfg, log))
	runner.Register(gamesys.NewDragSystem(w, res, eng, cfg, log))
	runner.Register(gamesys.NewAutoCompleteSystem(res, eng, cfg, log))
	runner.Register(gamesys.NewWinSystem(res, eng, bus, log))
	runner.Register(render.New(screen, w, res, cfg))

	translator := input.NewTranslator(res, cfg)

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.Game.TickRate.Std())
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if translator.HandleEvent(ev) {
				log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			bus.SwapBuffers()
			bus.DispatchAll()
			res.Time.Update(float64(time.Now().UnixMilli()))
			if err := w.RunTick(runner, cfg.Game.TickRate.Std()); err != nil {
				// A failed tick is logged and the frame skipped; the
				// next tick starts from the last consistent state.
				log.Error("tick failed", zap.Error(err))
			}
		}
	}
}

func buildLogger(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// The terminal belongs to the board, so logs go to a file.
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
