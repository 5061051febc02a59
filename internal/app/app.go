package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	logger   zerolog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	sound    *audio.Player
	keys     ui.HeldKeys

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes sound and the screen, sets up signal handling, and plays
// until the player quits.
func (a *App) Run() error {
	a.sound = a.initSound()

	if err := a.initEngine(); err != nil {
		a.cleanup()
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.attachScreen(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			close(a.quit)
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// initSound opens the speaker and loads the score sound. Any failure
// leaves the game silent.
func (a *App) initSound() *audio.Player {
	if !a.cfg.SoundEnabled {
		return nil
	}
	if err := audio.Init(); err != nil {
		a.logger.Warn().Err(err).Msg("Audio unavailable, playing without sound")
		return nil
	}
	player, err := audio.NewPlayer(a.cfg.SoundFile)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Score sound not loaded, playing without sound")
		return nil
	}
	return player
}

func (a *App) initEngine() error {
	opts := []game.Option{
		game.WithBestOf(a.cfg.BestOf),
		game.WithLogger(a.logger),
	}
	if a.sound != nil {
		opts = append(opts, game.WithSound(a.sound))
	}

	engine, err := game.NewEngine(game.FieldWidth, game.FieldHeight, opts...)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	a.engine = engine
	return nil
}

func (a *App) attachScreen(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
}

// mainLoop runs one input/update/render tick per frame. Screen events are
// read on a separate goroutine and only handed over here, so the engine is
// touched by this goroutine alone.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	a.renderer.Render(a.engine.Snapshot())

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.engine.IsGameOver() {
			if choice := ui.KeyToReplayChoice(ev.Key(), ev.Rune()); choice != game.ReplayNone {
				a.keys.Release()
				return a.engine.HandleReplay(choice)
			}
		}

		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		a.keys.Press(ui.KeyToDirection(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.Render(a.engine.Snapshot())
	}

	return false
}

// step advances the game by one frame: input, update, render.
func (a *App) step() {
	if !a.engine.IsGameOver() {
		a.engine.HandleInput(a.keys.Direction())
	}
	a.keys.Tick()

	a.playEffects(a.engine.Update())
	a.renderer.Render(a.engine.Snapshot())
}

// playEffects plays the secondary bounce sounds. The score jingle is played
// by the engine itself.
func (a *App) playEffects(events game.Events) {
	if a.sound == nil {
		return
	}
	if events.Has(game.EventPaddleHit) {
		a.sound.PlayPaddleHit()
	} else if events.Has(game.EventWallBounce) {
		a.sound.PlayWallBounce()
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
