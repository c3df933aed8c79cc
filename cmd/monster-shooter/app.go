package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/monster-shooter/audio"
	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/constant"
	"github.com/lixenwraith/monster-shooter/engine"
	"github.com/lixenwraith/monster-shooter/engine/services"
	"github.com/lixenwraith/monster-shooter/game"
	"github.com/lixenwraith/monster-shooter/input"
	"github.com/lixenwraith/monster-shooter/render"
	"github.com/lixenwraith/monster-shooter/scene"
	"github.com/lixenwraith/monster-shooter/status"
	"github.com/lixenwraith/monster-shooter/terminal"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// options are process-level choices taken from flags
type options struct {
	seed    uint64
	mute    bool
	screens terminal.ScreenFactory
	clock   engine.TimeProvider
}

// app wires services, the scene director and the frame loop together
type app struct {
	cfg   *config.Config
	log   *log.Logger
	stats *status.Registry

	hub      *services.Hub
	term     *terminal.TerminalService
	audio    *audio.AudioService
	renderer *render.TerminalRenderer
	director *scene.Director
	machine  *input.Machine
	clock    *engine.FrameClock

	quit chan struct{}
}

// newApp starts every service and the first session
// On error, services that were started are already stopped
func newApp(cfg *config.Config, opts options) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     logger("app"),
		stats:   status.NewRegistry(),
		term:    terminal.NewService(opts.screens),
		audio:   audio.NewService(cfg.Audio, logger("audio")),
		machine: input.NewMachine(),
		quit:    make(chan struct{}),
	}

	a.hub = services.NewHub(logger("services"))
	for _, svc := range []services.Service{a.term, a.audio} {
		if err := a.hub.Register(svc); err != nil {
			return nil, err
		}
	}
	if err := a.hub.InitAll(); err != nil {
		return nil, err
	}
	if err := a.hub.StartAll(); err != nil {
		return nil, err
	}

	if opts.mute {
		a.audio.Player().ToggleMute()
	}

	var rng game.Random
	if opts.seed != 0 {
		rng = vmath.NewFastRand(opts.seed)
	}

	a.renderer = render.NewTerminalRenderer(a.term.Screen(), cfg.CellWidth, cfg.CellHeight)
	a.director = scene.NewDirector(cfg, a.field(), game.Deps{
		Random: rng,
		Sound:  a.audio.Player(),
		Logger: logger("game"),
		Stats:  a.stats,
	})

	provider := opts.clock
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	a.clock = engine.NewFrameClock(provider, constant.MaxFrameStep)
	return a, nil
}

func (a *app) field() game.Field {
	w, h := a.renderer.Layout().FieldSize()
	return game.Field{Width: w, Height: h}
}

// run drives updates and rendering until a quit intent or Stop
func (a *app) run() {
	ticker := time.NewTicker(a.cfg.FrameInterval)
	defer ticker.Stop()

	a.director.Draw(a.renderer)
	a.clock.Reset()

	for {
		select {
		case <-a.quit:
			return
		case ev := <-a.term.Events():
			if !a.handle(a.machine.Process(ev)) {
				return
			}
		case <-ticker.C:
			a.director.Update(a.clock.Tick())
			a.director.Draw(a.renderer)
		}
	}
}

// handle applies one intent, returning false to exit
func (a *app) handle(in *input.Intent) bool {
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		muted := a.audio.Player().ToggleMute()
		a.log.Printf("muted=%v", muted)
	case input.IntentTogglePause:
		if !a.director.TogglePause() {
			a.clock.Reset()
		}
	case input.IntentResize:
		a.term.Screen().Sync()
		a.renderer.Resize()
		a.director.Resize(a.field())
		a.director.Draw(a.renderer)
	case input.IntentTap:
		l := a.renderer.Layout()
		if l.InField(in.X, in.Y) {
			a.director.Tap(l.CellCenter(in.X, in.Y))
		}
	}
	return true
}

// Stop ends run from another goroutine
func (a *app) Stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// shutdown releases services and logs the session summary
func (a *app) shutdown() {
	a.hub.StopAll()
	a.log.Printf("metrics: %s", a.stats.Summary())
}

// summaryLine is printed after the terminal is restored
func (a *app) summaryLine() string {
	wins := a.stats.Ints.Get(status.KeyWins).Load()
	losses := a.stats.Ints.Get(status.KeyLosses).Load()
	hits := a.stats.Ints.Get(status.KeyHits).Load()
	return fmt.Sprintf("sessions won %d, lost %d, monsters destroyed %d", wins, losses, hits)
}
