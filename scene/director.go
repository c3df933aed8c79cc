package scene

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/game"
	"github.com/lixenwraith/monster-shooter/render"
	"github.com/lixenwraith/monster-shooter/status"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// transition flips from one scene to the next: the old scene narrows to
// nothing during the first half, the new one widens during the second
type transition struct {
	from, to Scene
	elapsed  time.Duration
	duration time.Duration
}

func (t *transition) progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return min(float64(t.elapsed)/float64(t.duration), 1)
}

// Director owns the active scene and performs scene changes
// Scene time advances only through Update, so pausing freezes every timer
type Director struct {
	cfg   *config.Config
	deps  game.Deps
	log   *log.Logger
	field game.Field

	current    Scene
	transition *transition
	paused     bool
	sessions   int
}

// NewDirector starts the first session on the field
func NewDirector(cfg *config.Config, field game.Field, deps game.Deps) *Director {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard, "", 0)
	}
	if deps.Stats == nil {
		deps.Stats = status.NewRegistry()
	}
	d := &Director{cfg: cfg, deps: deps, log: deps.Logger, field: field}
	d.current = d.newGame()
	return d
}

func (d *Director) newGame() *GameScene {
	ctrl := game.NewController(d.cfg, d.field, d.deps)
	d.sessions++
	return NewGameScene(ctrl, d.deps.Stats, d.cfg.WinThreshold)
}

// Current returns the scene receiving input
func (d *Director) Current() Scene {
	return d.current
}

// Transitioning reports whether a flip is in progress
func (d *Director) Transitioning() bool {
	return d.transition != nil
}

// Sessions returns the number of games started
func (d *Director) Sessions() int {
	return d.sessions
}

// Paused reports whether scene time is frozen
func (d *Director) Paused() bool {
	return d.paused
}

// TogglePause freezes or resumes the active game; other scenes ignore it
func (d *Director) TogglePause() bool {
	if _, ok := d.current.(*GameScene); !ok || d.transition != nil {
		return d.paused
	}
	d.paused = !d.paused
	return d.paused
}

// Update advances scene time, then reacts to outcomes and expired screens
func (d *Director) Update(dt time.Duration) {
	if d.paused {
		return
	}

	if t := d.transition; t != nil {
		t.elapsed += dt
		if t.elapsed >= t.duration {
			d.current = t.to
			d.transition = nil
		}
		return
	}

	d.current.Update(dt)

	switch s := d.current.(type) {
	case *GameScene:
		select {
		case o := <-s.Controller().Outcomes():
			over := NewGameOverScene(o.Field, o.Won).WithScore(o.Score).WithDelay(d.cfg.GameOverDelay)
			d.log.Printf("session %.8s: won=%v score=%d, showing result", o.Session, o.Won, o.Score)
			d.begin(over)
		default:
		}
	case *GameOverScene:
		if s.Elapsed() >= d.cfg.GameOverDelay {
			d.begin(d.newGame())
		}
	}
}

func (d *Director) begin(to Scene) {
	d.transition = &transition{from: d.current, to: to, duration: d.cfg.TransitionDuration}
	if d.transition.duration <= 0 {
		d.current = to
		d.transition = nil
	}
}

// Draw renders the frame, applying the flip while a transition runs
func (d *Director) Draw(r *render.TerminalRenderer) {
	r.Begin()

	if t := d.transition; t != nil {
		p := t.progress()
		if p < 0.5 {
			r.SetFlip(1 - 2*p)
			t.from.Draw(r)
		} else {
			r.SetFlip(2*p - 1)
			t.to.Draw(r)
		}
		r.SetFlip(1)
	} else {
		d.current.Draw(r)
	}

	left, right := d.current.Status()
	if d.paused {
		left += "  [paused]"
	}
	r.DrawStatus(left, right)
	r.Show()
}

// Tap forwards a touch to the active scene unless paused or flipping
func (d *Director) Tap(p vmath.Vec2) {
	if d.paused || d.transition != nil {
		return
	}
	d.current.Tap(p)
}

// Resize propagates a new field size to every live scene
func (d *Director) Resize(field game.Field) {
	d.field = field
	d.current.Resize(field)
	if t := d.transition; t != nil {
		t.to.Resize(field)
	}
}
