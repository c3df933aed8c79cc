package game

import (
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/constant"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/engine"
	"github.com/lixenwraith/monster-shooter/physics"
	"github.com/lixenwraith/monster-shooter/status"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Field is the play area size in field units
type Field struct {
	Width, Height float64
}

// SoundPlayer is the audio surface the controller needs
type SoundPlayer interface {
	Play(core.SoundType)
}

// Random draws uniform values from a closed range
type Random interface {
	Range(lo, hi float64) float64
}

// Deps are the process-scoped collaborators of a controller; nil fields get inert defaults
type Deps struct {
	Random Random
	Sound  SoundPlayer
	Logger *log.Logger
	Stats  *status.Registry
}

type nopSound struct{}

func (nopSound) Play(core.SoundType) {}

// Controller owns one play session: player, score, spawning, shooting and contact resolution
// All methods must be called from the update goroutine
type Controller struct {
	cfg   *config.Config
	field Field
	world *engine.World

	contacts *physics.ContactDetector
	handlers map[component.KindPair]contactHandler
	spawner  *engine.RepeatingTimer

	rng   Random
	sound SoundPlayer
	log   *log.Logger

	session string
	player  core.Entity
	score   int

	outcome  *Outcome
	outcomes chan Outcome

	statSpawned  *atomic.Int64
	statShots    *atomic.Int64
	statRejected *atomic.Int64
	statHits     *atomic.Int64
	statEscaped  *atomic.Int64
	statWins     *atomic.Int64
	statLosses   *atomic.Int64
}

// NewController starts a session on a field of the given size
// The first monster spawns on the first Update
func NewController(cfg *config.Config, field Field, deps Deps) *Controller {
	if deps.Random == nil {
		deps.Random = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Sound == nil {
		deps.Sound = nopSound{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard, "", 0)
	}
	if deps.Stats == nil {
		deps.Stats = status.NewRegistry()
	}

	c := &Controller{
		cfg:      cfg,
		field:    field,
		world:    engine.NewWorld(),
		contacts: physics.NewContactDetector(),
		rng:      deps.Random,
		sound:    deps.Sound,
		log:      deps.Logger,
		session:  uuid.NewString(),
		outcomes: make(chan Outcome, 1),

		statSpawned:  deps.Stats.Ints.Get(status.KeySpawned),
		statShots:    deps.Stats.Ints.Get(status.KeyShots),
		statRejected: deps.Stats.Ints.Get(status.KeyRejected),
		statHits:     deps.Stats.Ints.Get(status.KeyHits),
		statEscaped:  deps.Stats.Ints.Get(status.KeyEscaped),
		statWins:     deps.Stats.Ints.Get(status.KeyWins),
		statLosses:   deps.Stats.Ints.Get(status.KeyLosses),
	}
	c.handlers = c.contactTable()

	deps.Stats.Ints.Get(status.KeySessions).Add(1)
	deps.Stats.Strings.Get(status.KeySession).Store(c.session[:8])

	c.player = c.world.Spawn(
		c.playerPosition(),
		component.RectBody(component.KindPlayer, cfg.PlayerWidth, cfg.PlayerHeight),
		component.SpriteComponent{
			Glyph:  '@',
			Style:  tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
			Width:  cfg.PlayerWidth,
			Height: cfg.PlayerHeight,
		},
	)

	c.spawner = engine.NewRepeatingTimer(cfg.SpawnInterval, true, func() { c.SpawnMonster() })

	c.log.Printf("session %s started: field %.0fx%.0f, win above %d", c.session, field.Width, field.Height, cfg.WinThreshold)
	return c
}

// Update advances the session by dt
// Order within a tick: spawn timer, motions (escapes), contacts; a latched outcome freezes the session
func (c *Controller) Update(dt time.Duration) {
	if c.outcome != nil {
		return
	}
	c.spawner.Advance(dt)
	c.world.StepMotions(dt)
	if c.outcome != nil {
		return
	}
	for _, contact := range c.contacts.Detect(c.world) {
		c.ResolveContact(contact)
		if c.outcome != nil {
			return
		}
	}
}

// Resize adapts to a new field size; the player keeps its relative placement
func (c *Controller) Resize(field Field) {
	c.field = field
	c.world.Positions.Set(c.player, c.playerPosition())
}

func (c *Controller) playerPosition() vmath.Vec2 {
	return vmath.V(c.field.Width*constant.PlayerXFraction, c.field.Height*constant.PlayerYFraction)
}

// World exposes entities for drawing
func (c *Controller) World() *engine.World {
	return c.world
}

// Field returns the current play area
func (c *Controller) Field() Field {
	return c.field
}

// Score returns monsters destroyed this session
func (c *Controller) Score() int {
	return c.score
}

// Session returns the session id
func (c *Controller) Session() string {
	return c.session
}

// Player returns the player's position
func (c *Controller) Player() vmath.Vec2 {
	pos, _ := c.world.Positions.Get(c.player)
	return pos
}
