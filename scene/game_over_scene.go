package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monster-shooter/game"
	"github.com/lixenwraith/monster-shooter/render"
	"github.com/lixenwraith/monster-shooter/vmath"
)

const (
	WonMessage  = "You Won!"
	LoseMessage = "You Lose :["
)

// pulsePeriod is one full brightness cycle of the title
const pulsePeriod = 1500 * time.Millisecond

// GameOverScene shows the session result until the director replaces it
type GameOverScene struct {
	field game.Field
	won   bool
	score int
	delay time.Duration

	elapsed time.Duration
}

// NewGameOverScene builds the result screen for a field of the given size
func NewGameOverScene(field game.Field, won bool) *GameOverScene {
	return &GameOverScene{field: field, won: won}
}

// WithScore records the final score for display
func (s *GameOverScene) WithScore(score int) *GameOverScene {
	s.score = score
	return s
}

// WithDelay sets the countdown shown before the next session
func (s *GameOverScene) WithDelay(d time.Duration) *GameOverScene {
	s.delay = d
	return s
}

// Won reports the displayed result
func (s *GameOverScene) Won() bool {
	return s.won
}

// Message returns the title text
func (s *GameOverScene) Message() string {
	if s.won {
		return WonMessage
	}
	return LoseMessage
}

// Elapsed returns time spent on screen
func (s *GameOverScene) Elapsed() time.Duration {
	return s.elapsed
}

func (s *GameOverScene) Update(dt time.Duration) {
	s.elapsed += dt
}

func (s *GameOverScene) Draw(r *render.TerminalRenderer) {
	l := r.Layout()
	mid := l.FieldRows() / 2

	accent := render.RgbLose
	if s.won {
		accent = render.RgbWin
	}
	phase := (1 - math.Cos(2*math.Pi*s.elapsed.Seconds()/pulsePeriod.Seconds())) / 2
	title := render.StyleBackground.Foreground(render.Blend(accent, render.RgbStatusBar, phase*0.6)).Bold(true)

	r.DrawCentered(mid-1, s.Message(), title)
	r.DrawCentered(mid+1, fmt.Sprintf("monsters destroyed: %d", s.score), render.StyleBackground)
	if remaining := s.delay - s.elapsed; remaining > 0 {
		secs := int(math.Ceil(remaining.Seconds()))
		r.DrawCentered(mid+2, fmt.Sprintf("new game in %ds", secs), render.StyleBackground.Foreground(render.RgbHint).Attributes(tcell.AttrDim))
	}
}

// Tap is ignored; the next session starts on its own
func (s *GameOverScene) Tap(vmath.Vec2) {}

func (s *GameOverScene) Resize(field game.Field) {
	s.field = field
}

// Field returns the size the scene was built for
func (s *GameOverScene) Field() game.Field {
	return s.field
}

func (s *GameOverScene) Status() (string, string) {
	return "game over", fmt.Sprintf("score %d", s.score)
}
