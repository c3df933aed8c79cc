package scene

import (
	"fmt"
	"time"

	"github.com/lixenwraith/monster-shooter/game"
	"github.com/lixenwraith/monster-shooter/render"
	"github.com/lixenwraith/monster-shooter/status"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// GameScene presents a running controller
type GameScene struct {
	ctrl  *game.Controller
	stats *status.Registry
	goal  int
}

// NewGameScene starts a fresh session on the field
func NewGameScene(ctrl *game.Controller, stats *status.Registry, goal int) *GameScene {
	return &GameScene{ctrl: ctrl, stats: stats, goal: goal}
}

// Controller returns the session being played
func (s *GameScene) Controller() *game.Controller {
	return s.ctrl
}

func (s *GameScene) Update(dt time.Duration) {
	s.ctrl.Update(dt)
}

func (s *GameScene) Draw(r *render.TerminalRenderer) {
	r.DrawWorld(s.ctrl.World())
}

func (s *GameScene) Tap(p vmath.Vec2) {
	s.ctrl.Shoot(p)
}

func (s *GameScene) Resize(field game.Field) {
	s.ctrl.Resize(field)
}

func (s *GameScene) Status() (string, string) {
	left := fmt.Sprintf("session %.8s  shots %d  escaped %d",
		s.ctrl.Session(),
		s.stats.Ints.Get(status.KeyShots).Load(),
		s.stats.Ints.Get(status.KeyEscaped).Load(),
	)
	return left, fmt.Sprintf("score %d/%d", s.ctrl.Score(), s.goal+1)
}
