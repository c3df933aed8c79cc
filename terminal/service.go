// Package terminal owns the tcell screen and forwards its events to the game loop
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monster-shooter/constant"
	"github.com/lixenwraith/monster-shooter/core"
)

// ScreenFactory creates the screen on Init, replaceable for simulation
type ScreenFactory func() (tcell.Screen, error)

// TerminalService manages screen lifecycle and event polling
type TerminalService struct {
	factory ScreenFactory
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	closed  bool
}

// NewService creates a terminal service; nil factory uses the real terminal
func NewService(factory ScreenFactory) *TerminalService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &TerminalService{
		factory: factory,
		eventCh: make(chan tcell.Event, constant.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (s *TerminalService) Name() string { return "terminal" }

func (s *TerminalService) Dependencies() []string { return nil }

// Init creates and initializes the screen with mouse reporting enabled
func (s *TerminalService) Init() error {
	screen, err := s.factory()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	s.screen = screen
	core.SetCrashScreen(screen)
	return nil
}

// Start launches the polling goroutine
func (s *TerminalService) Start() error {
	s.mu.Lock()
	if s.running || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop reads screen events until the screen is finalized
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop finalizes the screen, which unblocks PollEvent, and waits for the poller
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	if s.closed || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	core.SetCrashScreen(nil)
	s.screen.Fini()

	if wasRunning {
		<-s.doneCh
	}
	return nil
}

// Screen returns the managed screen, nil before Init
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *TerminalService) Events() <-chan tcell.Event {
	return s.eventCh
}
