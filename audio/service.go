package audio

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/core"
)

// Player is the audio surface handed to gameplay and input handling
type Player interface {
	Play(core.SoundType)
	ToggleMute() bool
	IsMuted() bool
}

type silentPlayer struct {
	muted atomic.Bool
}

func (*silentPlayer) Play(core.SoundType) {}

func (p *silentPlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *silentPlayer) IsMuted() bool { return p.muted.Load() }

// AudioService wraps SoundManager as a hub Service
// Audio failures never fail the service; they degrade to a silent player
type AudioService struct {
	cfg     config.AudioConfig
	log     *log.Logger
	manager *SoundManager
	silent  silentPlayer

	disabled atomic.Bool
}

// NewService creates the audio service for the given configuration
func NewService(cfg config.AudioConfig, logger *log.Logger) *AudioService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &AudioService{cfg: cfg, log: logger}
}

func (s *AudioService) Name() string { return "audio" }

func (s *AudioService) Dependencies() []string { return nil }

// Init prepares the manager; disabled configuration skips the device entirely
func (s *AudioService) Init() error {
	if !s.cfg.Enabled {
		s.log.Printf("audio disabled by configuration")
		s.disabled.Store(true)
		return nil
	}
	s.manager = NewSoundManager(s.cfg, s.log)
	return nil
}

// Start opens the speaker and starts background music
// A speaker failure disables audio; a music failure only skips the music
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}

	if err := s.manager.Initialize(); err != nil {
		s.log.Printf("audio initialization failed: %v (continuing without audio)", err)
		s.disabled.Store(true)
		return nil
	}

	if err := s.manager.PlayBackgroundMusic(); err != nil {
		s.log.Printf("background music not started: %v", err)
	}
	return nil
}

// Stop releases the speaker
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the live manager, or a silent player when audio is unavailable
func (s *AudioService) Player() Player {
	if s.disabled.Load() || s.manager == nil {
		return &s.silent
	}
	return s.manager
}
