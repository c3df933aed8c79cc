package audio

import (
	"io"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/constant"
	"github.com/lixenwraith/monster-shooter/core"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

var fallbackFreq = [core.SoundTypeCount]float64{
	core.SoundShoot: constant.FallbackShootFreq,
	core.SoundHit:   constant.FallbackHitFreq,
	core.SoundWin:   constant.FallbackWinFreq,
	core.SoundLose:  constant.FallbackLoseFreq,
}

// SoundManager owns the speaker, a master volume stage, the music loop and effect buffers
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu  sync.Mutex
	cfg config.AudioConfig
	log *log.Logger

	mixer   *beep.Mixer
	volume  *effects.Volume
	music   *beep.Ctrl
	effects [core.SoundTypeCount]*beep.Buffer

	initialized bool
	muted       bool
}

// NewSoundManager creates a manager; nothing touches the audio device until Initialize
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		cfg:   cfg,
		log:   logger,
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
		},
	}
	sm.applyVolume()
	return sm
}

// Initialize opens the speaker and prepares effect buffers
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.loadEffects()

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "could not create audio player")
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// loadEffects reads <sounds_dir>/<sound>.wav for each effect, synthesizing missing ones
func (sm *SoundManager) loadEffects() {
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if sm.effects[s] != nil {
			continue
		}
		buf, err := sm.loadEffect(s)
		if err != nil {
			sm.log.Printf("effect %s: %v, using synthesized tone", s, err)
			buf, err = synthBuffer(sampleRate, fallbackFreq[s], constant.FallbackEffectDuration)
			if err != nil {
				sm.log.Printf("effect %s: %v, disabled", s, err)
				continue
			}
		}
		sm.effects[s] = buf
	}
}

func (sm *SoundManager) loadEffect(s core.SoundType) (*beep.Buffer, error) {
	path, err := lookupAsset(sm.cfg.SoundsDir, s.String()+".wav")
	if err != nil {
		return nil, err
	}
	return loadBuffer(path, sampleRate)
}

// PlayBackgroundMusic loops the configured music file forever
// Any failure leaves effects working and is returned for logging
func (sm *SoundManager) PlayBackgroundMusic() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return errors.New("audio not initialized")
	}
	if sm.music != nil {
		return nil
	}

	path, err := lookupAsset(sm.cfg.SoundsDir, sm.cfg.Music)
	if err != nil {
		return err
	}
	buf, err := loadBuffer(path, sampleRate)
	if err != nil {
		return err
	}
	if buf.Len() == 0 {
		return errors.Errorf("%s: no samples", path)
	}

	sm.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
	return nil
}

// Play starts a one-shot effect
func (sm *SoundManager) Play(s core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s < 0 || s >= core.SoundTypeCount {
		return
	}
	buf := sm.effects[s]
	if buf == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// ToggleMute silences or restores all output, returning the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.withSpeaker(sm.applyVolume)
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// applyVolume maps the linear 0-1 volume onto beep's exponential scale
func (sm *SoundManager) applyVolume() {
	v := sm.cfg.Volume
	sm.volume.Silent = sm.muted || v <= 0
	if v > 0 {
		sm.volume.Volume = math.Log2(v)
	}
}

// withSpeaker runs fn under the speaker lock once the speaker is running
func (sm *SoundManager) withSpeaker(fn func()) {
	if !sm.initialized {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.initialized = false
}
