package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/monster-shooter/constant"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "MONSTER_SHOOTER_"

// DefaultPath is read when present; an explicitly requested file must exist
const DefaultPath = "monster-shooter.yaml"

// Config is the complete tunable surface of a session
type Config struct {
	SpawnInterval      time.Duration `yaml:"spawn_interval"`
	MonsterMinDuration time.Duration `yaml:"monster_min_duration"`
	MonsterMaxDuration time.Duration `yaml:"monster_max_duration"`
	ProjectileDuration time.Duration `yaml:"projectile_duration"`
	ShootDistance      float64       `yaml:"shoot_distance"`
	WinThreshold       int           `yaml:"win_threshold"`

	PlayerWidth      float64 `yaml:"player_width"`
	PlayerHeight     float64 `yaml:"player_height"`
	MonsterWidth     float64 `yaml:"monster_width"`
	MonsterHeight    float64 `yaml:"monster_height"`
	ProjectileRadius float64 `yaml:"projectile_radius"`

	CellWidth          float64       `yaml:"cell_width"`
	CellHeight         float64       `yaml:"cell_height"`
	FrameInterval      time.Duration `yaml:"frame_interval"`
	TransitionDuration time.Duration `yaml:"transition_duration"`
	GameOverDelay      time.Duration `yaml:"game_over_delay"`

	Audio AudioConfig `yaml:"audio"`
}

// AudioConfig controls the audio service
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"` // 0.0-1.0
	SoundsDir string  `yaml:"sounds_dir"`
	Music     string  `yaml:"music"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		SpawnInterval:      constant.SpawnInterval,
		MonsterMinDuration: constant.MonsterMinDuration,
		MonsterMaxDuration: constant.MonsterMaxDuration,
		ProjectileDuration: constant.ProjectileDuration,
		ShootDistance:      constant.ShootDistance,
		WinThreshold:       constant.WinThreshold,

		PlayerWidth:      constant.PlayerWidth,
		PlayerHeight:     constant.PlayerHeight,
		MonsterWidth:     constant.MonsterWidth,
		MonsterHeight:    constant.MonsterHeight,
		ProjectileRadius: constant.ProjectileRadius,

		CellWidth:          constant.CellWidth,
		CellHeight:         constant.CellHeight,
		FrameInterval:      constant.FrameUpdateInterval,
		TransitionDuration: constant.TransitionDuration,
		GameOverDelay:      constant.GameOverDelay,

		Audio: AudioConfig{
			Enabled:   true,
			Volume:    1.0,
			SoundsDir: constant.SoundsDir,
			Music:     constant.BackgroundMusic,
		},
	}
}

// Load layers defaults, .env, the YAML file at path, then environment overrides
// Empty path falls back to $MONSTER_SHOOTER_CONFIG, then DefaultPath if it exists
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	required := true
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path == "" {
		path, required = DefaultPath, false
	}

	if err := cfg.loadFile(path, required); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from the environment; unparsable values are ignored
func (c *Config) applyEnv() {
	if v, ok := lookup("AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	// Volume is given as 0-100
	if v, ok := lookup("VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = clampUnit(float64(n) / 100.0)
		}
	}
	if v, ok := lookup("SOUNDS_DIR"); ok {
		c.Audio.SoundsDir = v
	}
	if v, ok := lookup("MUSIC"); ok {
		c.Audio.Music = v
	}
	if v, ok := lookup("WIN_THRESHOLD"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.WinThreshold = n
		}
	}
	if v, ok := lookup("SPAWN_INTERVAL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.SpawnInterval = d
		}
	}
}

// Validate rejects tunings the controller cannot run with
func (c *Config) Validate() error {
	switch {
	case c.SpawnInterval <= 0:
		return fmt.Errorf("spawn_interval must be positive, got %v", c.SpawnInterval)
	case c.MonsterMinDuration <= 0 || c.MonsterMaxDuration < c.MonsterMinDuration:
		return fmt.Errorf("monster duration range invalid: [%v, %v]", c.MonsterMinDuration, c.MonsterMaxDuration)
	case c.ProjectileDuration <= 0:
		return fmt.Errorf("projectile_duration must be positive, got %v", c.ProjectileDuration)
	case c.ShootDistance <= 0:
		return fmt.Errorf("shoot_distance must be positive, got %v", c.ShootDistance)
	case c.WinThreshold < 0:
		return fmt.Errorf("win_threshold must not be negative, got %d", c.WinThreshold)
	case c.MonsterWidth <= 0 || c.MonsterHeight <= 0 || c.ProjectileRadius <= 0:
		return fmt.Errorf("sprite extents must be positive")
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell size must be positive")
	case c.FrameInterval <= 0:
		return fmt.Errorf("frame_interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
