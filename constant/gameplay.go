package constant

import "time"

// Spawning
const (
	SpawnInterval      = 1 * time.Second
	MonsterMinDuration = 2 * time.Second
	MonsterMaxDuration = 4 * time.Second
)

// Shooting
const (
	ProjectileDuration = 2 * time.Second

	// ShootDistance is far enough to leave the field at any aim angle
	ShootDistance = 1000.0
)

// WinThreshold is exceeded, not reached: the 31st kill wins
const WinThreshold = 30

// Sprite extents in field units
const (
	PlayerWidth      = 16.0
	PlayerHeight     = 16.0
	MonsterWidth     = 16.0
	MonsterHeight    = 16.0
	ProjectileRadius = 4.0

	// PlayerXFraction and PlayerYFraction place the player relative to the field
	PlayerXFraction = 0.1
	PlayerYFraction = 0.5
)

// Presentation pacing
const (
	TransitionDuration = 500 * time.Millisecond
	GameOverDelay      = 3 * time.Second
)
