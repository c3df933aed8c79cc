package core

// SoundType identifies a one-shot sound effect
type SoundType int

const (
	SoundShoot SoundType = iota // Projectile fired
	SoundHit                    // Projectile struck a monster
	SoundWin                    // Outcome: won
	SoundLose                   // Outcome: lost
	SoundTypeCount
)

// String returns the asset stem used for lookup
func (s SoundType) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}
