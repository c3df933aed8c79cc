package component

// Kind is the closed set of entity classes taking part in a session
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindMonster
	KindProjectile
)

// Category bits, ordered so monster sorts before projectile
const (
	CategoryNone       uint32 = 0
	CategoryMonster    uint32 = 1 << 0
	CategoryProjectile uint32 = 1 << 1
	CategoryPlayer     uint32 = 1 << 2
)

// Category returns the collision category bit for the kind
func (k Kind) Category() uint32 {
	switch k {
	case KindMonster:
		return CategoryMonster
	case KindProjectile:
		return CategoryProjectile
	case KindPlayer:
		return CategoryPlayer
	default:
		return CategoryNone
	}
}

// ContactMask returns categories this kind wants contact reports for
func (k Kind) ContactMask() uint32 {
	switch k {
	case KindMonster:
		return CategoryProjectile
	case KindProjectile:
		return CategoryMonster
	default:
		return CategoryNone
	}
}

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// KindPair is an unordered pair of kinds, normalized lower category first
type KindPair struct {
	First, Second Kind
}

// PairOf returns the canonical pair and whether the inputs were swapped
func PairOf(a, b Kind) (KindPair, bool) {
	if b.Category() < a.Category() {
		return KindPair{First: b, Second: a}, true
	}
	return KindPair{First: a, Second: b}, false
}
