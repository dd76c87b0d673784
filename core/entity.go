package core

// Kind tags the entity variant
type Kind uint8

const (
	KindNone Kind = iota
	KindProjectile
	KindEnemy
	KindPlayer
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	case KindEffect:
		return "effect"
	default:
		return "none"
	}
}

// Faction excludes same-side hits in collision resolution
type Faction uint8

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionHostile
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionHostile:
		return "hostile"
	default:
		return "none"
	}
}

// AIState is the per-enemy behavior state
type AIState uint8

const (
	AIApproach AIState = iota
	AIEngage
	AIRetreat
	AIDead
)

func (s AIState) String() string {
	switch s {
	case AIApproach:
		return "approach"
	case AIEngage:
		return "engage"
	case AIRetreat:
		return "retreat"
	case AIDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ArchetypeID indexes the compiled enemy archetype table
type ArchetypeID uint8

// WeaponID indexes the compiled weapon table
type WeaponID uint8

// EffectKind selects the render-only effect variant
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectSpark
)

// Entity is the pooled record for every kind
// Relations to other entities are by Handle only
type Entity struct {
	Kinetic

	Handle  Handle
	Kind    Kind
	Faction Faction
	Alive   bool

	// Health for ships, remaining seconds for projectiles and effects
	Health   float64
	Lifetime float64

	// Projectile payload
	Owner  Handle
	Weapon WeaponID
	Damage float64

	// Enemy payload
	Archetype ArchetypeID
	State     AIState
	Wave      int
	MaxHealth float64
	Cooldown  float64
	Strafe    float64 // +1 or -1, lateral direction while engaged

	// Effect payload
	Effect EffectKind
}

// Kill marks the entity for removal in the next compaction
func (e *Entity) Kill() {
	e.Alive = false
	if e.Kind == KindEnemy {
		e.State = AIDead
	}
}
