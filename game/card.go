package game

// CardKind is the broad card category the simulator dispatches on.
type CardKind uint8

const (
	CardAttack CardKind = iota
	CardSkill
	CardPower
)

// CardSpec is the static effect descriptor for one card. The catalog package
// owns the tables; the simulator dispatches on these fields only, never on
// identity strings.
type CardSpec struct {
	ID      string
	Kind    CardKind
	Cost    int32
	Damage  int32 // base damage per hit
	Hits    int32 // number of hits, 0 for non-damaging cards
	Block   int32
	AOE     bool
	Exhaust bool
	Draw    int32
	Energy  int32 // energy gained when played
	// StrengthGain is applied to the player (Inflame, Demon Form first tick).
	StrengthGain int32
	// Applies is the debuff placed on the target (or all enemies when AOE).
	Applies DebuffSet
	// NeedsTarget reports whether the card requires a single enemy target.
	NeedsTarget bool
}

// CardInstance is one physical card in hand: the external instance id plus
// its static descriptor, copied by value so states stay self-contained.
type CardInstance struct {
	UUID string
	Spec CardSpec
}

// PotionKind is the potion effect category.
type PotionKind uint8

const (
	PotionDamage PotionKind = iota
	PotionBlock
	PotionHeal
	PotionStrength
	PotionEnergy
)

// PotionSpec is the static effect descriptor for one potion.
type PotionSpec struct {
	ID          string
	Kind        PotionKind
	Value       int32
	AOE         bool
	NeedsTarget bool
}

// PotionInstance is one potion on the belt.
type PotionInstance struct {
	UUID string
	Spec PotionSpec
}
