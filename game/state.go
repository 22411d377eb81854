// Package game defines the core combat state types for the planner.
//
// These types represent the minimal state needed for forward simulation and
// scoring. The state is a flat value type (fixed-capacity inline arrays, no
// slices or pointers) so that branching during beam search is a plain struct
// copy rather than a heap-graph duplication.
package game

const (
	// MaxEnemies covers the widest encounters the planner simulates.
	MaxEnemies = 6
	// MaxHandSize is the largest hand the planner will consider in one turn.
	MaxHandSize = 10
	// MaxPotions is the belt capacity.
	MaxPotions = 5
)

// DebuffSet is a bitset of presence-only debuffs. The planner treats every
// debuff as binary: any non-zero duration yields the same fixed multiplier,
// never layered by stack count.
type DebuffSet uint8

const (
	DebuffVulnerable DebuffSet = 1 << iota
	DebuffWeak
	DebuffFrail
)

// Has reports whether the given debuff is present.
func (d DebuffSet) Has(f DebuffSet) bool { return d&f != 0 }

// Fixed multipliers for present debuffs. Stack counts never layer these: a
// debuffed unit gets exactly one application of the factor.
const (
	VulnerableMultiplier = 1.5
	WeakMultiplier       = 0.75
	FrailMultiplier      = 0.75
)

// IntentKind categorizes an enemy's telegraphed move for the next enemy turn.
type IntentKind uint8

const (
	IntentUnknown IntentKind = iota
	IntentAttack
	IntentAttackBuff
	IntentAttackDebuff
	IntentDefend
	IntentBuff
	IntentDebuff
)

// IsAttack reports whether the intent deals damage to the player.
func (k IntentKind) IsAttack() bool {
	return k == IntentAttack || k == IntentAttackBuff || k == IntentAttackDebuff
}

// AppliesDebuff reports whether the intent debuffs the player.
func (k IntentKind) AppliesDebuff() bool {
	return k == IntentAttackDebuff || k == IntentDebuff
}

// BuffsAllies reports whether the intent strengthens other enemies.
func (k IntentKind) BuffsAllies() bool {
	return k == IntentAttackBuff || k == IntentBuff
}

// Player holds the player's side of a combat position.
type Player struct {
	HP        int32
	MaxHP     int32
	Block     int32
	Energy    int32
	Strength  int32
	Dexterity int32
	Debuffs   DebuffSet
}

// Enemy holds one enemy's side of a combat position.
//
// ID is a stable identity key assigned by the snapshot layer; it survives
// reordering and is used to build canonical state keys.
type Enemy struct {
	ID           int32
	HP           int32
	MaxHP        int32
	Block        int32
	Debuffs      DebuffSet
	Intent       IntentKind
	IntentDamage int32 // declared damage per hit
	IntentHits   int32 // declared hit count, 0 when not attacking
	Boss         bool
	Scaling      bool // grows stronger over time (e.g. ritual, mode shift)
	Gone         bool
}

// Counters accumulates engine events during one simulated sequence. They feed
// synergy scoring only and are never consulted for legality.
type Counters struct {
	ExhaustEvents    int32
	CardsDrawn       int32
	EnergyGained     int32
	EnergySaved      int32
	DamageInstances  int32
	MonstersKilled   int32
	TotalDamageDealt int32
}

// CombatState is a complete snapshot of one simulated battle position.
//
// It is a flat value type: assignment is a deep copy. Branches in the search
// never share mutable state.
type CombatState struct {
	Act  int32
	Turn int32

	Player Player

	Enemies    [MaxEnemies]Enemy
	NumEnemies uint8

	Hand     [MaxHandSize]CardInstance
	NumCards uint8

	Potions    [MaxPotions]PotionInstance
	NumPotions uint8

	// PlayedMask marks hand slots already played in this branch, so the same
	// physical card is never simulated twice within one sequence.
	PlayedMask uint16
	// DrankMask marks potion slots already used in this branch.
	DrankMask uint8

	Counters Counters
}

// LiveEnemyCount returns the number of enemies still in the fight.
func (s *CombatState) LiveEnemyCount() int {
	n := 0
	for i := 0; i < int(s.NumEnemies); i++ {
		if !s.Enemies[i].Gone {
			n++
		}
	}
	return n
}

// CardPlayed reports whether the hand slot was already played in this branch.
func (s *CombatState) CardPlayed(slot uint8) bool {
	return s.PlayedMask&(1<<slot) != 0
}

// PotionDrank reports whether the potion slot was already used in this branch.
func (s *CombatState) PotionDrank(slot uint8) bool {
	return s.DrankMask&(1<<slot) != 0
}

// PlayableCardCount returns the number of unplayed hand cards whose cost fits
// in the remaining energy.
func (s *CombatState) PlayableCardCount() int {
	n := 0
	for i := uint8(0); i < s.NumCards; i++ {
		if s.CardPlayed(i) {
			continue
		}
		if s.Hand[i].Spec.Cost <= s.Player.Energy {
			n++
		}
	}
	return n
}

// ZeroCostCardCount returns the number of unplayed zero-cost hand cards.
func (s *CombatState) ZeroCostCardCount() int {
	n := 0
	for i := uint8(0); i < s.NumCards; i++ {
		if !s.CardPlayed(i) && s.Hand[i].Spec.Cost == 0 {
			n++
		}
	}
	return n
}
