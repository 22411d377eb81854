package game

// NoTarget marks an action without a single-enemy target.
const NoTarget int32 = -1

// ActionType tags the Action variant.
type ActionType uint8

const (
	ActionEndTurn ActionType = iota
	ActionPlayCard
	ActionUsePotion
)

// Action is one step of a turn plan. Slot indexes into the hand or potion
// belt of the state the action was generated from; Target indexes into
// Enemies, or is NoTarget.
type Action struct {
	Type   ActionType
	Slot   uint8
	Target int32

	// UUID is the external instance id of the card or potion, carried so the
	// caller can translate the action to the wire format.
	UUID string
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlayCard:
		return "play:" + a.UUID
	case ActionUsePotion:
		return "potion:" + a.UUID
	default:
		return "end_turn"
	}
}

// ActionSequence is an ordered turn plan plus the terminal state it reaches
// and that state's full evaluation score. A sequence is owned by the frontier
// entry that produced it and is never mutated after creation; extending a
// plan copies the action list.
type ActionSequence struct {
	Actions []Action
	Final   CombatState
	Score   float64
}

// Extend returns a new sequence with one more action, a fresh backing array,
// and the given terminal state. The receiver is left untouched.
func (q ActionSequence) Extend(a Action, final CombatState, score float64) ActionSequence {
	actions := make([]Action, 0, len(q.Actions)+1)
	actions = append(actions, q.Actions...)
	actions = append(actions, a)
	return ActionSequence{Actions: actions, Final: final, Score: score}
}
