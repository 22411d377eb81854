package catalog

// MonsterTraits carries the per-species flags the threat model consults.
type MonsterTraits struct {
	Boss    bool
	Scaling bool
}

var monsters = map[string]MonsterTraits{
	// Act 1
	"Cultist":        {Scaling: true},
	"JawWorm":        {},
	"FungiBeast":     {},
	"Looter":         {},
	"GremlinNob":     {Scaling: true},
	"Lagavulin":      {Scaling: true},
	"Sentry":         {},
	"SlimeBoss":      {Boss: true},
	"TheGuardian":    {Boss: true, Scaling: true},
	"Hexaghost":      {Boss: true, Scaling: true},
	"AcidSlime_M":    {},
	"AcidSlime_S":    {},
	"SpikeSlime_M":   {},
	"SpikeSlime_S":   {},
	"GremlinWarrior": {},
	"GremlinWizard":  {Scaling: true},

	// Act 2
	"Chosen":          {},
	"Byrd":            {},
	"SphericGuardian": {},
	"SnakePlant":      {},
	"Snecko":          {},
	"Centurion":       {},
	"Healer":          {},
	"BookOfStabbing":  {Scaling: true},
	"GremlinLeader":   {Scaling: true},
	"SlaverBoss":      {},
	"Champ":           {Boss: true, Scaling: true},
	"TheCollector":    {Boss: true},
	"BronzeAutomaton": {Boss: true, Scaling: true},

	// Act 3
	"Darkling":     {},
	"OrbWalker":    {Scaling: true},
	"Spiker":       {Scaling: true},
	"WrithingMass": {},
	"GiantHead":    {Scaling: true},
	"Nemesis":      {},
	"Reptomancer":  {},
	"AwakenedOne":  {Boss: true, Scaling: true},
	"TimeEater":    {Boss: true, Scaling: true},
	"Donu":         {Boss: true},
	"Deca":         {Boss: true},
}

// Traits returns the flags for a monster id. Unknown monsters come back with
// no traits set, which keeps the threat model conservative rather than wrong.
func Traits(monsterID string) MonsterTraits {
	return monsters[monsterID]
}
