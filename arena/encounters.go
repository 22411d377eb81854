package main

import "github.com/WangCCe/slay-the-spire-ai/game"

// scriptedMove is one step of an enemy's fixed rotation.
type scriptedMove struct {
	Intent  game.IntentKind
	Damage  int32
	Hits    int32
	Block   int32
	Buff    int32 // strength gained by this enemy and its allies
	Applies game.DebuffSet
}

// enemyScript defines a deterministic enemy: stats plus a move rotation that
// cycles until the fight ends.
type enemyScript struct {
	Name  string
	HP    int32
	Moves []scriptedMove
}

// loadout is the player side of a scripted fight.
type loadout struct {
	HP      int32
	MaxHP   int32
	Energy  int32
	Deck    []string
	Potions []string
}

// encounter is one benchmark fight: a player loadout against scripted
// enemies, tagged with the act it represents.
type encounter struct {
	Name    string
	Act     int32
	Player  loadout
	Enemies []enemyScript
}

var starterDeck = []string{
	"Strike_R", "Strike_R", "Strike_R", "Strike_R", "Strike_R",
	"Defend_R", "Defend_R", "Defend_R", "Defend_R",
	"Bash",
}

var midDeck = []string{
	"Strike_R", "Strike_R", "Strike_R",
	"Defend_R", "Defend_R", "Defend_R",
	"Bash", "Cleave", "Shrug It Off", "Pommel Strike",
	"Anger", "Iron Wave", "Inflame",
}

var lateDeck = []string{
	"Strike_R", "Strike_R",
	"Defend_R", "Defend_R",
	"Bash", "Cleave", "Shrug It Off", "Uppercut",
	"Carnage", "Impervious", "Battle Trance", "Flex",
	"Twin Strike", "Thunderclap", "Seeing Red",
}

var encounters = []encounter{
	{
		Name:   "Cultist",
		Act:    1,
		Player: loadout{HP: 72, MaxHP: 80, Energy: 3, Deck: starterDeck},
		Enemies: []enemyScript{{
			Name: "Cultist", HP: 50,
			Moves: []scriptedMove{
				{Intent: game.IntentBuff, Buff: 3},
				{Intent: game.IntentAttack, Damage: 6, Hits: 1},
			},
		}},
	},
	{
		Name:   "JawWorm",
		Act:    1,
		Player: loadout{HP: 68, MaxHP: 80, Energy: 3, Deck: starterDeck},
		Enemies: []enemyScript{{
			Name: "JawWorm", HP: 42,
			Moves: []scriptedMove{
				{Intent: game.IntentAttack, Damage: 11, Hits: 1},
				{Intent: game.IntentDefend, Block: 6},
				{Intent: game.IntentAttackBuff, Damage: 7, Hits: 1, Buff: 3},
			},
		}},
	},
	{
		Name:   "GremlinNob",
		Act:    1,
		Player: loadout{HP: 60, MaxHP: 80, Energy: 3, Deck: midDeck, Potions: []string{"Block Potion"}},
		Enemies: []enemyScript{{
			Name: "GremlinNob", HP: 82,
			Moves: []scriptedMove{
				{Intent: game.IntentBuff, Buff: 2},
				{Intent: game.IntentAttack, Damage: 14, Hits: 1},
				{Intent: game.IntentAttack, Damage: 16, Hits: 1},
			},
		}},
	},
	{
		Name:   "SlaverPair",
		Act:    2,
		Player: loadout{HP: 58, MaxHP: 75, Energy: 3, Deck: midDeck, Potions: []string{"Fire Potion"}},
		Enemies: []enemyScript{
			{
				Name: "SlaverBlue", HP: 46,
				Moves: []scriptedMove{
					{Intent: game.IntentAttack, Damage: 12, Hits: 1},
					{Intent: game.IntentDebuff, Applies: game.DebuffWeak},
				},
			},
			{
				Name: "SlaverRed", HP: 48,
				Moves: []scriptedMove{
					{Intent: game.IntentAttack, Damage: 13, Hits: 1},
					{Intent: game.IntentAttackDebuff, Damage: 8, Hits: 1, Applies: game.DebuffVulnerable},
				},
			},
		},
	},
	{
		Name:   "BookOfStabbing",
		Act:    2,
		Player: loadout{HP: 55, MaxHP: 75, Energy: 3, Deck: lateDeck, Potions: []string{"Energy Potion"}},
		Enemies: []enemyScript{{
			Name: "BookOfStabbing", HP: 168,
			Moves: []scriptedMove{
				{Intent: game.IntentAttack, Damage: 6, Hits: 2},
				{Intent: game.IntentAttackBuff, Damage: 21, Hits: 1, Buff: 1},
			},
		}},
	},
	{
		Name:   "Champ",
		Act:    2,
		Player: loadout{HP: 62, MaxHP: 75, Energy: 3, Deck: lateDeck, Potions: []string{"Fire Potion", "Block Potion"}},
		Enemies: []enemyScript{{
			Name: "Champ", HP: 240,
			Moves: []scriptedMove{
				{Intent: game.IntentAttackDebuff, Damage: 12, Hits: 1, Applies: game.DebuffFrail},
				{Intent: game.IntentDefend, Block: 15},
				{Intent: game.IntentBuff, Buff: 2},
				{Intent: game.IntentAttack, Damage: 16, Hits: 1},
			},
		}},
	},
	{
		Name:   "Darklings",
		Act:    3,
		Player: loadout{HP: 50, MaxHP: 70, Energy: 3, Deck: lateDeck, Potions: []string{"Explosive Potion"}},
		Enemies: []enemyScript{
			{
				Name: "Darkling", HP: 50,
				Moves: []scriptedMove{
					{Intent: game.IntentAttack, Damage: 9, Hits: 2},
					{Intent: game.IntentDefend, Block: 12},
				},
			},
			{
				Name: "Darkling", HP: 52,
				Moves: []scriptedMove{
					{Intent: game.IntentDefend, Block: 12},
					{Intent: game.IntentAttack, Damage: 9, Hits: 2},
				},
			},
			{
				Name: "Darkling", HP: 48,
				Moves: []scriptedMove{
					{Intent: game.IntentAttack, Damage: 8, Hits: 2},
					{Intent: game.IntentAttack, Damage: 9, Hits: 2},
				},
			},
		},
	},
	{
		Name:   "AwakenedOne",
		Act:    3,
		Player: loadout{HP: 60, MaxHP: 70, Energy: 3, Deck: lateDeck, Potions: []string{"Fire Potion", "Strength Potion"}},
		Enemies: []enemyScript{{
			Name: "AwakenedOne", HP: 300,
			Moves: []scriptedMove{
				{Intent: game.IntentBuff, Buff: 2},
				{Intent: game.IntentAttack, Damage: 20, Hits: 1},
				{Intent: game.IntentAttack, Damage: 6, Hits: 3},
			},
		}},
	},
}
