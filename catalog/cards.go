// Package catalog holds the static game knowledge the planner needs: card
// effects, potion effects, and monster traits. The builtin tables cover the
// Ironclad base set; the wiki scraper can extend them offline.
package catalog

import "github.com/WangCCe/slay-the-spire-ai/game"

var cards = map[string]game.CardSpec{
	"Strike_R": {ID: "Strike_R", Kind: game.CardAttack, Cost: 1, Damage: 6, NeedsTarget: true},
	"Defend_R": {ID: "Defend_R", Kind: game.CardSkill, Cost: 1, Block: 5},
	"Bash":     {ID: "Bash", Kind: game.CardAttack, Cost: 2, Damage: 8, Applies: game.DebuffVulnerable, NeedsTarget: true},

	"Anger":         {ID: "Anger", Kind: game.CardAttack, Cost: 0, Damage: 6, NeedsTarget: true},
	"Cleave":        {ID: "Cleave", Kind: game.CardAttack, Cost: 1, Damage: 8, AOE: true},
	"Clothesline":   {ID: "Clothesline", Kind: game.CardAttack, Cost: 2, Damage: 12, Applies: game.DebuffWeak, NeedsTarget: true},
	"Iron Wave":     {ID: "Iron Wave", Kind: game.CardAttack, Cost: 1, Damage: 5, Block: 5, NeedsTarget: true},
	"Pommel Strike": {ID: "Pommel Strike", Kind: game.CardAttack, Cost: 1, Damage: 9, Draw: 1, NeedsTarget: true},
	"Twin Strike":   {ID: "Twin Strike", Kind: game.CardAttack, Cost: 1, Damage: 5, Hits: 2, NeedsTarget: true},
	"Thunderclap":   {ID: "Thunderclap", Kind: game.CardAttack, Cost: 1, Damage: 4, AOE: true, Applies: game.DebuffVulnerable},
	"Headbutt":      {ID: "Headbutt", Kind: game.CardAttack, Cost: 1, Damage: 9, NeedsTarget: true},
	"Body Slam":     {ID: "Body Slam", Kind: game.CardAttack, Cost: 1, Damage: 0, NeedsTarget: true},
	"Wild Strike":   {ID: "Wild Strike", Kind: game.CardAttack, Cost: 1, Damage: 12, NeedsTarget: true},
	"Uppercut":      {ID: "Uppercut", Kind: game.CardAttack, Cost: 2, Damage: 13, Applies: game.DebuffWeak | game.DebuffVulnerable, NeedsTarget: true},
	"Carnage":       {ID: "Carnage", Kind: game.CardAttack, Cost: 2, Damage: 20, NeedsTarget: true},
	"Bludgeon":      {ID: "Bludgeon", Kind: game.CardAttack, Cost: 3, Damage: 32, NeedsTarget: true},
	"Pummel":        {ID: "Pummel", Kind: game.CardAttack, Cost: 1, Damage: 2, Hits: 4, Exhaust: true, NeedsTarget: true},

	"Shrug It Off":  {ID: "Shrug It Off", Kind: game.CardSkill, Cost: 1, Block: 8, Draw: 1},
	"Ghostly Armor": {ID: "Ghostly Armor", Kind: game.CardSkill, Cost: 1, Block: 10},
	"Impervious":    {ID: "Impervious", Kind: game.CardSkill, Cost: 2, Block: 30, Exhaust: true},
	"Flex":          {ID: "Flex", Kind: game.CardSkill, Cost: 0, StrengthGain: 2},
	"Shockwave":     {ID: "Shockwave", Kind: game.CardSkill, Cost: 2, AOE: true, Applies: game.DebuffWeak | game.DebuffVulnerable, Exhaust: true},
	"Intimidate":    {ID: "Intimidate", Kind: game.CardSkill, Cost: 0, AOE: true, Applies: game.DebuffWeak, Exhaust: true},
	"Seeing Red":    {ID: "Seeing Red", Kind: game.CardSkill, Cost: 1, Energy: 2, Exhaust: true},
	"Battle Trance": {ID: "Battle Trance", Kind: game.CardSkill, Cost: 0, Draw: 3},
	"True Grit":     {ID: "True Grit", Kind: game.CardSkill, Cost: 1, Block: 7},

	"Inflame": {ID: "Inflame", Kind: game.CardPower, Cost: 1, StrengthGain: 2},
	// Only the first tick of strength is modeled; per-turn growth is outside
	// the one-turn horizon.
	"Demon Form": {ID: "Demon Form", Kind: game.CardPower, Cost: 3, StrengthGain: 2},
}

// Card looks up a card effect by its game id.
func Card(id string) (game.CardSpec, bool) {
	spec, ok := cards[id]
	return spec, ok
}

var potions = map[string]game.PotionSpec{
	"Fire Potion":      {ID: "Fire Potion", Kind: game.PotionDamage, Value: 20, NeedsTarget: true},
	"Explosive Potion": {ID: "Explosive Potion", Kind: game.PotionDamage, Value: 10, AOE: true},
	"Block Potion":     {ID: "Block Potion", Kind: game.PotionBlock, Value: 12},
	"Strength Potion":  {ID: "Strength Potion", Kind: game.PotionStrength, Value: 2},
	"Energy Potion":    {ID: "Energy Potion", Kind: game.PotionEnergy, Value: 2},
	"Fruit Juice":      {ID: "Fruit Juice", Kind: game.PotionHeal, Value: 5},
}

// Potion looks up a potion effect by its game id.
func Potion(id string) (game.PotionSpec, bool) {
	spec, ok := potions[id]
	return spec, ok
}
