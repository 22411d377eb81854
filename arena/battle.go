package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/WangCCe/slay-the-spire-ai/catalog"
	"github.com/WangCCe/slay-the-spire-ai/game"
	"github.com/WangCCe/slay-the-spire-ai/planner"
	"github.com/WangCCe/slay-the-spire-ai/rules"
	"github.com/WangCCe/slay-the-spire-ai/stats"
)

const (
	maxTurns          = 40
	maxActionsPerTurn = 20
	handSize          = 5
	baseEnergy        = 3
)

// enemyRuntime tracks one scripted enemy across the whole fight.
type enemyRuntime struct {
	script   enemyScript
	traits   catalog.MonsterTraits
	hp       int32
	block    int32
	strength int32
	debuffs  game.DebuffSet
	moveIdx  int
	gone     bool
}

// battleRunner plays one scripted encounter to completion with the planner
// choosing every player action.
type battleRunner struct {
	id      string
	enc     encounter
	planner *planner.Planner
	rng     *rand.Rand
	log     *slog.Logger

	player  game.Player
	enemies []enemyRuntime

	draw    []string
	discard []string

	potions     []game.PotionInstance
	usedPotions map[string]bool
	potionsUsed int32

	uuidSeq   int
	decisions []stats.DecisionRow
}

func newBattleRunner(enc encounter, cfg planner.Config, seed int64, log *slog.Logger) *battleRunner {
	b := &battleRunner{
		id:          fmt.Sprintf("%s-%d", enc.Name, seed),
		enc:         enc,
		planner:     planner.New(cfg, log),
		rng:         rand.New(rand.NewSource(seed)),
		log:         log,
		usedPotions: make(map[string]bool),
	}

	b.player = game.Player{
		HP:     enc.Player.HP,
		MaxHP:  enc.Player.MaxHP,
		Energy: enc.Player.Energy,
	}
	for _, es := range enc.Enemies {
		b.enemies = append(b.enemies, enemyRuntime{
			script: es,
			traits: catalog.Traits(es.Name),
			hp:     es.HP,
		})
	}

	b.draw = append(b.draw, enc.Player.Deck...)
	b.rng.Shuffle(len(b.draw), func(i, j int) { b.draw[i], b.draw[j] = b.draw[j], b.draw[i] })

	for _, id := range enc.Player.Potions {
		spec, ok := catalog.Potion(id)
		if !ok {
			continue
		}
		b.potions = append(b.potions, game.PotionInstance{UUID: b.nextUUID(id), Spec: spec})
	}

	return b
}

func (b *battleRunner) nextUUID(id string) string {
	b.uuidSeq++
	return fmt.Sprintf("%s#%d", id, b.uuidSeq)
}

// run plays the fight and returns its outcome row plus every decision row.
func (b *battleRunner) run(ctx context.Context) (stats.CombatRow, []stats.DecisionRow) {
	won := false
	turn := int32(0)

	for turn = 1; turn <= maxTurns; turn++ {
		if ctx.Err() != nil {
			break
		}

		b.player.Block = 0
		b.player.Energy = b.enc.Player.Energy
		if b.player.Energy < baseEnergy {
			b.player.Energy = baseEnergy
		}

		hand := b.drawHand()
		b.playTurn(ctx, turn, hand)
		b.discard = append(b.discard, hand...)

		if b.allEnemiesGone() {
			won = true
			break
		}

		b.enemyTurn()
		if b.player.HP <= 0 {
			break
		}
	}

	if turn > maxTurns {
		turn = maxTurns
	}
	finalHP := b.player.HP
	if finalHP < 0 {
		finalHP = 0
	}
	return stats.CombatRow{
		BattleID:    b.id,
		Act:         b.enc.Act,
		Encounter:   b.enc.Name,
		Won:         won,
		Turns:       turn,
		FinalHP:     finalHP,
		HPLost:      b.enc.Player.HP - finalHP,
		PotionsUsed: b.potionsUsed,
		Source:      "arena",
	}, b.decisions
}

// drawHand pulls up to handSize cards, reshuffling the discard pile into the
// draw pile when it runs dry.
func (b *battleRunner) drawHand() []string {
	hand := make([]string, 0, handSize)
	for len(hand) < handSize {
		if len(b.draw) == 0 {
			if len(b.discard) == 0 {
				break
			}
			b.draw, b.discard = b.discard, b.draw[:0]
			b.rng.Shuffle(len(b.draw), func(i, j int) { b.draw[i], b.draw[j] = b.draw[j], b.draw[i] })
		}
		hand = append(hand, b.draw[len(b.draw)-1])
		b.draw = b.draw[:len(b.draw)-1]
	}
	return hand
}

// playTurn lets the planner act until it ends the turn, applying each chosen
// action to the live state and recording telemetry.
func (b *battleRunner) playTurn(ctx context.Context, turn int32, hand []string) {
	state := b.buildState(turn, hand)
	b.planner.Invalidate()

	for i := 0; i < maxActionsPerTurn; i++ {
		d := b.planner.Decide(ctx, state, false)
		b.record(turn, &state, d)

		if d.Action.Type == game.ActionEndTurn {
			break
		}
		next, err := rules.Apply(state, d.Action)
		if err != nil {
			b.log.Warn("arena action rejected", "battle", b.id, "action", d.Action.String(), "err", err)
			break
		}
		if d.Action.Type == game.ActionUsePotion {
			b.usedPotions[d.Action.UUID] = true
			b.potionsUsed++
		}
		state = next
	}

	b.syncBack(&state)
}

// buildState assembles the planner's snapshot from the live fight.
func (b *battleRunner) buildState(turn int32, hand []string) game.CombatState {
	var s game.CombatState
	s.Act = b.enc.Act
	s.Turn = turn
	s.Player = b.player

	for i := range b.enemies {
		e := &b.enemies[i]
		move := e.script.Moves[e.moveIdx]
		s.Enemies[i] = game.Enemy{
			ID:           int32(i),
			HP:           e.hp,
			MaxHP:        e.script.HP,
			Block:        e.block,
			Debuffs:      e.debuffs,
			Intent:       move.Intent,
			IntentDamage: move.Damage + e.strength,
			IntentHits:   move.Hits,
			Boss:         e.traits.Boss,
			Scaling:      e.traits.Scaling,
			Gone:         e.gone,
		}
	}
	s.NumEnemies = uint8(len(b.enemies))

	for i, id := range hand {
		spec, ok := catalog.Card(id)
		if !ok {
			spec = game.CardSpec{ID: id, Kind: game.CardSkill, Cost: 1}
		}
		s.Hand[i] = game.CardInstance{UUID: b.nextUUID(id), Spec: spec}
	}
	s.NumCards = uint8(len(hand))

	n := uint8(0)
	for _, p := range b.potions {
		if b.usedPotions[p.UUID] {
			continue
		}
		s.Potions[n] = p
		n++
	}
	s.NumPotions = n

	return s
}

// syncBack copies the simulated end-of-turn state into the live fight.
func (b *battleRunner) syncBack(s *game.CombatState) {
	b.player = s.Player
	for i := range b.enemies {
		e := &b.enemies[i]
		e.hp = s.Enemies[i].HP
		e.block = s.Enemies[i].Block
		e.debuffs = s.Enemies[i].Debuffs
		e.gone = s.Enemies[i].Gone
	}
}

// enemyTurn executes each live enemy's scripted move against the player.
// Debuffs on either side last one full cycle: whatever was present before
// this enemy turn wears off at its end, fresh applications stay for the next.
func (b *battleRunner) enemyTurn() {
	staleDebuffs := b.player.Debuffs
	var fresh game.DebuffSet

	for i := range b.enemies {
		e := &b.enemies[i]
		if e.gone {
			continue
		}
		move := e.script.Moves[e.moveIdx]

		if move.Intent.IsAttack() {
			hits := move.Hits
			if hits < 1 {
				hits = 1
			}
			for h := int32(0); h < hits; h++ {
				dmg := move.Damage + e.strength
				if e.debuffs.Has(game.DebuffWeak) {
					dmg = int32(float64(dmg) * game.WeakMultiplier)
				}
				if b.player.Debuffs.Has(game.DebuffVulnerable) {
					dmg = int32(float64(dmg) * game.VulnerableMultiplier)
				}
				blocked := dmg
				if blocked > b.player.Block {
					blocked = b.player.Block
				}
				b.player.Block -= blocked
				b.player.HP -= dmg - blocked
			}
		}
		if move.Block > 0 {
			e.block += move.Block
		}
		if move.Buff > 0 {
			for j := range b.enemies {
				if !b.enemies[j].gone {
					b.enemies[j].strength += move.Buff
				}
			}
		}
		if move.Applies != 0 {
			b.player.Debuffs |= move.Applies
			fresh |= move.Applies
		}

		e.moveIdx = (e.moveIdx + 1) % len(e.script.Moves)
		// Vulnerable and weak from the player's cards expire with this turn.
		e.debuffs = 0
	}

	b.player.Debuffs = (b.player.Debuffs &^ staleDebuffs) | fresh
}

func (b *battleRunner) allEnemiesGone() bool {
	for i := range b.enemies {
		if !b.enemies[i].gone {
			return false
		}
	}
	return true
}

func (b *battleRunner) record(turn int32, s *game.CombatState, d planner.Decision) {
	b.decisions = append(b.decisions, stats.DecisionRow{
		BattleID:          b.id,
		Turn:              turn,
		Act:               b.enc.Act,
		Action:            d.Action.String(),
		Replanned:         d.Replanned,
		Depth:             int32(d.Stats.Depth),
		Expanded:          int32(d.Stats.Expanded),
		TranspositionHits: int32(d.Stats.TranspositionHits),
		DroppedBranches:   int32(d.Stats.DroppedBranches),
		Truncated:         d.Stats.Truncated,
		Fallback:          d.Stats.Fallback,
		PlanMicros:        d.Stats.Elapsed.Microseconds(),
		PlayerHP:          s.Player.HP,
		PlayerBlock:       s.Player.Block,
		EnemiesAlive:      int32(s.LiveEnemyCount()),
	})
}
