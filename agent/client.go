package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/WangCCe/slay-the-spire-ai/game"
	"github.com/WangCCe/slay-the-spire-ai/planner"
	"github.com/WangCCe/slay-the-spire-ai/stats"
)

// ClientConfig holds the connection and persistence settings for one agent.
type ClientConfig struct {
	URL            string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	StatsDir       string
	FlushEvery     int
}

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		URL:            "ws://127.0.0.1:8080/combat",
		ConnectTimeout: 10 * time.Second,
		ReadTimeout:    60 * time.Second,
		FlushEvery:     50,
	}
}

// gameEvent is the envelope every mod message arrives in.
type gameEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// combatEnd reports the outcome of one finished battle.
type combatEnd struct {
	BattleID    string `json:"battle_id"`
	Act         int32  `json:"act"`
	Encounter   string `json:"encounter"`
	Victory     bool   `json:"victory"`
	Turn        int32  `json:"turn"`
	PlayerHP    int32  `json:"player_hp"`
	StartHP     int32  `json:"start_hp"`
	PotionsUsed int32  `json:"potions_used"`
}

// Worker drives one websocket session: it turns incoming combat states into
// planned actions and accumulates telemetry rows until flushed.
type Worker struct {
	config  ClientConfig
	planner *planner.Planner
	log     *slog.Logger

	decisions []stats.DecisionRow
	combats   []stats.CombatRow
}

func NewWorker(config ClientConfig, p *planner.Planner, log *slog.Logger) *Worker {
	return &Worker{config: config, planner: p, log: log}
}

// Run connects to the mod and serves decisions until the connection drops or
// ctx is cancelled. Buffered telemetry is flushed before returning.
func (w *Worker) Run(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: w.config.ConnectTimeout}
	conn, _, err := dialer.DialContext(ctx, w.config.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer w.flush()

	w.log.Info("connected", "url", w.config.URL)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn.SetReadDeadline(time.Now().Add(w.config.ReadTimeout))

		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var event gameEvent
		if err := json.Unmarshal(message, &event); err != nil {
			w.log.Warn("unparseable event", "err", err)
			continue
		}

		switch event.Type {
		case "combat_state":
			reply, err := w.handleState(ctx, event.Data)
			if err != nil {
				w.log.Warn("state handling failed", "err", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return err
			}
		case "combat_end":
			w.handleEnd(event.Data)
			w.planner.Invalidate()
		case "game_end":
			return nil
		}
	}
}

func (w *Worker) handleState(ctx context.Context, data json.RawMessage) ([]byte, error) {
	var snap combatSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	s, err := snap.toState()
	if err != nil {
		return nil, err
	}

	d := w.planner.Decide(ctx, s, snap.RandomEvent)
	w.log.Debug("decision",
		"battle", snap.BattleID,
		"turn", snap.Turn,
		"action", d.Action.String(),
		"replanned", d.Replanned,
		"depth", d.Stats.Depth,
		"elapsed", d.Stats.Elapsed,
	)

	w.decisions = append(w.decisions, stats.DecisionRow{
		BattleID:          snap.BattleID,
		Turn:              snap.Turn,
		Act:               snap.Act,
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
	if w.config.StatsDir != "" && len(w.decisions) >= w.config.FlushEvery {
		w.flush()
	}

	// End of turn: the next state event starts from a fresh hand.
	if d.Action.Type == game.ActionEndTurn {
		w.planner.Invalidate()
	}

	return encodeCommand(d.Action)
}

func (w *Worker) handleEnd(data json.RawMessage) {
	var end combatEnd
	if err := json.Unmarshal(data, &end); err != nil {
		w.log.Warn("unparseable combat_end", "err", err)
		return
	}
	w.log.Info("combat over",
		"battle", end.BattleID,
		"encounter", end.Encounter,
		"victory", end.Victory,
		"turns", end.Turn,
		"hp", end.PlayerHP,
	)
	w.combats = append(w.combats, stats.CombatRow{
		BattleID:    end.BattleID,
		Act:         end.Act,
		Encounter:   end.Encounter,
		Won:         end.Victory,
		Turns:       end.Turn,
		FinalHP:     end.PlayerHP,
		HPLost:      end.StartHP - end.PlayerHP,
		PotionsUsed: end.PotionsUsed,
		Source:      "live",
	})
}

// flush writes buffered telemetry to parquet batches. Best-effort: a failed
// flush logs and keeps the rows for the next attempt.
func (w *Worker) flush() {
	if w.config.StatsDir == "" {
		w.decisions = w.decisions[:0]
		w.combats = w.combats[:0]
		return
	}
	if len(w.decisions) > 0 {
		if err := writeBatch(w.config.StatsDir, "decisions", w.decisions); err != nil {
			w.log.Error("flush decisions failed", "err", err)
		} else {
			w.decisions = w.decisions[:0]
		}
	}
	if len(w.combats) > 0 {
		if err := writeBatch(w.config.StatsDir, "combats", w.combats); err != nil {
			w.log.Error("flush combats failed", "err", err)
		} else {
			w.combats = w.combats[:0]
		}
	}
}

func writeBatch[T any](dir, schema string, rows []T) error {
	bw, err := stats.NewBatchWriter[T](dir, schema)
	if err != nil {
		return err
	}
	if err := bw.WriteRows(rows); err != nil {
		return err
	}
	_, _, err = bw.Finalize()
	return err
}
