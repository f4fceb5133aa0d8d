package bot

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

// HeuristicAgent is the main agent: a fixed-priority decision chain over
// the type chart, move scores, and danger levels, tuned by a Weights set.
//
// The chain, first match wins:
//
//  1. forced switch
//  2. recovery when hurt and not threatened
//  3. terastallization (defensive, then offensive)
//  4. setup when safe
//  5. switch out of bad matchups
//  6. the best-scoring move
type HeuristicAgent struct {
	w    Weights
	name string

	mu   sync.Mutex
	memo map[string]*battleMemo // battle tag -> scratch state
}

// battleMemo is per-battle scratch state: the last move chosen and the
// opponent's HP when it was chosen, used to damp fruitless repeats.
type battleMemo struct {
	lastMove  string
	lastOppHP float64
}

// NewHeuristicAgent creates a heuristic agent with the given tuning.
func NewHeuristicAgent(w Weights) *HeuristicAgent {
	return &HeuristicAgent{w: w, name: "heuristic", memo: make(map[string]*battleMemo)}
}

func (a *HeuristicAgent) Name() string { return a.name }

// Weights exposes the active tuning, mainly for arena reporting.
func (a *HeuristicAgent) Weights() Weights { return a.w }

// Forget drops the scratch state for a finished battle.
func (a *HeuristicAgent) Forget(tag string) {
	a.mu.Lock()
	delete(a.memo, tag)
	a.mu.Unlock()
}

func (a *HeuristicAgent) ChooseAction(b *showdown.Battle) showdown.Action {
	me, opp := b.Active(), b.OpponentActive()

	// 1. Forced switch: pick the best matchup against whatever is out.
	if b.ForceSwitch || me == nil || me.Fainted {
		if sw, _ := BestSwitch(a.w, b); sw != nil {
			return showdown.SwitchAction(sw)
		}
		return showdown.Action{}
	}

	danger := DangerLevel(me, opp)

	// 2. Recovery: heal when hurt and the matchup gives us the turn.
	if me.CurrentHPFraction() < a.w.RecoverHPThreshold && danger < a.w.RecoverDangerMax {
		for _, mv := range b.AvailableMoves {
			if mv.ID == "recover" || mv.ID == "morningsun" {
				return showdown.MoveAction(mv)
			}
		}
	}

	best, bestScore := BestMove(a.w, b)
	bestScore = a.dampRepeat(b, best, bestScore)

	// 3. Terastallization, once per battle. Defensively when the current
	// typing is getting run over and the tera typing genuinely resists the
	// opponent; offensively when a tera-boosted hit converts a weakened
	// target.
	if b.CanTera && opp != nil && me.TeraType != showdown.TypeNone && !me.Terastallized {
		if danger >= a.w.TeraDangerThreshold && teraResists(me, opp) && best.ID != "" && !best.IsStatus() {
			log.Debug().Str("battle", b.Tag).Str("move", best.ID).Msg("Defensive tera")
			return showdown.TeraMoveAction(best)
		}
		if tm, ts := a.bestTeraMove(b, me, opp); ts > a.w.TeraScoreThreshold && opp.CurrentHPFraction() < a.w.TeraTargetHPMax {
			log.Debug().Str("battle", b.Tag).Str("move", tm.ID).Float64("score", ts).Msg("Offensive tera")
			return showdown.TeraMoveAction(tm)
		}
	}

	// 4. Setup: boost when the opponent can't punish it and the relevant
	// stage has room left.
	if danger < a.w.SetupDangerMax {
		for _, mv := range b.AvailableMoves {
			switch mv.ID {
			case "swordsdance":
				if me.Boosts["atk"] < 6 {
					return showdown.MoveAction(mv)
				}
			case "calmmind":
				if me.Boosts["spa"] < 6 {
					return showdown.MoveAction(mv)
				}
			}
		}
	}

	// 5. Switch rules. Never while trapped. Bail from a threatened spot when
	// nothing we have lands hard and a teammate genuinely resists, or make a
	// desperate swap when every move is near-useless.
	if !b.Trapped && len(b.AvailableSwitches) > 0 {
		sw, swScore := BestSwitch(a.w, b)
		if sw != nil {
			threatened := danger >= a.w.SwitchDangerThreshold &&
				bestScore < a.w.SwitchScoreThreshold &&
				defensiveScore(sw, opp) > a.w.SwitchResistMin
			desperate := bestScore < a.w.DesperateScoreMax && swScore > a.w.DesperateSwitchMin
			if threatened || desperate {
				log.Debug().Str("battle", b.Tag).Str("out", me.Species).Str("in", sw.Species).
					Float64("danger", danger).Float64("score", bestScore).Msg("Switching")
				return showdown.SwitchAction(sw)
			}
		}
	}

	// 6. Best move, falling back to random via the caller's safety net.
	if best.ID == "" {
		return showdown.Action{}
	}
	a.remember(b, best)
	return showdown.MoveAction(best)
}

// dampRepeat shrinks the score of last turn's move when it made no visible
// progress on the opponent, nudging the chain toward the switch rules.
func (a *HeuristicAgent) dampRepeat(b *showdown.Battle, best showdown.Move, score float64) float64 {
	if a.w.RepeatPenalty >= 1 || best.ID == "" {
		return score
	}
	opp := b.OpponentActive()
	if opp == nil {
		return score
	}
	a.mu.Lock()
	m := a.memo[b.Tag]
	a.mu.Unlock()
	if m != nil && m.lastMove == best.ID && opp.CurrentHPFraction() >= m.lastOppHP {
		return score * a.w.RepeatPenalty
	}
	return score
}

func (a *HeuristicAgent) remember(b *showdown.Battle, mv showdown.Move) {
	opp := b.OpponentActive()
	if opp == nil {
		return
	}
	a.mu.Lock()
	m := a.memo[b.Tag]
	if m == nil {
		m = &battleMemo{}
		a.memo[b.Tag] = m
	}
	m.lastMove = mv.ID
	m.lastOppHP = opp.CurrentHPFraction()
	a.mu.Unlock()
}

// teraResists reports whether the tera typing would take the opponent's
// strongest type at resisted damage or better.
func teraResists(me, opp *showdown.Pokemon) bool {
	tera := &showdown.Pokemon{Species: me.Species, Types: []showdown.Type{me.TeraType}}
	return DangerLevel(tera, opp) < 1
}

// bestTeraMove scores the moves matching the tera type with the tera STAB
// multiplier: 2x when tera doubles down on a natural STAB type, plain STAB
// otherwise.
func (a *HeuristicAgent) bestTeraMove(b *showdown.Battle, me, opp *showdown.Pokemon) (showdown.Move, float64) {
	var best showdown.Move
	bestScore := 0.0
	for _, mv := range b.AvailableMoves {
		if mv.IsStatus() || mv.Type == showdown.TypeNone || mv.Type != me.TeraType {
			continue
		}
		s := ScoreMove(a.w, mv, me, opp, b)
		if me.HasType(mv.Type) {
			s = s / a.w.STABBonus * 2.0
		} else {
			s *= a.w.STABBonus
		}
		if s > bestScore {
			best, bestScore = mv, s
		}
	}
	return best, bestScore
}
