package bot

import (
	"math"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

// Shared scoring helpers used by every heuristic agent.

// DangerLevel is the highest damage multiplier the opponent's revealed
// types carry against p. Unknown typings count as neutral.
func DangerLevel(p, opp *showdown.Pokemon) float64 {
	if p == nil || opp == nil || len(opp.EffectiveTypes()) == 0 {
		return 1.0
	}
	danger := 0.0
	counted := false
	for _, t := range opp.EffectiveTypes() {
		if t == showdown.TypeNone {
			continue
		}
		counted = true
		if m := p.DamageMultiplier(t); m > danger {
			danger = m
		}
	}
	if !counted {
		return 1.0
	}
	return danger
}

// ScoreMove scores one available move against the opposing active Pokémon.
// Status moves get fixed utility scores; damaging moves score as power ×
// effectiveness × STAB with the priority and Knock Off bonuses.
func ScoreMove(w Weights, mv showdown.Move, me, opp *showdown.Pokemon, b *showdown.Battle) float64 {
	if mv.IsStatus() {
		switch mv.ID {
		case "stealthrock", "toxicspikes", "spikes":
			if b.Opponent.Conditions[showdown.SideCondition(mv.ID)] == 0 {
				return w.HazardScore
			}
			return 0
		case "willowisp":
			if opp != nil && opp.Status == showdown.StatusNone && !opp.HasType(showdown.TypeFire) {
				return w.BurnScore
			}
			return 0
		case "swordsdance", "calmmind":
			return w.SetupScore // scored higher in the setup step
		case "recover", "morningsun":
			return w.RecoveryScore // scored higher in the recovery step
		}
		return 0
	}

	power := float64(mv.BasePower)
	if mv.ID == "waterspout" {
		power = 150 * me.CurrentHPFraction()
	}

	score := power
	if opp != nil {
		score *= opp.MoveDamageMultiplier(mv)
	}
	if me.HasType(mv.Type) {
		score *= w.STABBonus
	}
	if mv.Priority > 0 && opp != nil && opp.CurrentHPFraction() < w.PriorityHPThreshold {
		score *= w.PriorityBonus
	}
	if mv.ID == "knockoff" && opp != nil && opp.Item != "" {
		score *= w.KnockOffItemBonus
	}
	return score
}

// BestMove returns the highest-scoring available move.
func BestMove(w Weights, b *showdown.Battle) (showdown.Move, float64) {
	var best showdown.Move
	bestScore := 0.0
	for _, mv := range b.AvailableMoves {
		if s := ScoreMove(w, mv, b.Active(), b.OpponentActive(), b); best.ID == "" || s > bestScore {
			best, bestScore = mv, s
		}
	}
	return best, bestScore
}

// BestSwitch finds the best switch-in against the opposing active Pokémon:
// defensive profile (inverse danger) weighted against offensive type
// pressure, scaled by remaining HP so healthy teammates come in first.
func BestSwitch(w Weights, b *showdown.Battle) (*showdown.Pokemon, float64) {
	opp := b.OpponentActive()
	if opp == nil || len(b.AvailableSwitches) == 0 {
		return nil, math.Inf(-1)
	}

	var best *showdown.Pokemon
	maxScore := math.Inf(-1)
	for _, p := range b.AvailableSwitches {
		score := w.SwitchDefenseWeight*defensiveScore(p, opp) + offensiveScore(p, opp)
		score *= p.CurrentHPFraction()
		if score > maxScore {
			maxScore = score
			best = p
		}
	}
	return best, maxScore
}

// defensiveScore is the inverse of the danger the opponent poses, floored
// to avoid division blowups on double resists.
func defensiveScore(p, opp *showdown.Pokemon) float64 {
	return 1 / math.Max(DangerLevel(p, opp), 0.25)
}

// offensiveScore is the best type-chart pressure p's own typing exerts on
// the opponent.
func offensiveScore(p, opp *showdown.Pokemon) float64 {
	score := 0.0
	for _, t := range p.EffectiveTypes() {
		if t == showdown.TypeNone {
			continue
		}
		if m := opp.DamageMultiplier(t); m > score {
			score = m
		}
	}
	return score
}
