package bot

import (
	"github.com/hli605/showdown-bot/pkg/showdown"
)

// RandomAgent picks a uniformly random legal action. It is the baseline
// opponent and the fallback every other agent degrades to.
type RandomAgent struct{}

func (RandomAgent) Name() string { return "random" }

func (RandomAgent) ChooseAction(b *showdown.Battle) showdown.Action {
	return showdown.RandomAction(rngOrGlobal(), b)
}

// MaxDamageAgent is the earliest iteration: always the damaging move with
// the highest power × effectiveness × STAB product, switching only when
// forced.
type MaxDamageAgent struct{}

func (MaxDamageAgent) Name() string { return "maxdamage" }

func (MaxDamageAgent) ChooseAction(b *showdown.Battle) showdown.Action {
	if b.ForceSwitch {
		if sw, _ := BestSwitch(DefaultWeights(), b); sw != nil {
			return showdown.SwitchAction(sw)
		}
		return showdown.Action{}
	}

	me, opp := b.Active(), b.OpponentActive()
	var best showdown.Move
	bestScore := -1.0
	for _, mv := range b.AvailableMoves {
		if mv.IsStatus() {
			continue
		}
		score := float64(mv.BasePower)
		if opp != nil {
			score *= opp.MoveDamageMultiplier(mv)
		}
		if me != nil && me.HasType(mv.Type) {
			score *= 1.5
		}
		if score > bestScore {
			best, bestScore = mv, score
		}
	}
	if best.ID == "" {
		return showdown.Action{}
	}
	return showdown.MoveAction(best)
}
