package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

// Agent picks one action per decision point from a battle view.
type Agent interface {
	Name() string
	ChooseAction(b *showdown.Battle) showdown.Action
}

// ModelPath is the directory containing value.onnx for the "model" level.
// Set at startup (e.g. from MODEL_PATH) before creating agents.
var ModelPath string

// AgentForLevel returns the agent for a level name. Revision names ("v1"
// through "v6") select successive tunings of the heuristic agent; the bare
// "heuristic" level is the current one.
func AgentForLevel(level string) Agent {
	switch level {
	case "random":
		return &RandomAgent{}
	case "maxdamage":
		return &MaxDamageAgent{}
	case "model":
		return newModelOrFallback()
	case "", "heuristic":
		return NewHeuristicAgent(DefaultWeights())
	default:
		if w, ok := RevisionWeights[level]; ok {
			a := NewHeuristicAgent(w)
			a.name = level
			return a
		}
		log.Warn().Str("level", level).Msg("Unknown agent level, using heuristic")
		return NewHeuristicAgent(DefaultWeights())
	}
}

// ChooseWithFallback runs the agent with the blanket safety net: any panic
// or unusable action falls back to a random legal choice.
func ChooseWithFallback(a Agent, b *showdown.Battle) (act showdown.Action) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("agent", a.Name()).Interface("panic", r).Msg("Agent panicked, choosing randomly")
			act = showdown.RandomAction(rngOrGlobal(), b)
		}
	}()
	act = a.ChooseAction(b)
	if act.IsZero() {
		act = showdown.RandomAction(rngOrGlobal(), b)
	}
	return act
}
