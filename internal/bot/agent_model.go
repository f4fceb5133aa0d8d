package bot

import (
	"fmt"
	"sync"

	gonnx "github.com/advancedclimatesystems/gonnx"
	"github.com/rs/zerolog/log"
	"gorgonia.org/tensor"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

// newModelOrFallback attempts to create a ModelAgent. If loading fails, it
// falls back to the current heuristic tuning.
func newModelOrFallback() Agent {
	a, err := NewModelAgent()
	if err != nil {
		log.Warn().Err(err).Msg("Model agent requested but model load failed, using heuristic")
		return NewHeuristicAgent(DefaultWeights())
	}
	return a
}

// ModelAgent scores candidate actions with an ONNX value network run
// through gonnx (pure Go, no CGo). The network maps an encoded battle
// state, with the candidate action folded into the active slot's features,
// to a single win-probability estimate; the agent keeps the best one.
type ModelAgent struct {
	value    *gonnx.Model
	fallback *HeuristicAgent
	mu       sync.Mutex
}

// Encoding dimensions for the value network input: one feature row per
// team slot on each side.
const (
	encSlots    = 12
	encFeatures = 8
)

// NewModelAgent loads value.onnx from ModelPath.
func NewModelAgent() (*ModelAgent, error) {
	path := ModelPath
	if path == "" {
		path = "models"
	}
	value, err := gonnx.NewModelFromFile(path + "/value.onnx")
	if err != nil {
		return nil, fmt.Errorf("load value model: %w", err)
	}
	return &ModelAgent{
		value:    value,
		fallback: NewHeuristicAgent(DefaultWeights()),
	}, nil
}

func (a *ModelAgent) Name() string { return "model" }

func (a *ModelAgent) ChooseAction(b *showdown.Battle) showdown.Action {
	candidates := legalActions(b)
	if len(candidates) == 0 {
		return showdown.Action{}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	base := a.evaluate(b, showdown.Action{})
	if base == nil {
		log.Debug().Str("battle", b.Tag).Msg("Value inference failed, using heuristic")
		return a.fallback.ChooseAction(b)
	}

	var best showdown.Action
	bestVal := float32(-1)
	for _, act := range candidates {
		v := a.evaluate(b, act)
		if v == nil {
			continue
		}
		if *v > bestVal {
			bestVal = *v
			best = act
		}
	}
	if best.IsZero() {
		return a.fallback.ChooseAction(b)
	}
	return best
}

// evaluate runs the value network on the battle state with a candidate
// action feature appended, returning the win-probability estimate.
func (a *ModelAgent) evaluate(b *showdown.Battle, act showdown.Action) *float32 {
	state := encodeBattle(b, act)
	stateTensor := tensor.New(
		tensor.WithShape(1, encSlots, encFeatures),
		tensor.Of(tensor.Float32),
		tensor.WithBacking(state),
	)

	inputs := gonnx.Tensors{"state": stateTensor}

	a.mu.Lock()
	outputs, err := a.value.Run(inputs)
	a.mu.Unlock()
	if err != nil {
		log.Debug().Err(err).Msg("Value run error")
		return nil
	}

	out, ok := outputs["win_prob"]
	if !ok {
		for _, v := range outputs {
			out = v
			break
		}
	}
	if out == nil {
		return nil
	}

	switch d := out.Data().(type) {
	case []float32:
		if len(d) == 0 {
			return nil
		}
		return &d[0]
	case []float64:
		if len(d) == 0 {
			return nil
		}
		v := float32(d[0])
		return &v
	case float32:
		return &d
	default:
		log.Debug().Msgf("Unexpected value output type %T", out.Data())
		return nil
	}
}

// encodeBattle flattens the battle into the fixed value-network input: six
// slots per side, each with HP fraction, status flag, boosts, danger, and
// the candidate action's score on the active slot.
func encodeBattle(b *showdown.Battle, act showdown.Action) []float32 {
	state := make([]float32, encSlots*encFeatures)
	encodeSide(state, 0, b.Self, b.OpponentActive())
	encodeSide(state, 6, b.Opponent, b.Active())

	if me := b.Active(); me != nil && !act.IsZero() {
		row := slotIndex(b.Self, me) * encFeatures
		switch act.Kind {
		case showdown.ActionMove:
			state[row+6] = float32(ScoreMove(DefaultWeights(), act.Move, me, b.OpponentActive(), b)) / 300
			if act.Tera {
				state[row+7] = 1
			}
		case showdown.ActionSwitch:
			state[row+6] = -1
			state[row+7] = float32(slotIndex(b.Self, act.Switch))
		}
	}
	return state
}

func encodeSide(state []float32, offset int, side *showdown.Side, threat *showdown.Pokemon) {
	for i, p := range side.Team {
		if i >= 6 {
			break
		}
		row := (offset + i) * encFeatures
		state[row] = float32(p.CurrentHPFraction())
		if p.Status != showdown.StatusNone {
			state[row+1] = 1
		}
		if p == side.Active {
			state[row+2] = 1
		}
		state[row+3] = float32(p.Boosts["atk"] + p.Boosts["spa"])
		state[row+4] = float32(p.Boosts["def"] + p.Boosts["spd"])
		if threat != nil {
			state[row+5] = float32(DangerLevel(p, threat))
		}
	}
}

func slotIndex(side *showdown.Side, p *showdown.Pokemon) int {
	for i, q := range side.Team {
		if q == p {
			return i
		}
	}
	return 0
}

// legalActions enumerates every legal reply for the decision point.
func legalActions(b *showdown.Battle) []showdown.Action {
	var out []showdown.Action
	if !b.ForceSwitch {
		for _, m := range b.AvailableMoves {
			out = append(out, showdown.MoveAction(m))
			if b.CanTera && !m.IsStatus() {
				out = append(out, showdown.TeraMoveAction(m))
			}
		}
	}
	if !b.Trapped || b.ForceSwitch {
		for _, p := range b.AvailableSwitches {
			out = append(out, showdown.SwitchAction(p))
		}
	}
	return out
}
