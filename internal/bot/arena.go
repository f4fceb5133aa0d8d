package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/internal/repository"
	"github.com/hli605/showdown-bot/pkg/showdown"
)

// ArenaConfig configures a block of local agent-vs-agent battles.
type ArenaConfig struct {
	MatchName string
	Format    string
	AgentOne  string // level name, see AgentForLevel
	AgentTwo  string
	Battles   int
	MaxTurns  int   // cap per battle, scored by remaining HP
	Seed      int64 // 0 = random
	DryRun    bool  // skip DB writes
}

// ArenaResult describes the outcome of a completed arena run.
type ArenaResult struct {
	MatchID  string
	WinsOne  int
	WinsTwo  int
	Draws    int
	Battles  int
	AvgTurns float64
}

// battleTrace is the per-turn action record persisted with each battle.
type battleTrace struct {
	Turn   int    `json:"turn"`
	Side   string `json:"side"`
	Action string `json:"action"`
}

// RunMatch plays a block of local battles between two agents, saving
// results to Postgres. Pass a nil repo for dry-run mode.
func RunMatch(ctx context.Context, cfg ArenaConfig, matchRepo repository.MatchRepository) (*ArenaResult, error) {
	if cfg.Battles <= 0 {
		cfg.Battles = 1
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 200
	}
	if cfg.Format == "" {
		cfg.Format = "gen9ubers"
	}

	agentOne := AgentForLevel(cfg.AgentOne)
	agentTwo := AgentForLevel(cfg.AgentTwo)

	var matchID string
	if !cfg.DryRun && matchRepo != nil {
		m, err := matchRepo.Create(ctx, cfg.MatchName, cfg.Format, agentOne.Name(), agentTwo.Name(), cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("create match: %w", err)
		}
		matchID = m.ID
	}

	result := &ArenaResult{MatchID: matchID, Battles: cfg.Battles}
	totalTurns := 0

	for i := 0; i < cfg.Battles; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		seed := cfg.Seed
		if seed != 0 {
			seed += int64(i)
		}
		outcome, trace, err := runOneBattle(agentOne, agentTwo, seed, cfg.MaxTurns)
		if err != nil {
			return nil, fmt.Errorf("battle %d: %w", i+1, err)
		}

		switch outcome.WinnerIdx {
		case 0:
			result.WinsOne++
		case 1:
			result.WinsTwo++
		default:
			result.Draws++
		}
		totalTurns += outcome.Turns

		if !cfg.DryRun && matchRepo != nil {
			tag := fmt.Sprintf("arena-%d", i+1)
			logJSON, _ := json.Marshal(trace)
			if _, err := matchRepo.RecordBattle(ctx, matchID, tag, outcome.Winner, outcome.Turns, logJSON); err != nil {
				return nil, fmt.Errorf("record battle: %w", err)
			}
		}

		log.Debug().Int("battle", i+1).Str("winner", outcome.Winner).Int("turns", outcome.Turns).Msg("Arena battle finished")
	}

	result.AvgTurns = float64(totalTurns) / float64(cfg.Battles)

	if !cfg.DryRun && matchRepo != nil {
		if err := matchRepo.SetFinished(ctx, matchID, result.WinsOne, result.WinsTwo, result.Draws); err != nil {
			return nil, fmt.Errorf("finish match: %w", err)
		}
	}

	log.Info().Str("matchId", matchID).
		Str("agentOne", agentOne.Name()).Int("winsOne", result.WinsOne).
		Str("agentTwo", agentTwo.Name()).Int("winsTwo", result.WinsTwo).
		Int("draws", result.Draws).Msg("Arena match finished")
	return result, nil
}

// runOneBattle plays one local battle with fresh copies of the default team
// on both sides.
func runOneBattle(agentOne, agentTwo Agent, seed int64, maxTurns int) (showdown.Outcome, []battleTrace, error) {
	teamOne, err := DefaultTeam()
	if err != nil {
		return showdown.Outcome{}, nil, fmt.Errorf("parse team: %w", err)
	}
	teamTwo, err := DefaultTeam()
	if err != nil {
		return showdown.Outcome{}, nil, fmt.Errorf("parse team: %w", err)
	}

	sideOne := showdown.NewSide(agentOne.Name(), teamOne)
	sideTwo := showdown.NewSide(agentTwo.Name(), teamTwo)
	sim := showdown.NewSim(sideOne, sideTwo, seed)

	var trace []battleTrace
	record := func(name string, agent Agent) showdown.Decider {
		return func(b *showdown.Battle) showdown.Action {
			act := ChooseWithFallback(agent, b)
			trace = append(trace, battleTrace{Turn: b.Turn, Side: name, Action: act.String()})
			return act
		}
	}

	outcome := sim.Run(maxTurns, [2]showdown.Decider{
		record(agentOne.Name(), agentOne),
		record(agentTwo.Name(), agentTwo),
	})
	return outcome, trace, nil
}
