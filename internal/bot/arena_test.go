package bot

import (
	"context"
	"testing"
)

func TestRunMatchDryRun(t *testing.T) {
	SeedBotRng(42)
	defer ResetBotRng()

	cfg := ArenaConfig{
		MatchName: "test-dry-run",
		AgentOne:  "heuristic",
		AgentTwo:  "random",
		Battles:   3,
		MaxTurns:  150,
		Seed:      42,
		DryRun:    true,
	}

	result, err := RunMatch(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}

	if result.WinsOne+result.WinsTwo+result.Draws != cfg.Battles {
		t.Errorf("tallies %d+%d+%d do not sum to %d battles",
			result.WinsOne, result.WinsTwo, result.Draws, cfg.Battles)
	}
	if result.AvgTurns <= 0 {
		t.Errorf("avg turns = %v", result.AvgTurns)
	}
	t.Logf("heuristic %d / random %d / draws %d, avg %.1f turns",
		result.WinsOne, result.WinsTwo, result.Draws, result.AvgTurns)
}

func TestRunMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := ArenaConfig{AgentOne: "random", AgentTwo: "random", Battles: 5, DryRun: true}
	if _, err := RunMatch(ctx, cfg, nil); err == nil {
		t.Error("expected a context error")
	}
}

func TestRevisionLadderBeatsRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("multi-battle arena run")
	}
	SeedBotRng(7)
	defer ResetBotRng()

	cfg := ArenaConfig{
		AgentOne: "v6",
		AgentTwo: "random",
		Battles:  10,
		MaxTurns: 150,
		Seed:     7,
		DryRun:   true,
	}
	result, err := RunMatch(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if result.WinsOne <= result.WinsTwo {
		t.Errorf("tuned agent should beat random over 10 battles: %d vs %d",
			result.WinsOne, result.WinsTwo)
	}
}

func TestDefaultTeam(t *testing.T) {
	team, err := DefaultTeam()
	if err != nil {
		t.Fatalf("DefaultTeam: %v", err)
	}
	if len(team) != 6 {
		t.Fatalf("team size = %d, want 6", len(team))
	}
	want := []string{"Necrozma-Dusk-Mane", "Kyogre", "Arceus-Fairy", "Eternatus", "Great Tusk", "Kingambit"}
	for i, species := range want {
		if team[i].Species != species {
			t.Errorf("slot %d = %s, want %s", i, team[i].Species, species)
		}
		if len(team[i].Moves) != 4 {
			t.Errorf("%s has %d moves", species, len(team[i].Moves))
		}
		if team[i].HP == 0 || team[i].HP != team[i].MaxHP {
			t.Errorf("%s HP not initialized: %d/%d", species, team[i].HP, team[i].MaxHP)
		}
	}
}
