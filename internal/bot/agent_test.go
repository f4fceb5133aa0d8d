package bot

import (
	"testing"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

func TestAgentForLevel(t *testing.T) {
	cases := map[string]string{
		"random":    "random",
		"maxdamage": "maxdamage",
		"heuristic": "heuristic",
		"":          "heuristic",
		"v3":        "v3",
		"v6":        "v6",
		"bogus":     "heuristic",
	}
	for level, want := range cases {
		if got := AgentForLevel(level).Name(); got != want {
			t.Errorf("AgentForLevel(%q).Name() = %q, want %q", level, got, want)
		}
	}
}

func TestRevisionWeightsComplete(t *testing.T) {
	for _, rev := range []string{"v1", "v2", "v3", "v4", "v5", "v6"} {
		w, ok := RevisionWeights[rev]
		if !ok {
			t.Fatalf("missing revision %s", rev)
		}
		if w.STABBonus == 0 || w.HazardScore == 0 {
			t.Errorf("%s looks zero-valued: %+v", rev, w)
		}
	}
	if DefaultWeights() != RevisionWeights["v6"] {
		t.Error("default tuning should be the latest revision")
	}
}

func TestChooseWithFallbackOnPanic(t *testing.T) {
	SeedBotRng(1)
	defer ResetBotRng()

	team := testTeam(t)
	b := testBattle(t, team[0], []*showdown.Pokemon{team[1]}, showdown.NewObservedPokemon("Kyogre"))

	act := ChooseWithFallback(panicAgent{}, b)
	if act.IsZero() {
		t.Error("fallback should produce a legal action")
	}
}

type panicAgent struct{}

func (panicAgent) Name() string                                  { return "panic" }
func (panicAgent) ChooseAction(*showdown.Battle) showdown.Action { panic("boom") }

func TestHeuristicForcedSwitch(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	b := testBattle(t, team[5], []*showdown.Pokemon{team[2], team[3]}, showdown.NewObservedPokemon("Koraidon"))
	b.ForceSwitch = true
	b.AvailableMoves = nil

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionSwitch || act.Switch == nil {
		t.Fatalf("expected a switch, got %v", act)
	}
	if act.Switch.Species != "Arceus-Fairy" {
		t.Errorf("switched to %s, want the Fairy wall", act.Switch.Species)
	}
}

func TestHeuristicRecoversWhenHurtAndSafe(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	arceus := team[2]
	arceus.HP = arceus.MaxHP / 2

	// Giratina poses no real threat to Arceus-Fairy (danger 1).
	b := testBattle(t, arceus, nil, showdown.NewObservedPokemon("Giratina"))

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || act.Move.ID != "recover" {
		t.Errorf("expected recover, got %v", act)
	}
}

func TestHeuristicNoRecoveryUnderThreat(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	eternatus := team[3]
	eternatus.HP = eternatus.MaxHP / 2

	// Groudon's Ground typing threatens Poison at 2x, so the early recovery
	// step is skipped and the STAB hit outranks recovery in move scoring.
	b := testBattle(t, eternatus, nil, showdown.NewObservedPokemon("Groudon"))

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || act.Move.ID != "dynamaxcannon" {
		t.Errorf("expected dynamaxcannon, got %v", act)
	}
}

func TestHeuristicSetsHazardsWhenNothingBetter(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	nec := team[0]
	b := testBattle(t, nec, nil, showdown.NewObservedPokemon("Eternatus"))
	// Restrict to rocks plus a weak neutral hit.
	b.AvailableMoves = []showdown.Move{
		showdown.MoveByID("stealthrock"),
		showdown.MoveByID("bodypress"),
	}

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || act.Move.ID != "stealthrock" {
		t.Errorf("expected stealthrock, got %v", act)
	}
}

func TestHeuristicDefensiveTeraNeedsResist(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	gambit := team[5] // Dark/Steel, 4x weak to Fighting
	b := testBattle(t, gambit, nil, showdown.NewObservedPokemon("Koraidon"))
	b.CanTera = true

	// Stock Tera Dark only softens Fighting to 2x. That improves the
	// matchup but is no resist, so the tera stays in the pocket.
	act := a.ChooseAction(b)
	if act.Tera {
		t.Errorf("terastallized without a resist: %v", act)
	}

	// Tera Fairy takes Fighting at 0.5x and blanks Dragon: burn it.
	gambit.TeraType = showdown.TypeFairy
	act = a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || !act.Tera {
		t.Errorf("expected a terastallized move, got %v", act)
	}
}

func TestHeuristicOffensiveTera(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	gambit := team[5] // Tera Dark
	opp := showdown.NewObservedPokemon("Giratina")
	opp.HP = opp.MaxHP / 2
	b := testBattle(t, gambit, nil, opp)
	b.CanTera = true

	// Kowtow Cleave with the tera-doubled STAB: 85 x 2 x 2.0 = 340, over
	// the threshold where the plain 255 is not.
	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || !act.Tera || act.Move.ID != "kowtowcleave" {
		t.Errorf("expected tera kowtowcleave, got %v", act)
	}
}

func TestHeuristicSetupWhenSafe(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	gambit := team[5]
	// Deoxys-Speed is pure Psychic: immune-to-nothing but only 0.5x into Dark.
	b := testBattle(t, gambit, nil, showdown.NewObservedPokemon("Deoxys-Speed"))

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || act.Move.ID != "swordsdance" {
		t.Errorf("expected swords dance, got %v", act)
	}
}

func TestHeuristicNoSetupAtMaxBoost(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	gambit := team[5]
	gambit.Boosts["atk"] = 6
	b := testBattle(t, gambit, nil, showdown.NewObservedPokemon("Deoxys-Speed"))

	// Nothing threatens Kingambit, but at +6 there is nothing left to
	// boost: take the STAB hit instead of clicking Swords Dance again.
	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove || act.Move.ID != "kowtowcleave" {
		t.Errorf("expected kowtowcleave at +6, got %v", act)
	}
}

func TestHeuristicSwitchesOutOfBadMatchup(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	eternatus, gambit := team[3], team[5]
	// Deoxys-Speed threatens Eternatus at 2x while Kingambit blanks Psychic.
	b := testBattle(t, eternatus, []*showdown.Pokemon{gambit}, showdown.NewObservedPokemon("Deoxys-Speed"))
	b.AvailableMoves = []showdown.Move{showdown.MoveByID("flamethrower")}

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionSwitch {
		t.Fatalf("expected a switch, got %v", act)
	}
	if act.Switch.Species != "Kingambit" {
		t.Errorf("switched to %s, want Kingambit", act.Switch.Species)
	}
}

func TestHeuristicNoSwitchWithoutTrueResist(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	gambit := team[5]
	// Arceus-Fairy only halves Koraidon's Fighting: short of the resist
	// bar, so Kingambit stays in and attacks.
	b := testBattle(t, gambit, []*showdown.Pokemon{team[2]}, showdown.NewObservedPokemon("Koraidon"))
	b.AvailableMoves = []showdown.Move{showdown.MoveByID("ironhead")}

	act := a.ChooseAction(b)
	if act.Kind == showdown.ActionSwitch {
		t.Errorf("switched into a 0.5x matchup, got %v", act)
	}
}

func TestHeuristicNeverSwitchesWhileTrapped(t *testing.T) {
	a := NewHeuristicAgent(DefaultWeights())
	team := testTeam(t)
	eternatus, gambit := team[3], team[5]
	b := testBattle(t, eternatus, []*showdown.Pokemon{gambit}, showdown.NewObservedPokemon("Deoxys-Speed"))
	b.AvailableMoves = []showdown.Move{showdown.MoveByID("flamethrower")}
	b.Trapped = true

	act := a.ChooseAction(b)
	if act.Kind == showdown.ActionSwitch {
		t.Error("switched while trapped")
	}
}

func TestHeuristicRepeatDamping(t *testing.T) {
	w := DefaultWeights()
	a := NewHeuristicAgent(w)
	team := testTeam(t)
	gambit := team[5]
	b := testBattle(t, gambit, nil, showdown.NewObservedPokemon("Giratina"))

	mv := showdown.MoveByID("kowtowcleave")
	a.remember(b, mv)

	// Same move, opponent HP unchanged since last turn: score shrinks.
	damped := a.dampRepeat(b, mv, 100)
	if damped != 100*w.RepeatPenalty {
		t.Errorf("damped score = %v, want %v", damped, 100*w.RepeatPenalty)
	}

	// Progress made: no damping.
	b.OpponentActive().HP /= 2
	if got := a.dampRepeat(b, mv, 100); got != 100 {
		t.Errorf("score after progress = %v, want 100", got)
	}

	a.Forget(b.Tag)
	if got := a.dampRepeat(b, mv, 100); got != 100 {
		t.Errorf("score after forget = %v, want 100", got)
	}
}

func TestMaxDamageAgentPicksStrongestHit(t *testing.T) {
	a := MaxDamageAgent{}
	team := testTeam(t)
	kyogre := team[1]
	b := testBattle(t, kyogre, nil, showdown.NewObservedPokemon("Groudon"))

	act := a.ChooseAction(b)
	if act.Kind != showdown.ActionMove {
		t.Fatalf("expected a move, got %v", act)
	}
	// Water Spout at full HP: 150 x 2 effectiveness x STAB.
	if act.Move.ID != "waterspout" {
		t.Errorf("picked %s, want waterspout", act.Move.ID)
	}
}

func TestRandomAgentAlwaysLegal(t *testing.T) {
	SeedBotRng(3)
	defer ResetBotRng()

	a := RandomAgent{}
	team := testTeam(t)
	b := testBattle(t, team[0], []*showdown.Pokemon{team[1]}, showdown.NewObservedPokemon("Kyogre"))

	for i := 0; i < 50; i++ {
		act := a.ChooseAction(b)
		if act.IsZero() {
			t.Fatal("random agent produced an unusable action")
		}
	}
}
