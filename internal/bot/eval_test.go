package bot

import (
	"testing"

	"github.com/hli605/showdown-bot/pkg/showdown"
)

// testTeam returns a fresh parse of the bundled team. Slots: Necrozma,
// Kyogre, Arceus-Fairy, Eternatus, Great Tusk, Kingambit.
func testTeam(t *testing.T) []*showdown.Pokemon {
	t.Helper()
	team, err := DefaultTeam()
	if err != nil {
		t.Fatalf("DefaultTeam: %v", err)
	}
	return team
}

func testBattle(t *testing.T, active *showdown.Pokemon, bench []*showdown.Pokemon, opp *showdown.Pokemon) *showdown.Battle {
	t.Helper()
	self := showdown.NewSide("me", append([]*showdown.Pokemon{active}, bench...))
	self.Active = active
	oppSide := showdown.NewSide("them", []*showdown.Pokemon{opp})
	oppSide.Active = opp

	b := showdown.NewBattle("test", self, oppSide)
	b.AvailableMoves = active.Moves
	b.AvailableSwitches = bench
	return b
}

func TestDangerLevel(t *testing.T) {
	team := testTeam(t)
	gambit := team[5] // Dark/Steel
	tusk := team[4]   // Ground/Fighting

	koraidon := showdown.NewObservedPokemon("Koraidon") // Fighting/Dragon
	if d := DangerLevel(gambit, koraidon); d != 4 {
		t.Errorf("Kingambit vs Koraidon danger = %v, want 4 (Fighting hits Dark and Steel)", d)
	}
	kyogre := showdown.NewObservedPokemon("Kyogre")
	if d := DangerLevel(tusk, kyogre); d != 2 {
		t.Errorf("Great Tusk vs Kyogre danger = %v, want 2", d)
	}
	// A fully immune matchup is genuinely safe.
	deoxys := showdown.NewObservedPokemon("Deoxys-Speed")
	if d := DangerLevel(gambit, deoxys); d != 0 {
		t.Errorf("Kingambit vs Deoxys danger = %v, want 0 (Dark is immune to Psychic)", d)
	}
	// Unknown typing counts as neutral.
	mystery := showdown.NewObservedPokemon("SomethingNew")
	if d := DangerLevel(gambit, mystery); d != 1 {
		t.Errorf("danger vs unknown = %v, want 1", d)
	}
	if d := DangerLevel(nil, koraidon); d != 1 {
		t.Errorf("nil danger = %v, want 1", d)
	}
}

func TestScoreMoveDamaging(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	gambit := team[5]
	b := testBattle(t, gambit, nil, showdown.NewObservedPokemon("Giratina")) // Ghost/Dragon
	opp := b.OpponentActive()

	kowtow := showdown.MoveByID("kowtowcleave")
	// 85 power, Dark vs Ghost 2x, STAB 1.5.
	if got := ScoreMove(w, kowtow, gambit, opp, b); got != 85*2*1.5 {
		t.Errorf("kowtow score = %v, want %v", got, 85*2*1.5)
	}

	// Priority bonus applies only below the HP threshold.
	sucker := showdown.MoveByID("suckerpunch")
	base := 70 * 2 * 1.5
	if got := ScoreMove(w, sucker, gambit, opp, b); got != base {
		t.Errorf("sucker score at full HP = %v, want %v", got, base)
	}
	opp.HP = opp.MaxHP / 5
	if got := ScoreMove(w, sucker, gambit, opp, b); got != base*w.PriorityBonus {
		t.Errorf("sucker score at low HP = %v, want %v", got, base*w.PriorityBonus)
	}
}

func TestScoreMoveKnockOff(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	tusk := team[4]
	opp := showdown.NewObservedPokemon("Ho-Oh") // Fire/Flying
	b := testBattle(t, tusk, nil, opp)

	knock := showdown.MoveByID("knockoff")
	base := 65.0 // Dark neutral vs Fire/Flying, no STAB
	if got := ScoreMove(w, knock, tusk, opp, b); got != base {
		t.Errorf("knockoff vs itemless = %v, want %v", got, base)
	}
	opp.Item = "Heavy-Duty Boots"
	if got := ScoreMove(w, knock, tusk, opp, b); got != base*w.KnockOffItemBonus {
		t.Errorf("knockoff vs item = %v, want %v", got, base*w.KnockOffItemBonus)
	}
}

func TestScoreMoveWaterSpoutScalesWithHP(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	kyogre := team[1]
	opp := showdown.NewObservedPokemon("Groudon") // Ground
	b := testBattle(t, kyogre, nil, opp)

	spout := showdown.MoveByID("waterspout")
	full := ScoreMove(w, spout, kyogre, opp, b)
	if full != 150*2*1.5 {
		t.Errorf("full HP spout = %v, want %v", full, 150*2*1.5)
	}
	kyogre.HP = kyogre.MaxHP / 2
	half := ScoreMove(w, spout, kyogre, opp, b)
	if half >= full*0.55 || half <= full*0.45 {
		t.Errorf("half HP spout = %v, want about half of %v", half, full)
	}
}

func TestScoreMoveHazardOnlyWhenDown(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	nec := team[0]
	opp := showdown.NewObservedPokemon("Eternatus")
	b := testBattle(t, nec, nil, opp)

	rocks := showdown.MoveByID("stealthrock")
	if got := ScoreMove(w, rocks, nec, opp, b); got != w.HazardScore {
		t.Errorf("rocks score = %v, want %v", got, w.HazardScore)
	}
	b.Opponent.Conditions[showdown.ConditionStealthRock] = 1
	if got := ScoreMove(w, rocks, nec, opp, b); got != 0 {
		t.Errorf("rocks score with rocks up = %v, want 0", got)
	}
}

func TestScoreMoveWillOWisp(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	arceus := team[2]
	b := testBattle(t, arceus, nil, showdown.NewObservedPokemon("Zacian-Crowned"))
	opp := b.OpponentActive()

	wisp := showdown.MoveByID("willowisp")
	if got := ScoreMove(w, wisp, arceus, opp, b); got != w.BurnScore {
		t.Errorf("wisp score = %v, want %v", got, w.BurnScore)
	}
	opp.Status = showdown.StatusPoison
	if got := ScoreMove(w, wisp, arceus, opp, b); got != 0 {
		t.Errorf("wisp vs statused = %v, want 0", got)
	}
	hooh := showdown.NewObservedPokemon("Ho-Oh")
	if got := ScoreMove(w, wisp, arceus, hooh, b); got != 0 {
		t.Errorf("wisp vs Fire type = %v, want 0", got)
	}
}

func TestBestSwitchPrefersResist(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	// Kingambit active against Koraidon; Arceus-Fairy walls Fighting/Dragon.
	b := testBattle(t, team[5], []*showdown.Pokemon{team[0], team[2]}, showdown.NewObservedPokemon("Koraidon"))

	sw, score := BestSwitch(w, b)
	if sw == nil {
		t.Fatal("no switch found")
	}
	if sw.Species != "Arceus-Fairy" {
		t.Errorf("best switch = %s, want Arceus-Fairy", sw.Species)
	}
	if score <= 0 {
		t.Errorf("switch score = %v", score)
	}
}

func TestBestSwitchSkipsLowHP(t *testing.T) {
	w := DefaultWeights()
	team := testTeam(t)
	arceus, eternatus := team[2], team[3]
	arceus.HP = arceus.MaxHP / 20
	b := testBattle(t, team[5], []*showdown.Pokemon{arceus, eternatus}, showdown.NewObservedPokemon("Koraidon"))

	sw, _ := BestSwitch(w, b)
	if sw == nil || sw.Species == "Arceus-Fairy" {
		t.Errorf("switch picked a nearly fainted wall: %v", sw)
	}
}

func TestBestSwitchNoOptions(t *testing.T) {
	team := testTeam(t)
	b := testBattle(t, team[0], nil, showdown.NewObservedPokemon("Kyogre"))
	if sw, _ := BestSwitch(DefaultWeights(), b); sw != nil {
		t.Errorf("expected no switch, got %v", sw)
	}
}
