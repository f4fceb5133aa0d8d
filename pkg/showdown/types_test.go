package showdown

import "testing"

func TestEffectiveness(t *testing.T) {
	cases := []struct {
		atk  Type
		def  []Type
		want float64
	}{
		{TypeWater, []Type{TypeFire}, 2},
		{TypeFire, []Type{TypeWater}, 0.5},
		{TypeElectric, []Type{TypeGround}, 0},
		{TypeFighting, []Type{TypeGhost}, 0},
		{TypeIce, []Type{TypeDragon}, 2},
		{TypeFire, []Type{TypeGrass, TypeSteel}, 4},
		{TypeWater, []Type{TypeWater, TypeDragon}, 0.25},
		{TypeGround, []Type{TypePoison, TypeDragon}, 2},
		{TypeDragon, []Type{TypeFairy}, 0},
		{TypeNormal, []Type{TypeWater}, 1},
		{TypeNone, []Type{TypeWater}, 1},
	}

	for _, c := range cases {
		if got := Effectiveness(c.atk, c.def); got != c.want {
			t.Errorf("Effectiveness(%s, %v) = %v, want %v", c.atk, c.def, got, c.want)
		}
	}
}

func TestParseType(t *testing.T) {
	if got := ParseType(" Steel "); got != TypeSteel {
		t.Errorf("ParseType(Steel) = %q", got)
	}
	if got := ParseType("nonsense"); got != TypeNone {
		t.Errorf("ParseType(nonsense) = %q, want TypeNone", got)
	}
}

func TestMoveID(t *testing.T) {
	cases := map[string]string{
		"Will-O-Wisp":     "willowisp",
		"Sunsteel Strike": "sunsteelstrike",
		"Knock Off":       "knockoff",
		"recover":         "recover",
	}
	for in, want := range cases {
		if got := MoveID(in); got != want {
			t.Errorf("MoveID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMoveByIDUnknownFallback(t *testing.T) {
	mv := MoveByID("completelymadeup")
	if mv.ID != "completelymadeup" {
		t.Errorf("unexpected id %q", mv.ID)
	}
	if mv.BasePower == 0 || mv.Category == CategoryStatus {
		t.Errorf("unknown move should fall back to a generic attack, got %+v", mv)
	}
}

func TestBoostMultiplier(t *testing.T) {
	cases := map[int]float64{0: 1, 1: 1.5, 2: 2, 6: 4, -1: 2.0 / 3.0, -6: 0.25, 9: 4}
	for stage, want := range cases {
		if got := boostMultiplier(stage); got != want {
			t.Errorf("boostMultiplier(%d) = %v, want %v", stage, got, want)
		}
	}
}
