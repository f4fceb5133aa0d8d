package showdown

// Stats holds one full stat spread (base stats, EVs, IVs, or computed).
type Stats struct {
	HP  int
	Atk int
	Def int
	SpA int
	SpD int
	Spe int
}

// Get returns the named stat ("atk", "def", "spa", "spd", "spe", "hp").
func (s Stats) Get(name string) int {
	switch name {
	case "hp":
		return s.HP
	case "atk":
		return s.Atk
	case "def":
		return s.Def
	case "spa":
		return s.SpA
	case "spd":
		return s.SpD
	case "spe":
		return s.Spe
	}
	return 0
}

// Status is a non-volatile status condition, using the sim's codes.
type Status string

const (
	StatusNone      Status = ""
	StatusBurn      Status = "brn"
	StatusParalysis Status = "par"
	StatusPoison    Status = "psn"
	StatusToxic     Status = "tox"
	StatusSleep     Status = "slp"
	StatusFreeze    Status = "frz"
)

// Pokemon is one battler. Own-side Pokémon are fully specified from the
// team; opponent Pokémon accumulate revealed information as the battle
// progresses.
type Pokemon struct {
	Species  string
	Types    []Type
	TeraType Type
	Level    int
	Ability  string
	Item     string

	Stats  Stats // computed final stats
	EVs    Stats
	IVs    Stats
	Nature string
	HP     int
	MaxHP  int
	Boosts map[string]int
	Status Status
	Moves  []Move

	Fainted       bool
	Terastallized bool

	// ToxicTurns counts turns badly poisoned, for ramping toxic damage.
	ToxicTurns int
}

// CurrentHPFraction returns remaining HP in [0,1].
func (p *Pokemon) CurrentHPFraction() float64 {
	if p == nil || p.MaxHP <= 0 {
		return 0
	}
	f := float64(p.HP) / float64(p.MaxHP)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// EffectiveTypes returns the defensive typing in play: the tera type alone
// once terastallized, the dex typing otherwise.
func (p *Pokemon) EffectiveTypes() []Type {
	if p.Terastallized && p.TeraType != TypeNone {
		return []Type{p.TeraType}
	}
	return p.Types
}

// HasType reports whether t is among the Pokémon's current types.
func (p *Pokemon) HasType(t Type) bool {
	for _, pt := range p.EffectiveTypes() {
		if pt == t {
			return true
		}
	}
	return false
}

// DamageMultiplier returns the type-chart multiplier of an attacking type
// against this Pokémon's current typing.
func (p *Pokemon) DamageMultiplier(atk Type) float64 {
	if p == nil {
		return 1
	}
	return Effectiveness(atk, p.EffectiveTypes())
}

// MoveDamageMultiplier is DamageMultiplier for a move's type.
func (p *Pokemon) MoveDamageMultiplier(m Move) float64 {
	return p.DamageMultiplier(m.Type)
}

// boostMultiplier converts a stat stage in [-6,6] to its multiplier.
func boostMultiplier(stage int) float64 {
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// BoostedStat returns the named stat after stage multipliers.
func (p *Pokemon) BoostedStat(name string) int {
	base := p.Stats.Get(name)
	return int(float64(base) * boostMultiplier(p.Boosts[name]))
}

// EffectiveSpeed applies boosts, Choice Scarf, and paralysis.
func (p *Pokemon) EffectiveSpeed() int {
	spe := float64(p.BoostedStat("spe"))
	if p.Item == "Choice Scarf" {
		spe *= 1.5
	}
	if p.Status == StatusParalysis {
		spe *= 0.5
	}
	return int(spe)
}

// ApplyBoost adjusts a stat stage, clamped to [-6,6], and reports the
// amount actually applied.
func (p *Pokemon) ApplyBoost(stat string, delta int) int {
	if p.Boosts == nil {
		p.Boosts = make(map[string]int)
	}
	before := p.Boosts[stat]
	after := before + delta
	if after > 6 {
		after = 6
	}
	if after < -6 {
		after = -6
	}
	p.Boosts[stat] = after
	return after - before
}

// HasMove reports whether the Pokémon knows the move with the given id.
func (p *Pokemon) HasMove(id string) bool {
	for _, m := range p.Moves {
		if m.ID == id {
			return true
		}
	}
	return false
}

// NewObservedPokemon builds an opponent Pokémon from its revealed species
// name, with dex typing and rough level-100 stats.
func NewObservedPokemon(species string) *Pokemon {
	data := SpeciesByName(species)
	stats := computeStats(data.BaseStats, Stats{}, defaultIVs(), "hardy", 100)
	return &Pokemon{
		Species: data.Name,
		Types:   append([]Type(nil), data.Types...),
		Level:   100,
		Stats:   stats,
		HP:      stats.HP,
		MaxHP:   stats.HP,
		Boosts:  make(map[string]int),
	}
}
