package showdown

import (
	"math/rand"
)

// Decider produces one action for a decision point. Agents satisfy this.
type Decider func(*Battle) Action

// Outcome summarizes a finished local battle.
type Outcome struct {
	Winner      string // side name, "" for a draw
	WinnerIdx   int    // 0, 1, or -1 for a draw
	Turns       int
	RemainingHP [2]float64 // summed HP fractions per side at the end
}

// Sim plays out a full battle between two teams locally. It covers the
// mechanics the bundled teams exercise (damage with stages and burn,
// priority/speed order, hazards and Rapid Spin, status, recovery and setup
// moves, item effects, terastallization): enough to rank agents by match
// outcome, not a full rules engine.
type Sim struct {
	rng      *rand.Rand
	sides    [2]*Side
	usedTera [2]bool
	turn     int
}

// NewSim creates a simulator over two sides. Seed 0 derives a random seed.
func NewSim(a, b *Side, seed int64) *Sim {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Sim{rng: rand.New(rand.NewSource(seed)), sides: [2]*Side{a, b}}
}

// view builds the decision-point battle view for one side.
func (s *Sim) view(idx int, forceSwitch bool) *Battle {
	me, opp := s.sides[idx], s.sides[1-idx]
	b := NewBattle("local", me, opp)
	b.Turn = s.turn
	b.ForceSwitch = forceSwitch
	b.AvailableSwitches = me.Benched()
	if !forceSwitch && me.Active != nil {
		b.AvailableMoves = append(b.AvailableMoves, me.Active.Moves...)
		b.CanTera = !s.usedTera[idx]
	}
	return b
}

// Run plays the battle to completion, asking each side's decider at every
// decision point. Battles that reach maxTurns are scored by remaining HP.
func (s *Sim) Run(maxTurns int, decide [2]Decider) Outcome {
	// Lead with the first team slot, taking entry hazards (none yet).
	for i := range s.sides {
		s.sendOut(i, s.sides[i].Team[0])
	}

	for s.turn = 1; s.turn <= maxTurns; s.turn++ {
		var actions [2]Action
		for i := range s.sides {
			actions[i] = s.decideOrRandom(i, decide[i], false)
		}

		// Switches resolve before moves.
		for i := range s.sides {
			if actions[i].Kind == ActionSwitch && actions[i].Switch != nil {
				s.sendOut(i, actions[i].Switch)
			}
		}

		// Moves in priority order, speed breaking ties.
		for _, i := range s.moveOrder(actions) {
			if actions[i].Kind != ActionMove {
				continue
			}
			me, opp := s.sides[i].Active, s.sides[1-i].Active
			if me == nil || me.Fainted || opp == nil {
				continue
			}
			s.useMove(i, actions[i], actions[1-i])

			if done, out := s.checkEnd(); done {
				return out
			}
			if opp.Fainted {
				if !s.replaceFainted(1-i, decide[1-i]) {
					return s.finish(i)
				}
			}
			if me.Fainted {
				if !s.replaceFainted(i, decide[i]) {
					return s.finish(1 - i)
				}
			}
		}

		s.endOfTurn()
		if done, out := s.checkEnd(); done {
			return out
		}
		for i := range s.sides {
			if s.sides[i].Active != nil && s.sides[i].Active.Fainted {
				if !s.replaceFainted(i, decide[i]) {
					return s.finish(1 - i)
				}
			}
		}
	}

	// Turn cap: score by summed HP fractions.
	out := Outcome{WinnerIdx: -1, Turns: maxTurns}
	for i, side := range s.sides {
		for _, p := range side.Team {
			out.RemainingHP[i] += p.CurrentHPFraction()
		}
	}
	if out.RemainingHP[0] > out.RemainingHP[1] {
		out.WinnerIdx, out.Winner = 0, s.sides[0].Name
	} else if out.RemainingHP[1] > out.RemainingHP[0] {
		out.WinnerIdx, out.Winner = 1, s.sides[1].Name
	}
	return out
}

// decideOrRandom asks the decider, falling back to a random legal action on
// a zero action or a panic. The blanket safety net every agent runs under.
func (s *Sim) decideOrRandom(idx int, decide Decider, forceSwitch bool) (a Action) {
	view := s.view(idx, forceSwitch)
	defer func() {
		if recover() != nil || a.IsZero() {
			a = RandomAction(s.rng, view)
		}
	}()
	a = decide(view)
	return a
}

// moveOrder returns side indices sorted by move priority then speed.
func (s *Sim) moveOrder(actions [2]Action) [2]int {
	pri := func(i int) int {
		if actions[i].Kind != ActionMove {
			return -100
		}
		return actions[i].Move.Priority
	}
	spe := func(i int) int {
		if s.sides[i].Active == nil {
			return 0
		}
		return s.sides[i].Active.EffectiveSpeed()
	}
	if pri(0) != pri(1) {
		if pri(0) > pri(1) {
			return [2]int{0, 1}
		}
		return [2]int{1, 0}
	}
	if spe(0) != spe(1) {
		if spe(0) > spe(1) {
			return [2]int{0, 1}
		}
		return [2]int{1, 0}
	}
	if s.rng.Intn(2) == 0 {
		return [2]int{0, 1}
	}
	return [2]int{1, 0}
}

// sendOut switches a Pokémon in and applies entry hazards.
func (s *Sim) sendOut(idx int, p *Pokemon) {
	side := s.sides[idx]
	side.Active = p
	p.Boosts = make(map[string]int)

	if side.Conditions[ConditionStealthRock] > 0 {
		dmg := float64(p.MaxHP) / 8 * Effectiveness(TypeRock, p.Types)
		s.damage(p, int(dmg))
	}
	grounded := !p.HasType(TypeFlying) && p.Ability != "Levitate"
	if layers := side.Conditions[ConditionSpikes]; layers > 0 && grounded {
		frac := []float64{0, 1.0 / 8, 1.0 / 6, 1.0 / 4}[min(layers, 3)]
		s.damage(p, int(float64(p.MaxHP)*frac))
	}
	if layers := side.Conditions[ConditionToxicSpikes]; layers > 0 && grounded {
		if p.HasType(TypePoison) {
			delete(side.Conditions, ConditionToxicSpikes)
		} else if p.Status == StatusNone && !p.HasType(TypeSteel) {
			if layers >= 2 {
				p.Status = StatusToxic
			} else {
				p.Status = StatusPoison
			}
		}
	}
}

// useMove executes one move. theirAction is the opposing side's choice this
// turn, needed for Sucker Punch.
func (s *Sim) useMove(idx int, act, theirAction Action) {
	me, opp := s.sides[idx].Active, s.sides[1-idx].Active
	mySide, oppSide := s.sides[idx], s.sides[1-idx]
	mv := act.Move

	if act.Tera && !s.usedTera[idx] {
		s.usedTera[idx] = true
		me.Terastallized = true
	}

	if mv.IsStatus() {
		switch mv.ID {
		case "stealthrock":
			if oppSide.Conditions[ConditionStealthRock] == 0 {
				oppSide.Conditions[ConditionStealthRock] = 1
			}
		case "toxicspikes":
			if oppSide.Conditions[ConditionToxicSpikes] < 2 {
				oppSide.Conditions[ConditionToxicSpikes]++
			}
		case "spikes":
			if oppSide.Conditions[ConditionSpikes] < 3 {
				oppSide.Conditions[ConditionSpikes]++
			}
		case "willowisp":
			if opp.Status == StatusNone && !opp.HasType(TypeFire) {
				opp.Status = StatusBurn
			}
		case "swordsdance":
			me.ApplyBoost("atk", 2)
		case "calmmind":
			me.ApplyBoost("spa", 1)
			me.ApplyBoost("spd", 1)
		case "recover", "morningsun":
			s.heal(me, me.MaxHP/2)
		}
		return
	}

	// Sucker Punch only connects against an attacking target.
	if mv.ID == "suckerpunch" {
		if theirAction.Kind != ActionMove || theirAction.Move.IsStatus() {
			return
		}
	}

	dmg := s.calcDamage(me, opp, mv)
	s.damage(opp, dmg)

	switch mv.ID {
	case "knockoff":
		opp.Item = ""
	case "rapidspin":
		delete(mySide.Conditions, ConditionStealthRock)
		delete(mySide.Conditions, ConditionSpikes)
		delete(mySide.Conditions, ConditionToxicSpikes)
	}
}

// calcDamage is the standard level-100 damage formula with the modifiers
// the agents' scoring mirrors: stages, burn, STAB (doubled when tera
// matches an original type), effectiveness, and a 0.85 to 1.0 roll.
func (s *Sim) calcDamage(atk, def *Pokemon, mv Move) int {
	if mv.ID == "ruination" {
		return def.HP / 2
	}

	power := float64(mv.BasePower)
	if mv.ID == "waterspout" {
		power *= atk.CurrentHPFraction()
	}
	if power <= 0 {
		return 0
	}

	var a, d float64
	if mv.Category == CategoryPhysical {
		if mv.ID == "bodypress" {
			a = float64(atk.BoostedStat("def"))
		} else {
			a = float64(atk.BoostedStat("atk"))
		}
		d = float64(def.BoostedStat("def"))
		if atk.Status == StatusBurn {
			a *= 0.5
		}
	} else {
		a = float64(atk.BoostedStat("spa"))
		d = float64(def.BoostedStat("spd"))
	}

	level := float64(atk.Level)
	if level == 0 {
		level = 100
	}
	base := (2*level/5+2)*power*a/d/50 + 2

	mod := Effectiveness(mv.Type, def.EffectiveTypes())
	stab := 1.0
	for _, t := range atk.Types {
		if t == mv.Type {
			stab = 1.5
		}
	}
	if atk.Terastallized && atk.TeraType == mv.Type {
		if stab > 1 {
			stab = 2.0
		} else {
			stab = 1.5
		}
	}
	mod *= stab
	mod *= 0.85 + 0.15*s.rng.Float64()

	return int(base * mod)
}

func (s *Sim) damage(p *Pokemon, amount int) {
	if amount <= 0 || p.Fainted {
		return
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.Fainted = true
	}
}

func (s *Sim) heal(p *Pokemon, amount int) {
	if p.Fainted {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// endOfTurn applies residual damage and item healing.
func (s *Sim) endOfTurn() {
	for _, side := range s.sides {
		p := side.Active
		if p == nil || p.Fainted {
			continue
		}
		switch p.Item {
		case "Leftovers":
			s.heal(p, p.MaxHP/16)
		case "Black Sludge":
			if p.HasType(TypePoison) {
				s.heal(p, p.MaxHP/16)
			} else {
				s.damage(p, p.MaxHP/8)
			}
		}
		switch p.Status {
		case StatusBurn:
			s.damage(p, p.MaxHP/16)
		case StatusPoison:
			s.damage(p, p.MaxHP/8)
		case StatusToxic:
			p.ToxicTurns++
			s.damage(p, p.MaxHP*p.ToxicTurns/16)
		}
	}
}

// replaceFainted asks for a replacement after a faint. Returns false when
// the side has nobody left.
func (s *Sim) replaceFainted(idx int, decide Decider) bool {
	if s.sides[idx].Remaining() == 0 {
		return false
	}
	act := s.decideOrRandom(idx, decide, true)
	if act.Kind != ActionSwitch || act.Switch == nil || act.Switch.Fainted {
		benched := s.sides[idx].Benched()
		if len(benched) == 0 {
			return false
		}
		act = SwitchAction(benched[0])
	}
	s.sendOut(idx, act.Switch)
	return true
}

func (s *Sim) checkEnd() (bool, Outcome) {
	for i := range s.sides {
		if s.sides[i].Remaining() == 0 {
			return true, s.finish(1 - i)
		}
	}
	return false, Outcome{}
}

func (s *Sim) finish(winner int) Outcome {
	out := Outcome{Winner: s.sides[winner].Name, WinnerIdx: winner, Turns: s.turn}
	for i, side := range s.sides {
		for _, p := range side.Team {
			out.RemainingHP[i] += p.CurrentHPFraction()
		}
	}
	return out
}
