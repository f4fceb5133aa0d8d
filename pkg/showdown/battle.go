package showdown

import (
	"fmt"
	"math/rand"
	"strings"
)

// SideCondition is an entry hazard or other per-side field effect.
type SideCondition string

const (
	ConditionStealthRock SideCondition = "stealthrock"
	ConditionToxicSpikes SideCondition = "toxicspikes"
	ConditionSpikes      SideCondition = "spikes"
)

// Side is one player's half of the field.
type Side struct {
	ID         string // protocol player id ("p1", "p2"); empty for local sims
	Name       string
	Team       []*Pokemon
	Active     *Pokemon
	Conditions map[SideCondition]int // layer counts
}

// NewSide builds a side from a team, nobody active yet.
func NewSide(name string, team []*Pokemon) *Side {
	return &Side{
		Name:       name,
		Team:       team,
		Conditions: make(map[SideCondition]int),
	}
}

// Remaining counts unfainted team members.
func (s *Side) Remaining() int {
	n := 0
	for _, p := range s.Team {
		if !p.Fainted {
			n++
		}
	}
	return n
}

// Benched returns unfainted team members other than the active one.
func (s *Side) Benched() []*Pokemon {
	var out []*Pokemon
	for _, p := range s.Team {
		if !p.Fainted && p != s.Active {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the team member with the given species, or nil.
func (s *Side) Find(species string) *Pokemon {
	id := MoveID(species)
	for _, p := range s.Team {
		if MoveID(p.Species) == id {
			return p
		}
	}
	return nil
}

// Battle is one decision point's view of a battle: own side fully known,
// opponent side as revealed so far, plus the request flags that constrain
// the legal reply.
type Battle struct {
	Tag     string
	Format  string
	Turn    int
	Weather string

	Self     *Side
	Opponent *Side

	AvailableMoves    []Move
	AvailableSwitches []*Pokemon
	ForceSwitch       bool
	Trapped           bool
	CanTera           bool
	RequestID         int // rqid of the pending server request

	Finished bool
	Winner   string
}

// NewBattle creates a battle view for one side.
func NewBattle(tag string, self, opponent *Side) *Battle {
	return &Battle{Tag: tag, Self: self, Opponent: opponent}
}

// Active returns our active Pokémon (nil between switches).
func (b *Battle) Active() *Pokemon { return b.Self.Active }

// OpponentActive returns the opponent's active Pokémon as far as revealed.
func (b *Battle) OpponentActive() *Pokemon { return b.Opponent.Active }

// ActionKind discriminates the two reply shapes.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionSwitch
)

// Action is the single reply an agent returns for a decision point: a move
// (optionally with terastallization) or a switch.
type Action struct {
	Kind   ActionKind
	Move   Move
	Switch *Pokemon
	Tera   bool
}

// MoveAction wraps a move choice.
func MoveAction(m Move) Action { return Action{Kind: ActionMove, Move: m} }

// TeraMoveAction wraps a move choice with terastallization.
func TeraMoveAction(m Move) Action { return Action{Kind: ActionMove, Move: m, Tera: true} }

// SwitchAction wraps a switch choice.
func SwitchAction(p *Pokemon) Action { return Action{Kind: ActionSwitch, Switch: p} }

// IsZero reports whether the action carries no usable choice.
func (a Action) IsZero() bool {
	return (a.Kind == ActionMove && a.Move.ID == "") ||
		(a.Kind == ActionSwitch && a.Switch == nil)
}

// Command renders the action as a sim /choose argument.
func (a Action) Command() string {
	if a.Kind == ActionSwitch {
		return fmt.Sprintf("switch %s", a.Switch.Species)
	}
	cmd := fmt.Sprintf("move %s", a.Move.ID)
	if a.Tera {
		cmd += " terastallize"
	}
	return cmd
}

func (a Action) String() string {
	if a.Kind == ActionSwitch {
		if a.Switch == nil {
			return "switch <none>"
		}
		return "switch " + a.Switch.Species
	}
	s := "move " + a.Move.ID
	if a.Tera {
		s += " (tera)"
	}
	return s
}

// RandomAction picks a uniformly random legal action, the blanket fallback
// for every agent. Forced switches only consider switches; otherwise moves
// and switches are pooled like the sim's own default choice.
func RandomAction(rng *rand.Rand, b *Battle) Action {
	var pool []Action
	if !b.ForceSwitch {
		for _, m := range b.AvailableMoves {
			pool = append(pool, MoveAction(m))
		}
	}
	if !b.Trapped || b.ForceSwitch {
		for _, p := range b.AvailableSwitches {
			pool = append(pool, SwitchAction(p))
		}
	}
	if len(pool) == 0 {
		return Action{}
	}
	return pool[rng.Intn(len(pool))]
}

// ParseCondition normalizes a protocol side-condition name
// ("move: Stealth Rock" or "Stealth Rock") to its id.
func ParseCondition(s string) SideCondition {
	s = strings.TrimPrefix(s, "move: ")
	return SideCondition(MoveID(s))
}
