package showdown

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProcessLine feeds one `|`-delimited sim protocol line into the battle
// view. Lines it does not model are ignored.
func ProcessLine(b *Battle, line string) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return
	}
	switch parts[1] {
	case "player":
		// |player|p2|OpponentName|...
		if len(parts) >= 4 {
			if side := b.sideByID(parts[2]); side != nil && side.Name == "" {
				side.Name = parts[3]
			}
		}
	case "turn":
		if len(parts) >= 3 {
			if t, err := strconv.Atoi(parts[2]); err == nil {
				b.Turn = t
			}
		}
	case "switch", "drag":
		// |switch|p2a: Kyogre|Kyogre, L100|404/404
		if len(parts) >= 4 {
			side, _ := b.parseIdent(parts[2])
			if side == nil {
				return
			}
			species := strings.TrimSpace(strings.Split(parts[3], ",")[0])
			p := side.Find(species)
			if p == nil {
				p = NewObservedPokemon(species)
				side.Team = append(side.Team, p)
			}
			// Boosts reset on switch.
			p.Boosts = make(map[string]int)
			side.Active = p
			if len(parts) >= 5 {
				applyHPStatus(p, parts[4])
			}
		}
	case "move":
		// |move|p2a: Kyogre|Origin Pulse|p1a: Eternatus
		if len(parts) >= 4 {
			side, _ := b.parseIdent(parts[2])
			if side == nil || side.Active == nil {
				return
			}
			mv := MoveByName(parts[3])
			if !side.Active.HasMove(mv.ID) {
				side.Active.Moves = append(side.Active.Moves, mv)
			}
		}
	case "-damage", "-heal", "-sethp":
		if len(parts) >= 4 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				applyHPStatus(p, parts[3])
			}
		}
	case "faint":
		if len(parts) >= 3 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Fainted = true
				p.HP = 0
			}
		}
	case "-status":
		if len(parts) >= 4 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Status = Status(parts[3])
			}
		}
	case "-curestatus":
		if len(parts) >= 3 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Status = StatusNone
				p.ToxicTurns = 0
			}
		}
	case "-boost", "-unboost":
		if len(parts) >= 5 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				amt, _ := strconv.Atoi(parts[4])
				if parts[1] == "-unboost" {
					amt = -amt
				}
				p.ApplyBoost(parts[3], amt)
			}
		}
	case "-setboost":
		if len(parts) >= 5 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				if p.Boosts == nil {
					p.Boosts = make(map[string]int)
				}
				amt, _ := strconv.Atoi(parts[4])
				p.Boosts[parts[3]] = amt
			}
		}
	case "-item":
		if len(parts) >= 4 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Item = parts[3]
			}
		}
	case "-enditem":
		if len(parts) >= 3 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Item = ""
			}
		}
	case "-ability":
		if len(parts) >= 4 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Ability = parts[3]
			}
		}
	case "-terastallize":
		if len(parts) >= 4 {
			if _, p := b.parseIdent(parts[2]); p != nil {
				p.Terastallized = true
				p.TeraType = ParseType(parts[3])
			}
		}
	case "-weather":
		if len(parts) >= 3 {
			if parts[2] == "none" {
				b.Weather = ""
			} else {
				b.Weather = parts[2]
			}
		}
	case "-sidestart":
		// |-sidestart|p1: name|move: Stealth Rock
		if len(parts) >= 4 {
			if side := b.sideByID(strings.SplitN(parts[2], ":", 2)[0]); side != nil {
				side.Conditions[ParseCondition(parts[3])]++
			}
		}
	case "-sideend":
		if len(parts) >= 4 {
			if side := b.sideByID(strings.SplitN(parts[2], ":", 2)[0]); side != nil {
				delete(side.Conditions, ParseCondition(parts[3]))
			}
		}
	case "win":
		if len(parts) >= 3 {
			b.Finished = true
			b.Winner = parts[2]
		}
	case "tie":
		b.Finished = true
	}
}

// sideByID resolves a protocol player id ("p1", "p2") to a side.
func (b *Battle) sideByID(id string) *Side {
	id = strings.TrimSpace(id)
	if len(id) > 2 {
		id = id[:2]
	}
	if b.Self != nil && b.Self.ID == id {
		return b.Self
	}
	if b.Opponent != nil && b.Opponent.ID == id {
		return b.Opponent
	}
	return nil
}

// parseIdent resolves a "p2a: Kyogre" ident to its side and Pokémon.
func (b *Battle) parseIdent(ident string) (*Side, *Pokemon) {
	pieces := strings.SplitN(ident, ":", 2)
	if len(pieces) != 2 {
		return nil, nil
	}
	side := b.sideByID(pieces[0])
	if side == nil {
		return nil, nil
	}
	species := strings.TrimSpace(pieces[1])
	p := side.Find(species)
	if p == nil && side == b.Opponent {
		p = NewObservedPokemon(species)
		side.Team = append(side.Team, p)
	}
	return side, p
}

// applyHPStatus parses a condition string: "163/404", "76/100 brn", "0 fnt".
func applyHPStatus(p *Pokemon, cond string) {
	fields := strings.Fields(strings.TrimSpace(cond))
	if len(fields) == 0 {
		return
	}
	if hp := strings.Split(fields[0], "/"); len(hp) == 2 {
		cur, err1 := strconv.Atoi(hp[0])
		max, err2 := strconv.Atoi(hp[1])
		if err1 == nil && err2 == nil && max > 0 {
			// Opponent HP arrives as a /100 percentage; scale onto the
			// Pokémon's modeled max rather than overwrite it.
			if max == 100 && p.MaxHP > 0 && p.MaxHP != 100 {
				p.HP = cur * p.MaxHP / 100
			} else {
				p.HP = cur
				p.MaxHP = max
			}
		}
	} else if fields[0] == "0" {
		p.HP = 0
	}
	if len(fields) >= 2 {
		switch fields[1] {
		case "fnt":
			p.Fainted = true
			p.HP = 0
		default:
			p.Status = Status(fields[1])
		}
	}
}

// request mirrors the JSON payload of a |request| line.
type request struct {
	Active []struct {
		Moves []struct {
			Move     string `json:"move"`
			ID       string `json:"id"`
			PP       int    `json:"pp"`
			Disabled bool   `json:"disabled"`
		} `json:"moves"`
		CanTerastallize string `json:"canTerastallize"`
		Trapped         bool   `json:"trapped"`
	} `json:"active"`
	Side struct {
		ID      string `json:"id"`
		Pokemon []struct {
			Ident     string `json:"ident"`
			Details   string `json:"details"`
			Condition string `json:"condition"`
			Active    bool   `json:"active"`
			Item      string `json:"item"`
			Ability   string `json:"ability"`
		} `json:"pokemon"`
	} `json:"side"`
	ForceSwitch []bool `json:"forceSwitch"`
	Wait        bool   `json:"wait"`
	RQID        int    `json:"rqid"`
}

// ApplyRequest updates the battle's decision constraints from a |request|
// payload: available moves, switches, trapped/force-switch flags, and tera
// availability. Returns true when the request expects a reply.
func ApplyRequest(b *Battle, payload []byte) (bool, error) {
	var req request
	if err := json.Unmarshal(payload, &req); err != nil {
		return false, fmt.Errorf("decode request: %w", err)
	}
	if req.Wait {
		return false, nil
	}

	if b.Self.ID == "" {
		b.Self.ID = req.Side.ID
	}
	b.RequestID = req.RQID

	b.AvailableMoves = b.AvailableMoves[:0]
	b.AvailableSwitches = b.AvailableSwitches[:0]
	b.ForceSwitch = len(req.ForceSwitch) > 0 && req.ForceSwitch[0]
	b.Trapped = false
	b.CanTera = false

	if len(req.Active) > 0 && !b.ForceSwitch {
		a := req.Active[0]
		b.Trapped = a.Trapped
		b.CanTera = a.CanTerastallize != ""
		for _, rm := range a.Moves {
			if rm.Disabled || rm.PP == 0 {
				continue
			}
			mv := MoveByID(rm.ID)
			if mv.Name == mv.ID && rm.Move != "" {
				mv.Name = rm.Move
			}
			b.AvailableMoves = append(b.AvailableMoves, mv)
		}
	}

	for _, rp := range req.Side.Pokemon {
		species := strings.TrimSpace(strings.Split(rp.Details, ",")[0])
		p := b.Self.Find(species)
		if p == nil {
			continue
		}
		applyHPStatus(p, rp.Condition)
		if rp.Active {
			b.Self.Active = p
			continue
		}
		if !p.Fainted {
			b.AvailableSwitches = append(b.AvailableSwitches, p)
		}
	}
	return true, nil
}
