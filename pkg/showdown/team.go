package showdown

import (
	"fmt"
	"strconv"
	"strings"
)

// natureMods maps a nature to its boosted and hindered stat (empty for the
// five neutral natures).
var natureMods = map[string][2]string{
	"adamant": {"atk", "spa"},
	"lonely":  {"atk", "def"},
	"brave":   {"atk", "spe"},
	"naughty": {"atk", "spd"},
	"bold":    {"def", "atk"},
	"impish":  {"def", "spa"},
	"relaxed": {"def", "spe"},
	"lax":     {"def", "spd"},
	"modest":  {"spa", "atk"},
	"mild":    {"spa", "def"},
	"quiet":   {"spa", "spe"},
	"rash":    {"spa", "spd"},
	"calm":    {"spd", "atk"},
	"gentle":  {"spd", "def"},
	"sassy":   {"spd", "spe"},
	"careful": {"spd", "spa"},
	"timid":   {"spe", "atk"},
	"hasty":   {"spe", "def"},
	"jolly":   {"spe", "spa"},
	"naive":   {"spe", "spd"},
}

func defaultIVs() Stats {
	return Stats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31}
}

// computeStats derives final stats from base stats, EVs, IVs, nature, and
// level using the standard formulas.
func computeStats(base, evs, ivs Stats, nature string, level int) Stats {
	statNames := []string{"hp", "atk", "def", "spa", "spd", "spe"}
	mods := natureMods[strings.ToLower(nature)]

	var out Stats
	for _, name := range statNames {
		b, e, iv := base.Get(name), evs.Get(name), ivs.Get(name)
		if name == "hp" {
			out.HP = (2*b+iv+e/4)*level/100 + level + 10
			continue
		}
		v := float64((2*b+iv+e/4)*level/100 + 5)
		if mods[0] == name {
			v *= 1.1
		} else if mods[1] == name {
			v *= 0.9
		}
		setStat(&out, name, int(v))
	}
	return out
}

func setStat(s *Stats, name string, v int) {
	switch name {
	case "hp":
		s.HP = v
	case "atk":
		s.Atk = v
	case "def":
		s.Def = v
	case "spa":
		s.SpA = v
	case "spd":
		s.SpD = v
	case "spe":
		s.Spe = v
	}
}

// ParseTeam parses a plain-text teambuilder export: blocks separated by
// blank lines, each with a header line ("Species @ Item"), attribute lines
// ("Ability: ...", "Tera Type: ...", "EVs: ...", "IVs: ...", "... Nature"),
// and "- Move" lines.
func ParseTeam(text string) ([]*Pokemon, error) {
	var team []*Pokemon
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		p, err := parseSet(block)
		if err != nil {
			return nil, err
		}
		team = append(team, p)
	}
	if len(team) == 0 {
		return nil, fmt.Errorf("empty team")
	}
	return team, nil
}

// parseSet parses one Pokémon block.
func parseSet(block string) (*Pokemon, error) {
	lines := strings.Split(block, "\n")
	header := strings.TrimSpace(lines[0])

	species := header
	item := ""
	if at := strings.Index(header, "@"); at >= 0 {
		species = strings.TrimSpace(header[:at])
		item = strings.TrimSpace(header[at+1:])
	}
	// Strip gender and nickname markers: "Nick (Species) (F)".
	for _, g := range []string{"(M)", "(F)"} {
		species = strings.TrimSpace(strings.TrimSuffix(species, g))
	}
	if open := strings.Index(species, "("); open >= 0 {
		if close := strings.LastIndex(species, ")"); close > open {
			species = strings.TrimSpace(species[open+1 : close])
		}
	}

	data := SpeciesByName(species)
	p := &Pokemon{
		Species: data.Name,
		Types:   append([]Type(nil), data.Types...),
		Level:   100,
		Item:    item,
		Boosts:  make(map[string]int),
	}

	evs := Stats{}
	ivs := defaultIVs()
	nature := "hardy"

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case strings.HasPrefix(line, "- "):
			p.Moves = append(p.Moves, MoveByName(line[2:]))
		case strings.HasPrefix(line, "Ability:"):
			p.Ability = strings.TrimSpace(line[len("Ability:"):])
		case strings.HasPrefix(line, "Tera Type:"):
			p.TeraType = ParseType(line[len("Tera Type:"):])
		case strings.HasPrefix(line, "Level:"):
			if lv, err := strconv.Atoi(strings.TrimSpace(line[len("Level:"):])); err == nil {
				p.Level = lv
			}
		case strings.HasPrefix(line, "EVs:"):
			if err := parseSpread(&evs, line[len("EVs:"):]); err != nil {
				return nil, fmt.Errorf("%s: %w", species, err)
			}
		case strings.HasPrefix(line, "IVs:"):
			if err := parseSpread(&ivs, line[len("IVs:"):]); err != nil {
				return nil, fmt.Errorf("%s: %w", species, err)
			}
		case strings.HasSuffix(line, "Nature"):
			p.Nature = strings.TrimSpace(strings.TrimSuffix(line, "Nature"))
			nature = strings.ToLower(p.Nature)
		}
	}

	p.EVs, p.IVs = evs, ivs
	p.Stats = computeStats(data.BaseStats, evs, ivs, nature, p.Level)
	p.HP = p.Stats.HP
	p.MaxHP = p.Stats.HP
	return p, nil
}

// parseSpread parses "252 HP / 252 Def / 4 SpD" style EV/IV lists.
func parseSpread(into *Stats, s string) error {
	for _, part := range strings.Split(s, "/") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) != 2 {
			return fmt.Errorf("bad spread entry %q", part)
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad spread value %q", fields[0])
		}
		name := strings.ToLower(fields[1])
		switch name {
		case "hp", "atk", "def", "spa", "spd", "spe":
			setStat(into, name, v)
		default:
			return fmt.Errorf("bad spread stat %q", fields[1])
		}
	}
	return nil
}

// PackTeam renders a team back to the compact form the sim accepts in a
// /utm command: NICKNAME|SPECIES|ITEM|ABILITY|MOVES|NATURE|EVS|GENDER|IVS|
// SHINY|LEVEL|HAPPINESS,POKEBALL,HPTYPE,GMAX,DMAXLEVEL,TERATYPE. A blank
// species means it equals the nickname; blank level means 100.
func PackTeam(team []*Pokemon) string {
	var sets []string
	for _, p := range team {
		var moves []string
		for _, m := range p.Moves {
			moves = append(moves, m.ID)
		}
		tail := ",,,,," + strings.ToLower(string(p.TeraType))
		sets = append(sets, strings.Join([]string{
			p.Species, "", p.Item, p.Ability, strings.Join(moves, ","),
			p.Nature, packSpread(p.EVs, 0), "", packSpread(p.IVs, 31), "", "", tail,
		}, "|"))
	}
	return strings.Join(sets, "]")
}

// packSpread renders an EV/IV spread as the packed comma list: blank entries
// for default values, a fully blank field for an untouched spread.
func packSpread(s Stats, def int) string {
	vals := []int{s.HP, s.Atk, s.Def, s.SpA, s.SpD, s.Spe}
	parts := make([]string, len(vals))
	touched := false
	for i, v := range vals {
		if v != def {
			parts[i] = strconv.Itoa(v)
			touched = true
		}
	}
	if !touched {
		return ""
	}
	return strings.Join(parts, ",")
}
