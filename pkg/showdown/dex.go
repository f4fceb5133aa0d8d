package showdown

// Embedded dex tables for the species and moves the bundled teams (and their
// common Ubers opposition) use. The sim protocol reveals anything else at
// battle time; lookups fall back to neutral defaults for species and moves
// outside these tables.

// SpeciesData holds the static dex entry for one species.
type SpeciesData struct {
	Name      string
	Types     []Type
	BaseStats Stats
}

// SpeciesByName looks up a species by display name. Unknown species get
// flat 100 base stats and no types, so an unrevealed opponent still scores.
func SpeciesByName(name string) SpeciesData {
	if s, ok := pokedex[MoveID(name)]; ok {
		return s
	}
	return SpeciesData{
		Name:      name,
		BaseStats: Stats{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
	}
}

var pokedex = map[string]SpeciesData{
	"necrozmaduskmane": {
		Name:      "Necrozma-Dusk-Mane",
		Types:     []Type{TypePsychic, TypeSteel},
		BaseStats: Stats{HP: 97, Atk: 157, Def: 127, SpA: 113, SpD: 109, Spe: 77},
	},
	"kyogre": {
		Name:      "Kyogre",
		Types:     []Type{TypeWater},
		BaseStats: Stats{HP: 100, Atk: 100, Def: 90, SpA: 150, SpD: 140, Spe: 90},
	},
	"arceusfairy": {
		Name:      "Arceus-Fairy",
		Types:     []Type{TypeFairy},
		BaseStats: Stats{HP: 120, Atk: 120, Def: 120, SpA: 120, SpD: 120, Spe: 120},
	},
	"arceus": {
		Name:      "Arceus",
		Types:     []Type{TypeNormal},
		BaseStats: Stats{HP: 120, Atk: 120, Def: 120, SpA: 120, SpD: 120, Spe: 120},
	},
	"eternatus": {
		Name:      "Eternatus",
		Types:     []Type{TypePoison, TypeDragon},
		BaseStats: Stats{HP: 140, Atk: 85, Def: 95, SpA: 145, SpD: 95, Spe: 130},
	},
	"greattusk": {
		Name:      "Great Tusk",
		Types:     []Type{TypeGround, TypeFighting},
		BaseStats: Stats{HP: 115, Atk: 131, Def: 131, SpA: 53, SpD: 53, Spe: 87},
	},
	"kingambit": {
		Name:      "Kingambit",
		Types:     []Type{TypeDark, TypeSteel},
		BaseStats: Stats{HP: 100, Atk: 135, Def: 120, SpA: 60, SpD: 85, Spe: 50},
	},
	"koraidon": {
		Name:      "Koraidon",
		Types:     []Type{TypeFighting, TypeDragon},
		BaseStats: Stats{HP: 100, Atk: 135, Def: 115, SpA: 85, SpD: 100, Spe: 135},
	},
	"miraidon": {
		Name:      "Miraidon",
		Types:     []Type{TypeElectric, TypeDragon},
		BaseStats: Stats{HP: 100, Atk: 85, Def: 100, SpA: 135, SpD: 115, Spe: 135},
	},
	"zaciancrowned": {
		Name:      "Zacian-Crowned",
		Types:     []Type{TypeFairy, TypeSteel},
		BaseStats: Stats{HP: 92, Atk: 150, Def: 115, SpA: 80, SpD: 115, Spe: 148},
	},
	"groudon": {
		Name:      "Groudon",
		Types:     []Type{TypeGround},
		BaseStats: Stats{HP: 100, Atk: 150, Def: 140, SpA: 100, SpD: 90, Spe: 90},
	},
	"rayquaza": {
		Name:      "Rayquaza",
		Types:     []Type{TypeDragon, TypeFlying},
		BaseStats: Stats{HP: 105, Atk: 150, Def: 90, SpA: 150, SpD: 90, Spe: 95},
	},
	"hooh": {
		Name:      "Ho-Oh",
		Types:     []Type{TypeFire, TypeFlying},
		BaseStats: Stats{HP: 106, Atk: 130, Def: 90, SpA: 110, SpD: 154, Spe: 90},
	},
	"giratina": {
		Name:      "Giratina",
		Types:     []Type{TypeGhost, TypeDragon},
		BaseStats: Stats{HP: 150, Atk: 100, Def: 120, SpA: 100, SpD: 120, Spe: 90},
	},
	"tinglu": {
		Name:      "Ting-Lu",
		Types:     []Type{TypeDark, TypeGround},
		BaseStats: Stats{HP: 155, Atk: 110, Def: 125, SpA: 55, SpD: 80, Spe: 45},
	},
	"deoxysspeed": {
		Name:      "Deoxys-Speed",
		Types:     []Type{TypePsychic},
		BaseStats: Stats{HP: 50, Atk: 95, Def: 90, SpA: 95, SpD: 90, Spe: 180},
	},
}

var movedex = map[string]Move{
	// Team staples.
	"stealthrock":    {ID: "stealthrock", Name: "Stealth Rock", Type: TypeRock, Category: CategoryStatus},
	"toxicspikes":    {ID: "toxicspikes", Name: "Toxic Spikes", Type: TypePoison, Category: CategoryStatus},
	"spikes":         {ID: "spikes", Name: "Spikes", Type: TypeGround, Category: CategoryStatus},
	"willowisp":      {ID: "willowisp", Name: "Will-O-Wisp", Type: TypeFire, Category: CategoryStatus},
	"swordsdance":    {ID: "swordsdance", Name: "Swords Dance", Type: TypeNormal, Category: CategoryStatus},
	"calmmind":       {ID: "calmmind", Name: "Calm Mind", Type: TypePsychic, Category: CategoryStatus},
	"recover":        {ID: "recover", Name: "Recover", Type: TypeNormal, Category: CategoryStatus},
	"morningsun":     {ID: "morningsun", Name: "Morning Sun", Type: TypeNormal, Category: CategoryStatus},
	"rapidspin":      {ID: "rapidspin", Name: "Rapid Spin", Type: TypeNormal, Category: CategoryPhysical, BasePower: 50},
	"sunsteelstrike": {ID: "sunsteelstrike", Name: "Sunsteel Strike", Type: TypeSteel, Category: CategoryPhysical, BasePower: 100},
	"earthquake":     {ID: "earthquake", Name: "Earthquake", Type: TypeGround, Category: CategoryPhysical, BasePower: 100},
	"waterspout":     {ID: "waterspout", Name: "Water Spout", Type: TypeWater, Category: CategorySpecial, BasePower: 150},
	"originpulse":    {ID: "originpulse", Name: "Origin Pulse", Type: TypeWater, Category: CategorySpecial, BasePower: 110},
	"icebeam":        {ID: "icebeam", Name: "Ice Beam", Type: TypeIce, Category: CategorySpecial, BasePower: 90},
	"thunder":        {ID: "thunder", Name: "Thunder", Type: TypeElectric, Category: CategorySpecial, BasePower: 110},
	"judgment":       {ID: "judgment", Name: "Judgment", Type: TypeNormal, Category: CategorySpecial, BasePower: 100},
	"dynamaxcannon":  {ID: "dynamaxcannon", Name: "Dynamax Cannon", Type: TypeDragon, Category: CategorySpecial, BasePower: 100},
	"flamethrower":   {ID: "flamethrower", Name: "Flamethrower", Type: TypeFire, Category: CategorySpecial, BasePower: 90},
	"headlongrush":   {ID: "headlongrush", Name: "Headlong Rush", Type: TypeGround, Category: CategoryPhysical, BasePower: 120},
	"knockoff":       {ID: "knockoff", Name: "Knock Off", Type: TypeDark, Category: CategoryPhysical, BasePower: 65},
	"bodypress":      {ID: "bodypress", Name: "Body Press", Type: TypeFighting, Category: CategoryPhysical, BasePower: 80},
	"kowtowcleave":   {ID: "kowtowcleave", Name: "Kowtow Cleave", Type: TypeDark, Category: CategoryPhysical, BasePower: 85},
	"suckerpunch":    {ID: "suckerpunch", Name: "Sucker Punch", Type: TypeDark, Category: CategoryPhysical, BasePower: 70, Priority: 1},
	"ironhead":       {ID: "ironhead", Name: "Iron Head", Type: TypeSteel, Category: CategoryPhysical, BasePower: 80},

	// Common opposition.
	"closecombat":     {ID: "closecombat", Name: "Close Combat", Type: TypeFighting, Category: CategoryPhysical, BasePower: 120},
	"collisioncourse": {ID: "collisioncourse", Name: "Collision Course", Type: TypeFighting, Category: CategoryPhysical, BasePower: 100},
	"electrodrift":    {ID: "electrodrift", Name: "Electro Drift", Type: TypeElectric, Category: CategorySpecial, BasePower: 100},
	"dracometeor":     {ID: "dracometeor", Name: "Draco Meteor", Type: TypeDragon, Category: CategorySpecial, BasePower: 130},
	"dragonclaw":      {ID: "dragonclaw", Name: "Dragon Claw", Type: TypeDragon, Category: CategoryPhysical, BasePower: 80},
	"behemothblade":   {ID: "behemothblade", Name: "Behemoth Blade", Type: TypeSteel, Category: CategoryPhysical, BasePower: 100},
	"playrough":       {ID: "playrough", Name: "Play Rough", Type: TypeFairy, Category: CategoryPhysical, BasePower: 90},
	"moonblast":       {ID: "moonblast", Name: "Moonblast", Type: TypeFairy, Category: CategorySpecial, BasePower: 95},
	"shadowball":      {ID: "shadowball", Name: "Shadow Ball", Type: TypeGhost, Category: CategorySpecial, BasePower: 80},
	"sacredfire":      {ID: "sacredfire", Name: "Sacred Fire", Type: TypeFire, Category: CategoryPhysical, BasePower: 100},
	"bravebird":       {ID: "bravebird", Name: "Brave Bird", Type: TypeFlying, Category: CategoryPhysical, BasePower: 120},
	"precipiceblades": {ID: "precipiceblades", Name: "Precipice Blades", Type: TypeGround, Category: CategoryPhysical, BasePower: 120},
	"ruination":       {ID: "ruination", Name: "Ruination", Type: TypeDark, Category: CategorySpecial, BasePower: 1},
	"psychoboost":     {ID: "psychoboost", Name: "Psycho Boost", Type: TypePsychic, Category: CategorySpecial, BasePower: 140},
	"extremespeed":    {ID: "extremespeed", Name: "Extreme Speed", Type: TypeNormal, Category: CategoryPhysical, BasePower: 80, Priority: 2},
}
