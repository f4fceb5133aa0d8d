package bot

import "github.com/hli605/showdown-bot/pkg/showdown"

// defaultTeam is the Gen 9 Ubers team the bot plays. Balanced core:
// Necrozma-Dusk-Mane sets rocks and walls physical attackers, Kyogre is
// the scarfed breaker, Arceus-Fairy and Eternatus hold the special side,
// Great Tusk spins, Kingambit cleans with Sucker Punch priority.
const defaultTeam = `
Necrozma-Dusk-Mane @ Leftovers
Ability: Prism Armor
Tera Type: Steel
EVs: 252 HP / 252 Def / 4 SpD
Impish Nature
- Stealth Rock
- Sunsteel Strike
- Morning Sun
- Earthquake

Kyogre @ Choice Scarf
Ability: Drizzle
Tera Type: Water
EVs: 252 SpA / 4 SpD / 252 Spe
Timid Nature
IVs: 0 Atk
- Water Spout
- Origin Pulse
- Ice Beam
- Thunder

Arceus-Fairy @ Pixie Plate
Ability: Multitype
Tera Type: Fairy
EVs: 252 HP / 200 Def / 56 Spe
Bold Nature
IVs: 0 Atk
- Judgment
- Recover
- Will-O-Wisp
- Calm Mind

Eternatus @ Black Sludge
Ability: Pressure
Tera Type: Poison
EVs: 252 HP / 4 Def / 252 SpD
Calm Nature
IVs: 0 Atk
- Dynamax Cannon
- Flamethrower
- Recover
- Toxic Spikes

Great Tusk @ Leftovers
Ability: Protosynthesis
Tera Type: Ground
EVs: 252 HP / 252 Def / 4 Spe
Impish Nature
- Rapid Spin
- Headlong Rush
- Knock Off
- Body Press

Kingambit @ Black Glasses
Ability: Supreme Overlord
Tera Type: Dark
EVs: 252 Atk / 4 SpD / 252 Spe
Adamant Nature
- Kowtow Cleave
- Sucker Punch
- Iron Head
- Swords Dance
`

// DefaultTeam parses the default team into Pokémon.
func DefaultTeam() ([]*showdown.Pokemon, error) {
	return showdown.ParseTeam(defaultTeam)
}
