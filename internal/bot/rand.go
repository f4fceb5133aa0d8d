package bot

import "math/rand"

// botRng is the package-level random source used by all agents. When nil,
// the helpers below delegate to the global math/rand default. Use
// SeedBotRng for reproducible arena runs.
var botRng *rand.Rand

// SeedBotRng sets a deterministic random source for reproducible behavior.
func SeedBotRng(seed int64) {
	botRng = rand.New(rand.NewSource(seed))
}

// ResetBotRng reverts to the default (non-deterministic) global source.
func ResetBotRng() {
	botRng = nil
}

// rngOrGlobal returns the seeded source, or a fresh one off the global
// stream for callers that need a *rand.Rand value.
func rngOrGlobal() *rand.Rand {
	if botRng != nil {
		return botRng
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
