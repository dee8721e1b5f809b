package bot

import "math/rand"

// SharpBot plays a single cartella and reacts at the fast end of the window.
type SharpBot struct{}

func (b *SharpBot) CardCount() int {
	return 1
}

func (b *SharpBot) ReactionDelay(_ *rand.Rand, min, _ int) int {
	return min
}

// CasualBot buys two cartelle and takes its time double-checking them.
type CasualBot struct{}

func (b *CasualBot) CardCount() int {
	return 2
}

func (b *CasualBot) ReactionDelay(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
