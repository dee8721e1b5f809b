package bot

import "math/rand"

// Brain is the policy behind a bot player. Tombola bots make no in-game moves
// beyond claiming, which the match engine arbitrates for every automated
// player, so the policy surface is table behaviour: how many cartelle the bot
// buys and how long it "checks its card" before the caller moves on.
type Brain interface {
	// CardCount is how many cartelle the bot buys when seated.
	CardCount() int

	// ReactionDelay returns the seconds the table pauses after this bot
	// submits a claim, within [min, max].
	ReactionDelay(rng *rand.Rand, min, max int) int
}
