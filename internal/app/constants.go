package app

// MinPlayersToStartMatch defines the minimum roster size required to start.
// Keep this centralized so tests or local runs can adjust the rule without
// touching multiple call sites.
const MinPlayersToStartMatch = 2

// DefaultCardsPerPlayer is used when the match configuration does not say
// how many cartelle each player buys.
const DefaultCardsPerPlayer = 1
