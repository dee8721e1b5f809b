package bot

import "math/rand"

// Agent represents an autonomous bot player seated at a table.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent for a provisioned bot identity, choosing the
// strategy from the identity's difficulty.
func NewAgent(userID string) (*Agent, error) {
	identity, ok := GetBotConfig(userID)
	if !ok {
		identity = BotIdentity{UserID: userID, DisplayName: userID}
	}
	brain, err := NewBrain(LevelForDifficulty(identity.Difficulty))
	if err != nil {
		return nil, err
	}
	name := identity.DisplayName
	if name == "" {
		name = identity.Username
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}

// CardCount is how many cartelle this agent buys when joining a match.
func (a *Agent) CardCount() int {
	return a.Strategy.CardCount()
}

// ClaimPause returns how long the table pauses after this agent claims a
// prize, in seconds within [min, max].
func (a *Agent) ClaimPause(rng *rand.Rand, min, max int) int {
	return a.Strategy.ReactionDelay(rng, min, max)
}
