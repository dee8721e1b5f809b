package bot

import "fmt"

// BotLevel selects a bot behaviour profile.
type BotLevel int

const (
	BotLevelCasual BotLevel = iota
	BotLevelSharp
)

// LevelForDifficulty maps an identity's difficulty string to a level.
// Unknown strings fall back to casual.
func LevelForDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "hard", "sharp":
		return BotLevelSharp
	default:
		return BotLevelCasual
	}
}

// NewBrain creates a bot policy for the given level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelCasual:
		return &CasualBot{}, nil
	case BotLevelSharp:
		return &SharpBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
