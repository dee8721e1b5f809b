package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"tombola/internal/domain"
)

type StakeTier struct {
	ID           string `json:"id"`
	StakePerCard int64  `json:"stake_per_card"`
}

// PayoutShares is the pot percentage each prize tier pays out. Shares summing
// below 100 leave the remainder as the house cut.
type PayoutShares struct {
	Ambo     int64 `json:"ambo"`
	Terno    int64 `json:"terno"`
	Quaterna int64 `json:"quaterna"`
	Cinquina int64 `json:"cinquina"`
	Tombola  int64 `json:"tombola"`
}

type GameConfig struct {
	DefaultTier string       `json:"default_tier"`
	Tiers       []StakeTier  `json:"tiers"`
	Payouts     PayoutShares `json:"payouts"`
	// DrawIntervalSeconds is the pause between automatic draws.
	DrawIntervalSeconds int `json:"draw_interval_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding bots to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// CardsPerPlayer is how many cartelle a joining human receives.
	CardsPerPlayer int `json:"cards_per_player"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetStakePerCard returns the per-cartella stake for a tier ID, or the
// default tier's stake.
func GetStakePerCard(tierID string) int64 {
	if cfg == nil {
		return 100 // Safe default
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.StakePerCard
		}
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.StakePerCard
		}
	}

	return 100
}

// GetPayoutSchedule maps the configured shares into the domain schedule.
// The traditional split is used when no configuration is loaded.
func GetPayoutSchedule() domain.PayoutSchedule {
	if cfg == nil {
		return domain.PayoutSchedule{
			domain.RankAmbo:     10,
			domain.RankTerno:    15,
			domain.RankQuaterna: 20,
			domain.RankCinquina: 25,
			domain.RankTombola:  30,
		}
	}
	return domain.PayoutSchedule{
		domain.RankAmbo:     cfg.Payouts.Ambo,
		domain.RankTerno:    cfg.Payouts.Terno,
		domain.RankQuaterna: cfg.Payouts.Quaterna,
		domain.RankCinquina: cfg.Payouts.Cinquina,
		domain.RankTombola:  cfg.Payouts.Tombola,
	}
}

// GetCardsPerPlayer returns the configured cartelle per joining human.
func GetCardsPerPlayer() int {
	if cfg == nil || cfg.CardsPerPlayer <= 0 {
		return 1
	}
	return cfg.CardsPerPlayer
}
