package config

import (
	"testing"

	"tombola/internal/domain"
)

// The loader runs once per process, so the unloaded defaults and the loaded
// values are checked in a single ordered test.
func TestGameConfigDefaultsAndLoad(t *testing.T) {
	if GetGameConfig() != nil {
		t.Fatal("expected no config before loading")
	}
	if got := GetStakePerCard(""); got != 100 {
		t.Fatalf("default stake = %d, want 100", got)
	}
	if got := GetCardsPerPlayer(); got != 1 {
		t.Fatalf("default cards per player = %d, want 1", got)
	}
	schedule := GetPayoutSchedule()
	if schedule[domain.RankAmbo] != 10 || schedule[domain.RankTombola] != 30 {
		t.Fatalf("default schedule = %v", schedule)
	}

	if err := LoadGameConfig("testdata/game_config.json"); err != nil {
		t.Fatal(err)
	}

	if GetGameConfig() == nil {
		t.Fatal("expected a loaded config")
	}
	if got := GetStakePerCard("serious"); got != 500 {
		t.Fatalf("serious stake = %d, want 500", got)
	}
	if got := GetStakePerCard("unknown-tier"); got != 100 {
		t.Fatalf("unknown tier stake = %d, want the default tier's 100", got)
	}
	if got := GetCardsPerPlayer(); got != 2 {
		t.Fatalf("cards per player = %d, want 2", got)
	}

	schedule = GetPayoutSchedule()
	want := domain.PayoutSchedule{
		domain.RankAmbo:     8,
		domain.RankTerno:    12,
		domain.RankQuaterna: 18,
		domain.RankCinquina: 22,
		domain.RankTombola:  40,
	}
	for rank, share := range want {
		if schedule[rank] != share {
			t.Fatalf("schedule[%v] = %d, want %d", rank, schedule[rank], share)
		}
	}

	if got := GetGameConfig().DrawIntervalSeconds; got != 3 {
		t.Fatalf("draw interval = %d, want 3", got)
	}
	if got := GetGameConfig().BotAutoFillDelaySeconds; got != 6 {
		t.Fatalf("bot auto-fill delay = %d, want 6", got)
	}
}
