package domain

import (
	"fmt"
	"math/rand"
	"testing"
)

func newTestPlayer(userID string, cardCount int, seed int64) *Player {
	rng := rand.New(rand.NewSource(seed))
	p := &Player{UserID: userID, DisplayName: userID}
	for i := 0; i < cardCount; i++ {
		p.AddCard(NewCard(fmt.Sprintf("%s/%d", userID, i), rng))
	}
	return p
}

func TestPlayerCardBounds(t *testing.T) {
	p := newTestPlayer("alice", 2, 1)
	if p.Card(0) == nil || p.Card(1) == nil {
		t.Fatal("expected both cards reachable")
	}
	if p.Card(-1) != nil || p.Card(2) != nil {
		t.Fatal("expected nil for out-of-range indexes")
	}
}

func TestEvaluateClaimPicksBestAcrossCards(t *testing.T) {
	p := &Player{UserID: "alice"}
	rng := rand.New(rand.NewSource(5))
	first := NewCard("alice/0", rng)
	second := NewCard("alice/1", rng)
	p.AddCard(first)
	p.AddCard(second)

	// Ambo on the first card, terno on the second.
	for _, n := range first.Row(0)[:2] {
		first.Mark(n)
	}
	for _, n := range second.Row(1)[:3] {
		second.Mark(n)
	}

	claim := p.EvaluateClaim(nil)
	if claim == nil {
		t.Fatal("expected a claim")
	}
	if claim.PlayerID != "alice" || claim.CardIndex != 1 || claim.Row != 1 || claim.Rank != RankTerno {
		t.Fatalf("claim = %+v, want terno on card 1 row 1", claim)
	}
	if p.PendingClaim() != claim {
		t.Fatal("pending claim should match the evaluation result")
	}

	p.ClearPendingClaim()
	if p.PendingClaim() != nil {
		t.Fatal("expected pending claim cleared")
	}
}

func TestEvaluateClaimRankTieKeepsLowerCardIndex(t *testing.T) {
	p := &Player{UserID: "alice"}
	rng := rand.New(rand.NewSource(6))
	first := NewCard("alice/0", rng)
	second := NewCard("alice/1", rng)
	p.AddCard(first)
	p.AddCard(second)

	for _, n := range first.Row(0)[:2] {
		first.Mark(n)
	}
	for _, n := range second.Row(0)[:2] {
		second.Mark(n)
	}

	claim := p.EvaluateClaim(nil)
	if claim == nil || claim.CardIndex != 0 || claim.Rank != RankAmbo {
		t.Fatalf("claim = %+v, want ambo on card 0", claim)
	}
}

func TestEvaluateClaimNothingEligible(t *testing.T) {
	p := newTestPlayer("alice", 1, 7)
	if claim := p.EvaluateClaim(nil); claim != nil {
		t.Fatalf("expected nil claim, got %+v", claim)
	}
}

func TestMarkAllReachesEveryCard(t *testing.T) {
	p := &Player{UserID: "alice"}
	rng := rand.New(rand.NewSource(8))
	first := NewCard("alice/0", rng)
	second := NewCard("alice/1", rng)
	p.AddCard(first)
	p.AddCard(second)

	for _, n := range first.Numbers() {
		p.MarkAll(n)
	}
	for _, n := range first.Numbers() {
		if !first.IsMarked(n) {
			t.Fatalf("number %d not marked on the first card", n)
		}
		if second.Contains(n) && !second.IsMarked(n) {
			t.Fatalf("number %d not marked on the second card", n)
		}
	}
}

func TestClaimKey(t *testing.T) {
	p := newTestPlayer("alice", 1, 9)
	key, ok := p.ClaimKey(Claim{CardIndex: 0, Row: 2, Rank: RankAmbo})
	if !ok {
		t.Fatal("expected a key for a valid card index")
	}
	want := PrizeKey{CardID: p.Card(0).ID(), Row: 2, Rank: RankAmbo}
	if key != want {
		t.Fatalf("key = %+v, want %+v", key, want)
	}

	if _, ok := p.ClaimKey(Claim{CardIndex: 5}); ok {
		t.Fatal("expected no key for an out-of-range card index")
	}
}
