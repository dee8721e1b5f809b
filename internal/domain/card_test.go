package domain

import (
	"math/rand"
	"testing"
)

func TestNewCardLayoutInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		card := NewCard("c", rng)
		grid := card.Grid()

		seen := make(map[int]bool, NumbersPerCard)
		for row := 0; row < CardRows; row++ {
			if got := len(card.Row(row)); got != NumbersPerRow {
				t.Fatalf("seed %d: row %d has %d numbers, want %d", seed, row, got, NumbersPerRow)
			}
		}
		for col := 0; col < CardColumns; col++ {
			low, high := columnRange(col)
			prev := 0
			count := 0
			for row := 0; row < CardRows; row++ {
				n := grid[row][col]
				if n == 0 {
					continue
				}
				count++
				if n < low || n > high {
					t.Fatalf("seed %d: %d in column %d, want %d..%d", seed, n, col, low, high)
				}
				if n <= prev {
					t.Fatalf("seed %d: column %d not ascending: %d after %d", seed, col, n, prev)
				}
				prev = n
				if seen[n] {
					t.Fatalf("seed %d: duplicate number %d", seed, n)
				}
				seen[n] = true
			}
			if count > CardRows {
				t.Fatalf("seed %d: column %d holds %d numbers", seed, col, count)
			}
		}
		if len(seen) != NumbersPerCard {
			t.Fatalf("seed %d: card holds %d numbers, want %d", seed, len(seen), NumbersPerCard)
		}
	}
}

func TestCardMarkOutcomes(t *testing.T) {
	card := NewCard("c", rand.New(rand.NewSource(3)))
	present := card.Numbers()[0]
	absent := 0
	for n := 1; n <= TotalNumbers; n++ {
		if !card.Contains(n) {
			absent = n
			break
		}
	}

	tests := []struct {
		name string
		n    int
		want MarkOutcome
	}{
		{"first mark", present, MarkApplied},
		{"repeat mark", present, MarkAlreadyMarked},
		{"absent number", absent, MarkNotPresent},
		{"out of range", 91, MarkNotPresent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := card.Mark(tt.n); got != tt.want {
				t.Errorf("Mark(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}

	if !card.IsMarked(present) {
		t.Errorf("expected %d marked", present)
	}
	if card.IsMarked(absent) {
		t.Errorf("did not expect %d marked", absent)
	}
	if got := len(card.MarkedNumbers()); got != 1 {
		t.Errorf("marked count = %d, want 1", got)
	}
	if got := len(card.UnmarkedNumbers()); got != NumbersPerCard-1 {
		t.Errorf("unmarked count = %d, want %d", got, NumbersPerCard-1)
	}
}

func TestRowPrizeRankProgression(t *testing.T) {
	card := NewCard("c", rand.New(rand.NewSource(9)))
	row := card.Row(0)

	wantByCount := map[int]struct {
		rank Rank
		ok   bool
	}{
		1: {0, false},
		2: {RankAmbo, true},
		3: {RankTerno, true},
		4: {RankQuaterna, true},
		5: {RankCinquina, true},
	}

	for i, n := range row {
		card.Mark(n)
		want := wantByCount[i+1]
		rank, ok := card.RowPrizeRank(0)
		if ok != want.ok || rank != want.rank {
			t.Fatalf("after %d marks: rank=(%v, %v), want (%v, %v)", i+1, rank, ok, want.rank, want.ok)
		}
	}

	if _, ok := card.RowPrizeRank(3); ok {
		t.Error("expected no rank for an invalid row")
	}
	if _, ok := card.CardPrizeRank(); ok {
		t.Error("one full row must not yield tombola")
	}
}

func TestCardPrizeRankTombola(t *testing.T) {
	card := NewCard("c", rand.New(rand.NewSource(11)))
	for _, n := range card.Numbers() {
		card.Mark(n)
	}
	rank, ok := card.CardPrizeRank()
	if !ok || rank != RankTombola {
		t.Fatalf("CardPrizeRank = (%v, %v), want (RankTombola, true)", rank, ok)
	}
}

func TestBestAvailableClaim(t *testing.T) {
	newCardWithMarks := func(markRows ...int) *Card {
		card := NewCard("c", rand.New(rand.NewSource(21)))
		for _, row := range markRows {
			for _, n := range card.Row(row) {
				card.Mark(n)
			}
		}
		return card
	}

	t.Run("no marks means no claim", func(t *testing.T) {
		card := newCardWithMarks()
		if _, ok := card.BestAvailableClaim(nil); ok {
			t.Fatal("expected no claim")
		}
	})

	t.Run("lowest row wins a rank tie", func(t *testing.T) {
		card := NewCard("c", rand.New(rand.NewSource(21)))
		card.Mark(card.Row(1)[0])
		card.Mark(card.Row(1)[1])
		card.Mark(card.Row(2)[0])
		card.Mark(card.Row(2)[1])
		claim, ok := card.BestAvailableClaim(nil)
		if !ok || claim.Row != 1 || claim.Rank != RankAmbo {
			t.Fatalf("claim = (%+v, %v), want row 1 ambo", claim, ok)
		}
	})

	t.Run("awarded keys are skipped", func(t *testing.T) {
		card := newCardWithMarks(0)
		awarded := map[PrizeKey]bool{card.PrizeKeyFor(0, RankCinquina): true}
		if _, ok := card.BestAvailableClaim(awarded); ok {
			t.Fatal("expected no claim once the row's rank is taken")
		}
	})

	t.Run("higher rank beats lower row", func(t *testing.T) {
		card := newCardWithMarks(2)
		card.Mark(card.Row(0)[0])
		card.Mark(card.Row(0)[1])
		claim, ok := card.BestAvailableClaim(nil)
		if !ok || claim.Row != 2 || claim.Rank != RankCinquina {
			t.Fatalf("claim = (%+v, %v), want row 2 cinquina", claim, ok)
		}
	})

	t.Run("tombola outranks everything", func(t *testing.T) {
		card := newCardWithMarks(0, 1, 2)
		claim, ok := card.BestAvailableClaim(nil)
		if !ok || claim.Row != TombolaRow || claim.Rank != RankTombola {
			t.Fatalf("claim = (%+v, %v), want tombola", claim, ok)
		}
	})

	t.Run("awarded tombola falls back to rows", func(t *testing.T) {
		card := newCardWithMarks(0, 1, 2)
		awarded := map[PrizeKey]bool{card.PrizeKeyFor(TombolaRow, RankTombola): true}
		claim, ok := card.BestAvailableClaim(awarded)
		if !ok || claim.Row != 0 || claim.Rank != RankCinquina {
			t.Fatalf("claim = (%+v, %v), want row 0 cinquina", claim, ok)
		}
	})
}
