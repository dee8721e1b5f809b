package domain

import (
	"math/rand"
	"sort"
)

const (
	// CardRows and CardColumns give the fixed 3x9 cartella layout.
	CardRows    = 3
	CardColumns = 9
	// NumbersPerRow is the count of filled cells on every row.
	NumbersPerRow = 5
	// NumbersPerCard is the total count of numbers on a cartella.
	NumbersPerCard = CardRows * NumbersPerRow
)

// MarkOutcome is the result of marking a number on a card.
type MarkOutcome string

const (
	MarkApplied       MarkOutcome = "marked"
	MarkAlreadyMarked MarkOutcome = "already_marked"
	MarkNotPresent    MarkOutcome = "not_present"
)

// Card is a player's fixed 3x9 grid of 15 numbers. The placement is decided at
// construction and never changes; only the marked set mutates. Whether a
// number was actually drawn is the caller's responsibility.
type Card struct {
	id     string
	grid   [CardRows][CardColumns]int // 0 means an empty cell
	marked map[int]bool
}

// columnRange returns the inclusive number range for a grid column. Column 0
// holds 1..10, column 8 holds 81..90.
func columnRange(col int) (int, int) {
	return col*10 + 1, col*10 + 10
}

// NewCard generates a cartella: every row holds exactly 5 numbers, each column
// holds only numbers from its own decade sorted top-to-bottom, and all 15
// numbers are distinct by construction.
func NewCard(id string, rng *rand.Rand) *Card {
	c := &Card{id: id, marked: make(map[int]bool, NumbersPerCard)}

	// Pick 5 columns per row; with 3 rows no column can exceed 3 cells.
	colCounts := [CardColumns]int{}
	rowCols := [CardRows][]int{}
	for row := 0; row < CardRows; row++ {
		cols := rng.Perm(CardColumns)[:NumbersPerRow]
		sort.Ints(cols)
		rowCols[row] = cols
		for _, col := range cols {
			colCounts[col]++
		}
	}

	// Sample each occupied column's numbers from its decade and place them
	// ascending down the column.
	for col := 0; col < CardColumns; col++ {
		if colCounts[col] == 0 {
			continue
		}
		low, _ := columnRange(col)
		picks := rng.Perm(10)[:colCounts[col]]
		sort.Ints(picks)
		i := 0
		for row := 0; row < CardRows; row++ {
			if containsInt(rowCols[row], col) {
				c.grid[row][col] = low + picks[i]
				i++
			}
		}
	}

	return c
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// ID returns the card identity used in prize keys.
func (c *Card) ID() string {
	return c.id
}

// Grid returns a copy of the 3x9 placement; 0 marks an empty cell.
func (c *Card) Grid() [CardRows][CardColumns]int {
	return c.grid
}

// Row returns the numbers on a row left-to-right, or nil for an invalid index.
func (c *Card) Row(row int) []int {
	if row < 0 || row >= CardRows {
		return nil
	}
	numbers := make([]int, 0, NumbersPerRow)
	for col := 0; col < CardColumns; col++ {
		if n := c.grid[row][col]; n != 0 {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// Numbers returns all 15 numbers on the card in ascending order.
func (c *Card) Numbers() []int {
	numbers := make([]int, 0, NumbersPerCard)
	for row := 0; row < CardRows; row++ {
		numbers = append(numbers, c.Row(row)...)
	}
	sort.Ints(numbers)
	return numbers
}

// Contains reports whether n is on the card.
func (c *Card) Contains(n int) bool {
	_, _, ok := c.locate(n)
	return ok
}

func (c *Card) locate(n int) (int, int, bool) {
	if n < 1 || n > TotalNumbers {
		return 0, 0, false
	}
	col := (n - 1) / 10
	for row := 0; row < CardRows; row++ {
		if c.grid[row][col] == n {
			return row, col, true
		}
	}
	return 0, 0, false
}

// Mark marks n if it is present and unmarked. Re-marking and marking an
// absent number leave the card unchanged and report what happened.
func (c *Card) Mark(n int) MarkOutcome {
	if !c.Contains(n) {
		return MarkNotPresent
	}
	if c.marked[n] {
		return MarkAlreadyMarked
	}
	c.marked[n] = true
	return MarkApplied
}

// IsMarked reports whether n has been marked on this card.
func (c *Card) IsMarked(n int) bool {
	return c.marked[n]
}

// MarkedNumbers returns the marked numbers in ascending order.
func (c *Card) MarkedNumbers() []int {
	numbers := make([]int, 0, len(c.marked))
	for n := range c.marked {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// UnmarkedNumbers returns the numbers still waiting to be drawn, ascending.
func (c *Card) UnmarkedNumbers() []int {
	numbers := make([]int, 0, NumbersPerCard-len(c.marked))
	for _, n := range c.Numbers() {
		if !c.marked[n] {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// RowMarkedCount returns how many numbers are marked on a row.
func (c *Card) RowMarkedCount(row int) int {
	count := 0
	for _, n := range c.Row(row) {
		if c.marked[n] {
			count++
		}
	}
	return count
}

// RowPrizeRank returns the prize rank a row's marked count currently earns.
func (c *Card) RowPrizeRank(row int) (Rank, bool) {
	if row < 0 || row >= CardRows {
		return 0, false
	}
	return RowRankForCount(c.RowMarkedCount(row))
}

// CardPrizeRank returns RankTombola once all 15 numbers are marked.
func (c *Card) CardPrizeRank() (Rank, bool) {
	if len(c.marked) == NumbersPerCard {
		return RankTombola, true
	}
	return 0, false
}

// PrizeKeyFor builds the ledger key for a rank on this card.
func (c *Card) PrizeKeyFor(row int, rank Rank) PrizeKey {
	return PrizeKey{CardID: c.id, Row: row, Rank: rank}
}

// BestAvailableClaim returns the highest-rank claim this card is currently
// eligible for that is not in awarded, tie-broken by lowest row index.
// Tombola is checked first. Pure query; PlayerID/CardIndex are left for the
// owner to fill in.
func (c *Card) BestAvailableClaim(awarded map[PrizeKey]bool) (Claim, bool) {
	if rank, ok := c.CardPrizeRank(); ok && !awarded[c.PrizeKeyFor(TombolaRow, rank)] {
		return Claim{Row: TombolaRow, Rank: rank}, true
	}

	best := Claim{}
	found := false
	for row := 0; row < CardRows; row++ {
		rank, ok := c.RowPrizeRank(row)
		if !ok || awarded[c.PrizeKeyFor(row, rank)] {
			continue
		}
		if !found || rank > best.Rank {
			best = Claim{Row: row, Rank: rank}
			found = true
		}
	}
	return best, found
}
