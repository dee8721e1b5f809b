package domain

// Phase represents the lifecycle stage of a tombola match. Transitions are
// one-directional: lobby -> playing -> ended.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active state where numbers are being drawn.
	PhasePlaying Phase = "playing"
	// PhaseEnded is terminal: the pool ran dry or a tombola was won.
	PhaseEnded Phase = "ended"
)

// Game holds authoritative state for a tombola match instance.
type Game struct {
	Phase Phase

	Pool    *NumberPool
	Players []*Player // roster order; arbitration iterates in this order
	Ledger  *Ledger

	StakePerCard int64
	TurnCount    int
}

// ClaimResult records one arbitrated claim of a turn, in submission order.
// Success=false is the normal already-awarded outcome, not a failure.
type ClaimResult struct {
	PlayerID string `json:"player_id"`
	Claim    Claim  `json:"claim"`
	Success  bool   `json:"success"`
}

// AwardedPrize describes a prize granted during a turn.
type AwardedPrize struct {
	Key       PrizeKey `json:"key"`
	PlayerID  string   `json:"player_id"`
	CardIndex int      `json:"card_index"`
	Rank      Rank     `json:"rank"`
	Row       int      `json:"row"`
}

// TurnResult is the structured outcome of a single turn, consumed by the
// boundary layer to decide whether to keep prompting.
type TurnResult struct {
	NumberDrawn     int            `json:"number_drawn"`
	Claims          []ClaimResult  `json:"claims"`
	NewPrizes       []AwardedPrize `json:"new_prizes"`
	TombolaDetected bool           `json:"tombola_detected"`
	MatchFinished   bool           `json:"match_finished"`
}

// PlayerByID returns the roster player with the given user id.
func (g *Game) PlayerByID(userID string) (*Player, bool) {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return nil, false
}

// TotalCards returns how many cards are in play.
func (g *Game) TotalCards() int {
	n := 0
	for _, p := range g.Players {
		n += len(p.Cards)
	}
	return n
}

// TombolaWinner returns the player who won the whole-card prize, if anyone.
func (g *Game) TombolaWinner() (*Player, bool) {
	for _, p := range g.Players {
		for _, card := range p.Cards {
			if winnerID, ok := g.Ledger.Winner(card.PrizeKeyFor(TombolaRow, RankTombola)); ok {
				winner, found := g.PlayerByID(winnerID)
				return winner, found
			}
		}
	}
	return nil, false
}

// Summary is the synthesized end-of-match report.
type Summary struct {
	WinnerID      string `json:"winner_id"`
	WinnerName    string `json:"winner_name"`
	TotalDraws    int    `json:"total_draws"`
	PrizesAwarded int    `json:"prizes_awarded"`
}

// Summarize derives the end-of-match summary from pool, ledger and roster.
func (g *Game) Summarize() Summary {
	s := Summary{
		TotalDraws:    g.Pool.CountDrawn(),
		PrizesAwarded: g.Ledger.Count(),
	}
	if winner, ok := g.TombolaWinner(); ok {
		s.WinnerID = winner.UserID
		s.WinnerName = winner.DisplayName
	}
	return s
}

// PayoutSchedule maps prize ranks to their percentage share of the pot.
// Shares may sum below 100; the remainder is the house cut.
type PayoutSchedule map[Rank]int64

// Settlement captures the balance changes produced by a finished match.
type Settlement struct {
	Pot            int64
	BalanceChanges map[string]int64
}

// CalculateSettlement charges every player their card stakes and splits each
// rank's pot share equally among that rank's prize winners. Shares of ranks
// nobody won stay in the house.
func (g *Game) CalculateSettlement(schedule PayoutSchedule) Settlement {
	changes := make(map[string]int64, len(g.Players))

	var pot int64
	for _, p := range g.Players {
		stake := g.StakePerCard * int64(len(p.Cards))
		changes[p.UserID] -= stake
		pot += stake
	}

	winnersByRank := make(map[Rank][]string)
	for key, winnerID := range g.Ledger.All() {
		winnersByRank[key.Rank] = append(winnersByRank[key.Rank], winnerID)
	}

	for rank, share := range schedule {
		winners := winnersByRank[rank]
		if len(winners) == 0 {
			continue
		}
		perWinner := pot * share / 100 / int64(len(winners))
		for _, winnerID := range winners {
			changes[winnerID] += perWinner
		}
	}

	return Settlement{Pot: pot, BalanceChanges: changes}
}
