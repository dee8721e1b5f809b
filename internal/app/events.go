package app

import "tombola/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined  EventKind = "player_joined"
	EventPlayerLeft    EventKind = "player_left"
	EventCardsDealt    EventKind = "cards_dealt"
	EventMatchStarted  EventKind = "match_started"
	EventNumberDrawn   EventKind = "number_drawn"
	EventNumberMarked  EventKind = "number_marked"
	EventPrizeAwarded  EventKind = "prize_awarded"
	EventClaimRejected EventKind = "claim_rejected"
	EventMatchEnded    EventKind = "match_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Seat        int    `json:"seat"`
	Automated   bool   `json:"automated"`
	CardCount   int    `json:"card_count"`
}

type PlayerLeftPayload struct {
	UserID string `json:"user_id"`
}

// CardView is the read-only card snapshot a renderer vocalizes.
type CardView struct {
	CardID   string  `json:"card_id"`
	Grid     [][]int `json:"grid"` // 3x9, 0 for empty cells
	Marked   []int   `json:"marked"`
	Unmarked []int   `json:"unmarked"`
}

type CardsDealtPayload struct {
	UserID string     `json:"user_id"`
	Cards  []CardView `json:"cards"`
}

type MatchStartedPayload struct {
	Phase       domain.Phase `json:"phase"`
	PlayerCount int          `json:"player_count"`
	CardCount   int          `json:"card_count"`
}

type NumberDrawnPayload struct {
	Number int                 `json:"number"`
	Pool   domain.PoolSnapshot `json:"pool"`
	Turn   domain.TurnResult   `json:"turn"`
}

type NumberMarkedPayload struct {
	UserID    string             `json:"user_id"`
	CardIndex int                `json:"card_index"`
	Number    int                `json:"number"`
	Outcome   domain.MarkOutcome `json:"outcome"`
}

type PrizeAwardedPayload struct {
	Prize  domain.AwardedPrize `json:"prize"`
	Winner string              `json:"winner"`
}

type ClaimRejectedPayload struct {
	UserID string       `json:"user_id"`
	Claim  domain.Claim `json:"claim"`
	Reason string       `json:"reason"`
}

type MatchEndedPayload struct {
	Summary domain.Summary `json:"summary"`
}

// NewCardView builds the renderer-facing view of a card.
func NewCardView(card *domain.Card) CardView {
	grid := card.Grid()
	rows := make([][]int, domain.CardRows)
	for i := range grid {
		rows[i] = append([]int(nil), grid[i][:]...)
	}
	return CardView{
		CardID:   card.ID(),
		Grid:     rows,
		Marked:   card.MarkedNumbers(),
		Unmarked: card.UnmarkedNumbers(),
	}
}
