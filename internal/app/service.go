package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tombola/internal/domain"
)

// Service contains tombola use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrAlreadyStarted   = errors.New("match already started")
	ErrNotPlaying       = errors.New("match not in playing phase")
	ErrTooFewPlayers    = errors.New("not enough players to start")
	ErrUnknownPlayer    = errors.New("player not found")
	ErrUnknownCard      = errors.New("card index out of range")
	ErrAutomatedPlayer  = errors.New("automated players mark for themselves")
	ErrNumberNotDrawn   = errors.New("number has not been drawn")
	ErrClaimNotEligible = errors.New("card does not qualify for the claimed prize")
)

// Participant describes a player joining a match.
type Participant struct {
	UserID      string
	DisplayName string
	Automated   bool
}

// CreateMatch builds a fresh lobby-phase game with a full number pool.
// stakePerCard is charged per cartella at settlement.
func (s *Service) CreateMatch(stakePerCard int64) *domain.Game {
	return &domain.Game{
		Phase:        domain.PhaseLobby,
		Pool:         domain.NewNumberPool(s.rng),
		Ledger:       domain.NewLedger(),
		StakePerCard: stakePerCard,
	}
}

// AddPlayer seats a participant and deals their cards. Cards are dealt on
// join so a player can review their cartelle before the first draw.
func (s *Service) AddPlayer(game *domain.Game, p Participant, cards int) (*domain.Player, []Event, error) {
	if game.Phase != domain.PhaseLobby {
		return nil, nil, ErrAlreadyStarted
	}
	if _, exists := game.PlayerByID(p.UserID); exists {
		return nil, nil, fmt.Errorf("player %s already seated", p.UserID)
	}
	if cards <= 0 {
		cards = DefaultCardsPerPlayer
	}

	player := &domain.Player{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Seat:        len(game.Players),
		Automated:   p.Automated,
	}
	for i := 0; i < cards; i++ {
		player.AddCard(domain.NewCard(fmt.Sprintf("%s/%d", p.UserID, i), s.rng))
	}
	game.Players = append(game.Players, player)

	views := make([]CardView, 0, len(player.Cards))
	for _, card := range player.Cards {
		views = append(views, NewCardView(card))
	}

	events := []Event{
		{
			Kind: EventPlayerJoined,
			Payload: PlayerJoinedPayload{
				UserID:      player.UserID,
				DisplayName: player.DisplayName,
				Seat:        player.Seat,
				Automated:   player.Automated,
				CardCount:   len(player.Cards),
			},
		},
		{
			Kind:       EventCardsDealt,
			Payload:    CardsDealtPayload{UserID: player.UserID, Cards: views},
			Recipients: []string{player.UserID},
		},
	}
	return player, events, nil
}

// RemovePlayer unseats a player. Only allowed in the lobby; mid-game leavers
// keep their cards in play so already-awarded prizes stay consistent.
func (s *Service) RemovePlayer(game *domain.Game, userID string) ([]Event, bool) {
	if game.Phase != domain.PhaseLobby {
		return nil, false
	}
	for i, player := range game.Players {
		if player.UserID != userID {
			continue
		}
		game.Players = append(game.Players[:i], game.Players[i+1:]...)
		for j := i; j < len(game.Players); j++ {
			game.Players[j].Seat = j
		}
		return []Event{{Kind: EventPlayerLeft, Payload: PlayerLeftPayload{UserID: userID}}}, true
	}
	return nil, false
}

// StartMatch transitions the game from lobby to playing.
func (s *Service) StartMatch(game *domain.Game) ([]Event, error) {
	if game.Phase != domain.PhaseLobby {
		return nil, ErrAlreadyStarted
	}
	if len(game.Players) < MinPlayersToStartMatch {
		return nil, ErrTooFewPlayers
	}

	game.Phase = domain.PhasePlaying
	return []Event{{
		Kind: EventMatchStarted,
		Payload: MatchStartedPayload{
			Phase:       game.Phase,
			PlayerCount: len(game.Players),
			CardCount:   game.TotalCards(),
		},
	}}, nil
}

// RunTurn executes one full turn: draw a number, let automated players mark
// and claim, arbitrate claims through the ledger in roster order, and close
// the match on a won tombola or a drained pool. The turn either completes in
// full or fails before any observable mutation.
func (s *Service) RunTurn(game *domain.Game) (domain.TurnResult, []Event, error) {
	if game.Phase != domain.PhasePlaying {
		return domain.TurnResult{}, nil, ErrNotPlaying
	}

	number, err := game.Pool.Draw()
	if err != nil {
		return domain.TurnResult{}, nil, err
	}
	game.TurnCount++

	result := domain.TurnResult{NumberDrawn: number}

	// Automated players daub the drawn number on every card they own.
	// Interactive players mark by explicit command.
	for _, player := range game.Players {
		if player.Automated {
			player.MarkAll(number)
		}
	}

	// Claim arbitration in roster order: everyone evaluates against the
	// awards as of the start of arbitration, then the first award of a key
	// wins and later same-turn attempts on it are recorded as unsuccessful.
	awarded := game.Ledger.AwardedKeys()
	for _, player := range game.Players {
		if !player.Automated {
			continue
		}
		claim := player.EvaluateClaim(awarded)
		if claim == nil {
			continue
		}
		key, ok := player.ClaimKey(*claim)
		if !ok {
			continue
		}
		granted := game.Ledger.Award(key, player.UserID) == domain.AwardGranted
		result.Claims = append(result.Claims, domain.ClaimResult{
			PlayerID: player.UserID,
			Claim:    *claim,
			Success:  granted,
		})
		if granted {
			result.NewPrizes = append(result.NewPrizes, domain.AwardedPrize{
				Key:       key,
				PlayerID:  player.UserID,
				CardIndex: claim.CardIndex,
				Rank:      claim.Rank,
				Row:       claim.Row,
			})
			if claim.Rank == domain.RankTombola {
				result.TombolaDetected = true
			}
		}
	}

	if result.TombolaDetected || game.Pool.CountAvailable() == 0 {
		game.Phase = domain.PhaseEnded
		result.MatchFinished = true
	}

	// The pending-claim slot must be empty outside the turn boundary.
	for _, player := range game.Players {
		if player.Automated {
			player.ClearPendingClaim()
		}
	}

	events := []Event{{
		Kind: EventNumberDrawn,
		Payload: NumberDrawnPayload{
			Number: number,
			Pool:   game.Pool.Snapshot(),
			Turn:   result,
		},
	}}
	for _, prize := range result.NewPrizes {
		winnerName := prize.PlayerID
		if winner, ok := game.PlayerByID(prize.PlayerID); ok {
			winnerName = winner.DisplayName
		}
		events = append(events, Event{
			Kind:    EventPrizeAwarded,
			Payload: PrizeAwardedPayload{Prize: prize, Winner: winnerName},
		})
	}
	if result.MatchFinished {
		events = append(events, Event{
			Kind:    EventMatchEnded,
			Payload: MatchEndedPayload{Summary: game.Summarize()},
		})
	}

	return result, events, nil
}

// MarkNumber marks a drawn number on an interactive player's card.
func (s *Service) MarkNumber(game *domain.Game, userID string, cardIndex, number int) (domain.MarkOutcome, []Event, error) {
	if game.Phase != domain.PhasePlaying {
		return "", nil, ErrNotPlaying
	}
	player, ok := game.PlayerByID(userID)
	if !ok {
		return "", nil, ErrUnknownPlayer
	}
	if player.Automated {
		return "", nil, ErrAutomatedPlayer
	}
	card := player.Card(cardIndex)
	if card == nil {
		return "", nil, ErrUnknownCard
	}
	if !game.Pool.IsDrawn(number) {
		return "", nil, ErrNumberNotDrawn
	}

	outcome := card.Mark(number)
	events := []Event{{
		Kind: EventNumberMarked,
		Payload: NumberMarkedPayload{
			UserID:    userID,
			CardIndex: cardIndex,
			Number:    number,
			Outcome:   outcome,
		},
		Recipients: []string{userID},
	}}
	return outcome, events, nil
}

// SubmitClaim arbitrates an interactive player's prize assertion. A claim
// that loses to an earlier award is a normal outcome (Success=false), not an
// error; a claim the card does not qualify for is rejected.
func (s *Service) SubmitClaim(game *domain.Game, userID string, cardIndex, row int, rank domain.Rank) (domain.ClaimResult, []Event, error) {
	if game.Phase != domain.PhasePlaying {
		return domain.ClaimResult{}, nil, ErrNotPlaying
	}
	player, ok := game.PlayerByID(userID)
	if !ok {
		return domain.ClaimResult{}, nil, ErrUnknownPlayer
	}
	card := player.Card(cardIndex)
	if card == nil {
		return domain.ClaimResult{}, nil, ErrUnknownCard
	}

	claim := domain.Claim{PlayerID: userID, CardIndex: cardIndex, Row: row, Rank: rank}
	if !claimEligible(card, row, rank) {
		return domain.ClaimResult{}, []Event{{
			Kind:       EventClaimRejected,
			Payload:    ClaimRejectedPayload{UserID: userID, Claim: claim, Reason: "not eligible"},
			Recipients: []string{userID},
		}}, ErrClaimNotEligible
	}

	key := card.PrizeKeyFor(row, rank)
	granted := game.Ledger.Award(key, userID) == domain.AwardGranted
	result := domain.ClaimResult{PlayerID: userID, Claim: claim, Success: granted}

	var events []Event
	if granted {
		prize := domain.AwardedPrize{
			Key:       key,
			PlayerID:  userID,
			CardIndex: cardIndex,
			Rank:      rank,
			Row:       row,
		}
		events = append(events, Event{
			Kind:    EventPrizeAwarded,
			Payload: PrizeAwardedPayload{Prize: prize, Winner: player.DisplayName},
		})
		if rank == domain.RankTombola {
			game.Phase = domain.PhaseEnded
			events = append(events, Event{
				Kind:    EventMatchEnded,
				Payload: MatchEndedPayload{Summary: game.Summarize()},
			})
		}
	} else {
		events = append(events, Event{
			Kind:       EventClaimRejected,
			Payload:    ClaimRejectedPayload{UserID: userID, Claim: claim, Reason: "already awarded"},
			Recipients: []string{userID},
		})
	}
	return result, events, nil
}

// claimEligible checks the card actually qualifies for the asserted rank.
// A row with more marks than the rank requires still qualifies for it.
func claimEligible(card *domain.Card, row int, rank domain.Rank) bool {
	if rank == domain.RankTombola {
		if row != domain.TombolaRow {
			return false
		}
		_, ok := card.CardPrizeRank()
		return ok
	}
	switch rank {
	case domain.RankAmbo, domain.RankTerno, domain.RankQuaterna, domain.RankCinquina:
	default:
		return false
	}
	if row < 0 || row >= domain.CardRows {
		return false
	}
	return card.RowMarkedCount(row) >= int(rank)
}
