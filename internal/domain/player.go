package domain

// Player holds the roster state for one participant. Automated is a
// capability flag: automated players self-evaluate claims every turn,
// interactive players mark and claim by explicit command.
type Player struct {
	UserID      string
	DisplayName string
	Seat        int
	Automated   bool
	Cards       []*Card

	// pendingClaim is only non-nil between evaluation and the end of the
	// same turn. Observers outside the turn boundary always see nil.
	pendingClaim *Claim
}

// AddCard appends a card to the player's ordered card list.
func (p *Player) AddCard(card *Card) {
	p.Cards = append(p.Cards, card)
}

// Card returns the player's card at index, or nil when out of range.
func (p *Player) Card(index int) *Card {
	if index < 0 || index >= len(p.Cards) {
		return nil
	}
	return p.Cards[index]
}

// EvaluateClaim picks the globally best eligible claim across all owned cards:
// highest rank first, then lowest card index, then lowest row. The result is
// stored as the pending claim for arbitration and returned; nil means nothing
// to claim this turn.
func (p *Player) EvaluateClaim(awarded map[PrizeKey]bool) *Claim {
	p.pendingClaim = nil
	for i, card := range p.Cards {
		candidate, ok := card.BestAvailableClaim(awarded)
		if !ok {
			continue
		}
		candidate.PlayerID = p.UserID
		candidate.CardIndex = i
		if p.pendingClaim == nil || candidate.Rank > p.pendingClaim.Rank {
			claim := candidate
			p.pendingClaim = &claim
		}
	}
	return p.pendingClaim
}

// PendingClaim returns the claim produced during the current turn, if any.
func (p *Player) PendingClaim() *Claim {
	return p.pendingClaim
}

// ClearPendingClaim empties the claim slot at the turn boundary.
func (p *Player) ClearPendingClaim() {
	p.pendingClaim = nil
}

// MarkAll marks n on every card the player owns.
func (p *Player) MarkAll(n int) {
	for _, card := range p.Cards {
		card.Mark(n)
	}
}

// ClaimKey resolves a claim against this player's cards into its ledger key.
func (p *Player) ClaimKey(claim Claim) (PrizeKey, bool) {
	card := p.Card(claim.CardIndex)
	if card == nil {
		return PrizeKey{}, false
	}
	return card.PrizeKeyFor(claim.Row, claim.Rank), true
}
