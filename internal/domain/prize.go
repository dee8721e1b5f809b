package domain

// Rank identifies a prize tier. The numeric value is the count of marked
// numbers that earns it, which also gives the tiers their natural ordering.
type Rank int

const (
	RankAmbo     Rank = 2
	RankTerno    Rank = 3
	RankQuaterna Rank = 4
	RankCinquina Rank = 5
	RankTombola  Rank = 15
)

// rankNames maps ranks to the traditional Italian prize names.
var rankNames = map[Rank]string{
	RankAmbo:     "ambo",
	RankTerno:    "terno",
	RankQuaterna: "quaterna",
	RankCinquina: "cinquina",
	RankTombola:  "tombola",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "unknown"
}

// RowRankForCount maps a row's marked-number count to its prize rank.
// Counts below 2 earn nothing.
func RowRankForCount(count int) (Rank, bool) {
	switch count {
	case 2:
		return RankAmbo, true
	case 3:
		return RankTerno, true
	case 4:
		return RankQuaterna, true
	case 5:
		return RankCinquina, true
	}
	return 0, false
}

// TombolaRow is the Row value of a whole-card prize key.
const TombolaRow = -1

// PrizeKey identifies a single awardable prize: a rank on a specific row of a
// specific card, or the whole-card tombola (Row == TombolaRow). Each key is
// awarded at most once per match.
type PrizeKey struct {
	CardID string
	Row    int
	Rank   Rank
}

// Claim is a candidate prize assertion by a player, not yet validated against
// the ledger.
type Claim struct {
	PlayerID  string
	CardIndex int
	Row       int // TombolaRow for a whole-card claim
	Rank      Rank
}

// AwardOutcome is the result of a ledger award attempt.
type AwardOutcome string

const (
	AwardGranted AwardOutcome = "granted"
	// AwardAlreadyTaken is a normal arbitration outcome, never an error.
	AwardAlreadyTaken AwardOutcome = "already_awarded"
)

// Ledger is the authoritative record of awarded prizes. It grows monotonically
// during a match and is cleared only by Reset.
type Ledger struct {
	awarded map[PrizeKey]string
}

// NewLedger constructs an empty prize ledger.
func NewLedger() *Ledger {
	return &Ledger{awarded: make(map[PrizeKey]string)}
}

// Award grants the key to playerID unless it was already granted. The
// check-then-set is a single step; re-entrant callers cannot double-award.
func (l *Ledger) Award(key PrizeKey, playerID string) AwardOutcome {
	if _, taken := l.awarded[key]; taken {
		return AwardAlreadyTaken
	}
	l.awarded[key] = playerID
	return AwardGranted
}

// IsAwarded reports whether the key has been granted.
func (l *Ledger) IsAwarded(key PrizeKey) bool {
	_, ok := l.awarded[key]
	return ok
}

// Winner returns the player a key was granted to.
func (l *Ledger) Winner(key PrizeKey) (string, bool) {
	playerID, ok := l.awarded[key]
	return playerID, ok
}

// AwardedKeys returns a copy of the granted key set, safe to hand to claim
// evaluation.
func (l *Ledger) AwardedKeys() map[PrizeKey]bool {
	keys := make(map[PrizeKey]bool, len(l.awarded))
	for key := range l.awarded {
		keys[key] = true
	}
	return keys
}

// All returns a copy of the full key-to-winner mapping.
func (l *Ledger) All() map[PrizeKey]string {
	all := make(map[PrizeKey]string, len(l.awarded))
	for key, playerID := range l.awarded {
		all[key] = playerID
	}
	return all
}

// Count returns how many prizes have been granted.
func (l *Ledger) Count() int {
	return len(l.awarded)
}

// Reset clears all granted prizes.
func (l *Ledger) Reset() {
	l.awarded = make(map[PrizeKey]string)
}
