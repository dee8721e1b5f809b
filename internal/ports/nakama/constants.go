package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable table.
	RpcQuickMatch = "quick_match"

	// RpcVoiceToken is the Nakama RPC id clients call to obtain a voice channel token.
	RpcVoiceToken = "voice_token"

	// MatchNameTombola is the authoritative match handler name registered with Nakama.
	MatchNameTombola = "tombola_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartMatch      int64 = 1
	OpMarkNumber      int64 = 2
	OpClaimPrize      int64 = 3
	OpRequestSnapshot int64 = 4

	// Server -> Client events
	OpPlayerJoined  int64 = 101
	OpPlayerLeft    int64 = 102
	OpMatchStarted  int64 = 103
	OpCardsDealt    int64 = 104 // sent privately
	OpNumberDrawn   int64 = 105
	OpNumberMarked  int64 = 106 // sent privately
	OpPrizeAwarded  int64 = 107
	OpClaimRejected int64 = 108 // sent privately
	OpMatchEnded    int64 = 109
	OpPoolSnapshot  int64 = 110 // reply to OpRequestSnapshot
	OpMatchError    int64 = 120 // sent privately
)
