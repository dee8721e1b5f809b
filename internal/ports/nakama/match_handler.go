package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"tombola/internal/app"
	"tombola/internal/bot"
	"tombola/internal/config"
	"tombola/internal/domain"
	"tombola/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// TableSeats is the capacity of one tombola table.
const TableSeats = 6

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [TableSeats]string          `json:"seats"`      // user IDs, "" means the seat is empty
	OwnerSeat int                         `json:"owner_seat"` // seat index of the table owner
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"`

	BotsEnabled          bool  `json:"bots_enabled"`
	BotMinPause          int   `json:"bot_min_pause"`           // min seconds the table pauses on a bot claim
	BotMaxPause          int   `json:"bot_max_pause"`           // max seconds the table pauses on a bot claim
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`     // seconds before bots fill a solo lobby
	DrawInterval         int   `json:"draw_interval"`           // seconds between automatic draws
	NextDrawTick         int64 `json:"next_draw_tick"`          // tick of the next scheduled draw
	LastSinglePlayerTick int64 `json:"last_single_player_tick"` // tick when a single human started waiting

	Bots    map[string]*bot.Agent `json:"-"`
	Economy ports.EconomyPort     `json:"-"`
	Settled bool                  `json:"settled"` // wallets updated for the current game

	rng *rand.Rand
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return TableSeats - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans at the table.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

// seatOf returns the seat index of a user, or -1.
func seatOf(seats []string, userId string) int {
	for i, seatUserId := range seats {
		if seatUserId == userId {
			return i
		}
	}
	return -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing tombola table.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	service := app.NewService(nil)
	state := &MatchState{
		Presences: make(map[string]runtime.Presence),
		App:       service,
		Game:      service.CreateMatch(config.GetStakePerCard("")),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
		Economy:   NewNakamaEconomyAdapter(nk),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Pacing and bot behaviour come from the runtime environment.
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["tombola_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["tombola_bot_min_pause_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinPause = i
		}
	}
	if val, ok := env["tombola_bot_max_pause_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxPause = i
		}
	}
	if val, ok := env["tombola_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if val, ok := env["tombola_draw_interval_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.DrawInterval = i
		}
	}

	if state.BotMinPause == 0 {
		state.BotMinPause = 1
	}
	if state.BotMaxPause == 0 {
		state.BotMaxPause = 3
	}
	if state.BotAutoFillDelay == 0 {
		if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
			state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
		} else {
			state.BotAutoFillDelay = 5
		}
	}
	if state.DrawInterval == 0 {
		if cfg := config.GetGameConfig(); cfg != nil && cfg.DrawIntervalSeconds > 0 {
			state.DrawInterval = cfg.DrawIntervalSeconds
		} else {
			state.DrawInterval = 4
		}
	}

	label, err := marshalLabel(domain.ComputeLabel(state.Game, 0, TableSeats))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // turn pacing is computed in seconds
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join when there is an empty seat or a bot to replace pre-game.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game.Phase == domain.PhaseLobby {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Table full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := -1
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = i
				break
			}
		}

		if assigned < 0 && matchState.Game.Phase == domain.PhaseLobby {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.App.RemovePlayer(matchState.Game, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = i
					break
				}
			}
		}

		if assigned < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}

		// Mid-game joiners spectate; the roster is fixed once play starts.
		if matchState.Game.Phase != domain.PhaseLobby {
			continue
		}

		participant := app.Participant{
			UserID:      p.GetUserId(),
			DisplayName: p.GetUsername(),
		}
		_, events, err := matchState.App.AddPlayer(matchState.Game, participant, config.GetCardsPerPlayer())
		if err != nil {
			logger.Error("MatchJoin: Failed to seat %s: %v", p.GetUserId(), err)
			continue
		}
		for _, ev := range events {
			mh.broadcastEvent(matchState, dispatcher, logger, ev)
		}
	}

	// Ensure the owner seat is held by a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if i := seatOf(matchState.Seats[:], p.GetUserId()); i >= 0 {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
		}

		// Lobby leavers give their cards back; mid-game leavers stay in
		// the roster so already-awarded prizes remain consistent.
		if events, removed := matchState.App.RemovePlayer(matchState.Game, p.GetUserId()); removed {
			for _, ev := range events {
				mh.broadcastEvent(matchState, dispatcher, logger, ev)
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating table with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartMatch:
			mh.handleStartMatch(ctx, matchState, dispatcher, logger, msg)
		case OpMarkNumber:
			mh.handleMarkNumber(ctx, matchState, dispatcher, logger, msg)
		case OpClaimPrize:
			mh.handleClaimPrize(ctx, matchState, dispatcher, logger, msg)
		case OpRequestSnapshot:
			mh.handleRequestSnapshot(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.autoFillBots(matchState, dispatcher, logger)
	}

	// The caller draws on a fixed cadence while the game is running.
	if matchState.Game.Phase == domain.PhasePlaying && tick >= matchState.NextDrawTick {
		mh.runTurn(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// autoFillBots seats bot players after a lone human has waited long enough.
func (mh *matchHandler) autoFillBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game.Phase != domain.PhaseLobby {
		return
	}

	if state.GetHumanPlayerCount() != 1 {
		state.LastSinglePlayerTick = 0
		return
	}

	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		logger.Debug("autoFillBots: Single player detected, starting auto-fill timer.")
		return
	}
	if state.Tick-state.LastSinglePlayerTick < int64(state.BotAutoFillDelay) {
		return
	}

	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		botID := identity.UserID

		agent, err := bot.NewAgent(botID)
		if err != nil {
			logger.Error("autoFillBots: Failed to create bot agent for %s: %v", botID, err)
			continue
		}

		participant := app.Participant{
			UserID:      botID,
			DisplayName: agent.Name,
			Automated:   true,
		}
		_, events, err := state.App.AddPlayer(state.Game, participant, agent.CardCount())
		if err != nil {
			logger.Error("autoFillBots: Failed to seat bot %s: %v", botID, err)
			continue
		}

		state.Seats[i] = botID
		state.Bots[botID] = agent
		for _, ev := range events {
			mh.broadcastEvent(state, dispatcher, logger, ev)
		}

		logger.Info("autoFillBots: Added bot %s (%s) to seat %d", agent.Name, botID, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
	}
	state.LastSinglePlayerTick = 0
}

// runTurn executes one draw and schedules the next one, pausing longer when a
// bot claimed so the prize announcement is not buried.
func (mh *matchHandler) runTurn(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	result, events, err := state.App.RunTurn(state.Game)
	if err != nil {
		logger.Error("runTurn: %v", err)
		state.NextDrawTick = state.Tick + int64(state.DrawInterval)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}

	delay := state.DrawInterval
	for _, claim := range result.Claims {
		agent, ok := state.Bots[claim.PlayerID]
		if !ok || !claim.Success {
			continue
		}
		if pause := agent.ClaimPause(state.rng, state.BotMinPause, state.BotMaxPause); pause > delay-state.DrawInterval {
			delay = state.DrawInterval + pause
		}
	}
	state.NextDrawTick = state.Tick + int64(delay)

	if result.MatchFinished {
		mh.settle(ctx, state, logger)
		mh.updateLabel(state, dispatcher, logger)
	}
}

func (mh *matchHandler) handleStartMatch(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatOf(state.Seats[:], senderID)

	logger.Info("StartMatch: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartMatch: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}

	// A finished game is rebuilt from the current seats before restarting.
	if state.Game.Phase == domain.PhaseEnded {
		if err := mh.rebuildLobby(state, dispatcher, logger); err != nil {
			mh.sendError(state, dispatcher, logger, senderID, 500, err.Error())
			return
		}
	}

	events, err := state.App.StartMatch(state.Game)
	if err != nil {
		logger.Warn("StartMatch: Failed to start: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.NextDrawTick = state.Tick + int64(state.DrawInterval)
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}

	logger.Info("StartMatch: Match started with %d players.", len(state.Game.Players))
}

// rebuildLobby replaces a finished game with a fresh lobby holding the same
// seats, dealing new cartelle to everyone.
func (mh *matchHandler) rebuildLobby(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) error {
	state.Game = state.App.CreateMatch(config.GetStakePerCard(""))
	state.Settled = false

	for _, seatUserId := range state.Seats {
		if seatUserId == "" {
			continue
		}

		participant := app.Participant{UserID: seatUserId}
		cards := config.GetCardsPerPlayer()
		if agent, ok := state.Bots[seatUserId]; ok {
			participant.DisplayName = agent.Name
			participant.Automated = true
			cards = agent.CardCount()
		} else if p, ok := state.Presences[seatUserId]; ok {
			participant.DisplayName = p.GetUsername()
		}

		_, events, err := state.App.AddPlayer(state.Game, participant, cards)
		if err != nil {
			return err
		}
		for _, ev := range events {
			mh.broadcastEvent(state, dispatcher, logger, ev)
		}
	}
	return nil
}

type markNumberRequest struct {
	CardIndex int `json:"card_index"`
	Number    int `json:"number"`
}

func (mh *matchHandler) handleMarkNumber(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	var request markNumberRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleMarkNumber: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid mark request")
		return
	}

	outcome, events, err := state.App.MarkNumber(state.Game, senderID, request.CardIndex, request.Number)
	if err != nil {
		logger.Warn("handleMarkNumber: User %s failed to mark %d on card %d: %v", senderID, request.Number, request.CardIndex, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	logger.Debug("handleMarkNumber: User %s marked %d on card %d: %s", senderID, request.Number, request.CardIndex, outcome)
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

type claimPrizeRequest struct {
	CardIndex int `json:"card_index"`
	Row       int `json:"row"` // -1 for a whole-card tombola claim
	Rank      int `json:"rank"`
}

func (mh *matchHandler) handleClaimPrize(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	var request claimPrizeRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleClaimPrize: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid claim request")
		return
	}

	result, events, err := state.App.SubmitClaim(state.Game, senderID, request.CardIndex, request.Row, domain.Rank(request.Rank))
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	if err != nil {
		logger.Warn("handleClaimPrize: User %s claim rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	if result.Success && result.Claim.Rank == domain.RankTombola {
		mh.settle(ctx, state, logger)
		mh.updateLabel(state, dispatcher, logger)
	}
}

type snapshotResponse struct {
	Pool  domain.PoolSnapshot `json:"pool"`
	Cards []app.CardView      `json:"cards"`
}

func (mh *matchHandler) handleRequestSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	response := snapshotResponse{Pool: state.Game.Pool.Snapshot()}
	if player, ok := state.Game.PlayerByID(senderID); ok {
		for _, card := range player.Cards {
			response.Cards = append(response.Cards, app.NewCardView(card))
		}
	}

	bytes, err := json.Marshal(response)
	if err != nil {
		logger.Error("handleRequestSnapshot: Failed to marshal: %v", err)
		return
	}

	presence, ok := state.Presences[senderID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpPoolSnapshot, bytes, []runtime.Presence{presence}, nil, true)
}

// settle applies the end-of-match balance changes to human wallets.
func (mh *matchHandler) settle(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Settled || state.Economy == nil {
		return
	}

	settlement := state.Game.CalculateSettlement(config.GetPayoutSchedule())
	updates := make([]ports.WalletUpdate, 0, len(settlement.BalanceChanges))
	for userID, amount := range settlement.BalanceChanges {
		if isBotUserId(userID) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
				"reason":   "match_settlement",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settle: Failed to update balances: %v", err)
		return
	}
	state.Settled = true
}

// broadcastEvent converts an app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, data, ok := encodeEvent(ev)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	// Default to broadcast; a targeted event with no connected recipients
	// (e.g. all bots) must not leak to everyone else.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)
}

type matchErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError sends a match error to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(matchErrorPayload{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal match error: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpMatchError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := marshalLabel(domain.ComputeLabel(state.Game, state.GetOccupiedSeatCount(), TableSeats))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Table closed for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
