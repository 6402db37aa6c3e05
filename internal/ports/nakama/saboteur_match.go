package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"saboteur/internal/bot"
	"saboteur/internal/config"
	"saboteur/internal/game"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Opcodes for the Saboteur match. Wire payloads are plain JSON: the
// domain has no protobuf schema, so OpMove/OpState carry JSON-encoded
// game.Move / game.ControllerDict bodies.
const (
	OpMove  int64 = 1 // client -> server: JSON game.Move
	OpState int64 = 2 // server -> client: JSON game.ControllerDict
	OpMsg   int64 = 3 // server -> client: JSON game.Msg, one per recipient
)

const botUserIDPrefix = "bot:"

// SaboteurMatchLabelKey is the key under which the match label reports
// open seat count, mirroring the label shape used for matchmaking.
const SaboteurMatchLabelKey = "open"

// MaxSeats bounds a match at the rules engine's MaxPlayers.
const MaxSeats = game.MaxPlayers

// saboteurState holds the authoritative runtime state for one match.
type saboteurState struct {
	Seats      []string                    // user id per seat, "" if empty, "bot:N" if AI-filled
	Presences  map[string]runtime.Presence // userID -> presence, for humans only
	Controller *game.Controller            // nil until every seat is filled
	Brain      bot.Brain
	BotDelayMs int
}

func (s *saboteurState) openSeats() int {
	n := 0
	for _, seat := range s.Seats {
		if seat == "" {
			n++
		}
	}
	return n
}

func (s *saboteurState) filledSeats() int {
	return len(s.Seats) - s.openSeats()
}

func isBotSeat(userID string) bool {
	return strings.HasPrefix(userID, botUserIDPrefix)
}

// NewSaboteurMatch is the factory function registered with Nakama.
func NewSaboteurMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &saboteurMatchHandler{}, nil
}

type saboteurMatchHandler struct{}

func (mh *saboteurMatchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	numSeats := game.MinPlayers
	if v, ok := params["num_players"]; ok {
		if n, ok := v.(float64); ok && int(n) >= game.MinPlayers && int(n) <= game.MaxPlayers {
			numSeats = int(n)
		}
	}

	cfg := config.GetMatchConfig()
	botDelay := 1500
	if cfg != nil {
		botDelay = cfg.BotMinDelayMs
	}

	state := &saboteurState{
		Seats:      make([]string, numSeats),
		Presences:  make(map[string]runtime.Presence),
		Brain:      bot.NewRandomLegalBrain(rand.New(rand.NewSource(time.Now().UnixNano()))),
		BotDelayMs: botDelay,
	}

	label, err := json.Marshal(map[string]int{SaboteurMatchLabelKey: state.openSeats()})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 5
	return state, tickRate, string(label)
}

func (mh *saboteurMatchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	s, ok := state.(*saboteurState)
	if !ok {
		return state, false, "state not found"
	}
	if s.openSeats() <= 0 && s.Controller == nil {
		return state, false, "match full"
	}
	if s.Controller != nil {
		return state, false, "match already started"
	}
	return state, true, ""
}

func (mh *saboteurMatchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	s, ok := state.(*saboteurState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		s.Presences[p.GetUserId()] = p
		for i, seat := range s.Seats {
			if seat == "" {
				s.Seats[i] = p.GetUserId()
				break
			}
		}
	}

	if s.filledSeats() == len(s.Seats) && s.Controller == nil {
		mh.startMatch(s, dispatcher, logger)
	}

	return s
}

func (mh *saboteurMatchHandler) startMatch(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	ids := append([]string{}, s.Seats...)
	s.Controller = game.NewController(ids, rand.New(rand.NewSource(time.Now().UnixNano())))
	mh.broadcastState(s, dispatcher, logger)
}

func (mh *saboteurMatchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	s, ok := state.(*saboteurState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}
	for _, p := range presences {
		delete(s.Presences, p.GetUserId())
		for i, seat := range s.Seats {
			if seat == p.GetUserId() {
				// A seat vacated mid-round is handed to the bot brain
				// rather than frozen; Saboteur has no reconnect grace
				// period defined.
				s.Seats[i] = botUserIDPrefix + strconv.Itoa(i)
				break
			}
		}
	}
	return s
}

func (mh *saboteurMatchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	s, ok := state.(*saboteurState)
	if !ok {
		return state
	}
	if s.Controller == nil {
		return s
	}

	for _, msg := range messages {
		if msg.GetOpCode() != OpMove {
			logger.Warn("MatchLoop: unexpected opcode %d", msg.GetOpCode())
			continue
		}
		mh.handleMove(s, dispatcher, logger, msg)
	}

	mh.runBotTurn(s, dispatcher, logger)

	return s
}

func (mh *saboteurMatchHandler) handleMove(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	actingSeat := s.Controller.Turn % s.Controller.NumPlayer
	if s.Seats[actingSeat] != msg.GetUserId() {
		logger.Warn("handleMove: move from %s rejected, not seat %d's turn", msg.GetUserId(), actingSeat)
		return
	}

	var move game.Move
	if err := json.Unmarshal(msg.GetData(), &move); err != nil {
		logger.Warn("handleMove: bad move payload from %s: %v", msg.GetUserId(), err)
		return
	}

	mh.applyMove(s, dispatcher, logger, move)
}

// applyMove steps the controller and fans return_msg out per recipient.
func (mh *saboteurMatchHandler) applyMove(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, move game.Move) {
	if err := s.Controller.Step(move); err != nil {
		logger.Warn("applyMove: %v", err)
		return
	}
	mh.broadcastReturnMsgs(s, dispatcher, logger)
	mh.broadcastState(s, dispatcher, logger)
}

func (mh *saboteurMatchHandler) broadcastReturnMsgs(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for i, m := range s.Controller.ReturnMsg {
		userID := s.Seats[i]
		if isBotSeat(userID) {
			continue
		}
		presence, ok := s.Presences[userID]
		if !ok {
			continue
		}
		data, err := json.Marshal(m)
		if err != nil {
			logger.Error("broadcastReturnMsgs: marshal failed: %v", err)
			continue
		}
		if err := dispatcher.BroadcastMessage(OpMsg, data, []runtime.Presence{presence}, nil, true); err != nil {
			logger.Error("broadcastReturnMsgs: dispatch failed: %v", err)
		}
	}
}

func (mh *saboteurMatchHandler) broadcastState(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	data, err := json.Marshal(s.Controller.ToDict())
	if err != nil {
		logger.Error("broadcastState: marshal failed: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpState, data, nil, nil, true); err != nil {
		logger.Error("broadcastState: dispatch failed: %v", err)
	}
}

// runBotTurn plays the current seat immediately if it belongs to a bot.
// Saboteur's per-turn decision is cheap enough that it resolves within
// the same tick rather than needing a scheduled delay. A finished round
// (StateGamePoint) is scored on the tick after it ends.
func (mh *saboteurMatchHandler) runBotTurn(s *saboteurState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if s.Controller.GameState == game.StateGamePoint {
		mh.applyMove(s, dispatcher, logger, game.Move{})
		return
	}
	if s.Controller.GameState != game.StatePlay {
		return
	}
	seat := s.Controller.Turn % s.Controller.NumPlayer
	if !isBotSeat(s.Seats[seat]) {
		return
	}
	move, ok := s.Brain.ChooseMove(s.Controller, seat)
	if !ok {
		logger.Warn("runBotTurn: bot seat %d has no legal move", seat)
		return
	}
	mh.applyMove(s, dispatcher, logger, move)
}

func (mh *saboteurMatchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	return state
}

func (mh *saboteurMatchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
