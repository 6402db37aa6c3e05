package game

import (
	"math/rand"
	"strconv"
	"time"
)

// GameState is the lifecycle stage of the controller.
type GameState int

const (
	StateReset GameState = iota
	StatePlay
	StateGamePoint
	StateEndGame
)

// Move is a single turn's input: the hand slot to play, a board
// position, a rotation, and an action argument. Position is overloaded
// by card kind: for Road/Rocks/Map cards it is a flattened board index;
// for Break/Repair action cards it is the target player's index into
// PlayerList. ActionArg selects which tool a multi-tool repair card
// affects (index into that card's ActionKinds); it is ignored for
// single-tool cards.
type Move struct {
	CardIndex int `json:"card_index"`
	Position  int `json:"position"`
	Rotate    int `json:"rotate"`
	ActionArg int `json:"action_arg"`
}

// Controller is the authoritative state machine for one match: round
// lifecycle, turn counter, deck/hand/board ownership, and point
// distribution. Controller.Step is the sole mutating entry point.
type Controller struct {
	Round      int
	NumPlayer  int
	PlayerList []*Player
	GameState  GameState
	Turn       int
	CardPool   []Card
	FoldDeck   []Card
	Board      *Board
	GoldStack  []int
	Winner     *Player
	WinnerList []*Player
	GoldPos    int
	NowPlay    string
	ReturnMsg  []Msg

	rng *rand.Rand
}

// NewController creates a Controller from a list of player ids and runs
// it through the first round_reset, landing in StatePlay with turn 0.
// A nil rng defaults to a time-seeded source; pass an explicit source
// for deterministic replay and property tests.
func NewController(playerIDs []string, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	numPlayer := len(playerIDs)
	players := make([]*Player, numPlayer)
	for i, id := range playerIDs {
		players[i] = &Player{ID: id}
	}

	c := &Controller{
		NumPlayer:  numPlayer,
		PlayerList: players,
		ReturnMsg:  make([]Msg, numPlayer),
		rng:        rng,
	}
	c.RoundReset()
	return c
}

// SetRand replaces the controller's random source. Used after restoring
// a Controller from ControllerFromDict, which installs a fresh
// time-seeded source, to resume deterministic play.
func (c *Controller) SetRand(rng *rand.Rand) {
	c.rng = rng
}

// CurrentPlayer returns the player whose turn it is.
func (c *Controller) CurrentPlayer() *Player {
	return c.PlayerList[c.Turn%c.NumPlayer]
}

// playerIndex returns the index of p within PlayerList, or -1.
func (c *Controller) playerIndex(p *Player) int {
	for i, pl := range c.PlayerList {
		if pl == p {
			return i
		}
	}
	return -1
}

// Step consumes one move from the current player and advances the
// state machine. See SPEC_FULL.md §4 / spec.md §4.6 for the full
// algorithm. A move that ends the round leaves the controller in
// StateGamePoint with Winner/WinnerList set; the next Step call scores
// that round and starts the following one (its move is not played).
func (c *Controller) Step(move Move) error {
	if c.GameState == StateEndGame {
		return ErrEndGameReached
	}

	switch c.GameState {
	case StatePlay:
		c.stepPlay(move)
	case StateGamePoint:
		c.CalcPoint(c.WinnerList, c.Winner)
		c.Winner = nil
		c.WinnerList = nil
		c.RoundReset()

		if c.Round > TotalRounds {
			c.GameState = StateEndGame
		}
	}

	return nil
}

func (c *Controller) stepPlay(move Move) {
	actingIdx := c.Turn % c.NumPlayer
	actor := c.PlayerList[actingIdx]
	c.NowPlay = actor.ID

	card, err := actor.PlayCard(move.CardIndex)
	if err != nil {
		c.ReturnMsg[actingIdx] = Msg{MsgType: MsgIllegalPlay, Msg: err.Error()}
		return
	}

	if err := c.checkLegality(actor, card, move); err != nil {
		actor.ReturnCard(card)
		c.ReturnMsg[actingIdx] = Msg{MsgType: MsgIllegalPlay, Msg: err.Error()}
		return
	}

	msg := c.activate(actor, card, move)

	// Reveal adjacent hidden destinations when the played tile borders one.
	if isFrontOfDestination(move.Position) && card.Kind() == KindRoad {
		c.revealNeighboringDestinations(move.Position)

		if c.Board.ConnectsToStart(c.GoldPos) {
			c.WinnerList = goodDwarves(c.PlayerList)
			c.Winner = actor
			c.GameState = StateGamePoint
			c.broadcastAll(Msg{MsgType: MsgInfo, Msg: "good dwarves win"})
			return
		}
	}

	if len(c.CardPool) > 0 {
		actor.Draw(c.CardPool[0])
		c.CardPool = c.CardPool[1:]
	}

	if msg.MsgType == MsgPeek {
		row, col := RowCol(move.Position)
		for i := range c.PlayerList {
			if i == actingIdx {
				c.ReturnMsg[i] = msg
			} else {
				c.ReturnMsg[i] = Msg{MsgType: MsgInfo, Msg: playerUsedMapInfo(actor.ID, row, col)}
			}
		}
	} else {
		c.broadcastAll(msg)
	}

	c.Turn++

	if allHandsEmpty(c.PlayerList) {
		c.WinnerList = badDwarves(c.PlayerList)
		c.Winner = nil
		c.GameState = StateGamePoint
		c.broadcastAll(Msg{MsgType: MsgInfo, Msg: "bad dwarves win"})
	}
}

func (c *Controller) broadcastAll(m Msg) {
	for i := range c.ReturnMsg {
		c.ReturnMsg[i] = m
	}
}

func isFrontOfDestination(pos int) bool {
	for _, p := range FrontOfDestinationPositions {
		if p == pos {
			return true
		}
	}
	return false
}

// revealNeighboringDestinations reveals any hidden destination tile
// orthogonally adjacent to pos that is reachable from the start.
func (c *Controller) revealNeighboringDestinations(pos int) {
	row, col := RowCol(pos)
	for _, dest := range DestinationPositions {
		dr, dc := RowCol(dest)
		if !adjacent(row, col, dr, dc) {
			continue
		}
		if !c.Board.Get(dest).IsHiddenDestination() {
			continue
		}
		if c.Board.ConnectsToStart(dest) {
			c.Board.RevealDestination(dest)
		}
	}
}

func adjacent(r1, c1, r2, c2 int) bool {
	dr := r1 - r2
	if dr < 0 {
		dr = -dr
	}
	dc := c1 - c2
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func allHandsEmpty(players []*Player) bool {
	for _, p := range players {
		if len(p.HandCards) > 0 {
			return false
		}
	}
	return true
}

func goodDwarves(players []*Player) []*Player {
	var out []*Player
	for _, p := range players {
		if p.Role {
			out = append(out, p)
		}
	}
	return out
}

func badDwarves(players []*Player) []*Player {
	var out []*Player
	for _, p := range players {
		if !p.Role {
			out = append(out, p)
		}
	}
	return out
}

func playerUsedMapInfo(id string, row, col int) string {
	return id + " used map on (" + strconv.Itoa(row+1) + ", " + strconv.Itoa(col+1) + ")"
}

// RoundReset rebuilds a new round: gold stack (round 1 only), board,
// roles, tool state, deck, seating and hands. Transitions into
// StatePlay with Turn reset to 0.
func (c *Controller) RoundReset() {
	c.GameState = StateReset
	c.Round++

	if c.Round == 1 {
		c.GoldStack = newGoldStack(c.rng)
	}

	c.Board = NewBoard()
	c.placeDestinations()

	c.setRoles()
	c.clearToolState()

	c.CardPool = newDeck()
	shuffleCards(c.rng, c.CardPool)
	c.rng.Shuffle(len(c.PlayerList), func(i, j int) {
		c.PlayerList[i], c.PlayerList[j] = c.PlayerList[j], c.PlayerList[i]
	})

	c.dealHands()

	c.GameState = StatePlay
	c.Turn = 0
	c.NowPlay = c.CurrentPlayer().ID
}

// newGoldStack builds the shuffled 28-card gold-value stack (spec §3).
func newGoldStack(rng *rand.Rand) []int {
	stack := make([]int, 0, 28)
	for i := 0; i < 16; i++ {
		stack = append(stack, 1)
	}
	for i := 0; i < 8; i++ {
		stack = append(stack, 2)
	}
	for i := 0; i < 4; i++ {
		stack = append(stack, 3)
	}
	rng.Shuffle(len(stack), func(i, j int) { stack[i], stack[j] = stack[j], stack[i] })
	return stack
}

// placeDestinations randomizes which of the three destinations hides
// the gold and places them (still hidden, +70 offset) on the board.
func (c *Controller) placeDestinations() {
	order := []int{1, 2, 3} // 1=gold, 2/3=rocks
	c.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for i, pos := range DestinationPositions {
		cardNo := order[i] + 70
		c.Board.Place(pos, NewRoadCard(cardNo, 0))
		if order[i] == 1 {
			c.GoldPos = pos
		}
	}
}

func (c *Controller) setRoles() {
	numBad := badDwarfCountByPlayers[c.NumPlayer]
	roles := make([]bool, 0, c.NumPlayer)
	for i := 0; i < numBad; i++ {
		roles = append(roles, false)
	}
	for len(roles) < c.NumPlayer {
		roles = append(roles, true)
	}
	c.rng.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })
	for i, p := range c.PlayerList {
		p.Role = roles[i]
	}
}

func (c *Controller) clearToolState() {
	for _, p := range c.PlayerList {
		p.ActionState = [3]bool{}
	}
}

// newDeck builds the round_reset deck: card_no 4..70 (67 cards).
func newDeck() []Card {
	deck := make([]Card, 0, 67)
	for cardNo := 4; cardNo <= 70; cardNo++ {
		deck = append(deck, NewCard(cardNo))
	}
	return deck
}

func shuffleCards(rng *rand.Rand, cards []Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func (c *Controller) dealHands() {
	numHands := handSizeByPlayers[c.NumPlayer]
	for _, p := range c.PlayerList {
		p.HandCards = append([]Card{}, c.CardPool[:numHands]...)
		c.CardPool = c.CardPool[numHands:]
	}
}

// CalcPoint distributes points for a finished round. See SPEC_FULL.md
// §9 (Open Question 2) for the bad-team greedy rule's exact semantics.
func (c *Controller) CalcPoint(winnerList []*Player, winner *Player) {
	n := len(winnerList)
	if n == 0 {
		return
	}

	if winner != nil {
		c.awardGoodTeam(winnerList, winner)
		return
	}
	c.awardBadTeam(winnerList)
}

func (c *Controller) awardGoodTeam(winnerList []*Player, winner *Player) {
	n := len(winnerList)
	goldList := append([]int{}, c.GoldStack[:n]...)
	sortDescending(goldList)
	c.GoldStack = c.GoldStack[n:]

	// Counter-clockwise from winner: reverse seating order.
	ccw := make([]*Player, n)
	copy(ccw, winnerList)
	reversePlayers(ccw)

	idx := indexOfPlayer(ccw, winner)
	if idx == -1 {
		// A bad dwarf triggered the connection; roll one seat clockwise
		// from the bad dwarf and award to that good dwarf instead.
		badIdx := indexOfPlayer(c.PlayerList, winner)
		nextIdx := (badIdx + 1) % c.NumPlayer
		winner = c.PlayerList[nextIdx]
		idx = indexOfPlayer(ccw, winner)
		if idx == -1 {
			idx = 0
		}
	}

	for len(goldList) > 0 {
		ccw[idx%n].Point += goldList[0]
		goldList = goldList[1:]
		idx++
	}
}

func (c *Controller) awardBadTeam(winnerList []*Player) {
	n := len(winnerList)
	base := badTeamBasePoint[n]

	for _, p := range winnerList {
		budget := base
		p.Point += budget
		for budget > 0 {
			consumed := false
			for i := 0; i < len(c.GoldStack); i++ {
				if c.GoldStack[i] <= budget {
					budget -= c.GoldStack[i]
					c.GoldStack = append(c.GoldStack[:i], c.GoldStack[i+1:]...)
					consumed = true
					break
				}
			}
			if !consumed {
				break
			}
		}
	}
}

func sortDescending(vals []int) {
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j-1] < vals[j]; j-- {
			vals[j-1], vals[j] = vals[j], vals[j-1]
		}
	}
}

func reversePlayers(players []*Player) {
	for i, j := 0, len(players)-1; i < j; i, j = i+1, j-1 {
		players[i], players[j] = players[j], players[i]
	}
}

func indexOfPlayer(players []*Player, target *Player) int {
	for i, p := range players {
		if p == target {
			return i
		}
	}
	return -1
}
