package game

import (
	"math/rand"
	"time"
)

// CardDict is the wire shape for a single Card: card_no plus whichever
// of the road/action fields apply. Restore (cardFromDict) reconstructs
// the full typed Card from CardNo plus, for road cards, Rotate;
// RoadType/ActionType/IsBreak are carried for readability and are not
// read back.
type CardDict struct {
	CardNo     int   `json:"card_no"`
	Rotate     int   `json:"rotate,omitempty"`
	RoadType   int   `json:"road_type,omitempty"`
	ActionType []int `json:"action_type,omitempty"`
	IsBreak    bool  `json:"is_break,omitempty"`
}

// PlayerDict is the wire shape for a Player.
type PlayerDict struct {
	ID          string     `json:"id"`
	Role        bool       `json:"role"`
	HandCards   []CardDict `json:"hand_cards"`
	ActionState [3]bool    `json:"action_state"`
	Point       int        `json:"point"`
}

// ControllerDict is the full snapshot produced by ToDict and consumed by
// ControllerFromDict. Field names mirror spec §6's dict shape.
type ControllerDict struct {
	Round      int          `json:"round"`
	NumPlayer  int          `json:"num_player"`
	PlayerList []PlayerDict `json:"player_list"`
	GameState  int          `json:"game_state"`
	Turn       int          `json:"turn"`
	CardPool   []CardDict   `json:"card_pool"`
	FoldDeck   []CardDict   `json:"fold_deck"`
	Board      []CardDict   `json:"board"`
	GoldStack  []int        `json:"gold_stack"`
	Winner     *string      `json:"winner"`
	WinnerList []string     `json:"winner_list"`
	GoldPos    int          `json:"gold_pos"`
	NowPlay    string       `json:"now_play"`
	ReturnMsg  []Msg        `json:"return_msg"`
}

func cardToDict(c Card) CardDict {
	d := CardDict{CardNo: c.CardNo}
	switch c.Kind() {
	case KindRoad:
		d.Rotate = c.Rotate
		d.RoadType = int(c.RoadType)
	case KindAction:
		d.ActionType = make([]int, len(c.ActionKinds))
		for i, k := range c.ActionKinds {
			d.ActionType[i] = int(k)
		}
		d.IsBreak = c.IsBreak
	}
	return d
}

// cardFromDict reconstructs a Card from its card_no. Road cards also
// need the rotation that was in play when placed; empty and action
// cards are fully determined by card_no.
func cardFromDict(d CardDict) Card {
	switch NewCard(d.CardNo).Kind() {
	case KindRoad:
		return NewRoadCard(d.CardNo, d.Rotate)
	case KindAction:
		return NewActionCard(d.CardNo)
	default:
		return NewEmptyCard()
	}
}

func cardsToDict(cards []Card) []CardDict {
	out := make([]CardDict, len(cards))
	for i, c := range cards {
		out[i] = cardToDict(c)
	}
	return out
}

func cardsFromDict(dicts []CardDict) []Card {
	out := make([]Card, len(dicts))
	for i, d := range dicts {
		out[i] = cardFromDict(d)
	}
	return out
}

func playerToDict(p *Player) PlayerDict {
	return PlayerDict{
		ID:          p.ID,
		Role:        p.Role,
		HandCards:   cardsToDict(p.HandCards),
		ActionState: p.ActionState,
		Point:       p.Point,
	}
}

func playerFromDict(d PlayerDict) *Player {
	return &Player{
		ID:          d.ID,
		Role:        d.Role,
		HandCards:   cardsFromDict(d.HandCards),
		ActionState: d.ActionState,
		Point:       d.Point,
	}
}

// ToDict snapshots the controller into a plain, JSON-friendly value per
// spec §6. Winner/WinnerList are carried as player ids so the snapshot
// has no pointer aliasing into PlayerList.
func (c *Controller) ToDict() ControllerDict {
	playerDicts := make([]PlayerDict, len(c.PlayerList))
	for i, p := range c.PlayerList {
		playerDicts[i] = playerToDict(p)
	}

	var winnerID *string
	if c.Winner != nil {
		id := c.Winner.ID
		winnerID = &id
	}

	winnerListIDs := make([]string, len(c.WinnerList))
	for i, p := range c.WinnerList {
		winnerListIDs[i] = p.ID
	}

	return ControllerDict{
		Round:      c.Round,
		NumPlayer:  c.NumPlayer,
		PlayerList: playerDicts,
		GameState:  int(c.GameState),
		Turn:       c.Turn,
		CardPool:   cardsToDict(c.CardPool),
		FoldDeck:   cardsToDict(c.FoldDeck),
		Board:      cardsToDict(c.Board.Tiles[:]),
		GoldStack:  append([]int{}, c.GoldStack...),
		Winner:     winnerID,
		WinnerList: winnerListIDs,
		GoldPos:    c.GoldPos,
		NowPlay:    c.NowPlay,
		ReturnMsg:  append([]Msg{}, c.ReturnMsg...),
	}
}

// ControllerFromDict restores a Controller from a ToDict snapshot. The
// snapshot carries no RNG state, so the restored controller gets a
// fresh time-seeded source, matching NewController's nil-rng default.
// Callers that need deterministic replay across a restore should
// reseed it via Controller.SetRand before calling Step again.
func ControllerFromDict(d ControllerDict) *Controller {
	players := make([]*Player, len(d.PlayerList))
	byID := make(map[string]*Player, len(d.PlayerList))
	for i, pd := range d.PlayerList {
		players[i] = playerFromDict(pd)
		byID[pd.ID] = players[i]
	}

	board := &Board{}
	copy(board.Tiles[:], cardsFromDict(d.Board))

	var winner *Player
	if d.Winner != nil {
		winner = byID[*d.Winner]
	}
	winnerList := make([]*Player, len(d.WinnerList))
	for i, id := range d.WinnerList {
		winnerList[i] = byID[id]
	}

	return &Controller{
		Round:      d.Round,
		NumPlayer:  d.NumPlayer,
		PlayerList: players,
		GameState:  GameState(d.GameState),
		Turn:       d.Turn,
		CardPool:   cardsFromDict(d.CardPool),
		FoldDeck:   cardsFromDict(d.FoldDeck),
		Board:      board,
		GoldStack:  append([]int{}, d.GoldStack...),
		Winner:     winner,
		WinnerList: winnerList,
		GoldPos:    d.GoldPos,
		NowPlay:    d.NowPlay,
		ReturnMsg:  append([]Msg{}, d.ReturnMsg...),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
