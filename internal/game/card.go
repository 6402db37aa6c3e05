// Package game implements the deterministic rules engine for a
// Saboteur-style hidden-role board game: card catalogue, board,
// reachability, legality/activation and the controller state machine.
package game

// CardKind identifies which variant a Card is.
type CardKind int

const (
	KindEmpty CardKind = iota
	KindRoad
	KindAction
)

// RoadType classifies a road tile's role on the board.
type RoadType int

const (
	RoadNormal RoadType = iota
	RoadStart
	RoadEnd
)

// ActionKind identifies the tool or effect an action card targets.
type ActionKind int

const (
	ActionMinerLamp ActionKind = iota
	ActionMinecart
	ActionMinePick
	ActionRocks
	ActionMap
)

// EmptyCardNo is the sentinel card_no for an empty board slot.
const EmptyCardNo = -1

// Card is the sum type over Road, Action and Empty variants. CardNo
// fully determines the semantic type per the catalogue below; RoadType
// and ActionKinds/IsBreak are derived from it, and Connected from it
// together with Rotate.
type Card struct {
	CardNo int

	// Road fields (valid when CardNo denotes a road card).
	Rotate    int
	RoadType  RoadType
	Connected [5]int // middle, top, right, down, left

	// Action fields (valid when CardNo denotes an action card).
	ActionKinds []ActionKind
	IsBreak     bool
}

// NewEmptyCard returns the sentinel empty board slot.
func NewEmptyCard() Card {
	return Card{CardNo: EmptyCardNo}
}

// NewRoadCard builds a Road card for the given catalogue id and rotation.
func NewRoadCard(cardNo, rotate int) Card {
	return Card{
		CardNo:    cardNo,
		Rotate:    rotate,
		RoadType:  roadTypeOf(cardNo),
		Connected: RoadConnection(cardNo, rotate),
	}
}

// NewActionCard builds an Action card for the given catalogue id.
func NewActionCard(cardNo int) Card {
	kinds, isBreak := ActionOf(cardNo)
	return Card{CardNo: cardNo, ActionKinds: kinds, IsBreak: isBreak}
}

// NewCard dispatches to the right constructor based on the catalogue id.
func NewCard(cardNo int) Card {
	switch {
	case cardNo == EmptyCardNo:
		return NewEmptyCard()
	case cardNo >= 0 && cardNo <= 43:
		return NewRoadCard(cardNo, 0)
	case cardNo >= 44 && cardNo <= 70:
		return NewActionCard(cardNo)
	default:
		// Destination cards carry a +70 "hidden" offset (71..73).
		return NewRoadCard(cardNo, 0)
	}
}

// Kind reports which variant a card is.
func (c Card) Kind() CardKind {
	switch {
	case c.CardNo == EmptyCardNo:
		return KindEmpty
	case (c.CardNo >= 0 && c.CardNo <= 43) || (c.CardNo >= 71 && c.CardNo <= 73):
		return KindRoad
	case c.CardNo >= 44 && c.CardNo <= 70:
		return KindAction
	default:
		return KindEmpty
	}
}

// IsHiddenDestination reports whether this road card is a destination
// tile that has not yet been revealed (card_no 71..73).
func (c Card) IsHiddenDestination() bool {
	return c.CardNo >= 71 && c.CardNo <= 73
}

// Revealed returns the card with its +70 hidden offset removed.
func (c Card) Revealed() Card {
	if c.IsHiddenDestination() {
		return NewRoadCard(c.CardNo-70, c.Rotate)
	}
	return c
}

// roadTypeOf classifies a road's catalogue id by position in the range.
func roadTypeOf(cardNo int) RoadType {
	switch {
	case cardNo == 0:
		return RoadStart
	case cardNo >= 1 && cardNo <= 3:
		return RoadEnd
	default:
		return RoadNormal
	}
}

// roadMaskTable maps an unrotated road card_no to its connection mask
// [middle, top, right, down, left]. See spec §6.
var roadMaskTable = []struct {
	lo, hi int
	mask   [5]int
}{
	{0, 3, [5]int{1, 1, 1, 1, 1}},
	{4, 7, [5]int{1, 1, 0, 1, 0}},
	{8, 12, [5]int{1, 1, 1, 1, 0}},
	{13, 17, [5]int{1, 1, 1, 1, 1}},
	{18, 21, [5]int{1, 0, 1, 1, 0}},
	{22, 26, [5]int{1, 0, 0, 1, 1}},
	{27, 27, [5]int{0, 0, 0, 1, 0}},
	{28, 28, [5]int{0, 1, 0, 1, 1}},
	{29, 29, [5]int{0, 1, 1, 1, 1}},
	{30, 30, [5]int{0, 0, 1, 1, 0}},
	{31, 31, [5]int{0, 0, 0, 1, 1}},
	{32, 32, [5]int{0, 0, 0, 0, 1}},
	{33, 37, [5]int{1, 1, 1, 0, 1}},
	{38, 40, [5]int{1, 0, 1, 0, 1}},
	{41, 41, [5]int{0, 1, 0, 1, 0}},
	{42, 42, [5]int{0, 1, 1, 0, 1}},
	{43, 43, [5]int{0, 0, 1, 0, 1}},
}

// RoadConnection returns the connection mask for a road card_no, rotated
// if rotate is 1. A hidden destination (71..73) uses its revealed id's
// mask since the catalogue never needs its own rotation (destinations
// are never rotated).
func RoadConnection(cardNo, rotate int) [5]int {
	id := cardNo
	if id >= 71 && id <= 73 {
		id -= 70
	}
	mask := [5]int{}
	for _, row := range roadMaskTable {
		if id >= row.lo && id <= row.hi {
			mask = row.mask
			break
		}
	}
	if rotate == 1 {
		mask[1], mask[3] = mask[3], mask[1]
		mask[2], mask[4] = mask[4], mask[2]
	}
	return mask
}

// ActionOf returns the tool kind(s) and break/repair polarity for an
// action card_no. Multi-repair cards (59-61) expose two kinds; every
// other action card exposes exactly one.
func ActionOf(cardNo int) ([]ActionKind, bool) {
	switch {
	case cardNo >= 44 && cardNo <= 46:
		return []ActionKind{ActionMinerLamp}, true
	case cardNo >= 47 && cardNo <= 48:
		return []ActionKind{ActionMinerLamp}, false
	case cardNo >= 49 && cardNo <= 51:
		return []ActionKind{ActionMinecart}, true
	case cardNo >= 52 && cardNo <= 53:
		return []ActionKind{ActionMinecart}, false
	case cardNo >= 54 && cardNo <= 56:
		return []ActionKind{ActionMinePick}, true
	case cardNo >= 57 && cardNo <= 58:
		return []ActionKind{ActionMinePick}, false
	case cardNo == 59:
		return []ActionKind{ActionMinePick, ActionMinecart}, false
	case cardNo == 60:
		return []ActionKind{ActionMinerLamp, ActionMinecart}, false
	case cardNo == 61:
		return []ActionKind{ActionMinePick, ActionMinerLamp}, false
	case cardNo >= 62 && cardNo <= 64:
		return []ActionKind{ActionRocks}, false
	case cardNo >= 65 && cardNo <= 70:
		return []ActionKind{ActionMap}, false
	default:
		return nil, false
	}
}
