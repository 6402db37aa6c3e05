package game

// WouldBeLegal reports whether move would be accepted by Step if played
// right now by the current player, without mutating any state. It is a
// read-only probe for move proposers; Step itself never calls it.
func (c *Controller) WouldBeLegal(move Move) bool {
	actor := c.CurrentPlayer()
	if move.CardIndex < 0 || move.CardIndex >= len(actor.HandCards) {
		return false
	}
	card := actor.HandCards[move.CardIndex]
	return c.checkLegality(actor, card, move) == nil
}

// checkLegality dispatches on the played card's variant and reports
// whether the move is legal against the current controller state.
func (c *Controller) checkLegality(actor *Player, card Card, move Move) error {
	switch card.Kind() {
	case KindRoad:
		return c.checkRoadLegality(actor, card, move)
	case KindAction:
		return c.checkActionLegality(actor, card, move)
	default:
		return ErrInvalidActionTarget
	}
}

// activate applies the card's effect to board/players/deck and returns
// the message to report back. The card is pushed to FoldDeck unless it
// is a road (which is placed on the board instead).
func (c *Controller) activate(actor *Player, card Card, move Move) Msg {
	switch card.Kind() {
	case KindRoad:
		return c.activateRoad(card, move)
	case KindAction:
		return c.activateAction(actor, card, move)
	default:
		return Msg{MsgType: MsgInfo, Msg: ""}
	}
}

func (c *Controller) checkRoadLegality(actor *Player, card Card, move Move) error {
	if !actor.IsHealthy() {
		return ErrBrokenTool
	}

	pos := move.Position
	if pos < 0 || pos >= BoardRows*BoardCols {
		return ErrIllegalPlacement
	}
	if c.Board.Get(pos).Kind() != KindEmpty {
		return ErrIllegalPlacement
	}

	row, col := RowCol(pos)
	road := Card{CardNo: card.CardNo, Rotate: move.Rotate, RoadType: card.RoadType,
		Connected: RoadConnection(card.CardNo, move.Rotate)}

	matched := false
	for _, side := range [4]int{sideTop, sideRight, sideDown, sideLeft} {
		npos, ok := neighborPos(row, col, side)
		if !ok {
			continue
		}
		neighbor := c.Board.Get(npos)
		if neighbor.Kind() == KindEmpty {
			continue
		}

		// Hidden destinations always present a full [1,1,1,1,1] mask, so
		// the matching check below already forces T's connector on
		// that side to be 1 — there is no "both zero" escape against a
		// hidden destination (spec: "must not touch a hidden
		// destination tile on its side of entry" is subsumed by this).
		same := road.Connected[side] == neighbor.Connected[opposite(side)]
		bothZero := road.Connected[side] == 0 && neighbor.Connected[opposite(side)] == 0
		if !(same || bothZero) {
			return ErrIllegalPlacement
		}
		if road.Connected[side] != 0 {
			matched = true
		}
	}

	if !matched {
		return ErrIllegalPlacement
	}

	return nil
}

func (c *Controller) activateRoad(card Card, move Move) Msg {
	road := NewRoadCard(card.CardNo, move.Rotate)
	c.Board.Place(move.Position, road)
	return Msg{MsgType: MsgInfo, Msg: ""}
}

func (c *Controller) checkActionLegality(actor *Player, card Card, move Move) error {
	switch card.ActionKinds[0] {
	case ActionRocks:
		return c.checkRocksLegality(move)
	case ActionMap:
		return c.checkMapLegality(move)
	default:
		if card.IsBreak {
			return c.checkBreakLegality(actor, card, move)
		}
		return c.checkRepairLegality(card, move)
	}
}

func (c *Controller) activateAction(actor *Player, card Card, move Move) Msg {
	defer func() { c.FoldDeck = append(c.FoldDeck, card) }()

	switch card.ActionKinds[0] {
	case ActionRocks:
		c.activateRocks(move)
		return Msg{MsgType: MsgInfo, Msg: ""}
	case ActionMap:
		return c.activateMap(move)
	default:
		if card.IsBreak {
			c.activateBreak(card, move)
		} else {
			c.activateRepair(card, move)
		}
		return Msg{MsgType: MsgInfo, Msg: ""}
	}
}

func (c *Controller) resolveTarget(move Move) (*Player, error) {
	if move.Position < 0 || move.Position >= len(c.PlayerList) {
		return nil, ErrInvalidActionTarget
	}
	return c.PlayerList[move.Position], nil
}

func (c *Controller) checkBreakLegality(actor *Player, card Card, move Move) error {
	target, err := c.resolveTarget(move)
	if err != nil {
		return err
	}
	if target == actor {
		return ErrInvalidActionTarget
	}
	kind := card.ActionKinds[0]
	if target.ActionState[toolIndex(kind)] {
		return ErrInvalidActionTarget // already broken
	}
	return nil
}

func (c *Controller) activateBreak(card Card, move Move) {
	target := c.PlayerList[move.Position]
	target.ActionState[toolIndex(card.ActionKinds[0])] = true
}

func (c *Controller) checkRepairLegality(card Card, move Move) error {
	target, err := c.resolveTarget(move)
	if err != nil {
		return err
	}
	kind, err := resolveRepairKind(card, move.ActionArg)
	if err != nil {
		return err
	}
	if !target.ActionState[toolIndex(kind)] {
		return ErrInvalidActionTarget // not broken
	}
	return nil
}

func (c *Controller) activateRepair(card Card, move Move) {
	target := c.PlayerList[move.Position]
	kind, _ := resolveRepairKind(card, move.ActionArg)
	target.ActionState[toolIndex(kind)] = false
}

func resolveRepairKind(card Card, actionArg int) (ActionKind, error) {
	if len(card.ActionKinds) == 1 {
		return card.ActionKinds[0], nil
	}
	if actionArg < 0 || actionArg >= len(card.ActionKinds) {
		return 0, ErrInvalidActionTarget
	}
	return card.ActionKinds[actionArg], nil
}

func (c *Controller) checkRocksLegality(move Move) error {
	if move.Position < 0 || move.Position >= BoardRows*BoardCols {
		return ErrInvalidActionTarget
	}
	if move.Position == StartPos {
		return ErrInvalidActionTarget
	}
	for _, dest := range DestinationPositions {
		if move.Position == dest {
			return ErrInvalidActionTarget
		}
	}
	tile := c.Board.Get(move.Position)
	if tile.Kind() != KindRoad || tile.RoadType != RoadNormal {
		return ErrInvalidActionTarget
	}
	return nil
}

func (c *Controller) activateRocks(move Move) {
	destroyed := c.Board.Get(move.Position)
	c.FoldDeck = append(c.FoldDeck, destroyed)
	c.Board.Place(move.Position, NewEmptyCard())
}

func (c *Controller) checkMapLegality(move Move) error {
	for _, dest := range DestinationPositions {
		if dest == move.Position {
			return nil
		}
	}
	return ErrInvalidActionTarget
}

func (c *Controller) activateMap(move Move) Msg {
	tile := c.Board.Get(move.Position)
	cardNo := tile.CardNo
	if tile.IsHiddenDestination() {
		cardNo -= 70
	}
	return Msg{MsgType: MsgPeek, Msg: cardNo}
}
