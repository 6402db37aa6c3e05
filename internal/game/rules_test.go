package game

import (
	"math/rand"
	"testing"
)

func newTestController(ids []string) *Controller {
	return NewController(ids, rand.New(rand.NewSource(1)))
}

func TestCheckRoadLegalityOrphanPlacement(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	actor := c.PlayerList[0]
	card := NewRoadCard(38, 0)

	err := c.checkRoadLegality(actor, card, Move{Position: 22})
	if err != ErrIllegalPlacement {
		t.Fatalf("expected ErrIllegalPlacement for orphan placement, got %v", err)
	}
}

func TestCheckRoadLegalityMatchesStart(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	actor := c.PlayerList[0]
	card := NewRoadCard(38, 0)

	if err := c.checkRoadLegality(actor, card, Move{Position: PosOf(2, 1)}); err != nil {
		t.Fatalf("expected placement adjacent to start to be legal, got %v", err)
	}
}

func TestCheckRoadLegalityBrokenToolBlocks(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	actor := c.PlayerList[0]
	actor.ActionState[0] = true
	card := NewRoadCard(38, 0)

	if err := c.checkRoadLegality(actor, card, Move{Position: PosOf(2, 1)}); err != ErrBrokenTool {
		t.Fatalf("expected ErrBrokenTool, got %v", err)
	}
}

func TestCheckRoadLegalityOccupiedTile(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	actor := c.PlayerList[0]
	card := NewRoadCard(38, 0)

	if err := c.checkRoadLegality(actor, card, Move{Position: StartPos}); err != ErrIllegalPlacement {
		t.Fatalf("expected ErrIllegalPlacement on occupied tile, got %v", err)
	}
}

func TestBreakAndRepairCycle(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	target := c.PlayerList[1]

	breakCard := NewActionCard(44) // break lamp
	if err := c.checkBreakLegality(c.PlayerList[0], breakCard, Move{Position: 1}); err != nil {
		t.Fatalf("unexpected error breaking lamp: %v", err)
	}
	c.activateBreak(breakCard, Move{Position: 1})
	if target.IsHealthy() {
		t.Fatal("target should have a broken lamp")
	}

	roadCard := NewRoadCard(38, 0)
	if err := c.checkRoadLegality(target, roadCard, Move{Position: PosOf(0, 1)}); err != ErrBrokenTool {
		t.Fatalf("expected ErrBrokenTool for unhealthy player, got %v", err)
	}

	repairCard := NewActionCard(47) // repair lamp
	if err := c.checkRepairLegality(repairCard, Move{Position: 1}); err != nil {
		t.Fatalf("unexpected error repairing lamp: %v", err)
	}
	c.activateRepair(repairCard, Move{Position: 1})
	if !target.IsHealthy() {
		t.Fatal("target should be healthy after repair")
	}
}

func TestBreakCannotTargetSelf(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	breakCard := NewActionCard(44)
	if err := c.checkBreakLegality(c.PlayerList[0], breakCard, Move{Position: 0}); err != ErrInvalidActionTarget {
		t.Fatalf("expected ErrInvalidActionTarget, got %v", err)
	}
}

func TestRocksLegalityRejectsStartAndDestination(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	if err := c.checkRocksLegality(Move{Position: StartPos}); err != ErrInvalidActionTarget {
		t.Fatalf("expected ErrInvalidActionTarget on start tile, got %v", err)
	}
	if err := c.checkRocksLegality(Move{Position: c.GoldPos}); err != ErrInvalidActionTarget {
		t.Fatalf("expected ErrInvalidActionTarget on destination tile, got %v", err)
	}
}

func TestRocksDestroysNormalRoad(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	c.Board.Place(PosOf(2, 1), NewRoadCard(38, 0))

	if err := c.checkRocksLegality(Move{Position: PosOf(2, 1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.activateRocks(Move{Position: PosOf(2, 1)})
	if c.Board.Get(PosOf(2, 1)).Kind() != KindEmpty {
		t.Fatal("expected tile to be emptied after rocks")
	}
	if len(c.FoldDeck) != 1 {
		t.Fatalf("expected destroyed tile pushed to fold deck, got %d entries", len(c.FoldDeck))
	}
}

func TestMapLegalityOnlyDestinations(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	if err := c.checkMapLegality(Move{Position: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.checkMapLegality(Move{Position: 9}); err != ErrInvalidActionTarget {
		t.Fatalf("expected ErrInvalidActionTarget, got %v", err)
	}
}

func TestActivateMapRevealsTrueCardNo(t *testing.T) {
	c := newTestController([]string{"a", "b", "c"})
	msg := c.activateMap(Move{Position: c.GoldPos})
	if msg.MsgType != MsgPeek {
		t.Fatalf("expected PEEK message, got %v", msg.MsgType)
	}
	if msg.Msg != 1 {
		t.Fatalf("expected peeked card_no 1 (gold), got %v", msg.Msg)
	}
}
