// Package bot proposes legal moves for AI-controlled seats. Unlike a
// full strategy engine, it only needs to find *a* legal move: Saboteur's
// branching factor (placements x rotations, action targets) is small
// enough that this is a straightforward search, not a scored heuristic.
package bot

import (
	"math/rand"
	"time"

	"saboteur/internal/game"
)

// Brain proposes the next move for a seat given the authoritative
// controller state. Implementations must not mutate c; Controller.Step
// is the caller's responsibility.
type Brain interface {
	ChooseMove(c *game.Controller, seat int) (game.Move, bool)
}

// RandomLegalBrain picks a uniformly random legal move among every hand
// card, rotation, board position and action target it can construct.
// It is the default Brain used to fill empty seats and in tests.
type RandomLegalBrain struct {
	Rng *rand.Rand
}

// NewRandomLegalBrain builds a RandomLegalBrain with the given source. A
// nil rng defaults to a time-seeded one.
func NewRandomLegalBrain(rng *rand.Rand) *RandomLegalBrain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomLegalBrain{Rng: rng}
}

// ChooseMove scans the seat's hand for any legal move and returns one at
// random among the candidates found. It reports false if the seat has no
// legal move at all (every card illegal against the current board). seat
// must be the controller's current turn (c.Turn % c.NumPlayer); Controller
// checks legality against CurrentPlayer regardless of which seat is asked.
func (b *RandomLegalBrain) ChooseMove(c *game.Controller, seat int) (game.Move, bool) {
	candidates := legalMoves(c, seat)
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	return candidates[b.Rng.Intn(len(candidates))], true
}

func legalMoves(c *game.Controller, seat int) []game.Move {
	player := c.PlayerList[seat]
	var out []game.Move

	for handIdx, card := range player.HandCards {
		switch card.Kind() {
		case game.KindRoad:
			out = append(out, roadCandidates(c, handIdx)...)
		case game.KindAction:
			out = append(out, actionCandidates(c, player, handIdx, card)...)
		}
	}
	return out
}

func roadCandidates(c *game.Controller, handIdx int) []game.Move {
	var out []game.Move
	for pos := 0; pos < game.BoardRows*game.BoardCols; pos++ {
		for _, rotate := range [2]int{0, 1} {
			move := game.Move{CardIndex: handIdx, Position: pos, Rotate: rotate}
			if c.WouldBeLegal(move) {
				out = append(out, move)
			}
		}
	}
	return out
}

func actionCandidates(c *game.Controller, player *game.Player, handIdx int, card game.Card) []game.Move {
	var out []game.Move

	switch card.ActionKinds[0] {
	case game.ActionRocks:
		for pos := 0; pos < game.BoardRows*game.BoardCols; pos++ {
			move := game.Move{CardIndex: handIdx, Position: pos}
			if c.WouldBeLegal(move) {
				out = append(out, move)
			}
		}
	case game.ActionMap:
		for _, pos := range game.DestinationPositions {
			move := game.Move{CardIndex: handIdx, Position: pos}
			if c.WouldBeLegal(move) {
				out = append(out, move)
			}
		}
	default:
		for targetIdx := range c.PlayerList {
			for _, arg := range [2]int{0, 1} {
				move := game.Move{CardIndex: handIdx, Position: targetIdx, ActionArg: arg}
				if c.WouldBeLegal(move) {
					out = append(out, move)
				}
			}
		}
	}
	return out
}
