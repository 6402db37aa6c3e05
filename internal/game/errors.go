package game

import "errors"

// Error kinds recognized by Step and its legality predicate. All but
// ErrEndGameReached are recoverable: the played card stays in (or
// returns to) the mover's hand and only the mover's message slot is
// written. ErrEndGameReached is returned by Step itself once the match
// has ended. See SPEC_FULL.md §7.
var (
	ErrInvalidHandIndex    = errors.New("invalid hand index")
	ErrIllegalPlacement    = errors.New("illegal road placement")
	ErrBrokenTool          = errors.New("actor has a broken tool")
	ErrInvalidActionTarget = errors.New("invalid action target")
	ErrEndGameReached      = errors.New("match has ended")
)
