package ports

import (
	"context"

	"saboteur/internal/game"
)

// BroadcastPort delivers a Controller.Step outcome to connected clients.
// The rules engine has no notion of sockets or presences; a host (e.g.
// the Nakama adapter) implements this to fan return_msg out to seats.
type BroadcastPort interface {
	// SendTo delivers msg to the single seat at playerIndex. Used for
	// PEEK results and the mover's own ILLEGAL_PLAY notice.
	SendTo(ctx context.Context, playerIndex int, msg game.Msg) error

	// SendAll delivers the same msg to every seat.
	SendAll(ctx context.Context, msg game.Msg) error
}

// PersistencePort loads and saves a match snapshot. The rules engine is
// otherwise pure; room lifecycle and storage are an external concern.
type PersistencePort interface {
	// SaveSnapshot persists dict under matchID, overwriting any prior save.
	SaveSnapshot(ctx context.Context, matchID string, dict game.ControllerDict) error

	// LoadSnapshot retrieves the last snapshot saved for matchID. ok is
	// false if no snapshot exists yet.
	LoadSnapshot(ctx context.Context, matchID string) (dict game.ControllerDict, ok bool, err error)
}
