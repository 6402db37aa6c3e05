package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the Saboteur match handler into the Nakama runtime.
// Room lifecycle, matchmaking and identity are external collaborators;
// this module only ever registers the match handler itself.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterMatch(MatchNameSaboteur, NewSaboteurMatch); err != nil {
		return err
	}

	logger.Info("Saboteur Go module loaded.")
	return nil
}
