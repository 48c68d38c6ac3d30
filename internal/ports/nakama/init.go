// Package nakama adapts the match service to the Nakama game server runtime:
// an authoritative match handler speaking JSON over match data and a wallet
// adapter for round rewards.
package nakama

import (
	"context"
	"database/sql"

	"bftcg/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// GameName tags match labels so quick-match queries find our instances.
const GameName = "bftcg"

// MatchName is the authoritative match handler name registered with Nakama.
const MatchName = "bftcg_match"

// InitModule wires the Nakama Go runtime module, registering the match
// handler. An optional game config path comes from the runtime environment.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if path := env["bftcg_config_path"]; path != "" {
			if err := config.LoadGameConfig(path); err != nil {
				return err
			}
		}
	}

	if err := initializer.RegisterMatch(MatchName, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(nk), nil
	}); err != nil {
		return err
	}

	logger.Info("bftcg module loaded.")
	return nil
}
