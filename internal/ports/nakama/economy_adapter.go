package nakama

import (
	"context"
	"fmt"

	"bftcg/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// walletUpdater is the slice of runtime.NakamaModule the adapter needs.
type walletUpdater interface {
	WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error)
}

// EconomyAdapter implements ports.EconomyPort on Nakama's wallet system.
// Round reward coins land under the "coins" wallet key.
type EconomyAdapter struct {
	nk walletUpdater
}

// NewEconomyAdapter creates a new economy adapter.
func NewEconomyAdapter(nk runtime.NakamaModule) *EconomyAdapter {
	return &EconomyAdapter{nk: nk}
}

// UpdateBalances applies the wallet changes, one ledgered update per user.
func (a *EconomyAdapter) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	for _, update := range updates {
		if update.Coins == 0 {
			continue
		}

		changes := map[string]int64{
			"coins": update.Coins,
		}
		if _, _, err := a.nk.WalletUpdate(ctx, update.UserID, changes, update.Metadata, true); err != nil {
			return fmt.Errorf("failed to update wallet for user %s: %w", update.UserID, err)
		}
	}
	return nil
}
