// Package ports declares the outbound interfaces the match service depends
// on. Adapters live in subpackages.
package ports

import "context"

// WalletUpdate represents a single coin change for a user.
type WalletUpdate struct {
	UserID   string
	Coins    int64
	Metadata map[string]interface{}
}

// EconomyPort is the interface to the persistent, cross-match coin wallet.
// The engine awards round winners through it; it never reads balances back
// into match state.
type EconomyPort interface {
	// UpdateBalances applies the wallet changes. Implementations should treat
	// a zero-amount update as a no-op.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}

// NoopEconomy discards all wallet updates. Used by offline simulations and
// tests.
type NoopEconomy struct{}

// UpdateBalances implements EconomyPort.
func (NoopEconomy) UpdateBalances(ctx context.Context, updates []WalletUpdate) error {
	return nil
}
