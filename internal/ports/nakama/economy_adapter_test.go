package nakama

import (
	"context"
	"errors"
	"testing"

	"bftcg/internal/ports"
)

type walletCall struct {
	userID    string
	changeset map[string]int64
	metadata  map[string]interface{}
	ledger    bool
}

type mockWallet struct {
	calls []walletCall
	err   error
}

func (m *mockWallet) WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error) {
	m.calls = append(m.calls, walletCall{userID: userID, changeset: changeset, metadata: metadata, ledger: updateLedger})
	return nil, nil, m.err
}

func TestUpdateBalancesWritesCoins(t *testing.T) {
	wallet := &mockWallet{}
	adapter := &EconomyAdapter{nk: wallet}

	err := adapter.UpdateBalances(context.Background(), []ports.WalletUpdate{
		{UserID: "winner", Coins: 5, Metadata: map[string]interface{}{"reason": "round_reward"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(wallet.calls) != 1 {
		t.Fatalf("expected one wallet update, got %d", len(wallet.calls))
	}
	call := wallet.calls[0]
	if call.userID != "winner" || call.changeset["coins"] != 5 {
		t.Fatalf("unexpected update %+v", call)
	}
	if !call.ledger {
		t.Fatal("round rewards must be ledgered")
	}
	if call.metadata["reason"] != "round_reward" {
		t.Fatal("metadata must be passed through")
	}
}

func TestUpdateBalancesSkipsZeroAmounts(t *testing.T) {
	wallet := &mockWallet{}
	adapter := &EconomyAdapter{nk: wallet}

	err := adapter.UpdateBalances(context.Background(), []ports.WalletUpdate{
		{UserID: "nobody", Coins: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(wallet.calls) != 0 {
		t.Fatalf("expected no wallet updates, got %d", len(wallet.calls))
	}
}

func TestUpdateBalancesWrapsErrors(t *testing.T) {
	wallet := &mockWallet{err: errors.New("storage down")}
	adapter := &EconomyAdapter{nk: wallet}

	err := adapter.UpdateBalances(context.Background(), []ports.WalletUpdate{
		{UserID: "winner", Coins: 5},
	})
	if err == nil || !errors.Is(err, wallet.err) {
		t.Fatalf("expected the wallet error to be wrapped, got %v", err)
	}
}
