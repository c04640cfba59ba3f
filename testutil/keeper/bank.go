package keeper

import (
	"context"
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// InMemoryBank is a hand-written stand-in for x/bookkeeper/keeper.Keeper,
// implementing both types.BankKeeper and types.BookkeepingBankKeeper over a
// plain in-memory balance map — grounded on
// testutil/keeper/in_memory_mocks.go's in-memory collaborator pattern
// (generated mockgen doubles were not part of the retrieval pack, so the
// fund-movement collaborator is hand-maintained here instead).
type InMemoryBank struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins
	logs     []SubAccountLog
}

// SubAccountLog records one LogSubAccountTransaction call, for assertions.
type SubAccountLog struct {
	Recipient, Sender, SubAccount string
	Amount                        sdk.Coin
	Memo                          string
}

var _ types.BankKeeper = (*InMemoryBank)(nil)
var _ types.BookkeepingBankKeeper = (*InMemoryBank)(nil)

func NewInMemoryBank() *InMemoryBank {
	return &InMemoryBank{balances: make(map[string]sdk.Coins)}
}

// SetBalance seeds addr's balance, for funding stakers/senders in tests.
func (b *InMemoryBank) SetBalance(addr string, coins sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr] = coins
}

// Balance returns addr's current balance, for test assertions.
func (b *InMemoryBank) Balance(addr string) sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr]
}

func (b *InMemoryBank) Logs() []SubAccountLog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]SubAccountLog(nil), b.logs...)
}

func (b *InMemoryBank) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr.String()]
}

func (b *InMemoryBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.Lock()
	defer b.mu.Unlock()
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *InMemoryBank) move(from, to string, amt sdk.Coins) error {
	if amt.IsZero() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if from != "" {
		bal := b.balances[from]
		newBal, ok := subCoins(bal, amt)
		if !ok {
			return types.ErrInvalidCoins.Wrapf("%s has insufficient funds to send %s", from, amt)
		}
		b.balances[from] = newBal
	}
	if to != "" {
		b.balances[to] = b.balances[to].Add(amt...)
	}
	return nil
}

func subCoins(bal, amt sdk.Coins) (sdk.Coins, bool) {
	for _, c := range amt {
		if bal.AmountOf(c.Denom).LT(c.Amount) {
			return nil, false
		}
	}
	return bal.Sub(amt...), true
}

func (b *InMemoryBank) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, _ string) error {
	return b.move(fromAddr.String(), toAddr.String(), amt)
}

func (b *InMemoryBank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, _ string) error {
	return b.move(senderModule, recipientAddr.String(), amt)
}

func (b *InMemoryBank) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins, _ string) error {
	return b.move(senderModule, recipientModule, amt)
}

func (b *InMemoryBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, _ string) error {
	return b.move(senderAddr.String(), recipientModule, amt)
}

func (b *InMemoryBank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins, _ string) error {
	return b.move("", moduleName, amt)
}

func (b *InMemoryBank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins, _ string) error {
	return b.move(moduleName, "", amt)
}

func (b *InMemoryBank) LogSubAccountTransaction(_ context.Context, recipient, sender, subAccount string, amt sdk.Coin, memo string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logs = append(b.logs, SubAccountLog{Recipient: recipient, Sender: sender, SubAccount: subAccount, Amount: amt, Memo: memo})
}

// FakeUnderlying is a settable stand-in for types.UnderlyingRewardsKeeper —
// tests arrange its pending/withdrawable amount directly rather than
// simulating a real external contract. WithdrawRewards only zeroes and
// returns the arranged amounts; it does not credit the module account, so
// tests that pay those rewards out fund the module's bank balance themselves.
type FakeUnderlying struct {
	mu      sync.Mutex
	pending map[string]sdk.Coin
}

var _ types.UnderlyingRewardsKeeper = (*FakeUnderlying)(nil)

func NewFakeUnderlying() *FakeUnderlying {
	return &FakeUnderlying{pending: make(map[string]sdk.Coin)}
}

// SetPending arranges denom's currently-reported pending amount for holder.
func (f *FakeUnderlying) SetPending(holder sdk.AccAddress, coin sdk.Coin) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[holder.String()+"/"+coin.Denom] = coin
}

func (f *FakeUnderlying) PendingRewards(_ context.Context, holder sdk.AccAddress, denom string) sdk.Coin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.pending[holder.String()+"/"+denom]; ok {
		return c
	}
	return sdk.NewCoin(denom, math.ZeroInt())
}

func (f *FakeUnderlying) WithdrawRewards(_ context.Context, holder sdk.AccAddress) (sdk.Coins, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out sdk.Coins
	prefix := holder.String() + "/"
	for key, coin := range f.pending {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix && coin.IsPositive() {
			out = out.Add(coin)
			f.pending[key] = sdk.NewCoin(coin.Denom, math.ZeroInt())
		}
	}
	return out, nil
}
