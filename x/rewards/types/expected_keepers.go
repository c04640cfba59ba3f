package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the minimal read path this module needs from the bank
// module.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// BookkeepingBankKeeper is the fund-movement collaborator every
// TransferIntent is executed through — a double/simple-entry audit-logging
// bank wrapper (see DESIGN.md), out of scope to implement as this module's
// own dependency since it belongs to the host chain's bank layer; callers
// supply a concrete implementation at construction time.
type BookkeepingBankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string)
}

// UnderlyingRewardsKeeper is the external collaborator DrainUnderlying pulls
// pending rewards from — a pass-through source (e.g. a validator staking
// module) this engine re-distributes by weight. Out of scope to implement
// (host execution environment, per spec.md §1); only the interface is owned.
type UnderlyingRewardsKeeper interface {
	// PendingRewards returns the amount of denom accrued to holder but not
	// yet withdrawn from the underlying source.
	PendingRewards(ctx context.Context, holder sdk.AccAddress, denom string) sdk.Coin
	// WithdrawRewards claims holder's pending rewards from the underlying
	// source into the rewards module account, returning what was withdrawn.
	WithdrawRewards(ctx context.Context, holder sdk.AccAddress) (sdk.Coins, error)
}
