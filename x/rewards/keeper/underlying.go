package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// moduleAddress is the rewards module's own account — the "self" the
// underlying rewards source attributes pool-wide pending rewards to,
// per spec.md §4.4.
func (k Keeper) moduleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// DrainUnderlying pulls the engine's own pending rewards from the configured
// underlying source and folds them into the weighted index exactly like a
// direct distribution — spec.md §4.4's pass-through composition: underlying
// rewards are attributed to the engine's own account, then distributed pro
// rata against TotalStaked like any other DistributeRewards call, not
// credited to any one staker directly. Ported from
// packages/rewards-logic/src/state_machine.rs's underlying drain path.
func (k Keeper) DrainUnderlying(ctx context.Context) (sdk.Coins, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Underlying.Enabled || k.underlyingKeeper == nil {
		return nil, types.ErrUnderlyingNotEnabled
	}
	if k.GetTotalStaked(ctx).IsZero() {
		return nil, nil
	}

	withdrawn, err := k.underlyingKeeper.WithdrawRewards(ctx, k.moduleAddress())
	if err != nil {
		return nil, err
	}
	withdrawn = types.NormalizeCoins(withdrawn)
	if withdrawn.IsZero() {
		return nil, nil
	}
	if err := k.DistributeRewards(ctx, withdrawn); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeDrainUnderlying,
			sdk.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
		),
	)
	k.Logger().Info("drained underlying rewards", "amount", withdrawn.String())
	return withdrawn, nil
}

// preDrainRewardSources runs every configured reward source's crank ahead of
// any operation that reads or mutates the weighted index — spec.md §4.6 /
// SPEC_FULL.md §3.7's facade step one, "pre-drain": every Stake, Unstake,
// SetWeight, ClaimRewards and DistributeRewards call first cranks incentives
// (if enabled and something is staked), cranks inflation (if enabled), and
// pulls the underlying source forward (if enabled), so a staker's settled
// balance always reflects the latest pending amounts from every source, not
// just directly-distributed ones. Errors are swallowed throughout: a
// misbehaving or not-yet-enabled source must never block the primary
// operation it precedes.
func (k Keeper) preDrainRewardSources(ctx context.Context, cfg types.Config) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if cfg.Incentive.Enabled && k.GetTotalStaked(ctx).IsPositive() {
		if _, err := k.CrankIncentives(ctx, now, cfg.Incentive.CrankLimit); err != nil {
			k.Logger().Error("pre-drain of incentives failed", "error", err)
		}
	}

	if cfg.Inflation.Enabled {
		if _, err := k.CrankInflation(ctx, now); err != nil {
			k.Logger().Error("pre-drain of inflation failed", "error", err)
		}
	}

	if !cfg.Underlying.Enabled || k.underlyingKeeper == nil {
		return
	}
	if _, err := k.DrainUnderlying(ctx); err != nil && err != types.ErrUnderlyingNotEnabled {
		k.Logger().Error("pre-drain of underlying rewards failed", "error", err)
	}
}

// GetPendingUnderlying previews staker's share of the underlying source's
// currently-reported pending amount for denom, without mutating state —
// spec.md §4.4's "pending-rewards queries include the would-be-distributed
// underlying share using calculate_users_rewards against the underlying's
// reported pending amounts".
func (k Keeper) GetPendingUnderlying(ctx context.Context, staker sdk.AccAddress, denom string) math.Int {
	cfg, err := k.GetConfig(ctx)
	if err != nil || !cfg.Underlying.Enabled || k.underlyingKeeper == nil {
		return math.ZeroInt()
	}
	pending := k.underlyingKeeper.PendingRewards(ctx, k.moduleAddress(), denom)
	if pending.IsZero() {
		return math.ZeroInt()
	}
	total := k.GetTotalStaked(ctx)
	weight := k.GetWeight(ctx, staker)
	if total.IsZero() || weight.IsZero() {
		return math.ZeroInt()
	}
	return pending.Amount.Mul(weight).Quo(total)
}
