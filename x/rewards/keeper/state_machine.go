package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// Initialize sets the engine's configuration and zeroes the ledger. It may
// only run once; a second call fails with ErrAlreadyInitialized. Grounded on
// packages/rewards-logic/src/state_machine.rs's initialize.
func (k Keeper) Initialize(ctx context.Context, cfg types.Config) error {
	if _, err := k.Config.Get(ctx); err == nil {
		return types.ErrAlreadyInitialized
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, cfg); err != nil {
		panic(err)
	}
	if err := k.TotalStaked.Set(ctx, math.ZeroInt()); err != nil {
		panic(err)
	}
	if cfg.Inflation.Enabled {
		k.setLastInflationUpdate(ctx, sdk.UnwrapSDKContext(ctx).BlockTime().Unix())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeInitialize,
			sdk.NewAttribute(types.AttributeKeyRecipient, cfg.Authority),
		),
	)
	k.Logger().Info("initialized rewards engine", "authority", cfg.Authority)
	return nil
}

// GetConfig returns the persisted configuration, failing with
// ErrNotInitialized if Initialize has not yet run.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return types.Config{}, types.ErrNotInitialized
	}
	return cfg, nil
}

// UpdateConfig applies patch onto the persisted Config and re-validates the
// result — spec.md §6's UpdateConfig{patch}. Per the same row, a patch that
// flips inflation_module from disabled to enabled (or vice versa) resets
// LastInflationUpdate to now, exactly like SetInflationEnabled: spec.md §9's
// open question on disable-time cranking is settled as discard-on-retroactive
// in both places, so neither transition direction owes stakers anything
// accrued before the flip.
func (k Keeper) UpdateConfig(ctx context.Context, patch types.ConfigPatch) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}

	wasInflating := cfg.Inflation.Enabled
	updated := patch.Apply(cfg)
	if err := updated.Validate(); err != nil {
		return types.Config{}, err
	}
	if err := k.Config.Set(ctx, updated); err != nil {
		panic(err)
	}
	if patch.Inflation != nil && updated.Inflation.Enabled != wasInflating {
		k.setLastInflationUpdate(ctx, sdk.UnwrapSDKContext(ctx).BlockTime().Unix())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeyAuthority, updated.Authority),
		),
	)
	k.Logger().Info("updated rewards engine config", "authority", updated.Authority)
	return updated, nil
}

// GetWeight returns a staker's current weight, or zero if unset.
func (k Keeper) GetWeight(ctx context.Context, staker sdk.AccAddress) math.Int {
	w, err := k.UserWeight.Get(ctx, staker)
	if err != nil {
		return math.ZeroInt()
	}
	return w
}

// GetTotalStaked returns the engine-wide total weight.
func (k Keeper) GetTotalStaked(ctx context.Context) math.Int {
	v, err := k.TotalStaked.Get(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func (k Keeper) setWeight(ctx context.Context, staker sdk.AccAddress, weight math.Int) {
	if weight.IsZero() {
		if err := k.UserWeight.Remove(ctx, staker); err != nil {
			panic(err)
		}
		return
	}
	if err := k.UserWeight.Set(ctx, staker, weight); err != nil {
		panic(err)
	}
}

// getOrInitRewardInfo returns a staker's checkpoint for denom, or a fresh one
// at index zero if absent. settleStaker stores a row for every existing denom
// on each weight change, so a missing row means the denom's whole index grew
// while the staker held their current weight.
func (k Keeper) getOrInitRewardInfo(ctx context.Context, staker sdk.AccAddress, denom string) types.RewardInfo {
	key := collKey(staker, denom)
	ri, err := k.RewardInfo.Get(ctx, key)
	if err == nil {
		return ri
	}
	return types.NewRewardInfo(types.ZeroIndex())
}

func (k Keeper) setRewardInfo(ctx context.Context, staker sdk.AccAddress, denom string, ri types.RewardInfo) {
	if err := k.RewardInfo.Set(ctx, collKey(staker, denom), ri); err != nil {
		panic(err)
	}
}

func (k Keeper) getGlobalIndex(ctx context.Context, denom string) types.Index {
	idx, err := k.GlobalIndex.Get(ctx, denom)
	if err != nil {
		return types.ZeroIndex()
	}
	return idx
}

// storeOrPruneRewardInfo persists ri unless both its accrued balance and the
// staker's post-change weight are zero, in which case the row is removed —
// spec.md §8's prune law: "RewardInfo row exists iff (accrued > 0) OR
// (UserWeight[user] > 0)".
func (k Keeper) storeOrPruneRewardInfo(ctx context.Context, staker sdk.AccAddress, denom string, ri types.RewardInfo, weightAfter math.Int) {
	if ri.Accrued.IsZero() && weightAfter.IsZero() {
		if err := k.RewardInfo.Remove(ctx, collKey(staker, denom)); err != nil {
			panic(err)
		}
		return
	}
	k.setRewardInfo(ctx, staker, denom, ri)
}

// settleStaker folds every denom's global-index movement since the staker's
// last checkpoint into their accrued balance, using the weight they held
// *before* the weight change now being applied, then stores the checkpoint
// pruned against the weight the staker will hold *after* it. Grounded on
// packages/rewards-logic/src/state_machine.rs's running-index settlement.
func (k Keeper) settleStaker(ctx context.Context, staker sdk.AccAddress, weightBefore, weightAfter math.Int) {
	err := k.GlobalIndex.Walk(ctx, nil, func(denom string, globalIdx types.Index) (bool, error) {
		ri := k.getOrInitRewardInfo(ctx, staker, denom)
		delta := globalIdx.Sub(ri.Index)
		if !delta.IsZero() && weightBefore.IsPositive() {
			ri.Accrued = ri.Accrued.Add(delta.MulFloor(weightBefore))
		}
		ri.Index = globalIdx
		k.storeOrPruneRewardInfo(ctx, staker, denom, ri, weightAfter)
		return false, nil
	})
	if err != nil {
		panic(err)
	}
}

// withdrawAccrued zeroes every denom's accrued balance for staker (after
// settlement has folded the latest index movement in) and returns what was
// collected, normalized. Rows that become empty are pruned the same way
// settleStaker prunes them.
func (k Keeper) withdrawAccrued(ctx context.Context, staker sdk.AccAddress, weightAfter math.Int) sdk.Coins {
	var coins sdk.Coins
	err := k.GlobalIndex.Walk(ctx, nil, func(denom string, _ types.Index) (bool, error) {
		ri, err := k.RewardInfo.Get(ctx, collKey(staker, denom))
		if err != nil || ri.Accrued.IsZero() {
			return false, nil
		}
		coins = coins.Add(sdk.NewCoin(denom, ri.Accrued))
		ri.Accrued = math.ZeroInt()
		k.storeOrPruneRewardInfo(ctx, staker, denom, ri, weightAfter)
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return types.NormalizeCoins(coins)
}

// IncreaseWeight adds amount to staker's weight, settling any pending
// accrual first at the staker's prior weight. When withdraw is true the
// accrued balance is paid out immediately and the returned TransferIntent
// list is non-nil whenever there was something to pay.
func (k Keeper) IncreaseWeight(ctx context.Context, staker sdk.AccAddress, amount math.Int, withdraw bool) ([]types.TransferIntent, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, types.ErrInsufficientWeight.Wrap("increase amount must be positive")
	}
	weightBefore := k.GetWeight(ctx, staker)
	weightAfter := weightBefore.Add(amount)
	k.settleStaker(ctx, staker, weightBefore, weightAfter)

	k.setWeight(ctx, staker, weightAfter)
	k.addTotalStaked(ctx, amount)

	return k.maybeWithdraw(ctx, staker, weightAfter, withdraw), nil
}

// DecreaseWeight subtracts amount from staker's weight, failing with
// ErrUnderflow if the staker does not hold enough — spec.md §7's checked-sub
// on unstake beyond stake.
func (k Keeper) DecreaseWeight(ctx context.Context, staker sdk.AccAddress, amount math.Int, withdraw bool) ([]types.TransferIntent, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, types.ErrInsufficientWeight.Wrap("decrease amount must be positive")
	}
	weightBefore := k.GetWeight(ctx, staker)
	if weightBefore.LT(amount) {
		return nil, types.ErrUnderflow
	}
	weightAfter := weightBefore.Sub(amount)
	k.settleStaker(ctx, staker, weightBefore, weightAfter)

	k.setWeight(ctx, staker, weightAfter)
	k.addTotalStaked(ctx, amount.Neg())

	return k.maybeWithdraw(ctx, staker, weightAfter, withdraw), nil
}

// SetWeight assigns staker's weight directly — the permissioned staking
// module's mutation path, and the building block ClaimAccrued calls with an
// unchanged weight to settle-and-withdraw without moving stake.
func (k Keeper) SetWeight(ctx context.Context, staker sdk.AccAddress, weight math.Int, withdraw bool) ([]types.TransferIntent, error) {
	if weight.IsNil() || weight.IsNegative() {
		return nil, types.ErrInsufficientWeight.Wrap("weight must be non-negative")
	}
	weightBefore := k.GetWeight(ctx, staker)
	k.settleStaker(ctx, staker, weightBefore, weight)

	k.setWeight(ctx, staker, weight)
	k.addTotalStaked(ctx, weight.Sub(weightBefore))

	return k.maybeWithdraw(ctx, staker, weight, withdraw), nil
}

// maybeWithdraw is the shared withdraw=true tail of IncreaseWeight/
// DecreaseWeight/SetWeight: pays out accrued rewards right away instead of
// leaving them checkpointed, returning nil when there is nothing to pay.
func (k Keeper) maybeWithdraw(ctx context.Context, staker sdk.AccAddress, weightAfter math.Int, withdraw bool) []types.TransferIntent {
	if !withdraw {
		return nil
	}
	coins := k.withdrawAccrued(ctx, staker, weightAfter)
	if coins.IsZero() {
		return nil
	}
	return []types.TransferIntent{{Recipient: staker, Coins: coins}}
}

func (k Keeper) addTotalStaked(ctx context.Context, delta math.Int) {
	total := k.GetTotalStaked(ctx)
	newTotal := total.Add(delta)
	if newTotal.IsNegative() {
		panic(fmt.Sprintf("rewards: total staked went negative (%s + %s)", total, delta))
	}
	if err := k.TotalStaked.Set(ctx, newTotal); err != nil {
		panic(err)
	}
}

// GetAccrued returns the up-to-date accrued amount for staker/denom without
// mutating storage — settling the delta in memory only.
func (k Keeper) GetAccrued(ctx context.Context, staker sdk.AccAddress, denom string) math.Int {
	ri := k.getOrInitRewardInfo(ctx, staker, denom)
	globalIdx := k.getGlobalIndex(ctx, denom)
	delta := globalIdx.Sub(ri.Index)
	weight := k.GetWeight(ctx, staker)
	pending := math.ZeroInt()
	if !delta.IsZero() && weight.IsPositive() {
		pending = delta.MulFloor(weight)
	}
	return ri.Accrued.Add(pending)
}

// BatchAccrued is the batch form of GetAccrued, ported from
// packages/rewards-logic/src/state_machine.rs's calculate_users_rewards.
func (k Keeper) BatchAccrued(ctx context.Context, stakers []sdk.AccAddress, denom string) []math.Int {
	out := make([]math.Int, len(stakers))
	for i, staker := range stakers {
		out[i] = k.GetAccrued(ctx, staker, denom)
	}
	return out
}

// ClaimAccrued is equivalent to SetWeight(staker, currentWeight, withdraw:
// true) — it settles every denom, zeroes accrued balances, and returns the
// TransferIntents to execute. Fails with ErrNoRewardsToClaim if nothing was
// owed — resolves spec.md §9's idempotent-claim Open Question as a hard
// failure on an empty second claim.
func (k Keeper) ClaimAccrued(ctx context.Context, staker sdk.AccAddress) ([]types.TransferIntent, error) {
	weight := k.GetWeight(ctx, staker)
	k.settleStaker(ctx, staker, weight, weight)

	coins := k.withdrawAccrued(ctx, staker, weight)
	if coins.IsZero() {
		return nil, types.ErrNoRewardsToClaim
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeClaimRewards,
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coins.String()),
		),
	)
	k.Logger().Info("claimed accrued rewards", "staker", staker.String(), "amount", coins.String())

	return []types.TransferIntent{{Recipient: staker, Coins: coins}}, nil
}

// DistributeRewards folds a coin distribution into the global index for each
// denom, pro-rated by total staked weight. Ported from
// packages/rewards-logic/src/state_machine.rs's distribute_rewards.
func (k Keeper) DistributeRewards(ctx context.Context, coins sdk.Coins) error {
	total := k.GetTotalStaked(ctx)
	if total.IsZero() {
		return types.ErrZeroTotalStaked
	}
	for _, coin := range coins {
		delta := types.DeltaFromDistribution(coin.Amount, total)
		current := k.getGlobalIndex(ctx, coin.Denom)
		if err := k.GlobalIndex.Set(ctx, coin.Denom, current.Add(delta)); err != nil {
			panic(err)
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeDistribute,
			sdk.NewAttribute(types.AttributeKeyAmount, coins.String()),
			sdk.NewAttribute(types.AttributeKeyTotalStaked, total.String()),
		),
	)
	k.Logger().Info("distributed rewards", "amount", coins.String(), "total_staked", total.String())
	return nil
}

// AddAccruedRewards credits amount directly to staker's accrued balance for
// denom, bypassing the index fold — used by SplitFeesToStakers, which
// credits fee recipients outside the weighted distribution (the incentive
// crank and the underlying pass-through use DistributeRewards). Ported from
// packages/rewards-logic/src/state_machine.rs's add_accrued_rewards.
func (k Keeper) AddAccruedRewards(ctx context.Context, staker sdk.AccAddress, denom string, amount math.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return
	}
	if _, err := k.GlobalIndex.Get(ctx, denom); err != nil {
		if err := k.GlobalIndex.Set(ctx, denom, types.ZeroIndex()); err != nil {
			panic(err)
		}
	}
	ri := k.getOrInitRewardInfo(ctx, staker, denom)
	ri.Accrued = ri.Accrued.Add(amount)
	k.setRewardInfo(ctx, staker, denom, ri)
}
