package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// validateIncentiveFunds gates AddIncentive against the incentive module's
// config per spec.md §4.2: an optional denom whitelist, a required minimum
// funding size, and an optional fixed fee subtracted from the attached
// funds. coins must contain exactly one coin of denom and, when a fee is
// configured, exactly one coin covering it (in the fee's own denom, or
// folded into the denom coin when the fee shares denom). Returns the net
// incentive total (post-fee) and the fee coin actually collected (zero
// value if none).
func validateIncentiveFunds(cfg types.Config, denom string, coins sdk.Coins) (math.Int, sdk.Coin, error) {
	if !cfg.Incentive.Whitelist.Allows(denom) {
		return math.Int{}, sdk.Coin{}, types.ErrInvalidIncentive.Wrapf("denom %s not whitelisted", denom)
	}

	total := coins.AmountOf(denom)
	feeCoin := sdk.Coin{}
	allowedDenoms := map[string]bool{denom: true}

	if cfg.Incentive.Fee != nil {
		fee := *cfg.Incentive.Fee
		allowedDenoms[fee.Denom] = true
		if fee.Denom == denom {
			if total.LT(fee.Amount) {
				return math.Int{}, sdk.Coin{}, types.ErrInvalidIncentive.Wrap("attached funds do not cover the incentive fee")
			}
			total = total.Sub(fee.Amount)
		} else if coins.AmountOf(fee.Denom).Equal(fee.Amount) {
			// fee covered separately, nothing to subtract from total
		} else {
			return math.Int{}, sdk.Coin{}, types.ErrInvalidIncentive.Wrap("attached funds do not match the required fee")
		}
		feeCoin = fee
	}

	for _, coin := range coins {
		if !allowedDenoms[coin.Denom] {
			return math.Int{}, sdk.Coin{}, types.ErrInvalidIncentive.Wrapf("unexpected denom %s in attached funds", coin.Denom)
		}
	}
	if total.LT(cfg.IncentiveMinSize()) {
		return math.Int{}, sdk.Coin{}, types.ErrInvalidIncentive.Wrap("incentive total is below the configured minimum size")
	}
	return total, feeCoin, nil
}

// AddIncentive registers a new scheduled release entry, returns its
// generated id, and immediately runs a single distribute_once(now) pass so a
// schedule whose start already lies in the past isn't left stranded until
// the next crank. Ported from packages/rewards-logic/src/incentive.rs's
// add_incentive.
func (k Keeper) AddIncentive(ctx context.Context, denom string, total math.Int, start, end int64, shape types.ReleaseShapeKind, now int64) (uint64, error) {
	if end <= start {
		return 0, types.ErrInvalidSchedule.Wrap("end must be after start")
	}
	if total.IsNil() || !total.IsPositive() {
		return 0, types.ErrInvalidSchedule.Wrap("total must be positive")
	}

	id, err := k.IncentiveIdCounter.Next(ctx)
	if err != nil {
		panic(err)
	}

	inc := types.Incentive{
		Id:              id,
		Denom:           denom,
		Total:           total,
		Released:        math.ZeroInt(),
		Start:           start,
		End:             end,
		LastDistributed: start,
		Shape:           shape,
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeAddIncentive,
			sdk.NewAttribute(types.AttributeKeyIncentiveId, fmtUint(id)),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
		),
	)
	k.Logger().Info("added incentive", "id", id, "denom", denom, "total", total.String())

	if released := inc.Pending(now); released.IsPositive() && k.GetTotalStaked(ctx).IsPositive() {
		inc.Released = inc.Released.Add(released)
		inc.LastDistributed = now
		if err := k.DistributeRewards(ctx, sdk.NewCoins(sdk.NewCoin(denom, released))); err != nil {
			return 0, err
		}
	}
	if inc.LastDistributed >= inc.End {
		if err := k.IncentiveIM.Remove(ctx, id); err != nil {
			panic(err)
		}
	} else if err := k.IncentiveIM.Set(ctx, id, inc); err != nil {
		panic(err)
	}

	return id, nil
}

// CrankIncentives distributes the pending portion of up to limit incentives,
// ordered stalest-first via the ByLastDistributed secondary index — spec.md's
// distribute_lri. Distributed amounts are folded into the global index via
// DistributeRewards (not a direct credit), so every staker benefits pro rata
// to their weight at crank time, matching the original contract's semantics.
func (k Keeper) CrankIncentives(ctx context.Context, now int64, limit uint32) (int, error) {
	if limit == 0 {
		limit = 10
	}

	iter, err := k.IncentiveIM.Indexes.ByLastDistributed.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	type pending struct {
		id     uint64
		denom  string
		amount math.Int
	}
	var toApply []pending
	var processed int
	for ; iter.Valid() && uint32(processed) < limit; iter.Next() {
		pk, err := iter.PrimaryKey()
		if err != nil {
			panic(err)
		}
		inc, err := k.IncentiveIM.Get(ctx, pk)
		if err != nil {
			panic(err)
		}
		processed++
		amt := inc.Pending(now)
		if amt.IsPositive() {
			toApply = append(toApply, pending{id: inc.Id, denom: inc.Denom, amount: amt})
			inc.Released = inc.Released.Add(amt)
			inc.LastDistributed = now
		}

		if inc.LastDistributed >= inc.End {
			if err := k.IncentiveIM.Remove(ctx, pk); err != nil {
				panic(err)
			}
		} else if amt.IsPositive() {
			if err := k.IncentiveIM.Set(ctx, pk, inc); err != nil {
				panic(err)
			}
		}
	}

	byDenom := map[string]math.Int{}
	for _, p := range toApply {
		if cur, ok := byDenom[p.denom]; ok {
			byDenom[p.denom] = cur.Add(p.amount)
		} else {
			byDenom[p.denom] = p.amount
		}
	}
	var coins sdk.Coins
	for denom, amt := range byDenom {
		coins = coins.Add(sdk.NewCoin(denom, amt))
	}
	coins = types.NormalizeCoins(coins)
	if !coins.IsZero() {
		if err := k.DistributeRewards(ctx, coins); err != nil {
			return 0, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeCrankIncentives,
			sdk.NewAttribute(types.AttributeKeyCount, fmtUint(uint64(processed))),
		),
	)
	return processed, nil
}

// TotalPendingIncentives returns the total pending (not-yet-released) amount
// across every registered incentive, as of now — spec.md's get_lri.
func (k Keeper) TotalPendingIncentives(ctx context.Context, now int64) math.Int {
	total := math.ZeroInt()
	err := k.IncentiveIM.Walk(ctx, nil, func(_ uint64, inc types.Incentive) (bool, error) {
		total = total.Add(inc.Pending(now))
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return total
}
