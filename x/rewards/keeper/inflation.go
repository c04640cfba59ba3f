package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

const secondsPerYear = int64(365 * 24 * 60 * 60)

// getLastInflationUpdate returns the last crank or enable/disable timestamp
// (FundInflation does not move it), defaulting
// to now on first use so the very first crank accrues nothing.
func (k Keeper) getLastInflationUpdate(ctx context.Context, now int64) int64 {
	v, err := k.LastInflationUpdate.Get(ctx)
	if err != nil {
		return now
	}
	return v
}

func (k Keeper) setLastInflationUpdate(ctx context.Context, now int64) {
	if err := k.LastInflationUpdate.Set(ctx, now); err != nil {
		panic(err)
	}
}

func (k Keeper) getInflationFunds(ctx context.Context) sdk.Coin {
	v, err := k.InflationFunds.Get(ctx)
	if err != nil {
		cfg, cfgErr := k.GetConfig(ctx)
		denom := "stake"
		if cfgErr == nil && cfg.Inflation.Denom != "" {
			denom = cfg.Inflation.Denom
		}
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return v
}

func (k Keeper) setInflationFunds(ctx context.Context, coin sdk.Coin) {
	if err := k.InflationFunds.Set(ctx, coin); err != nil {
		panic(err)
	}
}

// ComputePendingInflation computes the emission owed since the last crank:
// min(reserve, stake * rate * dt / year) — ported from
// packages/rewards-logic/src/inflation.rs.
func (k Keeper) ComputePendingInflation(ctx context.Context, now int64) (math.Int, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if !cfg.Inflation.Enabled {
		return math.Int{}, types.ErrInflationNotEnabled
	}

	last := k.getLastInflationUpdate(ctx, now)
	dt := now - last
	if dt <= 0 {
		return math.ZeroInt(), nil
	}

	total := k.GetTotalStaked(ctx)
	reserve := k.getInflationFunds(ctx)

	emission := math.LegacyNewDecFromInt(total).
		Mul(cfg.Inflation.RatePerYear).
		MulInt64(dt).
		QuoInt64(secondsPerYear).
		TruncateInt()

	if emission.GT(reserve.Amount) {
		emission = reserve.Amount
	}
	return emission, nil
}

// CrankInflation materializes the pending emission into the global reward
// index for the inflation denom and advances the watermark.
func (k Keeper) CrankInflation(ctx context.Context, now int64) (math.Int, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return math.Int{}, err
	}
	emission, err := k.ComputePendingInflation(ctx, now)
	if err != nil {
		return math.Int{}, err
	}
	k.setLastInflationUpdate(ctx, now)
	if emission.IsZero() {
		return emission, nil
	}

	reserve := k.getInflationFunds(ctx)
	k.setInflationFunds(ctx, reserve.Sub(sdk.NewCoin(reserve.Denom, emission)))

	if err := k.DistributeRewards(ctx, sdk.NewCoins(sdk.NewCoin(cfg.Inflation.Denom, emission))); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeCrankInflation,
			sdk.NewAttribute(types.AttributeKeyAmount, emission.String()),
		),
	)
	k.Logger().Info("cranked inflation", "emitted", emission.String())
	return emission, nil
}

// FundInflation adds coin to the inflation reserve. The coin's denom must
// match the configured inflation denom.
func (k Keeper) FundInflation(ctx context.Context, coin sdk.Coin) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if !cfg.Inflation.Enabled {
		return types.ErrInflationNotEnabled
	}
	if coin.Denom != cfg.Inflation.Denom {
		return types.ErrDenomMismatch.Wrapf("expected denom %s, got %s", cfg.Inflation.Denom, coin.Denom)
	}

	reserve := k.getInflationFunds(ctx)
	k.setInflationFunds(ctx, reserve.Add(coin))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeFundInflation,
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	)
	k.Logger().Info("funded inflation reserve", "amount", coin.String())
	return nil
}

// WithdrawInflation removes amount from the reserve for the authority to
// send elsewhere. Per spec.md §4.3 the withdrawal must not exceed the
// reserve that remains *after* reserving the would-be-pending emission for
// stakers as of now — the crank itself has not run, but its accounting is
// priced into the ceiling.
func (k Keeper) WithdrawInflation(ctx context.Context, amount sdk.Coin, now int64) error {
	reserve := k.getInflationFunds(ctx)
	if amount.Denom != reserve.Denom {
		return types.ErrInsufficientReserve
	}

	pending := math.ZeroInt()
	cfg, err := k.GetConfig(ctx)
	if err == nil && cfg.Inflation.Enabled {
		if p, err := k.ComputePendingInflation(ctx, now); err == nil {
			pending = p
		}
	}
	available := reserve.Amount.Sub(pending)
	if amount.Amount.GT(available) {
		return types.ErrInsufficientReserve
	}
	k.setInflationFunds(ctx, reserve.Sub(amount))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeWithdrawInflat,
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	k.Logger().Info("withdrew inflation reserve", "amount", amount.String())
	return nil
}

// SetInflationEnabled toggles inflation. Disabling discards any un-cranked
// pending emission rather than retroactively materializing it — spec.md
// §9's Open Question resolution.
func (k Keeper) SetInflationEnabled(ctx context.Context, enabled bool, now int64) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Inflation.Enabled == enabled {
		if enabled {
			return types.ErrInflationEnabled
		}
		return types.ErrInflationNotEnabled
	}
	cfg.Inflation.Enabled = enabled
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, cfg); err != nil {
		panic(err)
	}
	k.setLastInflationUpdate(ctx, now)
	k.Logger().Info(fmt.Sprintf("inflation enabled set to %v", enabled))
	return nil
}
