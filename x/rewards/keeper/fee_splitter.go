package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// SplitFees implements spec.md §4.5's first variant: for each coin, each
// fee's share is floor(amount*rate), subtracted from the coin; zero shares
// are omitted and coins fully consumed are dropped from the remainder.
// Pure function, ported from packages/rewards-logic/src/util.rs's
// calculate_fee_split. Returns the post-fee remainder and each recipient's
// collected shares, keyed by recipient address, both normalized.
func SplitFees(rewards sdk.Coins, fees []types.FeeShare) (sdk.Coins, map[string]sdk.Coins) {
	shares := make(map[string]sdk.Coins, len(fees))
	remaining := rewards
	for _, fee := range fees {
		var cut sdk.Coins
		for _, coin := range rewards {
			amt := fee.Rate.MulInt(coin.Amount).TruncateInt()
			if amt.IsZero() {
				continue
			}
			cut = cut.Add(sdk.NewCoin(coin.Denom, amt))
		}
		if cut.IsZero() {
			continue
		}
		shares[fee.Recipient] = types.NormalizeCoins(shares[fee.Recipient].Add(cut...))
		remaining = remaining.Sub(cut...)
	}
	return types.NormalizeCoins(remaining), shares
}

// Distribute implements spec.md §4.5's second variant: splits rewards among
// fees' recipients proportionally to rate_i / Σrate (not subtracted from a
// remainder — the whole input is distributed). Pure function, ported from
// packages/rewards-logic/src/util.rs's calculate_fee_distribution.
func Distribute(rewards sdk.Coins, fees []types.FeeShare) map[string]sdk.Coins {
	shares := make(map[string]sdk.Coins, len(fees))
	totalRate := math.LegacyZeroDec()
	for _, fee := range fees {
		totalRate = totalRate.Add(fee.Rate)
	}
	if totalRate.IsZero() {
		return shares
	}
	for _, fee := range fees {
		weight := fee.Rate.Quo(totalRate)
		var cut sdk.Coins
		for _, coin := range rewards {
			amt := weight.MulInt(coin.Amount).TruncateInt()
			if amt.IsZero() {
				continue
			}
			cut = cut.Add(sdk.NewCoin(coin.Denom, amt))
		}
		if cut.IsZero() {
			continue
		}
		shares[fee.Recipient] = types.NormalizeCoins(cut)
	}
	return shares
}

// SplitFeesToStakers is the msg_server-facing wrapper around Distribute: it
// splits fees among the Distribution module's configured fee recipients by
// rate weight and credits each recipient's accrued balance directly with
// AddAccruedRewards — a flat one-time credit, not an index fold, matching
// the Distribution sub-module's "split now" semantics as distinct from the
// Ledger's ongoing pro-rata stream.
func (k Keeper) SplitFeesToStakers(ctx context.Context, cfg types.Config, fees sdk.Coins) error {
	shares := Distribute(fees, cfg.Distribution.Fees)
	for recipient, coins := range shares {
		addr, err := sdk.AccAddressFromBech32(recipient)
		if err != nil {
			return err
		}
		for _, coin := range coins {
			k.AddAccruedRewards(ctx, addr, coin.Denom, coin.Amount)
		}
	}
	return nil
}
