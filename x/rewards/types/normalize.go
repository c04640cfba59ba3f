package types

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NormalizeCoins sorts coins ascending by denom, sums duplicate denoms, and
// drops zero-amount entries. Ported from packages/rewards-logic/src/util.rs's
// normalize helper (supplemented feature — see SPEC_FULL.md §4); every
// operation that returns a coin list runs it through this first.
func NormalizeCoins(coins []sdk.Coin) sdk.Coins {
	sums := make(map[string]sdk.Coin, len(coins))
	order := make([]string, 0, len(coins))
	for _, c := range coins {
		if existing, ok := sums[c.Denom]; ok {
			sums[c.Denom] = existing.Add(c)
		} else {
			sums[c.Denom] = c
			order = append(order, c.Denom)
		}
	}

	out := make(sdk.Coins, 0, len(order))
	for _, denom := range order {
		c := sums[denom]
		if !c.IsZero() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}
