package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/EntropicLabs/cw-rewards/x/rewards/keeper"
	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// TestSplitFeesMixedPercentages mirrors original_source's
// test_mixed_fee_percentages: a 10% and a 30% fee against 1000 leave 600.
func TestSplitFeesMixedPercentages(t *testing.T) {
	rewards := sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))
	fees := []types.FeeShare{
		{Rate: math.LegacyNewDecWithPrec(10, 2), Recipient: "test1"},
		{Rate: math.LegacyNewDecWithPrec(30, 2), Recipient: "test2"},
	}

	remaining, shares := keeper.SplitFees(rewards, fees)

	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 600)), remaining)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 100)), shares["test1"])
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 300)), shares["test2"])
}

// TestSplitFeesRoundingEffects mirrors original_source's
// test_rounding_effects: two 1/3 fees against 1000 floor to 333 each,
// leaving the floor remainder (334) with the caller, not silently dropped.
func TestSplitFeesRoundingEffects(t *testing.T) {
	rewards := sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))
	third := math.LegacyNewDec(1).Quo(math.LegacyNewDec(3))
	fees := []types.FeeShare{
		{Rate: third, Recipient: "test1"},
		{Rate: third, Recipient: "test2"},
	}

	remaining, shares := keeper.SplitFees(rewards, fees)

	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 333)), shares["test1"])
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 333)), shares["test2"])
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 334)), remaining)
}

// TestSplitFeesZeroRate mirrors original_source's test_zero_fees: a 0% fee
// produces no share entry and leaves the reward untouched.
func TestSplitFeesZeroRate(t *testing.T) {
	rewards := sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))
	fees := []types.FeeShare{{Rate: math.LegacyZeroDec(), Recipient: "test1"}}

	remaining, shares := keeper.SplitFees(rewards, fees)

	require.Empty(t, shares)
	require.Equal(t, rewards, remaining)
}

// TestDistributeUnequalWeights mirrors original_source's
// test_distribution_unequal: rates 5% and 15% (1:3) split the whole 1000
// as 250/750, not subtracted from any remainder.
func TestDistributeUnequalWeights(t *testing.T) {
	rewards := sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))
	fees := []types.FeeShare{
		{Rate: math.LegacyNewDecWithPrec(5, 2), Recipient: "test1"},
		{Rate: math.LegacyNewDecWithPrec(15, 2), Recipient: "test2"},
	}

	shares := keeper.Distribute(rewards, fees)

	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 250)), shares["test1"])
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 750)), shares["test2"])
}
