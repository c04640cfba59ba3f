package keeper

import (
	"strconv"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// collKey builds the RewardInfo map's Pair[staker,denom] primary key.
func collKey(staker sdk.AccAddress, denom string) collections.Pair[sdk.AccAddress, string] {
	return collections.Join(staker, denom)
}

func fmtUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
