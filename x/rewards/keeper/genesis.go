package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// InitGenesis seeds the store from an exported GenesisState — grounded on
// x/streamvesting/module/genesis.go's flat-slice import loop.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.Config.Set(ctx, gs.Config); err != nil {
		panic(err)
	}
	if err := k.TotalStaked.Set(ctx, gs.TotalStaked); err != nil {
		panic(err)
	}
	for _, di := range gs.GlobalIndex {
		if err := k.GlobalIndex.Set(ctx, di.Denom, di.Index); err != nil {
			panic(err)
		}
	}
	for _, w := range gs.UserWeights {
		addr, err := sdk.AccAddressFromBech32(w.Staker)
		if err != nil {
			return err
		}
		if err := k.UserWeight.Set(ctx, addr, w.Weight); err != nil {
			panic(err)
		}
	}
	for _, sri := range gs.RewardInfos {
		addr, err := sdk.AccAddressFromBech32(sri.Staker)
		if err != nil {
			return err
		}
		if err := k.RewardInfo.Set(ctx, collKey(addr, sri.Denom), sri.Info); err != nil {
			panic(err)
		}
	}
	for _, inc := range gs.Incentives {
		if err := k.IncentiveIM.Set(ctx, inc.Id, inc); err != nil {
			panic(err)
		}
	}
	if gs.NextIncent > 0 {
		if err := k.IncentiveIdCounter.Set(ctx, gs.NextIncent); err != nil {
			panic(err)
		}
	}
	for _, f := range gs.InflationRes.Funds {
		if err := k.InflationFunds.Set(ctx, sdk.NewCoin(f.Denom, f.Amount)); err != nil {
			panic(err)
		}
	}
	if err := k.LastInflationUpdate.Set(ctx, gs.InflationRes.LastInflationUpdate); err != nil {
		panic(err)
	}

	return nil
}

// ExportGenesis dumps the full store into a GenesisState.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()

	if cfg, err := k.Config.Get(ctx); err == nil {
		gs.Config = cfg
	}
	gs.TotalStaked = k.GetTotalStaked(ctx)

	if err := k.GlobalIndex.Walk(ctx, nil, func(denom string, idx types.Index) (bool, error) {
		gs.GlobalIndex = append(gs.GlobalIndex, types.DenomIndex{Denom: denom, Index: idx})
		return false, nil
	}); err != nil {
		panic(err)
	}

	if err := k.UserWeight.Walk(ctx, nil, func(addr sdk.AccAddress, weight math.Int) (bool, error) {
		gs.UserWeights = append(gs.UserWeights, types.StakerWeight{Staker: addr.String(), Weight: weight})
		return false, nil
	}); err != nil {
		panic(err)
	}

	if err := k.RewardInfo.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], ri types.RewardInfo) (bool, error) {
		gs.RewardInfos = append(gs.RewardInfos, types.StakerRewardInfo{
			Staker: key.K1().String(),
			Denom:  key.K2(),
			Info:   ri,
		})
		return false, nil
	}); err != nil {
		panic(err)
	}

	if err := k.IncentiveIM.Walk(ctx, nil, func(_ uint64, inc types.Incentive) (bool, error) {
		gs.Incentives = append(gs.Incentives, inc)
		return false, nil
	}); err != nil {
		panic(err)
	}
	nextId, err := k.IncentiveIdCounter.Peek(ctx)
	if err == nil {
		gs.NextIncent = nextId
	}

	if funds, err := k.InflationFunds.Get(ctx); err == nil {
		gs.InflationRes.Funds = append(gs.InflationRes.Funds, types.DenomAmount{Denom: funds.Denom, Amount: funds.Amount})
	}
	if last, err := k.LastInflationUpdate.Get(ctx); err == nil {
		gs.InflationRes.LastInflationUpdate = last
	}

	return gs
}
