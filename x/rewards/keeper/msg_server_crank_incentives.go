package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

func (k msgServer) CrankIncentives(goCtx context.Context, msg *types.MsgCrankIncentives) (*types.MsgCrankIncentivesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Incentive.Enabled {
		return nil, types.ErrIncentivesNotEnabled
	}

	limit := msg.Limit
	if limit == 0 {
		limit = cfg.Incentive.CrankLimit
	}
	processed, err := k.Keeper.CrankIncentives(ctx, ctx.BlockTime().Unix(), limit)
	if err != nil {
		return nil, err
	}

	return &types.MsgCrankIncentivesResponse{Processed: uint32(processed)}, nil
}
