package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

func (k msgServer) DrainUnderlying(goCtx context.Context, msg *types.MsgDrainUnderlying) (*types.MsgDrainUnderlyingResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	withdrawn, err := k.Keeper.DrainUnderlying(ctx)
	if err != nil {
		return nil, err
	}

	return &types.MsgDrainUnderlyingResponse{Withdrawn: withdrawn}, nil
}
