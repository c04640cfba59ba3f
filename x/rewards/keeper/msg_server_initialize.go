package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

func (k msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg := msg.Config
	cfg.Authority = msg.Authority
	if err := k.Keeper.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	return &types.MsgInitializeResponse{}, nil
}
