package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// UpdateConfig is spec.md §6's UpdateConfig{patch} — the facade's
// authorization step gates the whole patch on the current owner (the same
// authorizeAdmin used by WithdrawInflation and SetInflationEnabled), then
// the primary effect overlays patch onto the persisted Config
// via Keeper.UpdateConfig.
func (k msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeAdmin(cfg, msg.Authority); err != nil {
		return nil, err
	}

	k.preDrainRewardSources(ctx, cfg)

	updated, err := k.Keeper.UpdateConfig(ctx, msg.Patch)
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateConfigResponse{Config: updated}, nil
}
