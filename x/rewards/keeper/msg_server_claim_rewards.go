package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// ClaimRewards settles and pays out a staker's accrued rewards, executing
// the resulting TransferIntent synchronously through the bookkeeping bank
// keeper — see SPEC_FULL.md §3.7 on why this engine has no separate
// post-commit message queue.
func (k msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	k.preDrainRewardSources(ctx, cfg)

	stakerAddr, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, err
	}

	intents, err := k.Keeper.ClaimAccrued(ctx, stakerAddr)
	if err != nil {
		return nil, err
	}

	var claimed sdk.Coins
	for _, intent := range intents {
		if err := k.executeTransferIntent(ctx, intent); err != nil {
			return nil, err
		}
		claimed = claimed.Add(intent.Coins...)
	}

	return &types.MsgClaimRewardsResponse{Claimed: claimed}, nil
}

// executeTransferIntent materializes a TransferIntent via the bookkeeping
// bank keeper, sending from the module account to the recipient.
func (k Keeper) executeTransferIntent(ctx context.Context, intent types.TransferIntent) error {
	if intent.Coins.IsZero() {
		return nil
	}
	if err := k.bookkeepingBank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, intent.Recipient, intent.Coins, "rewards claim"); err != nil {
		return err
	}
	for _, coin := range intent.Coins {
		k.bookkeepingBank.LogSubAccountTransaction(ctx, intent.Recipient.String(), types.ModuleName, "rewards", coin, "rewards claim")
	}
	return nil
}
