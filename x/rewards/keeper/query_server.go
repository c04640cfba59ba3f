package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Config(c context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	cfg, err := k.GetConfig(c)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryConfigResponse{Config: cfg}, nil
}

func (k Keeper) Weight(c context.Context, req *types.QueryWeightRequest) (*types.QueryWeightResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakerAddr, err := sdk.AccAddressFromBech32(req.Staker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid staker address: %v", err)
	}
	return &types.QueryWeightResponse{Weight: k.GetWeight(c, stakerAddr)}, nil
}

func (k Keeper) Weights(c context.Context, req *types.QueryWeightsRequest) (*types.QueryWeightsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	weights, pageRes, err := query.CollectionPaginate(
		c,
		k.UserWeight,
		req.Pagination,
		func(addr sdk.AccAddress, weight math.Int) (types.StakerWeight, error) {
			return types.StakerWeight{Staker: addr.String(), Weight: weight}, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryWeightsResponse{Weights: weights, Pagination: pageRes}, nil
}

func (k Keeper) Accrued(c context.Context, req *types.QueryAccruedRequest) (*types.QueryAccruedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakerAddr, err := sdk.AccAddressFromBech32(req.Staker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid staker address: %v", err)
	}
	return &types.QueryAccruedResponse{Accrued: k.GetAccrued(c, stakerAddr, req.Denom)}, nil
}

func (k Keeper) CalculateUsersRewards(c context.Context, req *types.QueryCalculateUsersRewardsRequest) (*types.QueryCalculateUsersRewardsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakers := make([]sdk.AccAddress, 0, len(req.Stakers))
	for _, s := range req.Stakers {
		addr, err := sdk.AccAddressFromBech32(s)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid staker address %q: %v", s, err)
		}
		stakers = append(stakers, addr)
	}
	return &types.QueryCalculateUsersRewardsResponse{Accrued: k.BatchAccrued(c, stakers, req.Denom)}, nil
}

func (k Keeper) Incentives(c context.Context, req *types.QueryIncentivesRequest) (*types.QueryIncentivesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	incentives, pageRes, err := query.CollectionPaginate(
		c,
		k.IncentiveIM,
		req.Pagination,
		func(_ uint64, v types.Incentive) (types.Incentive, error) {
			return v, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryIncentivesResponse{Incentives: incentives, Pagination: pageRes}, nil
}

func (k Keeper) PendingIncentives(c context.Context, req *types.QueryPendingIncentivesRequest) (*types.QueryPendingIncentivesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	sdkCtx := sdk.UnwrapSDKContext(c)
	return &types.QueryPendingIncentivesResponse{Pending: k.TotalPendingIncentives(sdkCtx, sdkCtx.BlockTime().Unix())}, nil
}

func (k Keeper) PendingInflation(c context.Context, req *types.QueryPendingInflationRequest) (*types.QueryPendingInflationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	sdkCtx := sdk.UnwrapSDKContext(c)
	pending, err := k.ComputePendingInflation(sdkCtx, sdkCtx.BlockTime().Unix())
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &types.QueryPendingInflationResponse{Pending: pending}, nil
}

func (k Keeper) PendingUnderlying(c context.Context, req *types.QueryPendingUnderlyingRequest) (*types.QueryPendingUnderlyingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakerAddr, err := sdk.AccAddressFromBech32(req.Staker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid staker address: %v", err)
	}
	return &types.QueryPendingUnderlyingResponse{Pending: k.GetPendingUnderlying(c, stakerAddr, req.Denom)}, nil
}
