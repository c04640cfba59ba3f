package types

import (
	"cosmossdk.io/math"
	query "github.com/cosmos/cosmos-sdk/types/query"
)

// Query request/response types for the read-only operations named in
// spec.md §6/§4 (get_accrued, calculate_users_rewards, get_lri, config,
// weight listings), hand-written rather than protoc-generated for the same
// reason as messages.go.

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config
}

type QueryWeightRequest struct {
	Staker string
}

type QueryWeightResponse struct {
	Weight math.Int
}

type QueryWeightsRequest struct {
	Pagination *query.PageRequest
}

type StakerWeight struct {
	Staker string
	Weight math.Int
}

type QueryWeightsResponse struct {
	Weights    []StakerWeight
	Pagination *query.PageResponse
}

type QueryAccruedRequest struct {
	Staker string
	Denom  string
}

type QueryAccruedResponse struct {
	Accrued math.Int
}

type QueryCalculateUsersRewardsRequest struct {
	Stakers []string
	Denom   string
}

type QueryCalculateUsersRewardsResponse struct {
	Accrued []math.Int
}

type QueryIncentivesRequest struct {
	Pagination *query.PageRequest
}

type QueryIncentivesResponse struct {
	Incentives []Incentive
	Pagination *query.PageResponse
}

type QueryPendingIncentivesRequest struct{}

type QueryPendingIncentivesResponse struct {
	Pending math.Int
}

type QueryPendingInflationRequest struct{}

type QueryPendingInflationResponse struct {
	Pending math.Int
}

// QueryPendingUnderlyingRequest previews the staker's share of the
// underlying source's currently-reported pending amount for denom, per
// spec.md §4.4 — a pure CalculateUsersRewards-style preview, no state
// mutation.
type QueryPendingUnderlyingRequest struct {
	Staker string
	Denom  string
}

type QueryPendingUnderlyingResponse struct {
	Pending math.Int
}
