package types

import "cosmossdk.io/math"

// RewardInfo is the per-staker, per-denom checkpoint against the global
// index — the running-index fold's persisted state. Grounded on
// packages/rewards-logic/src/state_machine.rs's RewardInfo struct.
type RewardInfo struct {
	// Index is the value of the global index at the staker's last checkpoint.
	Index Index `json:"index"`
	// Accrued is the amount already folded in and available to claim.
	Accrued math.Int `json:"accrued"`
}

// NewRewardInfo returns a zeroed checkpoint at the given index.
func NewRewardInfo(index Index) RewardInfo {
	return RewardInfo{Index: index, Accrued: math.ZeroInt()}
}
