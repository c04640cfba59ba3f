package types

// Event types and attribute keys emitted by the msg_server operations,
// namespaced under EventTypePrefix — mirrors x/collateral's event naming.
const (
	EventTypeInitialize      = EventTypePrefix + "/initialize"
	EventTypeIncreaseWeight  = EventTypePrefix + "/increase_weight"
	EventTypeDecreaseWeight  = EventTypePrefix + "/decrease_weight"
	EventTypeSetWeight       = EventTypePrefix + "/set_weight"
	EventTypeClaimRewards    = EventTypePrefix + "/claim_rewards"
	EventTypeDistribute      = EventTypePrefix + "/distribute"
	EventTypeAddIncentive    = EventTypePrefix + "/add_incentive"
	EventTypeCrankIncentives = EventTypePrefix + "/crank_incentives"
	EventTypeFundInflation   = EventTypePrefix + "/fund_inflation"
	EventTypeWithdrawInflat  = EventTypePrefix + "/withdraw_inflation"
	EventTypeCrankInflation  = EventTypePrefix + "/crank_inflation"
	EventTypeSplitFees       = EventTypePrefix + "/split_fees"
	EventTypeDrainUnderlying = EventTypePrefix + "/drain_underlying"
	EventTypeUpdateConfig    = EventTypePrefix + "/update_config"

	AttributeKeyStaker       = "staker"
	AttributeKeyAuthority    = "authority"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
	AttributeKeyWeight       = "weight"
	AttributeKeyTotalStaked  = "total_staked"
	AttributeKeyIncentiveId  = "incentive_id"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyCount        = "count"
)
