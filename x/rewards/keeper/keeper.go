package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/internal/codecutil"
	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

type (
	// IncentiveIndexes groups the secondary indexes for the IncentiveIM map —
	// grounded on x/collateral's UnbondingIndexes, generalized from a
	// Pair[epoch,participant] reverse index to a single-field Multi index
	// ordered by a mutable timestamp column.
	IncentiveIndexes struct {
		// ByLastDistributed orders incentives by the last time they were
		// cranked, so CrankIncentives can process the stalest entries first.
		ByLastDistributed *indexes.Multi[int64, uint64, types.Incentive]
	}

	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// authority is the module authority returned by GetAuthority —
		// cosmos-sdk "module authority" style. Owner-gated operations check
		// the persisted Config.Authority instead; Initialize does not compare
		// its sender against this field.
		authority string

		bankKeeper       types.BankKeeper
		bookkeepingBank  types.BookkeepingBankKeeper
		underlyingKeeper types.UnderlyingRewardsKeeper

		Schema collections.Schema

		Config              collections.Item[types.Config]
		TotalStaked         collections.Item[math.Int]
		GlobalIndex         collections.Map[string, types.Index]
		UserWeight          collections.Map[sdk.AccAddress, math.Int]
		RewardInfo          collections.Map[collections.Pair[sdk.AccAddress, string], types.RewardInfo]
		IncentiveIdCounter  collections.Sequence
		InflationFunds      collections.Item[sdk.Coin]
		LastInflationUpdate collections.Item[int64]

		// IncentiveIM is an IndexedMap keyed by the incentive's generated id.
		IncentiveIM collections.IndexedMap[uint64, types.Incentive, IncentiveIndexes]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	bookkeepingBank types.BookkeepingBankKeeper,
	underlyingKeeper types.UnderlyingRewardsKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	incentiveIdx := IncentiveIndexes{
		ByLastDistributed: indexes.NewMulti(
			sb,
			types.IncentiveByLastDistPref,
			"incentive_by_last_distributed",
			collections.Int64Key,
			collections.Uint64Key,
			func(_ uint64, v types.Incentive) int64 { return v.LastDistributed },
		),
	}

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		logger:       logger,
		authority:    authority,

		bankKeeper:       bankKeeper,
		bookkeepingBank:  bookkeepingBank,
		underlyingKeeper: underlyingKeeper,

		Config:      collections.NewItem(sb, types.ConfigKey, "config", codecutil.NewJSONValue[types.Config]("config")),
		TotalStaked: collections.NewItem(sb, types.TotalStakedKey, "total_staked", codecutil.NewJSONValue[math.Int]("total_staked")),
		GlobalIndex: collections.NewMap(sb, types.GlobalIndexPrefix, "global_index", collections.StringKey, codecutil.NewJSONValue[types.Index]("global_index")),
		UserWeight:  collections.NewMap(sb, types.UserWeightPrefix, "user_weight", sdk.AccAddressKey, codecutil.NewJSONValue[math.Int]("user_weight")),
		RewardInfo: collections.NewMap(
			sb,
			types.RewardInfoPrefix,
			"reward_info",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			codecutil.NewJSONValue[types.RewardInfo]("reward_info"),
		),
		IncentiveIdCounter:  collections.NewSequence(sb, types.IncentiveIdCounterKey, "incentive_id"),
		InflationFunds:      collections.NewItem(sb, types.InflationFundsKey, "inflation_funds", codecutil.NewJSONValue[sdk.Coin]("inflation_funds")),
		LastInflationUpdate: collections.NewItem(sb, types.LastInflationUpdateKey, "last_inflation_update", codecutil.NewJSONValue[int64]("last_inflation_update")),
		IncentiveIM: *collections.NewIndexedMap(
			sb,
			types.IncentivePrefix,
			"incentives",
			collections.Uint64Key,
			codecutil.NewJSONValue[types.Incentive]("incentive"),
			incentiveIdx,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
