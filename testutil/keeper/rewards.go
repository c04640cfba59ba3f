package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/EntropicLabs/cw-rewards/x/rewards/keeper"
	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// RewardsMocks holds every collaborator the rewards keeper needs, exposed so
// a test can arrange balances or pending-underlying amounts before dispatch.
type RewardsMocks struct {
	Bank       *InMemoryBank
	Underlying *FakeUnderlying
}

// RewardsKeeper builds a fresh keeper.Keeper backed by an in-memory IAVL
// store and hand-written collaborator doubles — mirrors
// testutil/keeper/collateral.go's CommitMultiStore + sdk.Context harness.
func RewardsKeeper(t testing.TB) (keeper.Keeper, sdk.Context, RewardsMocks) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	bank := NewInMemoryBank()
	underlying := NewFakeUnderlying()

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		bank,
		bank,
		underlying,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(0, 0).UTC()}, false, log.NewNopLogger())

	return k, ctx, RewardsMocks{Bank: bank, Underlying: underlying}
}

// WithBlockTime returns ctx advanced to the given unix timestamp, used by
// tests to simulate cranks across elapsed time.
func WithBlockTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0).UTC())
}
