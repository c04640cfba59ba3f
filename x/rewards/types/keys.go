package types

const (
	// ModuleName defines the module name.
	ModuleName = "rewards"

	// StoreKey is the prefix under which all module state is stored.
	StoreKey = ModuleName

	// EventTypePrefix namespaces every event this module emits.
	EventTypePrefix = "rewards"
)

// Collections key prefixes, one byte each, matching the teacher's convention
// of short ASCII prefixes under a single store key (x/collateral/keeper.go).
var (
	TotalStakedKey          = []byte{0x01}
	GlobalIndexPrefix       = []byte{0x02}
	UserWeightPrefix        = []byte{0x03}
	RewardInfoPrefix        = []byte{0x04}
	IncentivePrefix         = []byte{0x05}
	IncentiveByLastDistPref = []byte{0x06}
	IncentiveIdCounterKey   = []byte{0x07}
	InflationFundsKey       = []byte{0x08}
	LastInflationUpdateKey  = []byte{0x09}
	ConfigKey               = []byte{0x0A}
)
