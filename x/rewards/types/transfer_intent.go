package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// TransferIntent is an outbound fund movement produced by a state-machine
// operation, the Go analog of spec.md §5's "post-commit message, not a
// reentrant call". In this port there is no separate post-commit message
// queue: the keeper's msg_server handlers execute the intent synchronously
// through types.BookkeepingBankKeeper within the same state-machine
// transaction, so either every write and transfer commits together or
// nothing does (see SPEC_FULL.md §3.7).
type TransferIntent struct {
	Recipient sdk.AccAddress
	Coins     sdk.Coins
	// Memo carries an optional callback tag for the recipient, mirroring the
	// original contract's optional "msg" field on bank sends.
	Memo string
}
