package commitment

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// The engine composes with several mutually-distrusting external components.
// It consumes them through the interfaces below and never assumes anything
// about their internals; in particular the vault owns the authoritative
// running total and must itself be reentrancy-safe.

// Vault is the external custodial holder of locked capital.
type Vault interface {
	// Address is the vault's identity, used as the spender of the one-time
	// payment allowance granted during Commit.
	Address() common.Address

	// Controller returns the single account currently authorized to lock
	// funds. Commit requires it to be the engine itself.
	Controller() common.Address

	// TotalLockedAmount is the sum of all amounts ever locked through this
	// mechanism for the current commitment lifetime. This is the system's
	// only durable running counter.
	TotalLockedAmount() *big.Int

	// Lock pulls amount (previously approved by the controller) into custody
	// under contributor, crediting rewardWeight reward weight.
	Lock(contributor common.Address, amount *big.Int, rewardWeight *big.Int) error
}

// PaymentAsset is the wrapped-payment-asset contract: it accepts native
// currency deposits and exposes an allowance-based transfer.
type PaymentAsset interface {
	Address() common.Address

	// Deposit credits owner with amount of wrapped units against the native
	// value attached to the call.
	Deposit(owner common.Address, amount *big.Int) error

	// Approve grants spender a spending allowance of exactly amount out of
	// owner's balance.
	Approve(owner, spender common.Address, amount *big.Int) error

	// Withdraw burns amount of owner's wrapped units, releasing the native
	// value. Compensation path: the engine returns its own deposit when a
	// later step of the same commit fails.
	Withdraw(owner common.Address, amount *big.Int) error
}

// RewardAsset is the fungible reward token. Transfers may be globally
// disabled; the engine force-enables them for the duration of a reward split
// and restores the previous switch state afterwards.
type RewardAsset interface {
	Address() common.Address

	// TransferEnabled reports the current state of the global transfer switch.
	TransferEnabled() bool

	// EnableTransfer flips the global transfer switch.
	EnableTransfer(enabled bool)

	// Transfer moves amount from one holder to another. Returns false if the
	// transfer could not be performed (switch off, insufficient balance).
	Transfer(from, to common.Address, amount *big.Int) bool

	// BalanceOf returns the holder's current balance.
	BalanceOf(owner common.Address) *big.Int

	// Burn destroys amount of owner's balance, shrinking total supply.
	// Compensation path: the engine burns freshly issued rewards back when a
	// commit fails after issuance.
	Burn(owner common.Address, amount *big.Int) error
}

// Actions checked against the access policy. Which roles hold them is the
// policy's business; the engine only names the action being attempted.
const (
	ActionSetTerms = "commitment/set-terms"
	ActionReclaim  = "commitment/reclaim"
)

// AccessPolicy is the generic permission lookup gating the mutating
// admin entry points. Commit is open to any payer and Finalize is
// deliberately permissionless, so neither consults the policy.
type AccessPolicy interface {
	Allowed(subject common.Address, action string) bool
}

// Token is the minimal surface Reclaim needs to rescue an arbitrary asset
// accidentally sent to the engine's address.
type Token interface {
	Address() common.Address
	BalanceOf(owner common.Address) *big.Int
	Transfer(from, to common.Address, amount *big.Int) bool
}
