// Package vault provides an in-memory reference implementation of the
// custodial vault collaborator: the external holder of locked capital with a
// controller-gated lock operation and a running total that serves as the
// single source of truth for how much has been raised.
//
// How individual contributor balances are unlocked after a failed commitment
// is the real vault's business and is deliberately not modelled here beyond
// simple per-contributor bookkeeping.
package vault

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNonPositiveAmount is returned by Lock for zero or negative amounts.
var ErrNonPositiveAmount = errors.New("vault: amount must be positive")

// PaymentSource is the slice of the payment asset the vault needs: pulling
// approved funds into custody.
type PaymentSource interface {
	TransferFrom(spender, from, to common.Address, amount *big.Int) error
}

// Vault is bound at construction time to one payment asset and one reward
// asset, and to the controller allowed to lock funds through it.
type Vault struct {
	addr       common.Address
	controller common.Address
	payment    PaymentSource

	paymentAsset common.Address
	rewardAsset  common.Address

	total   *big.Int
	locked  map[common.Address]*big.Int
	weights map[common.Address]*big.Int
}

// New creates an empty vault bound to the given assets and controller.
func New(addr, controller common.Address, payment PaymentSource, paymentAsset, rewardAsset common.Address) *Vault {
	return &Vault{
		addr:         addr,
		controller:   controller,
		payment:      payment,
		paymentAsset: paymentAsset,
		rewardAsset:  rewardAsset,
		total:        new(big.Int),
		locked:       map[common.Address]*big.Int{},
		weights:      map[common.Address]*big.Int{},
	}
}

// Address returns the vault's identity.
func (v *Vault) Address() common.Address { return v.addr }

// Controller returns the single account currently authorized to lock funds.
func (v *Vault) Controller() common.Address { return v.controller }

// SetController rebinds the controller. The real vault gates this behind its
// own governance; the reference implementation leaves it open so tests can
// model a controller change mid-lifecycle.
func (v *Vault) SetController(controller common.Address) { v.controller = controller }

// PaymentAsset returns the payment asset this vault is bound to.
func (v *Vault) PaymentAsset() common.Address { return v.paymentAsset }

// RewardAsset returns the reward asset this vault is bound to.
func (v *Vault) RewardAsset() common.Address { return v.rewardAsset }

// TotalLockedAmount is the sum of all amounts ever locked for the current
// commitment lifetime. Returned as a copy so callers cannot mutate it.
func (v *Vault) TotalLockedAmount() *big.Int {
	return new(big.Int).Set(v.total)
}

// Lock pulls amount out of the controller's approved balance into custody,
// crediting it (and rewardWeight) to the contributor. Everything is validated
// before any state changes: a failed Lock leaves the vault untouched.
func (v *Vault) Lock(contributor common.Address, amount *big.Int, rewardWeight *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	if err := v.payment.TransferFrom(v.addr, v.controller, v.addr, amount); err != nil {
		return fmt.Errorf("vault: pull funds: %w", err)
	}
	v.total.Add(v.total, amount)
	addTo(v.locked, contributor, amount)
	if rewardWeight != nil {
		addTo(v.weights, contributor, rewardWeight)
	}
	return nil
}

// LockedBalanceOf returns the amount locked under a contributor.
func (v *Vault) LockedBalanceOf(contributor common.Address) *big.Int {
	return copyOf(v.locked, contributor)
}

// RewardWeightOf returns the reward weight credited to a contributor.
func (v *Vault) RewardWeightOf(contributor common.Address) *big.Int {
	return copyOf(v.weights, contributor)
}

func addTo(m map[common.Address]*big.Int, key common.Address, amount *big.Int) {
	b, ok := m[key]
	if !ok {
		b = new(big.Int)
		m[key] = b
	}
	b.Add(b, amount)
}

func copyOf(m map[common.Address]*big.Int, key common.Address) *big.Int {
	if b, ok := m[key]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}
