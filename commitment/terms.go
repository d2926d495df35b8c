// Package commitment implements a time-bounded capital-commitment engine.
//
// Participants send payment during a fixed window; each payment is converted
// into a reward allocation and forwarded into an external custodial vault.
// When the window closes the engine finalizes exactly once, branching into a
// successful or failed outcome depending on whether the minimum funding cap
// was reached.
//
// The package provides:
//   - Terms: the set-once immutable configuration of a commitment
//   - Commitment: the engine holding all mutable state and the public
//     operations (SetTerms, Commit, Finalize, Reclaim)
//   - Variant: the polymorphic hooks a concrete commitment flavor implements
//   - Audit records (ContributionRecord, FinalizationRecord) and sinks
//
// The engine depends only on collaborator interfaces (Vault, PaymentAsset,
// RewardAsset, AccessPolicy); the vault's running total is the single source
// of truth for how much has been raised, and the engine keeps no parallel
// counter apart from the snapshot frozen at finalization.
package commitment

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-commitment/utils/fraction"
)

// Terms is the immutable configuration of a single commitment. All fields are
// written atomically by SetTerms exactly once and never change afterwards.
type Terms struct {
	// Start is the first instant at which contributions are accepted.
	// Must be non-zero: a zero start means "unconfigured".
	Start Timestamp

	// End is the instant at which the window closes regardless of the amount
	// raised. Must not precede Start.
	End Timestamp

	// MinTicket is the minimum size of a single contribution, in payment
	// asset units. Smaller payments are rejected outright.
	MinTicket *big.Int

	// MinCap is the minimum total that must be raised for the commitment to
	// count as successful at finalization.
	MinCap *big.Int

	// MaxCap is the hard ceiling on the total raised. A contribution that
	// would cross it is rejected, not truncated. Reaching MaxCap closes the
	// window early. Must be positive and not below MinCap.
	MaxCap *big.Int

	// Rate converts payment-asset amounts into reference-currency units.
	// It is fixed here for the commitment's whole life, insulating
	// contributors from price volatility during the window.
	Rate fraction.Fraction

	// Beneficiary receives the beneficiary half of every reward split.
	// Must not be the zero address.
	Beneficiary common.Address
}

// Validate checks the configuration invariants. A violation is reported as
// ErrInvalidTerms wrapped with the specific reason.
func (t Terms) Validate() error {
	if t.Start == 0 {
		return fmt.Errorf("%w: start time is zero", ErrInvalidTerms)
	}
	if t.End < t.Start {
		return fmt.Errorf("%w: end %d precedes start %d", ErrInvalidTerms, t.End, t.Start)
	}
	if t.MaxCap == nil || t.MaxCap.Sign() <= 0 {
		return fmt.Errorf("%w: max cap must be positive", ErrInvalidTerms)
	}
	if t.MinCap != nil && t.MinCap.Sign() < 0 {
		return fmt.Errorf("%w: min cap is negative", ErrInvalidTerms)
	}
	if t.MinCap != nil && t.MaxCap.Cmp(t.MinCap) < 0 {
		return fmt.Errorf("%w: max cap %s below min cap %s", ErrInvalidTerms, t.MaxCap, t.MinCap)
	}
	if t.MinTicket != nil && t.MinTicket.Sign() < 0 {
		return fmt.Errorf("%w: min ticket is negative", ErrInvalidTerms)
	}
	if t.Rate.Den != nil && t.Rate.Den.Sign() == 0 {
		return fmt.Errorf("%w: conversion rate has zero denominator", ErrInvalidTerms)
	}
	if t.Beneficiary == (common.Address{}) {
		return fmt.Errorf("%w: beneficiary is the zero address", ErrInvalidTerms)
	}
	return nil
}

// Copy deep-copies the terms. Stored terms must never alias caller-owned
// big.Ints, otherwise "immutable" could be violated from outside.
func (t Terms) Copy() Terms {
	cp := t
	cp.MinTicket = copyBig(t.MinTicket)
	cp.MinCap = copyBig(t.MinCap)
	cp.MaxCap = copyBig(t.MaxCap)
	cp.Rate = t.Rate.Copy()
	return cp
}

// copyBig returns a fresh copy of x, normalizing nil to zero.
func copyBig(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}
