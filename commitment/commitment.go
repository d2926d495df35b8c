package commitment

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/sirupsen/logrus"
)

// Commitment is the engine owning all mutable state of one commitment
// lifecycle: construct, configure terms, accept contributions, finalize.
//
// Every public operation runs to completion as a single indivisible unit of
// work; the platform embedding the engine serializes calls against it. The
// one concurrency hazard is reentrancy through collaborator callbacks, and
// the defense is structural: every check happens before any effect, the
// authoritative running total lives in the vault rather than in a local
// counter, and the only local mutable fields (finalized, finalCommittedAmount)
// are written inside Finalize before any hook can run.
type Commitment struct {
	self common.Address

	vault   Vault
	payment PaymentAsset
	reward  RewardAsset
	policy  AccessPolicy
	variant Variant

	now  TimeSource
	sink RecordSink
	log  logrus.FieldLogger

	configured bool
	terms      Terms

	finalized            bool
	finalCommittedAmount *big.Int
}

// New wires an engine to its collaborators. The engine is unconfigured until
// SetTerms succeeds; Commit fails with ErrTermsNotSet before that.
//
// self is the engine's own account: the holder of freshly issued rewards and
// the owner of the payment allowance granted to the vault.
func New(
	self common.Address,
	vault Vault,
	payment PaymentAsset,
	reward RewardAsset,
	policy AccessPolicy,
	variant Variant,
	now TimeSource,
	sink RecordSink,
	log logrus.FieldLogger,
) *Commitment {
	if sink == nil {
		sink = &Journal{}
	}
	if log == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.PanicLevel) // discard unless a logger is injected
		log = logger
	}
	if b, ok := variant.(interface{ bind(common.Address) }); ok {
		b.bind(self)
	}
	return &Commitment{
		self:                 self,
		vault:                vault,
		payment:              payment,
		reward:               reward,
		policy:               policy,
		variant:              variant,
		now:                  now,
		sink:                 sink,
		log:                  log.WithField("module", "commitment"),
		finalCommittedAmount: new(big.Int),
	}
}

// Address returns the engine's own account.
func (c *Commitment) Address() common.Address {
	return c.self
}

// Terms returns a deep copy of the configured terms. The copy keeps the
// stored terms immutable no matter what the caller does with the result.
func (c *Commitment) Terms() Terms {
	return c.terms.Copy()
}

// SetTerms locks in the commitment's immutable parameters exactly once.
//
// Preconditions: the caller must hold ActionSetTerms under the access policy,
// the engine must still be unconfigured, and the terms must validate. All
// term fields are written atomically; any violation leaves the engine
// unchanged. Every later call fails with ErrTermsAlreadySet.
func (c *Commitment) SetTerms(caller common.Address, t Terms) error {
	if c.policy != nil && !c.policy.Allowed(caller, ActionSetTerms) {
		return ErrNotAuthorized
	}
	if c.configured {
		return ErrTermsAlreadySet
	}
	if err := t.Validate(); err != nil {
		return err
	}
	c.terms = t.Copy()
	c.configured = true

	c.log.WithFields(logrus.Fields{
		"start":       c.terms.Start,
		"end":         c.terms.End,
		"minCap":      c.terms.MinCap,
		"maxCap":      c.terms.MaxCap,
		"minTicket":   c.terms.MinTicket,
		"rate":        c.terms.Rate.String(),
		"beneficiary": c.terms.Beneficiary.Hex(),
	}).Info("commitment terms set")
	return nil
}

// Commit validates and accepts a single payment of amount from contributor.
//
// The precondition chain runs in a fixed order and each violation maps to one
// distinct error (ErrNotController, ErrTermsNotSet, ErrNotStarted,
// ErrBelowMinTicket, ErrWindowClosed, ErrCapExceeded, ErrInvalidCommitment).
// Only after every check passes do the effects run, in this order: issue and
// split the reward, forward the payment into the wrapped asset, grant the
// vault a one-time allowance of exactly amount, lock the amount under the
// contributor, and emit the audit record. A failing step aborts the whole
// call with no partial effect observable: every already-completed effect is
// compensated in reverse (allowance revoked, deposit withdrawn, reward shares
// recalled and burned) before the error is returned.
func (c *Commitment) Commit(contributor common.Address, amount *big.Int) (*ContributionRecord, error) {
	// --- checks (no effects yet) ---
	if c.vault.Controller() != c.self {
		return nil, ErrNotController
	}
	if !c.configured {
		return nil, ErrTermsNotSet
	}
	if c.now() < c.terms.Start {
		return nil, ErrNotStarted
	}
	if amount == nil || amount.Cmp(c.terms.MinTicket) < 0 {
		return nil, ErrBelowMinTicket
	}
	if c.HasEnded() {
		return nil, ErrWindowClosed
	}
	newTotal := new(big.Int).Add(c.vault.TotalLockedAmount(), amount)
	if newTotal.Cmp(math.MaxBig256) > 0 {
		// the running total is a 256-bit quantity downstream; treat
		// overflow the same as crossing the cap
		return nil, ErrCapExceeded
	}
	if newTotal.Cmp(c.terms.MaxCap) > 0 {
		return nil, ErrCapExceeded
	}
	if !c.variant.ValidCommitment(contributor, amount) {
		return nil, ErrInvalidCommitment
	}

	// --- effects (external calls; ordering matters for reentrancy safety) ---
	//
	// Each completed effect pushes its compensation; a failure replays the
	// stack in reverse so the failed call leaves no partial effect behind.
	var undo []func()
	rollback := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}

	totalReward, err := c.variant.Issue(contributor, amount)
	if err != nil {
		return nil, fmt.Errorf("issue reward: %w", err)
	}
	if totalReward != nil && totalReward.Sign() > 0 {
		undo = append(undo, func() { c.reward.Burn(c.self, totalReward) })
	}
	contributorShare, beneficiaryShare := SplitReward(totalReward)
	if err := c.distributeReward(contributor, contributorShare, beneficiaryShare); err != nil {
		rollback()
		return nil, err
	}
	undo = append(undo, func() { c.recallShares(contributor, contributorShare, beneficiaryShare) })

	if err := c.payment.Deposit(c.self, amount); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: deposit: %v", ErrTransferFailed, err)
	}
	undo = append(undo, func() { c.payment.Withdraw(c.self, amount) })

	if err := c.payment.Approve(c.self, c.vault.Address(), amount); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: approve: %v", ErrTransferFailed, err)
	}
	undo = append(undo, func() { c.payment.Approve(c.self, c.vault.Address(), new(big.Int)) })

	if err := c.vault.Lock(contributor, amount, contributorShare); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: vault lock: %v", ErrTransferFailed, err)
	}

	record := &ContributionRecord{
		Contributor:    contributor,
		Amount:         copyBig(amount),
		PaymentAsset:   c.payment.Address(),
		ReferenceValue: c.ConvertToReferenceCurrency(amount),
		RewardAmount:   contributorShare,
		RewardAsset:    c.reward.Address(),
		Time:           c.now(),
	}
	c.sink.AppendContribution(record)

	c.log.WithFields(logrus.Fields{
		"contributor": contributor.Hex(),
		"amount":      amount,
		"refValue":    record.ReferenceValue,
		"reward":      record.RewardAmount,
		"total":       c.vault.TotalLockedAmount(),
	}).Info("contribution accepted")
	return record, nil
}

// effectiveTotal is the amount every predicate reasons over: the frozen
// snapshot once finalized, the live vault total otherwise. Finalization must
// not change a predicate's answer, and taking the snapshot at the transition
// instant guarantees exactly that.
func (c *Commitment) effectiveTotal() *big.Int {
	if c.finalized {
		return c.finalCommittedAmount
	}
	return c.vault.TotalLockedAmount()
}

// HasEnded reports whether the window is closed: the effective total reached
// the maximum cap, or the end time passed. Pure read, no side effects.
func (c *Commitment) HasEnded() bool {
	if !c.configured {
		return false
	}
	if c.effectiveTotal().Cmp(c.terms.MaxCap) >= 0 {
		return true
	}
	return c.now() >= c.terms.End
}

// WasSuccessful reports whether the effective total reached the minimum cap.
// Pure read, no side effects, consistent across the finalization boundary.
func (c *Commitment) WasSuccessful() bool {
	if !c.configured {
		return false
	}
	return c.effectiveTotal().Cmp(c.terms.MinCap) >= 0
}

// IsFinalized reports whether the one-shot finalization transition happened.
func (c *Commitment) IsFinalized() bool {
	return c.finalized
}

// FinalCommittedAmount returns the snapshot frozen at finalization, zero
// before it.
func (c *Commitment) FinalCommittedAmount() *big.Int {
	return new(big.Int).Set(c.finalCommittedAmount)
}

// Finalize performs the one-shot finalization transition.
//
// Deliberately permissionless: once the window has objectively ended, the
// outcome is a deterministic function of public state, not of caller
// identity. Preconditions: HasEnded must be true (ErrNotEnded) and the
// engine must not be finalized yet (ErrAlreadyFinalized).
//
// The terminal state is written before either outcome hook runs, so a
// reentrant Finalize issued from inside a hook re-checks the flag and fails
// with ErrAlreadyFinalized. The snapshot is taken at the same instant, which
// keeps HasEnded and WasSuccessful answers identical immediately before and
// after the transition. If a hook fails, the transition is rolled back in
// full and the call fails; nothing partial survives.
func (c *Commitment) Finalize() (*FinalizationRecord, error) {
	if !c.HasEnded() {
		return nil, ErrNotEnded
	}
	if c.finalized {
		return nil, ErrAlreadyFinalized
	}

	snapshot := new(big.Int).Set(c.vault.TotalLockedAmount())
	c.finalCommittedAmount = snapshot
	c.finalized = true

	success := c.WasSuccessful()
	var hookErr error
	if success {
		hookErr = c.variant.OnSuccess(c)
	} else {
		hookErr = c.variant.OnFailure(c)
	}
	if hookErr != nil {
		c.finalized = false
		c.finalCommittedAmount = new(big.Int)
		return nil, fmt.Errorf("finalization hook: %w", hookErr)
	}

	record := &FinalizationRecord{
		Successful:  success,
		FinalAmount: new(big.Int).Set(snapshot),
		Time:        c.now(),
	}
	c.sink.AppendFinalization(record)

	c.log.WithFields(logrus.Fields{
		"successful":  success,
		"finalAmount": snapshot,
	}).Info("commitment finalized")
	return record, nil
}
