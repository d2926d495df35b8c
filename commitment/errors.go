package commitment

import "errors"

// Every precondition violation maps to exactly one of these sentinels, so a
// caller can always tell which check failed. Any error aborts the whole
// operation: a failed call leaves no observable state change behind.
var (
	// ErrInvalidTerms is returned by SetTerms when a term field violates the
	// configuration invariants (see Terms.Validate).
	ErrInvalidTerms = errors.New("invalid commitment terms")

	// ErrTermsAlreadySet is returned by SetTerms after terms have been
	// configured once. Terms are immutable for the commitment's lifetime.
	ErrTermsAlreadySet = errors.New("commitment terms already set")

	// ErrNotController is returned by Commit when the engine is not the
	// vault's current controller and therefore cannot lock funds.
	ErrNotController = errors.New("engine is not the vault controller")

	// ErrTermsNotSet is returned by Commit before SetTerms has completed.
	ErrTermsNotSet = errors.New("commitment terms not set")

	// ErrNotStarted is returned by Commit before the window's start time.
	ErrNotStarted = errors.New("commitment window not started")

	// ErrBelowMinTicket is returned by Commit when the payment is smaller
	// than the minimum single-contribution size.
	ErrBelowMinTicket = errors.New("contribution below minimum ticket")

	// ErrWindowClosed is returned by Commit once HasEnded reports true,
	// whether by reaching the end time or by hitting the absolute cap.
	ErrWindowClosed = errors.New("commitment window closed")

	// ErrCapExceeded is returned by Commit when accepting the payment would
	// push the vault's running total above the maximum absolute cap. The
	// contribution is rejected outright, never truncated to fit.
	ErrCapExceeded = errors.New("contribution exceeds maximum cap")

	// ErrInvalidCommitment is returned by Commit when the variant's
	// eligibility hook rejects the contribution.
	ErrInvalidCommitment = errors.New("commitment rejected by variant")

	// ErrTransferFailed is returned when the payment-asset deposit, approve,
	// or vault lock step fails.
	ErrTransferFailed = errors.New("payment transfer failed")

	// ErrRewardDistributionFailed is returned when either half of a reward
	// split cannot be transferred.
	ErrRewardDistributionFailed = errors.New("reward distribution failed")

	// ErrNotEnded is returned by Finalize while HasEnded is still false.
	ErrNotEnded = errors.New("commitment window not ended")

	// ErrAlreadyFinalized is returned by Finalize after the one-shot
	// finalization transition has happened.
	ErrAlreadyFinalized = errors.New("commitment already finalized")

	// ErrNotAuthorized is returned by the admin-gated entry points (SetTerms,
	// Reclaim) when the access policy denies the caller.
	ErrNotAuthorized = errors.New("caller not authorized")

	// ErrReclaimForbidden is returned by Reclaim for the payment or reward
	// asset while the commitment is still live.
	ErrReclaimForbidden = errors.New("asset cannot be reclaimed")
)
