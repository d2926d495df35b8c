package commitment

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Audit records are the only externally observable trace of individual
// contributions: the engine does not persist per-contribution state, it emits
// one record per accepted payment and one per finalization.
//
// Records are RLP-encoded for storage and transport (the same codec the rest
// of the stack uses for chain data) and carry a deterministic keccak ID
// derived from their content, so two sinks holding the same history agree on
// record identities without coordination.

// ContributionRecord is emitted after every accepted contribution.
type ContributionRecord struct {
	// Contributor is the account the locked funds are credited to.
	Contributor common.Address

	// Amount is the payment in payment-asset units.
	Amount *big.Int

	// PaymentAsset references the wrapped-payment-asset contract the funds
	// were forwarded through.
	PaymentAsset common.Address

	// ReferenceValue is Amount converted into reference-currency units at the
	// term rate.
	ReferenceValue *big.Int

	// RewardAmount is the contributor's share of the reward split.
	RewardAmount *big.Int

	// RewardAsset references the reward token contract.
	RewardAsset common.Address

	// Time is when the contribution was accepted.
	Time Timestamp
}

// FinalizationRecord is emitted exactly once, at the finalization transition.
type FinalizationRecord struct {
	// Successful carries the outcome branch taken.
	Successful bool

	// FinalAmount is the vault total frozen at the transition instant.
	FinalAmount *big.Int

	// Time is when finalization happened.
	Time Timestamp
}

// ID derives the record's identity from its full content plus the timestamp,
// big-endian encoded so the derivation is byte-stable across platforms.
func (r *ContributionRecord) ID() common.Hash {
	return recordID("contribution", r.Time, r.Contributor.Bytes(), r.Amount, r.RewardAmount)
}

// ID derives the finalization record's identity. There is at most one per
// commitment, but the ID keeps journals uniform.
func (r *FinalizationRecord) ID() common.Hash {
	outcome := []byte{0}
	if r.Successful {
		outcome[0] = 1
	}
	return recordID("finalization", r.Time, outcome, r.FinalAmount, nil)
}

func recordID(kind string, at Timestamp, subject []byte, amounts ...*big.Int) common.Hash {
	data := append([]byte(kind), bigendian.Uint64ToBytes(uint64(at))...)
	data = append(data, subject...)
	for _, a := range amounts {
		if a != nil {
			data = append(data, a.Bytes()...)
		}
	}
	return crypto.Keccak256Hash(data)
}

// MarshalBinary encodes the record with RLP.
func (r *ContributionRecord) MarshalBinary() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

// UnmarshalBinary decodes an RLP-encoded record in place.
func (r *ContributionRecord) UnmarshalBinary(raw []byte) error {
	return rlp.DecodeBytes(raw, r)
}

// MarshalBinary encodes the record with RLP.
func (r *FinalizationRecord) MarshalBinary() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

// UnmarshalBinary decodes an RLP-encoded record in place.
func (r *FinalizationRecord) UnmarshalBinary(raw []byte) error {
	return rlp.DecodeBytes(raw, r)
}

// RecordSink receives audit records as the engine emits them. Implementations
// must not fail: record emission is the last step of an already-committed
// operation and cannot be rolled back.
type RecordSink interface {
	AppendContribution(r *ContributionRecord)
	AppendFinalization(r *FinalizationRecord)
}

// Journal is an in-memory RecordSink keeping records in emission order.
// It serves tests and the simulator; a production deployment would hand the
// engine a sink backed by durable storage.
type Journal struct {
	Contributions []*ContributionRecord
	Finalizations []*FinalizationRecord
}

// AppendContribution implements RecordSink.
func (j *Journal) AppendContribution(r *ContributionRecord) {
	j.Contributions = append(j.Contributions, r)
}

// AppendFinalization implements RecordSink.
func (j *Journal) AppendFinalization(r *FinalizationRecord) {
	j.Finalizations = append(j.Finalizations, r)
}

// String summarizes the journal for logs.
func (j *Journal) String() string {
	return fmt.Sprintf("journal{contributions=%d, finalizations=%d}",
		len(j.Contributions), len(j.Finalizations))
}
