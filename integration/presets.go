// Package integration provides named lifecycle presets for assembling a full
// commitment environment (engine + reference collaborators) without tweaking
// dozens of flags. Presets bundle terms and a scripted contribution schedule
// into profiles the launcher and the end-to-end tests can run directly.
//
// Usage:
//
//	preset, err := integration.GetPresetByName("funded")
//	env, err := integration.BuildEnvironment(preset, logger)
//	outcome, err := env.Run()
//
// Each preset is deterministic: same preset, same resulting journal.
package integration

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-commitment/commitment"
	"github.com/rony4d/go-commitment/policy"
	"github.com/rony4d/go-commitment/token"
	"github.com/rony4d/go-commitment/utils/fraction"
	"github.com/rony4d/go-commitment/vault"
)

// ScriptedContribution is one step of a preset's contribution schedule.
type ScriptedContribution struct {
	Contributor common.Address       // who pays
	Amount      *big.Int             // payment in payment-asset units
	At          commitment.Timestamp // simulated clock when the payment arrives
}

// Preset captures the tunable parameters that vary across lifecycle profiles.
type Preset struct {
	Name string // human-readable identifier (e.g., "funded", "undersubscribed")

	Start      commitment.Timestamp // window opens
	End        commitment.Timestamp // window closes
	MinTicket  *big.Int             // minimum single contribution
	MinCap     *big.Int             // success threshold
	MaxCap     *big.Int             // hard ceiling
	Rate       fraction.Fraction    // payment to reference-currency rate
	RewardRate fraction.Fraction    // payment to reward issuance rate

	Schedule   []ScriptedContribution // contributions to replay, in order
	FinalizeAt commitment.Timestamp   // simulated clock for the Finalize call
}

// DefaultPreset is a small window with one mid-sized contribution that clears
// the minimum cap: the baseline the other presets are derived from.
func DefaultPreset() Preset {
	return Preset{
		Name:       "default",
		Start:      100,
		End:        200,
		MinTicket:  big.NewInt(1),
		MinCap:     big.NewInt(50),
		MaxCap:     big.NewInt(100),
		Rate:       fraction.MustNew(218, 100), // 2.18 reference units per payment unit
		RewardRate: fraction.MustNew(2, 1),     // 2 reward units per payment unit
		Schedule: []ScriptedContribution{
			{Contributor: addr(0xA1), Amount: big.NewInt(60), At: 150},
		},
		FinalizeAt: 200,
	}
}

// FundedPreset reaches the minimum cap before the window closes and
// finalizes successfully.
func FundedPreset() Preset {
	p := DefaultPreset()
	p.Name = "funded"
	p.Schedule = []ScriptedContribution{
		{Contributor: addr(0xA1), Amount: big.NewInt(30), At: 110},
		{Contributor: addr(0xA2), Amount: big.NewInt(25), At: 140},
		{Contributor: addr(0xA1), Amount: big.NewInt(20), At: 170},
	}
	return p
}

// UndersubscribedPreset stays below the minimum cap and finalizes as failed.
func UndersubscribedPreset() Preset {
	p := DefaultPreset()
	p.Name = "undersubscribed"
	p.Schedule = []ScriptedContribution{
		{Contributor: addr(0xA1), Amount: big.NewInt(30), At: 150},
	}
	return p
}

// CapBoundPreset fills the maximum cap exactly, which ends the window early;
// the finalize call runs before the nominal end time. The schedule also
// carries one payment that would cross the cap and must be rejected.
func CapBoundPreset() Preset {
	p := DefaultPreset()
	p.Name = "cap-bound"
	p.Schedule = []ScriptedContribution{
		{Contributor: addr(0xA1), Amount: big.NewInt(45), At: 120},
		{Contributor: addr(0xA2), Amount: big.NewInt(60), At: 125}, // would cross the cap: rejected
		{Contributor: addr(0xA2), Amount: big.NewInt(55), At: 130},
	}
	p.FinalizeAt = 140
	return p
}

// GetPresetByName looks up a preset by its string identifier. This helper
// enables CLI flags like --preset=funded to select lifecycles dynamically.
func GetPresetByName(name string) (Preset, error) {
	switch name {
	case "default":
		return DefaultPreset(), nil
	case "funded":
		return FundedPreset(), nil
	case "undersubscribed":
		return UndersubscribedPreset(), nil
	case "cap-bound":
		return CapBoundPreset(), nil
	default:
		return Preset{}, fmt.Errorf("unknown preset: %q (valid: default, funded, undersubscribed, cap-bound)", name)
	}
}

// Terms converts the preset's term parameters into a commitment.Terms value.
func (p Preset) Terms(beneficiary common.Address) commitment.Terms {
	return commitment.Terms{
		Start:       p.Start,
		End:         p.End,
		MinTicket:   p.MinTicket,
		MinCap:      p.MinCap,
		MaxCap:      p.MaxCap,
		Rate:        p.Rate,
		Beneficiary: beneficiary,
	}
}

// Well-known simulation accounts. Real deployments use real addresses; the
// simulator only needs them to be distinct.
var (
	EngineAddr      = addr(0xE0)
	VaultAddr       = addr(0xF0)
	PaymentAddr     = addr(0xF1)
	RewardAddr      = addr(0xF2)
	AdminAddr       = addr(0xAD)
	BeneficiaryAddr = addr(0xBE)
)

func addr(b byte) common.Address {
	return common.Address{19: b}
}

// Environment is a fully wired commitment lifecycle ready to run: the engine,
// its reference collaborators, a manual clock, and the preset schedule.
type Environment struct {
	Preset  Preset
	Engine  *commitment.Commitment
	Vault   *vault.Vault
	Payment *token.Payment
	Reward  *token.Reward
	Policy  *policy.Table
	Journal *commitment.Journal

	// Clock is the simulated time the engine reads. Run advances it through
	// the schedule; tests may drive it by hand instead.
	Clock commitment.Timestamp
}

// BuildEnvironment wires the reference collaborators around a fresh engine
// according to the preset, sets the terms, and leaves the clock at the
// window's start.
func BuildEnvironment(p Preset, log logrus.FieldLogger) (*Environment, error) {
	env := &Environment{
		Preset:  p,
		Payment: token.NewPayment(PaymentAddr),
		Reward:  token.NewReward(RewardAddr, EngineAddr),
		Policy:  policy.NewTable(),
		Journal: &commitment.Journal{},
		Clock:   p.Start,
	}
	env.Vault = vault.New(VaultAddr, EngineAddr, env.Payment, PaymentAddr, RewardAddr)
	env.Policy.Grant(AdminAddr, commitment.ActionSetTerms)
	env.Policy.Grant(AdminAddr, commitment.ActionReclaim)

	variant := &commitment.ProportionalVariant{
		Reward: p.RewardRate,
		Minter: env.Reward,
	}
	env.Engine = commitment.New(
		EngineAddr,
		env.Vault,
		env.Payment,
		env.Reward,
		env.Policy,
		variant,
		func() commitment.Timestamp { return env.Clock },
		env.Journal,
		log,
	)
	if err := env.Engine.SetTerms(AdminAddr, p.Terms(BeneficiaryAddr)); err != nil {
		return nil, err
	}
	return env, nil
}

// Outcome summarizes a completed lifecycle run.
type Outcome struct {
	Accepted    int      // contributions accepted
	Rejected    int      // contributions rejected by the engine
	Successful  bool     // finalization branch taken
	FinalAmount *big.Int // frozen committed total
}

// Run replays the preset's schedule against the engine, advancing the
// simulated clock to each step, then finalizes at the preset's finalize time.
// Rejected contributions are counted, not fatal: presets deliberately include
// payments the engine must refuse.
func (env *Environment) Run() (Outcome, error) {
	var out Outcome
	for _, step := range env.Preset.Schedule {
		env.Clock = step.At
		if _, err := env.Engine.Commit(step.Contributor, step.Amount); err != nil {
			out.Rejected++
			continue
		}
		out.Accepted++
	}
	env.Clock = env.Preset.FinalizeAt
	record, err := env.Engine.Finalize()
	if err != nil {
		return out, err
	}
	out.Successful = record.Successful
	out.FinalAmount = record.FinalAmount
	return out, nil
}
