package test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-commitment/commitment"
	"github.com/rony4d/go-commitment/integration"
)

// End-to-end lifecycle tests: each scenario assembles a full environment
// (engine + reference collaborators) from a preset and replays it, verifying
// the externally observable outcome: journal records, vault total, and the
// finalization branch taken.

// TestLifecycle_scenarioA: terms {start=100, end=200, minTicket=1, minCap=50,
// maxCap=100}; commit 60 at t=150 is accepted, total 60; finalize at t=200 is
// successful (60 >= 50), final amount frozen at 60.
func TestLifecycle_scenarioA(t *testing.T) {
	env, err := integration.BuildEnvironment(integration.DefaultPreset(), nil)
	require.NoError(t, err)
	contributor := env.Preset.Schedule[0].Contributor

	env.Clock = 150
	record, err := env.Engine.Commit(contributor, big.NewInt(60))
	require.NoError(t, err)
	require.Equal(t, int64(60), env.Vault.TotalLockedAmount().Int64())
	require.Equal(t, int64(130), record.ReferenceValue.Int64(), "60 * 2.18 truncated")

	env.Clock = 200
	outcome, err := env.Engine.Finalize()
	require.NoError(t, err)
	require.True(t, outcome.Successful)
	require.Equal(t, int64(60), outcome.FinalAmount.Int64())
	require.Equal(t, int64(60), env.Engine.FinalCommittedAmount().Int64())
}

// TestLifecycle_scenarioB: same terms; commit 30 at t=150; finalize at t=200
// takes the failed branch (30 < 50).
func TestLifecycle_scenarioB(t *testing.T) {
	env, err := integration.BuildEnvironment(integration.UndersubscribedPreset(), nil)
	require.NoError(t, err)

	outcome, err := env.Run()
	require.NoError(t, err)
	require.Equal(t, 1, outcome.Accepted)
	require.False(t, outcome.Successful)
	require.Equal(t, int64(30), outcome.FinalAmount.Int64())
}

// TestLifecycle_scenarioC: commit 45, then 60 (which would bring the total to
// 105 > maxCap=100); the second commit fails with CapExceeded and the total
// stays at 45.
func TestLifecycle_scenarioC(t *testing.T) {
	env, err := integration.BuildEnvironment(integration.DefaultPreset(), nil)
	require.NoError(t, err)
	alice := env.Preset.Schedule[0].Contributor

	env.Clock = 150
	_, err = env.Engine.Commit(alice, big.NewInt(45))
	require.NoError(t, err)

	_, err = env.Engine.Commit(alice, big.NewInt(60))
	require.Equal(t, commitment.ErrCapExceeded, err)
	require.Equal(t, int64(45), env.Vault.TotalLockedAmount().Int64())
}

// TestLifecycle_presetRuns replays every named preset and checks the
// advertised outcome shape.
func TestLifecycle_presetRuns(t *testing.T) {
	tests := []struct {
		preset      string
		accepted    int
		rejected    int
		successful  bool
		finalAmount int64
	}{
		{"default", 1, 0, true, 60},
		{"funded", 3, 0, true, 75},
		{"undersubscribed", 1, 0, false, 30},
		// cap-bound: 45 accepted, 60 rejected (would cross the cap),
		// 55 accepted for exactly 100, window closes at the cap
		{"cap-bound", 2, 1, true, 100},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			preset, err := integration.GetPresetByName(tt.preset)
			require.NoError(t, err)
			env, err := integration.BuildEnvironment(preset, nil)
			require.NoError(t, err)

			outcome, err := env.Run()
			require.NoError(t, err)
			require.Equal(t, tt.accepted, outcome.Accepted)
			require.Equal(t, tt.rejected, outcome.Rejected)
			require.Equal(t, tt.successful, outcome.Successful)
			require.Equal(t, tt.finalAmount, outcome.FinalAmount.Int64())

			// the journal mirrors the run: one record per accepted
			// contribution plus exactly one finalization record
			require.Len(t, env.Journal.Contributions, tt.accepted)
			require.Len(t, env.Journal.Finalizations, 1)
		})
	}
}

// TestLifecycle_capBoundFinalizesEarly verifies that hitting the maximum cap
// ends the window before the nominal end time.
func TestLifecycle_capBoundFinalizesEarly(t *testing.T) {
	env, err := integration.BuildEnvironment(integration.CapBoundPreset(), nil)
	require.NoError(t, err)

	outcome, err := env.Run()
	require.NoError(t, err)
	require.True(t, outcome.Successful)
	require.True(t, env.Preset.FinalizeAt < env.Preset.End,
		"preset must finalize before the nominal window end")
	require.True(t, env.Engine.IsFinalized())
}

// TestGetPresetByName_unknown covers the error path of the preset lookup.
func TestGetPresetByName_unknown(t *testing.T) {
	_, err := integration.GetPresetByName("bogus")
	require.Error(t, err)
}
