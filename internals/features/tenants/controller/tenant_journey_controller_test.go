package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clearanceModel "hostelku_backend/internals/features/finance/clearance/model"
	"hostelku_backend/internals/features/finance/clearance/settlement"
	"hostelku_backend/internals/features/tenants/journey"
)

// The tenant row only learns its check-out date after clearance completion,
// so the snapshot's expected exit must come from the clearance row while the
// tenant is still in residence.
func TestApplyClearance_FeedsExpectedExitAndDeductions(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expected := now.AddDate(0, 0, 10)

	cl := clearanceModel.ExitClearance{
		ExitClearanceID:               uuid.New(),
		ExitClearanceStatus:           settlement.StatusInitiated,
		ExitClearanceExpectedExitDate: &expected,
		ExitClearanceUpdatedAt:        now,
	}
	require.NoError(t, cl.SetDeductions([]settlement.Deduction{
		{Reason: "Broken wardrobe door", Amount: decimal.NewFromInt(800)},
	}))

	snap := journey.Snapshot{Now: now}
	require.NoError(t, applyClearance(&snap, &cl))

	require.NotNil(t, snap.ExpectedExitDate)
	assert.True(t, snap.ExpectedExitDate.Equal(expected))

	require.NotNil(t, snap.Clearance)
	assert.Equal(t, cl.ExitClearanceID.String(), snap.Clearance.ID)
	assert.Equal(t, "initiated", snap.Clearance.Status)
	require.Len(t, snap.Clearance.Deductions, 1)
	assert.Equal(t, "Broken wardrobe door", snap.Clearance.Deductions[0].Reason)
	assert.True(t, snap.Clearance.Deductions[0].Amount.Equal(decimal.NewFromInt(800)))

	// a live tenant 10 days out from the expected exit must trip the
	// proximity signal
	p := journey.NewDefaultPolicy()
	without := snap
	without.ExpectedExitDate = nil
	assert.Equal(t, p.ChurnRisk(without)+p.ExitProximityWeight, p.ChurnRisk(snap))
}

func TestApplyClearance_NoDeductionsNoExpectedExit(t *testing.T) {
	cl := clearanceModel.ExitClearance{
		ExitClearanceID:        uuid.New(),
		ExitClearanceStatus:    settlement.StatusInitiated,
		ExitClearanceUpdatedAt: time.Now(),
	}

	snap := journey.Snapshot{Now: time.Now()}
	require.NoError(t, applyClearance(&snap, &cl))

	assert.Nil(t, snap.ExpectedExitDate)
	require.NotNil(t, snap.Clearance)
	assert.Empty(t, snap.Clearance.Deductions)
}
