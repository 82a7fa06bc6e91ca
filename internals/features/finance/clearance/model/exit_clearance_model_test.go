// file: internals/features/finance/clearance/model/exit_clearance_model_test.go
package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/features/finance/clearance/settlement"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSetDeductionsRecomputesFinalAmount(t *testing.T) {
	m := ExitClearance{
		ExitClearanceTotalDues:       dec("1500.00"),
		ExitClearanceTotalRefundable: dec("5000.00"),
	}

	require.NoError(t, m.SetDeductions(nil))
	// dues - refundable, no deductions: owner refunds 3500
	assert.True(t, m.ExitClearanceFinalAmount.Equal(dec("-3500.00")),
		"got %s", m.ExitClearanceFinalAmount)

	require.NoError(t, m.SetDeductions([]settlement.Deduction{
		{Reason: "broken mirror", Amount: dec("800.00")},
		{Reason: "deep cleaning", Amount: dec("450.50")},
	}))
	assert.True(t, m.ExitClearanceFinalAmount.Equal(dec("-2249.50")),
		"got %s", m.ExitClearanceFinalAmount)
}

func TestDeductionsRoundTrip(t *testing.T) {
	m := ExitClearance{
		ExitClearanceTotalDues:       dec("0"),
		ExitClearanceTotalRefundable: dec("2000.00"),
	}
	in := []settlement.Deduction{
		{Reason: "late fee", Amount: dec("250.00")},
	}
	require.NoError(t, m.SetDeductions(in))

	out, err := m.Deductions()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "late fee", out[0].Reason)
	assert.True(t, out[0].Amount.Equal(dec("250.00")))
}

func TestDeductionsEmptyColumn(t *testing.T) {
	var m ExitClearance
	out, err := m.Deductions()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestChecklistProjection(t *testing.T) {
	m := ExitClearance{
		ExitClearanceRoomInspectionDone: true,
		ExitClearanceKeyReturned:        false,
		ExitClearanceStatus:             settlement.StatusPendingPayment,
	}

	cl := m.Checklist()
	assert.True(t, cl.RoomInspectionDone)
	assert.False(t, cl.KeyReturned)
	assert.Equal(t, settlement.StatusPendingPayment, cl.Status)
	assert.False(t, settlement.CanComplete(cl))

	m.ExitClearanceKeyReturned = true
	assert.True(t, settlement.CanComplete(m.Checklist()))

	m.ExitClearanceStatus = settlement.StatusCleared
	assert.False(t, settlement.CanComplete(m.Checklist()))
}
