package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeFinalAmount_RefundDue(t *testing.T) {
	// dues 1000, deposit 1200, no deductions => refund of 200
	got := ComputeFinalAmount(d("1000"), d("1200"), nil)
	assert.True(t, got.Equal(d("-200")), "got %s", got)
}

func TestComputeFinalAmount_TenantOwes(t *testing.T) {
	got := ComputeFinalAmount(d("1000"), d("1200"), []Deduction{
		{Reason: "damage", Amount: d("500")},
	})
	assert.True(t, got.Equal(d("300")), "got %s", got)
}

func TestComputeFinalAmount_Additivity(t *testing.T) {
	cases := []struct {
		dues, refundable string
		deductions       []string
		want             string
	}{
		{"0", "0", nil, "0"},
		{"8000", "0", nil, "8000"},
		{"0", "5000", nil, "-5000"},
		{"8000", "5000", []string{"250.50", "749.50"}, "4000"},
		{"12345.67", "10000", []string{"0.01"}, "2345.68"},
	}
	for _, tc := range cases {
		var ds []Deduction
		for _, a := range tc.deductions {
			ds = append(ds, Deduction{Reason: "x", Amount: d(a)})
		}
		got := ComputeFinalAmount(d(tc.dues), d(tc.refundable), ds)
		assert.True(t, got.Equal(d(tc.want)), "dues=%s refundable=%s: got %s want %s",
			tc.dues, tc.refundable, got, tc.want)

		// linearity: result always equals dues - refundable + sum
		manual := d(tc.dues).Sub(d(tc.refundable)).Add(SumDeductions(ds)).Round(2)
		assert.True(t, got.Equal(manual))
	}
}

func TestComputeFinalAmount_RoundsToMinorUnit(t *testing.T) {
	got := ComputeFinalAmount(d("100.005"), d("0"), nil)
	assert.Equal(t, int32(-2), got.Exponent(), "must not keep more than 2 decimal places")
}

func TestValidateDeduction(t *testing.T) {
	require.NoError(t, ValidateDeduction(Deduction{Reason: "damage", Amount: d("500")}))

	err := ValidateDeduction(Deduction{Reason: "  ", Amount: d("500")})
	assert.ErrorIs(t, err, ErrDeductionReasonRequired)

	err = ValidateDeduction(Deduction{Reason: "damage", Amount: d("0")})
	assert.ErrorIs(t, err, ErrDeductionAmountInvalid)

	err = ValidateDeduction(Deduction{Reason: "damage", Amount: d("-1")})
	assert.ErrorIs(t, err, ErrDeductionAmountInvalid)
}

func TestCanComplete_TruthTable(t *testing.T) {
	cases := []struct {
		inspection, key bool
		status          Status
		want            bool
	}{
		{true, true, StatusInitiated, true},
		{true, true, StatusPendingPayment, true},
		{true, true, StatusCleared, false}, // already cleared
		{false, true, StatusPendingPayment, false},
		{true, false, StatusPendingPayment, false},
		{false, false, StatusInitiated, false},
	}
	for _, tc := range cases {
		got := CanComplete(Checklist{
			RoomInspectionDone: tc.inspection,
			KeyReturned:        tc.key,
			Status:             tc.status,
		})
		assert.Equal(t, tc.want, got,
			"inspection=%v key=%v status=%s", tc.inspection, tc.key, tc.status)
	}
}

func TestStatusTransitions_ForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(StatusInitiated, StatusPendingPayment))
	assert.True(t, CanTransition(StatusInitiated, StatusCleared))
	assert.True(t, CanTransition(StatusPendingPayment, StatusCleared))

	// never backwards
	assert.False(t, CanTransition(StatusPendingPayment, StatusInitiated))

	// cleared is absorbing
	for _, to := range []Status{StatusInitiated, StatusPendingPayment, StatusCleared} {
		assert.False(t, CanTransition(StatusCleared, to), "cleared -> %s must be rejected", to)
	}
}

func TestDaysStayed(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)
	jan31 := time.Date(2024, 1, 31, 23, 0, 0, 0, time.Local)
	assert.Equal(t, 30, DaysStayed(jan1, jan31))

	// same calendar date, different clock times
	assert.Equal(t, 0, DaysStayed(jan1, jan1.Add(5*time.Hour)))

	// exit before check-in stays negative (caller's problem to reject)
	assert.Equal(t, -30, DaysStayed(jan31, jan1))

	// month boundary
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 31, DaysStayed(jan1, feb1))
}
