// file: internals/features/finance/clearance/settlement/settlement.go
//
// Pure settlement math and status guards for tenant exit clearance.
// No I/O here: callers fetch rows, this package only computes.
package settlement

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

/* =========================================================
   Deductions
========================================================= */

// Deduction is one line item charged against the refundable deposit at
// checkout. Stored as an ordered list on the clearance, addressed by position.
type Deduction struct {
	Reason string          `json:"reason"`
	Amount decimal.Decimal `json:"amount"`
}

var (
	ErrDeductionReasonRequired = errors.New("deduction reason is required")
	ErrDeductionAmountInvalid  = errors.New("deduction amount must be greater than zero")
)

// ValidateDeduction enforces the add-time rules: reason and a positive amount.
// ComputeFinalAmount itself never validates; gatekeeping happens on append.
func ValidateDeduction(d Deduction) error {
	if strings.TrimSpace(d.Reason) == "" {
		return ErrDeductionReasonRequired
	}
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrDeductionAmountInvalid
	}
	return nil
}

// SumDeductions returns the total cost-to-tenant of the deduction list.
func SumDeductions(deductions []Deduction) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range deductions {
		sum = sum.Add(d.Amount)
	}
	return sum
}

/* =========================================================
   Final amount
========================================================= */

// ComputeFinalAmount computes the signed settlement amount:
//
//	final = totalDues - totalRefundable + sum(deductions)
//
// Positive means the tenant owes money, negative means a refund is due.
// Rounded to the currency minor unit (2 decimal places), nothing more.
func ComputeFinalAmount(totalDues, totalRefundable decimal.Decimal, deductions []Deduction) decimal.Decimal {
	return totalDues.
		Sub(totalRefundable).
		Add(SumDeductions(deductions)).
		Round(2)
}

/* =========================================================
   Status machine
========================================================= */

type Status string

const (
	StatusInitiated      Status = "initiated"
	StatusPendingPayment Status = "pending_payment"
	StatusCleared        Status = "cleared"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInitiated, StatusPendingPayment, StatusCleared:
		return true
	}
	return false
}

// CanTransition encodes the forward-only ordering:
// initiated -> pending_payment -> cleared, with initiated -> cleared allowed.
// cleared is terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusInitiated:
		return to == StatusPendingPayment || to == StatusCleared
	case StatusPendingPayment:
		return to == StatusCleared
	default:
		return false
	}
}

// Checklist is the slice of clearance state the completion gate looks at.
type Checklist struct {
	RoomInspectionDone bool
	KeyReturned        bool
	Status             Status
}

// CanComplete is the hard gate for moving to cleared: inspection done, key
// returned, and not already cleared. Callers must reject completion otherwise,
// and the data layer re-checks it since clients can mutate directly.
func CanComplete(cl Checklist) bool {
	return cl.RoomInspectionDone &&
		cl.KeyReturned &&
		cl.Status != StatusCleared
}

/* =========================================================
   Stay duration
========================================================= */

// DaysStayed is a day-granularity subtraction of local calendar dates, no
// timezone normalization, truncated toward zero.
func DaysStayed(checkIn, exit time.Time) int {
	a := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(exit.Year(), exit.Month(), exit.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
