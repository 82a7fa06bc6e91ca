// file: internals/features/tenants/journey/snapshot.go
package journey

import (
	"time"

	"github.com/shopspring/decimal"
)

/* =========================================================
   Input snapshot
   The caller fetches every collection independently and hands an
   in-memory snapshot to this package. Aggregation is pure over it;
   freshness is the caller's concern (re-fetch, re-aggregate).
========================================================= */

// StayRecord is one continuous occupancy period.
type StayRecord struct {
	ID           string
	StayNumber   int // 1-based, monotonic per tenant
	PropertyName string
	RoomNumber   string
	JoinDate     time.Time
	ExitDate     *time.Time
	MonthlyRent  decimal.Decimal
	Status       string // active|transferred|completed
}

const (
	StayStatusActive      = "active"
	StayStatusTransferred = "transferred"
	StayStatusCompleted   = "completed"
)

// ChargeRecord is one billed amount with its due date and lifecycle status.
type ChargeRecord struct {
	ID         string
	Amount     decimal.Decimal
	DueDate    time.Time
	Status     string // pending|partial|overdue|paid
	ForPeriod  string
	ChargeType string
	PaidAt     *time.Time
	CreatedAt  time.Time
}

const (
	ChargeStatusPending = "pending"
	ChargeStatusPartial = "partial"
	ChargeStatusOverdue = "overdue"
	ChargeStatusPaid    = "paid"
)

// PaymentRecord is one received payment.
type PaymentRecord struct {
	ID        string
	Amount    decimal.Decimal
	PaidAt    time.Time
	Method    string
	ForPeriod string
}

// TransferRecord is one room move within or across properties.
type TransferRecord struct {
	ID       string
	At       time.Time
	FromRoom string
	ToRoom   string
	Reason   string
}

// ComplaintRecord is one raised complaint, resolved or not.
type ComplaintRecord struct {
	ID          string
	Category    string
	Description string
	RaisedAt    time.Time
	ResolvedAt  *time.Time
}

// VisitRecord is one pre-tenancy visit matched by phone identity.
type VisitRecord struct {
	ID           string
	VisitedAt    time.Time
	PropertyName string
	Purpose      string
}

// VerificationRecord carries the tenant's verification/blocking actions.
type VerificationRecord struct {
	VerifiedAt    *time.Time
	BlockedAt     *time.Time
	BlockedReason string
}

// DeductionRecord is one deposit deduction line from the exit clearance.
type DeductionRecord struct {
	Reason string
	Amount decimal.Decimal
}

// ClearanceRecord carries the exit settlement state while a clearance exists.
// Its expected exit date feeds the churn proximity signal and each deduction
// line surfaces on the timeline as a debit.
type ClearanceRecord struct {
	ID               string
	Status           string // initiated|pending_payment|cleared
	ExpectedExitDate *time.Time
	Deductions       []DeductionRecord
	DeductedAt       time.Time // line items carry no timestamps; row update time stands in
}

// Snapshot is everything the aggregator looks at, captured at one instant.
// Now is injected so scoring is deterministic and testable.
type Snapshot struct {
	TenantID string
	Now      time.Time

	Stays        []StayRecord
	Charges      []ChargeRecord
	Payments     []PaymentRecord
	Transfers    []TransferRecord
	Complaints   []ComplaintRecord
	Visits       []VisitRecord
	Verification *VerificationRecord
	Clearance    *ClearanceRecord

	// Churn inputs. NoticeGivenDate and AgreementEndDate come from the tenant
	// row; ExpectedExitDate comes from the clearance (the tenant row only
	// records the actual check-out date, after the fact).
	NoticeGivenDate  *time.Time
	ExpectedExitDate *time.Time
	AgreementEndDate *time.Time

	IsStaff bool // any active staff-role record for this identity
}
