package journey

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tp(t time.Time) *time.Time { return &t }

func sampleSnapshot() Snapshot {
	rent := decimal.NewFromInt(8000)
	return Snapshot{
		TenantID: "t-1",
		Now:      day(2024, 6, 15),
		Stays: []StayRecord{
			{ID: "s1", StayNumber: 1, PropertyName: "Sunrise PG", RoomNumber: "101",
				JoinDate: day(2024, 1, 1), ExitDate: tp(day(2024, 3, 1)),
				MonthlyRent: rent, Status: StayStatusTransferred},
			{ID: "s2", StayNumber: 2, PropertyName: "Sunrise PG", RoomNumber: "204",
				JoinDate: day(2024, 3, 1), MonthlyRent: rent, Status: StayStatusActive},
		},
		Charges: []ChargeRecord{
			{ID: "c1", Amount: rent, DueDate: day(2024, 2, 5), Status: ChargeStatusPaid,
				ForPeriod: "Feb 2024", ChargeType: "Rent", PaidAt: tp(day(2024, 2, 3)),
				CreatedAt: day(2024, 2, 1)},
		},
		Payments: []PaymentRecord{
			{ID: "p1", Amount: rent, PaidAt: day(2024, 2, 3), Method: "upi", ForPeriod: "Feb 2024"},
		},
		Transfers: []TransferRecord{
			{ID: "tr1", At: day(2024, 3, 1), FromRoom: "101", ToRoom: "204", Reason: "upgrade"},
		},
		Complaints: []ComplaintRecord{
			{ID: "cm1", Category: "plumbing", RaisedAt: day(2024, 4, 10),
				ResolvedAt: tp(day(2024, 4, 12))},
		},
		Visits: []VisitRecord{
			{ID: "v1", VisitedAt: day(2023, 12, 20), PropertyName: "Sunrise PG", Purpose: "room viewing"},
		},
		Verification: &VerificationRecord{VerifiedAt: tp(day(2024, 1, 2))},
	}
}

func TestBuildTimeline_DescendingOrder(t *testing.T) {
	events := BuildTimeline(sampleSnapshot())
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.After(events[i-1].Timestamp),
			"event %d (%s) is newer than event %d (%s)",
			i, events[i].ID, i-1, events[i-1].ID)
	}
}

func TestBuildTimeline_DeterministicAcrossFetchOrder(t *testing.T) {
	a := BuildTimeline(sampleSnapshot())

	// shuffle within each collection: fetch order must not matter
	s := sampleSnapshot()
	reverse(s.Stays)
	reverse(s.Charges)
	reverse(s.Payments)
	reverse(s.Complaints)
	b := BuildTimeline(s)

	require.Equal(t, len(a), len(b))
	ids := func(evs []Event) []string {
		out := make([]string, len(evs))
		for i, e := range evs {
			out[i] = e.ID
		}
		return out
	}
	// same membership; ties may swap within an identical timestamp, so compare
	// as a set plus the descending invariant already checked above
	assert.ElementsMatch(t, ids(a), ids(b))
}

func TestBuildTimeline_RerunIsIdempotent(t *testing.T) {
	s := sampleSnapshot()
	assert.Equal(t, BuildTimeline(s), BuildTimeline(s))
}

func TestBuildTimeline_GrowthPreservesPreviousAsSubsequence(t *testing.T) {
	s := sampleSnapshot()
	before := BuildTimeline(s)

	s.Payments = append(s.Payments, PaymentRecord{
		ID: "p2", Amount: decimal.NewFromInt(8000), PaidAt: day(2024, 3, 3), Method: "cash",
	})
	after := BuildTimeline(s)

	require.Equal(t, len(before)+1, len(after))
	assert.True(t, isSubsequence(before, after),
		"previous timeline must appear as a subsequence after growth")
}

func TestBuildTimeline_SourceMapping(t *testing.T) {
	events := BuildTimeline(sampleSnapshot())
	byID := map[string]Event{}
	for _, e := range events {
		byID[e.ID] = e
	}

	// stay contributes join + exit; transferred exit is an accommodation event
	join := byID["stay-join-s1"]
	assert.Equal(t, CategoryOnboarding, join.Category)
	assert.Contains(t, join.Description, "room 101")

	exit := byID["stay-exit-s1"]
	assert.Equal(t, CategoryAccommodation, exit.Category)

	// the active stay has no exit event
	_, hasExit := byID["stay-exit-s2"]
	assert.False(t, hasExit)

	// money tagging: charges debit, payments credit
	charge := byID["charge-c1"]
	assert.Equal(t, AmountDebit, charge.AmountTag)
	require.NotNil(t, charge.Amount)

	payment := byID["payment-p1"]
	assert.Equal(t, AmountCredit, payment.AmountTag)

	// complaint resolution is its own event
	_, ok := byID["complaint-resolved-cm1"]
	assert.True(t, ok)

	// verification lands in the system category
	assert.Equal(t, CategorySystem, byID["verified"].Category)
}

func TestBuildTimeline_DeductionsAreDebitEvents(t *testing.T) {
	s := sampleSnapshot()
	s.Clearance = &ClearanceRecord{
		ID:         "cl1",
		Status:     "pending_payment",
		DeductedAt: day(2024, 6, 10),
		Deductions: []DeductionRecord{
			{Reason: "Broken wardrobe door", Amount: decimal.NewFromInt(800)},
			{Reason: "Deep cleaning", Amount: decimal.RequireFromString("450.50")},
		},
	}

	events := BuildTimeline(s)
	byID := map[string]Event{}
	for _, e := range events {
		byID[e.ID] = e
	}

	first, ok := byID["deduction-cl1-0"]
	require.True(t, ok)
	assert.Equal(t, CategoryExit, first.Category)
	assert.Equal(t, AmountDebit, first.AmountTag)
	require.NotNil(t, first.Amount)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, "Broken wardrobe door", first.Description)
	assert.Equal(t, day(2024, 6, 10), first.Timestamp)

	second, ok := byID["deduction-cl1-1"]
	require.True(t, ok)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("450.50")))
}

func TestSummarize(t *testing.T) {
	s := sampleSnapshot()
	sum := Summarize(s)
	assert.Equal(t, 2, sum.TotalStays)
	assert.Equal(t, 1, sum.TotalVisits)
	assert.True(t, sum.IsCurrentTenant)
	assert.False(t, sum.IsStaff)

	// after checkout nothing is active
	s.Stays[1].Status = StayStatusCompleted
	s.Stays[1].ExitDate = tp(day(2024, 6, 1))
	assert.False(t, Summarize(s).IsCurrentTenant)
}

func reverse[T any](xs []T) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func isSubsequence(sub, full []Event) bool {
	i := 0
	for _, e := range full {
		if i < len(sub) && sub[i].ID == e.ID {
			i++
		}
	}
	return i == len(sub)
}
