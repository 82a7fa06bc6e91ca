package journey

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clean payer: joined 2024-01-01, one active stay, every rent charge paid on
// or before its due date, zero complaints.
func cleanPayerSnapshot() Snapshot {
	rent := decimal.NewFromInt(8000)
	now := day(2024, 12, 31)
	s := Snapshot{
		TenantID: "t-good",
		Now:      now,
		Stays: []StayRecord{
			{ID: "s1", StayNumber: 1, PropertyName: "Sunrise PG", RoomNumber: "101",
				JoinDate: day(2024, 1, 1), MonthlyRent: rent, Status: StayStatusActive},
		},
	}
	for m := time.January; m <= time.November; m++ {
		due := day(2024, m, 5)
		paid := day(2024, m, 3)
		s.Charges = append(s.Charges, ChargeRecord{
			ID: "c-" + due.Format("2006-01"), Amount: rent, DueDate: due,
			Status: ChargeStatusPaid, PaidAt: &paid,
			ForPeriod: due.Format("Jan 2006"), ChargeType: "Rent",
			CreatedAt: day(2024, m, 1),
		})
		s.Payments = append(s.Payments, PaymentRecord{
			ID: "p-" + due.Format("2006-01"), Amount: rent, PaidAt: paid, Method: "upi",
		})
	}
	return s
}

// Risky tenant: three consecutive overdue charges and two unresolved complaints.
func riskyTenantSnapshot() Snapshot {
	rent := decimal.NewFromInt(8000)
	now := day(2024, 12, 31)
	s := Snapshot{
		TenantID: "t-risky",
		Now:      now,
		Stays: []StayRecord{
			{ID: "s1", StayNumber: 1, PropertyName: "Sunrise PG", RoomNumber: "102",
				JoinDate: day(2024, 6, 1), MonthlyRent: rent, Status: StayStatusActive},
		},
	}
	for _, m := range []time.Month{time.October, time.November, time.December} {
		s.Charges = append(s.Charges, ChargeRecord{
			ID: "c-" + day(2024, m, 5).Format("2006-01"), Amount: rent,
			DueDate: day(2024, m, 5), Status: ChargeStatusOverdue,
			ForPeriod: day(2024, m, 5).Format("Jan 2006"), ChargeType: "Rent",
			CreatedAt: day(2024, m, 1),
		})
	}
	s.Complaints = []ComplaintRecord{
		{ID: "cm1", Category: "wifi", RaisedAt: day(2024, 11, 20)},
		{ID: "cm2", Category: "cleaning", RaisedAt: day(2024, 12, 10)},
	}
	return s
}

func TestPaymentReliability_CleanPayerIsExcellent(t *testing.T) {
	p := NewDefaultPolicy()
	s := cleanPayerSnapshot()

	scores := ComputeScores(s, p)
	assert.GreaterOrEqual(t, scores.PaymentReliability, 90)
	assert.Equal(t, "excellent", scores.PaymentReliabilityBand)
	assert.Equal(t, SatisfactionHigh, scores.Satisfaction)
	assert.Equal(t, "low", scores.ChurnRiskBand)
}

func TestPaymentReliability_NoDueChargesYet(t *testing.T) {
	p := NewDefaultPolicy()
	s := Snapshot{Now: day(2024, 1, 2), Charges: []ChargeRecord{
		{ID: "c1", DueDate: day(2024, 2, 5), Status: ChargeStatusPending,
			Amount: decimal.NewFromInt(8000), CreatedAt: day(2024, 1, 1)},
	}}
	// nothing has come due => no evidence against the tenant
	assert.Equal(t, 100, p.PaymentReliability(s))
}

func TestPaymentReliability_LatePaymentsDragScoreDown(t *testing.T) {
	p := NewDefaultPolicy()
	s := cleanPayerSnapshot()
	// pay three months late
	for i := 0; i < 3; i++ {
		late := s.Charges[i].DueDate.AddDate(0, 0, 10)
		s.Charges[i].PaidAt = &late
	}
	score := p.PaymentReliability(s)
	assert.Less(t, score, 90)
	assert.GreaterOrEqual(t, score, 50)
}

func TestChurnRisk_RiskyTenantIsHighBand(t *testing.T) {
	p := NewDefaultPolicy()
	scores := ComputeScores(riskyTenantSnapshot(), p)

	assert.GreaterOrEqual(t, scores.ChurnRisk, 61, "three overdue + two unresolved must land high")
	assert.Equal(t, "high", scores.ChurnRiskBand)
	assert.Equal(t, SatisfactionLow, scores.Satisfaction)
}

func TestChurnRisk_NoticeAndExitProximityAddRisk(t *testing.T) {
	p := NewDefaultPolicy()
	s := cleanPayerSnapshot()
	base := p.ChurnRisk(s)

	s.NoticeGivenDate = tp(day(2024, 12, 20))
	s.ExpectedExitDate = tp(day(2025, 1, 10))
	withNotice := p.ChurnRisk(s)

	assert.Equal(t, base+p.NoticeGivenWeight+p.ExitProximityWeight, withNotice)
}

func TestChurnRisk_WeightsAreTunable(t *testing.T) {
	s := riskyTenantSnapshot()

	strict := NewDefaultPolicy()
	strict.UnresolvedComplaintWeight = 30
	strict.UnresolvedComplaintCap = 60

	lenient := NewDefaultPolicy()
	lenient.UnresolvedComplaintWeight = 1
	lenient.UnresolvedComplaintCap = 2
	lenient.LateStreakWeight = 5
	lenient.LateStreakCap = 15

	require.Greater(t, strict.ChurnRisk(s), lenient.ChurnRisk(s))
}

func TestChurnRisk_ClampedAt100(t *testing.T) {
	p := NewDefaultPolicy()
	s := riskyTenantSnapshot()
	s.NoticeGivenDate = tp(day(2024, 12, 1))
	s.ExpectedExitDate = tp(day(2024, 12, 31))
	s.AgreementEndDate = tp(day(2025, 1, 5))
	for i := 0; i < 10; i++ {
		s.Complaints = append(s.Complaints, ComplaintRecord{
			ID: "extra", Category: "noise", RaisedAt: day(2024, 12, 15),
		})
	}
	assert.LessOrEqual(t, p.ChurnRisk(s), 100)
}

func TestSatisfaction_SingleUnresolvedIsMedium(t *testing.T) {
	p := NewDefaultPolicy()
	s := cleanPayerSnapshot()
	s.Complaints = []ComplaintRecord{
		{ID: "cm1", Category: "wifi", RaisedAt: day(2024, 12, 1)},
	}
	assert.Equal(t, SatisfactionMedium, p.Satisfaction(s))
}

func TestSatisfaction_SlowResolutionsDragToMedium(t *testing.T) {
	p := NewDefaultPolicy() // SLA 7 days, ratio floor 0.5
	s := cleanPayerSnapshot()
	for i := 0; i < 6; i++ {
		raised := day(2024, time.Month(i+2), 1)
		resolved := raised.AddDate(0, 0, 20) // closed, but well past the SLA
		s.Complaints = append(s.Complaints, ComplaintRecord{
			ID: "cm-slow", Category: "plumbing", RaisedAt: raised, ResolvedAt: &resolved,
		})
	}

	assert.Equal(t, SatisfactionMedium, p.Satisfaction(s),
		"everything resolved, but nothing within the SLA")

	// the floor is a live knob: dropping it accepts the slow history
	p.MinResolutionRatio = 0
	assert.Equal(t, SatisfactionHigh, p.Satisfaction(s))
}

func TestSatisfaction_TimelyResolutionsStayHigh(t *testing.T) {
	p := NewDefaultPolicy()
	s := cleanPayerSnapshot()
	raised := day(2024, 4, 1)
	resolved := raised.AddDate(0, 0, 2)
	s.Complaints = []ComplaintRecord{
		{ID: "cm1", Category: "wifi", RaisedAt: raised, ResolvedAt: &resolved},
	}
	assert.Equal(t, SatisfactionHigh, p.Satisfaction(s))

	// tightening the SLA below the actual turnaround flips the level
	p.ResolutionSLADays = 1
	assert.Equal(t, SatisfactionMedium, p.Satisfaction(s))
}

func TestSatisfaction_ShortStayIsMedium(t *testing.T) {
	p := NewDefaultPolicy()
	s := Snapshot{
		Now: day(2024, 1, 20),
		Stays: []StayRecord{
			{ID: "s1", StayNumber: 1, JoinDate: day(2024, 1, 1), Status: StayStatusActive},
		},
	}
	assert.Equal(t, SatisfactionMedium, p.Satisfaction(s))
}

func TestReliabilityBands(t *testing.T) {
	assert.Equal(t, "excellent", ReliabilityBand(90))
	assert.Equal(t, "good", ReliabilityBand(89))
	assert.Equal(t, "good", ReliabilityBand(70))
	assert.Equal(t, "fair", ReliabilityBand(69))
	assert.Equal(t, "fair", ReliabilityBand(50))
	assert.Equal(t, "poor", ReliabilityBand(49))
}

func TestChurnBands(t *testing.T) {
	assert.Equal(t, "low", ChurnBand(0))
	assert.Equal(t, "low", ChurnBand(30))
	assert.Equal(t, "medium", ChurnBand(31))
	assert.Equal(t, "medium", ChurnBand(60))
	assert.Equal(t, "high", ChurnBand(61))
	assert.Equal(t, "high", ChurnBand(100))
}
