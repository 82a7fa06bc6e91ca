// file: internals/features/tenants/journey/scoring.go
package journey

import (
	"sort"
	"time"
)

/* =========================================================
   Scores
   These are heuristic business-rule scores. The exact weighting is a
   policy, not a fixed formula: DefaultPolicy documents the shipped
   defaults and every knob is a field so product can retune without
   touching the aggregation.
========================================================= */

type SatisfactionLevel string

const (
	SatisfactionHigh   SatisfactionLevel = "high"
	SatisfactionMedium SatisfactionLevel = "medium"
	SatisfactionLow    SatisfactionLevel = "low"
)

type Scores struct {
	PaymentReliability     int               `json:"payment_reliability"`      // 0-100
	PaymentReliabilityBand string            `json:"payment_reliability_band"` // excellent|good|fair|poor
	ChurnRisk              int               `json:"churn_risk"`               // 0-100
	ChurnRiskBand          string            `json:"churn_risk_band"`          // low|medium|high
	Satisfaction           SatisfactionLevel `json:"satisfaction"`
}

// ScoringPolicy isolates the weighting so it can be swapped or A/B-tested
// without altering merge/aggregation logic. Implementations must be pure.
type ScoringPolicy interface {
	PaymentReliability(s Snapshot) int
	ChurnRisk(s Snapshot) int
	Satisfaction(s Snapshot) SatisfactionLevel
}

// ComputeScores evaluates the policy and attaches display bands.
func ComputeScores(s Snapshot, p ScoringPolicy) Scores {
	pri := clampScore(p.PaymentReliability(s))
	churn := clampScore(p.ChurnRisk(s))
	return Scores{
		PaymentReliability:     pri,
		PaymentReliabilityBand: ReliabilityBand(pri),
		ChurnRisk:              churn,
		ChurnRiskBand:          ChurnBand(churn),
		Satisfaction:           p.Satisfaction(s),
	}
}

// ReliabilityBand maps a 0-100 reliability score to the documented display
// bands: >=90 excellent, 70-89 good, 50-69 fair, <50 poor.
func ReliabilityBand(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

// ChurnBand: 0-30 low, 31-60 medium, 61-100 high.
func ChurnBand(score int) string {
	switch {
	case score <= 30:
		return "low"
	case score <= 60:
		return "medium"
	default:
		return "high"
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

/* =========================================================
   Default policy
========================================================= */

// DefaultPolicy is the shipped weighting. Every field is a tunable knob.
type DefaultPolicy struct {
	// Churn contributions
	LateStreakWeight          int // per consecutive unpaid-past-due charge
	LateStreakCap             int
	UnresolvedComplaintWeight int
	UnresolvedComplaintCap    int
	RecentComplaintWeight     int // per complaint raised in the window
	RecentComplaintWindowDays int
	RecentComplaintCap        int
	NoticeGivenWeight         int
	ExitProximityWeight       int // expected exit within ExitProximityDays
	ExitProximityDays         int
	AgreementExpiryWeight     int // agreement ends within AgreementExpiryDays
	AgreementExpiryDays       int

	// Satisfaction thresholds
	LowUnresolvedThreshold int     // >= this many unresolved complaints => low
	ResolutionSLADays      int     // a complaint is timely if resolved within this many days
	MinResolutionRatio     float64 // timely share below this (with complaints) => medium
	ShortStayDays          int     // continuous stay shorter than this => medium
}

// NewDefaultPolicy returns the documented default weighting.
func NewDefaultPolicy() DefaultPolicy {
	return DefaultPolicy{
		LateStreakWeight:          15,
		LateStreakCap:             45,
		UnresolvedComplaintWeight: 12,
		UnresolvedComplaintCap:    36,
		RecentComplaintWeight:     4,
		RecentComplaintWindowDays: 90,
		RecentComplaintCap:        12,
		NoticeGivenWeight:         25,
		ExitProximityWeight:       15,
		ExitProximityDays:         30,
		AgreementExpiryWeight:     10,
		AgreementExpiryDays:       30,

		LowUnresolvedThreshold: 2,
		ResolutionSLADays:      7,
		MinResolutionRatio:     0.5,
		ShortStayDays:          60,
	}
}

// PaymentReliability = 100 * on_time_or_early / total_due, clamped to [0,100].
// A charge counts as due once its due date has passed or it has been paid.
// On time means paid no later than the due date. No due charges yet => 100.
func (p DefaultPolicy) PaymentReliability(s Snapshot) int {
	totalDue := 0
	onTime := 0
	for _, ch := range s.Charges {
		due := ch.Status == ChargeStatusPaid || !ch.DueDate.After(s.Now)
		if !due {
			continue
		}
		totalDue++
		if ch.Status == ChargeStatusPaid && ch.PaidAt != nil && !ch.PaidAt.After(endOfDay(ch.DueDate)) {
			onTime++
		}
	}
	if totalDue == 0 {
		return 100
	}
	return clampScore(100 * onTime / totalDue)
}

// ChurnRisk adds up the configured signals and clamps to [0,100].
func (p DefaultPolicy) ChurnRisk(s Snapshot) int {
	score := 0

	streak := lateStreak(s)
	score += capped(streak*p.LateStreakWeight, p.LateStreakCap)

	unresolved, _, recent := complaintStats(s, p.RecentComplaintWindowDays)
	score += capped(unresolved*p.UnresolvedComplaintWeight, p.UnresolvedComplaintCap)
	score += capped(recent*p.RecentComplaintWeight, p.RecentComplaintCap)

	if s.NoticeGivenDate != nil {
		score += p.NoticeGivenWeight
	}
	if withinDays(s.Now, s.ExpectedExitDate, p.ExitProximityDays) {
		score += p.ExitProximityWeight
	}
	if withinDays(s.Now, s.AgreementEndDate, p.AgreementExpiryDays) {
		score += p.AgreementExpiryWeight
	}
	return clampScore(score)
}

// Satisfaction: low on multiple unresolved complaints; medium on a single
// unresolved one, a poor timely-resolution ratio, or a short stay; high
// otherwise. The ratio counts complaints resolved within ResolutionSLADays,
// so a history of slow fixes still reads medium even once everything closes.
func (p DefaultPolicy) Satisfaction(s Snapshot) SatisfactionLevel {
	unresolved, total, _ := complaintStats(s, 0)
	if unresolved >= p.LowUnresolvedThreshold {
		return SatisfactionLow
	}
	if unresolved > 0 {
		return SatisfactionMedium
	}
	if total > 0 && resolutionRatio(s, p.ResolutionSLADays) < p.MinResolutionRatio {
		return SatisfactionMedium
	}
	if continuousStayDays(s) < p.ShortStayDays {
		return SatisfactionMedium
	}
	return SatisfactionHigh
}

/* =========================================================
   Signal helpers
========================================================= */

// lateStreak counts trailing consecutive charges (by due date) that are
// overdue, or unpaid with the due date already behind the snapshot instant.
func lateStreak(s Snapshot) int {
	charges := append([]ChargeRecord(nil), s.Charges...)
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].DueDate.Before(charges[j].DueDate)
	})
	streak := 0
	for i := len(charges) - 1; i >= 0; i-- {
		ch := charges[i]
		if ch.DueDate.After(s.Now) {
			continue // not due yet, does not break the streak
		}
		late := ch.Status == ChargeStatusOverdue ||
			(ch.Status != ChargeStatusPaid && ch.DueDate.Before(s.Now))
		if !late {
			break
		}
		streak++
	}
	return streak
}

// resolutionRatio is the share of complaints resolved within slaDays of being
// raised. Unresolved complaints count against the ratio.
func resolutionRatio(s Snapshot, slaDays int) float64 {
	if len(s.Complaints) == 0 {
		return 1
	}
	timely := 0
	for _, cm := range s.Complaints {
		if cm.ResolvedAt != nil && !cm.ResolvedAt.After(cm.RaisedAt.AddDate(0, 0, slaDays)) {
			timely++
		}
	}
	return float64(timely) / float64(len(s.Complaints))
}

func complaintStats(s Snapshot, windowDays int) (unresolved, total, recent int) {
	cutoff := s.Now.AddDate(0, 0, -windowDays)
	for _, cm := range s.Complaints {
		total++
		if cm.ResolvedAt == nil {
			unresolved++
		}
		if windowDays > 0 && !cm.RaisedAt.Before(cutoff) {
			recent++
		}
	}
	return
}

// continuousStayDays is the length of the current (or latest) stay in days.
func continuousStayDays(s Snapshot) int {
	var latest *StayRecord
	for i := range s.Stays {
		st := &s.Stays[i]
		if latest == nil || st.StayNumber > latest.StayNumber {
			latest = st
		}
	}
	if latest == nil {
		return 0
	}
	end := s.Now
	if latest.ExitDate != nil {
		end = *latest.ExitDate
	}
	days := int(end.Sub(latest.JoinDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func withinDays(now time.Time, t *time.Time, days int) bool {
	if t == nil {
		return false
	}
	if t.Before(now) {
		return true // already past the boundary
	}
	return !t.After(now.AddDate(0, 0, days))
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func capped(v, limit int) int {
	if limit > 0 && v > limit {
		return limit
	}
	return v
}
