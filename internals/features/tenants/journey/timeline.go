// file: internals/features/tenants/journey/timeline.go
package journey

import (
	"fmt"
	"sort"
)

// BuildTimeline maps every source record to a normalized Event, concatenates
// them and stable-sorts descending by timestamp (newest first). Identical
// timestamps keep their mapping order. Deterministic for a given snapshot;
// never cached, every call re-derives from the inputs.
func BuildTimeline(s Snapshot) []Event {
	deductions := 0
	if s.Clearance != nil {
		deductions = len(s.Clearance.Deductions)
	}
	events := make([]Event, 0,
		2*len(s.Stays)+len(s.Charges)+len(s.Payments)+len(s.Transfers)+
			2*len(s.Complaints)+len(s.Visits)+deductions+2)

	for _, st := range s.Stays {
		events = append(events, stayJoinEvent(st))
		if ev, ok := stayExitEvent(st); ok {
			events = append(events, ev)
		}
	}
	for _, ch := range s.Charges {
		events = append(events, chargeEvent(ch))
	}
	for _, p := range s.Payments {
		events = append(events, paymentEvent(p))
	}
	for _, tr := range s.Transfers {
		events = append(events, transferEvent(tr))
	}
	for _, cm := range s.Complaints {
		events = append(events, complaintRaisedEvent(cm))
		if ev, ok := complaintResolvedEvent(cm); ok {
			events = append(events, ev)
		}
	}
	for _, v := range s.Visits {
		events = append(events, visitEvent(v))
	}
	if s.Verification != nil {
		events = append(events, verificationEvents(*s.Verification)...)
	}
	if s.Clearance != nil {
		for i, d := range s.Clearance.Deductions {
			events = append(events, deductionEvent(*s.Clearance, i, d))
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

/* =========================================================
   Per-source mappers — one fixed timestamp field per source
========================================================= */

func stayJoinEvent(st StayRecord) Event {
	return Event{
		ID:          "stay-join-" + st.ID,
		Category:    CategoryOnboarding,
		Timestamp:   st.JoinDate,
		Title:       fmt.Sprintf("Moved in (stay #%d)", st.StayNumber),
		Description: fmt.Sprintf("%s, room %s", st.PropertyName, st.RoomNumber),
		Metadata: map[string]string{
			"stay_number": fmt.Sprintf("%d", st.StayNumber),
			"room":        st.RoomNumber,
			"property":    st.PropertyName,
		},
	}
}

func stayExitEvent(st StayRecord) (Event, bool) {
	if st.ExitDate == nil {
		return Event{}, false
	}
	title := "Moved out"
	cat := CategoryExit
	if st.Status == StayStatusTransferred {
		title = "Left room on transfer"
		cat = CategoryAccommodation
	}
	return Event{
		ID:          "stay-exit-" + st.ID,
		Category:    cat,
		Timestamp:   *st.ExitDate,
		Title:       fmt.Sprintf("%s (stay #%d)", title, st.StayNumber),
		Description: fmt.Sprintf("%s, room %s", st.PropertyName, st.RoomNumber),
		Metadata: map[string]string{
			"stay_number": fmt.Sprintf("%d", st.StayNumber),
			"room":        st.RoomNumber,
		},
	}, true
}

func chargeEvent(ch ChargeRecord) Event {
	amt := ch.Amount
	return Event{
		ID:          "charge-" + ch.ID,
		Category:    CategoryFinancial,
		Timestamp:   ch.CreatedAt,
		Title:       fmt.Sprintf("%s charge raised", ch.ChargeType),
		Description: fmt.Sprintf("For %s, due %s", ch.ForPeriod, ch.DueDate.Format("02 Jan 2006")),
		Amount:      &amt,
		AmountTag:   AmountDebit,
		Metadata: map[string]string{
			"status":     ch.Status,
			"for_period": ch.ForPeriod,
		},
	}
}

func paymentEvent(p PaymentRecord) Event {
	amt := p.Amount
	desc := "Payment received via " + p.Method
	if p.ForPeriod != "" {
		desc += " for " + p.ForPeriod
	}
	return Event{
		ID:          "payment-" + p.ID,
		Category:    CategoryFinancial,
		Timestamp:   p.PaidAt,
		Title:       "Payment received",
		Description: desc,
		Amount:      &amt,
		AmountTag:   AmountCredit,
		Metadata:    map[string]string{"method": p.Method},
	}
}

func transferEvent(tr TransferRecord) Event {
	return Event{
		ID:          "transfer-" + tr.ID,
		Category:    CategoryAccommodation,
		Timestamp:   tr.At,
		Title:       "Room transfer",
		Description: fmt.Sprintf("From room %s to room %s", tr.FromRoom, tr.ToRoom),
		Metadata: map[string]string{
			"from_room": tr.FromRoom,
			"to_room":   tr.ToRoom,
			"reason":    tr.Reason,
		},
	}
}

func deductionEvent(cl ClearanceRecord, idx int, d DeductionRecord) Event {
	amt := d.Amount
	return Event{
		ID:          fmt.Sprintf("deduction-%s-%d", cl.ID, idx),
		Category:    CategoryExit,
		Timestamp:   cl.DeductedAt,
		Title:       "Deposit deduction",
		Description: d.Reason,
		Amount:      &amt,
		AmountTag:   AmountDebit,
		Metadata:    map[string]string{"clearance_status": cl.Status},
	}
}

func complaintRaisedEvent(cm ComplaintRecord) Event {
	return Event{
		ID:          "complaint-" + cm.ID,
		Category:    CategoryComplaint,
		Timestamp:   cm.RaisedAt,
		Title:       "Complaint raised: " + cm.Category,
		Description: cm.Description,
	}
}

func complaintResolvedEvent(cm ComplaintRecord) (Event, bool) {
	if cm.ResolvedAt == nil {
		return Event{}, false
	}
	return Event{
		ID:        "complaint-resolved-" + cm.ID,
		Category:  CategoryComplaint,
		Timestamp: *cm.ResolvedAt,
		Title:     "Complaint resolved: " + cm.Category,
	}, true
}

func visitEvent(v VisitRecord) Event {
	return Event{
		ID:          "visit-" + v.ID,
		Category:    CategoryVisitor,
		Timestamp:   v.VisitedAt,
		Title:       "Visited " + v.PropertyName,
		Description: v.Purpose,
	}
}

func verificationEvents(vr VerificationRecord) []Event {
	var out []Event
	if vr.VerifiedAt != nil {
		out = append(out, Event{
			ID:        "verified",
			Category:  CategorySystem,
			Timestamp: *vr.VerifiedAt,
			Title:     "Identity verified",
		})
	}
	if vr.BlockedAt != nil {
		out = append(out, Event{
			ID:          "blocked",
			Category:    CategorySystem,
			Timestamp:   *vr.BlockedAt,
			Title:       "Tenant blocked",
			Description: vr.BlockedReason,
		})
	}
	return out
}
