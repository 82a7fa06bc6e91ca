// file: internals/features/tenants/journey/summary.go
package journey

// Summary holds the simple reductions shown next to the timeline. Recomputed
// on every call from the snapshot collections, never cached incrementally.
type Summary struct {
	TotalStays      int  `json:"total_stays"`
	TotalVisits     int  `json:"total_visits"`
	IsCurrentTenant bool `json:"is_current_tenant"`
	IsStaff         bool `json:"is_staff"`
}

func Summarize(s Snapshot) Summary {
	current := false
	for _, st := range s.Stays {
		if st.Status == StayStatusActive {
			current = true
			break
		}
	}
	return Summary{
		TotalStays:      len(s.Stays),
		TotalVisits:     len(s.Visits),
		IsCurrentTenant: current,
		IsStaff:         s.IsStaff,
	}
}
