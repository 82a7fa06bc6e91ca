// file: internals/features/tenants/journey/event.go
package journey

import (
	"time"

	"github.com/shopspring/decimal"
)

/* =========================================================
   Normalized timeline event
========================================================= */

type Category string

const (
	CategoryOnboarding    Category = "onboarding"
	CategoryFinancial     Category = "financial"
	CategoryAccommodation Category = "accommodation"
	CategoryComplaint     Category = "complaint"
	CategoryExit          Category = "exit"
	CategoryVisitor       Category = "visitor"
	CategorySystem        Category = "system"
)

// AmountTag marks how a money amount on an event should be read.
type AmountTag string

const (
	AmountCredit  AmountTag = "credit" // money in (payments)
	AmountDebit   AmountTag = "debit"  // money owed (charges, deductions)
	AmountNeutral AmountTag = "neutral"
)

// Event is one normalized occurrence in a tenant's history. It is a derived
// view, produced fresh on every aggregation and never persisted.
type Event struct {
	ID          string            `json:"id"`
	Category    Category          `json:"category"`
	Timestamp   time.Time         `json:"timestamp"` // ISO-8601 on the wire
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
	AmountTag   AmountTag         `json:"amount_tag,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ActionURL   string            `json:"action_url,omitempty"`
}
