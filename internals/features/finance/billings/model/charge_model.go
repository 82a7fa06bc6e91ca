// file: internals/features/finance/billings/model/charge_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — charge status
// Forward-only: pending -> partial -> paid, pending -> overdue -> partial/paid.
// paid never reverses.
// =========================================================

type ChargeStatus string

const (
	ChargeStatusPending ChargeStatus = "pending"
	ChargeStatusPartial ChargeStatus = "partial"
	ChargeStatusOverdue ChargeStatus = "overdue"
	ChargeStatusPaid    ChargeStatus = "paid"
)

// CanTransition guards the forward-only status order.
func (s ChargeStatus) CanTransition(to ChargeStatus) bool {
	if s == to {
		return false
	}
	switch s {
	case ChargeStatusPending:
		return to == ChargeStatusPartial || to == ChargeStatusOverdue || to == ChargeStatusPaid
	case ChargeStatusOverdue:
		return to == ChargeStatusPartial || to == ChargeStatusPaid
	case ChargeStatusPartial:
		return to == ChargeStatusPaid
	default: // paid is terminal
		return false
	}
}

// =========================================================
// MODEL
// The amount is immutable once created: corrections are new charges.
// =========================================================

type Charge struct {
	// PK
	ChargeID uuid.UUID `gorm:"column:charge_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"charge_id"`

	// owner scope
	ChargeOwnerUserID uuid.UUID `gorm:"column:charge_owner_user_id;type:uuid;not null;index:ix_charge_owner" json:"charge_owner_user_id"`

	// FK → tenants / properties
	ChargeTenantID   uuid.UUID `gorm:"column:charge_tenant_id;type:uuid;not null;index" json:"charge_tenant_id"`
	ChargePropertyID uuid.UUID `gorm:"column:charge_property_id;type:uuid;not null;index" json:"charge_property_id"`

	ChargeAmount decimal.Decimal `gorm:"column:charge_amount;type:decimal(12,2);not null;check:charge_amount>=0" json:"charge_amount"`

	ChargeDueDate time.Time    `gorm:"column:charge_due_date;not null;index:ix_charge_due_date" json:"charge_due_date"`
	ChargeStatus  ChargeStatus `gorm:"column:charge_status;type:varchar(20);not null;default:'pending';index:ix_charge_status" json:"charge_status"`

	ChargeForPeriod string `gorm:"column:charge_for_period;type:varchar(40);not null" json:"charge_for_period"`
	ChargeType      string `gorm:"column:charge_type;type:varchar(40);not null;default:'Rent'" json:"charge_type"`

	ChargePaidAt *time.Time `gorm:"column:charge_paid_at" json:"charge_paid_at,omitempty"`
	ChargeNote   *string    `gorm:"column:charge_note;type:text" json:"charge_note,omitempty"`

	// Timestamps (explicit)
	ChargeCreatedAt time.Time      `gorm:"column:charge_created_at;not null;default:now();index:ix_charge_created_at" json:"charge_created_at"`
	ChargeUpdatedAt time.Time      `gorm:"column:charge_updated_at;not null;default:now()" json:"charge_updated_at"`
	ChargeDeletedAt gorm.DeletedAt `gorm:"column:charge_deleted_at;index" json:"-"`
}

func (Charge) TableName() string {
	return "charges"
}

func (m *Charge) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ChargeCreatedAt.IsZero() {
		m.ChargeCreatedAt = now
	}
	m.ChargeUpdatedAt = now
	return nil
}

func (m *Charge) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ChargeUpdatedAt = time.Now()
	return nil
}
